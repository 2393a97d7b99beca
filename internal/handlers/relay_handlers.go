package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/0xgeorgemathew/splithub-sub001/internal/services"
	"github.com/0xgeorgemathew/splithub-sub001/internal/typeddata"
)

// RelayHandler exposes the gasless relay endpoints. Clients submit signed
// authorizations; the relayer pays gas and returns the mined transaction.
type RelayHandler struct {
	relay *services.RelayService
}

func NewRelayHandler(relay *services.RelayService) *RelayHandler {
	return &RelayHandler{relay: relay}
}

// PaymentAuthRequest is one signed payment authorization. Numeric fields are
// base-10 strings so uint256 values survive JSON intact.
type PaymentAuthRequest struct {
	Payer     string `json:"payer" binding:"required"`
	Recipient string `json:"recipient" binding:"required"`
	Token     string `json:"token" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
	Nonce     string `json:"nonce" binding:"required"`
	Deadline  string `json:"deadline" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

type BatchPaymentRequest struct {
	Payments []PaymentAuthRequest `json:"payments" binding:"required,min=1,max=20,dive"`
}

type CreditPurchaseRequest struct {
	Buyer      string `json:"buyer" binding:"required"`
	USDCAmount string `json:"usdcAmount" binding:"required"`
	Nonce      string `json:"nonce" binding:"required"`
	Deadline   string `json:"deadline" binding:"required"`
	Signature  string `json:"signature" binding:"required"`
}

type CreditSpendRequest struct {
	Spender    string `json:"spender" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
	ActivityID string `json:"activityId" binding:"required"`
	Nonce      string `json:"nonce" binding:"required"`
	Deadline   string `json:"deadline" binding:"required"`
	Signature  string `json:"signature" binding:"required"`
}

type RegisterChipRequest struct {
	Owner       string `json:"owner" binding:"required"`
	ChipAddress string `json:"chipAddress" binding:"required"`
	Signature   string `json:"signature" binding:"required"`
}

// RelayResponse reports a mined relay transaction and its side effects.
// CircleSplit is an explicit null when the payer has no active circle.
type RelayResponse struct {
	Success         bool                 `json:"success"`
	TxHash          string               `json:"txHash"`
	BlockNumber     uint64               `json:"blockNumber"`
	GasUsed         uint64               `json:"gasUsed"`
	PaymentsCount   int                  `json:"paymentsCount,omitempty"`
	CreditsMinted   string               `json:"creditsMinted,omitempty"`
	RequestsSettled int64                `json:"requestsSettled,omitempty"`
	CircleSplit     *CircleSplitResponse `json:"circleSplit"`
}

// CircleSplitResponse describes the auto-split a payment triggered.
type CircleSplitResponse struct {
	ExpenseID       string   `json:"expenseId"`
	SplitAmount     string   `json:"splitAmount"`
	Members         []string `json:"members"`
	MembersNotified int      `json:"membersNotified"`
}

func toRelayResponse(result *services.PaymentRelayResult) RelayResponse {
	resp := RelayResponse{
		Success:         true,
		TxHash:          result.TxHash,
		BlockNumber:     result.BlockNumber,
		GasUsed:         result.GasUsed,
		RequestsSettled: result.RequestsSettled,
	}
	if result.Split != nil {
		resp.CircleSplit = &CircleSplitResponse{
			ExpenseID:       result.Split.ExpenseID.String(),
			SplitAmount:     services.FormatTokenAmount(result.Split.ShareAmount),
			Members:         result.Split.Members,
			MembersNotified: result.Split.MembersNotified,
		}
	}
	return resp
}

func parsePaymentAuth(req PaymentAuthRequest) (services.SignedPaymentAuth, error) {
	var signed services.SignedPaymentAuth

	payer, err := parseAddress(req.Payer)
	if err != nil {
		return signed, err
	}
	recipient, err := parseAddress(req.Recipient)
	if err != nil {
		return signed, err
	}
	token, err := parseAddress(req.Token)
	if err != nil {
		return signed, err
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return signed, err
	}
	nonce, err := parseAmount(req.Nonce)
	if err != nil {
		return signed, err
	}
	deadline, err := parseAmount(req.Deadline)
	if err != nil {
		return signed, err
	}
	sig, err := parseSignature(req.Signature)
	if err != nil {
		return signed, err
	}

	signed.Auth = typeddata.PaymentAuth{
		Payer:     payer,
		Recipient: recipient,
		Token:     token,
		Amount:    amount,
		Nonce:     nonce,
		Deadline:  deadline,
	}
	signed.Signature = sig
	return signed, nil
}

// RelayPayment handles POST /relay/payment.
func (h *RelayHandler) RelayPayment(c *gin.Context) {
	var req PaymentAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	signed, err := parsePaymentAuth(req)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	result, err := h.relay.RelayPayment(c.Request.Context(), signed)
	if err != nil {
		handleRelayError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, toRelayResponse(result))
}

// RelayBatchPayment handles POST /relay/batch-payment. All payments in the
// batch settle in one transaction or not at all.
func (h *RelayHandler) RelayBatchPayment(c *gin.Context) {
	var req BatchPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	batch := make([]services.SignedPaymentAuth, 0, len(req.Payments))
	for _, p := range req.Payments {
		signed, err := parsePaymentAuth(p)
		if err != nil {
			sendError(c, http.StatusBadRequest, err.Error(), err)
			return
		}
		batch = append(batch, signed)
	}

	result, err := h.relay.RelayBatchPayment(c.Request.Context(), batch)
	if err != nil {
		handleRelayError(c, err)
		return
	}
	resp := toRelayResponse(result)
	resp.PaymentsCount = len(batch)
	sendSuccess(c, http.StatusOK, resp)
}

// RelayCreditPurchase handles POST /relay/credit-purchase.
func (h *RelayHandler) RelayCreditPurchase(c *gin.Context) {
	var req CreditPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	buyer, err := parseAddress(req.Buyer)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	amount, err := parseAmount(req.USDCAmount)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	nonce, err := parseAmount(req.Nonce)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	deadline, err := parseAmount(req.Deadline)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	sig, err := parseSignature(req.Signature)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	result, err := h.relay.RelayCreditPurchase(c.Request.Context(), typeddata.CreditPurchase{
		Buyer:      buyer,
		USDCAmount: amount,
		Nonce:      nonce,
		Deadline:   deadline,
	}, sig)
	if err != nil {
		handleRelayError(c, err)
		return
	}
	// Credits mint one-to-one against the USDC paid in.
	resp := toRelayResponse(result)
	resp.CreditsMinted = amount.String()
	sendSuccess(c, http.StatusOK, resp)
}

// RelayCreditSpend handles POST /relay/credit-spend.
func (h *RelayHandler) RelayCreditSpend(c *gin.Context) {
	var req CreditSpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	spender, err := parseAddress(req.Spender)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	activityID, err := parseAmount(req.ActivityID)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	nonce, err := parseAmount(req.Nonce)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	deadline, err := parseAmount(req.Deadline)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	sig, err := parseSignature(req.Signature)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	result, err := h.relay.RelayCreditSpend(c.Request.Context(), typeddata.CreditSpend{
		Spender:    spender,
		Amount:     amount,
		ActivityID: activityID,
		Nonce:      nonce,
		Deadline:   deadline,
	}, sig)
	if err != nil {
		handleRelayError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, toRelayResponse(result))
}

// RegisterChip handles POST /relay/register-chip.
func (h *RelayHandler) RegisterChip(c *gin.Context) {
	var req RegisterChipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	owner, err := parseAddress(req.Owner)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	chip, err := parseAddress(req.ChipAddress)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	sig, err := parseSignature(req.Signature)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	result, err := h.relay.RegisterChip(c.Request.Context(), typeddata.ChipRegistration{
		Owner:       owner,
		ChipAddress: chip,
	}, sig)
	if err != nil {
		handleRelayError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, toRelayResponse(result))
}

// ResolveChip handles GET /relay/resolve-chip/:chip. This is the second step
// of the discovery tap: the client learns which wallet owns the chip before
// requesting a real authorization.
func (h *RelayHandler) ResolveChip(c *gin.Context) {
	chip, err := parseAddress(c.Param("chip"))
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	owner, err := h.relay.ResolveChip(c.Request.Context(), chip)
	if err != nil {
		handleRelayError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, gin.H{
		"chip":  chip.Hex(),
		"owner": owner.Hex(),
	})
}

// GetNonce handles GET /relay/nonce/:wallet, returning the next replay nonce
// the payments contract expects from the wallet.
func (h *RelayHandler) GetNonce(c *gin.Context) {
	wallet, err := parseAddress(c.Param("wallet"))
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	nonce, err := h.relay.NonceOf(c.Request.Context(), wallet)
	if err != nil {
		handleRelayError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, gin.H{
		"wallet": wallet.Hex(),
		"nonce":  nonce.String(),
	})
}

// GetStatus handles GET /relay/status.
func (h *RelayHandler) GetStatus(c *gin.Context) {
	sendSuccess(c, http.StatusOK, gin.H{
		"relayerAddress": h.relay.RelayerAddress().Hex(),
	})
}
