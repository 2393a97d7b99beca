package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/0xgeorgemathew/splithub-sub001/internal/db"
	"github.com/0xgeorgemathew/splithub-sub001/internal/services"
)

// PaymentRequestHandler exposes the payment request lifecycle.
type PaymentRequestHandler struct {
	requests *services.PaymentRequestService
	baseURL  string
}

func NewPaymentRequestHandler(requests *services.PaymentRequestService, baseURL string) *PaymentRequestHandler {
	return &PaymentRequestHandler{requests: requests, baseURL: baseURL}
}

type CreatePaymentRequestBody struct {
	PayerWallet     string `json:"payerWallet" binding:"required"`
	RecipientWallet string `json:"recipientWallet" binding:"required"`
	TokenAddress    string `json:"tokenAddress" binding:"required"`
	Amount          string `json:"amount" binding:"required"`
	Memo            string `json:"memo" binding:"max=280"`
}

// PaymentRequestResponse is the JSON shape of a payment request.
type PaymentRequestResponse struct {
	ID              string `json:"id"`
	PayerWallet     string `json:"payerWallet"`
	RecipientWallet string `json:"recipientWallet"`
	TokenAddress    string `json:"tokenAddress"`
	Amount          string `json:"amount"`
	AmountFormatted string `json:"amountFormatted"`
	Memo            string `json:"memo,omitempty"`
	Status          string `json:"status"`
	ExpenseID       string `json:"expenseId,omitempty"`
	TxHash          string `json:"txHash,omitempty"`
	ExpiresAt       string `json:"expiresAt,omitempty"`
	CreatedAt       string `json:"createdAt,omitempty"`
}

func toPaymentRequestResponse(r db.PaymentRequest) PaymentRequestResponse {
	resp := PaymentRequestResponse{
		ID:              r.ID.String(),
		PayerWallet:     r.PayerWallet,
		RecipientWallet: r.RecipientWallet,
		TokenAddress:    r.TokenAddress,
		Amount:          r.Amount,
		AmountFormatted: services.FormatTokenAmount(r.Amount),
		Memo:            r.Memo.String,
		Status:          r.Status,
		TxHash:          r.TxHash.String,
	}
	if r.ExpenseID.Valid {
		resp.ExpenseID = uuid.UUID(r.ExpenseID.Bytes).String()
	}
	if r.ExpiresAt.Valid {
		resp.ExpiresAt = r.ExpiresAt.Time.Format(time.RFC3339)
	}
	if r.CreatedAt.Valid {
		resp.CreatedAt = r.CreatedAt.Time.Format(time.RFC3339)
	}
	return resp
}

// CreatePaymentRequest handles POST /payment-requests. Returns 201 for a new
// request and 200 when an existing pending request was reused.
func (h *PaymentRequestHandler) CreatePaymentRequest(c *gin.Context) {
	var body CreatePaymentRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if _, err := parseAddress(body.PayerWallet); err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	if _, err := parseAddress(body.RecipientWallet); err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	if _, err := parseAddress(body.TokenAddress); err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	amount, err := parseAmount(body.Amount)
	if err != nil || amount.Sign() == 0 {
		sendError(c, http.StatusBadRequest, "amount must be a positive integer string", err)
		return
	}

	result, err := h.requests.Create(c.Request.Context(), services.CreatePaymentRequestParams{
		PayerWallet:     body.PayerWallet,
		RecipientWallet: body.RecipientWallet,
		TokenAddress:    body.TokenAddress,
		Amount:          body.Amount,
		Memo:            body.Memo,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create payment request", err)
		return
	}

	status := http.StatusCreated
	if result.IsExisting {
		status = http.StatusOK
	}
	sendSuccess(c, status, gin.H{
		"requestId":  result.Request.ID.String(),
		"settleUrl":  h.settleURL(result.Request.ID),
		"isExisting": result.IsExisting,
		"request":    toPaymentRequestResponse(result.Request),
	})
}

func (h *PaymentRequestHandler) settleURL(id uuid.UUID) string {
	return fmt.Sprintf("%s/pay/%s", h.baseURL, id)
}

// GetPaymentRequest handles GET /payment-requests/:id.
func (h *PaymentRequestHandler) GetPaymentRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid payment request ID", err)
		return
	}

	request, err := h.requests.Get(c.Request.Context(), id)
	if err != nil {
		handleDBError(c, err, "Payment request not found")
		return
	}
	sendSuccess(c, http.StatusOK, toPaymentRequestResponse(request))
}

// ListPaymentRequests handles GET /payment-requests?wallet=0x..&type=incoming.
// Incoming requests bill the wallet; outgoing requests were issued by it.
// Stale pending rows are expired before the list is returned.
func (h *PaymentRequestHandler) ListPaymentRequests(c *gin.Context) {
	wallet := c.Query("wallet")
	if wallet == "" {
		sendError(c, http.StatusBadRequest, "wallet query parameter is required", nil)
		return
	}
	if _, err := parseAddress(wallet); err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	var (
		requests []db.PaymentRequest
		err      error
	)
	switch c.Query("type") {
	case "incoming":
		requests, err = h.requests.ListForPayer(c.Request.Context(), wallet)
	case "outgoing":
		requests, err = h.requests.ListForRecipient(c.Request.Context(), wallet)
	default:
		sendError(c, http.StatusBadRequest, "type must be incoming or outgoing", nil)
		return
	}
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list payment requests", err)
		return
	}
	sendSuccess(c, http.StatusOK, toPaymentRequestListResponse(requests))
}

func toPaymentRequestListResponse(requests []db.PaymentRequest) gin.H {
	out := make([]PaymentRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, toPaymentRequestResponse(r))
	}
	return gin.H{"requests": out, "count": len(out)}
}

type CompletePaymentRequestBody struct {
	TxHash string `json:"txHash" binding:"required"`
}

// CompletePaymentRequest handles POST /payment-requests/:id/complete, marking
// a single pending request settled with the confirming transaction hash.
func (h *PaymentRequestHandler) CompletePaymentRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid payment request ID", err)
		return
	}

	var body CompletePaymentRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	hash, err := hexutil.Decode(body.TxHash)
	if err != nil || len(hash) != 32 {
		sendError(c, http.StatusBadRequest, "txHash must be a 32-byte 0x-prefixed hex string", err)
		return
	}

	request, err := h.requests.Complete(c.Request.Context(), id, body.TxHash)
	if err != nil {
		handleDBError(c, err, "No pending payment request with that ID")
		return
	}
	sendSuccess(c, http.StatusOK, toPaymentRequestResponse(request))
}

// GetPaymentRequestQR handles GET /payment-requests/:id/qr, rendering the
// settle URL as a PNG for the payer to scan.
func (h *PaymentRequestHandler) GetPaymentRequestQR(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid payment request ID", err)
		return
	}

	request, err := h.requests.Get(c.Request.Context(), id)
	if err != nil {
		handleDBError(c, err, "Payment request not found")
		return
	}
	if request.Status != db.PaymentRequestStatusPending {
		sendError(c, http.StatusConflict, fmt.Sprintf("payment request is %s", request.Status), nil)
		return
	}

	png, err := qrcode.Encode(h.settleURL(request.ID), qrcode.Medium, 256)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to render QR code", err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
