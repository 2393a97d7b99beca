package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/0xgeorgemathew/splithub-sub001/internal/services"
)

// ExpenseHandler exposes split expenses recorded by the circle engine.
type ExpenseHandler struct {
	circles *services.CircleService
}

func NewExpenseHandler(circles *services.CircleService) *ExpenseHandler {
	return &ExpenseHandler{circles: circles}
}

// ExpenseParticipantResponse is one participant's share of an expense.
type ExpenseParticipantResponse struct {
	WalletAddress        string `json:"walletAddress"`
	ShareAmount          string `json:"shareAmount"`
	ShareAmountFormatted string `json:"shareAmountFormatted"`
	IsCreator            bool   `json:"isCreator"`
}

// ExpenseResponse is the JSON shape of a split expense.
type ExpenseResponse struct {
	ID                   string                       `json:"id"`
	CreatorWallet        string                       `json:"creatorWallet"`
	Description          string                       `json:"description"`
	TotalAmount          string                       `json:"totalAmount"`
	TotalAmountFormatted string                       `json:"totalAmountFormatted"`
	TokenAddress         string                       `json:"tokenAddress"`
	Status               string                       `json:"status"`
	Participants         []ExpenseParticipantResponse `json:"participants"`
	CreatedAt            string                       `json:"createdAt,omitempty"`
}

func toExpenseResponse(result *services.ExpenseWithParticipants) ExpenseResponse {
	resp := ExpenseResponse{
		ID:                   result.Expense.ID.String(),
		CreatorWallet:        result.Expense.CreatorWallet,
		Description:          result.Expense.Description,
		TotalAmount:          result.Expense.TotalAmount,
		TotalAmountFormatted: services.FormatTokenAmount(result.Expense.TotalAmount),
		TokenAddress:         result.Expense.TokenAddress,
		Status:               result.Expense.Status,
		Participants:         make([]ExpenseParticipantResponse, 0, len(result.Participants)),
	}
	for _, p := range result.Participants {
		resp.Participants = append(resp.Participants, ExpenseParticipantResponse{
			WalletAddress:        p.WalletAddress,
			ShareAmount:          p.ShareAmount,
			ShareAmountFormatted: services.FormatTokenAmount(p.ShareAmount),
			IsCreator:            p.IsCreator,
		})
	}
	if result.Expense.CreatedAt.Valid {
		resp.CreatedAt = result.Expense.CreatedAt.Time.Format(time.RFC3339)
	}
	return resp
}

// GetExpense handles GET /expenses/:id.
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid expense ID", err)
		return
	}

	result, err := h.circles.GetExpense(c.Request.Context(), id)
	if err != nil {
		handleDBError(c, err, "Expense not found")
		return
	}
	sendSuccess(c, http.StatusOK, toExpenseResponse(result))
}
