package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/0xgeorgemathew/splithub-sub001/internal/db"
)

// UserHandler manages wallet profiles. A profile is optional; it exists so
// payment request emails have somewhere to go.
type UserHandler struct {
	queries db.Querier
}

func NewUserHandler(queries db.Querier) *UserHandler {
	return &UserHandler{queries: queries}
}

type UpsertUserBody struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
	Email         string `json:"email" binding:"omitempty,email"`
	DisplayName   string `json:"displayName" binding:"max=120"`
}

// UserResponse is the JSON shape of a wallet profile.
type UserResponse struct {
	ID            string `json:"id"`
	WalletAddress string `json:"walletAddress"`
	Email         string `json:"email,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
}

func toUserResponse(user db.User) UserResponse {
	return UserResponse{
		ID:            user.ID.String(),
		WalletAddress: user.WalletAddress,
		Email:         user.Email.String,
		DisplayName:   user.DisplayName.String,
	}
}

// UpsertUser handles POST /users, creating or updating the wallet profile.
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var body UpsertUserBody
	if err := c.ShouldBindJSON(&body); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if _, err := parseAddress(body.WalletAddress); err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	var email, displayName pgtype.Text
	if body.Email != "" {
		email = pgtype.Text{String: body.Email, Valid: true}
	}
	if body.DisplayName != "" {
		displayName = pgtype.Text{String: body.DisplayName, Valid: true}
	}

	user, err := h.queries.CreateUser(c.Request.Context(), db.CreateUserParams{
		WalletAddress: strings.ToLower(body.WalletAddress),
		Email:         email,
		DisplayName:   displayName,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to save user", err)
		return
	}
	sendSuccess(c, http.StatusOK, toUserResponse(user))
}

// GetUser handles GET /users/:wallet.
func (h *UserHandler) GetUser(c *gin.Context) {
	wallet := c.Param("wallet")
	if _, err := parseAddress(wallet); err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	user, err := h.queries.GetUserByWallet(c.Request.Context(), strings.ToLower(wallet))
	if err != nil {
		handleDBError(c, err, "User not found")
		return
	}
	sendSuccess(c, http.StatusOK, toUserResponse(user))
}
