package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/0xgeorgemathew/splithub-sub001/internal/db"
	"github.com/0xgeorgemathew/splithub-sub001/internal/services"
)

// CircleHandler manages split circles.
type CircleHandler struct {
	circles *services.CircleService
}

func NewCircleHandler(circles *services.CircleService) *CircleHandler {
	return &CircleHandler{circles: circles}
}

type CreateCircleBody struct {
	Name          string   `json:"name" binding:"required,max=120"`
	CreatorWallet string   `json:"creatorWallet" binding:"required"`
	Members       []string `json:"members" binding:"required,min=1,max=50"`
}

type AddMemberBody struct {
	MemberWallet string `json:"memberWallet" binding:"required"`
}

// CircleResponse is the JSON shape of a circle with its members.
type CircleResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	CreatorWallet string   `json:"creatorWallet"`
	IsActive      bool     `json:"isActive"`
	Members       []string `json:"members"`
	CreatedAt     string   `json:"createdAt,omitempty"`
}

func toCircleResponse(circle db.Circle, members []string) CircleResponse {
	resp := CircleResponse{
		ID:            circle.ID.String(),
		Name:          circle.Name,
		CreatorWallet: circle.CreatorWallet,
		IsActive:      circle.IsActive,
		Members:       members,
	}
	if circle.CreatedAt.Valid {
		resp.CreatedAt = circle.CreatedAt.Time.Format(time.RFC3339)
	}
	return resp
}

// CreateCircle handles POST /circles. Creating a circle retires the
// creator's previous active circle.
func (h *CircleHandler) CreateCircle(c *gin.Context) {
	var body CreateCircleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if _, err := parseAddress(body.CreatorWallet); err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	for _, member := range body.Members {
		if _, err := parseAddress(member); err != nil {
			sendError(c, http.StatusBadRequest, err.Error(), err)
			return
		}
	}

	result, err := h.circles.CreateCircle(c.Request.Context(), body.Name, body.CreatorWallet, body.Members)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create circle", err)
		return
	}
	sendSuccess(c, http.StatusCreated, toCircleResponse(result.Circle, result.Members))
}

// GetActiveCircle handles GET /circles/active/:wallet.
func (h *CircleHandler) GetActiveCircle(c *gin.Context) {
	wallet := c.Param("wallet")
	if _, err := parseAddress(wallet); err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	result, err := h.circles.GetActiveCircle(c.Request.Context(), wallet)
	if err != nil {
		handleDBError(c, err, "No active circle for this wallet")
		return
	}
	sendSuccess(c, http.StatusOK, toCircleResponse(result.Circle, result.Members))
}

// ListMembers handles GET /circles/:id/members.
func (h *CircleHandler) ListMembers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid circle ID", err)
		return
	}

	result, err := h.circles.GetCircle(c.Request.Context(), id)
	if err != nil {
		handleDBError(c, err, "Circle not found")
		return
	}
	sendSuccess(c, http.StatusOK, gin.H{
		"circleId": result.Circle.ID.String(),
		"members":  result.Members,
		"count":    len(result.Members),
	})
}

// DeactivateCircle handles POST /circles/:id/deactivate.
func (h *CircleHandler) DeactivateCircle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid circle ID", err)
		return
	}

	circle, err := h.circles.Deactivate(c.Request.Context(), id)
	if err != nil {
		handleDBError(c, err, "Circle not found")
		return
	}
	sendSuccess(c, http.StatusOK, toCircleResponse(circle, nil))
}

// AddMember handles POST /circles/:id/members.
func (h *CircleHandler) AddMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid circle ID", err)
		return
	}
	var body AddMemberBody
	if err := c.ShouldBindJSON(&body); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if _, err := parseAddress(body.MemberWallet); err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	member, err := h.circles.AddMember(c.Request.Context(), id, body.MemberWallet)
	if err != nil {
		handleDBError(c, err, "Circle not found")
		return
	}
	sendSuccess(c, http.StatusCreated, gin.H{
		"circleId":     member.CircleID.String(),
		"memberWallet": member.MemberWallet,
	})
}

// RemoveMember handles DELETE /circles/:id/members/:wallet.
func (h *CircleHandler) RemoveMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid circle ID", err)
		return
	}
	wallet := c.Param("wallet")
	if _, err := parseAddress(wallet); err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	if err := h.circles.RemoveMember(c.Request.Context(), id, wallet); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to remove circle member", err)
		return
	}
	c.Status(http.StatusNoContent)
}
