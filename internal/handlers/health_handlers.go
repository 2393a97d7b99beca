package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	relayerAddress string
}

func NewHealthHandler(relayerAddress string) *HealthHandler {
	return &HealthHandler{relayerAddress: relayerAddress}
}

type HealthResponse struct {
	Status         string `json:"status"`
	RelayerAddress string `json:"relayerAddress,omitempty"`
}

// Health reports liveness and the hot wallet address clients should fund.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:         "ok",
		RelayerAddress: h.relayerAddress,
	})
}
