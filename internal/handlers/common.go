package handlers

import (
	"errors"
	"math/big"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/0xgeorgemathew/splithub-sub001/internal/chain"
	"github.com/0xgeorgemathew/splithub-sub001/internal/logger"
)

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// sendError logs the failure with request context and returns a JSON error.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := ""
	if id, exists := c.Get("correlationID"); exists {
		correlationID, _ = id.(string)
	}

	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	)

	response := struct {
		Error         string `json:"error"`
		CorrelationID string `json:"correlation_id,omitempty"`
	}{
		Error:         message,
		CorrelationID: correlationID,
	}
	c.JSON(statusCode, response)
}

// handleDBError maps database errors to HTTP responses.
func handleDBError(c *gin.Context, err error, notFoundMsg string) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// handleRelayError maps relay failures to HTTP responses. Preflight and
// revert failures carry a user-actionable reason and come back as 400;
// anything else is an upstream problem.
func handleRelayError(c *gin.Context, err error) {
	var relayErr *chain.RelayError
	if errors.As(err, &relayErr) {
		sendError(c, http.StatusBadRequest, relayErr.Reason, err)
		return
	}
	if errors.Is(err, chain.ErrChipNotRegistered) {
		sendError(c, http.StatusNotFound, "chip is not registered to any wallet", err)
		return
	}
	sendError(c, http.StatusBadGateway, "Failed to relay transaction", err)
}

func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// parseAddress validates and decodes a 0x-prefixed hex address.
func parseAddress(value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, errors.New("invalid address: " + value)
	}
	return common.HexToAddress(value), nil
}

// parseAmount decodes a non-negative base-10 uint256 string.
func parseAmount(value string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(value), 10)
	if !ok || n.Sign() < 0 || n.BitLen() > 256 {
		return nil, errors.New("invalid amount: " + value)
	}
	return n, nil
}

// parseSignature decodes a 65-byte 0x-prefixed hex signature.
func parseSignature(value string) ([]byte, error) {
	sig, err := hexutil.Decode(value)
	if err != nil {
		return nil, errors.New("signature must be 0x-prefixed hex")
	}
	if len(sig) != 65 {
		return nil, errors.New("signature must be 65 bytes")
	}
	return sig, nil
}
