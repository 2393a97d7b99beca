package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/0xgeorgemathew/splithub-sub001/internal/db"
	"github.com/0xgeorgemathew/splithub-sub001/internal/logger"
	"github.com/0xgeorgemathew/splithub-sub001/internal/mocks"
	"github.com/0xgeorgemathew/splithub-sub001/internal/services"
)

func init() {
	logger.InitLogger("test")
}

const (
	payerWallet     = "0x1000000000000000000000000000000000000001"
	recipientWallet = "0x2000000000000000000000000000000000000002"
	tokenAddress    = "0x3000000000000000000000000000000000000003"
)

func newRequestRouter(t *testing.T) (*gin.Engine, *mocks.MockQuerier) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	queries := mocks.NewMockQuerier(ctrl)
	svc := services.NewPaymentRequestService(queries, nil, zap.NewNop())
	handler := NewPaymentRequestHandler(svc, "https://splithub.xyz")

	router := gin.New()
	router.POST("/payment-requests", handler.CreatePaymentRequest)
	router.GET("/payment-requests", handler.ListPaymentRequests)
	router.GET("/payment-requests/:id", handler.GetPaymentRequest)
	router.GET("/payment-requests/:id/qr", handler.GetPaymentRequestQR)
	router.POST("/payment-requests/:id/complete", handler.CompletePaymentRequest)
	return router, queries
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getPath(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreatePaymentRequestEndpoint(t *testing.T) {
	router, queries := newRequestRouter(t)

	created := db.PaymentRequest{
		ID:              uuid.New(),
		PayerWallet:     payerWallet,
		RecipientWallet: recipientWallet,
		TokenAddress:    tokenAddress,
		Amount:          "30000000",
		Status:          db.PaymentRequestStatusPending,
	}

	queries.EXPECT().ExpireStalePaymentRequests(gomock.Any(), payerWallet).Return(int64(0), nil)
	queries.EXPECT().GetPendingRequestByPair(gomock.Any(), gomock.Any()).Return(db.PaymentRequest{}, pgx.ErrNoRows)
	queries.EXPECT().CreatePaymentRequest(gomock.Any(), gomock.Any()).Return(created, nil)

	w := postJSON(router, "/payment-requests", gin.H{
		"payerWallet":     payerWallet,
		"recipientWallet": recipientWallet,
		"tokenAddress":    tokenAddress,
		"amount":          "30000000",
		"memo":            "dinner",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		RequestID  string                 `json:"requestId"`
		SettleURL  string                 `json:"settleUrl"`
		Request    PaymentRequestResponse `json:"request"`
		IsExisting bool                   `json:"isExisting"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsExisting)
	assert.Equal(t, created.ID.String(), resp.RequestID)
	assert.Equal(t, "https://splithub.xyz/pay/"+created.ID.String(), resp.SettleURL)
	assert.Equal(t, "30.000000", resp.Request.AmountFormatted)
	assert.Equal(t, "pending", resp.Request.Status)
}

func TestCreatePaymentRequestReturns200ForExisting(t *testing.T) {
	router, queries := newRequestRouter(t)

	existing := db.PaymentRequest{
		ID:              uuid.New(),
		PayerWallet:     payerWallet,
		RecipientWallet: recipientWallet,
		Amount:          "30000000",
		Status:          db.PaymentRequestStatusPending,
	}
	queries.EXPECT().ExpireStalePaymentRequests(gomock.Any(), payerWallet).Return(int64(0), nil)
	queries.EXPECT().GetPendingRequestByPair(gomock.Any(), gomock.Any()).Return(existing, nil)

	w := postJSON(router, "/payment-requests", gin.H{
		"payerWallet":     payerWallet,
		"recipientWallet": recipientWallet,
		"tokenAddress":    tokenAddress,
		"amount":          "30000000",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isExisting":true`)
}

func TestCreatePaymentRequestValidation(t *testing.T) {
	tests := []struct {
		name string
		body gin.H
	}{
		{name: "missing payer", body: gin.H{"recipientWallet": recipientWallet, "tokenAddress": tokenAddress, "amount": "1"}},
		{name: "bad payer address", body: gin.H{"payerWallet": "nope", "recipientWallet": recipientWallet, "tokenAddress": tokenAddress, "amount": "1"}},
		{name: "bad amount", body: gin.H{"payerWallet": payerWallet, "recipientWallet": recipientWallet, "tokenAddress": tokenAddress, "amount": "12.5"}},
		{name: "zero amount", body: gin.H{"payerWallet": payerWallet, "recipientWallet": recipientWallet, "tokenAddress": tokenAddress, "amount": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newRequestRouter(t)
			w := postJSON(router, "/payment-requests", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestListPaymentRequestsRequiresFilter(t *testing.T) {
	router, _ := newRequestRouter(t)

	w := getPath(router, "/payment-requests")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = getPath(router, "/payment-requests?wallet="+payerWallet)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = getPath(router, "/payment-requests?wallet="+payerWallet+"&type=sideways")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListIncomingPaymentRequests(t *testing.T) {
	router, queries := newRequestRouter(t)

	gomock.InOrder(
		queries.EXPECT().ExpireStalePaymentRequests(gomock.Any(), payerWallet).Return(int64(1), nil),
		queries.EXPECT().ListPaymentRequestsByPayer(gomock.Any(), payerWallet).Return([]db.PaymentRequest{
			{ID: uuid.New(), PayerWallet: payerWallet, Amount: "1000000", Status: db.PaymentRequestStatusPending},
		}, nil),
	)

	w := getPath(router, "/payment-requests?wallet="+payerWallet+"&type=incoming")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestListOutgoingPaymentRequests(t *testing.T) {
	router, queries := newRequestRouter(t)

	gomock.InOrder(
		queries.EXPECT().ExpireStalePaymentRequests(gomock.Any(), recipientWallet).Return(int64(0), nil),
		queries.EXPECT().ListPaymentRequestsByRecipient(gomock.Any(), recipientWallet).Return([]db.PaymentRequest{}, nil),
	)

	w := getPath(router, "/payment-requests?wallet="+recipientWallet+"&type=outgoing")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestGetPaymentRequestNotFound(t *testing.T) {
	router, queries := newRequestRouter(t)

	id := uuid.New()
	queries.EXPECT().GetPaymentRequest(gomock.Any(), id).Return(db.PaymentRequest{}, pgx.ErrNoRows)

	w := getPath(router, "/payment-requests/"+id.String())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPaymentRequestQR(t *testing.T) {
	router, queries := newRequestRouter(t)

	id := uuid.New()
	queries.EXPECT().GetPaymentRequest(gomock.Any(), id).Return(db.PaymentRequest{
		ID:          id,
		PayerWallet: payerWallet,
		Status:      db.PaymentRequestStatusPending,
		ExpiresAt:   pgtype.Timestamptz{Time: time.Now().Add(time.Hour), Valid: true},
	}, nil)

	w := getPath(router, "/payment-requests/"+id.String()+"/qr")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestGetPaymentRequestQRRejectsSettled(t *testing.T) {
	router, queries := newRequestRouter(t)

	id := uuid.New()
	queries.EXPECT().GetPaymentRequest(gomock.Any(), id).Return(db.PaymentRequest{
		ID:     id,
		Status: db.PaymentRequestStatusCompleted,
	}, nil)

	w := getPath(router, "/payment-requests/"+id.String()+"/qr")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCompletePaymentRequestEndpoint(t *testing.T) {
	router, queries := newRequestRouter(t)

	id := uuid.New()
	hash := "0x" + strings.Repeat("ab", 32)
	queries.EXPECT().CompletePaymentRequest(gomock.Any(), db.CompletePaymentRequestParams{
		ID:     id,
		TxHash: pgtype.Text{String: hash, Valid: true},
	}).Return(db.PaymentRequest{
		ID:          id,
		PayerWallet: payerWallet,
		Amount:      "30000000",
		Status:      db.PaymentRequestStatusCompleted,
		TxHash:      pgtype.Text{String: hash, Valid: true},
	}, nil)

	w := postJSON(router, "/payment-requests/"+id.String()+"/complete", gin.H{"txHash": hash})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"completed"`)
	assert.Contains(t, w.Body.String(), hash)
}

func TestCompletePaymentRequestNotPending(t *testing.T) {
	router, queries := newRequestRouter(t)

	id := uuid.New()
	hash := "0x" + strings.Repeat("cd", 32)
	queries.EXPECT().CompletePaymentRequest(gomock.Any(), gomock.Any()).Return(db.PaymentRequest{}, pgx.ErrNoRows)

	w := postJSON(router, "/payment-requests/"+id.String()+"/complete", gin.H{"txHash": hash})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompletePaymentRequestRejectsBadHash(t *testing.T) {
	router, _ := newRequestRouter(t)

	w := postJSON(router, "/payment-requests/"+uuid.New().String()+"/complete", gin.H{"txHash": "0x1234"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
