package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/0xgeorgemathew/splithub-sub001/internal/db"
)

// Pending requests expire 24 hours after creation. Expiry is evaluated
// lazily: reads fold stale rows over to expired before returning them, so no
// background sweeper is needed.
const paymentRequestTTL = 24 * time.Hour

type PaymentRequestService struct {
	queries       db.Querier
	notifications *NotificationService
	logger        *zap.Logger
}

func NewPaymentRequestService(queries db.Querier, notifications *NotificationService, logger *zap.Logger) *PaymentRequestService {
	return &PaymentRequestService{
		queries:       queries,
		notifications: notifications,
		logger:        logger,
	}
}

// CreatePaymentRequestParams describes a request for payment from payer to
// recipient. Amount is a base-unit token amount string.
type CreatePaymentRequestParams struct {
	PayerWallet     string
	RecipientWallet string
	TokenAddress    string
	Amount          string
	Memo            string
	ExpenseID       uuid.NullUUID
}

// CreatePaymentRequestResult reports whether a new request was created or an
// existing pending one was reused with a reminder.
type CreatePaymentRequestResult struct {
	Request    db.PaymentRequest
	IsExisting bool
}

// Create opens a payment request, or reuses the pending one if this
// payer/recipient pair already has an open request. Reuse sends a reminder
// instead of piling up duplicate rows for the same debt.
func (s *PaymentRequestService) Create(ctx context.Context, params CreatePaymentRequestParams) (*CreatePaymentRequestResult, error) {
	// Wallets are stored lowercased so pair lookups are case-insensitive.
	params.PayerWallet = strings.ToLower(params.PayerWallet)
	params.RecipientWallet = strings.ToLower(params.RecipientWallet)
	params.TokenAddress = strings.ToLower(params.TokenAddress)

	// Fold any stale rows first so an expired request never blocks a new one.
	if _, err := s.queries.ExpireStalePaymentRequests(ctx, params.PayerWallet); err != nil {
		return nil, fmt.Errorf("failed to expire stale payment requests: %w", err)
	}

	existing, err := s.queries.GetPendingRequestByPair(ctx, db.GetPendingRequestByPairParams{
		PayerWallet:     params.PayerWallet,
		RecipientWallet: params.RecipientWallet,
	})
	if err == nil {
		s.logger.Info("Reusing pending payment request",
			zap.String("request_id", existing.ID.String()),
			zap.String("payer_wallet", params.PayerWallet),
			zap.String("recipient_wallet", params.RecipientWallet),
		)
		s.notifyPayer(ctx, existing, true)
		return &CreatePaymentRequestResult{Request: existing, IsExisting: true}, nil
	}
	if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("failed to look up pending payment request: %w", err)
	}

	var memo pgtype.Text
	if params.Memo != "" {
		memo = pgtype.Text{String: params.Memo, Valid: true}
	}
	var expenseID pgtype.UUID
	if params.ExpenseID.Valid {
		expenseID = pgtype.UUID{Bytes: params.ExpenseID.UUID, Valid: true}
	}

	request, err := s.queries.CreatePaymentRequest(ctx, db.CreatePaymentRequestParams{
		PayerWallet:     params.PayerWallet,
		RecipientWallet: params.RecipientWallet,
		TokenAddress:    params.TokenAddress,
		Amount:          params.Amount,
		Memo:            memo,
		ExpenseID:       expenseID,
		ExpiresAt:       pgtype.Timestamptz{Time: time.Now().Add(paymentRequestTTL), Valid: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment request: %w", err)
	}

	s.logger.Info("Payment request created",
		zap.String("request_id", request.ID.String()),
		zap.String("payer_wallet", params.PayerWallet),
		zap.String("recipient_wallet", params.RecipientWallet),
		zap.String("amount", params.Amount),
	)
	s.notifyPayer(ctx, request, false)
	return &CreatePaymentRequestResult{Request: request, IsExisting: false}, nil
}

// Get fetches a request by id, folding it to expired first if its deadline
// has passed while it was still pending.
func (s *PaymentRequestService) Get(ctx context.Context, id uuid.UUID) (db.PaymentRequest, error) {
	request, err := s.queries.GetPaymentRequest(ctx, id)
	if err != nil {
		return db.PaymentRequest{}, fmt.Errorf("failed to get payment request: %w", err)
	}
	if request.Status == db.PaymentRequestStatusPending && request.ExpiresAt.Valid && request.ExpiresAt.Time.Before(time.Now()) {
		if _, err := s.queries.ExpireStalePaymentRequests(ctx, request.PayerWallet); err != nil {
			return db.PaymentRequest{}, fmt.Errorf("failed to expire stale payment requests: %w", err)
		}
		return s.queries.GetPaymentRequest(ctx, id)
	}
	return request, nil
}

// ListForPayer returns all requests addressed to the wallet, expiring stale
// ones first.
func (s *PaymentRequestService) ListForPayer(ctx context.Context, payerWallet string) ([]db.PaymentRequest, error) {
	payerWallet = strings.ToLower(payerWallet)
	if _, err := s.queries.ExpireStalePaymentRequests(ctx, payerWallet); err != nil {
		return nil, fmt.Errorf("failed to expire stale payment requests: %w", err)
	}
	requests, err := s.queries.ListPaymentRequestsByPayer(ctx, payerWallet)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment requests: %w", err)
	}
	return requests, nil
}

// ListForRecipient returns all requests the wallet has issued.
func (s *PaymentRequestService) ListForRecipient(ctx context.Context, recipientWallet string) ([]db.PaymentRequest, error) {
	recipientWallet = strings.ToLower(recipientWallet)
	if _, err := s.queries.ExpireStalePaymentRequests(ctx, recipientWallet); err != nil {
		return nil, fmt.Errorf("failed to expire stale payment requests: %w", err)
	}
	requests, err := s.queries.ListPaymentRequestsByRecipient(ctx, recipientWallet)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment requests: %w", err)
	}
	return requests, nil
}

// Complete marks a single pending request settled with the confirming
// transaction hash. Returns pgx.ErrNoRows when the request does not exist or
// is no longer pending.
func (s *PaymentRequestService) Complete(ctx context.Context, id uuid.UUID, txHash string) (db.PaymentRequest, error) {
	request, err := s.queries.CompletePaymentRequest(ctx, db.CompletePaymentRequestParams{
		ID:     id,
		TxHash: pgtype.Text{String: txHash, Valid: true},
	})
	if err != nil {
		if err == pgx.ErrNoRows {
			return db.PaymentRequest{}, err
		}
		return db.PaymentRequest{}, fmt.Errorf("failed to complete payment request: %w", err)
	}
	s.logger.Info("Payment request completed",
		zap.String("request_id", request.ID.String()),
		zap.String("tx_hash", txHash),
	)
	return request, nil
}

// SettleMatching marks pending requests between the pair (at the exact
// amount) completed after an on-chain payment confirms.
func (s *PaymentRequestService) SettleMatching(ctx context.Context, payerWallet, recipientWallet, amount, txHash string) (int64, error) {
	payerWallet = strings.ToLower(payerWallet)
	recipientWallet = strings.ToLower(recipientWallet)
	settled, err := s.queries.CompleteMatchingPaymentRequests(ctx, db.CompleteMatchingPaymentRequestsParams{
		PayerWallet:     payerWallet,
		RecipientWallet: recipientWallet,
		Amount:          amount,
		TxHash:          pgtype.Text{String: txHash, Valid: true},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to settle matching payment requests: %w", err)
	}
	if settled > 0 {
		s.logger.Info("Settled payment requests from confirmed payment",
			zap.Int64("count", settled),
			zap.String("payer_wallet", payerWallet),
			zap.String("recipient_wallet", recipientWallet),
			zap.String("tx_hash", txHash),
		)
	}
	return settled, nil
}

// notifyPayer emails the payer if they have an email on file. Failures are
// logged, never propagated: notification is best effort.
func (s *PaymentRequestService) notifyPayer(ctx context.Context, request db.PaymentRequest, reminder bool) {
	if s.notifications == nil {
		return
	}
	payer, err := s.queries.GetUserByWallet(ctx, request.PayerWallet)
	if err != nil {
		if err != pgx.ErrNoRows {
			s.logger.Warn("Failed to look up payer for notification",
				zap.String("payer_wallet", request.PayerWallet),
				zap.Error(err),
			)
		}
		return
	}
	if !payer.Email.Valid {
		return
	}

	email := PaymentRequestEmail{
		ToEmail:         payer.Email.String,
		PayerWallet:     request.PayerWallet,
		RecipientWallet: request.RecipientWallet,
		Amount:          request.Amount,
		TokenSymbol:     "USDC",
		Memo:            request.Memo.String,
		RequestID:       request.ID.String(),
		IsReminder:      reminder,
	}
	if err := s.notifications.SendPaymentRequest(ctx, email); err != nil {
		s.logger.Warn("Payment request notification failed",
			zap.String("request_id", request.ID.String()),
			zap.Error(err),
		)
	}
}
