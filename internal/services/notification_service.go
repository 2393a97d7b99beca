package services

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// NotificationService delivers payment request emails through Resend. When no
// API key is configured the service runs in disabled mode and every send is a
// logged no-op, which keeps local development working without credentials.
type NotificationService struct {
	client    *resend.Client
	fromEmail string
	fromName  string
	baseURL   string
	enabled   bool
	logger    *zap.Logger
}

// PaymentRequestEmail is the data rendered into a request or reminder email.
type PaymentRequestEmail struct {
	ToEmail         string
	PayerWallet     string
	RecipientWallet string
	Amount          string
	TokenSymbol     string
	Memo            string
	RequestID       string
	IsReminder      bool
}

func NewNotificationService(apiKey, fromEmail, fromName, baseURL string, logger *zap.Logger) *NotificationService {
	svc := &NotificationService{
		fromEmail: fromEmail,
		fromName:  fromName,
		baseURL:   baseURL,
		enabled:   apiKey != "",
		logger:    logger,
	}
	if svc.enabled {
		svc.client = resend.NewClient(apiKey)
	} else {
		logger.Warn("Notification service disabled: no Resend API key configured")
	}
	return svc
}

// SendPaymentRequest emails the payer that someone is requesting payment.
// Delivery failures are returned to the caller but are never fatal for the
// request flow itself.
func (s *NotificationService) SendPaymentRequest(ctx context.Context, email PaymentRequestEmail) error {
	if !s.enabled {
		s.logger.Debug("Skipping payment request email: notifications disabled",
			zap.String("request_id", email.RequestID),
		)
		return nil
	}
	if email.ToEmail == "" {
		s.logger.Debug("Skipping payment request email: payer has no email on file",
			zap.String("payer_wallet", email.PayerWallet),
		)
		return nil
	}

	subject := fmt.Sprintf("Payment request for %s %s", FormatTokenAmount(email.Amount), email.TokenSymbol)
	if email.IsReminder {
		subject = "Reminder: " + subject
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      []string{email.ToEmail},
		Subject: subject,
		Html:    s.renderPaymentRequestHTML(email),
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		s.logger.Error("Failed to send payment request email",
			zap.String("request_id", email.RequestID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to send payment request email: %w", err)
	}

	s.logger.Info("Payment request email sent",
		zap.String("request_id", email.RequestID),
		zap.String("email_id", sent.Id),
		zap.Bool("reminder", email.IsReminder),
	)
	return nil
}

func (s *NotificationService) renderPaymentRequestHTML(email PaymentRequestEmail) string {
	heading := "You have a new payment request"
	if email.IsReminder {
		heading = "You have an outstanding payment request"
	}
	memoBlock := ""
	if email.Memo != "" {
		memoBlock = fmt.Sprintf(`<p style="color:#555;">"%s"</p>`, email.Memo)
	}
	settleURL := fmt.Sprintf("%s/pay/%s", s.baseURL, email.RequestID)

	return fmt.Sprintf(`
<div style="font-family:sans-serif;max-width:480px;margin:0 auto;">
  <h2>%s</h2>
  <p><strong>%s</strong> requested <strong>%s %s</strong> from your wallet
  <code>%s</code>.</p>
  %s
  <p><a href="%s" style="display:inline-block;padding:12px 24px;background:#6366f1;color:#fff;border-radius:8px;text-decoration:none;">Settle now</a></p>
  <p style="color:#999;font-size:12px;">This request expires 24 hours after it was created.</p>
</div>`,
		heading,
		shortWallet(email.RecipientWallet),
		FormatTokenAmount(email.Amount),
		email.TokenSymbol,
		email.PayerWallet,
		memoBlock,
		settleURL,
	)
}

// FormatTokenAmount converts a base-unit USDC amount string to a
// human-readable six-decimal figure, e.g. "30000000" to "30.000000".
func FormatTokenAmount(baseUnits string) string {
	d, err := decimal.NewFromString(baseUnits)
	if err != nil {
		return baseUnits
	}
	return d.Shift(-6).StringFixed(6)
}

func shortWallet(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "…" + address[len(address)-4:]
}
