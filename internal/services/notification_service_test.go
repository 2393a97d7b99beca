package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFormatTokenAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "30000000", want: "30.000000"},
		{in: "1", want: "0.000001"},
		{in: "123456789", want: "123.456789"},
		{in: "0", want: "0.000000"},
		{in: "garbage", want: "garbage"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTokenAmount(tt.in))
	}
}

func TestShortWallet(t *testing.T) {
	assert.Equal(t, "0x1000…0001", shortWallet("0x1000000000000000000000000000000000000001"))
	assert.Equal(t, "0xshort", shortWallet("0xshort"))
}

func TestDisabledNotificationServiceIsNoOp(t *testing.T) {
	svc := NewNotificationService("", "pay@splithub.xyz", "SplitHub", "https://splithub.xyz", zap.NewNop())

	err := svc.SendPaymentRequest(context.Background(), PaymentRequestEmail{
		ToEmail:   "payer@example.com",
		RequestID: "req-1",
		Amount:    "30000000",
	})
	assert.NoError(t, err)
}
