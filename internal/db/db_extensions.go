package db

// Status values for payment_requests rows.
const (
	PaymentRequestStatusPending   = "pending"
	PaymentRequestStatusCompleted = "completed"
	PaymentRequestStatusExpired   = "expired"
)

// Status values for expenses rows.
const (
	ExpenseStatusActive  = "active"
	ExpenseStatusSettled = "settled"
)
