package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the normalized settlement status of a session.
// Transitions are monotonic: pending may move to exactly one terminal
// status, and terminal statuses only change through an explicit refund.
type PaymentStatus string

const (
	PaymentStatusPending           PaymentStatus = "pending"
	PaymentStatusSuccessful        PaymentStatus = "successful"
	PaymentStatusFailed            PaymentStatus = "failed"
	PaymentStatusCancelled         PaymentStatus = "cancelled"
	PaymentStatusPartiallyRefunded PaymentStatus = "partially_refunded"
	PaymentStatusRefunded          PaymentStatus = "refunded"
)

// IsTerminal reports whether the status ends the payment wait.
func (s PaymentStatus) IsTerminal() bool {
	return s != PaymentStatusPending && s != ""
}

// Session is one purchase-and-punch attempt, keyed by the
// client-generated session ID. It is the durable record consulted by
// the orchestrator recovery path, refund tooling and reporting.
type Session struct {
	SessionID        string          `json:"session_id" db:"session_id"`
	ProviderTxID     *string         `json:"provider_transaction_id,omitempty" db:"provider_transaction_id"`
	Amount           decimal.Decimal `json:"amount" db:"amount"`
	Currency         string          `json:"currency" db:"currency"`
	PaymentStatus    PaymentStatus   `json:"payment_status" db:"payment_status"`
	PunchForce       *float64        `json:"punch_force" db:"punch_force"`
	ReaderID         string          `json:"reader_id" db:"reader_id"`
	DeviceID         *string         `json:"device_id,omitempty" db:"device_id"`
	TestMode         bool            `json:"test_mode" db:"test_mode"`
	RefundAmount     decimal.Decimal `json:"refund_amount" db:"refund_amount"`
	RefundReason     *string         `json:"refund_reason,omitempty" db:"refund_reason"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}

// IsComplete reports whether the session is eligible for the result
// screen: settled successfully with a recorded punch. A zero force
// reading counts; only a null reading does not.
func (s *Session) IsComplete() bool {
	return s.PaymentStatus == PaymentStatusSuccessful && s.PunchForce != nil
}

// IsPaid reports whether the customer was charged, including sessions
// later refunded.
func (s *Session) IsPaid() bool {
	switch s.PaymentStatus {
	case PaymentStatusSuccessful, PaymentStatusPartiallyRefunded, PaymentStatusRefunded:
		return true
	}
	return false
}

// SessionFilter narrows reporting queries.
type SessionFilter struct {
	Status   PaymentStatus
	TestMode *bool
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// Discrepancy classifies a session where exactly one of {paid, punched}
// holds after both timeout windows have elapsed.
type Discrepancy struct {
	Session Session `json:"session"`
	Kind    string  `json:"kind"` // "paid_no_punch" or "punched_no_payment"
}

// SessionStats aggregates the persisted session log for the admin
// statistics views.
type SessionStats struct {
	TotalSessions     int             `json:"total_sessions" db:"total_sessions"`
	CompletedSessions int             `json:"completed_sessions" db:"completed_sessions"`
	PaidSessions      int             `json:"paid_sessions" db:"paid_sessions"`
	Revenue           decimal.Decimal `json:"revenue" db:"revenue"`
	TotalRefunded     decimal.Decimal `json:"total_refunded" db:"total_refunded"`
	MaxForce          *float64        `json:"max_force" db:"max_force"`
	AvgForce          *float64        `json:"avg_force" db:"avg_force"`
}
