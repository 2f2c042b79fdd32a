package session

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/strikelab/punchkiosk/internal/pkg/models"
)

// SessionRepo defines the interface for session store operations. The
// store is the serialization point for the two concurrent public
// receivers: every mutation is an atomic upsert or a guarded update, so
// duplicate deliveries cannot double-apply state.
type SessionRepo interface {
	// CreateSession inserts the pending row at payment initiation.
	CreateSession(ctx context.Context, s *models.Session) error

	// GetSession returns the row for the given session ID, or
	// ErrSessionNotFound.
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)

	// ApplyPaymentStatus moves payment_status from pending to the given
	// terminal status. Returns the stored row and whether this call was
	// the one that applied the transition (false for duplicate or
	// conflicting deliveries).
	ApplyPaymentStatus(ctx context.Context, sessionID string, status models.PaymentStatus, providerTxID string) (*models.Session, bool, error)

	// DowngradePayment moves a successful row to failed. Used when the
	// machine cannot be armed after a confirmed charge; the guard keeps
	// it from touching any other state.
	DowngradePayment(ctx context.Context, sessionID string) error

	// RecordPunch sets punch_force if and only if it is still null. A
	// missing row is upserted so punched-without-payment sessions remain
	// auditable. Returns the stored row and whether this call landed.
	RecordPunch(ctx context.Context, sessionID string, force float64, deviceID string) (*models.Session, bool, error)

	// ApplyRefund accumulates a refund under the invariant
	// refund_amount + amount <= original amount, updating the status to
	// refunded or partially_refunded. The guard re-runs inside the
	// UPDATE, so concurrent refunds cannot overshoot.
	ApplyRefund(ctx context.Context, sessionID string, amount decimal.Decimal, reason string, status models.PaymentStatus) error

	// ListSessions returns the transaction report for the admin views.
	ListSessions(ctx context.Context, filter models.SessionFilter) ([]models.Session, error)

	// ListDiscrepancies returns sessions where exactly one of
	// {paid, punched} holds and both timeout windows have elapsed.
	ListDiscrepancies(ctx context.Context, settledAfter time.Duration) ([]models.Discrepancy, error)

	// GetStats aggregates the session log for the statistics views.
	GetStats(ctx context.Context, from, to *time.Time) (*models.SessionStats, error)
}
