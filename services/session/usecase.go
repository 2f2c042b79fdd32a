package session

import (
	"context"
	"time"

	"github.com/strikelab/punchkiosk/internal/pkg/models"
)

// SessionUC defines the session correlation use cases.
type SessionUC interface {
	// InitiatePayment validates the reader, mints a session ID, inserts
	// the pending row and issues the charge to the reader. It does not
	// wait for settlement.
	InitiatePayment(ctx context.Context, req *models.InitiatePaymentRequest) (string, error)

	// HandlePaymentWebhook applies a provider settlement notification:
	// normalize, upsert, arm the machine on success, publish.
	HandlePaymentWebhook(ctx context.Context, webhook *models.ProviderWebhook) error

	// HandlePunchReport applies a punch-force report from the machine
	// using set-once semantics. Returns whether this delivery updated
	// the store; duplicates return false with a nil error.
	HandlePunchReport(ctx context.Context, report *models.PunchReport) (bool, error)

	// GetSession reads the durable record; the orchestrator recovery
	// path and the kiosk result screen use this.
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)

	// VerifyPayment reconciles a still-pending session against the
	// provider's transaction record, applying a terminal outcome as if
	// the webhook had arrived. Used when the webhook never did.
	VerifyPayment(ctx context.Context, sessionID string) (*models.Session, error)

	// Refund performs the admin-triggered refund against the provider,
	// then applies the accumulated amount locally.
	Refund(ctx context.Context, sessionID string, req *models.RefundRequest) (*models.Session, error)

	// ListSessions, ListDiscrepancies and GetStats back the admin
	// reporting views.
	ListSessions(ctx context.Context, filter models.SessionFilter) ([]models.Session, error)
	ListDiscrepancies(ctx context.Context) ([]models.Discrepancy, error)
	GetStats(ctx context.Context, from, to *time.Time) (*models.SessionStats, error)

	// ListReaders and PairReader proxy the provider reader management
	// for the settings screens.
	ListReaders(ctx context.Context, testMode bool) ([]models.Reader, error)
	PairReader(ctx context.Context, pairingCode string, testMode bool) (*models.Reader, error)

	// AdminLogin verifies the admin credential and issues a JWT.
	AdminLogin(ctx context.Context, username, password string) (string, int64, error)
}
