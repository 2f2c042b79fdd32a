package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/strikelab/punchkiosk/internal/pkg/models"
	"github.com/strikelab/punchkiosk/services/session"
)

const sessionColumns = `
	session_id, provider_transaction_id, amount, currency, payment_status,
	punch_force, reader_id, device_id, test_mode, refund_amount,
	refund_reason, created_at, updated_at`

// SessionRepo implements the session store on PostgreSQL. The database
// is the serialization point: both public receivers go through atomic
// upserts here, so no in-process locking is needed.
type SessionRepo struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *sqlx.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// CreateSession inserts the pending row minted at payment initiation.
func (r *SessionRepo) CreateSession(ctx context.Context, s *models.Session) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO sessions (
			session_id, amount, currency, payment_status, reader_id,
			test_mode, refund_amount, created_at, updated_at
		) VALUES (
			:session_id, :amount, :currency, :payment_status, :reader_id,
			:test_mode, :refund_amount, :created_at, :updated_at
		)
	`, s)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetSession returns the row for the given session ID.
func (r *SessionRepo) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	var s models.Session
	err := r.db.GetContext(ctx, &s,
		`SELECT `+sessionColumns+` FROM sessions WHERE session_id = $1`, sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, session.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

// ApplyPaymentStatus upserts the settlement outcome for a session.
// The guard clause only lets a pending row transition, so duplicate or
// conflicting webhook deliveries touch zero rows and report
// applied=false. A webhook for a session the store never initiated is
// inserted for audit, but also reports applied=false: an orphan row is
// not a settlement and must not arm anything. xmax = 0 distinguishes
// the insert from an update of the initiated row.
func (r *SessionRepo) ApplyPaymentStatus(ctx context.Context, sessionID string, status models.PaymentStatus, providerTxID string) (*models.Session, bool, error) {
	var inserted bool
	err := r.db.GetContext(ctx, &inserted, `
		INSERT INTO sessions (
			session_id, payment_status, provider_transaction_id,
			amount, currency, refund_amount, created_at, updated_at
		) VALUES ($1, $2, NULLIF($3, ''), 0, '', 0, NOW(), NOW())
		ON CONFLICT (session_id) DO UPDATE SET
			payment_status          = EXCLUDED.payment_status,
			provider_transaction_id = COALESCE(EXCLUDED.provider_transaction_id, sessions.provider_transaction_id),
			updated_at              = NOW()
		WHERE sessions.payment_status = 'pending'
		RETURNING (xmax = 0) AS inserted
	`, sessionID, status, providerTxID)

	applied := false
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// Guard refused: the row is already terminal.
	case err != nil:
		return nil, false, fmt.Errorf("failed to apply payment status: %w", err)
	default:
		applied = !inserted
	}

	stored, err := r.GetSession(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}

	return stored, applied, nil
}

// DowngradePayment moves a successful row to failed after a machine
// activation failure. The guard keeps a concurrent refund or duplicate
// downgrade from misfiring.
func (r *SessionRepo) DowngradePayment(ctx context.Context, sessionID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE sessions SET
			payment_status = 'failed',
			updated_at     = NOW()
		WHERE session_id = $1 AND payment_status = 'successful'
	`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to downgrade payment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return session.ErrInvalidTransition
	}
	return nil
}

// RecordPunch sets punch_force using set-once semantics: only a null
// force may be written, so a resent report after a dropped ack affects
// zero rows. An unknown session is upserted as an orphan row so
// punched-without-payment discrepancies remain visible to reporting.
func (r *SessionRepo) RecordPunch(ctx context.Context, sessionID string, force float64, deviceID string) (*models.Session, bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (
			session_id, punch_force, device_id, amount, currency,
			payment_status, refund_amount, created_at, updated_at
		) VALUES ($1, $2, NULLIF($3, ''), 0, '', 'pending', 0, NOW(), NOW())
		ON CONFLICT (session_id) DO UPDATE SET
			punch_force = EXCLUDED.punch_force,
			device_id   = COALESCE(EXCLUDED.device_id, sessions.device_id),
			updated_at  = NOW()
		WHERE sessions.punch_force IS NULL
	`, sessionID, force, deviceID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to record punch: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	stored, err := r.GetSession(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}

	return stored, rows == 1, nil
}

// ApplyRefund accumulates a refund. The invariant
// refund_amount + amount <= original amount re-runs inside the UPDATE,
// so concurrent admin refunds cannot overshoot the charge.
func (r *SessionRepo) ApplyRefund(ctx context.Context, sessionID string, amount decimal.Decimal, reason string, status models.PaymentStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE sessions SET
			refund_amount  = refund_amount + $2,
			refund_reason  = $3,
			payment_status = $4,
			updated_at     = NOW()
		WHERE session_id = $1
		  AND payment_status IN ('successful', 'partially_refunded')
		  AND refund_amount + $2 <= amount
	`, sessionID, amount, reason, status)
	if err != nil {
		return fmt.Errorf("failed to apply refund: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return session.ErrRefundExceedsAmount
	}
	return nil
}

// ListSessions returns the filtered transaction report, newest first.
func (r *SessionRepo) ListSessions(ctx context.Context, filter models.SessionFilter) ([]models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE 1=1`
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND payment_status = $%d", len(args))
	}
	if filter.TestMode != nil {
		args = append(args, *filter.TestMode)
		query += fmt.Sprintf(" AND test_mode = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	sessions := []models.Session{}
	if err := r.db.SelectContext(ctx, &sessions, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// ListDiscrepancies returns sessions old enough that both timeout
// windows have elapsed and where exactly one of {paid, punched} holds.
func (r *SessionRepo) ListDiscrepancies(ctx context.Context, settledAfter time.Duration) ([]models.Discrepancy, error) {
	cutoff := time.Now().UTC().Add(-settledAfter)

	sessions := []models.Session{}
	err := r.db.SelectContext(ctx, &sessions, `
		SELECT `+sessionColumns+` FROM sessions
		WHERE created_at < $1
		  AND (
			(payment_status IN ('successful', 'partially_refunded', 'refunded') AND punch_force IS NULL)
			OR
			(payment_status NOT IN ('successful', 'partially_refunded', 'refunded') AND punch_force IS NOT NULL)
		  )
		ORDER BY created_at DESC
	`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list discrepancies: %w", err)
	}

	discrepancies := make([]models.Discrepancy, 0, len(sessions))
	for _, s := range sessions {
		kind := "punched_no_payment"
		if s.IsPaid() {
			kind = "paid_no_punch"
		}
		discrepancies = append(discrepancies, models.Discrepancy{Session: s, Kind: kind})
	}
	return discrepancies, nil
}

// GetStats aggregates the session log for the statistics views.
func (r *SessionRepo) GetStats(ctx context.Context, from, to *time.Time) (*models.SessionStats, error) {
	var stats models.SessionStats
	err := r.db.GetContext(ctx, &stats, `
		SELECT
			COUNT(*) AS total_sessions,
			COUNT(*) FILTER (
				WHERE payment_status IN ('successful', 'partially_refunded', 'refunded')
				  AND punch_force IS NOT NULL
			) AS completed_sessions,
			COUNT(*) FILTER (
				WHERE payment_status IN ('successful', 'partially_refunded', 'refunded')
			) AS paid_sessions,
			COALESCE(SUM(amount) FILTER (
				WHERE payment_status IN ('successful', 'partially_refunded', 'refunded')
			), 0) AS revenue,
			COALESCE(SUM(refund_amount), 0) AS total_refunded,
			MAX(punch_force) AS max_force,
			AVG(punch_force) AS avg_force
		FROM sessions
		WHERE ($1::timestamptz IS NULL OR created_at >= $1)
		  AND ($2::timestamptz IS NULL OR created_at <= $2)
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get session stats: %w", err)
	}
	return &stats, nil
}
