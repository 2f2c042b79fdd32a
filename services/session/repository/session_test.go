package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strikelab/punchkiosk/internal/pkg/models"
	"github.com/strikelab/punchkiosk/services/session"
)

func setupSessionRepoTest(t *testing.T) (*SessionRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewSessionRepository(sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func sessionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"session_id", "provider_transaction_id", "amount", "currency", "payment_status",
		"punch_force", "reader_id", "device_id", "test_mode", "refund_amount",
		"refund_reason", "created_at", "updated_at",
	})
}

func TestCreateSession(t *testing.T) {
	repo, mock, cleanup := setupSessionRepoTest(t)
	defer cleanup()

	now := time.Now().UTC()
	s := &models.Session{
		SessionID:     "sess-1",
		Amount:        decimal.NewFromInt(2),
		Currency:      "EUR",
		PaymentStatus: models.PaymentStatusPending,
		ReaderID:      "rdr_1",
		RefundAmount:  decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	mock.ExpectExec("INSERT INTO sessions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateSession(context.Background(), s)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSession_NotFound(t *testing.T) {
	repo, mock, cleanup := setupSessionRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT").
		WithArgs("missing").
		WillReturnRows(sessionRows())

	_, err := repo.GetSession(context.Background(), "missing")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyPaymentStatus_AppliesPendingRow(t *testing.T) {
	repo, mock, cleanup := setupSessionRepoTest(t)
	defer cleanup()

	now := time.Now().UTC()

	// Guarded upsert lands on the pending row: an update, not an insert.
	mock.ExpectQuery("INSERT INTO sessions").
		WithArgs("sess-1", models.PaymentStatusSuccessful, "tx-9").
		WillReturnRows(sqlmock.NewRows([]string{"inserted"}).AddRow(false))

	mock.ExpectQuery("SELECT").
		WithArgs("sess-1").
		WillReturnRows(sessionRows().AddRow(
			"sess-1", "tx-9", "2.00", "EUR", "successful",
			nil, "rdr_1", nil, false, "0.00",
			nil, now, now,
		))

	stored, applied, err := repo.ApplyPaymentStatus(context.Background(), "sess-1", models.PaymentStatusSuccessful, "tx-9")

	assert.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, models.PaymentStatusSuccessful, stored.PaymentStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyPaymentStatus_UnknownSessionInsertsOrphanOnly(t *testing.T) {
	repo, mock, cleanup := setupSessionRepoTest(t)
	defer cleanup()

	now := time.Now().UTC()

	// Webhook for a session that was never initiated: the row is kept
	// for audit but the delivery does not count as a settlement.
	mock.ExpectQuery("INSERT INTO sessions").
		WithArgs("sess-forged", models.PaymentStatusSuccessful, "tx-x").
		WillReturnRows(sqlmock.NewRows([]string{"inserted"}).AddRow(true))

	mock.ExpectQuery("SELECT").
		WithArgs("sess-forged").
		WillReturnRows(sessionRows().AddRow(
			"sess-forged", "tx-x", "0.00", "", "successful",
			nil, "", nil, false, "0.00",
			nil, now, now,
		))

	stored, applied, err := repo.ApplyPaymentStatus(context.Background(), "sess-forged", models.PaymentStatusSuccessful, "tx-x")

	assert.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, "sess-forged", stored.SessionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyPaymentStatus_DuplicateDoesNotApply(t *testing.T) {
	repo, mock, cleanup := setupSessionRepoTest(t)
	defer cleanup()

	now := time.Now().UTC()

	// Row already terminal: the guard refuses, stored state returned.
	mock.ExpectQuery("INSERT INTO sessions").
		WithArgs("sess-1", models.PaymentStatusFailed, "tx-9").
		WillReturnRows(sqlmock.NewRows([]string{"inserted"}))

	mock.ExpectQuery("SELECT").
		WithArgs("sess-1").
		WillReturnRows(sessionRows().AddRow(
			"sess-1", "tx-9", "2.00", "EUR", "successful",
			nil, "rdr_1", nil, false, "0.00",
			nil, now, now,
		))

	stored, applied, err := repo.ApplyPaymentStatus(context.Background(), "sess-1", models.PaymentStatusFailed, "tx-9")

	assert.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, models.PaymentStatusSuccessful, stored.PaymentStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPunch_SetOnce(t *testing.T) {
	repo, mock, cleanup := setupSessionRepoTest(t)
	defer cleanup()

	now := time.Now().UTC()

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs("sess-1", 812.4, "esp32-01").
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery("SELECT").
		WithArgs("sess-1").
		WillReturnRows(sessionRows().AddRow(
			"sess-1", "tx-9", "2.00", "EUR", "successful",
			812.4, "rdr_1", "esp32-01", false, "0.00",
			nil, now, now,
		))

	stored, applied, err := repo.RecordPunch(context.Background(), "sess-1", 812.4, "esp32-01")

	assert.NoError(t, err)
	assert.True(t, applied)
	require.NotNil(t, stored.PunchForce)
	assert.Equal(t, 812.4, *stored.PunchForce)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPunch_SecondReportRejectedByGuard(t *testing.T) {
	repo, mock, cleanup := setupSessionRepoTest(t)
	defer cleanup()

	now := time.Now().UTC()

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs("sess-1", 500.0, "").
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery("SELECT").
		WithArgs("sess-1").
		WillReturnRows(sessionRows().AddRow(
			"sess-1", "tx-9", "2.00", "EUR", "successful",
			812.4, "rdr_1", "esp32-01", false, "0.00",
			nil, now, now,
		))

	stored, applied, err := repo.RecordPunch(context.Background(), "sess-1", 500.0, "")

	assert.NoError(t, err)
	assert.False(t, applied)
	require.NotNil(t, stored.PunchForce)
	assert.Equal(t, 812.4, *stored.PunchForce)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyRefund_GuardRejectsOvershoot(t *testing.T) {
	repo, mock, cleanup := setupSessionRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE sessions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ApplyRefund(context.Background(), "sess-1",
		decimal.RequireFromString("5.00"), "oops", models.PaymentStatusRefunded)

	assert.ErrorIs(t, err, session.ErrRefundExceedsAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDowngradePayment_OnlyTouchesSuccessful(t *testing.T) {
	repo, mock, cleanup := setupSessionRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE sessions").
		WithArgs("sess-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DowngradePayment(context.Background(), "sess-1")
	assert.ErrorIs(t, err, session.ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDiscrepancies_Classification(t *testing.T) {
	repo, mock, cleanup := setupSessionRepoTest(t)
	defer cleanup()

	old := time.Now().UTC().Add(-time.Hour)

	mock.ExpectQuery("SELECT").
		WillReturnRows(sessionRows().
			AddRow("sess-paid", "tx-1", "2.00", "EUR", "successful",
				nil, "rdr_1", nil, false, "0.00", nil, old, old).
			AddRow("sess-punched", nil, "0.00", "", "pending",
				640.0, "", "esp32-01", false, "0.00", nil, old, old))

	discrepancies, err := repo.ListDiscrepancies(context.Background(), 165*time.Second)

	assert.NoError(t, err)
	require.Len(t, discrepancies, 2)
	assert.Equal(t, "paid_no_punch", discrepancies[0].Kind)
	assert.Equal(t, "punched_no_payment", discrepancies[1].Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStats(t *testing.T) {
	repo, mock, cleanup := setupSessionRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{
			"total_sessions", "completed_sessions", "paid_sessions",
			"revenue", "total_refunded", "max_force", "avg_force",
		}).AddRow(10, 7, 8, "16.00", "2.00", 950.5, 640.2))

	stats, err := repo.GetStats(context.Background(), nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, 10, stats.TotalSessions)
	assert.Equal(t, 7, stats.CompletedSessions)
	assert.True(t, stats.Revenue.Equal(decimal.RequireFromString("16.00")))
	require.NotNil(t, stats.MaxForce)
	assert.Equal(t, 950.5, *stats.MaxForce)
	assert.NoError(t, mock.ExpectationsWereMet())
}
