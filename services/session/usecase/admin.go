package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/strikelab/punchkiosk/internal/pkg/jwt"
	"github.com/strikelab/punchkiosk/internal/pkg/logger"
	"github.com/strikelab/punchkiosk/internal/pkg/models"
	"github.com/strikelab/punchkiosk/services/session"
)

// Refund performs the admin-triggered refund. The accumulation
// invariant is checked locally before the provider is touched; the
// provider confirmation is the durability boundary, and the guarded
// local update re-checks the invariant against concurrent refunds.
func (uc *SessionUC) Refund(ctx context.Context, sessionID string, req *models.RefundRequest) (*models.Session, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("refund amount must be positive")
	}

	stored, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !stored.IsPaid() || stored.PaymentStatus == models.PaymentStatusRefunded || stored.ProviderTxID == nil {
		return nil, session.ErrNotRefundable
	}
	if stored.RefundAmount.Add(req.Amount).GreaterThan(stored.Amount) {
		return nil, session.ErrRefundExceedsAmount
	}

	if err := uc.providerGW.Refund(ctx, *stored.ProviderTxID, req.Amount, req.Reason, stored.TestMode); err != nil {
		return nil, err
	}

	newTotal := stored.RefundAmount.Add(req.Amount)
	status := models.PaymentStatusPartiallyRefunded
	if newTotal.Equal(stored.Amount) {
		status = models.PaymentStatusRefunded
	}
	if err := uc.repo.ApplyRefund(ctx, sessionID, req.Amount, req.Reason, status); err != nil {
		// The provider already moved money; this needs an operator.
		logger.ErrorCtx(ctx, "Provider refund succeeded but local update failed",
			logger.String("session_id", sessionID),
			logger.String("amount", req.Amount.StringFixed(2)),
			logger.Err(err))
		return nil, err
	}

	logger.InfoCtx(ctx, "Refund applied",
		logger.String("session_id", sessionID),
		logger.String("amount", req.Amount.StringFixed(2)),
		logger.String("status", string(status)))

	return uc.repo.GetSession(ctx, sessionID)
}

// ListSessions backs the admin transaction report.
func (uc *SessionUC) ListSessions(ctx context.Context, filter models.SessionFilter) ([]models.Session, error) {
	return uc.repo.ListSessions(ctx, filter)
}

// ListDiscrepancies returns sessions where exactly one of {paid,
// punched} holds. A session only counts once both timeout windows have
// elapsed, so in-flight sessions never show up as discrepancies.
func (uc *SessionUC) ListDiscrepancies(ctx context.Context) ([]models.Discrepancy, error) {
	settledAfter := time.Duration(uc.cfg.Session.PaymentWaitSeconds+uc.cfg.Session.PunchWaitSeconds) * time.Second
	return uc.repo.ListDiscrepancies(ctx, settledAfter)
}

// GetStats aggregates the session log for the admin statistics views.
func (uc *SessionUC) GetStats(ctx context.Context, from, to *time.Time) (*models.SessionStats, error) {
	return uc.repo.GetStats(ctx, from, to)
}

// ListReaders proxies the provider reader listing for the settings
// screen.
func (uc *SessionUC) ListReaders(ctx context.Context, testMode bool) ([]models.Reader, error) {
	return uc.providerGW.ListReaders(ctx, testMode)
}

// PairReader proxies the provider reader pairing flow.
func (uc *SessionUC) PairReader(ctx context.Context, pairingCode string, testMode bool) (*models.Reader, error) {
	return uc.providerGW.PairReader(ctx, pairingCode, testMode)
}

// AdminLogin verifies the configured admin credential and issues a JWT.
func (uc *SessionUC) AdminLogin(ctx context.Context, username, password string) (string, int64, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(uc.cfg.Admin.Username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(uc.cfg.Admin.PasswordHash), []byte(password))
	if !usernameOK || passwordErr != nil {
		logger.WarnCtx(ctx, "Admin login rejected",
			logger.String("username", username))
		return "", 0, session.ErrInvalidCredentials
	}

	token, expiresAt, err := jwt.GenerateToken(username, "admin", uc.cfg)
	if err != nil {
		return "", 0, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.InfoCtx(ctx, "Admin login succeeded",
		logger.String("username", username))
	return token, expiresAt, nil
}
