package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/strikelab/punchkiosk/internal/pkg/logger"
	"github.com/strikelab/punchkiosk/internal/pkg/models"
	"github.com/strikelab/punchkiosk/services/session"
)

// normalizeProviderStatus maps the provider's status vocabulary onto the
// session statuses. This is the single place the raw strings are
// interpreted; everything downstream sees the normalized value.
func normalizeProviderStatus(raw string) (models.PaymentStatus, bool) {
	switch strings.ToUpper(raw) {
	case "SUCCESSFUL", "PAID", "COMPLETED":
		return models.PaymentStatusSuccessful, true
	case "FAILED", "DECLINED":
		return models.PaymentStatusFailed, true
	case "CANCELLED", "EXPIRED":
		return models.PaymentStatusCancelled, true
	}
	return "", false
}

// InitiatePayment validates the reader, mints the session ID, inserts
// the pending row and issues the charge to the reader. The row exists
// before the provider call so correlation holds even if the call fails
// mid-flight.
func (uc *SessionUC) InitiatePayment(ctx context.Context, req *models.InitiatePaymentRequest) (string, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return "", fmt.Errorf("payment amount must be positive")
	}
	if req.Currency == "" {
		return "", fmt.Errorf("currency is required")
	}

	readers, err := uc.providerGW.ListReaders(ctx, req.TestMode)
	if err != nil {
		return "", fmt.Errorf("failed to verify card readers: %w", err)
	}

	readerID := req.ReaderID
	if readerID == "" && len(readers) > 0 {
		readerID = readers[0].ID
	}
	found := false
	for _, r := range readers {
		if r.ID == readerID {
			found = true
			break
		}
	}
	if !found {
		return "", session.ErrNoReader
	}

	sessionID := uuid.New().String()
	now := time.Now().UTC()
	row := &models.Session{
		SessionID:     sessionID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		PaymentStatus: models.PaymentStatusPending,
		ReaderID:      readerID,
		TestMode:      req.TestMode,
		RefundAmount:  decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.CreateSession(ctx, row); err != nil {
		return "", err
	}

	_, err = uc.providerGW.CreateReaderCheckout(ctx, models.CheckoutRequest{
		SessionID: sessionID,
		Amount:    req.Amount.StringFixed(2),
		Currency:  req.Currency,
		ReaderID:  readerID,
		TestMode:  req.TestMode,
	})
	if err != nil {
		// Synchronous rejection: close the session immediately so no
		// notification subscription is left waiting for a webhook that
		// will never come.
		if _, _, markErr := uc.repo.ApplyPaymentStatus(ctx, sessionID, models.PaymentStatusFailed, ""); markErr != nil {
			logger.ErrorCtx(ctx, "Failed to mark rejected session as failed",
				logger.String("session_id", sessionID),
				logger.Err(markErr))
		}
		return "", err
	}

	logger.InfoCtx(ctx, "Payment initiated",
		logger.String("session_id", sessionID),
		logger.String("reader_id", readerID),
		logger.String("amount", req.Amount.StringFixed(2)),
		logger.Bool("test_mode", req.TestMode))
	return sessionID, nil
}

// HandlePaymentWebhook applies a provider settlement notification.
// Duplicates and conflicts are absorbed: the store guard decides whether
// this delivery lands, and either way the sender gets a success.
func (uc *SessionUC) HandlePaymentWebhook(ctx context.Context, webhook *models.ProviderWebhook) error {
	sessionID := webhook.SessionID()
	if sessionID == "" {
		return fmt.Errorf("webhook has no client transaction ID")
	}

	status, ok := normalizeProviderStatus(webhook.RawStatus())
	if !ok {
		logger.WarnCtx(ctx, "Ignoring webhook with unknown status",
			logger.String("session_id", sessionID),
			logger.String("raw_status", webhook.RawStatus()))
		return nil
	}

	return uc.settle(ctx, sessionID, status, webhook.ProviderTransactionID())
}

// VerifyPayment reconciles a still-pending session against the
// provider's own transaction record: the recovery path when the
// settlement webhook never arrived. A terminal provider outcome is
// applied exactly as a webhook delivery would be, machine activation
// included.
func (uc *SessionUC) VerifyPayment(ctx context.Context, sessionID string) (*models.Session, error) {
	stored, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if stored.PaymentStatus.IsTerminal() {
		return stored, nil
	}

	tx, err := uc.providerGW.FindTransaction(ctx, sessionID, stored.TestMode)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			// Provider has no record either: still awaiting the charge.
			return stored, nil
		}
		return nil, fmt.Errorf("failed to verify payment with provider: %w", err)
	}

	status, ok := normalizeProviderStatus(tx.Status)
	if !ok {
		logger.InfoCtx(ctx, "Provider transaction still in flight",
			logger.String("session_id", sessionID),
			logger.String("provider_status", tx.Status))
		return stored, nil
	}

	if err := uc.settle(ctx, sessionID, status, tx.TransactionID); err != nil {
		return nil, err
	}
	return uc.repo.GetSession(ctx, sessionID)
}

// settle applies a terminal settlement outcome to the store and, when
// the transition lands, arms the machine and publishes. Shared by the
// webhook receiver and the provider reconciliation.
func (uc *SessionUC) settle(ctx context.Context, sessionID string, status models.PaymentStatus, providerTxID string) error {
	stored, applied, err := uc.repo.ApplyPaymentStatus(ctx, sessionID, status, providerTxID)
	if err != nil {
		return err
	}

	if !applied {
		if stored.PaymentStatus == status {
			logger.InfoCtx(ctx, "Duplicate settlement delivery ignored",
				logger.String("session_id", sessionID),
				logger.String("status", string(status)))
		} else {
			logger.WarnCtx(ctx, "Conflicting settlement delivery ignored",
				logger.String("session_id", sessionID),
				logger.String("stored_status", string(stored.PaymentStatus)),
				logger.String("incoming_status", string(status)))
		}
		return nil
	}

	// A confirmed charge arms the machine before the kiosk hears about
	// it. If the machine cannot be armed the customer must not be left
	// charged for a punch that can never happen.
	if status == models.PaymentStatusSuccessful {
		if err := uc.machineGW.Activate(ctx, sessionID); err != nil {
			logger.ErrorCtx(ctx, "Machine activation failed, downgrading payment",
				logger.String("session_id", sessionID),
				logger.Err(err))
			status = models.PaymentStatusFailed
			if dErr := uc.repo.DowngradePayment(ctx, sessionID); dErr != nil {
				logger.ErrorCtx(ctx, "Failed to downgrade session after activation failure",
					logger.String("session_id", sessionID),
					logger.Err(dErr))
			}
		}
	}

	event := &models.PaymentEvent{
		SessionID:    sessionID,
		Status:       status,
		ProviderTxID: providerTxID,
		Timestamp:    time.Now().UTC(),
	}
	if err := uc.busGW.PublishPaymentEvent(ctx, event); err != nil {
		// Store already holds the truth; subscribers recover via the
		// authoritative read or the poll fallback.
		logger.WarnCtx(ctx, "Failed to publish payment event",
			logger.String("session_id", sessionID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Payment settlement applied",
		logger.String("session_id", sessionID),
		logger.String("status", string(status)))
	return nil
}

// GetSession reads the durable record.
func (uc *SessionUC) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return uc.repo.GetSession(ctx, sessionID)
}
