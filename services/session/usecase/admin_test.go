package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/strikelab/punchkiosk/internal/pkg/models"
	"github.com/strikelab/punchkiosk/services/session"
)

func strPtr(s string) *string { return &s }

func paidSession(amount, refunded string) *models.Session {
	status := models.PaymentStatusSuccessful
	if refunded != "0" {
		status = models.PaymentStatusPartiallyRefunded
	}
	return &models.Session{
		SessionID:     "sess-1",
		ProviderTxID:  strPtr("tx-9"),
		Amount:        decimal.RequireFromString(amount),
		Currency:      "EUR",
		PaymentStatus: status,
		RefundAmount:  decimal.RequireFromString(refunded),
		TestMode:      true,
	}
}

func TestRefund_PartialThenStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockProvider, _, _ := newTestUC(ctrl)

	mockRepo.EXPECT().
		GetSession(gomock.Any(), "sess-1").
		Return(paidSession("2.00", "0"), nil)

	mockProvider.EXPECT().
		Refund(gomock.Any(), "tx-9", decimal.RequireFromString("0.50"), "jam", true).
		Return(nil)

	mockRepo.EXPECT().
		ApplyRefund(gomock.Any(), "sess-1", decimal.RequireFromString("0.50"), "jam", models.PaymentStatusPartiallyRefunded).
		Return(nil)

	mockRepo.EXPECT().
		GetSession(gomock.Any(), "sess-1").
		Return(paidSession("2.00", "0.50"), nil)

	refunded, err := uc.Refund(context.Background(), "sess-1", &models.RefundRequest{
		Amount: decimal.RequireFromString("0.50"),
		Reason: "jam",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPartiallyRefunded, refunded.PaymentStatus)
}

func TestRefund_FullAmountMarksRefunded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockProvider, _, _ := newTestUC(ctrl)

	mockRepo.EXPECT().
		GetSession(gomock.Any(), "sess-1").
		Return(paidSession("2.00", "1.50"), nil)

	mockProvider.EXPECT().
		Refund(gomock.Any(), "tx-9", decimal.RequireFromString("0.50"), "", true).
		Return(nil)

	mockRepo.EXPECT().
		ApplyRefund(gomock.Any(), "sess-1", decimal.RequireFromString("0.50"), "", models.PaymentStatusRefunded).
		Return(nil)

	mockRepo.EXPECT().
		GetSession(gomock.Any(), "sess-1").
		Return(paidSession("2.00", "2.00"), nil)

	_, err := uc.Refund(context.Background(), "sess-1", &models.RefundRequest{
		Amount: decimal.RequireFromString("0.50"),
	})

	assert.NoError(t, err)
}

func TestRefund_ExceedingAmountRejectedBeforeProviderCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, _, _ := newTestUC(ctrl)

	// 1.50 already refunded on a 2.00 charge; 1.00 more would overshoot.
	// The provider mock has no expectation, so any call to it fails the
	// test.
	mockRepo.EXPECT().
		GetSession(gomock.Any(), "sess-1").
		Return(paidSession("2.00", "1.50"), nil)

	_, err := uc.Refund(context.Background(), "sess-1", &models.RefundRequest{
		Amount: decimal.RequireFromString("1.00"),
	})

	assert.ErrorIs(t, err, session.ErrRefundExceedsAmount)
}

func TestRefund_UnpaidSessionNotRefundable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, _, _ := newTestUC(ctrl)

	mockRepo.EXPECT().
		GetSession(gomock.Any(), "sess-1").
		Return(&models.Session{
			SessionID:     "sess-1",
			PaymentStatus: models.PaymentStatusFailed,
			Amount:        decimal.RequireFromString("2.00"),
		}, nil)

	_, err := uc.Refund(context.Background(), "sess-1", &models.RefundRequest{
		Amount: decimal.RequireFromString("1.00"),
	})

	assert.ErrorIs(t, err, session.ErrNotRefundable)
}

func TestRefund_NonPositiveAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _, _ := newTestUC(ctrl)

	_, err := uc.Refund(context.Background(), "sess-1", &models.RefundRequest{
		Amount: decimal.Zero,
	})

	assert.Error(t, err)
}

func TestListDiscrepancies_UsesBothWindows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, _, _ := newTestUC(ctrl)

	mockRepo.EXPECT().
		ListDiscrepancies(gomock.Any(), 165*time.Second).
		Return([]models.Discrepancy{}, nil)

	_, err := uc.ListDiscrepancies(context.Background())
	assert.NoError(t, err)
}

func TestAdminLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _, _ := newTestUC(ctrl)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	assert.NoError(t, err)
	uc.cfg.Admin = models.AdminConfig{
		Username:     "admin",
		PasswordHash: string(hash),
	}

	token, expiresAt, err := uc.AdminLogin(context.Background(), "admin", "hunter2")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _, _ := newTestUC(ctrl)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	assert.NoError(t, err)
	uc.cfg.Admin = models.AdminConfig{
		Username:     "admin",
		PasswordHash: string(hash),
	}

	_, _, err = uc.AdminLogin(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, session.ErrInvalidCredentials)

	_, _, err = uc.AdminLogin(context.Background(), "root", "hunter2")
	assert.ErrorIs(t, err, session.ErrInvalidCredentials)
}
