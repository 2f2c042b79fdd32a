package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/strikelab/punchkiosk/internal/pkg/models"
	"github.com/strikelab/punchkiosk/services/session"
	"github.com/strikelab/punchkiosk/services/session/mocks"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestInitiatePayment_ReturnsSessionID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(mockUC)

	mockUC.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return("sess-123", nil)

	c, rec := newTestContext(http.MethodPost, "/payments/initiate",
		`{"amount":"2.50","currency":"EUR","reader_id":"rdr_1","test_mode":true}`)

	err := h.InitiatePayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "sess-123")
}

func TestInitiatePayment_NoReaderIsConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(mockUC)

	mockUC.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return("", session.ErrNoReader)

	c, rec := newTestContext(http.MethodPost, "/payments/initiate",
		`{"amount":"2.50","currency":"EUR"}`)

	err := h.InitiatePayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPaymentWebhook_EnvelopeShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(mockUC)

	mockUC.EXPECT().
		HandlePaymentWebhook(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, webhook *models.ProviderWebhook) error {
			assert.Equal(t, "sess-1", webhook.SessionID())
			assert.Equal(t, "SUCCESSFUL", webhook.RawStatus())
			return nil
		})

	c, rec := newTestContext(http.MethodPost, "/webhooks/payment",
		`{"event_type":"solo.transaction.updated","payload":{"client_transaction_id":"sess-1","status":"SUCCESSFUL","transaction_id":"tx-9"}}`)

	err := h.PaymentWebhook(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPaymentWebhook_LegacyFlatShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(mockUC)

	mockUC.EXPECT().
		HandlePaymentWebhook(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, webhook *models.ProviderWebhook) error {
			assert.Equal(t, "sess-2", webhook.SessionID())
			assert.Equal(t, "FAILED", webhook.RawStatus())
			return nil
		})

	c, rec := newTestContext(http.MethodPost, "/webhooks/payment",
		`{"id":"tx-3","status":"FAILED","client_transaction_id":"sess-2"}`)

	err := h.PaymentWebhook(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPaymentWebhook_MissingSessionID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(mockUC)

	c, rec := newTestContext(http.MethodPost, "/webhooks/payment",
		`{"status":"SUCCESSFUL"}`)

	err := h.PaymentWebhook(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPunchResult_ReportsDatabaseUpdated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(mockUC)

	mockUC.EXPECT().
		HandlePunchReport(gomock.Any(), gomock.Any()).
		Return(true, nil)

	c, rec := newTestContext(http.MethodPost, "/punch-results",
		`{"session_id":"sess-1","force":812.4,"device_id":"esp32-01"}`)

	err := h.PunchResult(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database_updated":true`)
}

func TestPunchResult_DuplicateStillAcked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(mockUC)

	mockUC.EXPECT().
		HandlePunchReport(gomock.Any(), gomock.Any()).
		Return(false, nil)

	c, rec := newTestContext(http.MethodPost, "/punch-results",
		`{"session_id":"sess-1","force":812.4}`)

	err := h.PunchResult(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database_updated":false`)
}

func TestPunchResult_PingIsAckedWithoutState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(mockUC)

	// No usecase expectation: a heartbeat never touches the store.
	c, rec := newTestContext(http.MethodPost, "/punch-results",
		`{"type":"ping","device_id":"esp32-01"}`)

	err := h.PunchResult(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPunchResult_MissingForceIsBadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(mockUC)

	c, rec := newTestContext(http.MethodPost, "/punch-results",
		`{"session_id":"sess-1"}`)

	err := h.PunchResult(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(mockUC)

	mockUC.EXPECT().
		AdminLogin(gomock.Any(), "admin", "wrong").
		Return("", int64(0), session.ErrInvalidCredentials)

	c, rec := newTestContext(http.MethodPost, "/admin/login",
		`{"username":"admin","password":"wrong"}`)

	err := h.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefund_ExceedsAmountIsConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(mockUC)

	mockUC.EXPECT().
		Refund(gomock.Any(), "sess-1", gomock.Any()).
		Return(nil, session.ErrRefundExceedsAmount)

	c, rec := newTestContext(http.MethodPost, "/admin/sessions/sess-1/refund",
		`{"amount":"5.00","reason":"oops"}`)
	c.SetParamNames("id")
	c.SetParamValues("sess-1")

	err := h.Refund(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestVerifySession_AppliesProviderOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(mockUC)

	mockUC.EXPECT().
		VerifyPayment(gomock.Any(), "sess-1").
		Return(&models.Session{
			SessionID:     "sess-1",
			PaymentStatus: models.PaymentStatusSuccessful,
		}, nil)

	c, rec := newTestContext(http.MethodPost, "/admin/sessions/sess-1/verify", "")
	c.SetParamNames("id")
	c.SetParamValues("sess-1")

	err := h.VerifySession(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "successful")
}

func TestVerifySession_UnknownSessionIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(mockUC)

	mockUC.EXPECT().
		VerifyPayment(gomock.Any(), "missing").
		Return(nil, session.ErrSessionNotFound)

	c, rec := newTestContext(http.MethodPost, "/admin/sessions/missing/verify", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.VerifySession(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSession_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(mockUC)

	mockUC.EXPECT().
		GetSession(gomock.Any(), "missing").
		Return(nil, session.ErrSessionNotFound)

	c, rec := newTestContext(http.MethodGet, "/sessions/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.GetSession(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
