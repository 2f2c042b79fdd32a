package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/strikelab/punchkiosk/internal/pkg/constants"
	"github.com/strikelab/punchkiosk/internal/pkg/models"
	kioskmocks "github.com/strikelab/punchkiosk/services/kiosk/mocks"
	"github.com/strikelab/punchkiosk/services/session"
	sessionmocks "github.com/strikelab/punchkiosk/services/session/mocks"
)

type eventRecorder struct {
	events []string
}

func (r *eventRecorder) sink(event string, _ interface{}) {
	r.events = append(r.events, event)
}

func floatPtr(f float64) *float64 { return &f }

func testConfig(paymentWait, punchWait int) *models.Config {
	return &models.Config{
		Session: models.SessionConfig{
			PaymentWaitSeconds: paymentWait,
			PunchWaitSeconds:   punchWait,
			// Grace far beyond any test duration: the poll fallback
			// stays quiet unless a test lowers it.
			PollGraceSeconds:   300,
			PollIntervalMillis: 20,
		},
	}
}

func pendingSession(id string) *models.Session {
	return &models.Session{
		SessionID:     id,
		Amount:        decimal.NewFromInt(2),
		Currency:      "EUR",
		PaymentStatus: models.PaymentStatusPending,
	}
}

func setupRun(t *testing.T, ctrl *gomock.Controller, cfg *models.Config) (*KioskUC, *sessionmocks.MockSessionUC, chan *models.PaymentEvent, chan *models.PunchEvent) {
	t.Helper()

	mockSession := sessionmocks.NewMockSessionUC(ctrl)
	mockBus := kioskmocks.NewMockNotificationGW(ctrl)

	payCh := make(chan *models.PaymentEvent, 4)
	punchCh := make(chan *models.PunchEvent, 4)

	mockBus.EXPECT().
		SubscribePayment(gomock.Any(), "sess-1").
		Return((<-chan *models.PaymentEvent)(payCh), func() {}, nil)
	mockBus.EXPECT().
		SubscribePunch(gomock.Any(), "sess-1").
		Return((<-chan *models.PunchEvent)(punchCh), func() {}, nil)

	return NewKioskUC(cfg, mockSession, mockBus), mockSession, payCh, punchCh
}

func TestRunSession_HappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockSession, payCh, punchCh := setupRun(t, ctrl, testConfig(30, 30))
	rec := &eventRecorder{}

	mockSession.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return("sess-1", nil)
	mockSession.EXPECT().
		GetSession(gomock.Any(), "sess-1").
		Return(pendingSession("sess-1"), nil)

	payCh <- &models.PaymentEvent{SessionID: "sess-1", Status: models.PaymentStatusSuccessful}
	go func() {
		time.Sleep(50 * time.Millisecond)
		punchCh <- &models.PunchEvent{SessionID: "sess-1", Force: 812.4, Status: models.PunchEventCompleted}
	}()

	err := uc.RunSession(context.Background(), &models.InitiatePaymentRequest{
		Amount:   decimal.NewFromInt(2),
		Currency: "EUR",
	}, rec.sink)

	assert.NoError(t, err)
	assert.Equal(t, []string{
		constants.EventSessionCreated,
		constants.EventPaymentUpdate,
		constants.EventAwaitingPunch,
		constants.EventPunchResult,
	}, rec.events)
}

func TestRunSession_PunchBeforePaymentOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockSession, payCh, punchCh := setupRun(t, ctrl, testConfig(30, 30))
	rec := &eventRecorder{}

	mockSession.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return("sess-1", nil)
	mockSession.EXPECT().
		GetSession(gomock.Any(), "sess-1").
		Return(pendingSession("sess-1"), nil)

	// Out-of-order bus delivery: punch lands first, payment follows.
	punchCh <- &models.PunchEvent{SessionID: "sess-1", Force: 640, Status: models.PunchEventCompleted}
	go func() {
		time.Sleep(50 * time.Millisecond)
		payCh <- &models.PaymentEvent{SessionID: "sess-1", Status: models.PaymentStatusSuccessful}
	}()

	err := uc.RunSession(context.Background(), &models.InitiatePaymentRequest{
		Amount:   decimal.NewFromInt(2),
		Currency: "EUR",
	}, rec.sink)

	assert.NoError(t, err)
	// The held punch resolves the session directly: no awaiting_punch
	// screen, exactly one punch_result.
	assert.Equal(t, []string{
		constants.EventSessionCreated,
		constants.EventPaymentUpdate,
		constants.EventPunchResult,
	}, rec.events)
}

func TestRunSession_PaymentFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockSession, payCh, _ := setupRun(t, ctrl, testConfig(30, 30))
	rec := &eventRecorder{}

	mockSession.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return("sess-1", nil)
	mockSession.EXPECT().
		GetSession(gomock.Any(), "sess-1").
		Return(pendingSession("sess-1"), nil)

	payCh <- &models.PaymentEvent{SessionID: "sess-1", Status: models.PaymentStatusFailed}

	err := uc.RunSession(context.Background(), &models.InitiatePaymentRequest{
		Amount:   decimal.NewFromInt(2),
		Currency: "EUR",
	}, rec.sink)

	assert.NoError(t, err)
	assert.Equal(t, []string{
		constants.EventSessionCreated,
		constants.EventPaymentUpdate,
		constants.EventSessionFailed,
	}, rec.events)
}

func TestRunSession_PaymentWindowTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockSession, _, _ := setupRun(t, ctrl, testConfig(1, 30))
	rec := &eventRecorder{}

	mockSession.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return("sess-1", nil)
	mockSession.EXPECT().
		GetSession(gomock.Any(), "sess-1").
		Return(pendingSession("sess-1"), nil)

	start := time.Now()
	err := uc.RunSession(context.Background(), &models.InitiatePaymentRequest{
		Amount:   decimal.NewFromInt(2),
		Currency: "EUR",
	}, rec.sink)

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), time.Second)
	assert.Equal(t, []string{
		constants.EventSessionCreated,
		constants.EventSessionTimeout,
	}, rec.events)
}

func TestRunSession_LatePaymentDoesNotTripStalePaymentClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockSession, _, punchCh := setupRun(t, ctrl, testConfig(1, 30))
	rec := &eventRecorder{}

	mockSession.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return("sess-1", nil)

	// The payment clock expires while the authoritative read is in
	// flight, so its fire is already queued when the read reports
	// success. That queued expiry must not end the punch window.
	mockSession.EXPECT().
		GetSession(gomock.Any(), "sess-1").
		DoAndReturn(func(_ context.Context, _ string) (*models.Session, error) {
			time.Sleep(1200 * time.Millisecond)
			return &models.Session{
				SessionID:     "sess-1",
				Amount:        decimal.NewFromInt(2),
				Currency:      "EUR",
				PaymentStatus: models.PaymentStatusSuccessful,
			}, nil
		})

	go func() {
		time.Sleep(1300 * time.Millisecond)
		punchCh <- &models.PunchEvent{SessionID: "sess-1", Force: 812.4, Status: models.PunchEventCompleted}
	}()

	err := uc.RunSession(context.Background(), &models.InitiatePaymentRequest{
		Amount:   decimal.NewFromInt(2),
		Currency: "EUR",
	}, rec.sink)

	assert.NoError(t, err)
	assert.Equal(t, []string{
		constants.EventSessionCreated,
		constants.EventPaymentUpdate,
		constants.EventAwaitingPunch,
		constants.EventPunchResult,
	}, rec.events)
}

func TestRunSession_PunchWindowTimeoutAfterPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockSession, payCh, _ := setupRun(t, ctrl, testConfig(30, 1))
	rec := &eventRecorder{}

	mockSession.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return("sess-1", nil)
	mockSession.EXPECT().
		GetSession(gomock.Any(), "sess-1").
		Return(pendingSession("sess-1"), nil)

	payCh <- &models.PaymentEvent{SessionID: "sess-1", Status: models.PaymentStatusSuccessful}

	err := uc.RunSession(context.Background(), &models.InitiatePaymentRequest{
		Amount:   decimal.NewFromInt(2),
		Currency: "EUR",
	}, rec.sink)

	assert.NoError(t, err)
	// Paid but never punched: the punch window times out independently
	// of the (longer) payment window.
	assert.Equal(t, []string{
		constants.EventSessionCreated,
		constants.EventPaymentUpdate,
		constants.EventAwaitingPunch,
		constants.EventSessionTimeout,
	}, rec.events)
}

func TestRunSession_StoreAlreadySettledOnSubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockSession, _, _ := setupRun(t, ctrl, testConfig(30, 30))
	rec := &eventRecorder{}

	mockSession.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return("sess-1", nil)

	// Everything settled between initiation and subscribe: the
	// authoritative read alone must resolve the session, no bus needed.
	mockSession.EXPECT().
		GetSession(gomock.Any(), "sess-1").
		Return(&models.Session{
			SessionID:     "sess-1",
			Amount:        decimal.NewFromInt(2),
			Currency:      "EUR",
			PaymentStatus: models.PaymentStatusSuccessful,
			PunchForce:    floatPtr(900),
		}, nil)

	err := uc.RunSession(context.Background(), &models.InitiatePaymentRequest{
		Amount:   decimal.NewFromInt(2),
		Currency: "EUR",
	}, rec.sink)

	assert.NoError(t, err)
	assert.Equal(t, []string{
		constants.EventSessionCreated,
		constants.EventPaymentUpdate,
		constants.EventPunchResult,
	}, rec.events)
}

func TestRunSession_PollFallbackResolvesSilentBus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig(30, 30)
	cfg.Session.PollGraceSeconds = 0
	uc, mockSession, _, _ := setupRun(t, ctrl, cfg)
	rec := &eventRecorder{}

	mockSession.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return("sess-1", nil)

	// First read: still pending. The bus stays silent, so the poll
	// fallback picks up the settled state.
	first := mockSession.EXPECT().
		GetSession(gomock.Any(), "sess-1").
		Return(pendingSession("sess-1"), nil)
	mockSession.EXPECT().
		GetSession(gomock.Any(), "sess-1").
		Return(&models.Session{
			SessionID:     "sess-1",
			Amount:        decimal.NewFromInt(2),
			Currency:      "EUR",
			PaymentStatus: models.PaymentStatusSuccessful,
			PunchForce:    floatPtr(777),
		}, nil).
		After(first).
		AnyTimes()

	err := uc.RunSession(context.Background(), &models.InitiatePaymentRequest{
		Amount:   decimal.NewFromInt(2),
		Currency: "EUR",
	}, rec.sink)

	assert.NoError(t, err)
	assert.Equal(t, []string{
		constants.EventSessionCreated,
		constants.EventPaymentUpdate,
		constants.EventPunchResult,
	}, rec.events)
}

func TestRunSession_AbandonmentStopsTheRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockSession, _, _ := setupRun(t, ctrl, testConfig(30, 30))
	rec := &eventRecorder{}

	mockSession.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return("sess-1", nil)
	mockSession.EXPECT().
		GetSession(gomock.Any(), "sess-1").
		Return(pendingSession("sess-1"), nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	err := uc.RunSession(ctx, &models.InitiatePaymentRequest{
		Amount:   decimal.NewFromInt(2),
		Currency: "EUR",
	}, rec.sink)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{constants.EventSessionCreated}, rec.events)
}

func TestRunSession_InitiationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSession := sessionmocks.NewMockSessionUC(ctrl)
	mockBus := kioskmocks.NewMockNotificationGW(ctrl)
	uc := NewKioskUC(testConfig(30, 30), mockSession, mockBus)
	rec := &eventRecorder{}

	mockSession.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return("", session.ErrNoReader)

	err := uc.RunSession(context.Background(), &models.InitiatePaymentRequest{
		Amount:   decimal.NewFromInt(2),
		Currency: "EUR",
	}, rec.sink)

	assert.ErrorIs(t, err, session.ErrNoReader)
	assert.Equal(t, []string{constants.EventSessionFailed}, rec.events)
}
