package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/strikelab/punchkiosk/internal/pkg/constants"
	"github.com/strikelab/punchkiosk/internal/pkg/logger"
	"github.com/strikelab/punchkiosk/internal/pkg/models"
	"github.com/strikelab/punchkiosk/services/kiosk"
	"github.com/strikelab/punchkiosk/services/session"
)

// sessionState is the orchestrator's view of one kiosk play.
type sessionState string

const (
	statePaying        sessionState = "paying"
	stateAwaitingPunch sessionState = "awaiting_punch"
	stateResulted      sessionState = "resulted"
	stateFailed        sessionState = "failed"
	stateTimedOut      sessionState = "timed_out"
	stateAbandoned     sessionState = "abandoned"
)

// KioskUC orchestrates kiosk plays: one server-side state machine per
// play, fed by the notification bus with the session store as the
// authority. The bus only ever makes things faster; every decision it
// triggers is re-checkable against the store.
type KioskUC struct {
	cfg       *models.Config
	sessionUC session.SessionUC
	busGW     kiosk.NotificationGW
}

// NewKioskUC creates a new kiosk use case
func NewKioskUC(cfg *models.Config, sessionUC session.SessionUC, busGW kiosk.NotificationGW) *KioskUC {
	return &KioskUC{
		cfg:       cfg,
		sessionUC: sessionUC,
		busGW:     busGW,
	}
}

// sessionRun holds the mutable state of one play. Timer stops happen
// under the same mutex as the state transition, so a timer that lost
// the race to a transition can never fire into the new state.
type sessionRun struct {
	mu        sync.Mutex
	sessionID string
	state     sessionState
	emit      kiosk.EventSink

	paymentTimer *time.Timer
	punchTimer   *time.Timer

	// punch observed before the payment outcome (out-of-order bus
	// delivery); replayed once the payment resolves.
	pendingPunch *models.PunchEvent
}

func (r *sessionRun) transition(to sessionState) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.state {
	case stateResulted, stateFailed, stateTimedOut, stateAbandoned:
		return false
	}

	if to != statePaying && r.paymentTimer != nil {
		r.paymentTimer.Stop()
	}
	if to != stateAwaitingPunch && r.punchTimer != nil {
		r.punchTimer.Stop()
	}

	r.state = to
	return true
}

// timeout moves the run to timed_out, but only while it is still in
// the phase the expiring clock guards. Stop does not drain a timer
// channel, so an expiry can sit queued after the phase it was armed
// for has already resolved; the phase check makes such a value inert.
func (r *sessionRun) timeout(phase sessionState) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != phase {
		return false
	}

	if r.paymentTimer != nil {
		r.paymentTimer.Stop()
	}
	if r.punchTimer != nil {
		r.punchTimer.Stop()
	}

	r.state = stateTimedOut
	return true
}

func (r *sessionRun) currentState() sessionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// RunSession drives one play to a terminal screen state.
func (uc *KioskUC) RunSession(ctx context.Context, req *models.InitiatePaymentRequest, emit kiosk.EventSink) error {
	sessionID, err := uc.sessionUC.InitiatePayment(ctx, req)
	if err != nil {
		emit(constants.EventSessionFailed, map[string]string{"reason": failureReason(err)})
		return err
	}

	emit(constants.EventSessionCreated, map[string]string{"session_id": sessionID})

	payCh, cancelPay, err := uc.busGW.SubscribePayment(ctx, sessionID)
	if err != nil {
		emit(constants.EventSessionFailed, map[string]string{"reason": "subscription_failed"})
		return err
	}
	defer cancelPay()

	punchCh, cancelPunch, err := uc.busGW.SubscribePunch(ctx, sessionID)
	if err != nil {
		emit(constants.EventSessionFailed, map[string]string{"reason": "subscription_failed"})
		return err
	}
	defer cancelPunch()

	run := &sessionRun{
		sessionID:    sessionID,
		state:        statePaying,
		emit:         emit,
		paymentTimer: time.NewTimer(time.Duration(uc.cfg.Session.PaymentWaitSeconds) * time.Second),
		punchTimer:   time.NewTimer(time.Duration(uc.cfg.Session.PunchWaitSeconds) * time.Second),
	}
	// The punch window only opens on payment success.
	run.punchTimer.Stop()

	// Authoritative read: anything that settled between initiation and
	// the subscribe above is only visible in the store.
	if stored, err := uc.sessionUC.GetSession(ctx, sessionID); err == nil {
		uc.absorbStored(run, stored)
	}

	return uc.loop(ctx, run, payCh, punchCh)
}

func (uc *KioskUC) loop(ctx context.Context, run *sessionRun, payCh <-chan *models.PaymentEvent, punchCh <-chan *models.PunchEvent) error {
	pollGrace := time.Duration(uc.cfg.Session.PollGraceSeconds) * time.Second
	pollInterval := time.Duration(uc.cfg.Session.PollIntervalMillis) * time.Millisecond
	if pollInterval <= 0 {
		pollInterval = 2 * time.Second
	}
	lastSignal := time.Now()

	poll := time.NewTicker(pollInterval)
	defer poll.Stop()

	for {
		switch run.currentState() {
		case stateResulted:
			return nil
		case stateFailed, stateTimedOut:
			return nil
		}

		select {
		case <-ctx.Done():
			// Abandonment tears down the subscriptions but revokes no
			// real-world side effect: the charge and the armed machine
			// window run their course.
			run.transition(stateAbandoned)
			logger.Info("Kiosk session abandoned",
				logger.String("session_id", run.sessionID))
			return ctx.Err()

		case event, ok := <-payCh:
			if !ok {
				payCh = nil
				continue
			}
			lastSignal = time.Now()
			uc.onPaymentOutcome(run, event.Status)

		case event, ok := <-punchCh:
			if !ok {
				punchCh = nil
				continue
			}
			lastSignal = time.Now()
			uc.onPunch(run, event)

		case <-run.paymentTimer.C:
			if run.timeout(statePaying) {
				logger.Warn("Payment window elapsed",
					logger.String("session_id", run.sessionID))
				run.emit(constants.EventSessionTimeout, map[string]string{"phase": "payment"})
			}

		case <-run.punchTimer.C:
			if run.timeout(stateAwaitingPunch) {
				// Paid but no punch: the discrepancy report picks this
				// session up once the window is settled.
				logger.Warn("Punch window elapsed",
					logger.String("session_id", run.sessionID))
				run.emit(constants.EventSessionTimeout, map[string]string{"phase": "punch"})
			}

		case <-poll.C:
			if time.Since(lastSignal) < pollGrace {
				continue
			}
			stored, err := uc.sessionUC.GetSession(ctx, run.sessionID)
			if err != nil {
				if !errors.Is(err, session.ErrSessionNotFound) {
					logger.Warn("Session poll failed",
						logger.String("session_id", run.sessionID),
						logger.Err(err))
				}
				continue
			}
			uc.absorbStored(run, stored)
		}
	}
}

// absorbStored applies whatever the store already knows, covering both
// the subscribe race and a silent bus.
func (uc *KioskUC) absorbStored(run *sessionRun, stored *models.Session) {
	if stored.PunchForce != nil {
		uc.onPunch(run, &models.PunchEvent{
			SessionID: stored.SessionID,
			Force:     *stored.PunchForce,
			Status:    models.PunchEventCompleted,
			Timestamp: stored.UpdatedAt,
		})
	}
	if stored.PaymentStatus.IsTerminal() {
		uc.onPaymentOutcome(run, stored.PaymentStatus)
	}
}

func (uc *KioskUC) onPaymentOutcome(run *sessionRun, status models.PaymentStatus) {
	if run.currentState() != statePaying {
		return
	}

	switch status {
	case models.PaymentStatusSuccessful, models.PaymentStatusPartiallyRefunded, models.PaymentStatusRefunded:
		if !run.transition(stateAwaitingPunch) {
			return
		}
		run.emit(constants.EventPaymentUpdate, map[string]string{"status": string(models.PaymentStatusSuccessful)})

		// Out-of-order arrival: the punch may already be here.
		run.mu.Lock()
		pending := run.pendingPunch
		run.pendingPunch = nil
		if pending == nil {
			run.punchTimer.Reset(time.Duration(uc.cfg.Session.PunchWaitSeconds) * time.Second)
		}
		run.mu.Unlock()

		if pending != nil {
			uc.resolvePunch(run, pending)
			return
		}
		run.emit(constants.EventAwaitingPunch, map[string]string{"session_id": run.sessionID})

	case models.PaymentStatusFailed, models.PaymentStatusCancelled:
		if !run.transition(stateFailed) {
			return
		}
		run.emit(constants.EventPaymentUpdate, map[string]string{"status": string(status)})
		run.emit(constants.EventSessionFailed, map[string]string{"reason": string(status)})
	}
}

func (uc *KioskUC) onPunch(run *sessionRun, event *models.PunchEvent) {
	if event.Status != models.PunchEventCompleted {
		return
	}

	switch run.currentState() {
	case statePaying:
		// Punch before the payment outcome. Hold it; if the payment
		// resolves successfully it becomes the result, otherwise the
		// session fails and the punch stays a store-side discrepancy.
		run.mu.Lock()
		if run.pendingPunch == nil {
			run.pendingPunch = event
		}
		run.mu.Unlock()
		logger.Info("Punch observed before payment outcome",
			logger.String("session_id", run.sessionID),
			logger.Float64("force", event.Force))

	case stateAwaitingPunch:
		uc.resolvePunch(run, event)
	}
}

func (uc *KioskUC) resolvePunch(run *sessionRun, event *models.PunchEvent) {
	if !run.transition(stateResulted) {
		return
	}
	run.emit(constants.EventPunchResult, map[string]interface{}{
		"session_id": run.sessionID,
		"force":      event.Force,
	})
	logger.Info("Kiosk session resulted",
		logger.String("session_id", run.sessionID),
		logger.Float64("force", event.Force))
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, session.ErrNoReader):
		return "no_reader"
	case errors.Is(err, session.ErrProviderRejected):
		return "provider_rejected"
	default:
		return "initiation_failed"
	}
}
