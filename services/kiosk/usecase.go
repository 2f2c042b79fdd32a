package kiosk

import (
	"context"

	"github.com/strikelab/punchkiosk/internal/pkg/models"
)

// EventSink receives the ordered UI events for one kiosk play. The
// websocket handler passes a sink that writes frames to the client.
type EventSink func(event string, payload interface{})

// KioskUC drives one complete play from payment initiation to the punch
// result, absorbing failure and timeout along the way.
type KioskUC interface {
	// RunSession starts a payment and follows the session until a
	// terminal screen state. Cancelling ctx abandons the session; the
	// charge and any armed machine window run their course regardless.
	RunSession(ctx context.Context, req *models.InitiatePaymentRequest, emit EventSink) error
}
