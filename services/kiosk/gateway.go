package kiosk

import (
	"context"

	"github.com/strikelab/punchkiosk/internal/pkg/models"
)

// NotificationGW subscribes to the per-session realtime channels. The
// bus is fire-and-forget, so subscribers must pair it with an
// authoritative store read; the returned cancel func closes the
// subscription and its channel.
type NotificationGW interface {
	SubscribePayment(ctx context.Context, sessionID string) (<-chan *models.PaymentEvent, func(), error)
	SubscribePunch(ctx context.Context, sessionID string) (<-chan *models.PunchEvent, func(), error)
}
