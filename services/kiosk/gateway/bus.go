package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/strikelab/punchkiosk/internal/pkg/constants"
	"github.com/strikelab/punchkiosk/internal/pkg/database"
	"github.com/strikelab/punchkiosk/internal/pkg/logger"
	"github.com/strikelab/punchkiosk/internal/pkg/models"
)

// NotificationGW subscribes to the per-session Redis channels on behalf
// of the orchestrator. Each subscription runs a reader goroutine that
// decodes messages onto a typed channel; cancel closes the pub/sub and
// the channel behind it.
type NotificationGW struct {
	redis  *database.RedisClient
	logger *logger.ZapLogger
}

// NewNotificationGateway creates a new notification gateway
func NewNotificationGateway(redis *database.RedisClient, l *logger.ZapLogger) *NotificationGW {
	return &NotificationGW{
		redis:  redis,
		logger: l,
	}
}

// SubscribePayment subscribes to the session's payment channel.
func (g *NotificationGW) SubscribePayment(ctx context.Context, sessionID string) (<-chan *models.PaymentEvent, func(), error) {
	channel := fmt.Sprintf(constants.ChannelPaymentUpdates, sessionID)
	sub := g.redis.Subscribe(ctx, channel)

	// Receive forces the SUBSCRIBE handshake so the authoritative store
	// read that follows cannot race an unconfirmed subscription.
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to payment channel: %w", err)
	}

	events := make(chan *models.PaymentEvent, 4)
	go func() {
		defer close(events)
		for msg := range sub.Channel() {
			var event models.PaymentEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				g.logger.Warn("Dropping malformed payment event",
					logger.String("session_id", sessionID),
					logger.Err(err))
				continue
			}
			select {
			case events <- &event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, func() { sub.Close() }, nil
}

// SubscribePunch subscribes to the session's punch channel.
func (g *NotificationGW) SubscribePunch(ctx context.Context, sessionID string) (<-chan *models.PunchEvent, func(), error) {
	channel := fmt.Sprintf(constants.ChannelPunchResults, sessionID)
	sub := g.redis.Subscribe(ctx, channel)

	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to punch channel: %w", err)
	}

	events := make(chan *models.PunchEvent, 4)
	go func() {
		defer close(events)
		for msg := range sub.Channel() {
			var event models.PunchEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				g.logger.Warn("Dropping malformed punch event",
					logger.String("session_id", sessionID),
					logger.Err(err))
				continue
			}
			select {
			case events <- &event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, func() { sub.Close() }, nil
}
