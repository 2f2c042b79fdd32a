package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/strikelab/punchkiosk/internal/pkg/constants"
	"github.com/strikelab/punchkiosk/internal/pkg/database"
	"github.com/strikelab/punchkiosk/internal/pkg/logger"
	"github.com/strikelab/punchkiosk/internal/pkg/models"
	"github.com/strikelab/punchkiosk/internal/pkg/nsq"
)

// BusGW publishes session events on the realtime notification bus.
// Payment and punch events go out on per-session Redis channels for the
// kiosk orchestrator; punch events additionally fan out on the fixed
// NSQ admin feed for the dashboard. Callers write the session store
// before publishing, so a dropped message degrades latency, not
// correctness.
type BusGW struct {
	redis    *database.RedisClient
	producer *nsq.Producer
	logger   *logger.ZapLogger
}

// NewBusGateway creates the notification bus gateway.
func NewBusGateway(redis *database.RedisClient, producer *nsq.Producer, l *logger.ZapLogger) *BusGW {
	return &BusGW{
		redis:    redis,
		producer: producer,
		logger:   l,
	}
}

// PublishPaymentEvent announces a settled payment on the session's
// payment channel.
func (g *BusGW) PublishPaymentEvent(ctx context.Context, event *models.PaymentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal payment event: %w", err)
	}

	channel := fmt.Sprintf(constants.ChannelPaymentUpdates, event.SessionID)
	if err := g.redis.Publish(ctx, channel, payload); err != nil {
		return fmt.Errorf("failed to publish payment event: %w", err)
	}

	g.logger.Debug("Published payment event",
		logger.String("session_id", event.SessionID),
		logger.String("status", string(event.Status)))
	return nil
}

// PublishPunchEvent announces a recorded punch on the session's punch
// channel and on the admin feed topic.
func (g *BusGW) PublishPunchEvent(ctx context.Context, event *models.PunchEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal punch event: %w", err)
	}

	channel := fmt.Sprintf(constants.ChannelPunchResults, event.SessionID)
	if err := g.redis.Publish(ctx, channel, payload); err != nil {
		return fmt.Errorf("failed to publish punch event: %w", err)
	}

	// The admin feed is a best-effort mirror; a publish failure there
	// must not fail the machine acknowledgement.
	if err := g.producer.Publish(constants.TopicPunchRecorded, event); err != nil {
		g.logger.Warn("Failed to publish punch event to admin feed",
			logger.String("session_id", event.SessionID),
			logger.Err(err))
	}

	g.logger.Debug("Published punch event",
		logger.String("session_id", event.SessionID),
		logger.Float64("force", event.Force))
	return nil
}
