package nsq

import (
	"github.com/strikelab/punchkiosk/internal/pkg/constants"
	"github.com/strikelab/punchkiosk/internal/pkg/logger"
	"github.com/strikelab/punchkiosk/internal/pkg/models"
	"github.com/strikelab/punchkiosk/internal/pkg/nsq"
	"github.com/strikelab/punchkiosk/services/kiosk/handler/websocket"
)

// PunchFeedHandler bridges the punch feed topic onto the admin
// dashboard websocket.
type PunchFeedHandler struct {
	feed     *websocket.AdminFeedManager
	consumer *nsq.Consumer
}

// NewPunchFeedHandler subscribes to the punch feed topic and forwards
// every recorded punch to the connected dashboards.
func NewPunchFeedHandler(cfg models.NSQConfig, feed *websocket.AdminFeedManager) (*PunchFeedHandler, error) {
	h := &PunchFeedHandler{feed: feed}

	channel := cfg.ConsumerChannel
	if channel == "" {
		channel = "admin-dashboard"
	}

	consumer, err := nsq.NewConsumer(constants.TopicPunchRecorded, channel, cfg.NSQDAddress, h.handlePunchRecorded)
	if err != nil {
		return nil, err
	}
	h.consumer = consumer

	if len(cfg.LookupdAddrs) > 0 {
		if err := consumer.ConnectToLookupd(cfg.LookupdAddrs); err != nil {
			logger.Warn("Failed to connect punch feed consumer to lookupd",
				logger.Err(err))
		}
	}

	return h, nil
}

func (h *PunchFeedHandler) handlePunchRecorded(body []byte) error {
	var event models.PunchEvent
	if err := nsq.UnmarshalMessage(body, &event); err != nil {
		// Malformed frames are dropped, not requeued.
		logger.Warn("Dropping malformed punch feed message", logger.Err(err))
		return nil
	}

	h.feed.Broadcast(constants.EventPunchRecorded, event)
	return nil
}

// Stop shuts the feed consumer down.
func (h *PunchFeedHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}
