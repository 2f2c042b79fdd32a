package gateway

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/strikelab/punchkiosk/internal/pkg/http"
	"github.com/strikelab/punchkiosk/internal/pkg/logger"
	"github.com/strikelab/punchkiosk/internal/pkg/models"
)

// MachineGW pushes activation commands to the physical punch machine
// controller. Exactly one attempt per call: the machine arms a session
// window on receipt, so a blind retry could arm a stale session. Any
// transport error or non-2xx response is a hard failure and the caller
// downgrades the payment.
type MachineGW struct {
	client *httpclient.Client
	logger *logger.ZapLogger
}

// NewMachineGateway creates the punch machine gateway.
func NewMachineGateway(cfg models.MachineConfig, l *logger.ZapLogger) *MachineGW {
	timeout := time.Duration(cfg.ActivationTimeout) * time.Second
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	return &MachineGW{
		client: httpclient.NewClient(httpclient.Config{BaseURL: cfg.Endpoint, Timeout: timeout}),
		logger: l,
	}
}

// Activate arms the machine for the given session.
func (g *MachineGW) Activate(ctx context.Context, sessionID string) error {
	cmd := models.MachineActivation{
		SessionID: sessionID,
		Type:      "activate",
		Timestamp: time.Now().UTC(),
	}

	if err := g.client.PostJSON(ctx, "/activate", cmd, nil, nil); err != nil {
		g.logger.Error("Machine activation failed",
			logger.String("session_id", sessionID),
			logger.Err(err))
		return fmt.Errorf("failed to activate machine: %w", err)
	}

	g.logger.Info("Machine activated",
		logger.String("session_id", sessionID))
	return nil
}
