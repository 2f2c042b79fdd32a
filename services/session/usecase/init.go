package usecase

import (
	"github.com/strikelab/punchkiosk/internal/pkg/models"
	"github.com/strikelab/punchkiosk/services/session"
)

// SessionUC implements the session correlation use cases.
type SessionUC struct {
	cfg        *models.Config
	repo       session.SessionRepo
	providerGW session.ProviderGW
	machineGW  session.MachineGW
	busGW      session.BusGW
}

// NewSessionUC creates a new session use case
func NewSessionUC(
	cfg *models.Config,
	repo session.SessionRepo,
	providerGW session.ProviderGW,
	machineGW session.MachineGW,
	busGW session.BusGW,
) *SessionUC {
	return &SessionUC{
		cfg:        cfg,
		repo:       repo,
		providerGW: providerGW,
		machineGW:  machineGW,
		busGW:      busGW,
	}
}
