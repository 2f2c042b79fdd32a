package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/strikelab/punchkiosk/internal/pkg/logger"
	"github.com/strikelab/punchkiosk/internal/pkg/models"
)

// HandlePunchReport applies a punch-force report from the machine.
// Heartbeat pings are acknowledged upstream, so this only sees real
// punches. The boolean result is the machine's database_updated field:
// true when this delivery set the force, false for a resend.
func (uc *SessionUC) HandlePunchReport(ctx context.Context, report *models.PunchReport) (bool, error) {
	if report.SessionID == "" {
		return false, fmt.Errorf("punch report has no session ID")
	}
	if report.Force == nil {
		return false, fmt.Errorf("punch report has no force reading")
	}

	stored, applied, err := uc.repo.RecordPunch(ctx, report.SessionID, *report.Force, report.DeviceID)
	if err != nil {
		return false, err
	}

	if !applied {
		// The machine resends after a dropped acknowledgement. A second
		// differing reading is physically impossible for one session, so
		// it only gets logged.
		existing := float64(0)
		if stored.PunchForce != nil {
			existing = *stored.PunchForce
		}
		if existing != *report.Force {
			logger.WarnCtx(ctx, "Punch report with differing force ignored",
				logger.String("session_id", report.SessionID),
				logger.Float64("stored_force", existing),
				logger.Float64("reported_force", *report.Force))
		} else {
			logger.InfoCtx(ctx, "Duplicate punch report ignored",
				logger.String("session_id", report.SessionID))
		}
		return false, nil
	}

	if stored.PaymentStatus == models.PaymentStatusPending {
		logger.WarnCtx(ctx, "Punch recorded for unpaid session",
			logger.String("session_id", report.SessionID),
			logger.Float64("force", *report.Force))
	}

	event := &models.PunchEvent{
		SessionID: report.SessionID,
		Force:     *report.Force,
		Status:    models.PunchEventCompleted,
		DeviceID:  report.DeviceID,
		Timestamp: time.Now().UTC(),
	}
	if err := uc.busGW.PublishPunchEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish punch event",
			logger.String("session_id", report.SessionID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Punch recorded",
		logger.String("session_id", report.SessionID),
		logger.Float64("force", *report.Force),
		logger.String("device_id", report.DeviceID))
	return true, nil
}
