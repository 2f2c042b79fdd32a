package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/strikelab/punchkiosk/internal/pkg/logger"
	"github.com/strikelab/punchkiosk/internal/pkg/models"
	"github.com/strikelab/punchkiosk/internal/utils"
)

// PunchResult receives force reports from the physical machine. The
// machine resends on a dropped acknowledgement, so duplicates are acked
// with success and database_updated=false.
func (h *SessionHandler) PunchResult(c echo.Context) error {
	var report models.PunchReport
	if err := c.Bind(&report); err != nil {
		return utils.BadRequestResponse(c, "Invalid punch payload")
	}

	// Heartbeats keep the machine's connectivity watchdog happy; they
	// carry no session state.
	if report.IsPing() {
		logger.DebugCtx(c.Request().Context(), "Machine heartbeat",
			logger.String("device_id", report.DeviceID))
		return c.JSON(http.StatusOK, models.PunchResultResponse{Success: true})
	}

	if report.SessionID == "" || report.Force == nil {
		return c.JSON(http.StatusBadRequest, models.PunchResultResponse{
			Success: false,
			Error:   "session_id and force are required",
		})
	}

	updated, err := h.sessionUC.HandlePunchReport(c.Request().Context(), &report)
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Punch report processing failed",
			logger.String("session_id", report.SessionID),
			logger.Err(err))
		return c.JSON(http.StatusInternalServerError, models.PunchResultResponse{
			Success: false,
			Error:   "failed to record punch",
		})
	}

	return c.JSON(http.StatusOK, models.PunchResultResponse{
		Success:         true,
		DatabaseUpdated: updated,
	})
}
