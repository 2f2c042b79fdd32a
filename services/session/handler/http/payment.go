package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/strikelab/punchkiosk/internal/pkg/logger"
	"github.com/strikelab/punchkiosk/internal/pkg/models"
	"github.com/strikelab/punchkiosk/internal/utils"
	"github.com/strikelab/punchkiosk/services/session"
)

// SessionHandler handles HTTP requests for payment and punch operations
type SessionHandler struct {
	sessionUC session.SessionUC
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionUC session.SessionUC) *SessionHandler {
	return &SessionHandler{sessionUC: sessionUC}
}

// InitiatePayment starts a charge on the paired card reader and returns
// the freshly minted session ID.
func (h *SessionHandler) InitiatePayment(c echo.Context) error {
	var req models.InitiatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	sessionID, err := h.sessionUC.InitiatePayment(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNoReader):
			return utils.ErrorResponseHandler(c, http.StatusConflict, "No paired card reader available")
		case errors.Is(err, session.ErrProviderRejected):
			return utils.ErrorResponseHandler(c, http.StatusBadGateway, "Payment provider rejected the charge")
		default:
			return utils.InternalServerErrorResponse(c, "Failed to initiate payment")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payment initiated", models.InitiatePaymentResponse{
		Success:   true,
		SessionID: sessionID,
	})
}

// PaymentWebhook receives provider settlement notifications from the
// public tunnel. The sender is untrusted and retries on anything but a
// 200, so duplicates and conflicts are absorbed into success responses.
func (h *SessionHandler) PaymentWebhook(c echo.Context) error {
	var webhook models.ProviderWebhook
	if err := c.Bind(&webhook); err != nil {
		return utils.BadRequestResponse(c, "Invalid webhook payload")
	}

	if webhook.SessionID() == "" {
		return utils.BadRequestResponse(c, "Missing client transaction ID")
	}

	if err := h.sessionUC.HandlePaymentWebhook(c.Request().Context(), &webhook); err != nil {
		logger.ErrorCtx(c.Request().Context(), "Webhook processing failed",
			logger.String("session_id", webhook.SessionID()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to process webhook")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Webhook processed", nil)
}

// GetSession returns the durable session record. The kiosk result
// screen and the orchestrator poll fallback read through this.
func (h *SessionHandler) GetSession(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return utils.BadRequestResponse(c, "Invalid session ID")
	}

	s, err := h.sessionUC.GetSession(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return utils.NotFoundResponse(c, "Session not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to retrieve session")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session retrieved", s)
}
