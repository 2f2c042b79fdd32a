package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/strikelab/punchkiosk/internal/pkg/models"
	"github.com/strikelab/punchkiosk/internal/utils"
	"github.com/strikelab/punchkiosk/services/session"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// Login verifies the admin credential and issues a JWT for the admin
// routes.
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	token, expiresAt, err := h.sessionUC.AdminLogin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid credentials")
		}
		return utils.InternalServerErrorResponse(c, "Login failed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", loginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// ListSessions returns the filterable transaction report.
func (h *SessionHandler) ListSessions(c echo.Context) error {
	filter := models.SessionFilter{
		Status: models.PaymentStatus(c.QueryParam("status")),
	}

	if v := c.QueryParam("test_mode"); v != "" {
		testMode, err := strconv.ParseBool(v)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid test_mode value")
		}
		filter.TestMode = &testMode
	}
	if v := c.QueryParam("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid from timestamp")
		}
		filter.From = &from
	}
	if v := c.QueryParam("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid to timestamp")
		}
		filter.To = &to
	}
	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid limit value")
		}
		filter.Limit = limit
	}
	if v := c.QueryParam("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid offset value")
		}
		filter.Offset = offset
	}

	sessions, err := h.sessionUC.ListSessions(c.Request().Context(), filter)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list sessions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Sessions retrieved", sessions)
}

// ListDiscrepancies returns settled sessions where exactly one of
// {paid, punched} holds.
func (h *SessionHandler) ListDiscrepancies(c echo.Context) error {
	discrepancies, err := h.sessionUC.ListDiscrepancies(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list discrepancies")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Discrepancies retrieved", discrepancies)
}

// GetStats returns the aggregate statistics for the dashboard.
func (h *SessionHandler) GetStats(c echo.Context) error {
	var from, to *time.Time
	if v := c.QueryParam("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid from timestamp")
		}
		from = &t
	}
	if v := c.QueryParam("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid to timestamp")
		}
		to = &t
	}

	stats, err := h.sessionUC.GetStats(c.Request().Context(), from, to)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to get statistics")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Statistics retrieved", stats)
}

// Refund refunds part or all of a settled session.
func (h *SessionHandler) Refund(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return utils.BadRequestResponse(c, "Invalid session ID")
	}

	var req models.RefundRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	refunded, err := h.sessionUC.Refund(c.Request().Context(), sessionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			return utils.NotFoundResponse(c, "Session not found")
		case errors.Is(err, session.ErrNotRefundable):
			return utils.ErrorResponseHandler(c, http.StatusConflict, "Session has no refundable payment")
		case errors.Is(err, session.ErrRefundExceedsAmount):
			return utils.ErrorResponseHandler(c, http.StatusConflict, "Refund would exceed original amount")
		default:
			return utils.InternalServerErrorResponse(c, "Failed to process refund")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Refund applied", refunded)
}

// VerifySession reconciles a pending session against the provider's
// transaction record, for sessions whose webhook never arrived.
func (h *SessionHandler) VerifySession(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return utils.BadRequestResponse(c, "Invalid session ID")
	}

	verified, err := h.sessionUC.VerifyPayment(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return utils.NotFoundResponse(c, "Session not found")
		}
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "Failed to verify payment with provider")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session verified", verified)
}

// ListReaders returns the card readers paired with the merchant
// account.
func (h *SessionHandler) ListReaders(c echo.Context) error {
	testMode, _ := strconv.ParseBool(c.QueryParam("test_mode"))

	readers, err := h.sessionUC.ListReaders(c.Request().Context(), testMode)
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "Failed to list readers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Readers retrieved", readers)
}

// PairReader pairs a new card reader using the device pairing code.
func (h *SessionHandler) PairReader(c echo.Context) error {
	var req models.PairReaderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PairingCode == "" {
		return utils.BadRequestResponse(c, "Pairing code is required")
	}

	reader, err := h.sessionUC.PairReader(c.Request().Context(), req.PairingCode, req.TestMode)
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "Failed to pair reader")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Reader paired", reader)
}
