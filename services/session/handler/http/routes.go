package http

import (
	"github.com/labstack/echo/v4"

	"github.com/strikelab/punchkiosk/internal/pkg/middleware"
	"github.com/strikelab/punchkiosk/internal/pkg/models"
)

// RegisterRoutes registers the session API routes. The payment webhook
// and the punch receiver are public: they face the tunnel and the
// machine, both of which authenticate by knowing the session ID and
// nothing else. Admin routes sit behind JWT auth.
func (h *SessionHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	// Kiosk-facing routes
	e.POST("/payments/initiate", h.InitiatePayment)
	e.GET("/sessions/:id", h.GetSession)

	// Public receivers (untrusted senders, idempotent application)
	e.POST("/webhooks/payment", h.PaymentWebhook)
	e.POST("/punch-results", h.PunchResult)

	// Admin routes
	e.POST("/admin/login", h.Login)

	adminRoutes := e.Group("/admin", middleware.JWTAuthMiddleware(jwtConfig))
	adminRoutes.GET("/sessions", h.ListSessions)
	adminRoutes.GET("/sessions/discrepancies", h.ListDiscrepancies)
	adminRoutes.GET("/stats", h.GetStats)
	adminRoutes.POST("/sessions/:id/refund", h.Refund)
	adminRoutes.POST("/sessions/:id/verify", h.VerifySession)
	adminRoutes.GET("/readers", h.ListReaders)
	adminRoutes.POST("/readers/pair", h.PairReader)
}
