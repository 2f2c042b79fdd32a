package constants

// WebSocket event types exchanged with the kiosk UI
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Inbound from the kiosk
	EventStartSession  = "start_session"
	EventCancelSession = "cancel_session"

	// Outbound session lifecycle
	EventSessionCreated = "session_created"
	EventPaymentUpdate  = "payment_update"
	EventAwaitingPunch  = "awaiting_punch"
	EventPunchResult    = "punch_result"
	EventSessionFailed  = "session_failed"
	EventSessionTimeout = "session_timeout"

	// Admin dashboard feed
	EventPunchRecorded = "punch_recorded"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorSessionActive    = "session_active"
	ErrorInternalError    = "internal_error"
)
