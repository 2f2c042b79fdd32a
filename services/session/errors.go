package session

import "errors"

// Domain errors surfaced by the session service. Handlers map these onto
// HTTP statuses; the untrusted public receivers intentionally absorb
// most of them into successful acknowledgements.
var (
	// ErrNoReader means no paired card reader matched the request. This
	// is a precondition failure, not a timeout.
	ErrNoReader = errors.New("no paired card reader available")

	// ErrSessionNotFound means no session row exists for the given ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrProviderRejected means the payment provider rejected the charge
	// synchronously; no session is open for notification purposes.
	ErrProviderRejected = errors.New("payment provider rejected the charge")

	// ErrInvalidTransition means a webhook tried to move a payment status
	// backwards or across terminal states. Logged as an anomaly, state
	// unchanged.
	ErrInvalidTransition = errors.New("invalid payment status transition")

	// ErrRefundExceedsAmount means the accumulated refunds would exceed
	// the original charge. Checked before any provider call.
	ErrRefundExceedsAmount = errors.New("refund would exceed original amount")

	// ErrNotRefundable means the session has no successful charge to
	// refund.
	ErrNotRefundable = errors.New("session has no refundable payment")

	// ErrInvalidCredentials is returned by the admin login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
