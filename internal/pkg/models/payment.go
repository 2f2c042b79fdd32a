package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InitiatePaymentRequest is the kiosk request to start a charge on the
// paired card reader.
type InitiatePaymentRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	ReaderID string          `json:"reader_id"`
	TestMode bool            `json:"test_mode"`
}

// InitiatePaymentResponse carries the freshly minted session ID the
// kiosk subscribes on. Settlement arrives later via the webhook.
type InitiatePaymentResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ProviderWebhook is the provider-defined webhook envelope. Older
// deliveries carry the payload fields at the top level, so both shapes
// are accepted.
type ProviderWebhook struct {
	EventType string                 `json:"event_type"`
	Payload   ProviderWebhookPayload `json:"payload"`

	// legacy flat shape
	ID                  string `json:"id"`
	Status              string `json:"status"`
	ClientTransactionID string `json:"client_transaction_id"`
	TransactionCode     string `json:"transaction_code"`
}

// ProviderWebhookPayload holds the normalized fields consumed from the
// webhook envelope.
type ProviderWebhookPayload struct {
	ClientTransactionID string `json:"client_transaction_id"`
	Status              string `json:"status"`
	TransactionID       string `json:"transaction_id"`
	MerchantCode        string `json:"merchant_code"`
}

// SessionID returns the client-generated correlation key, regardless of
// which envelope shape the provider used.
func (w *ProviderWebhook) SessionID() string {
	if w.Payload.ClientTransactionID != "" {
		return w.Payload.ClientTransactionID
	}
	return w.ClientTransactionID
}

// RawStatus returns the provider status string from either envelope shape.
func (w *ProviderWebhook) RawStatus() string {
	if w.Payload.Status != "" {
		return w.Payload.Status
	}
	return w.Status
}

// ProviderTransactionID returns the provider-assigned transaction ID, if
// present. It is never used for correlation, only audit/refund lookups.
func (w *ProviderWebhook) ProviderTransactionID() string {
	if w.Payload.TransactionID != "" {
		return w.Payload.TransactionID
	}
	return w.ID
}

// PaymentEvent is published on the per-session payment channel after the
// store write succeeds.
type PaymentEvent struct {
	SessionID     string        `json:"session_id"`
	Status        PaymentStatus `json:"status"`
	ProviderTxID  string        `json:"provider_transaction_id,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
}

// RefundRequest is the admin-triggered refund action.
type RefundRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

// MachineActivation is the outbound command that arms the physical
// machine after a confirmed payment.
type MachineActivation struct {
	SessionID string    `json:"session_id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}
