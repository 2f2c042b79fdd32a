package session

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/strikelab/punchkiosk/internal/pkg/models"
)

// ProviderGW is the single adapter to the external payment provider.
// Test mode is an explicit argument on every call; the gateway never
// reads it from ambient state.
type ProviderGW interface {
	// ListReaders returns the card readers paired with the merchant
	// account.
	ListReaders(ctx context.Context, testMode bool) ([]models.Reader, error)

	// PairReader pairs a new card reader using the device pairing code.
	PairReader(ctx context.Context, pairingCode string, testMode bool) (*models.Reader, error)

	// CreateReaderCheckout issues the "charge to reader" request keyed by
	// the client-generated session ID. It returns as soon as the
	// provider accepts the checkout; settlement arrives via the webhook.
	CreateReaderCheckout(ctx context.Context, req models.CheckoutRequest) (*models.ProviderTransaction, error)

	// FindTransaction looks up a transaction by the client session ID,
	// normalizing whatever shape the provider returns. Read-only and
	// safe to retry.
	FindTransaction(ctx context.Context, sessionID string, testMode bool) (*models.ProviderTransaction, error)

	// Refund refunds part or all of a settled transaction. The provider
	// confirmation is the durability boundary: local state is updated
	// only after this returns nil.
	Refund(ctx context.Context, providerTxID string, amount decimal.Decimal, reason string, testMode bool) error
}

// MachineGW pushes commands to the physical punch machine. One attempt
// per call: any timeout, transport error or non-2xx response is a hard
// failure, and retry policy belongs to the caller.
type MachineGW interface {
	Activate(ctx context.Context, sessionID string) error
}

// BusGW publishes session events on the realtime notification bus.
// Delivery is fire-and-forget and at-most-once, which is why callers
// always write the session store first.
type BusGW interface {
	PublishPaymentEvent(ctx context.Context, event *models.PaymentEvent) error
	PublishPunchEvent(ctx context.Context, event *models.PunchEvent) error
}
