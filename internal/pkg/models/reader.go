package models

// Reader is a card reader paired with the merchant account.
type Reader struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Status string `json:"status,omitempty"`
}

// ListReadersRequest selects the credential pair used for the listing
// call. Test mode is explicit per call (never ambient).
type ListReadersRequest struct {
	TestMode bool `json:"test_mode"`
}

// PairReaderRequest pairs a new card reader using the code shown on the
// device.
type PairReaderRequest struct {
	PairingCode string `json:"pairing_code"`
	TestMode    bool   `json:"test_mode"`
}

// CheckoutRequest is the outbound "charge to reader" request. The
// session ID is minted before this call so correlation exists even if
// the provider call partially fails mid-flight.
type CheckoutRequest struct {
	SessionID string
	Amount    string
	Currency  string
	ReaderID  string
	TestMode  bool
}

// ProviderTransaction is the normalized view of a provider transaction
// returned by status lookups and refunds.
type ProviderTransaction struct {
	TransactionID   string `json:"transaction_id"`
	TransactionCode string `json:"transaction_code,omitempty"`
	Status          string `json:"status"`
	Amount          string `json:"amount,omitempty"`
	Currency        string `json:"currency,omitempty"`
}
