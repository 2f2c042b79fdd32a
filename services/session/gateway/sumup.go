package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/strikelab/punchkiosk/internal/pkg/circuitbreaker"
	httpclient "github.com/strikelab/punchkiosk/internal/pkg/http"
	"github.com/strikelab/punchkiosk/internal/pkg/logger"
	"github.com/strikelab/punchkiosk/internal/pkg/models"
	"github.com/strikelab/punchkiosk/internal/pkg/retry"
	"github.com/strikelab/punchkiosk/services/session"
)

// SumUpGW talks to the SumUp REST API. Every call takes test mode as an
// explicit argument and selects the matching credential pair; the
// gateway holds no ambient mode.
//
// Calls are wrapped in a circuit breaker so a provider outage fails
// kiosk requests fast instead of stacking up timeouts. Read-only
// lookups additionally retry with backoff.
type SumUpGW struct {
	cfg     models.SumUpConfig
	client  *httpclient.Client
	breaker *circuitbreaker.CircuitBreaker
	retrier *retry.Retrier
	logger  *logger.ZapLogger
}

// NewSumUpGateway creates the SumUp provider gateway.
func NewSumUpGateway(cfg models.SumUpConfig, l *logger.ZapLogger) *SumUpGW {
	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	breakerCfg := circuitbreaker.DefaultConfig("sumup-api")
	breakerCfg.IsFailure = func(err error) bool {
		if err == nil {
			return false
		}
		// Provider-side rejections (4xx) are answers, not outages.
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode < 500 {
			return false
		}
		return true
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = 2
	retryCfg.BaseDelay = 500 * time.Millisecond
	retryCfg.RetryableFunc = func(err error) bool {
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode < 500 {
			return false
		}
		return true
	}

	return &SumUpGW{
		cfg:     cfg,
		client:  httpclient.NewClient(httpclient.Config{BaseURL: cfg.APIBaseURL, Timeout: timeout}),
		breaker: circuitbreaker.New(breakerCfg, l),
		retrier: retry.New(retryCfg, l),
		logger:  l,
	}
}

func (g *SumUpGW) credentials(testMode bool) (apiKey, merchantCode string) {
	if testMode {
		return g.cfg.TestAPIKey, g.cfg.TestMerchantCode
	}
	return g.cfg.LiveAPIKey, g.cfg.LiveMerchantCode
}

func (g *SumUpGW) authHeaders(testMode bool) map[string]string {
	apiKey, _ := g.credentials(testMode)
	return map[string]string{"Authorization": "Bearer " + apiKey}
}

type sumUpReader struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type sumUpReaderList struct {
	Items []sumUpReader `json:"items"`
}

// ListReaders returns the card readers paired with the merchant account
// selected by testMode.
func (g *SumUpGW) ListReaders(ctx context.Context, testMode bool) ([]models.Reader, error) {
	_, merchantCode := g.credentials(testMode)
	path := fmt.Sprintf("/v0.1/merchants/%s/readers", merchantCode)

	var list sumUpReaderList
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.retrier.Execute(ctx, func(ctx context.Context) error {
			return g.client.GetJSON(ctx, path, &list, g.authHeaders(testMode))
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list readers: %w", err)
	}

	readers := make([]models.Reader, 0, len(list.Items))
	for _, r := range list.Items {
		readers = append(readers, models.Reader{ID: r.ID, Name: r.Name, Status: r.Status})
	}
	return readers, nil
}

// PairReader pairs a new card reader using the pairing code shown on
// the device.
func (g *SumUpGW) PairReader(ctx context.Context, pairingCode string, testMode bool) (*models.Reader, error) {
	_, merchantCode := g.credentials(testMode)
	path := fmt.Sprintf("/v0.1/merchants/%s/readers", merchantCode)

	var paired sumUpReader
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.client.PostJSON(ctx, path,
			map[string]string{"pairing_code": pairingCode}, &paired, g.authHeaders(testMode))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to pair reader: %w", err)
	}

	return &models.Reader{ID: paired.ID, Name: paired.Name, Status: paired.Status}, nil
}

type sumUpCheckoutRequest struct {
	TotalAmount sumUpAmount `json:"total_amount"`
	Description string      `json:"description,omitempty"`
}

type sumUpAmount struct {
	Value     int64  `json:"value"` // minor units
	Currency  string `json:"currency"`
	MinorUnit int    `json:"minor_unit"`
}

type sumUpCheckoutResponse struct {
	Data struct {
		ClientTransactionID string `json:"client_transaction_id"`
	} `json:"data"`
}

// CreateReaderCheckout pushes the charge to the physical reader. The
// session ID travels as the provider's client_transaction_id via the
// description-free checkout body; SumUp echoes it back on the webhook,
// which is the correlation key for the whole session.
func (g *SumUpGW) CreateReaderCheckout(ctx context.Context, req models.CheckoutRequest) (*models.ProviderTransaction, error) {
	_, merchantCode := g.credentials(req.TestMode)
	path := fmt.Sprintf("/v0.1/merchants/%s/readers/%s/checkout?client_transaction_id=%s",
		merchantCode, req.ReaderID, req.SessionID)

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid checkout amount %q: %w", req.Amount, err)
	}

	body := sumUpCheckoutRequest{
		TotalAmount: sumUpAmount{
			Value:     amount.Shift(2).IntPart(),
			Currency:  req.Currency,
			MinorUnit: 2,
		},
	}

	var resp sumUpCheckoutResponse
	err = g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.client.PostJSON(ctx, path, body, &resp, g.authHeaders(req.TestMode))
	})
	if err != nil {
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode < 500 {
			g.logger.Warn("SumUp rejected reader checkout",
				logger.String("session_id", req.SessionID),
				logger.String("reader_id", req.ReaderID),
				logger.Int("status", statusErr.StatusCode))
			return nil, session.ErrProviderRejected
		}
		return nil, fmt.Errorf("failed to create reader checkout: %w", err)
	}

	return &models.ProviderTransaction{
		TransactionID: resp.Data.ClientTransactionID,
		Status:        "PENDING",
	}, nil
}

type sumUpTransaction struct {
	ID                  string  `json:"id"`
	TransactionCode     string  `json:"transaction_code"`
	ClientTransactionID string  `json:"client_transaction_id"`
	Status              string  `json:"status"`
	Amount              float64 `json:"amount"`
	Currency            string  `json:"currency"`
}

type sumUpTransactionHistory struct {
	Items []sumUpTransaction `json:"items"`
}

// FindTransaction looks up a transaction by the client session ID,
// falling back to a scan of the recent transaction history when the
// direct lookup misses (the provider indexes client IDs with a lag).
// Read-only, so it retries; payment reconciliation leans on this when
// the webhook never arrives.
func (g *SumUpGW) FindTransaction(ctx context.Context, sessionID string, testMode bool) (*models.ProviderTransaction, error) {
	path := "/v0.1/me/transactions?client_transaction_id=" + sessionID

	var tx sumUpTransaction
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.retrier.Execute(ctx, func(ctx context.Context) error {
			return g.client.GetJSON(ctx, path, &tx, g.authHeaders(testMode))
		})
	})
	if err == nil {
		return normalizeTransaction(tx), nil
	}

	var statusErr *httpclient.StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != 404 {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	var history sumUpTransactionHistory
	err = g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.retrier.Execute(ctx, func(ctx context.Context) error {
			return g.client.GetJSON(ctx, "/v0.1/me/transactions/history?limit=20", &history, g.authHeaders(testMode))
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search transaction history: %w", err)
	}

	for _, item := range history.Items {
		if item.ClientTransactionID == sessionID {
			return normalizeTransaction(item), nil
		}
	}
	return nil, session.ErrSessionNotFound
}

func normalizeTransaction(tx sumUpTransaction) *models.ProviderTransaction {
	return &models.ProviderTransaction{
		TransactionID:   tx.ID,
		TransactionCode: tx.TransactionCode,
		Status:          tx.Status,
		Amount:          decimal.NewFromFloat(tx.Amount).StringFixed(2),
		Currency:        tx.Currency,
	}
}

// Refund refunds part or all of a settled transaction. Local state is
// only updated after this returns nil, making the provider the
// durability boundary for refunds.
func (g *SumUpGW) Refund(ctx context.Context, providerTxID string, amount decimal.Decimal, reason string, testMode bool) error {
	path := "/v0.1/me/refund/" + providerTxID

	body := map[string]interface{}{"amount": amount.InexactFloat64()}
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.client.PostJSON(ctx, path, body, nil, g.authHeaders(testMode))
	})
	if err != nil {
		g.logger.Error("SumUp refund failed",
			logger.String("provider_transaction_id", providerTxID),
			logger.String("amount", amount.StringFixed(2)),
			logger.Err(err))
		return fmt.Errorf("failed to refund transaction: %w", err)
	}

	g.logger.Info("SumUp refund accepted",
		logger.String("provider_transaction_id", providerTxID),
		logger.String("amount", amount.StringFixed(2)),
		logger.String("reason", reason))
	return nil
}
