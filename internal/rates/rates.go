// Package rates fetches USD-base currency exchange rates from an external
// provider. Rates are fetched per request; failures are surfaced, never
// defaulted to 1.0.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Provider supplies the exchange rate from USD to a currency's native unit.
type Provider interface {
	Rate(ctx context.Context, currency string) (float64, error)
}

// ProviderError indicates the rate provider could not supply a usable rate.
type ProviderError struct {
	Currency string
	Reason   string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rate provider: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("rate provider: %s", e.Reason)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Client fetches rates over HTTP. The endpoint must return a JSON body of
// the form {"rates": {"EUR": 0.92, ...}} with USD as the base currency.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient returns a Client for the given endpoint URL.
func NewClient(url string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// Rate fetches the current USD-to-currency rate.
func (c *Client) Rate(ctx context.Context, currency string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, &ProviderError{Currency: currency, Reason: "failed to build request", Err: err}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &ProviderError{Currency: currency, Reason: "request failed", Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("failed to close rate response body",
				zap.String("op", "rates.Rate"),
				zap.Error(closeErr),
			)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return 0, &ProviderError{
			Currency: currency,
			Reason:   fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, &ProviderError{Currency: currency, Reason: "failed to decode response", Err: err}
	}

	rate, ok := body.Rates[currency]
	if !ok {
		return 0, &ProviderError{
			Currency: currency,
			Reason:   fmt.Sprintf("currency %s absent from provider response", currency),
		}
	}
	if rate <= 0 {
		return 0, &ProviderError{
			Currency: currency,
			Reason:   fmt.Sprintf("non-positive rate %v for %s", rate, currency),
		}
	}

	c.logger.Debug("fetched exchange rate",
		zap.String("op", "rates.Rate"),
		zap.String("currency", currency),
		zap.Float64("rate", rate),
		zap.Duration("duration", time.Since(start)),
	)
	return rate, nil
}
