package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"SignalWatch/internal/model"
)

// ErrDataUnavailable is wrapped by every fetch failure: unknown ticker,
// network failure, or an empty result for the requested window.
var ErrDataUnavailable = errors.New("market data unavailable")

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchBars(ctx context.Context, req model.BarRequest) ([]model.OHLCV, error)
	Name() string
}

// Options configures the HTTP-backed fetchers.
type Options struct {
	BaseURL string
	APIKey  string
	Proxy   string
	Timeout time.Duration
	Retries int
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return 30 * time.Second
	}
	return o.Timeout
}

// NewFetcher builds the fetcher for a provider name: yahoo, financego,
// rest or mock.
func NewFetcher(provider string, opts Options) (Fetcher, error) {
	switch provider {
	case "", "yahoo":
		return NewYahooFetcher(opts), nil
	case "financego":
		return NewFinanceGoFetcher(), nil
	case "rest":
		if opts.BaseURL == "" {
			return nil, fmt.Errorf("rest provider needs a base URL")
		}
		return NewRESTFetcher(opts), nil
	case "mock":
		return NewMockFetcher(180), nil
	default:
		return nil, fmt.Errorf("unknown data provider %q", provider)
	}
}
