package collector

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"

	"SignalWatch/internal/model"
)

// RESTFetcher implements Fetcher against a generic bars REST API:
//
//	GET {base}/api/v1/bars?symbol=AAPL&interval=1d&period=6mo
//
// returning a JSON array of {timestamp, open, high, low, close, volume}.
type RESTFetcher struct {
	Client *resty.Client
}

// NewRESTFetcher creates a new fetcher with optional proxy and bearer token.
func NewRESTFetcher(opts Options) *RESTFetcher {
	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.timeout()).
		SetRetryCount(opts.Retries).
		SetRetryWaitTime(time.Second).
		AddRetryCondition(retryOnServerError)
	if opts.APIKey != "" {
		client.SetAuthToken(opts.APIKey)
	}
	if opts.Proxy != "" {
		client.SetProxy(opts.Proxy)
	}
	return &RESTFetcher{Client: client}
}

func (f *RESTFetcher) Name() string { return "rest" }

// restBar is the expected JSON shape from the bars API.
type restBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

// FetchBars requests bars at req.Interval. Weekly requests fall back to
// aggregating daily bars when the API has no weekly series.
func (f *RESTFetcher) FetchBars(ctx context.Context, req model.BarRequest) ([]model.OHLCV, error) {
	bars, err := f.fetchBars(ctx, req.Symbol, req.Interval, req.Period)
	if err == nil || req.Interval != "1wk" {
		return bars, err
	}
	daily, dailyErr := f.fetchBars(ctx, req.Symbol, "1d", req.Period)
	if dailyErr != nil {
		return nil, fmt.Errorf("weekly fetch failed: %w; daily fallback also failed: %w", err, dailyErr)
	}
	return aggregateDailyToWeekly(daily), nil
}

func (f *RESTFetcher) fetchBars(ctx context.Context, symbol, interval, period string) ([]model.OHLCV, error) {
	var raw []restBar
	resp, err := f.Client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbol":   symbol,
			"interval": interval,
			"period":   period,
		}).
		ForceContentType("application/json").
		SetResult(&raw).
		Get("/api/v1/bars")
	if err != nil {
		return nil, fmt.Errorf("%w: fetch bars: %w", ErrDataUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: fetch bars: status %d, body: %s", ErrDataUnavailable, resp.StatusCode(), resp.String())
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no %s bars for %s", ErrDataUnavailable, interval, symbol)
	}
	bars := make([]model.OHLCV, len(raw))
	for i, rb := range raw {
		bars[i] = model.OHLCV{
			Time:   time.Unix(rb.Timestamp, 0).UTC(),
			Open:   rb.Open,
			High:   rb.High,
			Low:    rb.Low,
			Close:  rb.Close,
			Volume: rb.Volume,
		}
	}
	// Ensure chronological order
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

// aggregateDailyToWeekly converts daily bars into ISO-week bars.
func aggregateDailyToWeekly(daily []model.OHLCV) []model.OHLCV {
	if len(daily) == 0 {
		return nil
	}
	var weekly []model.OHLCV
	week := daily[0]
	wy, ww := week.Time.ISOWeek()

	for _, d := range daily[1:] {
		y, w := d.Time.ISOWeek()
		if y != wy || w != ww {
			weekly = append(weekly, week)
			week = d
			wy, ww = y, w
			continue
		}
		if d.High > week.High {
			week.High = d.High
		}
		if d.Low < week.Low {
			week.Low = d.Low
		}
		week.Close = d.Close
		week.Volume += d.Volume
	}
	return append(weekly, week)
}
