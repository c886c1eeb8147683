package collector

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"SignalWatch/internal/calculator"
	"SignalWatch/internal/model"
	"SignalWatch/internal/strategy"
)

const (
	DefaultPeriod   = "6mo"
	DefaultInterval = "1d"
)

// Collector runs the fetch, compute and detect pipeline for one ticker.
type Collector struct {
	Fetcher  Fetcher
	Period   string
	Interval string

	now func() time.Time
}

// New creates a collector using the default six-month daily window when
// period or interval is empty.
func New(f Fetcher, period, interval string) *Collector {
	if period == "" {
		period = DefaultPeriod
	}
	if interval == "" {
		interval = DefaultInterval
	}
	return &Collector{Fetcher: f, Period: period, Interval: interval, now: time.Now}
}

// Analyze fetches bars for symbol and derives its indicators and signals.
// Fetch failures and empty results wrap ErrDataUnavailable.
func (c *Collector) Analyze(ctx context.Context, symbol string) (*model.Analysis, error) {
	req := model.BarRequest{Symbol: symbol, Period: c.Period, Interval: c.Interval}
	log.Debug("fetching bars", "symbol", symbol, "source", c.Fetcher.Name(),
		"period", req.Period, "interval", req.Interval)

	raw, err := c.Fetcher.FetchBars(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", symbol, err)
	}
	bars := normalize(raw)
	if len(bars) == 0 {
		return nil, fmt.Errorf("fetch %s: %w: no usable bars", symbol, ErrDataUnavailable)
	}

	set := calculator.Compute(bars)
	signals := strategy.Detect(bars, set)
	log.Debug("analysis complete", "symbol", symbol, "bars", len(bars),
		"buys", len(signals.Buy), "sells", len(signals.Sell))

	return &model.Analysis{
		Symbol:     symbol,
		Bars:       bars,
		Indicators: set,
		Signals:    signals,
		FetchedAt:  c.now(),
	}, nil
}

// normalize drops bars without a finite close, orders the rest by time and
// keeps the last bar for any duplicated timestamp.
func normalize(raw []model.OHLCV) []model.OHLCV {
	bars := make([]model.OHLCV, 0, len(raw))
	for _, b := range raw {
		if math.IsNaN(b.Close) || math.IsInf(b.Close, 0) {
			continue
		}
		bars = append(bars, b)
	}
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })

	out := bars[:0]
	for _, b := range bars {
		if n := len(out); n > 0 && out[n-1].Time.Equal(b.Time) {
			out[n-1] = b
			continue
		}
		out = append(out, b)
	}
	return out
}
