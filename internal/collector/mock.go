package collector

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"SignalWatch/internal/model"
)

// MockFetcher serves canned or generated bars. Symbols present in Errs fail
// with the stored error; symbols present in Data return a copy of their bars;
// any other symbol gets a deterministic synthetic series.
type MockFetcher struct {
	Data  map[string][]model.OHLCV
	Errs  map[string]error
	Bars  int
	Start time.Time
}

// NewMockFetcher creates a mock fetcher generating the given number of synthetic bars per symbol.
func NewMockFetcher(bars int) *MockFetcher {
	return &MockFetcher{
		Data:  make(map[string][]model.OHLCV),
		Errs:  make(map[string]error),
		Bars:  bars,
		Start: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
	}
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(ctx context.Context, req model.BarRequest) ([]model.OHLCV, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := m.Errs[req.Symbol]; ok {
		return nil, err
	}
	if bars, ok := m.Data[req.Symbol]; ok {
		if len(bars) == 0 {
			return nil, fmt.Errorf("%w: mock: no bars for %s", ErrDataUnavailable, req.Symbol)
		}
		return append([]model.OHLCV(nil), bars...), nil
	}
	return SyntheticBars(req.Symbol, m.Start, m.Bars), nil
}

// SyntheticBars builds a daily random walk seeded by the symbol name, so the
// same symbol always yields the same series.
func SyntheticBars(symbol string, start time.Time, n int) []model.OHLCV {
	var seed int64
	for _, r := range symbol {
		seed = seed*31 + int64(r)
	}
	rng := rand.New(rand.NewSource(seed))

	bars := make([]model.OHLCV, 0, n)
	price := 50 + float64((seed%150+150)%150)
	for i := 0; i < n; i++ {
		change := rng.NormFloat64() * price * 0.015
		open := price
		price = math.Max(1, price+change)
		spread := math.Abs(change) + price*0.005
		bars = append(bars, model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   open,
			High:   math.Max(open, price) + spread/2,
			Low:    math.Max(0.5, math.Min(open, price)-spread/2),
			Close:  price,
			Volume: float64(1_000_000 + rng.Intn(500_000)),
		})
	}
	return bars
}
