package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"

	"SignalWatch/internal/model"
)

// FinanceGoFetcher implements Fetcher through the piquette/finance-go chart
// iterator. The library has no context support, so cancellation is only
// observed between bars.
type FinanceGoFetcher struct {
	now func() time.Time
}

// NewFinanceGoFetcher creates a fetcher backed by finance-go.
func NewFinanceGoFetcher() *FinanceGoFetcher {
	return &FinanceGoFetcher{now: time.Now}
}

func (f *FinanceGoFetcher) Name() string { return "financego" }

func (f *FinanceGoFetcher) FetchBars(ctx context.Context, req model.BarRequest) ([]model.OHLCV, error) {
	end := f.now()
	start, err := PeriodStart(req.Period, end)
	if err != nil {
		return nil, err
	}

	params := &chart.Params{
		Symbol:   req.Symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.Interval(req.Interval),
	}
	iter := chart.Get(params)

	var bars []model.OHLCV
	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		bar := iter.Bar()
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(int64(bar.Timestamp), 0).UTC(),
			Open:   toFloat(bar.Open),
			High:   toFloat(bar.High),
			Low:    toFloat(bar.Low),
			Close:  toFloat(bar.Close),
			Volume: float64(bar.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%w: finance-go %s: %w", ErrDataUnavailable, req.Symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: finance-go: no data returned for %s", ErrDataUnavailable, req.Symbol)
	}
	return bars, nil
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
