package model

import "time"

// SignalSet holds buy and sell bar indices, ascending.
type SignalSet struct {
	Buy  []int
	Sell []int
}

// Analysis is the outcome of one fetch/compute/detect pass for a ticker.
type Analysis struct {
	Symbol     string
	Bars       []OHLCV
	Indicators *IndicatorSet
	Signals    SignalSet
	FetchedAt  time.Time
}

// Empty reports whether there is nothing to plot.
func (a *Analysis) Empty() bool {
	return a == nil || len(a.Bars) == 0
}

// BuyDates returns the timestamps of buy signals.
func (a *Analysis) BuyDates() []time.Time {
	return a.datesAt(a.Signals.Buy)
}

// SellDates returns the timestamps of sell signals.
func (a *Analysis) SellDates() []time.Time {
	return a.datesAt(a.Signals.Sell)
}

func (a *Analysis) datesAt(idx []int) []time.Time {
	out := make([]time.Time, 0, len(idx))
	for _, i := range idx {
		if i >= 0 && i < len(a.Bars) {
			out = append(out, a.Bars[i].Time)
		}
	}
	return out
}
