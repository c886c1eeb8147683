package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// BarRequest identifies a price history window for one ticker.
type BarRequest struct {
	Symbol   string
	Period   string // lookback, e.g. "6mo", "1y", "30d"
	Interval string // bar size, e.g. "1d", "1wk", "1h"
}

// DateRange is an inclusive calendar-day window used to zoom charts.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls on or between the Start and End days.
func (r DateRange) Contains(t time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}
