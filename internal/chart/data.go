package chart

import (
	"io"

	"SignalWatch/internal/model"
)

// Renderer draws one annotated price chart.
type Renderer interface {
	Render(w io.Writer, d Data) error
}

// Data is everything a chart shows for one ticker.
type Data struct {
	Symbol string
	Bars   []model.OHLCV
	EMA20  model.Series
	EMA50  model.Series
	Upper  model.Series
	Lower  model.Series
	Buy    []int
	Sell   []int
	Zoom   *model.DateRange // nil shows every bar
}

// FromAnalysis picks the plotted series out of an analysis.
func FromAnalysis(a *model.Analysis, zoom *model.DateRange) Data {
	d := Data{Zoom: zoom}
	if a == nil {
		return d
	}
	d.Symbol = a.Symbol
	d.Bars = a.Bars
	d.Buy = a.Signals.Buy
	d.Sell = a.Signals.Sell
	if a.Indicators != nil {
		d.EMA20 = a.Indicators.EMA20
		d.EMA50 = a.Indicators.EMA50
		d.Upper = a.Indicators.UpperBand
		d.Lower = a.Indicators.LowerBand
	}
	return d
}

// window returns the half-open bar range [lo, hi) inside the zoom.
func (d Data) window() (lo, hi int) {
	if d.Zoom == nil {
		return 0, len(d.Bars)
	}
	lo = -1
	for i, b := range d.Bars {
		if !d.Zoom.Contains(b.Time) {
			continue
		}
		if lo < 0 {
			lo = i
		}
		hi = i + 1
	}
	if lo < 0 {
		return 0, 0
	}
	return lo, hi
}

func slice(s model.Series, lo, hi int) []float64 {
	out := make([]float64, 0, hi-lo)
	for i := lo; i < hi; i++ {
		v, ok := s.At(i).Get()
		if !ok {
			v = nan
		}
		out = append(out, v)
	}
	return out
}
