package model

import "math"

// Indicator series names, in the order the engine produces them.
const (
	EMA20      = "EMA_20"
	EMA50      = "EMA_50"
	EMA12      = "EMA_12"
	EMA26      = "EMA_26"
	MACD       = "MACD"
	SignalLine = "Signal_Line"
	RSI        = "RSI"
	SMA20      = "SMA_20"
	StdDev     = "StdDev"
	UpperBand  = "Upper_Band"
	LowerBand  = "Lower_Band"
)

// Value is a single indicator reading. Valid is false inside a warm-up window.
type Value struct {
	V     float64
	Valid bool
}

// Some wraps a defined reading. Non-finite inputs are treated as undefined.
func Some(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Value{}
	}
	return Value{V: v, Valid: true}
}

// None is the undefined reading.
func None() Value { return Value{} }

// Get returns the reading and whether it is defined.
func (v Value) Get() (float64, bool) { return v.V, v.Valid }

// Series is an indicator aligned index-for-index with a bar sequence.
type Series []Value

// At returns the value at i, or None when i is out of range.
func (s Series) At(i int) Value {
	if i < 0 || i >= len(s) {
		return None()
	}
	return s[i]
}

// Floats returns the series as plain floats with NaN in undefined slots.
// Intended for plotting only.
func (s Series) Floats() []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		if v.Valid {
			out[i] = v.V
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// IndicatorSet holds every series computed for one bar sequence.
type IndicatorSet struct {
	EMA20      Series
	EMA50      Series
	EMA12      Series
	EMA26      Series
	MACD       Series
	SignalLine Series
	RSI        Series
	SMA20      Series
	StdDev     Series
	UpperBand  Series
	LowerBand  Series
}

// Len returns the shared length of the series.
func (s *IndicatorSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.EMA20)
}

// ByName returns the series for an indicator name constant.
func (s *IndicatorSet) ByName(name string) (Series, bool) {
	if s == nil {
		return nil, false
	}
	switch name {
	case EMA20:
		return s.EMA20, true
	case EMA50:
		return s.EMA50, true
	case EMA12:
		return s.EMA12, true
	case EMA26:
		return s.EMA26, true
	case MACD:
		return s.MACD, true
	case SignalLine:
		return s.SignalLine, true
	case RSI:
		return s.RSI, true
	case SMA20:
		return s.SMA20, true
	case StdDev:
		return s.StdDev, true
	case UpperBand:
		return s.UpperBand, true
	case LowerBand:
		return s.LowerBand, true
	}
	return nil, false
}

// Names lists all indicator names in computation order.
func Names() []string {
	return []string{EMA20, EMA50, EMA12, EMA26, MACD, SignalLine, RSI, SMA20, StdDev, UpperBand, LowerBand}
}
