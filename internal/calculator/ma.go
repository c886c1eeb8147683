package calculator

import (
	"math"

	"SignalWatch/internal/model"
)

// CalculateEMA computes the exponential moving average of values with the
// given span. The first output equals the first input; there is no warm-up.
func CalculateEMA(values []float64, span int) []float64 {
	if len(values) == 0 || span <= 0 {
		return nil
	}
	alpha := 2.0 / (float64(span) + 1.0)
	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = values[i]*alpha + out[i-1]*(1-alpha)
	}
	return out
}

// CalculateSMA computes the trailing simple moving average over period bars.
// The first period-1 values are undefined.
func CalculateSMA(values []float64, period int) model.Series {
	out := make(model.Series, len(values))
	if period <= 0 {
		return out
	}
	for i := period - 1; i < len(values); i++ {
		out[i] = model.Some(mean(values[i-period+1 : i+1]))
	}
	return out
}

// CalculateStdDev computes the trailing sample standard deviation (n-1) over
// period bars. The first period-1 values are undefined.
func CalculateStdDev(values []float64, period int) model.Series {
	out := make(model.Series, len(values))
	if period <= 1 {
		return out
	}
	for i := period - 1; i < len(values); i++ {
		window := values[i-period+1 : i+1]
		m := mean(window)
		var ss float64
		for _, v := range window {
			d := v - m
			ss += d * d
		}
		out[i] = model.Some(math.Sqrt(ss / float64(period-1)))
	}
	return out
}

// Closes extracts close prices in bar order.
func Closes(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func toSeries(values []float64) model.Series {
	out := make(model.Series, len(values))
	for i, v := range values {
		out[i] = model.Some(v)
	}
	return out
}
