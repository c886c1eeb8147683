package calculator

import (
	"math"

	"SignalWatch/internal/model"
)

// CalculateBollinger returns the upper and lower bands around sma at
// width standard deviations. A band is undefined wherever either input is.
func CalculateBollinger(sma, stdDev model.Series, width float64) (upper, lower model.Series) {
	upper = make(model.Series, len(sma))
	lower = make(model.Series, len(sma))
	for i := range sma {
		m, okM := sma[i].Get()
		s, okS := stdDev.At(i).Get()
		if !okM || !okS {
			continue
		}
		upper[i] = model.Some(m + width*s)
		lower[i] = model.Some(m - width*s)
	}
	return upper, lower
}

// Bounds scans the finite values of every input and returns the overall low
// and high. ok is false when no finite value exists.
func Bounds(series ...[]float64) (low, high float64, ok bool) {
	low = math.Inf(1)
	high = math.Inf(-1)
	for _, values := range series {
		for _, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v < low {
				low = v
			}
			if v > high {
				high = v
			}
		}
	}
	if math.IsInf(low, 1) {
		return 0, 0, false
	}
	return low, high, true
}
