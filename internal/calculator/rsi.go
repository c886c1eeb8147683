package calculator

import "SignalWatch/internal/model"

// neutralRSI is reported for a window with neither gains nor losses.
const neutralRSI = 50.0

// CalculateRSI computes RSI from trailing simple means of gains and losses
// over period bars. The first bar contributes a zero change, so the first
// defined value is at index period-1.
func CalculateRSI(closes []float64, period int) model.Series {
	out := make(model.Series, len(closes))
	if period <= 0 || len(closes) < period {
		return out
	}

	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	for i := period - 1; i < len(closes); i++ {
		avgGain := mean(gains[i-period+1 : i+1])
		avgLoss := mean(losses[i-period+1 : i+1])
		out[i] = model.Some(rsiFromAverages(avgGain, avgLoss))
	}
	return out
}

func rsiFromAverages(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return neutralRSI
		}
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
