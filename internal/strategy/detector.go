package strategy

import "SignalWatch/internal/model"

// FindBuySignals returns the ascending indices of bars where the trend,
// momentum, MACD and lower-band conditions all hold.
func FindBuySignals(bars []model.OHLCV, set *model.IndicatorSet) []int {
	var out []int
	for i := 0; i < scanLength(bars, set); i++ {
		if uptrend(set, i) &&
			rsiInBuyRange(set, i) &&
			macdAboveSignal(set, i) &&
			nearLowerBand(set, bars[i].Close, i) {
			out = append(out, i)
		}
	}
	return out
}

// FindSellSignals returns the ascending indices of bars where the sell
// conditions hold and the downtrend has lasted at least three bars.
// Sells are gated on lower-band proximity, the same test buys use.
func FindSellSignals(bars []model.OHLCV, set *model.IndicatorSet) []int {
	var out []int
	for i := 0; i < scanLength(bars, set); i++ {
		if downtrend(set, i) &&
			rsiExtreme(set, i) &&
			macdBelowSignal(set, i) &&
			nearLowerBand(set, bars[i].Close, i) &&
			sustainedDowntrend(set, i) {
			out = append(out, i)
		}
	}
	return out
}

// Detect runs both scans.
func Detect(bars []model.OHLCV, set *model.IndicatorSet) model.SignalSet {
	return model.SignalSet{
		Buy:  FindBuySignals(bars, set),
		Sell: FindSellSignals(bars, set),
	}
}

func scanLength(bars []model.OHLCV, set *model.IndicatorSet) int {
	n := len(bars)
	if l := set.Len(); l < n {
		n = l
	}
	return n
}
