package strategy

import "SignalWatch/internal/model"

// Rule thresholds.
const (
	buyRSIMin      = 30.0
	buyRSIMax      = 60.0
	oversoldRSI    = 30.0
	overboughtRSI  = 70.0
	lowerBandSlack = 1.05
	downtrendBars  = 3
)

// greater reports a > b. Undefined operands compare false.
func greater(a, b model.Value) bool {
	av, aok := a.Get()
	bv, bok := b.Get()
	return aok && bok && av > bv
}

// less reports a < b. Undefined operands compare false.
func less(a, b model.Value) bool {
	av, aok := a.Get()
	bv, bok := b.Get()
	return aok && bok && av < bv
}

// uptrend: EMA_20 above EMA_50.
func uptrend(set *model.IndicatorSet, i int) bool {
	return greater(set.EMA20.At(i), set.EMA50.At(i))
}

// downtrend: EMA_20 below EMA_50.
func downtrend(set *model.IndicatorSet, i int) bool {
	return less(set.EMA20.At(i), set.EMA50.At(i))
}

// sustainedDowntrend requires the downtrend on bar i and the two bars before it.
func sustainedDowntrend(set *model.IndicatorSet, i int) bool {
	if i < downtrendBars {
		return false
	}
	for j := 0; j < downtrendBars; j++ {
		if !downtrend(set, i-j) {
			return false
		}
	}
	return true
}

func rsiInBuyRange(set *model.IndicatorSet, i int) bool {
	rsi, ok := set.RSI.At(i).Get()
	return ok && rsi >= buyRSIMin && rsi <= buyRSIMax
}

func rsiExtreme(set *model.IndicatorSet, i int) bool {
	rsi, ok := set.RSI.At(i).Get()
	return ok && (rsi > overboughtRSI || rsi < oversoldRSI)
}

func macdAboveSignal(set *model.IndicatorSet, i int) bool {
	return greater(set.MACD.At(i), set.SignalLine.At(i))
}

func macdBelowSignal(set *model.IndicatorSet, i int) bool {
	return less(set.MACD.At(i), set.SignalLine.At(i))
}

// nearLowerBand: close within 5% above the lower Bollinger band (or below it).
func nearLowerBand(set *model.IndicatorSet, closePrice float64, i int) bool {
	lower, ok := set.LowerBand.At(i).Get()
	return ok && closePrice <= lower*lowerBandSlack
}
