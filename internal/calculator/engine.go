package calculator

import "SignalWatch/internal/model"

// Fixed spans and windows for the indicator set.
const (
	fastTrendSpan   = 20
	slowTrendSpan   = 50
	macdFastSpan    = 12
	macdSlowSpan    = 26
	macdSignalSpan  = 9
	rsiPeriod       = 14
	bollingerPeriod = 20
	bollingerWidth  = 2.0
)

// Compute derives the full indicator set from bars. It has no side effects
// and returns series of the same length as bars; an empty input gives empty
// series.
func Compute(bars []model.OHLCV) *model.IndicatorSet {
	closes := Closes(bars)

	ema12 := CalculateEMA(closes, macdFastSpan)
	ema26 := CalculateEMA(closes, macdSlowSpan)
	macd := make([]float64, len(closes))
	for i := range closes {
		macd[i] = ema12[i] - ema26[i]
	}

	sma := CalculateSMA(closes, bollingerPeriod)
	std := CalculateStdDev(closes, bollingerPeriod)
	upper, lower := CalculateBollinger(sma, std, bollingerWidth)

	return &model.IndicatorSet{
		EMA20:      toSeries(CalculateEMA(closes, fastTrendSpan)),
		EMA50:      toSeries(CalculateEMA(closes, slowTrendSpan)),
		EMA12:      toSeries(ema12),
		EMA26:      toSeries(ema26),
		MACD:       toSeries(macd),
		SignalLine: toSeries(CalculateEMA(macd, macdSignalSpan)),
		RSI:        CalculateRSI(closes, rsiPeriod),
		SMA20:      sma,
		StdDev:     std,
		UpperBand:  upper,
		LowerBand:  lower,
	}
}
