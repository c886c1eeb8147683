package strategy

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"SignalWatch/internal/calculator"
	"SignalWatch/internal/model"
)

// fixture builds an indicator set where every series is defined and neutral:
// no buy or sell condition holds anywhere.
type fixture struct {
	bars []model.OHLCV
	set  *model.IndicatorSet
}

func newFixture(n int) *fixture {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	f := &fixture{
		bars: make([]model.OHLCV, n),
		set: &model.IndicatorSet{
			EMA20:      make(model.Series, n),
			EMA50:      make(model.Series, n),
			EMA12:      make(model.Series, n),
			EMA26:      make(model.Series, n),
			MACD:       make(model.Series, n),
			SignalLine: make(model.Series, n),
			RSI:        make(model.Series, n),
			SMA20:      make(model.Series, n),
			StdDev:     make(model.Series, n),
			UpperBand:  make(model.Series, n),
			LowerBand:  make(model.Series, n),
		},
	}
	for i := 0; i < n; i++ {
		f.bars[i] = model.OHLCV{Time: base.AddDate(0, 0, i), Close: 200}
		f.set.EMA20[i] = model.Some(100)
		f.set.EMA50[i] = model.Some(100)
		f.set.MACD[i] = model.Some(0)
		f.set.SignalLine[i] = model.Some(0)
		f.set.RSI[i] = model.Some(50)
		f.set.LowerBand[i] = model.Some(100)
	}
	return f
}

func (f *fixture) buyAt(i int) {
	f.set.EMA20[i] = model.Some(110)
	f.set.EMA50[i] = model.Some(100)
	f.set.RSI[i] = model.Some(45)
	f.set.MACD[i] = model.Some(1)
	f.set.SignalLine[i] = model.Some(0.5)
	f.bars[i].Close = 104
}

func (f *fixture) downtrendAt(i int) {
	f.set.EMA20[i] = model.Some(90)
	f.set.EMA50[i] = model.Some(100)
}

func (f *fixture) sellAt(i int) {
	f.downtrendAt(i)
	f.set.RSI[i] = model.Some(25)
	f.set.MACD[i] = model.Some(-1)
	f.set.SignalLine[i] = model.Some(-0.5)
	f.bars[i].Close = 104
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFindBuySignals_AllConditions(t *testing.T) {
	f := newFixture(10)
	f.buyAt(4)
	f.buyAt(7)
	got := FindBuySignals(f.bars, f.set)
	if !equalInts(got, []int{4, 7}) {
		t.Fatalf("expected [4 7], got %v", got)
	}
}

func TestFindBuySignals_EachConditionRequired(t *testing.T) {
	tests := []struct {
		name    string
		violate func(f *fixture)
	}{
		{"ema order", func(f *fixture) { f.set.EMA20[5] = model.Some(100) }},
		{"rsi below range", func(f *fixture) { f.set.RSI[5] = model.Some(29.9) }},
		{"rsi above range", func(f *fixture) { f.set.RSI[5] = model.Some(60.1) }},
		{"macd", func(f *fixture) { f.set.MACD[5] = model.Some(0.5) }},
		{"band proximity", func(f *fixture) { f.bars[5].Close = 105.01 }},
		{"undefined rsi", func(f *fixture) { f.set.RSI[5] = model.None() }},
		{"undefined lower band", func(f *fixture) { f.set.LowerBand[5] = model.None() }},
	}
	for _, tt := range tests {
		f := newFixture(8)
		f.buyAt(5)
		tt.violate(f)
		if got := FindBuySignals(f.bars, f.set); len(got) != 0 {
			t.Errorf("%s: expected no buy signal, got %v", tt.name, got)
		}
	}
}

func TestFindBuySignals_RSIBoundsInclusive(t *testing.T) {
	for _, rsi := range []float64{30, 60} {
		f := newFixture(6)
		f.buyAt(2)
		f.set.RSI[2] = model.Some(rsi)
		if got := FindBuySignals(f.bars, f.set); !equalInts(got, []int{2}) {
			t.Errorf("rsi=%v: expected [2], got %v", rsi, got)
		}
	}
}

func TestFindSellSignals_Hysteresis(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fixture)
		want  []int
	}{
		{
			name: "three bar downtrend",
			setup: func(f *fixture) {
				f.downtrendAt(4)
				f.downtrendAt(5)
				f.sellAt(6)
			},
			want: []int{6},
		},
		{
			name: "downtrend only on i and i-1",
			setup: func(f *fixture) {
				f.downtrendAt(5)
				f.sellAt(6)
			},
			want: nil,
		},
		{
			name: "downtrend holds but close too far above lower band",
			setup: func(f *fixture) {
				f.downtrendAt(4)
				f.downtrendAt(5)
				f.sellAt(6)
				f.bars[6].Close = 106
			},
			want: nil,
		},
		{
			name: "index two is never eligible",
			setup: func(f *fixture) {
				f.downtrendAt(0)
				f.downtrendAt(1)
				f.sellAt(2)
			},
			want: nil,
		},
		{
			name: "index three with full lookback",
			setup: func(f *fixture) {
				f.downtrendAt(1)
				f.downtrendAt(2)
				f.sellAt(3)
			},
			want: []int{3},
		},
		{
			name: "overbought rsi also qualifies",
			setup: func(f *fixture) {
				f.downtrendAt(4)
				f.downtrendAt(5)
				f.sellAt(6)
				f.set.RSI[6] = model.Some(75)
			},
			want: []int{6},
		},
		{
			name: "rsi between thresholds",
			setup: func(f *fixture) {
				f.downtrendAt(4)
				f.downtrendAt(5)
				f.sellAt(6)
				f.set.RSI[6] = model.Some(70)
			},
			want: nil,
		},
		{
			name: "undefined ema in lookback",
			setup: func(f *fixture) {
				f.downtrendAt(5)
				f.set.EMA50[4] = model.None()
				f.sellAt(6)
			},
			want: nil,
		},
	}
	for _, tt := range tests {
		f := newFixture(10)
		tt.setup(f)
		got := FindSellSignals(f.bars, f.set)
		if !equalInts(got, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestDetect_NilAndEmpty(t *testing.T) {
	if got := Detect(nil, nil); len(got.Buy) != 0 || len(got.Sell) != 0 {
		t.Fatalf("expected no signals, got %+v", got)
	}
	set := calculator.Compute(nil)
	if got := Detect(nil, set); len(got.Buy) != 0 || len(got.Sell) != 0 {
		t.Fatalf("expected no signals, got %+v", got)
	}
}

func TestDetect_MismatchedLengths(t *testing.T) {
	f := newFixture(10)
	f.buyAt(8)
	got := Detect(f.bars[:5], f.set)
	if len(got.Buy) != 0 {
		t.Fatalf("expected scan limited to 5 bars, got %v", got.Buy)
	}
}

func randomWalk(r *rand.Rand, n int) []model.OHLCV {
	base := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, n)
	price := 100.0
	for i := range bars {
		price *= 1 + (r.Float64()-0.5)*0.08
		bars[i] = model.OHLCV{Time: base.AddDate(0, 0, i), Close: price}
	}
	return bars
}

func TestDetect_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		bars := randomWalk(r, 20+r.Intn(200))
		set := calculator.Compute(bars)
		sig := Detect(bars, set)

		seen := make(map[int]bool)
		for _, list := range [][]int{sig.Buy, sig.Sell} {
			prev := -1
			for _, i := range list {
				if i < 19 {
					t.Fatalf("trial %d: index %d inside warm-up window", trial, i)
				}
				if i <= prev {
					t.Fatalf("trial %d: indices not strictly ascending: %v", trial, list)
				}
				prev = i
			}
		}
		for _, i := range sig.Buy {
			seen[i] = true
		}
		for _, i := range sig.Sell {
			if seen[i] {
				t.Fatalf("trial %d: index %d is both buy and sell", trial, i)
			}
		}
	}
}

func TestDetect_SellOnSteepDecline(t *testing.T) {
	// A long flat stretch followed by a sharp decline drives EMA_20 under
	// EMA_50, RSI under 30, MACD under its signal and price under the band.
	closes := make([]float64, 0, 80)
	for i := 0; i < 60; i++ {
		closes = append(closes, 100+math.Sin(float64(i))*0.5)
	}
	for i := 0; i < 20; i++ {
		closes = append(closes, closes[len(closes)-1]*0.97)
	}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{Time: base.AddDate(0, 0, i), Close: c}
	}
	sig := Detect(bars, calculator.Compute(bars))
	if len(sig.Sell) == 0 {
		t.Fatal("expected at least one sell signal during the decline")
	}
	for _, i := range sig.Sell {
		if i < 60 {
			t.Errorf("sell signal at %d precedes the decline", i)
		}
	}
}
