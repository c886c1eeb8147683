package model

import (
	"math"
	"testing"
	"time"
)

func TestSome_NonFiniteIsUndefined(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if Some(v).Valid {
			t.Errorf("Some(%v) should be undefined", v)
		}
	}
	if got, ok := Some(1.5).Get(); !ok || got != 1.5 {
		t.Errorf("Some(1.5).Get() = %v, %v", got, ok)
	}
}

func TestSeries_At(t *testing.T) {
	s := Series{Some(1), None()}
	if s.At(-1).Valid || s.At(2).Valid || s.At(1).Valid {
		t.Error("out of range and undefined slots should be None")
	}
	f := s.Floats()
	if f[0] != 1 || !math.IsNaN(f[1]) {
		t.Errorf("Floats() = %v", f)
	}
}

func TestIndicatorSet_ByName(t *testing.T) {
	set := &IndicatorSet{RSI: Series{Some(42)}}
	for _, name := range Names() {
		if _, ok := set.ByName(name); !ok {
			t.Errorf("ByName(%q) not found", name)
		}
	}
	if s, _ := set.ByName(RSI); s.At(0).V != 42 {
		t.Errorf("ByName(RSI) returned the wrong series")
	}
	if _, ok := set.ByName("VWAP"); ok {
		t.Error("unknown name should not resolve")
	}
	var empty *IndicatorSet
	if empty.Len() != 0 {
		t.Error("nil set should have length 0")
	}
}

func TestDateRange_Contains(t *testing.T) {
	r := DateRange{
		Start: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
	}
	tests := []struct {
		t    time.Time
		want bool
	}{
		{time.Date(2024, 1, 9, 23, 59, 0, 0, time.UTC), false},
		{time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2024, 1, 20, 16, 0, 0, 0, time.UTC), true},
		{time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.t); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestAnalysis_Dates(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := &Analysis{
		Bars:    []OHLCV{{Time: start}, {Time: start.AddDate(0, 0, 1)}, {Time: start.AddDate(0, 0, 2)}},
		Signals: SignalSet{Buy: []int{2}, Sell: []int{0, 5}},
	}
	if d := a.BuyDates(); len(d) != 1 || !d[0].Equal(start.AddDate(0, 0, 2)) {
		t.Errorf("BuyDates = %v", d)
	}
	if d := a.SellDates(); len(d) != 1 {
		t.Errorf("SellDates = %v, out-of-range index should be skipped", d)
	}
	var nilAnalysis *Analysis
	if !nilAnalysis.Empty() {
		t.Error("nil analysis should be empty")
	}
}
