package display

import (
	"fmt"
	"strings"
	"time"

	"SignalWatch/internal/model"
)

const dateLayout = "2006-01-02"

// FormatDates renders dates as a bracketed, comma-separated list.
func FormatDates(dates []time.Time) string {
	parts := make([]string, len(dates))
	for i, d := range dates {
		parts[i] = d.Format(dateLayout)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatBuyLine returns the buy signal line of a ticker report.
func FormatBuyLine(a *model.Analysis) string {
	return fmt.Sprintf("Buy signals for %s on dates: %s", a.Symbol, FormatDates(a.BuyDates()))
}

// FormatSellLine returns the sell signal line of a ticker report.
func FormatSellLine(a *model.Analysis) string {
	return fmt.Sprintf("Sell signals for %s on dates: %s", a.Symbol, FormatDates(a.SellDates()))
}

// FormatLatest summarizes the last bar and its key indicators.
func FormatLatest(a *model.Analysis) string {
	if a.Empty() {
		return ""
	}
	last := len(a.Bars) - 1
	bar := a.Bars[last]
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s close %.2f", a.Symbol, bar.Time.Format(dateLayout), bar.Close))
	if a.Indicators != nil {
		for _, name := range []string{model.EMA20, model.EMA50, model.RSI, model.MACD} {
			s, _ := a.Indicators.ByName(name)
			if v, ok := s.At(last).Get(); ok {
				b.WriteString(fmt.Sprintf(" | %s %.2f", name, v))
			}
		}
	}
	return b.String()
}
