package collector

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var periodPattern = regexp.MustCompile(`^(\d+)(d|wk|mo|y)$`)

// PeriodStart returns the start of a lookback window such as "6mo", "1y",
// "30d", "2wk", "ytd" or "max" ending at end.
func PeriodStart(period string, end time.Time) (time.Time, error) {
	switch period {
	case "ytd":
		return time.Date(end.Year(), time.January, 1, 0, 0, 0, 0, end.Location()), nil
	case "max":
		return time.Unix(0, 0).In(end.Location()), nil
	}
	m := periodPattern.FindStringSubmatch(period)
	if m == nil {
		return time.Time{}, fmt.Errorf("invalid period %q (expected e.g. 30d, 2wk, 6mo, 1y, ytd, max)", period)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return time.Time{}, fmt.Errorf("invalid period %q: count must be positive", period)
	}
	switch m[2] {
	case "d":
		return end.AddDate(0, 0, -n), nil
	case "wk":
		return end.AddDate(0, 0, -7*n), nil
	case "mo":
		return end.AddDate(0, -n, 0), nil
	default:
		return end.AddDate(-n, 0, 0), nil
	}
}

var validIntervals = map[string]bool{
	"1m": true, "2m": true, "5m": true, "15m": true, "30m": true, "60m": true, "90m": true,
	"1h": true, "1d": true, "5d": true, "1wk": true, "1mo": true, "3mo": true,
}

// ValidInterval reports whether interval is a bar size the providers accept.
func ValidInterval(interval string) bool {
	return validIntervals[interval]
}
