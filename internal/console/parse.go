package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"SignalWatch/internal/model"
)

// DateLayout is the accepted zoom date format.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidInterval = errors.New("invalid refresh interval")
	ErrNoTickers       = errors.New("no tickers given")
)

// ParseTickers splits a comma-separated list, trimming and upper-casing each
// symbol. Empty entries and repeats are dropped; first-seen order is kept.
func ParseTickers(input string) ([]string, error) {
	seen := make(map[string]bool)
	var tickers []string
	for _, part := range strings.Split(input, ",") {
		t := strings.ToUpper(strings.TrimSpace(part))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tickers = append(tickers, t)
	}
	if len(tickers) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoTickers, input)
	}
	return tickers, nil
}

// ParseInterval reads a refresh interval given in whole seconds.
func ParseInterval(input string) (time.Duration, error) {
	s := strings.TrimSpace(input)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number of seconds", ErrInvalidInterval, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d must be positive", ErrInvalidInterval, n)
	}
	return time.Duration(n) * time.Second, nil
}

// ParseZoomDate parses a YYYY-MM-DD date.
func ParseZoomDate(input string) (time.Time, error) {
	s := strings.TrimSpace(input)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q does not match format YYYY-MM-DD", ErrInvalidDate, s)
	}
	return t, nil
}

// ParseZoomRange builds a zoom window. It returns nil when either bound is
// blank, since a one-sided zoom is ignored.
func ParseZoomRange(start, end string) (*model.DateRange, error) {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return nil, nil
	}
	from, err := ParseZoomDate(start)
	if err != nil {
		return nil, fmt.Errorf("zoom start: %w", err)
	}
	to, err := ParseZoomDate(end)
	if err != nil {
		return nil, fmt.Errorf("zoom end: %w", err)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: zoom end %s is before start %s", ErrInvalidDate,
			to.Format(DateLayout), from.Format(DateLayout))
	}
	return &model.DateRange{Start: from, End: to}, nil
}
