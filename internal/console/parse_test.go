package console

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestParseTickers(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr error
	}{
		{"simple", "AAPL,GOOG,MSFT", []string{"AAPL", "GOOG", "MSFT"}, nil},
		{"trim and upper", " aapl , goog ", []string{"AAPL", "GOOG"}, nil},
		{"empties dropped", "AAPL,,  ,MSFT,", []string{"AAPL", "MSFT"}, nil},
		{"duplicates removed", "aapl,AAPL, Aapl ,msft", []string{"AAPL", "MSFT"}, nil},
		{"only commas", " , ,", nil, ErrNoTickers},
		{"blank", "", nil, ErrNoTickers},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTickers(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"3600", time.Hour, false},
		{" 5 ", 5 * time.Second, false},
		{"1", time.Second, false},
		{"0", 0, true},
		{"-10", 0, true},
		{"1.5", 0, true},
		{"hourly", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseInterval(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInterval) {
					t.Fatalf("err = %v, want ErrInvalidInterval", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseZoomDate(t *testing.T) {
	got, err := ParseZoomDate("2024-02-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.February || got.Day() != 29 {
		t.Errorf("got %v", got)
	}

	for _, bad := range []string{"2024/02/29", "29-02-2024", "2023-02-29", "tomorrow"} {
		if _, err := ParseZoomDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseZoomDate(%q) err = %v, want ErrInvalidDate", bad, err)
		}
	}
}

func TestParseZoomRange(t *testing.T) {
	r, err := ParseZoomRange("2024-01-01", "2024-03-31")
	if err != nil || r == nil {
		t.Fatalf("got %v, %v", r, err)
	}
	if !r.Contains(time.Date(2024, time.March, 31, 15, 0, 0, 0, time.UTC)) {
		t.Error("end day should be inclusive")
	}

	if r, err := ParseZoomRange("2024-01-01", ""); r != nil || err != nil {
		t.Errorf("one-sided zoom = %v, %v; want nil, nil", r, err)
	}
	if _, err := ParseZoomRange("2024-03-01", "2024-01-01"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("reversed range err = %v", err)
	}
	if _, err := ParseZoomRange("01/01/2024", "2024-03-01"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("bad start err = %v", err)
	}
}
