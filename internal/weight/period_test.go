package weight

import (
	"testing"
	"time"
)

func TestNormalizePeriod(t *testing.T) {
	tests := []struct {
		days int
		want int
	}{
		{30, 30},
		{90, 90},
		{365, 365},
		{0, 30},
		{7, 30},
		{-90, 30},
	}

	for _, tt := range tests {
		if got := NormalizePeriod(tt.days); got != tt.want {
			t.Errorf("NormalizePeriod(%d) = %d, want %d", tt.days, got, tt.want)
		}
	}
}

func TestNextPeriod(t *testing.T) {
	if got := NextPeriod(30); got != 90 {
		t.Errorf("NextPeriod(30) = %d, want 90", got)
	}
	if got := NextPeriod(90); got != 365 {
		t.Errorf("NextPeriod(90) = %d, want 365", got)
	}
	if got := NextPeriod(365); got != 30 {
		t.Errorf("NextPeriod(365) = %d, want 30", got)
	}
	if got := NextPeriod(12); got != 90 {
		t.Errorf("NextPeriod(12) = %d, want 90 (12 normalizes to 30)", got)
	}
}

func TestPeriodDaysReturnsCopy(t *testing.T) {
	days := PeriodDays()
	days[0] = 7

	if got := PeriodDays(); got[0] != 30 || len(got) != 3 {
		t.Errorf("PeriodDays() = %v, want [30 90 365]", got)
	}
	if got := NormalizePeriod(7); got != 30 {
		t.Errorf("NormalizePeriod(7) = %d after editing the copy, want 30", got)
	}
	if got := NextPeriod(30); got != 90 {
		t.Errorf("NextPeriod(30) = %d after editing the copy, want 90", got)
	}
}

func TestFilterPeriod(t *testing.T) {
	now := time.Date(2026, 4, 30, 18, 45, 0, 0, time.UTC)

	samples := []Sample{
		{day("2026-04-29"), 80},
		{day("2026-03-31"), 81}, // exactly 30 days back: included
		{day("2026-03-30"), 82},
		{day("2025-12-01"), 83},
	}

	got := FilterPeriod(samples, 30, now)
	if len(got) != 2 {
		t.Fatalf("FilterPeriod(30) = %d samples, want 2", len(got))
	}
	if !got[0].Date.Equal(day("2026-03-31")) || !got[1].Date.Equal(day("2026-04-29")) {
		t.Errorf("FilterPeriod(30) = %+v, want sorted 03-31, 04-29", got)
	}

	if got := FilterPeriod(samples, 365, now); len(got) != 4 {
		t.Errorf("FilterPeriod(365) = %d samples, want 4", len(got))
	}

	if got := FilterPeriod(nil, 90, now); got != nil {
		t.Errorf("FilterPeriod(nil) = %v, want nil", got)
	}
}
