package weight

import "time"

// DefaultPeriodDays is the chart window used when none is chosen
const DefaultPeriodDays = 30

var periodDays = []int{30, 90, 365}

// PeriodDays returns the supported chart windows, shortest first
func PeriodDays() []int {
	return append([]int(nil), periodDays...)
}

// NormalizePeriod returns days if it is a supported window, else DefaultPeriodDays
func NormalizePeriod(days int) int {
	for _, p := range periodDays {
		if p == days {
			return days
		}
	}
	return DefaultPeriodDays
}

// PeriodStart returns the first calendar day (UTC midnight) inside a window ending at now
func PeriodStart(days int, now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -NormalizePeriod(days))
}

// FilterPeriod keeps samples dated on or after PeriodStart(days, now), sorted by date
func FilterPeriod(samples []Sample, days int, now time.Time) []Sample {
	start := PeriodStart(days, now)

	var kept []Sample
	for _, s := range sortedByDate(samples) {
		if !s.Date.Before(start) {
			kept = append(kept, s)
		}
	}
	return kept
}

// NextPeriod cycles 30 -> 90 -> 365 -> 30
func NextPeriod(days int) int {
	days = NormalizePeriod(days)
	for i, p := range periodDays {
		if p == days {
			return periodDays[(i+1)%len(periodDays)]
		}
	}
	return DefaultPeriodDays
}
