package weight

import (
	"math"
	"sort"
	"time"
)

// Trend classifies the direction of a weight series
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendStable  Trend = "stable"
	TrendFalling Trend = "falling"
	TrendNone    Trend = "none" // no samples
)

// stableSlope is the per-sample slope (kg) below which a series is stable
const stableSlope = 0.01

// Sample is one weigh-in. Samples are keyed by calendar date.
type Sample struct {
	Date     time.Time
	WeightKg float64
}

// Stats summarizes a weight series. Pointer fields are nil when there is no data.
type Stats struct {
	Current         *float64
	Min             *float64
	Max             *float64
	Avg             *float64 // rounded to 0.1 kg
	Trend           Trend
	DeltaFromTarget *float64 // current - target, rounded to 0.1 kg
}

// HasData reports whether the stats were computed from at least one sample
func (s Stats) HasData() bool {
	return s.Current != nil
}

// ComputeStats summarizes samples in date order. The input order is not
// trusted and the input slice is not modified. targetKg may be nil.
func ComputeStats(samples []Sample, targetKg *float64) Stats {
	if len(samples) == 0 {
		return Stats{Trend: TrendNone}
	}

	sorted := sortedByDate(samples)

	current := sorted[len(sorted)-1].WeightKg
	lowest, highest := current, current
	var sum float64
	for _, s := range sorted {
		sum += s.WeightKg
		if s.WeightKg < lowest {
			lowest = s.WeightKg
		}
		if s.WeightKg > highest {
			highest = s.WeightKg
		}
	}
	avg := round1(sum / float64(len(sorted)))

	stats := Stats{
		Current: &current,
		Min:     &lowest,
		Max:     &highest,
		Avg:     &avg,
		Trend:   ClassifySlope(Slope(sorted)),
	}

	if targetKg != nil {
		delta := round1(current - *targetKg)
		stats.DeltaFromTarget = &delta
	}

	return stats
}

// Slope returns the least-squares slope of weight against sample index
// (0..n-1) for samples in the given order. Using the index instead of the
// date keeps irregular sampling from distorting the scale. Fewer than two
// samples have a slope of 0.
func Slope(samples []Sample) float64 {
	n := float64(len(samples))
	if len(samples) < 2 {
		return 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, s := range samples {
		x := float64(i)
		sumX += x
		sumY += s.WeightKg
		sumXY += x * s.WeightKg
		sumXX += x * x
	}

	return (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
}

// ClassifySlope maps a regression slope to a Trend
func ClassifySlope(slope float64) Trend {
	switch {
	case math.Abs(slope) < stableSlope:
		return TrendStable
	case slope > 0:
		return TrendRising
	default:
		return TrendFalling
	}
}

// sortedByDate returns a copy of samples sorted ascending by date
func sortedByDate(samples []Sample) []Sample {
	sorted := make([]Sample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
