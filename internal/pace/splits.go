package pace

import (
	"fmt"
	"math"
)

// KmPerMile is the split length used for mile splits
const KmPerMile = 1.60934

// partialThresholdKm is the smallest remainder that produces a partial split
const partialThresholdKm = 0.001

// MaxSplits caps the rows GenerateSplits will build
const MaxSplits = 10000

// Unit is the split granularity
type Unit string

const (
	UnitKm   Unit = "km"
	UnitMile Unit = "mi"
)

// ParseUnit converts a config/user string to a Unit
func ParseUnit(s string) (Unit, error) {
	switch u := Unit(s); u {
	case UnitKm, UnitMile:
		return u, nil
	}
	return "", fmt.Errorf("unknown split unit %q", s)
}

// LengthKm returns the split length in km
func (u Unit) LengthKm() float64 {
	if u == UnitMile {
		return KmPerMile
	}
	return 1
}

// Split is one row of a split table
type Split struct {
	Label             string
	SplitTimeSec      float64
	CumulativeTimeSec float64
	DistanceKm        float64 // cumulative distance at the end of the split
	IsPartial         bool
}

// SplitTime returns the split time as "H:MM:SS"
func (s Split) SplitTime() string {
	return FormatTime(s.SplitTimeSec)
}

// Cumulative returns the elapsed time as "H:MM:SS"
func (s Split) Cumulative() string {
	return FormatTime(s.CumulativeTimeSec)
}

// GenerateSplits builds the split table for running distanceKm at paceSecPerKm.
// Whole splits come first; a remainder above 1 m adds a trailing partial split
// ending at the full distance. Returns nil for non-positive input and for
// distances needing more than MaxSplits rows.
func GenerateSplits(distanceKm, paceSecPerKm float64, unit Unit) []Split {
	if !isPositive(distanceKm) || !isPositive(paceSecPerKm) {
		return nil
	}

	splitKm := unit.LengthKm()
	if distanceKm/splitKm > MaxSplits {
		return nil
	}
	splitSec := paceSecPerKm * splitKm

	whole := int(math.Floor(distanceKm / splitKm))
	remainder := distanceKm - float64(whole)*splitKm

	splits := make([]Split, 0, whole+1)
	var cumulative float64

	for i := 1; i <= whole; i++ {
		cumulative += splitSec
		splits = append(splits, Split{
			Label:             fmt.Sprintf("%d %s", i, unitLabel(unit)),
			SplitTimeSec:      splitSec,
			CumulativeTimeSec: cumulative,
			DistanceKm:        float64(i) * splitKm,
		})
	}

	if remainder > partialThresholdKm {
		partialSec := paceSecPerKm * remainder
		cumulative += partialSec
		splits = append(splits, Split{
			Label:             fmt.Sprintf("%.3f %s", distanceKm/splitKm, unitLabel(unit)),
			SplitTimeSec:      partialSec,
			CumulativeTimeSec: cumulative,
			DistanceKm:        distanceKm,
			IsPartial:         true,
		})
	}

	return splits
}

func unitLabel(u Unit) string {
	if u == UnitMile {
		return "mi"
	}
	return "km"
}
