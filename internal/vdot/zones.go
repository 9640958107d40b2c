package vdot

import (
	"fmt"
	"math"

	"fitcalc/internal/pace"
)

// ZoneID identifies one of the five Daniels training zones
type ZoneID string

const (
	ZoneEasy       ZoneID = "E"
	ZoneMarathon   ZoneID = "M"
	ZoneThreshold  ZoneID = "T"
	ZoneInterval   ZoneID = "I"
	ZoneRepetition ZoneID = "R"
)

// Fractions of VDOT used for each zone
const (
	easySlowPct   = 0.59
	easyFastPct   = 0.74
	thresholdMin  = 30 // threshold pace models a 30 minute race effort
	intervalPct   = 1.0
	repetitionPct = 1.15
)

// PaceRange is a pace band in seconds per km. Fast is the lower number.
type PaceRange struct {
	FastSecPerKm float64
	SlowSecPerKm float64
}

// RepTime is a target time for one repetition distance
type RepTime struct {
	Distance string // "400m"
	Time     string // `41"` or "1:32"
}

// TrainingZone is one Daniels training intensity
type TrainingZone struct {
	ID           ZoneID
	Name         string
	PaceSecPerKm float64
	Range        *PaceRange // Easy only
	RepTimes     []RepTime  // Interval and Repetition only
}

// Pace returns the zone pace as "M:SS"
func (z TrainingZone) Pace() string {
	return pace.FormatPace(z.PaceSecPerKm)
}

// CalculateZones derives the E/M/T/I/R training paces for a VDOT.
// Marathon pace comes from the bisection prediction, so it can sit a few
// seconds per km off the published tables.
func CalculateZones(vdot float64) []TrainingZone {
	if !isPositive(vdot) {
		return nil
	}

	easyFast := paceSecKm(velocityFromVO2(vdot * easyFastPct))
	easySlow := paceSecKm(velocityFromVO2(vdot * easySlowPct))

	marathon := PredictRaceTimeSec(DistanceMarathon, vdot) / (DistanceMarathon / 1000.0)
	threshold := paceSecKm(velocityFromVO2(vdot * pctVO2max(thresholdMin)))
	interval := paceSecKm(velocityFromVO2(vdot * intervalPct))
	repetition := paceSecKm(velocityFromVO2(vdot * repetitionPct))

	return []TrainingZone{
		{
			ID:           ZoneEasy,
			Name:         "Easy",
			PaceSecPerKm: (easyFast + easySlow) / 2,
			Range:        &PaceRange{FastSecPerKm: easyFast, SlowSecPerKm: easySlow},
		},
		{ID: ZoneMarathon, Name: "Marathon", PaceSecPerKm: marathon},
		{ID: ZoneThreshold, Name: "Threshold", PaceSecPerKm: threshold},
		{
			ID:           ZoneInterval,
			Name:         "Interval",
			PaceSecPerKm: interval,
			RepTimes:     repTimes(interval, 400, 1000, 1200, 1600),
		},
		{
			ID:           ZoneRepetition,
			Name:         "Repetition",
			PaceSecPerKm: repetition,
			RepTimes:     repTimes(repetition, 200, 400, 600),
		},
	}
}

// repTimes returns target times for each distance (meters) at a pace
func repTimes(paceSecPerKm float64, distancesM ...int) []RepTime {
	reps := make([]RepTime, 0, len(distancesM))
	for _, d := range distancesM {
		reps = append(reps, RepTime{
			Distance: fmt.Sprintf("%dm", d),
			Time:     FormatRepTime(paceSecPerKm * float64(d) / 1000),
		})
	}
	return reps
}

// FormatRepTime renders times under a minute as seconds (`41"`), others as "M:SS"
func FormatRepTime(sec float64) string {
	rounded := math.Round(sec)
	if rounded < 60 {
		return fmt.Sprintf("%d\"", int(rounded))
	}
	return pace.FormatPace(rounded)
}
