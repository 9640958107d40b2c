package vdot

import "fitcalc/internal/pace"

// PredictionTarget is a race distance shown in the prediction table
type PredictionTarget struct {
	Label     string
	DistanceM float64
}

var predictionTargets = []PredictionTarget{
	{"1500m", Distance1500m},
	{"5K", Distance5K},
	{"10K", Distance10K},
	{"Half Marathon", DistanceHalfMara},
	{"Marathon", DistanceMarathon},
}

// PredictionTargets returns the standard prediction distances, shortest first
func PredictionTargets() []PredictionTarget {
	return append([]PredictionTarget(nil), predictionTargets...)
}

// RacePrediction is a predicted finish time
type RacePrediction struct {
	Label            string
	DistanceM        float64
	PredictedTimeSec float64
}

// Time returns the predicted time as "H:MM:SS"
func (p RacePrediction) Time() string {
	return pace.FormatTime(p.PredictedTimeSec)
}

// PacePerKm returns the predicted pace in seconds per km
func (p RacePrediction) PacePerKm() float64 {
	return pace.ComputePace(p.DistanceM/1000, p.PredictedTimeSec)
}

// PredictRaceTimes predicts every prediction target for a VDOT.
// Returns nil for a non-positive VDOT.
func PredictRaceTimes(vdot float64) []RacePrediction {
	if !isPositive(vdot) {
		return nil
	}

	predictions := make([]RacePrediction, 0, len(predictionTargets))
	for _, target := range predictionTargets {
		predictions = append(predictions, RacePrediction{
			Label:            target.Label,
			DistanceM:        target.DistanceM,
			PredictedTimeSec: PredictRaceTimeSec(target.DistanceM, vdot),
		})
	}
	return predictions
}
