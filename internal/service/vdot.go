package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"fitcalc/internal/store"
	"fitcalc/internal/vdot"
)

// ErrInvalidRace is returned when a race result cannot produce a VDOT
var ErrInvalidRace = errors.New("race result does not produce a VDOT")

// VDOTData contains the VDOT for a race plus zones and predictions derived from it
type VDOTData struct {
	Race        store.RaceResult
	VDOT        float64
	Label       string
	Zones       []vdot.TrainingZone
	Predictions []vdot.RacePrediction
}

// VDOT computes training data from a race and saves it as the last race
func (q *QueryService) VDOT(distanceM, timeSec float64) (*VDOTData, error) {
	data, err := buildVDOT(distanceM, timeSec)
	if err != nil {
		return nil, err
	}

	if err := q.store.SaveLastRace(data.Race); err != nil {
		return nil, fmt.Errorf("saving last race: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"distance_m": distanceM,
		"time_sec":   timeSec,
		"vdot":       data.VDOT,
	}).Info("vdot calculated")

	return data, nil
}

// LastRace recomputes VDOT data for the saved race, or returns nil when none is saved
func (q *QueryService) LastRace() (*VDOTData, error) {
	race, err := q.store.GetLastRace()
	if err != nil {
		return nil, fmt.Errorf("loading last race: %w", err)
	}
	if race == nil {
		return nil, nil
	}

	data, err := buildVDOT(race.DistanceM, race.TimeSec)
	if err != nil {
		logrus.WithError(err).Warn("saved race no longer valid")
		return nil, nil
	}
	return data, nil
}

func buildVDOT(distanceM, timeSec float64) (*VDOTData, error) {
	if distanceM < MinRaceDistanceM || distanceM > MaxRaceDistanceM {
		return nil, fmt.Errorf("%w: distance %v m outside %d-%d m", ErrInvalidRace, distanceM, MinRaceDistanceM, MaxRaceDistanceM)
	}

	v := vdot.CalculateVDOT(distanceM, timeSec/SecondsPerMinute)
	if math.IsNaN(v) {
		return nil, ErrInvalidRace
	}

	return &VDOTData{
		Race:        store.RaceResult{DistanceM: distanceM, TimeSec: timeSec},
		VDOT:        v,
		Label:       vdot.Label(v),
		Zones:       vdot.CalculateZones(v),
		Predictions: vdot.PredictRaceTimes(v),
	}, nil
}
