package tui

import (
	"strconv"

	"fitcalc/internal/vdot"
)

// racePreset steps through standard race distances, one per press of "d"
type racePreset struct {
	targets []vdot.PredictionTarget
	index   int
}

// newRacePreset offers the prediction targets of at least minDistanceM.
// The first call to next selects the shortest of them.
func newRacePreset(minDistanceM float64) racePreset {
	var targets []vdot.PredictionTarget
	for _, t := range vdot.PredictionTargets() {
		if t.DistanceM >= minDistanceM {
			targets = append(targets, t)
		}
	}
	return racePreset{targets: targets, index: -1}
}

// startAt marks label as already selected so next moves past it
func (p racePreset) startAt(label string) racePreset {
	for i, t := range p.targets {
		if t.Label == label {
			p.index = i
		}
	}
	return p
}

// next advances to the following distance, wrapping after the longest
func (p *racePreset) next() vdot.PredictionTarget {
	p.index = (p.index + 1) % len(p.targets)
	return p.targets[p.index]
}

// meters formats a target distance for a field typed in meters
func meters(t vdot.PredictionTarget) string {
	return strconv.FormatFloat(t.DistanceM, 'f', -1, 64)
}

// kilometres formats a target distance for a field typed in km
func kilometres(t vdot.PredictionTarget) string {
	return strconv.FormatFloat(t.DistanceM/1000, 'f', -1, 64)
}
