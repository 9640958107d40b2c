package pace

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSegment is returned when a plan leg has no positive distance or pace
	ErrInvalidSegment = errors.New("invalid segment")
	// ErrMultipleRest is returned when more than one leg is marked as the rest leg
	ErrMultipleRest = errors.New("only one segment may be the rest of the race")
	// ErrRestDistance is returned when the other legs already cover the race distance
	ErrRestDistance = errors.New("rest segment has no distance left")
)

// Segment is one leg of a race plan
type Segment struct {
	Label        string
	DistanceKm   float64
	PaceSecPerKm float64
	IsRest       bool // distance is whatever the other legs leave of the race
}

// PlanTotals summarizes a multi-leg race plan
type PlanTotals struct {
	TotalDistanceKm float64
	TotalTimeSec    float64
	AvgPaceSecPerKm float64
}

// AggregateSegments totals a plan. Any leg without a positive distance and
// pace invalidates the whole plan and nil is returned; so does an empty plan.
func AggregateSegments(segments []Segment) *PlanTotals {
	var totalKm, totalSec float64

	for _, seg := range segments {
		if !isPositive(seg.DistanceKm) || !isPositive(seg.PaceSecPerKm) {
			return nil
		}
		totalKm += seg.DistanceKm
		totalSec += seg.DistanceKm * seg.PaceSecPerKm
	}

	if totalKm == 0 {
		return nil
	}

	return &PlanTotals{
		TotalDistanceKm: totalKm,
		TotalTimeSec:    totalSec,
		AvgPaceSecPerKm: totalSec / totalKm,
	}
}

// ResolveRest fills in the distance of the rest leg as the race distance minus
// the other legs. Legs with unusable distances count as zero, matching how an
// incomplete form is summed. The input slice is not modified.
func ResolveRest(totalKm float64, segments []Segment) ([]Segment, error) {
	restIdx := -1
	var others float64

	for i, seg := range segments {
		if seg.IsRest {
			if restIdx >= 0 {
				return nil, ErrMultipleRest
			}
			restIdx = i
			continue
		}
		if isPositive(seg.DistanceKm) {
			others += seg.DistanceKm
		}
	}

	resolved := make([]Segment, len(segments))
	copy(resolved, segments)

	if restIdx < 0 {
		return resolved, nil
	}

	rest := totalKm - others
	if !isPositive(totalKm) || !isPositive(rest) {
		return nil, fmt.Errorf("%w: race %.3f km, other segments %.3f km", ErrRestDistance, totalKm, others)
	}
	resolved[restIdx].DistanceKm = rest

	return resolved, nil
}

// PlanRace resolves the rest leg and aggregates the plan
func PlanRace(totalKm float64, segments []Segment) (*PlanTotals, error) {
	resolved, err := ResolveRest(totalKm, segments)
	if err != nil {
		return nil, err
	}

	totals := AggregateSegments(resolved)
	if totals == nil {
		return nil, ErrInvalidSegment
	}
	return totals, nil
}
