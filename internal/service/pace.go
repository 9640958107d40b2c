package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"fitcalc/internal/pace"
)

// PaceMode selects which of distance, time and pace is solved for
type PaceMode string

const (
	ModePace     PaceMode = "pace"     // distance + time -> pace
	ModeTime     PaceMode = "time"     // distance + pace -> time
	ModeDistance PaceMode = "distance" // time + pace -> distance
)

var (
	// ErrInvalidDistance is returned when a distance is not a positive number
	// of km up to MaxDistanceKm
	ErrInvalidDistance = errors.New("distance must be a positive number of km up to 1000")
	// ErrUnknownMode is returned for a pace mode other than pace, time or distance
	ErrUnknownMode = errors.New("unknown pace mode")
	// ErrNoResult is returned when the inputs parse but produce no finite answer
	ErrNoResult = errors.New("inputs do not produce a result")
)

// PaceInput is the raw text of the pace calculator form
type PaceInput struct {
	Mode      PaceMode
	Distance  string // km
	Time      string // H:MM:SS or M:SS
	Pace      string // M:SS per km
	SplitUnit string // "km" or "mi"; empty uses the configured unit
}

// PaceData is the solved calculator plus its splits
type PaceData struct {
	DistanceKm   float64
	TimeSec      float64
	PaceSecPerKm float64
	Pace         string
	Time         string
	Unit         pace.Unit
	Splits       []pace.Split
}

// Pace solves the calculator for the missing value and generates splits
func (q *QueryService) Pace(in PaceInput) (*PaceData, error) {
	unitText := in.SplitUnit
	if unitText == "" {
		unitText = q.cfg.Display.SplitUnit
	}
	unit, err := pace.ParseUnit(unitText)
	if err != nil {
		return nil, err
	}

	data := &PaceData{Unit: unit}

	switch in.Mode {
	case ModePace:
		if data.DistanceKm, err = parseDistance(in.Distance); err != nil {
			return nil, err
		}
		if data.TimeSec, err = pace.ParseTime(in.Time); err != nil {
			return nil, err
		}
		data.PaceSecPerKm = pace.ComputePace(data.DistanceKm, data.TimeSec)
	case ModeTime:
		if data.DistanceKm, err = parseDistance(in.Distance); err != nil {
			return nil, err
		}
		if data.PaceSecPerKm, err = pace.ParsePace(in.Pace); err != nil {
			return nil, err
		}
		data.TimeSec = pace.ComputeTime(data.DistanceKm, data.PaceSecPerKm)
	case ModeDistance:
		if data.TimeSec, err = pace.ParseTime(in.Time); err != nil {
			return nil, err
		}
		if data.PaceSecPerKm, err = pace.ParsePace(in.Pace); err != nil {
			return nil, err
		}
		data.DistanceKm = pace.ComputeDistance(data.TimeSec, data.PaceSecPerKm)
		if data.DistanceKm > MaxDistanceKm {
			return nil, fmt.Errorf("%s at %s/km: %w", in.Time, in.Pace, ErrInvalidDistance)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, in.Mode)
	}

	if math.IsNaN(data.DistanceKm) || math.IsNaN(data.TimeSec) || math.IsNaN(data.PaceSecPerKm) {
		return nil, ErrNoResult
	}

	data.Pace = pace.FormatPace(data.PaceSecPerKm)
	data.Time = pace.FormatTime(data.TimeSec)
	data.Splits = pace.GenerateSplits(data.DistanceKm, data.PaceSecPerKm, unit)
	return data, nil
}

// PlanData is a resolved race plan with its totals
type PlanData struct {
	Segments []pace.Segment
	Totals   pace.PlanTotals
	Time     string
	AvgPace  string
}

// RacePlan resolves the rest leg of a multi-segment plan and totals it
func (q *QueryService) RacePlan(totalKm float64, segments []pace.Segment) (*PlanData, error) {
	resolved, err := pace.ResolveRest(totalKm, segments)
	if err != nil {
		return nil, err
	}
	totals := pace.AggregateSegments(resolved)
	if totals == nil {
		return nil, pace.ErrInvalidSegment
	}
	return &PlanData{
		Segments: resolved,
		Totals:   *totals,
		Time:     pace.FormatTime(totals.TotalTimeSec),
		AvgPace:  pace.FormatPace(totals.AvgPaceSecPerKm),
	}, nil
}

// parseDistance reads a km value typed by the user
func parseDistance(s string) (float64, error) {
	km, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !(km > 0) || km > MaxDistanceKm {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidDistance)
	}
	return km, nil
}
