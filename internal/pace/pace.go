package pace

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Placeholders returned for values that cannot be displayed
const (
	PacePlaceholder = "--:--"
	TimePlaceholder = "--:--:--"
)

// maxFormatSec is the largest value formatted; beyond it int64 seconds overflow
const maxFormatSec = 1e15

var (
	// ErrInvalidPace is returned when pace text is not MM:SS
	ErrInvalidPace = errors.New("invalid pace")
	// ErrInvalidTime is returned when time text is not H:MM:SS or MM:SS
	ErrInvalidTime = errors.New("invalid time")
)

// ParsePace parses "MM:SS" into seconds per unit.
// Seconds must be below 60; minutes are unbounded. "12:5" parses as 725.
func ParsePace(s string) (float64, error) {
	parts, ok := splitFields(s)
	if !ok || len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPace, s)
	}

	m, sec := parts[0], parts[1]
	if sec >= 60 {
		return 0, fmt.Errorf("%w: seconds must be below 60 in %q", ErrInvalidPace, s)
	}
	return m*60 + sec, nil
}

// ParseTime parses "H:MM:SS" or "MM:SS" into total seconds.
// Minutes and seconds must be below 60 when the hour field is present;
// seconds must be below 60 in the short form.
func ParseTime(s string) (float64, error) {
	parts, ok := splitFields(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	switch len(parts) {
	case 3:
		h, m, sec := parts[0], parts[1], parts[2]
		if m >= 60 || sec >= 60 {
			return 0, fmt.Errorf("%w: minutes and seconds must be below 60 in %q", ErrInvalidTime, s)
		}
		return h*3600 + m*60 + sec, nil
	case 2:
		m, sec := parts[0], parts[1]
		if sec >= 60 {
			return 0, fmt.Errorf("%w: seconds must be below 60 in %q", ErrInvalidTime, s)
		}
		return m*60 + sec, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
}

// splitFields splits colon separated numeric fields.
// Every field must be a non-empty, finite, non-negative number.
func splitFields(s string) ([]float64, bool) {
	raw := strings.Split(strings.TrimSpace(s), ":")
	fields := make([]float64, 0, len(raw))

	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r == "" {
			return nil, false
		}
		v, err := strconv.ParseFloat(r, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, false
		}
		fields = append(fields, v)
	}

	return fields, true
}

// FormatPace formats seconds per unit as "M:SS"
func FormatPace(sec float64) string {
	if !isPositive(sec) || sec > maxFormatSec {
		return PacePlaceholder
	}

	total := int64(math.Round(sec))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatTime formats total seconds as "H:MM:SS". Zero is a valid time.
func FormatTime(sec float64) string {
	if math.IsNaN(sec) || sec < 0 || sec > maxFormatSec {
		return TimePlaceholder
	}

	total := int64(math.Round(sec))
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// ComputePace returns seconds per km for a distance and total time
func ComputePace(distanceKm, totalSec float64) float64 {
	if !isPositive(distanceKm) || !isPositive(totalSec) {
		return math.NaN()
	}
	return totalSec / distanceKm
}

// ComputeTime returns total seconds for a distance at a pace
func ComputeTime(distanceKm, paceSec float64) float64 {
	if !isPositive(distanceKm) || !isPositive(paceSec) {
		return math.NaN()
	}
	return distanceKm * paceSec
}

// ComputeDistance returns km covered in a total time at a pace
func ComputeDistance(totalSec, paceSec float64) float64 {
	if !isPositive(totalSec) || !isPositive(paceSec) {
		return math.NaN()
	}
	return totalSec / paceSec
}

// isPositive reports whether v is a finite number above zero
func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
