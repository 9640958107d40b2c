package hrzone

import (
	"fmt"
	"math"
)

// Formula selects the age-based max heart rate equation
type Formula string

const (
	FormulaFox     Formula = "fox"
	FormulaTanaka  Formula = "tanaka"
	FormulaGellish Formula = "gellish"
	FormulaNes     Formula = "nes"
)

// Method selects how zone boundaries are derived
type Method string

const (
	MethodMaxHR    Method = "max"      // percent of max HR
	MethodKarvonen Method = "karvonen" // percent of heart rate reserve
)

// Source selects where max HR comes from
type Source string

const (
	SourceManual  Source = "manual"
	SourceFormula Source = "formula"
)

// ZoneCount is the number of heart rate zones
const ZoneCount = 5

// Percent is one zone band, as whole percentages (0-100)
type Percent struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Zone is a computed heart rate zone. IDs run 1..5 in ascending intensity.
type Zone struct {
	ID     int
	MinBpm int
	MaxBpm int
}

// DefaultPercents returns the standard 50-60 / 60-70 / 70-80 / 80-90 / 90-100 bands
func DefaultPercents() [ZoneCount]Percent {
	return [ZoneCount]Percent{
		{Min: 50, Max: 60},
		{Min: 60, Max: 70},
		{Min: 70, Max: 80},
		{Min: 80, Max: 90},
		{Min: 90, Max: 100},
	}
}

// ParseFormula converts a config/user string to a Formula
func ParseFormula(s string) (Formula, error) {
	switch f := Formula(s); f {
	case FormulaFox, FormulaTanaka, FormulaGellish, FormulaNes:
		return f, nil
	}
	return "", fmt.Errorf("unknown max HR formula %q", s)
}

// ParseMethod converts a config/user string to a Method
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case MethodMaxHR, MethodKarvonen:
		return m, nil
	}
	return "", fmt.Errorf("unknown zone method %q", s)
}

// ParseSource converts a config/user string to a Source
func ParseSource(s string) (Source, error) {
	switch src := Source(s); src {
	case SourceManual, SourceFormula:
		return src, nil
	}
	return "", fmt.Errorf("unknown max HR source %q", s)
}

// EstimateMaxHR estimates max heart rate from age.
// Age is expected in [10, 120]; callers validate. Unknown formulas use Fox.
func EstimateMaxHR(age int, formula Formula) int {
	a := float64(age)

	var hr float64
	switch formula {
	case FormulaTanaka:
		hr = 208 - 0.7*a
	case FormulaGellish:
		hr = 207 - 0.7*a
	case FormulaNes:
		hr = 211 - 0.64*a
	default:
		hr = 220 - a
	}

	return roundBpm(hr)
}

// ResolveMaxHR returns the max HR to use for zones: the manual value, or
// the formula estimate when the source is SourceFormula.
func ResolveMaxHR(source Source, manualMaxHR float64, age int, formula Formula) float64 {
	if source == SourceFormula {
		return float64(EstimateMaxHR(age, formula))
	}
	return manualMaxHR
}

// ZonesByMaxHR computes zones as straight percentages of max HR
func ZonesByMaxHR(maxHR float64, percents [ZoneCount]Percent) [ZoneCount]Zone {
	var zones [ZoneCount]Zone
	for i, p := range percents {
		zones[i] = Zone{
			ID:     i + 1,
			MinBpm: roundBpm(maxHR * float64(p.Min) / 100),
			MaxBpm: roundBpm(maxHR * float64(p.Max) / 100),
		}
	}
	return zones
}

// ZonesByKarvonen computes zones on the heart rate reserve (max - resting).
// A resting HR at or above max HR yields degenerate zones; callers guard.
func ZonesByKarvonen(maxHR, restingHR float64, percents [ZoneCount]Percent) [ZoneCount]Zone {
	hrr := maxHR - restingHR

	var zones [ZoneCount]Zone
	for i, p := range percents {
		zones[i] = Zone{
			ID:     i + 1,
			MinBpm: roundBpm(restingHR + hrr*float64(p.Min)/100),
			MaxBpm: roundBpm(restingHR + hrr*float64(p.Max)/100),
		}
	}
	return zones
}

// Zones dispatches on method. Unknown methods use percent of max HR.
func Zones(method Method, maxHR, restingHR float64, percents [ZoneCount]Percent) [ZoneCount]Zone {
	if method == MethodKarvonen {
		return ZonesByKarvonen(maxHR, restingHR, percents)
	}
	return ZonesByMaxHR(maxHR, percents)
}

// roundBpm rounds half away from zero
func roundBpm(bpm float64) int {
	return int(math.Round(bpm))
}
