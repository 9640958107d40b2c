package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"fitcalc/internal/config"
	"fitcalc/internal/pace"
)

// Units formats distances and paces in the configured split unit
type Units struct {
	unit pace.Unit
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	unit, err := pace.ParseUnit(cfg.SplitUnit)
	if err != nil {
		unit = pace.UnitKm
	}
	return Units{unit: unit}
}

// Unit returns the current split unit
func (u Units) Unit() pace.Unit {
	return u.unit
}

// Toggle switches between km and miles
func (u Units) Toggle() Units {
	if u.unit == pace.UnitKm {
		return Units{unit: pace.UnitMile}
	}
	return Units{unit: pace.UnitKm}
}

// FormatDistance formats a distance in km in the current unit
func (u Units) FormatDistance(km float64) string {
	if math.IsNaN(km) {
		return "--"
	}
	return fmt.Sprintf("%.2f %s", km/u.unit.LengthKm(), u.unit)
}

// FormatPace formats a per-km pace in the current unit
func (u Units) FormatPace(secPerKm float64) string {
	return pace.FormatPace(secPerKm*u.unit.LengthKm()) + "/" + string(u.unit)
}

// parseKm reads a positive km value, returning NaN for anything else
func parseKm(s string) float64 {
	km, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !(km > 0) || math.IsInf(km, 0) {
		return math.NaN()
	}
	return km
}
