package tui

import (
	"math"
	"testing"

	"fitcalc/internal/config"
	"fitcalc/internal/pace"
)

func TestUnits(t *testing.T) {
	km := NewUnits(config.DisplayConfig{SplitUnit: "km"})
	mi := km.Toggle()

	if mi.Unit() != pace.UnitMile {
		t.Fatalf("Toggle() unit = %q, want mi", mi.Unit())
	}
	if got := km.FormatDistance(10); got != "10.00 km" {
		t.Errorf("FormatDistance(10) km = %q", got)
	}
	if got := mi.FormatDistance(pace.KmPerMile * 2); got != "2.00 mi" {
		t.Errorf("FormatDistance(2 mi) = %q", got)
	}
	if got := km.FormatPace(300); got != "5:00/km" {
		t.Errorf("FormatPace(300) km = %q", got)
	}
	// 300 s/km * 1.60934 = 482.8 s/mi
	if got := mi.FormatPace(300); got != "8:03/mi" {
		t.Errorf("FormatPace(300) mi = %q", got)
	}

	if NewUnits(config.DisplayConfig{SplitUnit: "yd"}).Unit() != pace.UnitKm {
		t.Error("unknown unit should fall back to km")
	}
}

func TestParseKm(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"10", 10},
		{" 21.0975 ", 21.0975},
		{"0", math.NaN()},
		{"-5", math.NaN()},
		{"rest", math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseKm(tt.input)
			if math.IsNaN(tt.want) {
				if !math.IsNaN(got) {
					t.Errorf("parseKm(%q) = %v, want NaN", tt.input, got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("parseKm(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPlanSegments(t *testing.T) {
	m := NewPlanModel(nil, NewUnits(config.DisplayConfig{SplitUnit: "km"}))
	m.form.setValue(0, "10")
	m.form.setValue(1, "5")
	m.form.setValue(2, "5:00")
	m.form.setValue(3, "REST")
	m.form.setValue(4, "4:40")

	segments, err := m.segments()
	if err != nil {
		t.Fatalf("segments() error = %v", err)
	}
	if len(segments) != 2 {
		t.Fatalf("len = %d, want 2", len(segments))
	}
	if segments[0].DistanceKm != 5 || segments[0].PaceSecPerKm != 300 {
		t.Errorf("leg 1 = %+v", segments[0])
	}
	if !segments[1].IsRest || segments[1].PaceSecPerKm != 280 {
		t.Errorf("leg 2 = %+v", segments[1])
	}

	m.form.setValue(4, "4:99")
	if _, err := m.segments(); err == nil {
		t.Error("expected error for invalid pace")
	}

	blank := NewPlanModel(nil, NewUnits(config.DisplayConfig{}))
	if _, err := blank.segments(); err != errBlankPlan {
		t.Errorf("err = %v, want errBlankPlan", err)
	}
}
