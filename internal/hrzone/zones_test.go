package hrzone

import "testing"

func TestEstimateMaxHR(t *testing.T) {
	tests := []struct {
		name    string
		age     int
		formula Formula
		want    int
	}{
		{"fox age 35", 35, FormulaFox, 185},
		{"tanaka age 35 rounds half up", 35, FormulaTanaka, 184},   // 183.5
		{"gellish age 35 rounds half up", 35, FormulaGellish, 183}, // 182.5
		{"nes age 35", 35, FormulaNes, 189},                        // 188.6
		{"fox age 10", 10, FormulaFox, 210},
		{"tanaka age 120", 120, FormulaTanaka, 124},
		{"unknown formula falls back to fox", 40, Formula("bogus"), 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateMaxHR(tt.age, tt.formula)
			if got != tt.want {
				t.Errorf("EstimateMaxHR(%d, %s) = %d, want %d", tt.age, tt.formula, got, tt.want)
			}
		})
	}
}

func TestZonesByMaxHR(t *testing.T) {
	got := ZonesByMaxHR(185, DefaultPercents())

	// 185 * 0.5 = 92.5 and 185 * 0.9 = 166.5 pin half-away-from-zero rounding
	want := [ZoneCount]Zone{
		{ID: 1, MinBpm: 93, MaxBpm: 111},
		{ID: 2, MinBpm: 111, MaxBpm: 130},
		{ID: 3, MinBpm: 130, MaxBpm: 148},
		{ID: 4, MinBpm: 148, MaxBpm: 167},
		{ID: 5, MinBpm: 167, MaxBpm: 185},
	}

	if got != want {
		t.Errorf("ZonesByMaxHR(185) = %+v, want %+v", got, want)
	}
}

func TestZonesByKarvonen(t *testing.T) {
	got := ZonesByKarvonen(185, 55, DefaultPercents())

	want := [ZoneCount]Zone{
		{ID: 1, MinBpm: 120, MaxBpm: 133},
		{ID: 2, MinBpm: 133, MaxBpm: 146},
		{ID: 3, MinBpm: 146, MaxBpm: 159},
		{ID: 4, MinBpm: 159, MaxBpm: 172},
		{ID: 5, MinBpm: 172, MaxBpm: 185},
	}

	if got != want {
		t.Errorf("ZonesByKarvonen(185, 55) = %+v, want %+v", got, want)
	}
}

func TestZonesByKarvonen_DegenerateReserve(t *testing.T) {
	// resting >= max is the caller's problem; zones invert instead of failing
	zones := ZonesByKarvonen(150, 160, DefaultPercents())
	if zones[4].MinBpm < zones[4].MaxBpm {
		t.Errorf("expected inverted zone 5 with negative reserve, got %+v", zones[4])
	}
}

func TestZones_IndependentBands(t *testing.T) {
	// overlapping and non-monotonic bands are computed as given
	percents := [ZoneCount]Percent{
		{Min: 70, Max: 80},
		{Min: 50, Max: 65},
		{Min: 60, Max: 90},
		{Min: 0, Max: 100},
		{Min: 95, Max: 95},
	}

	zones := ZonesByMaxHR(200, percents)

	want := [ZoneCount]Zone{
		{ID: 1, MinBpm: 140, MaxBpm: 160},
		{ID: 2, MinBpm: 100, MaxBpm: 130},
		{ID: 3, MinBpm: 120, MaxBpm: 180},
		{ID: 4, MinBpm: 0, MaxBpm: 200},
		{ID: 5, MinBpm: 190, MaxBpm: 190},
	}
	if zones != want {
		t.Errorf("ZonesByMaxHR(200, custom) = %+v, want %+v", zones, want)
	}

	if zones[0].MaxBpm <= zones[1].MinBpm {
		t.Error("test bands should overlap out of order")
	}
}

func TestZonesDispatch(t *testing.T) {
	p := DefaultPercents()

	if got, want := Zones(MethodKarvonen, 185, 55, p), ZonesByKarvonen(185, 55, p); got != want {
		t.Errorf("Zones(karvonen) = %+v, want %+v", got, want)
	}
	if got, want := Zones(MethodMaxHR, 185, 55, p), ZonesByMaxHR(185, p); got != want {
		t.Errorf("Zones(max) = %+v, want %+v", got, want)
	}
}

func TestResolveMaxHR(t *testing.T) {
	if got := ResolveMaxHR(SourceManual, 192, 35, FormulaFox); got != 192 {
		t.Errorf("ResolveMaxHR(manual) = %v, want 192", got)
	}
	if got := ResolveMaxHR(SourceFormula, 192, 35, FormulaFox); got != 185 {
		t.Errorf("ResolveMaxHR(formula) = %v, want 185", got)
	}
}

func TestParseEnums(t *testing.T) {
	if _, err := ParseFormula("tanaka"); err != nil {
		t.Errorf("ParseFormula(tanaka) error = %v", err)
	}
	if _, err := ParseFormula("Tanaka"); err == nil {
		t.Error("ParseFormula(Tanaka) should be case sensitive")
	}
	if _, err := ParseMethod("karvonen"); err != nil {
		t.Errorf("ParseMethod(karvonen) error = %v", err)
	}
	if _, err := ParseMethod("reserve"); err == nil {
		t.Error("ParseMethod(reserve) should fail")
	}
	if _, err := ParseSource("formula"); err != nil {
		t.Errorf("ParseSource(formula) error = %v", err)
	}
	if _, err := ParseSource(""); err == nil {
		t.Error("ParseSource(\"\") should fail")
	}
}

func TestZoneFor(t *testing.T) {
	zones := ZonesByMaxHR(185, DefaultPercents())

	tests := []struct {
		bpm  int
		want int
	}{
		{80, 0},
		{100, 1},
		{111, 1}, // shared edge goes to the lower zone
		{140, 3},
		{185, 5},
		{190, 0},
	}

	for _, tt := range tests {
		if got := ZoneFor(tt.bpm, zones); got != tt.want {
			t.Errorf("ZoneFor(%d) = %d, want %d", tt.bpm, got, tt.want)
		}
	}
}

func TestZoneName(t *testing.T) {
	if got := ZoneName(1); got != "Recovery" {
		t.Errorf("ZoneName(1) = %q", got)
	}
	if got := ZoneName(9); got != "Unknown" {
		t.Errorf("ZoneName(9) = %q", got)
	}
}
