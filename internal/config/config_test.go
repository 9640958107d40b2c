package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"fitcalc/internal/hrzone"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test athlete defaults
	if cfg.Athlete.RestingHR != 55 {
		t.Errorf("Athlete.RestingHR = %v, want 55", cfg.Athlete.RestingHR)
	}
	if cfg.Athlete.MaxHR != 185 {
		t.Errorf("Athlete.MaxHR = %v, want 185", cfg.Athlete.MaxHR)
	}
	if cfg.Athlete.ZoneMethod != "max" {
		t.Errorf("Athlete.ZoneMethod = %q, want %q", cfg.Athlete.ZoneMethod, "max")
	}
	if cfg.Athlete.ZonePercents != hrzone.DefaultPercents() {
		t.Errorf("Athlete.ZonePercents = %v, want defaults", cfg.Athlete.ZonePercents)
	}

	// Test weight and display defaults
	if cfg.Weight.PeriodDays != 30 {
		t.Errorf("Weight.PeriodDays = %d, want 30", cfg.Weight.PeriodDays)
	}
	if cfg.Weight.TargetKg != nil {
		t.Errorf("Weight.TargetKg should be unset, got %v", *cfg.Weight.TargetKg)
	}
	if cfg.Display.SplitUnit != "km" {
		t.Errorf("Display.SplitUnit = %q, want %q", cfg.Display.SplitUnit, "km")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	target := 75.0
	tooHeavy := 400.0

	tests := []struct {
		name        string
		modify      func(c *Config)
		expectError bool
		errContains string
	}{
		{
			name:        "defaults",
			modify:      func(c *Config) {},
			expectError: false,
		},
		{
			name: "karvonen with formula max HR",
			modify: func(c *Config) {
				c.Athlete.ZoneMethod = "karvonen"
				c.Athlete.HRSource = "formula"
				c.Athlete.HRFormula = "tanaka"
				c.Weight.TargetKg = &target
			},
			expectError: false,
		},
		{
			name:        "max HR too high",
			modify:      func(c *Config) { c.Athlete.MaxHR = 260 },
			expectError: true,
			errContains: "athlete.max_hr",
		},
		{
			name:        "resting HR zero",
			modify:      func(c *Config) { c.Athlete.RestingHR = 0 },
			expectError: true,
			errContains: "athlete.resting_hr",
		},
		{
			name: "karvonen with resting above max",
			modify: func(c *Config) {
				c.Athlete.ZoneMethod = "karvonen"
				c.Athlete.MaxHR = 150
				c.Athlete.RestingHR = 160
			},
			expectError: true,
			errContains: "must be less than max HR",
		},
		{
			name:        "unknown formula",
			modify:      func(c *Config) { c.Athlete.HRFormula = "astrand" },
			expectError: true,
			errContains: "athlete.hr_formula",
		},
		{
			name:        "unknown zone method",
			modify:      func(c *Config) { c.Athlete.ZoneMethod = "lactate" },
			expectError: true,
			errContains: "athlete.zone_method",
		},
		{
			name: "formula source with young age",
			modify: func(c *Config) {
				c.Athlete.HRSource = "formula"
				c.Athlete.Age = 5
			},
			expectError: true,
			errContains: "athlete.age",
		},
		{
			name:        "inverted zone band",
			modify:      func(c *Config) { c.Athlete.ZonePercents[2] = hrzone.Percent{Min: 90, Max: 80} },
			expectError: true,
			errContains: "zone_percents[2]",
		},
		{
			name:        "target weight out of range",
			modify:      func(c *Config) { c.Weight.TargetKg = &tooHeavy },
			expectError: true,
			errContains: "weight.target_kg",
		},
		{
			name:        "unsupported period",
			modify:      func(c *Config) { c.Weight.PeriodDays = 60 },
			expectError: true,
			errContains: "weight.period_days",
		},
		{
			name:        "unknown split unit",
			modify:      func(c *Config) { c.Display.SplitUnit = "furlong" },
			expectError: true,
			errContains: "display.split_unit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				} else if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Athlete.MaxHR = 300
	cfg.Weight.PeriodDays = 7
	cfg.Display.SplitUnit = "yd"

	err := cfg.Validate()
	if got := len(multierr.Errors(err)); got != 3 {
		t.Errorf("got %d errors, want 3: %v", got, err)
	}
}

func TestAthleteConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(a *AthleteConfig)
		errs   int
	}{
		{"defaults", func(a *AthleteConfig) {}, 0},
		{"formula source with age", func(a *AthleteConfig) {
			a.HRSource, a.HRFormula, a.Age = "formula", "tanaka", 40
		}, 0},
		{"NaN max HR", func(a *AthleteConfig) { a.MaxHR = math.NaN() }, 1},
		{"NaN resting HR", func(a *AthleteConfig) { a.RestingHR = math.NaN() }, 1},
		{"formula source age too low", func(a *AthleteConfig) {
			a.HRSource, a.Age = "formula", 5
		}, 1},
		{"karvonen without reserve", func(a *AthleteConfig) {
			a.ZoneMethod, a.RestingHR = "karvonen", 190
		}, 1},
		{"inverted zone and bad method", func(a *AthleteConfig) {
			a.ZonePercents[2] = hrzone.Percent{Min: 80, Max: 70}
			a.ZoneMethod = "hrr"
		}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := DefaultConfig().Athlete
			tt.modify(&a)
			if got := len(multierr.Errors(a.Validate())); got != tt.errs {
				t.Errorf("got %d errors, want %d: %v", got, tt.errs, a.Validate())
			}
		})
	}
}

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFrom(filepath.Join(dir, "absent.json"))
		if !errors.Is(err, ErrNoConfig) {
			t.Errorf("err = %v, want ErrNoConfig", err)
		}
	})

	t.Run("partial file gets defaults", func(t *testing.T) {
		path := filepath.Join(dir, "partial.json")
		data := `{"athlete": {"max_hr": 192, "zone_method": "karvonen"}, "display": {"split_unit": "mi"}}`
		if err := os.WriteFile(path, []byte(data), 0600); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("LoadFrom: %v", err)
		}
		if cfg.Athlete.MaxHR != 192 {
			t.Errorf("MaxHR = %v, want 192", cfg.Athlete.MaxHR)
		}
		if cfg.Athlete.ZoneMethod != "karvonen" {
			t.Errorf("ZoneMethod = %q, want karvonen", cfg.Athlete.ZoneMethod)
		}
		if cfg.Athlete.RestingHR != 55 {
			t.Errorf("RestingHR = %v, want default 55", cfg.Athlete.RestingHR)
		}
		if cfg.Athlete.ZonePercents != hrzone.DefaultPercents() {
			t.Errorf("ZonePercents = %v, want defaults", cfg.Athlete.ZonePercents)
		}
		if cfg.Display.SplitUnit != "mi" {
			t.Errorf("SplitUnit = %q, want mi", cfg.Display.SplitUnit)
		}
		if cfg.Log.Level != "info" {
			t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
			t.Fatal(err)
		}
		_, err := LoadFrom(path)
		if err == nil || !strings.Contains(err.Error(), "parsing config file") {
			t.Errorf("err = %v, want parse error", err)
		}
	})
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	target := 72.5

	cfg := DefaultConfig()
	cfg.Weight.TargetKg = &target
	cfg.Weight.PeriodDays = 90

	if err := SaveTo(path, &cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Weight.TargetKg == nil || *loaded.Weight.TargetKg != 72.5 {
		t.Errorf("TargetKg = %v, want 72.5", loaded.Weight.TargetKg)
	}
	if loaded.Weight.PeriodDays != 90 {
		t.Errorf("PeriodDays = %d, want 90", loaded.Weight.PeriodDays)
	}
}

func TestCreateExampleAtKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	if err := CreateExampleAt(path); err != nil {
		t.Fatalf("CreateExampleAt: %v", err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	cfg.Athlete.MaxHR = 199
	if err := SaveTo(path, cfg); err != nil {
		t.Fatal(err)
	}
	if err := CreateExampleAt(path); err != nil {
		t.Fatal(err)
	}

	again, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if again.Athlete.MaxHR != 199 {
		t.Errorf("existing config was overwritten: MaxHR = %v", again.Athlete.MaxHR)
	}
}

func TestLogPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.File = "/tmp/custom.log"
	got, err := cfg.LogPath()
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/custom.log" {
		t.Errorf("LogPath = %q, want /tmp/custom.log", got)
	}
}
