package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"fitcalc/internal/hrzone"
	"fitcalc/internal/pace"
	"fitcalc/internal/weight"
)

// Config represents the application configuration
type Config struct {
	Athlete AthleteConfig `json:"athlete"`
	Weight  WeightConfig  `json:"weight"`
	Display DisplayConfig `json:"display"`
	Log     LogConfig     `json:"log"`
}

// AthleteConfig holds heart rate settings
type AthleteConfig struct {
	MaxHR        float64                          `json:"max_hr"`
	RestingHR    float64                          `json:"resting_hr"`
	Age          int                              `json:"age"`
	HRSource     string                           `json:"hr_source"`   // "manual" or "formula"
	HRFormula    string                           `json:"hr_formula"`  // "fox", "tanaka", "gellish", "nes"
	ZoneMethod   string                           `json:"zone_method"` // "max" or "karvonen"
	ZonePercents [hrzone.ZoneCount]hrzone.Percent `json:"zone_percents"`
}

// WeightConfig holds weight tracking preferences
type WeightConfig struct {
	TargetKg   *float64 `json:"target_kg,omitempty"`
	PeriodDays int      `json:"period_days"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	SplitUnit string `json:"split_unit"`
}

// LogConfig controls the log file
type LogConfig struct {
	File  string `json:"file"`
	Level string `json:"level"`
	JSON  bool   `json:"json"`
}

// Validation bounds for athlete settings
const (
	MaxHeartRate    = 250
	MaxRestingHR    = 200
	MinAge          = 10
	MaxAge          = 120
	defaultDirName  = ".fitcalc"
	defaultFileName = "config.json"
	defaultLogName  = "fitcalc.log"
	defaultLogLevel = "info"
)

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Athlete: AthleteConfig{
			MaxHR:        185,
			RestingHR:    55,
			Age:          35,
			HRSource:     string(hrzone.SourceManual),
			HRFormula:    string(hrzone.FormulaFox),
			ZoneMethod:   string(hrzone.MethodMaxHR),
			ZonePercents: hrzone.DefaultPercents(),
		},
		Weight: WeightConfig{
			PeriodDays: weight.DefaultPeriodDays,
		},
		Display: DisplayConfig{
			SplitUnit: string(pace.UnitKm),
		},
		Log: LogConfig{
			Level: defaultLogLevel,
		},
	}
}

// Load reads the configuration from ~/.fitcalc/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from path, filling unset fields with defaults
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills zero values with DefaultConfig values
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Athlete.MaxHR == 0 {
		c.Athlete.MaxHR = defaults.Athlete.MaxHR
	}
	if c.Athlete.RestingHR == 0 {
		c.Athlete.RestingHR = defaults.Athlete.RestingHR
	}
	if c.Athlete.Age == 0 {
		c.Athlete.Age = defaults.Athlete.Age
	}
	if c.Athlete.HRSource == "" {
		c.Athlete.HRSource = defaults.Athlete.HRSource
	}
	if c.Athlete.HRFormula == "" {
		c.Athlete.HRFormula = defaults.Athlete.HRFormula
	}
	if c.Athlete.ZoneMethod == "" {
		c.Athlete.ZoneMethod = defaults.Athlete.ZoneMethod
	}
	// An all-zero table means the key was absent
	if c.Athlete.ZonePercents == ([hrzone.ZoneCount]hrzone.Percent{}) {
		c.Athlete.ZonePercents = defaults.Athlete.ZonePercents
	}
	if c.Weight.PeriodDays == 0 {
		c.Weight.PeriodDays = defaults.Weight.PeriodDays
	}
	if c.Display.SplitUnit == "" {
		c.Display.SplitUnit = defaults.Display.SplitUnit
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// Save writes the configuration to ~/.fitcalc/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo writes the configuration to path, creating its directory
func SaveTo(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample writes the default config if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}
	return CreateExampleAt(path)
}

// CreateExampleAt writes the default config to path if nothing is there yet
func CreateExampleAt(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return SaveTo(path, &example)
}

// Validate checks every setting and reports all problems at once
func (c *Config) Validate() error {
	err := c.Athlete.Validate()

	if c.Weight.TargetKg != nil {
		err = multierr.Append(err, prefix("weight.target_kg", weight.ValidateWeight(*c.Weight.TargetKg)))
	}
	if weight.NormalizePeriod(c.Weight.PeriodDays) != c.Weight.PeriodDays {
		err = multierr.Append(err, fmt.Errorf("weight.period_days must be one of %v, got %d", weight.PeriodDays(), c.Weight.PeriodDays))
	}

	_, unitErr := pace.ParseUnit(c.Display.SplitUnit)
	err = multierr.Append(err, prefix("display.split_unit", unitErr))

	return err
}

// Validate checks the heart rate settings and reports all problems at once
func (a AthleteConfig) Validate() error {
	var err error

	if !(a.MaxHR > 0 && a.MaxHR <= MaxHeartRate) {
		err = multierr.Append(err, fmt.Errorf("athlete.max_hr must be between 1 and %d, got %v", MaxHeartRate, a.MaxHR))
	}
	if !(a.RestingHR > 0 && a.RestingHR <= MaxRestingHR) {
		err = multierr.Append(err, fmt.Errorf("athlete.resting_hr must be between 1 and %d, got %v", MaxRestingHR, a.RestingHR))
	}

	source, sourceErr := hrzone.ParseSource(a.HRSource)
	err = multierr.Append(err, prefix("athlete.hr_source", sourceErr))
	_, formulaErr := hrzone.ParseFormula(a.HRFormula)
	err = multierr.Append(err, prefix("athlete.hr_formula", formulaErr))
	method, methodErr := hrzone.ParseMethod(a.ZoneMethod)
	err = multierr.Append(err, prefix("athlete.zone_method", methodErr))

	if source == hrzone.SourceFormula && (a.Age < MinAge || a.Age > MaxAge) {
		err = multierr.Append(err, fmt.Errorf("athlete.age must be between %d and %d, got %d", MinAge, MaxAge, a.Age))
	}

	// Karvonen needs a positive heart rate reserve
	if method == hrzone.MethodKarvonen && sourceErr == nil && formulaErr == nil {
		maxHR := hrzone.ResolveMaxHR(source, a.MaxHR, a.Age, hrzone.Formula(a.HRFormula))
		if a.RestingHR >= maxHR {
			err = multierr.Append(err, fmt.Errorf("athlete.resting_hr (%v) must be less than max HR (%v)", a.RestingHR, maxHR))
		}
	}

	for i, p := range a.ZonePercents {
		if p.Min < 0 || p.Max > 100 || p.Min > p.Max {
			err = multierr.Append(err, fmt.Errorf("athlete.zone_percents[%d] must satisfy 0 <= min <= max <= 100, got %d-%d", i, p.Min, p.Max))
		}
	}

	return err
}

// prefix names the config key an error belongs to; nil stays nil
func prefix(key string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", key, err)
}

// LogPath returns the log file path, defaulting to ~/.fitcalc/fitcalc.log
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, defaultLogName), nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, defaultFileName), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, defaultDirName), nil
}
