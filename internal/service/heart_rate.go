package service

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"fitcalc/internal/config"
	"fitcalc/internal/hrzone"
	"fitcalc/internal/store"
)

// ErrInvalidHeartRate is returned when edited heart rate settings fail validation
var ErrInvalidHeartRate = errors.New("invalid heart rate settings")

// HeartRateData contains the athlete's five training zones
type HeartRateData struct {
	Settings  config.AthleteConfig // what the zones were computed from
	Saved     bool                 // Settings were edited in the app, not read from the config file
	MaxHR     float64
	RestingHR float64
	Source    hrzone.Source
	Formula   hrzone.Formula
	Method    hrzone.Method
	Zones     []ZoneRow
}

// ZoneRow is one zone ready for display
type ZoneRow struct {
	ID      int
	Name    string
	Percent hrzone.Percent
	MinBpm  int
	MaxBpm  int
}

// HeartRate computes zones from the saved heart rate settings, falling back
// to the config file when nothing has been saved
func (q *QueryService) HeartRate() (*HeartRateData, error) {
	a, saved := q.heartRateSettings()

	source, err := hrzone.ParseSource(a.HRSource)
	if err != nil {
		return nil, fmt.Errorf("hr source: %w", err)
	}
	formula, err := hrzone.ParseFormula(a.HRFormula)
	if err != nil {
		return nil, fmt.Errorf("hr formula: %w", err)
	}
	method, err := hrzone.ParseMethod(a.ZoneMethod)
	if err != nil {
		return nil, fmt.Errorf("zone method: %w", err)
	}

	maxHR := hrzone.ResolveMaxHR(source, a.MaxHR, a.Age, formula)
	zones := hrzone.Zones(method, maxHR, a.RestingHR, a.ZonePercents)

	data := &HeartRateData{
		Settings:  a,
		Saved:     saved,
		MaxHR:     maxHR,
		RestingHR: a.RestingHR,
		Source:    source,
		Formula:   formula,
		Method:    method,
	}
	for i, z := range zones {
		data.Zones = append(data.Zones, ZoneRow{
			ID:      z.ID,
			Name:    hrzone.ZoneName(z.ID),
			Percent: a.ZonePercents[i],
			MinBpm:  z.MinBpm,
			MaxBpm:  z.MaxBpm,
		})
	}
	return data, nil
}

// SaveHeartRateSettings validates edited settings with the config file's
// rules and stores them, overriding the config file from then on
func (q *QueryService) SaveHeartRateSettings(a config.AthleteConfig) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHeartRate, err)
	}
	if err := q.store.SetJSONSetting(store.SettingHeartRate, a); err != nil {
		return fmt.Errorf("saving heart rate settings: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"max_hr":      a.MaxHR,
		"resting_hr":  a.RestingHR,
		"hr_source":   a.HRSource,
		"zone_method": a.ZoneMethod,
	}).Info("heart rate settings saved")
	return nil
}

// ClearHeartRateSettings drops the saved settings so the config file applies again
func (q *QueryService) ClearHeartRateSettings() error {
	if err := q.store.DeleteSetting(store.SettingHeartRate); err != nil {
		return fmt.Errorf("clearing heart rate settings: %w", err)
	}
	logrus.Info("heart rate settings cleared")
	return nil
}

// heartRateSettings returns the saved settings when there are usable ones,
// otherwise the config file's
func (q *QueryService) heartRateSettings() (config.AthleteConfig, bool) {
	a := q.cfg.Athlete
	if q.store == nil {
		return a, false
	}

	saved := a
	found, err := q.store.GetJSONSetting(store.SettingHeartRate, &saved)
	if err != nil {
		logrus.WithError(err).Warn("ignoring unreadable heart rate settings")
		return a, false
	}
	if !found {
		return a, false
	}
	if err := saved.Validate(); err != nil {
		logrus.WithError(err).Warn("ignoring invalid heart rate settings")
		return a, false
	}
	return saved, true
}
