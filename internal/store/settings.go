package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrSettingNotFound is returned when a setting key has never been saved
var ErrSettingNotFound = errors.New("setting not found")

// Setting keys
const (
	SettingTargetWeight = "target_weight_kg"
	SettingLastRace     = "last_race"
	SettingHeartRate    = "heart_rate"
)

// GetSetting retrieves a saved setting by key
func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`
		SELECT value FROM settings WHERE key = ?
	`, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSettingNotFound
	}
	return value, err
}

// SetSetting sets a setting value
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, key, value)
	return err
}

// DeleteSetting removes a setting; missing keys are not an error
func (s *Store) DeleteSetting(key string) error {
	_, err := s.db.Exec(`DELETE FROM settings WHERE key = ?`, key)
	return err
}

// GetTargetWeight returns the saved target weight, or nil when none is set
func (s *Store) GetTargetWeight() (*float64, error) {
	value, err := s.GetSetting(SettingTargetWeight)
	if errors.Is(err, ErrSettingNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	kg, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing target weight %q: %w", value, err)
	}
	return &kg, nil
}

// SetTargetWeight saves the target weight; nil clears it
func (s *Store) SetTargetWeight(kg *float64) error {
	if kg == nil {
		return s.DeleteSetting(SettingTargetWeight)
	}
	return s.SetSetting(SettingTargetWeight, strconv.FormatFloat(*kg, 'f', -1, 64))
}

// GetJSONSetting decodes a JSON setting into v. It reports false, leaving v
// untouched, when the key has never been saved.
func (s *Store) GetJSONSetting(key string, v any) (bool, error) {
	value, err := s.GetSetting(key)
	if errors.Is(err, ErrSettingNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(value), v); err != nil {
		return false, fmt.Errorf("decoding setting %s: %w", key, err)
	}
	return true, nil
}

// SetJSONSetting encodes v as JSON and saves it under key
func (s *Store) SetJSONSetting(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding setting %s: %w", key, err)
	}
	return s.SetSetting(key, string(data))
}

// GetLastRace returns the last race entered, or nil when none is saved
func (s *Store) GetLastRace() (*RaceResult, error) {
	var race RaceResult
	found, err := s.GetJSONSetting(SettingLastRace, &race)
	if err != nil || !found {
		return nil, err
	}
	return &race, nil
}

// SaveLastRace stores the race used for the latest VDOT calculation
func (s *Store) SaveLastRace(race RaceResult) error {
	return s.SetJSONSetting(SettingLastRace, race)
}
