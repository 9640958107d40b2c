package store

import "time"

// WeightEntry is a single day's weigh-in
type WeightEntry struct {
	Date      time.Time `db:"date"`
	WeightKg  float64   `db:"weight_kg"`
	ImportID  *string   `db:"import_id"` // nullable, set for CSV imports
	UpdatedAt time.Time `db:"updated_at"`
}

// WeightImport records one CSV import batch
type WeightImport struct {
	ID         string    `db:"id"`
	Source     string    `db:"source"`
	Inserted   int       `db:"inserted"`
	Updated    int       `db:"updated"`
	Total      int       `db:"total"`
	ImportedAt time.Time `db:"imported_at"`
}

// RaceResult is the last race entered on the VDOT screen
type RaceResult struct {
	DistanceM float64 `json:"distance_m"`
	TimeSec   float64 `json:"time_sec"`
}
