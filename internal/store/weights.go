package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fitcalc/internal/weight"
)

// ErrWeightNotFound is returned when no weight entry exists for a date
var ErrWeightNotFound = errors.New("weight entry not found")

// sqliteTimestamp is the layout SQLite uses for CURRENT_TIMESTAMP
const sqliteTimestamp = "2006-01-02 15:04:05"

// UpsertWeight inserts or replaces the weigh-in for a calendar day
func (s *Store) UpsertWeight(date time.Time, kg float64) error {
	if err := weight.ValidateWeight(kg); err != nil {
		return err
	}
	_, err := s.db.Exec(`
		INSERT INTO weight_entries (date, weight_kg, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(date) DO UPDATE SET
			weight_kg = excluded.weight_kg,
			import_id = NULL,
			updated_at = CURRENT_TIMESTAMP
	`, formatDate(date), kg)
	return err
}

// DeleteWeight removes the weigh-in for a calendar day
func (s *Store) DeleteWeight(date time.Time) error {
	result, err := s.db.Exec(`DELETE FROM weight_entries WHERE date = ?`, formatDate(date))
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrWeightNotFound
	}
	return nil
}

// GetWeightsSince returns samples on or after since, oldest first
func (s *Store) GetWeightsSince(since time.Time) ([]weight.Sample, error) {
	rows, err := s.db.Query(`
		SELECT date, weight_kg
		FROM weight_entries
		WHERE date >= ?
		ORDER BY date
	`, formatDate(since))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []weight.Sample
	for rows.Next() {
		var date string
		var sample weight.Sample
		if err := rows.Scan(&date, &sample.WeightKg); err != nil {
			return nil, err
		}
		sample.Date, err = weight.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("parsing stored date %q: %w", date, err)
		}
		samples = append(samples, sample)
	}
	return samples, rows.Err()
}

// GetLatestWeight returns the most recent weigh-in
func (s *Store) GetLatestWeight() (*WeightEntry, error) {
	row := s.db.QueryRow(`
		SELECT date, weight_kg, import_id, updated_at
		FROM weight_entries
		ORDER BY date DESC
		LIMIT 1
	`)

	var e WeightEntry
	var date, updatedAt string
	var importID sql.NullString
	err := row.Scan(&date, &e.WeightKg, &importID, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWeightNotFound
	}
	if err != nil {
		return nil, err
	}

	if e.Date, err = weight.ParseDate(date); err != nil {
		return nil, fmt.Errorf("parsing stored date %q: %w", date, err)
	}
	if importID.Valid {
		e.ImportID = &importID.String
	}
	e.UpdatedAt, _ = time.Parse(sqliteTimestamp, updatedAt)
	return &e, nil
}

// CountWeights returns the number of stored weigh-ins
func (s *Store) CountWeights() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM weight_entries`).Scan(&count)
	return count, err
}

// ImportWeights validates the whole batch, then upserts it in one transaction.
// A repeated date within the batch counts as an update of the earlier row.
func (s *Store) ImportWeights(samples []weight.Sample, source string, now time.Time) (*WeightImport, error) {
	if err := weight.ValidateSamples(samples); err != nil {
		return nil, err
	}

	imp := &WeightImport{
		ID:         uuid.NewString(),
		Source:     source,
		Total:      len(samples),
		ImportedAt: now.UTC().Truncate(time.Second),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning import: %w", err)
	}
	defer tx.Rollback()

	// Audit row first so entries can reference it
	if _, err := tx.Exec(`
		INSERT INTO weight_imports (id, source, inserted, updated, total, imported_at)
		VALUES (?, ?, 0, 0, ?, ?)
	`, imp.ID, imp.Source, imp.Total, imp.ImportedAt.Format(time.RFC3339)); err != nil {
		return nil, fmt.Errorf("recording import: %w", err)
	}

	for _, sample := range samples {
		date := formatDate(sample.Date)

		var exists bool
		if err := tx.QueryRow(`
			SELECT EXISTS(SELECT 1 FROM weight_entries WHERE date = ?)
		`, date).Scan(&exists); err != nil {
			return nil, fmt.Errorf("checking %s: %w", date, err)
		}

		if _, err := tx.Exec(`
			INSERT INTO weight_entries (date, weight_kg, import_id, updated_at)
			VALUES (?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(date) DO UPDATE SET
				weight_kg = excluded.weight_kg,
				import_id = excluded.import_id,
				updated_at = CURRENT_TIMESTAMP
		`, date, sample.WeightKg, imp.ID); err != nil {
			return nil, fmt.Errorf("writing %s: %w", date, err)
		}

		if exists {
			imp.Updated++
		} else {
			imp.Inserted++
		}
	}

	if _, err := tx.Exec(`
		UPDATE weight_imports SET inserted = ?, updated = ? WHERE id = ?
	`, imp.Inserted, imp.Updated, imp.ID); err != nil {
		return nil, fmt.Errorf("updating import counts: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing import: %w", err)
	}
	return imp, nil
}

// GetRecentImports returns the newest import batches first
func (s *Store) GetRecentImports(limit int) ([]WeightImport, error) {
	rows, err := s.db.Query(`
		SELECT id, source, inserted, updated, total, imported_at
		FROM weight_imports
		ORDER BY imported_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var imports []WeightImport
	for rows.Next() {
		var imp WeightImport
		var importedAt string
		if err := rows.Scan(&imp.ID, &imp.Source, &imp.Inserted, &imp.Updated, &imp.Total, &importedAt); err != nil {
			return nil, err
		}
		imp.ImportedAt, _ = time.Parse(time.RFC3339, importedAt)
		imports = append(imports, imp)
	}
	return imports, rows.Err()
}

func formatDate(t time.Time) string {
	return t.Format(weight.DateLayout)
}
