package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// CSV import audit trail
		`CREATE TABLE IF NOT EXISTS weight_imports (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			inserted INTEGER NOT NULL,
			updated INTEGER NOT NULL,
			total INTEGER NOT NULL,
			imported_at TEXT NOT NULL
		)`,

		// Weight log, one entry per calendar day
		`CREATE TABLE IF NOT EXISTS weight_entries (
			date TEXT PRIMARY KEY,
			weight_kg REAL NOT NULL CHECK (weight_kg >= 30 AND weight_kg <= 300),
			import_id TEXT REFERENCES weight_imports(id) ON DELETE SET NULL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_weight_imports_imported_at ON weight_imports(imported_at)`,

		// Saved settings (key-value)
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
