package sqlite

import (
	"fmt"

	"gorm.io/gorm"
)

// migration is one step in the ordered schema history. Steps never change
// once shipped; schema evolution appends new ones.
type migration struct {
	version int
	name    string
	stmts   []string
}

var migrations = []migration{
	{
		version: 1,
		name:    "create users and events",
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				email TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS events (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER NOT NULL,
				title TEXT NOT NULL,
				date TEXT NOT NULL,
				start_time TEXT NOT NULL,
				end_time TEXT NOT NULL,
				image TEXT,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users(id)
			)`,
			`CREATE INDEX IF NOT EXISTS idx_events_user_id ON events(user_id)`,
		},
	},
	{
		version: 2,
		name:    "add event location",
		stmts:   []string{`ALTER TABLE events ADD COLUMN location TEXT`},
	},
	{
		version: 3,
		name:    "add event description",
		stmts:   []string{`ALTER TABLE events ADD COLUMN description TEXT`},
	},
}

// Migrate applies every unapplied migration in order, recording each version
// in schema_migrations. Safe to run on every startup.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(
		`CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	).Error; err != nil {
		return fmt.Errorf("create schema_migrations failed: %w", err)
	}

	current, err := currentVersion(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			for _, stmt := range m.stmts {
				if err := tx.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return tx.Exec(
				`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`,
				m.version, m.name,
			).Error
		})
		if err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.name, err)
		}
	}
	return nil
}

func currentVersion(db *gorm.DB) (int, error) {
	var version int
	if err := db.Raw(
		`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`,
	).Scan(&version).Error; err != nil {
		return 0, fmt.Errorf("read schema version failed: %w", err)
	}
	return version, nil
}
