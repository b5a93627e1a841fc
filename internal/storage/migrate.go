package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const (
	upSuffix   = ".up.sql"
	downSuffix = ".down.sql"
)

// EnsureSchema brings the events store up to date. The migration scripts
// are idempotent, so opening an already-migrated store is a no-op.
func EnsureSchema(db *sql.DB) error {
	if err := MigrateUp(db); err != nil {
		return fmt.Errorf("storage: events schema: %w", err)
	}
	return nil
}

func MigrateUp(db *sql.DB) error {
	return applyMigrations(db, upSuffix)
}

func MigrateDown(db *sql.DB) error {
	return applyMigrations(db, downSuffix)
}

func applyMigrations(db *sql.DB, suffix string) error {
	names, err := fs.Glob(migrationFiles, "migrations/*"+suffix)
	if err != nil {
		return fmt.Errorf("storage: glob migrations: %w", err)
	}
	sort.Strings(names)
	if suffix == downSuffix {
		// Tear down in reverse creation order.
		for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
			names[i], names[j] = names[j], names[i]
		}
	}
	for _, name := range names {
		script, readErr := migrationFiles.ReadFile(name)
		if readErr != nil {
			return fmt.Errorf("storage: read migration %s: %w", name, readErr)
		}
		if _, execErr := db.Exec(string(script)); execErr != nil {
			return fmt.Errorf("storage: apply migration %s: %w", name, execErr)
		}
	}
	return nil
}
