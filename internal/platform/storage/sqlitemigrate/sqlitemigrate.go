// Package sqlitemigrate applies embedded SQL migrations to a SQLite
// database, recording each applied file in a ledger table.
package sqlitemigrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

const ledgerTable = "schema_migrations"

const (
	upMarker   = "-- +migrate Up"
	downMarker = "-- +migrate Down"
)

// migration is one SQL file pending execution.
type migration struct {
	name  string
	upSQL string
}

// ApplyMigrations runs every .sql file under dir in lexical order, skipping
// files already present in the ledger. An empty dir reads migrations
// embedded at the filesystem root.
func ApplyMigrations(db *sql.DB, fsys fs.FS, dir string) error {
	if db == nil {
		return fmt.Errorf("sql db is required")
	}

	pending, err := loadMigrations(fsys, dir)
	if err != nil {
		return err
	}
	if err := ensureLedger(db); err != nil {
		return err
	}

	for _, m := range pending {
		if err := applyOne(db, m); err != nil {
			return err
		}
	}
	return nil
}

func loadMigrations(fsys fs.FS, dir string) ([]migration, error) {
	readDir := strings.TrimSpace(dir)
	if readDir == "" {
		readDir = "."
	}

	entries, err := fs.ReadDir(fsys, readDir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var loaded []migration
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		content, err := fs.ReadFile(fsys, path.Join(readDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		name := entry.Name()
		if readDir != "." {
			name = path.Join(readDir, entry.Name())
		}
		loaded = append(loaded, migration{name: name, upSQL: upSection(string(content))})
	}
	sort.Slice(loaded, func(i, j int) bool { return loaded[i].name < loaded[j].name })
	return loaded, nil
}

// upSection returns the SQL between the Up and Down markers. Files without
// markers run whole.
func upSection(content string) string {
	start := strings.Index(content, upMarker)
	if start == -1 {
		return content
	}
	content = content[start+len(upMarker):]
	if end := strings.Index(content, downMarker); end != -1 {
		content = content[:end]
	}
	return content
}

func ensureLedger(db *sql.DB) error {
	ddl := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (name TEXT PRIMARY KEY, applied_at INTEGER NOT NULL)",
		ledgerTable,
	)
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("ensure migration ledger: %w", err)
	}
	return nil
}

func applyOne(db *sql.DB, m migration) error {
	applied, err := alreadyApplied(db, m.name)
	if err != nil {
		return fmt.Errorf("check migration %s: %w", m.name, err)
	}
	if applied || strings.TrimSpace(m.upSQL) == "" {
		return nil
	}

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", m.name, err)
	}
	if _, err := tx.Exec(m.upSQL); err != nil && !isDuplicateDDL(err) {
		_ = tx.Rollback()
		return fmt.Errorf("exec migration %s: %w", m.name, err)
	}
	if _, err := tx.Exec(
		"INSERT OR IGNORE INTO "+ledgerTable+" (name, applied_at) VALUES (?, ?)",
		m.name, time.Now().UTC().UnixMilli(),
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record migration %s: %w", m.name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %s: %w", m.name, err)
	}
	return nil
}

func alreadyApplied(db *sql.DB, name string) (bool, error) {
	var one int
	err := db.QueryRow("SELECT 1 FROM "+ledgerTable+" WHERE name = ?", name).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// isDuplicateDDL reports whether err means the schema object already exists,
// which happens when a database predates the ledger table.
func isDuplicateDDL(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already exists") || strings.Contains(msg, "duplicate column name")
}
