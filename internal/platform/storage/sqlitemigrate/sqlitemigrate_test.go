package sqlitemigrate

import (
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func TestApplyMigrationsBuildsSchemaInLexicalOrder(t *testing.T) {
	db := newTestDB(t)

	fsys := fstest.MapFS{
		"0002_add_city.sql": sqlFile(`-- +migrate Up
ALTER TABLE clinics ADD COLUMN city TEXT;
-- +migrate Down
`),
		"0001_create_clinics.sql": sqlFile(`-- +migrate Up
CREATE TABLE clinics (id INTEGER PRIMARY KEY, name TEXT NOT NULL);
-- +migrate Down
DROP TABLE clinics;
`),
	}

	if err := ApplyMigrations(db, fsys, ""); err != nil {
		t.Fatalf("ApplyMigrations() error = %v", err)
	}

	if _, err := db.Exec("INSERT INTO clinics (name, city) VALUES ('Downtown', 'Madison')"); err != nil {
		t.Fatalf("insert into migrated table: %v", err)
	}
	if got := countRows(t, db, ledgerTable); got != 2 {
		t.Fatalf("ledger rows = %d, want 2", got)
	}
}

func TestApplyMigrationsSkipsAppliedFiles(t *testing.T) {
	db := newTestDB(t)

	fsys := fstest.MapFS{
		"0001_create_clinics.sql": sqlFile(`-- +migrate Up
CREATE TABLE clinics (id INTEGER PRIMARY KEY);
-- +migrate Down
`),
		"0002_add_city.sql": sqlFile(`-- +migrate Up
ALTER TABLE clinics ADD COLUMN city TEXT;
-- +migrate Down
`),
	}

	if err := ApplyMigrations(db, fsys, ""); err != nil {
		t.Fatalf("first run: %v", err)
	}
	// The ALTER TABLE would fail with a duplicate column if replayed.
	if err := ApplyMigrations(db, fsys, ""); err != nil {
		t.Fatalf("second run: %v", err)
	}

	if got := countRows(t, db, ledgerTable); got != 2 {
		t.Fatalf("ledger rows = %d, want 2", got)
	}
}

func TestApplyMigrationsLeavesFailuresUnrecorded(t *testing.T) {
	db := newTestDB(t)

	broken := fstest.MapFS{
		"0001_broken.sql": sqlFile("-- +migrate Up\nCREAT TABLE nope (id INTEGER);"),
	}
	if err := ApplyMigrations(db, broken, ""); err == nil {
		t.Fatal("expected broken migration to fail")
	}
	if got := countRows(t, db, ledgerTable); got != 0 {
		t.Fatalf("ledger rows after failure = %d, want 0", got)
	}

	fixed := fstest.MapFS{
		"0001_broken.sql": sqlFile("-- +migrate Up\nCREATE TABLE nope (id INTEGER PRIMARY KEY);"),
	}
	if err := ApplyMigrations(db, fixed, ""); err != nil {
		t.Fatalf("apply fixed migration: %v", err)
	}
	if got := countRows(t, db, ledgerTable); got != 1 {
		t.Fatalf("ledger rows after fix = %d, want 1", got)
	}
}

func TestApplyMigrationsToleratesPreexistingSchema(t *testing.T) {
	db := newTestDB(t)

	if _, err := db.Exec("CREATE TABLE clinics (id INTEGER PRIMARY KEY)"); err != nil {
		t.Fatalf("create table ahead of migrations: %v", err)
	}

	fsys := fstest.MapFS{
		"0001_create_clinics.sql": sqlFile("-- +migrate Up\nCREATE TABLE clinics (id INTEGER PRIMARY KEY);"),
	}
	if err := ApplyMigrations(db, fsys, ""); err != nil {
		t.Fatalf("ApplyMigrations() error = %v", err)
	}
	if got := countRows(t, db, ledgerTable); got != 1 {
		t.Fatalf("ledger rows = %d, want 1", got)
	}
}

func TestApplyMigrationsReadsFromSubdirectory(t *testing.T) {
	db := newTestDB(t)

	fsys := fstest.MapFS{
		"owner/0001_create_clinics.sql": sqlFile("-- +migrate Up\nCREATE TABLE clinics (id INTEGER PRIMARY KEY);"),
	}
	if err := ApplyMigrations(db, fsys, "owner"); err != nil {
		t.Fatalf("ApplyMigrations() error = %v", err)
	}

	var name string
	if err := db.QueryRow("SELECT name FROM " + ledgerTable).Scan(&name); err != nil {
		t.Fatalf("read ledger: %v", err)
	}
	if name != "owner/0001_create_clinics.sql" {
		t.Fatalf("ledger name = %q, want %q", name, "owner/0001_create_clinics.sql")
	}
}

func TestApplyMigrationsRequiresDB(t *testing.T) {
	if err := ApplyMigrations(nil, fstest.MapFS{}, ""); err == nil {
		t.Fatal("expected error for nil db")
	}
}

func TestUpSection(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "between markers",
			content: "-- +migrate Up\nCREATE TABLE a (id INTEGER);\n-- +migrate Down\nDROP TABLE a;",
			want:    "\nCREATE TABLE a (id INTEGER);\n",
		},
		{
			name:    "no down marker",
			content: "-- +migrate Up\nCREATE TABLE a (id INTEGER);",
			want:    "\nCREATE TABLE a (id INTEGER);",
		},
		{
			name:    "no markers runs whole file",
			content: "CREATE TABLE a (id INTEGER);",
			want:    "CREATE TABLE a (id INTEGER);",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := upSection(tt.content); got != tt.want {
				t.Fatalf("upSection() = %q, want %q", got, tt.want)
			}
		})
	}
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatalf("close db: %v", err)
		}
	})
	return db
}

func sqlFile(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content)}
}

func countRows(t *testing.T, db *sql.DB, table string) int64 {
	t.Helper()
	var count int64
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return count
}
