package migrations

import "embed"

// FS contains embedded SQLite migrations for owner storage.
//
//go:embed *.sql
var FS embed.FS
