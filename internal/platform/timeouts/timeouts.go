// Package timeouts defines the timeout constants shared across services.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// SQLiteBusy caps how long a SQLite connection waits on a locked database
// before failing the statement.
const SQLiteBusy = 5 * time.Second
