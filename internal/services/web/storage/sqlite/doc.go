// Package sqlite provides a SQLite-backed owner storage implementation.
package sqlite
