// Package storage declares persistence contracts for owner records.
//
// Web handlers depend on these interfaces so request logic stays testable and
// never reaches into a concrete SQLite schema from presentation code.
package storage
