// Package datastore exports built galaxy data (books, words) to SQLite for
// Datasette-style browsing, either locally or against a remote instance.
package datastore

// Store is the common interface for galaxy data exports.
type Store interface {
	// Connect establishes the connection to the store
	Connect() error
	// CreateTable creates a table with the given schema if it doesn't exist
	CreateTable(schema string) error
	// BatchInsert inserts multiple records into the specified table
	BatchInsert(database string, table string, records []map[string]any) error
	// Close closes the connection
	Close() error
}
