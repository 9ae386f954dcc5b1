// Package store persists conversion outcomes and validation reports in DuckDB.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// Store manages a DuckDB connection for run results.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Path returns the database file, empty for an in-memory store.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS conversions (
		input VARCHAR PRIMARY KEY,
		output VARCHAR,
		status VARCHAR,
		error VARCHAR,
		input_size BIGINT,
		input_mtime TIMESTAMP,
		residues BIGINT,
		atoms BIGINT,
		dropped BIGINT,
		cap_code VARCHAR,
		cap_residue VARCHAR,
		validation_error VARCHAR,
		converted_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS unsupported_substitutions (
		input VARCHAR,
		glycam_code VARCHAR,
		pdb_code VARCHAR
	)`,
	`CREATE TABLE IF NOT EXISTS validation_problems (
		path VARCHAR,
		glycan_index BIGINT,
		wurcs VARCHAR,
		sugar VARCHAR,
		chain_id VARCHAR,
		pdb_id BIGINT,
		q DOUBLE,
		phi DOUBLE,
		theta DOUBLE,
		denomination VARCHAR,
		conformation VARCHAR,
		bfactor DOUBLE,
		context VARCHAR,
		diagnostic VARCHAR
	)`,
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes all stored results.
func (s *Store) Clear() error {
	for _, table := range []string{"conversions", "unsupported_substitutions", "validation_problems"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}
