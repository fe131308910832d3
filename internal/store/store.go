// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mikecarlton/calc/pkg/units"
)

// Definition is a user-defined unit.
type Definition struct {
	Name      string
	Unit      units.Unit
	CreatedAt time.Time
}

// Store persists user-defined units in sqlite. Units are stored in their CBOR
// wire form.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS units (
	name TEXT PRIMARY KEY,
	label TEXT,
	dimensions TEXT,
	definition BLOB NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// Open opens (creating if needed) the database at path. Use ":memory:" for a
// throwaway store.
func Open(ctx context.Context, path string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// a single connection keeps ":memory:" databases alive across calls
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	logger.Debug("opened unit store", "path", path)
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Define saves or replaces a unit under name.
func (s *Store) Define(ctx context.Context, name string, u units.Unit) error {
	if name == "" {
		return errors.New("unit name is required")
	}
	data, err := units.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode unit %q: %w", name, err)
	}

	query := `
	INSERT OR REPLACE INTO units (name, label, dimensions, definition)
	VALUES (?, ?, ?, ?)
	`
	if _, err := s.db.ExecContext(ctx, query, name, u.Label(), u.Dimensions().Symbol(), data); err != nil {
		return fmt.Errorf("failed to save unit %q: %w", name, err)
	}

	s.logger.Debug("defined unit", "name", name, "dimensions", u.Dimensions().Symbol(), "multiplier", u.Multiplier())
	return nil
}

// Get returns the unit saved under name; ok is false if there is none.
func (s *Store) Get(ctx context.Context, name string) (u units.Unit, ok bool, err error) {
	var data []byte
	err = s.db.QueryRowContext(ctx, `SELECT definition FROM units WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return units.Unit{}, false, nil
	}
	if err != nil {
		return units.Unit{}, false, fmt.Errorf("failed to load unit %q: %w", name, err)
	}

	if err := units.Unmarshal(data, &u); err != nil {
		return units.Unit{}, false, fmt.Errorf("failed to decode unit %q: %w", name, err)
	}
	return u, true, nil
}

// List returns every definition ordered by name.
func (s *Store) List(ctx context.Context) ([]Definition, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, definition, created_at FROM units ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	defer rows.Close()

	var defs []Definition
	for rows.Next() {
		var (
			def  Definition
			data []byte
		)
		if err := rows.Scan(&def.Name, &data, &def.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to list units: %w", err)
		}
		if err := units.Unmarshal(data, &def.Unit); err != nil {
			s.logger.Warn("skipping undecodable unit", "name", def.Name, "err", err)
			continue
		}
		defs = append(defs, def)
	}

	return defs, rows.Err()
}

// Delete removes name, reporting whether it existed.
func (s *Store) Delete(ctx context.Context, name string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM units WHERE name = ?`, name)
	if err != nil {
		return false, fmt.Errorf("failed to delete unit %q: %w", name, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
