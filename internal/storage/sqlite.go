package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const slotSchema = `CREATE TABLE IF NOT EXISTS slots (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLite stores the slot as a row of the slots table.
type SQLite struct {
	key string
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (or creates) the database at path. ":memory:" is accepted
// for tests.
func OpenSQLite(path, key string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite slot requires a database path")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite slot: %w", err)
	}
	// One writer, and ":memory:" databases are per-connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(slotSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create slots table: %w", err)
	}
	return &SQLite{key: key, db: db, now: time.Now}, nil
}

func (s *SQLite) Key() string { return s.key }

func (s *SQLite) Load() ([]byte, bool, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, s.key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read slot %q: %w", s.key, err)
	}
	return data, true, nil
}

func (s *SQLite) Save(data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.key, data, s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save slot %q: %w", s.key, err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
