package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

// SQLiteKV stores records in a single kv table.
type SQLiteKV struct {
	db    *sql.DB
	clock Clock
}

func NewSQLiteKV(db *sql.DB, clock Clock) (*SQLiteKV, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if clock == nil {
		clock = time.Now
	}
	return &SQLiteKV{db: db, clock: clock}, nil
}

func OpenSQLite(path string, clock Clock) (*SQLiteKV, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	kv, err := NewSQLiteKV(db, clock)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return kv, nil
}

func (s *SQLiteKV) Close() error {
	return s.db.Close()
}

func (s *SQLiteKV) Get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

func (s *SQLiteKV) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, s.clock().UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: set %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteKV) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteKV) Keys() []string {
	rows, err := s.db.Query(`SELECT key FROM kv`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var key string
		if rows.Scan(&key) == nil {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}
