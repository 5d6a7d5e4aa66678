package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps events in a private in-memory sqlite database. The data
// disappears when the store is closed.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite() (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", memoryDSN(uuid.NewString()))
	if err != nil {
		return nil, err
	}
	// An in-memory database lives as long as its connection, so keep exactly one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	s := &SQLiteStore{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	year INTEGER NOT NULL,
	month INTEGER NOT NULL,
	day INTEGER NOT NULL,
	text TEXT NOT NULL,
	created_at TEXT NOT NULL
);`
	if _, err := s.db.Exec(ddl); err != nil {
		return err
	}
	_, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS events_by_day ON events (year, month, day, id);`)
	return err
}

func (s *SQLiteStore) List(key DateKey) ([]string, error) {
	rows, err := s.db.Query(`SELECT text FROM events WHERE year = ? AND month = ? AND day = ? ORDER BY id;`,
		key.Year, int(key.Month), key.Day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []string{}
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, err
		}
		events = append(events, text)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *SQLiteStore) Add(key DateKey, text string) error {
	text, ok := normalize(text)
	if !ok {
		return nil
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT INTO events (year, month, day, text, created_at) VALUES (?, ?, ?, ?, ?);`,
		key.Year, int(key.Month), key.Day, text, now)
	return err
}

func (s *SQLiteStore) Remove(key DateKey, text string) error {
	_, err := s.db.Exec(`
DELETE FROM events WHERE id = (
	SELECT id FROM events
	WHERE year = ? AND month = ? AND day = ? AND text = ?
	ORDER BY id LIMIT 1
);`, key.Year, int(key.Month), key.Day, text)
	return err
}

func (s *SQLiteStore) Count(key DateKey) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM events WHERE year = ? AND month = ? AND day = ?;`,
		key.Year, int(key.Month), key.Day).Scan(&n)
	return n, err
}

func memoryDSN(name string) string {
	u := url.URL{
		Scheme: "file",
		Opaque: name,
	}
	q := url.Values{}
	q.Set("mode", "memory")
	u.RawQuery = q.Encode()
	return u.String()
}
