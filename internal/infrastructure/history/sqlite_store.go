package history

import (
	"database/sql"
	"encoding/json"
	"os"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/calcagent/internal/domain"
	"github.com/doeshing/calcagent/internal/ports"
)

// SQLiteStore keeps history in an in-memory SQLite database. It obeys the
// same contract as MemoryStore, including the capacity invariant; the
// in-memory DSN means nothing survives process exit.
type SQLiteStore struct {
	db  *sql.DB
	max int
	mu  sync.Mutex
}

// NewSQLiteStore opens the database and creates the schema.
func NewSQLiteStore(max int) (*SQLiteStore, error) {
	if max <= 0 {
		max = DefaultCapacity
	}
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// A second connection would see a different in-memory database.
	db.SetMaxOpenConns(1)
	store := &SQLiteStore{db: db, max: max}
	if err := store.init(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS entries (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT,
		timestamp TEXT,
		query TEXT,
		result TEXT,
		operation TEXT
	);`)
	return err
}

// Record inserts an entry and evicts the oldest row beyond capacity.
func (s *SQLiteStore) Record(entry domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO entries (id, timestamp, query, result, operation) VALUES (?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Timestamp.Format(time.RFC3339Nano),
		entry.Query,
		entry.Result,
		entry.OperationType,
	)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`DELETE FROM entries WHERE seq NOT IN (
		SELECT seq FROM entries ORDER BY seq DESC LIMIT ?
	)`, s.max)
	return err
}

// Recent returns entries most-recent-first, at most limit when limit > 0.
func (s *SQLiteStore) Recent(limit int) ([]domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	query := `SELECT id, timestamp, query, result, operation FROM entries ORDER BY seq DESC`
	var args []interface{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return s.scan(query, args...)
}

// Latest returns the newest entry, if any.
func (s *SQLiteStore) Latest() (domain.HistoryEntry, bool) {
	entries, err := s.Recent(1)
	if err != nil || len(entries) == 0 {
		return domain.HistoryEntry{}, false
	}
	return entries[0], true
}

// Search matches the keyword against query or result text, insertion order.
func (s *SQLiteStore) Search(keyword string) ([]domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kw := "%" + strings.ToLower(keyword) + "%"
	return s.scan(`SELECT id, timestamp, query, result, operation FROM entries
		WHERE lower(query) LIKE ? OR lower(result) LIKE ?
		ORDER BY seq ASC`, kw, kw)
}

// Clear deletes all entries.
func (s *SQLiteStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM entries`)
	return err
}

// Count returns the number of stored entries.
func (s *SQLiteStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&count); err != nil {
		return 0
	}
	return count
}

// ExportJSON writes all entries, oldest first, to a jsonl file.
func (s *SQLiteStore) ExportJSON(dest string) error {
	s.mu.Lock()
	entries, err := s.scan(`SELECT id, timestamp, query, result, operation FROM entries ORDER BY seq ASC`)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()
	for _, entry := range entries {
		b, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		if _, err := file.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) scan(query string, args ...interface{}) ([]domain.HistoryEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []domain.HistoryEntry
	for rows.Next() {
		var entry domain.HistoryEntry
		var ts string
		if err := rows.Scan(&entry.ID, &ts, &entry.Query, &entry.Result, &entry.OperationType); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			entry.Timestamp = t
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
