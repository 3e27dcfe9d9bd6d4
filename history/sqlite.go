package history

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the history in a SQLite table. Insertion order is the
// autoincrement sequence, so overwriting an entry keeps its position.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database at path.
// The database lives on the OS filesystem regardless of the afero backend.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS history (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		identity TEXT NOT NULL UNIQUE,
		file TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		watched BOOLEAN NOT NULL DEFAULT FALSE,
		length INTEGER NOT NULL DEFAULT 0,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_history_file ON history(file);
	`)
	return err
}

func (s *SQLiteStore) Load() ([]Entry, error) {
	rows, err := s.db.Query(`SELECT file, timestamp, watched, length FROM history ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.File, &e.Timestamp, &e.Watched, &e.Length); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (s *SQLiteStore) Upsert(path, timestamp string, watched bool, length int) error {
	e := Entry{File: path, Timestamp: timestampFor(timestamp, watched), Watched: watched, Length: length}

	_, err := s.db.Exec(`
		INSERT INTO history (identity, file, timestamp, watched, length)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(identity) DO UPDATE SET
			file = excluded.file,
			timestamp = excluded.timestamp,
			watched = excluded.watched,
			length = excluded.length,
			updated_at = CURRENT_TIMESTAMP
	`, e.Identity(), e.File, e.Timestamp, e.Watched, e.Length)
	return err
}

func (s *SQLiteStore) Delete(path string, removeFile bool) error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM history WHERE file = ?`, path).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	if removeFile {
		if err := removeMedia(path); err != nil {
			return err
		}
	}

	_, err := s.db.Exec(`DELETE FROM history WHERE file = ?`, path)
	return err
}

func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM history`)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
