package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Key addresses one logical collection in the documents table.
type Key string

const (
	KeySessions    Key = "sessions"
	KeyDailyChecks Key = "daily_checks"
	KeySubjects    Key = "subjects"
	KeyStreak      Key = "streak"
	KeySettings    Key = "settings"
	KeyUserProfile Key = "user_profile"
)

var (
	errMissing = errors.New("document missing")
	errCorrupt = errors.New("document corrupt")
)

// Store is a durable key→JSON-document mapping over SQLite. Each collection
// is stored whole under a fixed key; writes replace the full value, and
// reads of missing or corrupt documents fall back to the collection's
// documented default instead of failing.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies the recommended
// pragmas, and ensures the documents table exists.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS documents (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create documents table: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Reset deletes every collection. The next reads return defaults.
func (s *Store) Reset() error {
	if _, err := s.db.Exec(`DELETE FROM documents`); err != nil {
		return fmt.Errorf("reset documents: %w", err)
	}
	return nil
}

// readDoc loads and validates the document under key into out. Returns
// errMissing for absent keys and errCorrupt for undecodable or
// schema-invalid values; callers substitute defaults for both.
func (s *Store) readDoc(key Key, out any) error {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM documents WHERE key = ?`, string(key)).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return errMissing
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}

	if err := validateDoc(key, []byte(raw)); err != nil {
		return fmt.Errorf("%w: %s: %v", errCorrupt, key, err)
	}
	if err := sonic.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("%w: %s: %v", errCorrupt, key, err)
	}
	return nil
}

// writeDoc replaces the full document under key.
func (s *Store) writeDoc(key Key, v any) error {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO documents (key, value, updated_at) VALUES (?, ?, datetime('now'))
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		string(key), string(raw),
	)
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. FOCUSLAB_DB environment variable
// 2. $XDG_DATA_HOME/focuslab/focuslab.db
// 3. ~/.local/share/focuslab/focuslab.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("FOCUSLAB_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "focuslab", "focuslab.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
