package viewstate

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"gigview/internal/logging"
	"gigview/internal/view"
)

// SQLite is the durable Store. NOT an interface - concrete type.
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type SQLite struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open creates a SQLite store at the given path, creating the table if
// needed. Uses WAL mode for better concurrent read performance (file-based
// DBs only).
func Open(dbPath string) (*SQLite, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so every pooled connection sees the same database.
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &SQLite{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return s, nil
}

func (s *SQLite) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS view_state (
		namespace TEXT PRIMARY KEY,
		version INTEGER NOT NULL,
		state TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Load restores the state stored under namespace. A missing row, a version
// mismatch or an undecodable value all read as "nothing stored"; mismatched
// rows are deleted so they are not retried every load.
func (s *SQLite) Load(namespace string) (view.State, bool) {
	s.mu.RLock()
	var version int
	var raw string
	err := s.db.QueryRow(
		"SELECT version, state FROM view_state WHERE namespace = ?", namespace,
	).Scan(&version, &raw)
	s.mu.RUnlock()

	if err == sql.ErrNoRows {
		return view.State{}, false
	}
	if err != nil {
		logging.Warn("view state load failed", "namespace", namespace, "err", err)
		return view.State{}, false
	}

	if version != schemaVersion {
		logging.Info("discarding stale view state", "namespace", namespace, "version", version)
		s.delete(namespace)
		return view.State{}, false
	}

	var st view.State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		logging.Warn("view state decode failed", "namespace", namespace, "err", err)
		s.delete(namespace)
		return view.State{}, false
	}
	return st.Normalize(), true
}

// Save stores the state under namespace, replacing any prior entry. Write
// failures are logged and swallowed; the caller keeps its in-memory state
// either way.
func (s *SQLite) Save(namespace string, st view.State) {
	raw, err := json.Marshal(st)
	if err != nil {
		logging.Warn("view state encode failed", "namespace", namespace, "err", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO view_state (namespace, version, state, updated_at)
		VALUES (?, ?, ?, ?)
	`, namespace, schemaVersion, string(raw), time.Now().UTC())
	if err != nil {
		logging.Warn("view state save failed", "namespace", namespace, "err", err)
	}
}

func (s *SQLite) delete(namespace string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec("DELETE FROM view_state WHERE namespace = ?", namespace); err != nil {
		logging.Warn("view state delete failed", "namespace", namespace, "err", err)
	}
}
