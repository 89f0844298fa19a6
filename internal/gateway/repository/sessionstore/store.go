// Package sessionstore persists per-session chat logs. It keeps sessions in
// a JSON file by default and switches to Postgres when a DSN is configured,
// with an LRU cache in front of the database path.
package sessionstore

import (
	"database/sql"
	"os"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const sessionCacheSize = 1024

type Store struct {
	path string
	db   *sql.DB

	loadOnce sync.Once
	mu       sync.RWMutex
	byID     map[string]State

	schemaOnce sync.Once
	schemaErr  error

	cache *lru.Cache[string, State]
}

// New creates a file-backed store at path.
func New(path string) *Store {
	return &Store{
		path: path,
		byID: make(map[string]State),
	}
}

// NewPostgres creates a Postgres-backed store.
func NewPostgres(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	cache, err := lru.New[string, State](sessionCacheSize)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{
		db:    db,
		cache: cache,
	}, nil
}

// NewFromEnv selects the backend by SESSION_STORE_PG_DSN, falling back to
// the file store at path when the DSN is absent or the database is
// unreachable.
func NewFromEnv(path string) *Store {
	dsn := strings.TrimSpace(os.Getenv("SESSION_STORE_PG_DSN"))
	if dsn == "" {
		return New(path)
	}
	s, err := NewPostgres(dsn)
	if err != nil {
		return New(path)
	}
	return s
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the chat log for sessionID.
func (s *Store) Get(sessionID string) (State, bool) {
	if s == nil {
		return State{}, false
	}
	if s.db != nil {
		return s.getDB(sessionID)
	}
	return s.getFile(sessionID)
}

// Append adds turns to the end of the session's log, creating the session if
// it does not exist, and returns the updated state.
func (s *Store) Append(sessionID string, turns ...Turn) State {
	if s == nil {
		return State{}
	}
	if s.db != nil {
		return s.appendDB(sessionID, turns...)
	}
	return s.appendFile(sessionID, turns...)
}

// Clear removes the session's log entirely.
func (s *Store) Clear(sessionID string) {
	if s == nil {
		return
	}
	if s.db != nil {
		s.clearDB(sessionID)
		return
	}
	s.clearFile(sessionID)
}
