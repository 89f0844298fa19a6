package sessionstore

import (
	"encoding/json"
	"strings"
	"time"
)

func (s *Store) ensureSchema() error {
	if s == nil || s.db == nil {
		return nil
	}
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.Exec(`
CREATE TABLE IF NOT EXISTS chat_sessions (
  session_id TEXT PRIMARY KEY,
  turns JSONB NOT NULL DEFAULT '[]',
  updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
`)
	})
	return s.schemaErr
}

func (s *Store) getDB(sessionID string) (State, bool) {
	if err := s.ensureSchema(); err != nil {
		return State{}, false
	}
	id := strings.TrimSpace(sessionID)
	if id == "" {
		return State{}, false
	}
	if s.cache != nil {
		if cached, ok := s.cache.Get(id); ok {
			return cached, true
		}
	}

	row := s.db.QueryRow(`SELECT session_id, turns, updated_at FROM chat_sessions WHERE session_id = $1`, id)
	var state State
	var raw []byte
	if err := row.Scan(&state.SessionID, &raw, &state.UpdatedAt); err != nil {
		return State{}, false
	}
	if err := json.Unmarshal(raw, &state.Turns); err != nil {
		return State{}, false
	}
	state = normalizeState(state)
	if s.cache != nil {
		s.cache.Add(id, state)
	}
	return state, true
}

func (s *Store) appendDB(sessionID string, turns ...Turn) State {
	if err := s.ensureSchema(); err != nil {
		return State{}
	}
	id := strings.TrimSpace(sessionID)
	if id == "" {
		return State{}
	}
	if len(turns) == 0 {
		state, _ := s.getDB(id)
		return state
	}

	tx, err := s.db.Begin()
	if err != nil {
		return State{}
	}
	defer func() { _ = tx.Rollback() }()

	cur := State{SessionID: id}
	row := tx.QueryRow(`SELECT turns FROM chat_sessions WHERE session_id = $1 FOR UPDATE`, id)
	var raw []byte
	if err := row.Scan(&raw); err == nil {
		_ = json.Unmarshal(raw, &cur.Turns)
	}

	cur.Turns = append(cur.Turns, turns...)
	cur.UpdatedAt = time.Now().UTC()

	out, err := json.Marshal(cur.Turns)
	if err != nil {
		return State{}
	}
	if _, err := tx.Exec(`
INSERT INTO chat_sessions (session_id, turns, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (session_id)
DO UPDATE SET turns = EXCLUDED.turns, updated_at = EXCLUDED.updated_at`,
		id, out, cur.UpdatedAt); err != nil {
		return State{}
	}
	if err := tx.Commit(); err != nil {
		return State{}
	}
	if s.cache != nil {
		s.cache.Remove(id)
	}
	return cur
}

func (s *Store) clearDB(sessionID string) {
	if err := s.ensureSchema(); err != nil {
		return
	}
	id := strings.TrimSpace(sessionID)
	if id == "" {
		return
	}
	_, _ = s.db.Exec(`DELETE FROM chat_sessions WHERE session_id = $1`, id)
	if s.cache != nil {
		s.cache.Remove(id)
	}
}
