package sessionstore

import (
	"strings"
	"time"
)

// Turn is one role-tagged message in a session's ordered chat log.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// State is the full chat log of one session. Turns are ordered: the caller
// appends the user message first and, on success, the assistant reply.
type State struct {
	SessionID string    `json:"session_id"`
	Turns     []Turn    `json:"turns,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func normalizeState(state State) State {
	state.SessionID = strings.TrimSpace(state.SessionID)
	if state.UpdatedAt.IsZero() {
		state.UpdatedAt = time.Now().UTC()
	}
	return state
}
