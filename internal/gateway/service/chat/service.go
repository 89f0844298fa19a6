// Package chat owns conversation turns: it prepends the system prompt,
// calls the chat gateway, and appends the outcome to the session log.
package chat

import (
	"context"
	"strings"

	"packwise/internal/gateway/repository/sessionstore"
	"packwise/internal/llmclient"
	"packwise/internal/prompt"
)

type Service struct {
	store *sessionstore.Store
	llm   llmclient.Client
}

func New(store *sessionstore.Store, llm llmclient.Client) *Service {
	return &Service{store: store, llm: llm}
}

// Turn runs one conversation turn. The conversation sent to the gateway is
// the system prompt, the stored history, then the new user message. The
// user message is recorded even when the gateway call fails; the assistant
// reply is appended only on success, in that order.
func (s *Service) Turn(ctx context.Context, sessionID, userMessage string) (string, []sessionstore.Turn, error) {
	sessionID = strings.TrimSpace(sessionID)
	userMessage = strings.TrimSpace(userMessage)

	state, _ := s.store.Get(sessionID)
	messages := make([]llmclient.Message, 0, len(state.Turns)+2)
	messages = append(messages, llmclient.Message{Role: llmclient.RoleSystem, Content: prompt.SystemPrompt})
	for _, t := range state.Turns {
		messages = append(messages, llmclient.Message{Role: t.Role, Content: t.Content})
	}
	messages = append(messages, llmclient.Message{Role: llmclient.RoleUser, Content: userMessage})

	reply, err := s.llm.Complete(ctx, messages)
	if err != nil {
		state = s.store.Append(sessionID, sessionstore.Turn{Role: llmclient.RoleUser, Content: userMessage})
		return "", state.Turns, err
	}

	state = s.store.Append(sessionID,
		sessionstore.Turn{Role: llmclient.RoleUser, Content: userMessage},
		sessionstore.Turn{Role: llmclient.RoleAssistant, Content: reply},
	)
	return reply, state.Turns, nil
}

// History returns the session's chat log.
func (s *Service) History(sessionID string) []sessionstore.Turn {
	state, ok := s.store.Get(strings.TrimSpace(sessionID))
	if !ok {
		return nil
	}
	return state.Turns
}

// Clear drops the session's chat log.
func (s *Service) Clear(sessionID string) {
	s.store.Clear(strings.TrimSpace(sessionID))
}
