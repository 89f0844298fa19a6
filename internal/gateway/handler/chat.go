package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"packwise/internal/gateway/repository/sessionstore"
)

type chatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Reply   string        `json:"reply"`
	History []chatMessage `json:"history"`
}

func toChatMessages(turns []sessionstore.Turn) []chatMessage {
	out := make([]chatMessage, 0, len(turns))
	for _, t := range turns {
		out = append(out, chatMessage{Role: t.Role, Content: t.Content})
	}
	return out
}

func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid json body")
		return
	}
	if strings.TrimSpace(req.SessionID) == "" {
		h.badRequest(w, "sessionId is required")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		h.badRequest(w, "message is required")
		return
	}

	reply, history, err := h.chat.Turn(r.Context(), req.SessionID, req.Message)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, chatResponse{
		Reply:   reply,
		History: toChatMessages(history),
	})
}

func (h *Handler) HandleChatHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimSpace(r.PathValue("sessionId"))
	if sessionID == "" {
		h.badRequest(w, "sessionId is required")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string][]chatMessage{
		"messages": toChatMessages(h.chat.History(sessionID)),
	})
}

func (h *Handler) HandleClearChat(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimSpace(r.PathValue("sessionId"))
	if sessionID == "" {
		h.badRequest(w, "sessionId is required")
		return
	}
	h.chat.Clear(sessionID)
	w.WriteHeader(http.StatusNoContent)
}
