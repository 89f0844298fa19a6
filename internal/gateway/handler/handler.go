// Package handler serves the gateway's HTTP surface: chat, ESG report
// analysis, sustainability assessment, and the footprint estimator.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"packwise/internal/extract"
	"packwise/internal/gateway/repository/report"
	"packwise/internal/gateway/service/analysis"
	"packwise/internal/gateway/service/chat"
	"packwise/internal/llmclient"
)

type Handler struct {
	log      zerolog.Logger
	chat     *chat.Service
	analysis *analysis.Service
	reports  report.Store
}

func New(log zerolog.Logger, chatSvc *chat.Service, analysisSvc *analysis.Service, reports report.Store) *Handler {
	return &Handler{
		log:      log,
		chat:     chatSvc,
		analysis: analysisSvc,
		reports:  reports,
	}
}

func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error().Err(err).Msg("failed to encode response")
	}
}

func (h *Handler) badRequest(w http.ResponseWriter, message string) {
	h.writeJSON(w, http.StatusBadRequest, errorBody{Code: "invalid_argument", Message: message})
}

// errorInfo maps the domain error taxonomy onto an HTTP status and a coded
// body. The HTTP and websocket paths share it so both report the same codes.
func (h *Handler) errorInfo(err error) (int, errorBody) {
	var reqErr *llmclient.RequestError
	var fmtErr *llmclient.FormatError
	var parseErr *extract.ParseError

	switch {
	case errors.Is(err, llmclient.ErrNotConfigured):
		return http.StatusServiceUnavailable, errorBody{
			Code:    "not_configured",
			Message: "GROQ_API_KEY not set; AI features are unavailable",
		}
	case errors.As(err, &reqErr):
		return http.StatusBadGateway, errorBody{
			Code:    "gateway_request_failed",
			Message: reqErr.Error(),
		}
	case errors.As(err, &fmtErr):
		return http.StatusBadGateway, errorBody{
			Code:    "gateway_response_format",
			Message: fmtErr.Error(),
		}
	case errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity, errorBody{
			Code:    "extraction_failed",
			Message: parseErr.Error(),
		}
	case errors.Is(err, extract.ErrEmptyDocument):
		return http.StatusUnprocessableEntity, errorBody{
			Code:    "empty_document",
			Message: "no readable text found in document",
		}
	default:
		return http.StatusInternalServerError, errorBody{
			Code:    "internal",
			Message: "internal error",
		}
	}
}

// writeError reports a failed action. Every error is terminal for the
// triggering action only; the session stays usable.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status, body := h.errorInfo(err)
	if body.Code == "internal" {
		h.log.Error().Err(err).Msg("unhandled request error")
	}
	h.writeJSON(w, status, body)
}
