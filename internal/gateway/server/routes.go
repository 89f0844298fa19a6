package server

import (
	"net/http"

	"packwise/internal/gateway/handler"
	"packwise/internal/gateway/middleware"
)

func NewMux(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.HandleHealth)

	// Chat
	mux.HandleFunc("POST /v1/chat", h.HandleChat)
	mux.HandleFunc("GET /v1/chat/ws", h.HandleChatWS)
	mux.HandleFunc("GET /v1/chat/{sessionId}/history", h.HandleChatHistory)
	mux.HandleFunc("DELETE /v1/chat/{sessionId}", h.HandleClearChat)

	// ESG report analysis
	mux.HandleFunc("POST /v1/reports/analyze", h.HandleAnalyzeReport)
	mux.HandleFunc("GET /v1/reports/{id}/download", h.HandleDownloadReport)

	// Assessment and estimator
	mux.HandleFunc("POST /v1/assessments", h.HandleAssessment)
	mux.HandleFunc("POST /v1/footprint", h.HandleFootprint)
	mux.HandleFunc("GET /v1/footprint/materials", h.HandleMaterials)

	return middleware.CORS(mux)
}
