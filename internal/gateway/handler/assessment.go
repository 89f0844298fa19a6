package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"packwise/internal/prompt"
)

type assessmentRequest struct {
	Material    string  `json:"material"`
	WeightGrams float64 `json:"weightGrams"`
	Recyclable  bool    `json:"recyclable"`
	Renewable   bool    `json:"renewable"`
}

type assessmentResponse struct {
	Assessment string `json:"assessment"`
}

// HandleAssessment runs the AI sustainability assessment for a packaging
// description.
func (h *Handler) HandleAssessment(w http.ResponseWriter, r *http.Request) {
	var req assessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid json body")
		return
	}
	if strings.TrimSpace(req.Material) == "" {
		h.badRequest(w, "material is required")
		return
	}

	out, err := h.analysis.Assess(r.Context(), prompt.Packaging{
		Material:    req.Material,
		WeightGrams: req.WeightGrams,
		Recyclable:  req.Recyclable,
		Renewable:   req.Renewable,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, assessmentResponse{Assessment: out})
}
