package handler

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"packwise/internal/footprint"
)

type footprintResponse struct {
	Material             string  `json:"material"`
	MaterialEmissionsKg  float64 `json:"materialEmissionsKg"`
	TransportEmissionsKg float64 `json:"transportEmissionsKg"`
	TotalEmissionsKg     float64 `json:"totalEmissionsKg"`
}

// HandleFootprint runs the deterministic carbon-footprint estimate. It
// involves no AI gateway call and works without an API key.
func (h *Handler) HandleFootprint(w http.ResponseWriter, r *http.Request) {
	var spec footprint.Spec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		h.badRequest(w, "invalid json body")
		return
	}
	if strings.TrimSpace(spec.Material) == "" {
		h.badRequest(w, "material is required")
		return
	}

	b := footprint.Estimate(spec)
	h.writeJSON(w, http.StatusOK, footprintResponse{
		Material:             spec.Material,
		MaterialEmissionsKg:  b.MaterialEmissionsKg,
		TransportEmissionsKg: b.TransportEmissionsKg,
		TotalEmissionsKg:     b.TotalEmissionsKg,
	})
}

// HandleMaterials lists the materials with dedicated emission factors, for
// populating selection forms.
func (h *Handler) HandleMaterials(w http.ResponseWriter, _ *http.Request) {
	materials := footprint.Materials()
	sort.Strings(materials)
	h.writeJSON(w, http.StatusOK, map[string][]string{"materials": materials})
}
