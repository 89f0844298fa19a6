package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"packwise/internal/gateway/repository/report"
)

// maxReportBytes caps how much of an uploaded report is read into memory.
const maxReportBytes = 20 << 20

type analyzeResponse struct {
	ReportID string `json:"reportId"`
	Analysis string `json:"analysis"`
}

// HandleAnalyzeReport accepts a multipart upload under the "report" field,
// extracts its text, and returns the ESG analysis along with a report ID
// for downloading the result later.
func (h *Handler) HandleAnalyzeReport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxReportBytes); err != nil {
		h.badRequest(w, "invalid multipart form")
		return
	}
	file, _, err := r.FormFile("report")
	if err != nil {
		h.badRequest(w, "report file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxReportBytes))
	if err != nil {
		h.badRequest(w, "failed to read report file")
		return
	}

	res, err := h.analysis.AnalyzeReport(r.Context(), bytes.NewReader(data), int64(len(data)))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, analyzeResponse{
		ReportID: res.ReportID,
		Analysis: res.Analysis,
	})
}

// HandleDownloadReport returns a stored ESG analysis as a text attachment.
func (h *Handler) HandleDownloadReport(w http.ResponseWriter, r *http.Request) {
	reportID := strings.TrimSpace(r.PathValue("id"))
	if reportID == "" {
		h.badRequest(w, "report id is required")
		return
	}

	data, err := h.reports.Get(r.Context(), reportID)
	if err != nil {
		if errors.Is(err, report.ErrNotFound) {
			h.writeJSON(w, http.StatusNotFound, errorBody{
				Code:    "not_found",
				Message: "report not found: " + reportID,
			})
			return
		}
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="esg_analysis.txt"`)
	_, _ = w.Write(data)
}
