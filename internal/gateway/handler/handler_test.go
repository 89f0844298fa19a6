package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"packwise/internal/extract"
	"packwise/internal/gateway/repository/report"
	"packwise/internal/gateway/repository/sessionstore"
	"packwise/internal/gateway/service/analysis"
	"packwise/internal/gateway/service/chat"
	"packwise/internal/llmclient"
)

type fakeExtractor struct {
	text string
	err  error
}

func (f fakeExtractor) Text(io.ReaderAt, int64) (string, error) {
	return f.text, f.err
}

type testEnv struct {
	handler *Handler
	fake    *llmclient.FakeClient
	reports report.Store
	mux     *http.ServeMux
}

func newTestEnv(t *testing.T, ex extract.Extractor) *testEnv {
	t.Helper()
	fake := llmclient.NewFakeClient("assistant reply")
	store := sessionstore.New(filepath.Join(t.TempDir(), "sessions.json"))
	reports := report.NewMemoryStore()
	chatSvc := chat.New(store, fake)
	analysisSvc := analysis.New(ex, fake, reports, zerolog.Nop())
	h := New(zerolog.Nop(), chatSvc, analysisSvc, reports)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.HandleHealth)
	mux.HandleFunc("POST /v1/chat", h.HandleChat)
	mux.HandleFunc("GET /v1/chat/ws", h.HandleChatWS)
	mux.HandleFunc("GET /v1/chat/{sessionId}/history", h.HandleChatHistory)
	mux.HandleFunc("DELETE /v1/chat/{sessionId}", h.HandleClearChat)
	mux.HandleFunc("POST /v1/reports/analyze", h.HandleAnalyzeReport)
	mux.HandleFunc("GET /v1/reports/{id}/download", h.HandleDownloadReport)
	mux.HandleFunc("POST /v1/assessments", h.HandleAssessment)
	mux.HandleFunc("POST /v1/footprint", h.HandleFootprint)
	mux.HandleFunc("GET /v1/footprint/materials", h.HandleMaterials)

	return &testEnv{handler: h, fake: fake, reports: reports, mux: mux}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestHandleHealth(t *testing.T) {
	env := newTestEnv(t, fakeExtractor{})
	rec := env.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHandleChat(t *testing.T) {
	env := newTestEnv(t, fakeExtractor{})

	rec := env.do(t, http.MethodPost, "/v1/chat", chatRequest{
		SessionID: "sess-1",
		Message:   "what material should I use?",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[chatResponse](t, rec)
	assert.Equal(t, "assistant reply", resp.Reply)
	require.Len(t, resp.History, 2)
	assert.Equal(t, "user", resp.History[0].Role)
	assert.Equal(t, "assistant", resp.History[1].Role)
}

func TestHandleChatValidation(t *testing.T) {
	env := newTestEnv(t, fakeExtractor{})

	rec := env.do(t, http.MethodPost, "/v1/chat", chatRequest{Message: "no session"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/v1/chat", chatRequest{SessionID: "sess-1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_argument", decodeBody[errorBody](t, rec).Code)
}

func TestHandleChatNotConfigured(t *testing.T) {
	env := newTestEnv(t, fakeExtractor{})
	env.fake.Fail(llmclient.ErrNotConfigured)

	rec := env.do(t, http.MethodPost, "/v1/chat", chatRequest{
		SessionID: "sess-1",
		Message:   "hello",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "not_configured", decodeBody[errorBody](t, rec).Code)
}

func TestHandleChatGatewayFailure(t *testing.T) {
	env := newTestEnv(t, fakeExtractor{})
	env.fake.Fail(&llmclient.RequestError{StatusCode: 429, Body: "rate limited"})

	rec := env.do(t, http.MethodPost, "/v1/chat", chatRequest{
		SessionID: "sess-1",
		Message:   "hello",
	})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "gateway_request_failed", decodeBody[errorBody](t, rec).Code)
}

func TestHandleChatHistoryAndClear(t *testing.T) {
	env := newTestEnv(t, fakeExtractor{})

	rec := env.do(t, http.MethodPost, "/v1/chat", chatRequest{SessionID: "sess-1", Message: "hello"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/v1/chat/sess-1/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	hist := decodeBody[map[string][]chatMessage](t, rec)
	assert.Len(t, hist["messages"], 2)

	rec = env.do(t, http.MethodDelete, "/v1/chat/sess-1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/v1/chat/sess-1/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	hist = decodeBody[map[string][]chatMessage](t, rec)
	assert.Empty(t, hist["messages"])
}

func multipartReport(t *testing.T, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("report", "report.pdf")
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestHandleAnalyzeReport(t *testing.T) {
	env := newTestEnv(t, fakeExtractor{text: "sustainability report body"})

	body, contentType := multipartReport(t, []byte("%PDF-1.4 fake"))
	req := httptest.NewRequest(http.MethodPost, "/v1/reports/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	env.mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[analyzeResponse](t, rec)
	assert.Equal(t, "assistant reply", resp.Analysis)
	assert.NotEmpty(t, resp.ReportID)

	// Stored analysis comes back as a download.
	rec = env.do(t, http.MethodGet, "/v1/reports/"+resp.ReportID+"/download", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "assistant reply", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "esg_analysis.txt")
}

func TestHandleAnalyzeReportMissingFile(t *testing.T) {
	env := newTestEnv(t, fakeExtractor{text: "unused"})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/v1/reports/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	env.mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyzeReportParseFailure(t *testing.T) {
	env := newTestEnv(t, fakeExtractor{err: &extract.ParseError{Err: errors.New("bad xref")}})

	body, contentType := multipartReport(t, []byte("not a pdf"))
	req := httptest.NewRequest(http.MethodPost, "/v1/reports/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	env.mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "extraction_failed", decodeBody[errorBody](t, rec).Code)
}

func TestHandleAnalyzeReportEmptyDocument(t *testing.T) {
	env := newTestEnv(t, fakeExtractor{text: "   "})

	body, contentType := multipartReport(t, []byte("%PDF-1.4 blank"))
	req := httptest.NewRequest(http.MethodPost, "/v1/reports/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	env.mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "empty_document", decodeBody[errorBody](t, rec).Code)
}

func TestHandleDownloadReportNotFound(t *testing.T) {
	env := newTestEnv(t, fakeExtractor{})

	rec := env.do(t, http.MethodGet, "/v1/reports/esg-0/download", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeBody[errorBody](t, rec).Code)
}

func TestHandleAssessment(t *testing.T) {
	env := newTestEnv(t, fakeExtractor{})

	rec := env.do(t, http.MethodPost, "/v1/assessments", assessmentRequest{
		Material:    "Glass",
		WeightGrams: 300,
		Recyclable:  true,
		Renewable:   false,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "assistant reply", decodeBody[assessmentResponse](t, rec).Assessment)

	calls := env.fake.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0][1].Content, "- Material: Glass")
}

func TestHandleAssessmentValidation(t *testing.T) {
	env := newTestEnv(t, fakeExtractor{})
	rec := env.do(t, http.MethodPost, "/v1/assessments", assessmentRequest{WeightGrams: 10})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleFootprint(t *testing.T) {
	env := newTestEnv(t, fakeExtractor{})

	rec := env.do(t, http.MethodPost, "/v1/footprint", map[string]any{
		"material":            "Plastic",
		"weightGrams":         500,
		"transportDistanceKm": 100,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[footprintResponse](t, rec)
	assert.InDelta(t, 1.25, resp.MaterialEmissionsKg, 1e-9)
	assert.InDelta(t, 5.0, resp.TransportEmissionsKg, 1e-9)
	assert.InDelta(t, 6.25, resp.TotalEmissionsKg, 1e-9)
}

func TestHandleFootprintUnknownMaterial(t *testing.T) {
	env := newTestEnv(t, fakeExtractor{})

	rec := env.do(t, http.MethodPost, "/v1/footprint", map[string]any{
		"material":            "Unknown-XYZ",
		"weightGrams":         1000,
		"transportDistanceKm": 10,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[footprintResponse](t, rec)
	assert.InDelta(t, 2.0, resp.MaterialEmissionsKg, 1e-9)
	assert.InDelta(t, 1.0, resp.TransportEmissionsKg, 1e-9)
	assert.InDelta(t, 3.0, resp.TotalEmissionsKg, 1e-9)
}

func TestHandleMaterials(t *testing.T) {
	env := newTestEnv(t, fakeExtractor{})

	rec := env.do(t, http.MethodGet, "/v1/footprint/materials", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[map[string][]string](t, rec)
	assert.Contains(t, resp["materials"], "Plastic")
	assert.Contains(t, resp["materials"], "Other")
	assert.Len(t, resp["materials"], 7)
}

func TestHandleFootprintValidation(t *testing.T) {
	env := newTestEnv(t, fakeExtractor{})
	rec := env.do(t, http.MethodPost, "/v1/footprint", map[string]any{"weightGrams": 100})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
