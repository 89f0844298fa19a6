// Package analysis runs the two AI-backed one-shot operations: ESG report
// analysis of an uploaded document and the sustainability assessment of a
// packaging form.
package analysis

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"packwise/internal/extract"
	"packwise/internal/gateway/repository/report"
	"packwise/internal/llmclient"
	"packwise/internal/prompt"
)

type Service struct {
	extractor extract.Extractor
	llm       llmclient.Client
	reports   report.Store
	log       zerolog.Logger
}

func New(extractor extract.Extractor, llm llmclient.Client, reports report.Store, log zerolog.Logger) *Service {
	return &Service{
		extractor: extractor,
		llm:       llm,
		reports:   reports,
		log:       log,
	}
}

// Result is a finished ESG analysis. ReportID keys the stored text for
// later download.
type Result struct {
	ReportID string
	Analysis string
}

// AnalyzeReport extracts the document's text, runs the ESG analysis prompt
// against the gateway, and stores the result. A document that parses but
// holds only whitespace is rejected with extract.ErrEmptyDocument before
// any gateway call.
func (s *Service) AnalyzeReport(ctx context.Context, doc io.ReaderAt, size int64) (Result, error) {
	text, err := s.extractor.Text(doc, size)
	if err != nil {
		return Result{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Result{}, extract.ErrEmptyDocument
	}

	analysis, err := s.llm.Complete(ctx, []llmclient.Message{
		{Role: llmclient.RoleSystem, Content: prompt.SystemPrompt},
		{Role: llmclient.RoleUser, Content: prompt.ESGSummary(text)},
	})
	if err != nil {
		return Result{}, err
	}

	id := newReportID()
	if s.reports != nil {
		if err := s.reports.Put(ctx, id, []byte(analysis)); err != nil {
			// The analysis itself succeeded; losing the download copy is
			// not worth failing the request over.
			s.log.Warn().Err(err).Str("report_id", id).Msg("failed to store analysis report")
		}
	}
	return Result{ReportID: id, Analysis: analysis}, nil
}

// Assess runs the sustainability-assessment prompt for a packaging form.
func (s *Service) Assess(ctx context.Context, p prompt.Packaging) (string, error) {
	return s.llm.Complete(ctx, []llmclient.Message{
		{Role: llmclient.RoleSystem, Content: prompt.SystemPrompt},
		{Role: llmclient.RoleUser, Content: prompt.SustainabilityAssessment(p)},
	})
}

func newReportID() string {
	return fmt.Sprintf("esg-%d", time.Now().UnixNano())
}
