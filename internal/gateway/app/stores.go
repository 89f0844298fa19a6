package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"packwise/internal/gateway/config"
	"packwise/internal/gateway/repository/report"
	"packwise/internal/llmclient"
)

// newReportStore prefers the configured S3 bucket and falls back to memory
// when the bucket is unreachable or unconfigured. Losing the download copy
// of an analysis is recoverable; failing startup is not.
func newReportStore(cfg *config.Config, log zerolog.Logger) report.Store {
	if !cfg.Artifact.Enabled {
		return report.NewMemoryStore()
	}

	s3Store, err := report.NewS3Store(report.S3Config{
		Endpoint:  cfg.Artifact.Endpoint,
		Region:    cfg.Artifact.Region,
		AccessKey: cfg.Artifact.AccessKey,
		SecretKey: cfg.Artifact.SecretKey,
		Bucket:    cfg.Artifact.Bucket,
		UseSSL:    cfg.Artifact.UseSSL,
	})
	if err != nil {
		log.Warn().Err(err).Msg("report store: falling back to memory (s3 config incomplete)")
		return report.NewMemoryStore()
	}
	log.Info().
		Str("bucket", cfg.Artifact.Bucket).
		Str("endpoint", cfg.Artifact.Endpoint).
		Msg("report store: s3")
	return s3Store
}

func newLLMClient(cfg *config.Config, log zerolog.Logger) (llmclient.Client, error) {
	var client llmclient.Client
	switch strings.ToLower(strings.TrimSpace(cfg.LLM.Provider)) {
	case "", "groq":
		client = llmclient.NewGroqClient(cfg.LLM.APIKey, cfg.LLM.Model)
	case "gemini":
		gem, err := llmclient.NewGeminiClient(context.Background(), cfg.LLM.APIKey, cfg.LLM.Model)
		if err != nil {
			// Missing credentials must not take down the non-AI endpoints.
			log.Warn().Err(err).Msg("gemini client unavailable; AI features disabled until configured")
			client = llmclient.NewDisabledClient("Gemini:unconfigured")
		} else {
			client = gem
		}
	case "fake":
		client = llmclient.NewFakeClient("packwise fake reply")
	default:
		return nil, fmt.Errorf("unknown llm provider: %q", cfg.LLM.Provider)
	}

	log.Info().Str("provider", cfg.LLM.Provider).Str("client", client.Name()).Msg("llm client ready")
	return llmclient.Compose(client, llmclient.WithLogging(log)), nil
}
