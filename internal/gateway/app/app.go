// Package app wires configuration, stores, the LLM client, and the HTTP
// server into a runnable gateway.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"packwise/internal/extract"
	"packwise/internal/gateway/config"
	"packwise/internal/gateway/handler"
	"packwise/internal/gateway/repository/sessionstore"
	"packwise/internal/gateway/server"
	"packwise/internal/gateway/service/analysis"
	"packwise/internal/gateway/service/chat"
	"packwise/internal/llmclient"
)

type App struct {
	server   *server.Server
	sessions *sessionstore.Store
	llm      llmclient.Client
}

func New(log zerolog.Logger) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Dependencies
	sessions := sessionstore.NewFromEnv(cfg.Session.FilePath)
	reports := newReportStore(cfg, log)
	llm, err := newLLMClient(cfg, log)
	if err != nil {
		return nil, err
	}

	chatSvc := chat.New(sessions, llm)
	analysisSvc := analysis.New(&extract.PDF{}, llm, reports, log)

	// Routing & Server
	h := handler.New(log, chatSvc, analysisSvc, reports)
	mux := server.NewMux(h)
	srv := server.New(cfg.Port, mux, log)

	return &App{
		server:   srv,
		sessions: sessions,
		llm:      llm,
	}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	if cerr := a.llm.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if cerr := a.sessions.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
