package llmclient

import (
	"context"

	"github.com/rs/zerolog"
)

// WithLogging logs request sizes and failures around gateway calls.
func WithLogging(logger zerolog.Logger) Middleware {
	return func(next Client) Client {
		return &logging{next: next, log: logger}
	}
}

type logging struct {
	next Client
	log  zerolog.Logger
}

func (l *logging) Name() string { return l.next.Name() }
func (l *logging) Close() error { return l.next.Close() }

func (l *logging) Complete(ctx context.Context, messages []Message) (string, error) {
	bytes := 0
	for _, m := range messages {
		bytes += len(m.Content)
	}
	l.log.Debug().
		Str("client", l.next.Name()).
		Int("messages", len(messages)).
		Int("bytes", bytes).
		Msg("chat completion request")

	reply, err := l.next.Complete(ctx, messages)
	if err != nil {
		l.log.Error().
			Str("client", l.next.Name()).
			Err(err).
			Msg("chat completion failed")
	}
	return reply, err
}
