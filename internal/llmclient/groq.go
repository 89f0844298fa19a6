package llmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	// DefaultModel is the chat model used unless overridden by config.
	DefaultModel = "llama-3.3-70b-versatile"

	groqEndpoint = "https://api.groq.com/openai/v1/chat/completions"

	// requestTimeout bounds the single gateway call. There is no retry; on
	// timeout the call is abandoned and reported as a request failure.
	requestTimeout = 30 * time.Second

	completionTemperature = 0.7
	completionMaxTokens   = 800
)

// GroqClient calls the Groq Chat Completions API (OpenAI-compatible).
// See: https://console.groq.com/docs/api-reference
type GroqClient struct {
	http    *http.Client
	apiKey  string
	model   string
	baseURL string
}

// NewGroqClient creates a Groq client. If apiKey is empty, it falls back to
// the GROQ_API_KEY env var. A still-missing key is reported as
// ErrNotConfigured on every call rather than at construction, so the
// footprint path keeps working without credentials.
func NewGroqClient(apiKey, model string) *GroqClient {
	if apiKey == "" {
		apiKey = os.Getenv("GROQ_API_KEY")
	}
	if model == "" {
		model = DefaultModel
	}
	return &GroqClient{
		http:    &http.Client{Timeout: requestTimeout},
		apiKey:  apiKey,
		model:   model,
		baseURL: groqEndpoint,
	}
}

func (g *GroqClient) Name() string { return "Groq:" + g.model }
func (g *GroqClient) Close() error { return nil }

// Configured reports whether the client holds an API key.
func (g *GroqClient) Configured() bool {
	return strings.TrimSpace(g.apiKey) != ""
}

type groqChatReq struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type groqChatResp struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete posts the conversation and returns choices[0].message.content.
// Transport failures and non-2xx statuses become a RequestError carrying the
// status and body excerpt when available; a 2xx body without the reply field
// becomes a FormatError.
func (g *GroqClient) Complete(ctx context.Context, messages []Message) (string, error) {
	if !g.Configured() {
		return "", ErrNotConfigured
	}

	b, err := json.Marshal(groqChatReq{
		Model:       g.model,
		Messages:    messages,
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.http.Do(req)
	if err != nil {
		return "", &RequestError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		const max = 2048
		if len(body) > max {
			body = body[:max]
		}
		return "", &RequestError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out groqChatResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &FormatError{Reason: err.Error()}
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", &FormatError{Reason: "missing choices[0].message.content"}
	}
	return out.Choices[0].Message.Content, nil
}
