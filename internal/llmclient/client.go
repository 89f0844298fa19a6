// Package llmclient provides chat-completion clients for the hosted model
// providers, plus the middleware used to compose cross-cutting concerns
// around them.
package llmclient

import "context"

// Conversation roles. Order of messages is significant: it defines the
// conversation history as seen by the model.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged entry of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client sends a full conversation to a chat-completion endpoint and returns
// the generated reply text. Implementations do not retry; a failed call is
// terminal for the triggering action only.
type Client interface {
	Name() string
	Complete(ctx context.Context, messages []Message) (string, error)
	Close() error
}

// Middleware wraps a Client with a cross-cutting concern.
type Middleware func(Client) Client

// Compose applies middlewares right-to-left so the first listed wraps
// outermost.
func Compose(c Client, mws ...Middleware) Client {
	for i := len(mws) - 1; i >= 0; i-- {
		c = mws[i](c)
	}
	return c
}
