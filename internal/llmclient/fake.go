package llmclient

import (
	"context"
	"sync"
)

// FakeClient returns a deterministic reply for offline use and tests. It
// records the conversations it receives.
type FakeClient struct {
	mu    sync.Mutex
	reply string
	err   error
	calls [][]Message
}

func NewFakeClient(reply string) *FakeClient {
	if reply == "" {
		reply = "fake assistant reply"
	}
	return &FakeClient{reply: reply}
}

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

// Fail makes every subsequent Complete call return err. Pass nil to restore
// normal replies.
func (f *FakeClient) Fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *FakeClient) Complete(_ context.Context, messages []Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := make([]Message, len(messages))
	copy(copied, messages)
	f.calls = append(f.calls, copied)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// Calls returns every conversation passed to Complete, in order.
func (f *FakeClient) Calls() [][]Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]Message, len(f.calls))
	copy(out, f.calls)
	return out
}
