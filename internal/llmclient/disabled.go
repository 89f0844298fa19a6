package llmclient

import "context"

// DisabledClient rejects every completion with ErrNotConfigured. It stands in
// for a provider whose credentials are missing so the rest of the gateway
// keeps serving.
type DisabledClient struct {
	name string
}

func NewDisabledClient(name string) *DisabledClient {
	if name == "" {
		name = "Disabled"
	}
	return &DisabledClient{name: name}
}

func (d *DisabledClient) Name() string { return d.name }
func (d *DisabledClient) Close() error { return nil }

func (d *DisabledClient) Complete(context.Context, []Message) (string, error) {
	return "", ErrNotConfigured
}
