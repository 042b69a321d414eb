// Package llm wraps the supported completion providers behind a single
// synchronous interface and owns prompt construction and response
// normalization for the ticket pipeline.
package llm

import (
	"context"
	"fmt"

	"github.com/transcriptions-ai/transcriber/internal/domain"
	"github.com/transcriptions-ai/transcriber/pkg/util"
)

// Capabilities describes provider-specific completion behavior.
type Capabilities struct {
	// StructuredJSON is true when the provider can constrain its output to a
	// JSON object natively.
	StructuredJSON bool
	// ExampleShape is appended to generation prompts for providers without a
	// native JSON mode, so the model mirrors the expected response format.
	ExampleShape string
}

// Client issues a single blocking completion request. Exactly one request
// per call; no retry, no streaming, no multi-turn state.
type Client interface {
	Name() domain.Provider
	Capabilities() Capabilities
	Complete(ctx context.Context, prompt string) (string, error)
}

// Registry resolves a provider client from its event selector.
type Registry struct {
	clients map[domain.Provider]Client
}

// NewRegistry indexes the given clients by provider name.
func NewRegistry(clients ...Client) *Registry {
	indexed := make(map[domain.Provider]Client, len(clients))
	for _, c := range clients {
		indexed[c.Name()] = c
	}
	return &Registry{clients: indexed}
}

// Client returns the client registered for the given provider.
func (r *Registry) Client(name domain.Provider) (Client, error) {
	if err := name.Validate(); err != nil {
		return nil, util.NewValidationError(err.Error(), map[string]any{"client": string(name)})
	}
	c, ok := r.clients[name]
	if !ok {
		return nil, util.NewValidationError(fmt.Sprintf("client %s is not configured", name), nil)
	}
	return c, nil
}
