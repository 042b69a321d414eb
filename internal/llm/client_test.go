package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transcriptions-ai/transcriber/internal/domain"
	"github.com/transcriptions-ai/transcriber/pkg/util"
)

type stubClient struct {
	name domain.Provider
}

func (s *stubClient) Name() domain.Provider { return s.name }

func (s *stubClient) Capabilities() Capabilities { return Capabilities{} }

func (s *stubClient) Complete(ctx context.Context, prompt string) (string, error) {
	return "", nil
}

func TestRegistryResolvesByName(t *testing.T) {
	openai := &stubClient{name: domain.ProviderOpenAI}
	anthropic := &stubClient{name: domain.ProviderAnthropic}
	registry := NewRegistry(openai, anthropic)

	got, err := registry.Client(domain.ProviderAnthropic)
	require.NoError(t, err)
	assert.Same(t, anthropic, got)
}

func TestRegistryUnknownProvider(t *testing.T) {
	registry := NewRegistry(&stubClient{name: domain.ProviderOpenAI})

	_, err := registry.Client(domain.Provider("GROK"))
	require.Error(t, err)
	assert.True(t, util.IsCode(err, "VALIDATION_FAILED"))
}

func TestRegistryUnconfiguredProvider(t *testing.T) {
	registry := NewRegistry(&stubClient{name: domain.ProviderOpenAI})

	_, err := registry.Client(domain.ProviderAnthropic)
	require.Error(t, err)
	assert.True(t, util.IsCode(err, "VALIDATION_FAILED"))
}
