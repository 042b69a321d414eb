package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformValidate(t *testing.T) {
	for _, platform := range []Platform{PlatformJira, PlatformGitHub, PlatformTrello, PlatformAsana} {
		assert.NoError(t, platform.Validate())
	}
	assert.Error(t, Platform("LINEAR").Validate())
	assert.Error(t, Platform("").Validate())
	assert.Error(t, Platform("jira").Validate(), "platform values are case sensitive")
}

func TestPlatformDisplayName(t *testing.T) {
	assert.Equal(t, "Jira", PlatformJira.DisplayName())
	assert.Equal(t, "GitHub", PlatformGitHub.DisplayName())
}

func TestProviderValidate(t *testing.T) {
	assert.NoError(t, ProviderOpenAI.Validate())
	assert.NoError(t, ProviderAnthropic.Validate())
	assert.Error(t, Provider("GROK").Validate())
}
