package domain

import "fmt"

// Platform enumerates the project-tracking systems the generated ticket
// wording should resemble.
type Platform string

const (
	PlatformJira   Platform = "JIRA"
	PlatformGitHub Platform = "GITHUB"
	PlatformTrello Platform = "TRELLO"
	PlatformAsana  Platform = "ASANA"
)

// DisplayName returns the platform name as it appears in prompts.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformJira:
		return "Jira"
	case PlatformGitHub:
		return "GitHub"
	case PlatformTrello:
		return "Trello"
	case PlatformAsana:
		return "Asana"
	}
	return string(p)
}

// Validate rejects platforms outside the enumerated set.
func (p Platform) Validate() error {
	switch p {
	case PlatformJira, PlatformGitHub, PlatformTrello, PlatformAsana:
		return nil
	}
	return fmt.Errorf("unknown platform %q", string(p))
}

// Provider enumerates supported LLM backends.
type Provider string

const (
	ProviderOpenAI    Provider = "OPENAI"
	ProviderAnthropic Provider = "ANTHROPIC"
)

// Validate rejects providers outside the enumerated set.
func (p Provider) Validate() error {
	switch p {
	case ProviderOpenAI, ProviderAnthropic:
		return nil
	}
	return fmt.Errorf("unknown client %q", string(p))
}
