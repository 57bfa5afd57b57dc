package claude

import "time"

const (
	// DefaultBaseURL is the default Anthropic API endpoint
	DefaultBaseURL = "https://api.anthropic.com/v1"

	// DefaultModel is the default completion model
	DefaultModel = "claude-2"

	// DefaultMaxTokensToSample caps the completion length
	DefaultMaxTokensToSample = 150

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// APIVersion is sent as the anthropic-version header
	APIVersion = "2023-06-01"

	completePath = "/complete"

	// HumanPrompt and AIPrompt delimit turns in the text completion prompt
	HumanPrompt = "\n\nHuman: "
	AIPrompt    = "\n\nAssistant:"
)
