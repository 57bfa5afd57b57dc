package claude

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingAPIKey is returned by New when no API key is configured.
var ErrMissingAPIKey = errors.New("claude: APIKey is required")

// Config holds Claude client configuration
type Config struct {
	APIKey            string
	Model             string
	BaseURL           string
	MaxTokensToSample int
	HTTPClient        *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.MaxTokensToSample <= 0 {
		c.MaxTokensToSample = DefaultMaxTokensToSample
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// claudeImpl is the internal implementation of IClaude
type claudeImpl struct {
	apiKey            string
	baseURL           string
	model             string
	maxTokensToSample int
	httpClient        *http.Client
}

// Request is a text completion request. Zero fields take the client defaults.
type Request struct {
	Prompt            string `json:"prompt"`
	Model             string `json:"model"`
	MaxTokensToSample int    `json:"max_tokens_to_sample"`
}

// Response is the text completion response.
type Response struct {
	Completion string `json:"completion"`
	StopReason string `json:"stop_reason,omitempty"`
	Model      string `json:"model,omitempty"`
}

// ErrorResponse is the error body returned by the API.
type ErrorResponse struct {
	Type  string `json:"type"`
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// APIError is returned for any non-200 answer.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("claude: API error %d: %s", e.StatusCode, e.Message)
}
