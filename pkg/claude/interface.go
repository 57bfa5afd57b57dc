package claude

import "context"

// IClaude defines the interface for the Claude text completion client.
// Implementations are safe for concurrent use.
type IClaude interface {
	// Complete sends a single completion request. No streaming, no retry.
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Claude client with the given configuration
func New(cfg Config) (IClaude, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClaudeImpl(cfg), nil
}
