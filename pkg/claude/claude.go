package claude

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newClaudeImpl creates a new Claude implementation
func newClaudeImpl(cfg Config) *claudeImpl {
	return &claudeImpl{
		apiKey:            cfg.APIKey,
		baseURL:           cfg.BaseURL,
		model:             cfg.Model,
		maxTokensToSample: cfg.MaxTokensToSample,
		httpClient:        cfg.HTTPClient,
	}
}

// Complete sends a completion request to the Claude API
func (c *claudeImpl) Complete(ctx context.Context, req *Request) (*Response, error) {
	payload := *req
	if payload.Model == "" {
		payload.Model = c.model
	}
	if payload.MaxTokensToSample <= 0 {
		payload.MaxTokensToSample = c.maxTokensToSample
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("claude: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("claude: failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-API-Key", c.apiKey)
	httpReq.Header.Set("anthropic-version", APIVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("claude: API call failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("claude: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Message != "" {
			apiErr.Message = errResp.Error.Message
		}
		return nil, apiErr
	}

	var result Response
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("claude: failed to decode response: %w", err)
	}

	return &result, nil
}

// Model returns the model being used
func (c *claudeImpl) Model() string {
	return c.model
}
