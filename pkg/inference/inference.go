package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func newClientImpl(cfg Config) *clientImpl {
	return &clientImpl{
		token:      cfg.Token,
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// ChatCompletion sends the system and user messages in a single attempt.
// Sampling always uses DefaultTemperature and DefaultTopP.
func (c *clientImpl) ChatCompletion(ctx context.Context, system, user string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: roleSystem, Content: system},
			{Role: roleUser, Content: user},
		},
		Temperature: DefaultTemperature,
		TopP:        DefaultTopP,
	})
	if err != nil {
		return "", fmt.Errorf("inference: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("inference: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("inference: API call failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("inference: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Message != "" {
			return "", newUpstreamError(resp.StatusCode, "%s", errResp.Error.Message)
		}
		return "", newUpstreamError(resp.StatusCode, "upstream returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", newUpstreamError(resp.StatusCode, "unexpected response payload: %v", err)
	}
	if len(result.Choices) == 0 || result.Choices[0].Message == nil {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Message != "" {
			return "", newUpstreamError(resp.StatusCode, "%s", errResp.Error.Message)
		}
		return "", newUpstreamError(resp.StatusCode, "unexpected response payload: no choices")
	}

	return result.Choices[0].Message.Content, nil
}

// Model returns the model being used
func (c *clientImpl) Model() string {
	return c.model
}
