// Package gemini implements port.AnswerProvider against the Google
// Generative Language generateContent endpoint.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"docqa/internal/config"
	"docqa/internal/domain"
)

// NoAnswerFallback is returned when the provider response matches neither
// the candidate-text shape nor the prompt-feedback shape.
const NoAnswerFallback = "The model returned a response, but no answer could be extracted from it."

// Client calls the Gemini generateContent API over raw HTTP.
type Client struct {
	model    string
	endpoint string
	client   *http.Client
}

// NewClient creates a Gemini client from configuration.
func NewClient(cfg *config.GeminiConfig) *Client {
	return newClient(cfg, "")
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint (for testing).
func NewClientWithEndpoint(cfg *config.GeminiConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.GeminiConfig, endpoint string) *Client {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", baseURL, model)
	}
	return &Client{
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// GenerateAnswer sends the prompt and returns the provider's answer text.
// The apiKey authenticates the call as a query parameter; it is never logged
// and not retained after the call returns. Exactly one attempt is made.
func (c *Client) GenerateAnswer(ctx context.Context, prompt, apiKey string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: marshaling request: %v", domain.ErrRequestSetup, err)
	}

	endpoint := c.endpoint + "?key=" + url.QueryEscape(apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("%w: creating request: %v", domain.ErrRequestSetup, err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.Printf("gemini.GenerateAnswer: calling model %s", c.model)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrProviderUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", domain.ErrProviderUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &domain.ProviderHTTPError{
			StatusCode: resp.StatusCode,
			Message:    providerMessage(respBody),
		}
	}

	return interpret(respBody), nil
}

// geminiResponse models the generateContent response shape.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	PromptFeedback json.RawMessage `json:"promptFeedback"`
}

// interpret extracts the answer text from the response body. A response with
// prompt feedback but no candidate text is a soft failure: the feedback is
// serialized into the answer so the user sees why generation was withheld.
func interpret(body []byte) string {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err == nil {
		if len(resp.Candidates) > 0 && len(resp.Candidates[0].Content.Parts) > 0 {
			if text := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text); text != "" {
				return text
			}
		}
		if len(resp.PromptFeedback) > 0 && string(resp.PromptFeedback) != "null" {
			return fmt.Sprintf("No answer was generated. Provider feedback: %s", resp.PromptFeedback)
		}
	}
	return NoAnswerFallback
}

// providerMessage pulls the error.message field from an error response body,
// falling back to the raw body.
func providerMessage(body []byte) string {
	var errResp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}
	return truncate(string(body), 500)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
