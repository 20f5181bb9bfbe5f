package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driven"
)

// Ensure GroqGenerator implements Generator
var _ driven.Generator = (*GroqGenerator)(nil)

// defaultGroqModels is the ordered fallback chain. The first model that
// completes wins; later entries cover deprecations and rate limits on the
// primary.
var defaultGroqModels = []string{
	"llama-3.3-70b-versatile",
	"llama-3.1-8b-instant",
	"mixtral-8x7b-32768",
}

// GroqGenerator implements Generator using Groq's OpenAI-compatible
// chat completions API.
type GroqGenerator struct {
	apiKey  string
	models  []string
	baseURL string
	client  *http.Client
}

// NewGroqGenerator creates a new Groq generator.
// model, when non-empty, is tried before the default fallback chain.
// baseURL overrides the API endpoint for testing.
func NewGroqGenerator(apiKey, model, baseURL string) (driven.Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Groq API key is required")
	}

	models := defaultGroqModels
	if model != "" {
		models = append([]string{model}, defaultGroqModels...)
	}

	if baseURL == "" {
		baseURL = "https://api.groq.com/openai/v1"
	}

	return &GroqGenerator{
		apiKey:  apiKey,
		models:  models,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}, nil
}

// chatRequest is the request body for the chat completions API
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the response from the chat completions API
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

// Generate tries each model in order and returns the first completion.
// Fails only when every model is exhausted, surfacing the last error.
func (g *GroqGenerator) Generate(ctx context.Context, prompt string, opts domain.GenerateOptions) (string, error) {
	var lastErr error
	for _, model := range g.models {
		text, err := g.complete(ctx, model, prompt, opts)
		if err == nil {
			return text, nil
		}
		lastErr = err
		slog.Warn("groq model failed, trying next", "model", model, "error", err)
	}
	return "", fmt.Errorf("all Groq models failed: %w", lastErr)
}

// Model returns the primary model name
func (g *GroqGenerator) Model() string {
	return g.models[0]
}

// Ping verifies the completion service is available
func (g *GroqGenerator) Ping(ctx context.Context) error {
	_, err := g.Generate(ctx, "ping", domain.GenerateOptions{Temperature: 0, MaxTokens: 1})
	return err
}

// Close releases resources held by the generator
func (g *GroqGenerator) Close() error {
	g.client.CloseIdleConnections()
	return nil
}

// complete makes a single chat completion request against one model
func (g *GroqGenerator) complete(ctx context.Context, model, prompt string, opts domain.GenerateOptions) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("Groq API error: %s (type: %s, code: %s)",
			chatResp.Error.Message, chatResp.Error.Type, chatResp.Error.Code)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Groq API returned status %d", resp.StatusCode)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("Groq API returned no choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}
