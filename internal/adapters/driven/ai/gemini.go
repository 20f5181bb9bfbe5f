package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driven"
)

// Ensure GeminiGenerator implements Generator
var _ driven.Generator = (*GeminiGenerator)(nil)

// GeminiGenerator implements Generator using Google's Gemini
// generateContent API.
type GeminiGenerator struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiGenerator creates a new Gemini generator.
// baseURL overrides the API endpoint for testing.
func NewGeminiGenerator(apiKey, model, baseURL string) (driven.Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	if model == "" {
		model = "gemini-1.5-flash"
	}

	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	return &GeminiGenerator{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}, nil
}

// geminiRequest is the request body for the generateContent API
type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// geminiResponse is the response from the generateContent API
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// Generate sends the prompt to Gemini and returns the completion text
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, opts domain.GenerateOptions) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenConfig{
			Temperature:     opts.Temperature,
			MaxOutputTokens: opts.MaxTokens,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var genResp geminiResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if genResp.Error != nil {
		return "", fmt.Errorf("Gemini API error: %s (status: %s)",
			genResp.Error.Message, genResp.Error.Status)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API returned status %d", resp.StatusCode)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("Gemini API returned no candidates")
	}

	return genResp.Candidates[0].Content.Parts[0].Text, nil
}

// Model returns the model name being used
func (g *GeminiGenerator) Model() string {
	return g.model
}

// Ping verifies the completion service is available
func (g *GeminiGenerator) Ping(ctx context.Context) error {
	_, err := g.Generate(ctx, "ping", domain.GenerateOptions{Temperature: 0, MaxTokens: 1})
	return err
}

// Close releases resources held by the generator
func (g *GeminiGenerator) Close() error {
	g.client.CloseIdleConnections()
	return nil
}
