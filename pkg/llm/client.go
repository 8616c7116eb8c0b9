// Package llm defines the LanguageModel capability consumed by the planner
// and its OpenRouter-backed implementation.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// CompletionRequest is one model invocation. The prompt framing (JSON
// schema, chain-of-thought) is the caller's responsibility; the capability
// is opaque.
type CompletionRequest struct {
	// Model is the model identifier in provider/model form.
	Model string
	// MaxTokens caps the completion length.
	MaxTokens int
	// System is the optional system prompt.
	System string
	// Prompt is the user prompt.
	Prompt string
}

// TokenUsage reports token consumption for one call.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// CompletionResponse is the model's answer.
type CompletionResponse struct {
	Content string
	Model   string
	Usage   TokenUsage
}

// LanguageModel is the external LLM capability.
type LanguageModel interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}

const defaultBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterClient implements LanguageModel over the OpenAI-compatible
// chat-completions endpoint.
type OpenRouterClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenRouterClient creates a client for the OpenRouter API. baseURL may
// be empty to use the public endpoint.
func NewOpenRouterClient(apiKey, baseURL string) *OpenRouterClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &OpenRouterClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage TokenUsage `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Code    any    `json:"code"`
	} `json:"error,omitempty"`
}

// Complete sends one chat-completion request and returns the first choice.
func (c *OpenRouterClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("OpenRouter API key not configured")
	}

	messages := make([]chatMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})

	body := chatCompletionRequest{
		Model:     normalizeModel(req.Model),
		Messages:  messages,
		MaxTokens: req.MaxTokens,
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenRouter API error: status %d: %s", resp.StatusCode, truncate(string(respBody), 500))
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("OpenRouter API error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("no response choices from OpenRouter")
	}

	return &CompletionResponse{
		Content: parsed.Choices[0].Message.Content,
		Model:   parsed.Model,
		Usage:   parsed.Usage,
	}, nil
}

// normalizeModel strips the "openrouter/" routing prefix carried by the
// configuration format; the API expects bare provider/model identifiers.
func normalizeModel(model string) string {
	return strings.TrimPrefix(model, "openrouter/")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
