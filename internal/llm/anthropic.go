package llm

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const (
	defaultAnthropicBaseURL = "https://api.anthropic.com"
	anthropicVersion        = "2023-06-01"
)

type AnthropicClient struct {
	http        *resty.Client
	model       string
	maxTokens   int
	temperature float32
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float32            `json:"temperature"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Model string `json:"model"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func NewAnthropic(apiKey, baseURL, model string, maxTokens int, temperature float32) *AnthropicClient {
	if baseURL == "" {
		baseURL = defaultAnthropicBaseURL
	}
	hc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("x-api-key", apiKey).
		SetHeader("anthropic-version", anthropicVersion).
		SetHeader("Content-Type", "application/json")
	return &AnthropicClient{
		http:        hc,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

func (c *AnthropicClient) Generate(ctx context.Context, systemPrompt string, messages []Message) (Response, error) {
	req := anthropicRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		System:      systemPrompt,
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, anthropicMessage{Role: m.Role, Content: m.Content})
	}

	var out anthropicResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&out).
		Post("/v1/messages")
	if err != nil {
		return Response{}, fmt.Errorf("anthropic request failed: %w", err)
	}
	if resp.IsError() {
		if out.Error != nil {
			return Response{}, fmt.Errorf("anthropic api error (%s): %s", out.Error.Type, out.Error.Message)
		}
		return Response{}, fmt.Errorf("anthropic api error: status %d", resp.StatusCode())
	}
	if len(out.Content) == 0 {
		return Response{}, fmt.Errorf("anthropic response contained no content blocks")
	}

	r := Response{
		Content: out.Content[0].Text,
		Model:   c.model,
	}
	r.PromptTokens = out.Usage.InputTokens
	r.CompletionTokens = out.Usage.OutputTokens
	r.TotalTokens = r.PromptTokens + r.CompletionTokens
	return r, nil
}
