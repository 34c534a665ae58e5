package llmclient

import (
	"context"
	"net/http"
	"time"

	"tech-pulse/cmd/internal/httpclient"
)

const DefaultMistralBaseURL = "https://api.mistral.ai/v1"

// MistralClient 는 Mistral /chat/completions API 를 호출한다.
type MistralClient struct {
	base   *httpclient.BaseClient
	apiKey string
	model  string
}

func NewMistral(baseURL, apiKey, model string, timeout time.Duration) *MistralClient {
	if baseURL == "" {
		baseURL = DefaultMistralBaseURL
	}
	if model == "" {
		model = "mistral-tiny"
	}
	httpClient := httpclient.New(httpclient.Config{Timeout: timeout})
	return &MistralClient{
		base:   httpclient.NewBaseClientWithClient(httpClient, baseURL, "mistral"),
		apiKey: apiKey,
		model:  model,
	}
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *MistralClient) Name() string { return "mistral" }

func (c *MistralClient) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoCredential
	}

	req, err := c.base.NewJSONRequest(ctx, http.MethodPost, "/chat/completions", chatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	})
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	var out chatCompletionResponse
	if err := c.base.DoJSON(req, &out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", nil
	}
	return out.Choices[0].Message.Content, nil
}
