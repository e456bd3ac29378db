package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/saulo-duarte/ai-mastery-drill/internal/apperr"
	"github.com/saulo-duarte/ai-mastery-drill/internal/config"
)

// gatewayProvider talks to an OpenAI-compatible chat completions gateway.
// Such gateways report exhausted credits as 402 and throttling as 429.
type gatewayProvider struct {
	client *openai.Client
	model  string
}

func NewGatewayProvider(s config.AISettings) (Provider, error) {
	if s.GatewayAPIKey == "" {
		return nil, fmt.Errorf("%w: AI_GATEWAY_API_KEY is not configured", apperr.ErrNotConfigured)
	}
	if s.GatewayURL == "" {
		return nil, fmt.Errorf("%w: AI_GATEWAY_URL is not configured", apperr.ErrNotConfigured)
	}

	cfg := openai.DefaultConfig(s.GatewayAPIKey)
	cfg.BaseURL = s.GatewayURL
	if s.Timeout > 0 {
		cfg.HTTPClient = &http.Client{Timeout: s.Timeout}
	}

	return &gatewayProvider{client: openai.NewClientWithConfig(cfg), model: s.GatewayModel}, nil
}

func (p *gatewayProvider) Name() string { return "gateway" }

func (p *gatewayProvider) SendPrompt(ctx context.Context, prompt Prompt) (string, error) {
	log := config.WithContext(ctx).WithField("purpose", prompt.Purpose)

	var messages []openai.ChatCompletionMessage
	if prompt.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: prompt.System})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt.User})

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    messages,
		Temperature: prompt.Temperature,
		TopP:        prompt.TopP,
		MaxTokens:   int(prompt.MaxTokens),
	})
	if err != nil {
		log.WithError(err).Error("gateway request failed")
		return "", classifyGateway(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: reply has no choices", apperr.ErrMalformedResponse)
	}

	raw := resp.Choices[0].Message.Content
	log.Debugf("gateway raw reply:\n%s", raw)

	if raw == "" {
		return "", fmt.Errorf("%w: empty reply from model", apperr.ErrMalformedResponse)
	}
	return StripFences(raw), nil
}

func classifyGateway(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: gateway status %d: %s", apperr.FromStatus(apiErr.HTTPStatusCode), apiErr.HTTPStatusCode, apiErr.Message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("%w: gateway status %d: %v", apperr.FromStatus(reqErr.HTTPStatusCode), reqErr.HTTPStatusCode, reqErr.Err)
	}
	return fmt.Errorf("%w: %v", apperr.ErrProvider, err)
}
