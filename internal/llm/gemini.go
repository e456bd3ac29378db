package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/saulo-duarte/ai-mastery-drill/internal/apperr"
	"github.com/saulo-duarte/ai-mastery-drill/internal/config"
)

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, s config.AISettings) (Provider, error) {
	if s.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: GOOGLE_GEMINI_API_KEY is not configured", apperr.ErrNotConfigured)
	}

	cc := &genai.ClientConfig{
		APIKey:  s.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if s.GeminiBaseURL != "" {
		cc.HTTPOptions.BaseURL = s.GeminiBaseURL
	}
	if s.Timeout > 0 {
		cc.HTTPClient = &http.Client{Timeout: s.Timeout}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", apperr.ErrProvider, err)
	}
	return &geminiProvider{client: client, model: s.GeminiModel}, nil
}

func (p *geminiProvider) Name() string { return "gemini" }

func (p *geminiProvider) SendPrompt(ctx context.Context, prompt Prompt) (string, error) {
	log := config.WithContext(ctx).WithField("purpose", prompt.Purpose)

	gc := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(prompt.Temperature),
		MaxOutputTokens:  prompt.MaxTokens,
		ResponseMIMEType: "application/json",
	}
	if prompt.TopK > 0 {
		gc.TopK = genai.Ptr(prompt.TopK)
	}
	if prompt.TopP > 0 {
		gc.TopP = genai.Ptr(prompt.TopP)
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt.Text()), gc)
	if err != nil {
		log.WithError(err).Error("Gemini request failed")
		return "", classifyGemini(err)
	}

	raw := result.Text()
	log.Debugf("Gemini raw reply:\n%s", raw)

	if raw == "" {
		return "", fmt.Errorf("%w: empty reply from model", apperr.ErrMalformedResponse)
	}
	return StripFences(raw), nil
}

func classifyGemini(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: gemini status %d: %s", apperr.FromStatus(apiErr.Code), apiErr.Code, apiErr.Message)
	}
	return fmt.Errorf("%w: %v", apperr.ErrProvider, err)
}
