package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/genai"

	"github.com/saulo-duarte/ai-mastery-drill/internal/apperr"
	"github.com/saulo-duarte/ai-mastery-drill/internal/config"
)

func TestGeminiProviderSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"role":  "model",
						"parts": []map[string]string{{"text": "```json\n{\"ok\":true}\n```"}},
					},
				},
			},
		})
	}))
	defer srv.Close()

	p, err := NewGeminiProvider(context.Background(), config.AISettings{
		GeminiAPIKey:  "test-key",
		GeminiModel:   "gemini-2.0-flash",
		GeminiBaseURL: srv.URL,
	})
	if err != nil {
		t.Fatalf("NewGeminiProvider failed: %v", err)
	}

	text, err := p.SendPrompt(context.Background(), Prompt{User: "hello", Temperature: 0.7, MaxTokens: 4096})
	if err != nil {
		t.Fatalf("SendPrompt failed: %v", err)
	}
	if text != `{"ok":true}` {
		t.Errorf("unexpected reply %q", text)
	}
}

func TestClassifyGemini(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"rate limited", genai.APIError{Code: 429, Message: "slow down"}, apperr.ErrRateLimited},
		{"payment required", genai.APIError{Code: 402, Message: "pay"}, apperr.ErrQuotaExhausted},
		{"server error", genai.APIError{Code: 500, Message: "oops"}, apperr.ErrProvider},
		{"transport", errors.New("connection refused"), apperr.ErrProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyGemini(tt.err); !errors.Is(got, tt.want) {
				t.Errorf("classifyGemini() = %v, want %v", got, tt.want)
			}
		})
	}
}
