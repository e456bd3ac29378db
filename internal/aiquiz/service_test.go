package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/saulo-duarte/ai-mastery-drill/internal/apperr"
	"github.com/saulo-duarte/ai-mastery-drill/internal/llm"
)

type fakeProvider struct {
	reply   string
	err     error
	prompts []llm.Prompt
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) SendPrompt(ctx context.Context, p llm.Prompt) (string, error) {
	f.prompts = append(f.prompts, p)
	return f.reply, f.err
}

func questionsJSON(n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{"question":"Q%d?","options":["a","b","c","d"],"correctAnswer":%d,"explanation":"e"}`, i+1, i%4)
	}
	return "[" + strings.Join(items, ",") + "]"
}

func validRequest() QuestionRequest {
	return QuestionRequest{
		Subject:       "Physics",
		Subtopic:      "Kinematics",
		Difficulty:    "Intermediate",
		Confidence:    "Got the Basics",
		QuestionCount: 5,
		BatchNumber:   1,
		QuestionType:  "conceptual",
	}
}

func TestGenerateQuestions(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		fake := &fakeProvider{reply: questionsJSON(5)}
		svc := NewService(fake)

		qs, err := svc.GenerateQuestions(context.Background(), validRequest())
		if err != nil {
			t.Fatalf("GenerateQuestions failed: %v", err)
		}
		if len(qs) != 5 {
			t.Fatalf("expected 5 questions, got %d", len(qs))
		}
		if len(fake.prompts) != 1 {
			t.Fatalf("expected one provider call, got %d", len(fake.prompts))
		}
		p := fake.prompts[0]
		if p.Temperature != 0.8 || p.MaxTokens != 8192 || p.Purpose != "questions" {
			t.Errorf("unexpected generation parameters: %+v", p)
		}
	})

	t.Run("TruncatesExtraQuestions", func(t *testing.T) {
		svc := NewService(&fakeProvider{reply: questionsJSON(7)})

		qs, err := svc.GenerateQuestions(context.Background(), validRequest())
		if err != nil {
			t.Fatalf("GenerateQuestions failed: %v", err)
		}
		if len(qs) != 5 {
			t.Errorf("expected 5 questions after truncation, got %d", len(qs))
		}
	})

	t.Run("ShortBatchIsMalformed", func(t *testing.T) {
		svc := NewService(&fakeProvider{reply: questionsJSON(3)})

		_, err := svc.GenerateQuestions(context.Background(), validRequest())
		if !errors.Is(err, apperr.ErrMalformedResponse) {
			t.Errorf("expected ErrMalformedResponse, got %v", err)
		}
	})

	t.Run("BadOptionCount", func(t *testing.T) {
		reply := `[{"question":"Q?","options":["a","b"],"correctAnswer":0}]`
		svc := NewService(&fakeProvider{reply: reply})

		req := validRequest()
		req.QuestionCount = 1
		if _, err := svc.GenerateQuestions(context.Background(), req); !errors.Is(err, apperr.ErrMalformedResponse) {
			t.Errorf("expected ErrMalformedResponse, got %v", err)
		}
	})

	t.Run("ProviderErrorPassesThrough", func(t *testing.T) {
		svc := NewService(&fakeProvider{err: fmt.Errorf("gemini: %w", apperr.ErrRateLimited)})

		if _, err := svc.GenerateQuestions(context.Background(), validRequest()); !errors.Is(err, apperr.ErrRateLimited) {
			t.Errorf("expected ErrRateLimited, got %v", err)
		}
	})

	t.Run("InvalidRequestSkipsProvider", func(t *testing.T) {
		fake := &fakeProvider{reply: questionsJSON(5)}
		svc := NewService(fake)

		req := validRequest()
		req.Subject = ""
		if _, err := svc.GenerateQuestions(context.Background(), req); !errors.Is(err, apperr.ErrInvalidRequest) {
			t.Errorf("expected ErrInvalidRequest, got %v", err)
		}
		if len(fake.prompts) != 0 {
			t.Errorf("provider must not be called for invalid requests")
		}
	})
}

func TestQuestionRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *QuestionRequest)
		wantErr bool
	}{
		{"valid", func(r *QuestionRequest) {}, false},
		{"missing subtopic", func(r *QuestionRequest) { r.Subtopic = "  " }, true},
		{"zero count", func(r *QuestionRequest) { r.QuestionCount = 0 }, true},
		{"count above cap", func(r *QuestionRequest) { r.QuestionCount = 21 }, true},
		{"zero batch", func(r *QuestionRequest) { r.BatchNumber = 0 }, true},
		{"more correct than answered", func(r *QuestionRequest) {
			r.PerformanceData = &PerformanceData{CorrectCount: 6, TotalAnswered: 5}
		}, true},
		{"consistent performance", func(r *QuestionRequest) {
			r.BatchNumber = 2
			r.PerformanceData = &PerformanceData{CorrectCount: 4, TotalAnswered: 5}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRequest()
			tt.mutate(&r)
			if err := r.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
