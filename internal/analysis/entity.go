package analysis

import (
	"fmt"
	"strings"

	"github.com/saulo-duarte/ai-mastery-drill/internal/apperr"
	"github.com/saulo-duarte/ai-mastery-drill/internal/quiz"
)

type AnalyzeRequest struct {
	Subject     string          `json:"subject"`
	Subtopic    string          `json:"subtopic"`
	Questions   []quiz.Question `json:"questions"`
	UserAnswers []quiz.Answer   `json:"userAnswers"`
	Score       int             `json:"score"`
}

func (r AnalyzeRequest) Validate() error {
	if strings.TrimSpace(r.Subject) == "" || strings.TrimSpace(r.Subtopic) == "" {
		return fmt.Errorf("%w: subject and subtopic are required", apperr.ErrInvalidRequest)
	}
	if len(r.Questions) == 0 {
		return fmt.Errorf("%w: at least one question is required", apperr.ErrInvalidRequest)
	}
	if len(r.UserAnswers) > len(r.Questions) {
		return fmt.Errorf("%w: %d answers for %d questions", apperr.ErrInvalidRequest, len(r.UserAnswers), len(r.Questions))
	}
	if r.Score < 0 || r.Score > 100 {
		return fmt.Errorf("%w: score must be between 0 and 100", apperr.ErrInvalidRequest)
	}
	for i, q := range r.Questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("%w: question %d: %v", apperr.ErrInvalidRequest, i+1, err)
		}
	}
	for i, a := range r.UserAnswers {
		if a.Set && (a.Index < 0 || a.Index >= len(r.Questions[i].Options)) {
			return fmt.Errorf("%w: answer %d is out of range", apperr.ErrInvalidRequest, i+1)
		}
	}
	return nil
}

type AnalyzeResponse struct {
	Analysis *quiz.AnalysisResult `json:"analysis"`
}
