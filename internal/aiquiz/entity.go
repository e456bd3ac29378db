package aiquiz

import (
	"fmt"
	"strings"

	"github.com/saulo-duarte/ai-mastery-drill/internal/apperr"
	"github.com/saulo-duarte/ai-mastery-drill/internal/quiz"
)

type PerformanceData struct {
	CorrectCount  int `json:"correctCount"`
	TotalAnswered int `json:"totalAnswered"`
}

// Ratio is the share of correct answers so far, in [0, 1].
func (p PerformanceData) Ratio() float64 {
	if p.TotalAnswered <= 0 {
		return 0
	}
	return float64(p.CorrectCount) / float64(p.TotalAnswered)
}

type QuestionRequest struct {
	Subject         string           `json:"subject"`
	Subtopic        string           `json:"subtopic"`
	Difficulty      string           `json:"difficulty"`
	Confidence      string           `json:"confidence"`
	QuestionCount   int              `json:"questionCount"`
	BatchNumber     int              `json:"batchNumber"`
	QuestionType    string           `json:"questionType,omitempty"`
	PerformanceData *PerformanceData `json:"performanceData,omitempty"`
}

func (r QuestionRequest) Validate() error {
	if strings.TrimSpace(r.Subject) == "" {
		return fmt.Errorf("%w: subject is required", apperr.ErrInvalidRequest)
	}
	if strings.TrimSpace(r.Subtopic) == "" {
		return fmt.Errorf("%w: subtopic is required", apperr.ErrInvalidRequest)
	}
	if r.QuestionCount < 1 || r.QuestionCount > quiz.MaxQuestionCount {
		return fmt.Errorf("%w: questionCount must be between 1 and %d", apperr.ErrInvalidRequest, quiz.MaxQuestionCount)
	}
	if r.BatchNumber < 1 {
		return fmt.Errorf("%w: batchNumber must be at least 1", apperr.ErrInvalidRequest)
	}
	if p := r.PerformanceData; p != nil {
		if p.CorrectCount < 0 || p.TotalAnswered < 0 || p.CorrectCount > p.TotalAnswered {
			return fmt.Errorf("%w: performanceData counts are inconsistent", apperr.ErrInvalidRequest)
		}
	}
	return nil
}

type QuestionResponse struct {
	Questions []quiz.Question `json:"questions"`
}
