package aiquiz

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/ai-mastery-drill/internal/apperr"
	"github.com/saulo-duarte/ai-mastery-drill/internal/config"
	"github.com/saulo-duarte/ai-mastery-drill/internal/llm"
	"github.com/saulo-duarte/ai-mastery-drill/internal/quiz"
)

type Service interface {
	GenerateQuestions(ctx context.Context, req QuestionRequest) ([]quiz.Question, error)
}

type service struct {
	provider llm.Provider
}

func NewService(provider llm.Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateQuestions(ctx context.Context, req QuestionRequest) ([]quiz.Question, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"subject":  req.Subject,
		"subtopic": req.Subtopic,
		"batch":    req.BatchNumber,
	})

	if err := req.Validate(); err != nil {
		return nil, err
	}

	raw, err := s.provider.SendPrompt(ctx, llm.Prompt{
		Purpose:     "questions",
		System:      systemPrompt,
		User:        BuildUserPrompt(req),
		Temperature: 0.8,
		TopK:        40,
		TopP:        0.95,
		MaxTokens:   8192,
	})
	if err != nil {
		return nil, err
	}

	questions, err := quiz.ParseQuestions([]byte(raw))
	if err != nil {
		log.WithError(err).Errorf("Failed to parse questions. Clean content:\n%s", raw)
		return nil, err
	}

	switch {
	case len(questions) < req.QuestionCount:
		return nil, fmt.Errorf("%w: requested %d questions, got %d", apperr.ErrMalformedResponse, req.QuestionCount, len(questions))
	case len(questions) > req.QuestionCount:
		log.Warnf("Provider returned %d questions, keeping %d", len(questions), req.QuestionCount)
		questions = questions[:req.QuestionCount]
	}

	log.Infof("Generated %d questions", len(questions))
	return questions, nil
}
