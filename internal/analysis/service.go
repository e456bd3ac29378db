package analysis

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/ai-mastery-drill/internal/config"
	"github.com/saulo-duarte/ai-mastery-drill/internal/llm"
	"github.com/saulo-duarte/ai-mastery-drill/internal/quiz"
)

type Service interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (*quiz.AnalysisResult, error)
}

type service struct {
	provider llm.Provider
}

func NewService(provider llm.Provider) Service {
	return &service{provider: provider}
}

func (s *service) Analyze(ctx context.Context, req AnalyzeRequest) (*quiz.AnalysisResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	missed := quiz.Missed(req.Questions, req.UserAnswers)
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"subject": req.Subject,
		"score":   req.Score,
		"wrong":   len(missed),
	})
	log.Info("Analyzing drill results")

	raw, err := s.provider.SendPrompt(ctx, llm.Prompt{
		Purpose:     "analysis",
		User:        BuildPrompt(req, missed),
		Temperature: 0.7,
		TopK:        40,
		TopP:        0.95,
		MaxTokens:   4096,
	})
	if err != nil {
		return nil, err
	}

	analysis, err := quiz.ParseAnalysis([]byte(raw))
	if err != nil {
		log.WithError(err).Errorf("Failed to parse analysis. Clean content:\n%s", raw)
		return nil, err
	}

	log.Info("Generated analysis")
	return analysis, nil
}
