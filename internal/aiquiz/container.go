package aiquiz

import "github.com/saulo-duarte/ai-mastery-drill/internal/llm"

// AIQuizContainer holds the question generation feature built around one provider.
type AIQuizContainer struct {
	Provider llm.Provider
	Service  Service
	Handler  *Handler
}

func NewAIQuizContainer(provider llm.Provider) *AIQuizContainer {
	svc := NewService(provider)
	return &AIQuizContainer{
		Provider: provider,
		Service:  svc,
		Handler:  NewHandler(svc),
	}
}
