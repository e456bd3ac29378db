package analysis

import "github.com/saulo-duarte/ai-mastery-drill/internal/llm"

// AnalysisContainer holds the result analysis feature built around one provider.
type AnalysisContainer struct {
	Provider llm.Provider
	Service  Service
	Handler  *Handler
}

func NewAnalysisContainer(provider llm.Provider) *AnalysisContainer {
	svc := NewService(provider)
	return &AnalysisContainer{
		Provider: provider,
		Service:  svc,
		Handler:  NewHandler(svc),
	}
}
