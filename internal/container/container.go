package container

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/ai-mastery-drill/internal/aiquiz"
	"github.com/saulo-duarte/ai-mastery-drill/internal/analysis"
	"github.com/saulo-duarte/ai-mastery-drill/internal/config"
	"github.com/saulo-duarte/ai-mastery-drill/internal/llm"
	"github.com/saulo-duarte/ai-mastery-drill/internal/monitoring"
	"github.com/saulo-duarte/ai-mastery-drill/internal/router"
)

type Container struct {
	Settings          *config.Settings
	Provider          llm.Provider
	AIQuizContainer   *aiquiz.AIQuizContainer
	AnalysisContainer *analysis.AnalysisContainer
}

// New wires both endpoints around one provider. It never fails on a missing
// credential; that surfaces per request as a configuration error.
func New(ctx context.Context, settings *config.Settings) *Container {
	config.InitLogger(settings.Log)
	monitoring.Init()

	provider := llm.New(ctx, settings.AI)

	return &Container{
		Settings:          settings,
		Provider:          provider,
		AIQuizContainer:   aiquiz.NewAIQuizContainer(provider),
		AnalysisContainer: analysis.NewAnalysisContainer(provider),
	}
}

func (c *Container) Router() *chi.Mux {
	return router.New(router.RouterConfig{
		AIQuizHandler:   c.AIQuizContainer.Handler,
		AnalysisHandler: c.AnalysisContainer.Handler,
		CORSMaxAge:      c.Settings.CORS.MaxAge,
	})
}
