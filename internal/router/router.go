package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/ai-mastery-drill/docs"
	"github.com/saulo-duarte/ai-mastery-drill/internal/aiquiz"
	"github.com/saulo-duarte/ai-mastery-drill/internal/analysis"
	"github.com/saulo-duarte/ai-mastery-drill/internal/config"
	"github.com/saulo-duarte/ai-mastery-drill/internal/middlewares"
	"github.com/saulo-duarte/ai-mastery-drill/internal/monitoring"
)

type RouterConfig struct {
	AIQuizHandler   *aiquiz.Handler
	AnalysisHandler *analysis.Handler
	CORSMaxAge      int
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.CORSMaxAge))
	r.Use(monitoring.MetricsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/metrics", monitoring.Handler().ServeHTTP)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/functions", func(r chi.Router) {
		r.Mount("/generate-questions", aiquiz.Routes(cfg.AIQuizHandler))
		r.Mount("/analyze-results", analysis.Routes(cfg.AnalysisHandler))
	})
	return r
}
