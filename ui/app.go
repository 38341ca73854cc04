// Package ui is the presentation boundary: a JSON HTTP adapter over the
// analysis pipeline and the standard-distribution calculators. It accepts
// the two raw strings (function, range) plus the interactive follow-up
// inputs (k, r, model parameters) and returns the engine's structured
// bundles; all rendering happens client-side.
package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"distlab/adapters/symbolic"
	"distlab/internal"
	"distlab/internal/analysis"
	"distlab/internal/config"
)

// App represents the HTTP application
type App struct {
	router   *chi.Mux
	pipeline *analysis.Pipeline
	log      *internal.Logger
}

// NewApp creates the application with its routes wired. The symbolic engine
// is attached here; swapping it for nil turns every analysis numeric-only
// without touching the pipeline.
func NewApp(cfg *config.Config) *App {
	app := &App{
		router:   chi.NewRouter(),
		pipeline: analysis.New(cfg.Engine, symbolic.New(), internal.DefaultLogger),
		log:      internal.DefaultLogger,
	}
	app.routes()
	return app
}

func (a *App) routes() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.RealIP)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)

	a.router.Route("/api", func(r chi.Router) {
		r.Post("/analyze", a.handleAnalyze)
		r.Post("/moment", a.handleMoment)
		r.Post("/probability", a.handleProbability)
		r.Post("/curve", a.handleCurve)

		r.Route("/models", func(r chi.Router) {
			r.Get("/binomial", a.handleBinomial)
			r.Get("/binomial/chart", a.handleBinomialChart)
			r.Get("/normal", a.handleNormal)
			r.Get("/normal/chart", a.handleNormalChart)
			r.Get("/poisson", a.handlePoisson)
			r.Get("/poisson/chart", a.handlePoissonChart)
			r.Get("/exponential", a.handleExponential)
			r.Get("/exponential/chart", a.handleExponentialChart)
		})
	})
}

// Router exposes the handler for serving and for tests.
func (a *App) Router() http.Handler {
	return a.router
}
