package http

import (
	"net/http"

	"click-rate/internal/analyzers"
	"click-rate/internal/ingestors"
	"click-rate/internal/planners"
	"click-rate/internal/shared/loggers"
	"click-rate/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(
	ingestionService ingestors.RunIngestionService,
	analysisService analyzers.AnalysisService,
	windowPlanner planners.WindowPlanner,
	defaultWindowLength int64,
	httpLogger loggers.Logger,
) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	ingestRunHandler := NewIngestRunHandler(ingestionService)
	timelineHandler := NewTimelineHandler(ingestionService)
	reportHandler := NewReportHandler(analysisService, ingestionService)
	planHandler := NewPlanHandler(windowPlanner, defaultWindowLength)

	// Routes
	router.Route("/runs", func(r chi.Router) {
		r.Post("/", errorHandlingAdapter(ingestRunHandler))
		r.Get("/{"+paramRunID+"}/timeline", errorHandlingAdapter(timelineHandler))
		r.Get("/{"+paramRunID+"}/report", errorHandlingAdapter(reportHandler))
	})
	router.Get("/plans", errorHandlingAdapter(planHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
