package http

import (
	"net/http"

	"bench-report/internal/reporting"
	"bench-report/internal/shared/loggers"
	"bench-report/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(reportService reporting.ReportService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	summarizeReportHandler := NewSummarizeReportHandler(reportService)

	router.Post("/reports", errorHandlingAdapter(summarizeReportHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
