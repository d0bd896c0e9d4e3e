package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"bench-report/internal/aggregators"
	internalhttp "bench-report/internal/http"
	"bench-report/internal/models"
	"bench-report/internal/reporting"
	"bench-report/internal/shared/configs"
	"bench-report/internal/shared/filestorages"
	"bench-report/internal/shared/loggers"
	"bench-report/internal/shared/metrics"
	"bench-report/internal/sheets"
	"bench-report/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config        *configs.Config
	appLogger     loggers.Logger
	reportService reporting.ReportService
	server        *http.Server
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "bench-report").
		Logger()

	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	benchLogStore := stores.NewBenchLogStore(fileStorage)
	reportStore := stores.NewReportStore(fileStorage, config.Output.Overwrite)
	reportService := reporting.NewReportService(
		benchLogStore,
		reportStore,
		aggregators.NewAggregator(),
		sheets.NewReportRenderer(),
		sheets.NewWorkbook,
		reporting.Options{
			SheetName:    config.Report.SheetName,
			WriteSummary: config.Output.WriteSummary,
		},
	)

	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(reportService, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:        config,
		appLogger:     appLogger,
		reportService: reportService,
		server:        server,
	}, nil
}

// RunReport performs one report run for the configured table. When a metrics textfile
// path is configured the default registry is exported after the run, whatever its outcome.
func (app *App) RunReport(ctx context.Context) (*models.Report, error) {
	logger := app.appLogger.With().Str(loggers.FieldComponent, "report").Logger()
	ctx = logger.WithContext(ctx)

	report, err := app.reportService.Generate(ctx, app.config.Report.TableName)

	if path := app.config.Metrics.TextfilePath; path != "" {
		if exportErr := metrics.WriteTextfile(path); exportErr != nil {
			logger.Warn().Err(exportErr).Str("path", path).Msg("failed to export metrics textfile")
		}
	}

	if err != nil {
		return nil, err
	}
	return report, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting bench-report service on port %d (log_level=%s, file_storage_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}

// Handler exposes the HTTP router, for in-process use.
func (app *App) Handler() http.Handler {
	return app.server.Handler
}
