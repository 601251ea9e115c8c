package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"click-rate/internal/analyzers"
	"click-rate/internal/decoders"
	"click-rate/internal/events"
	internalhttp "click-rate/internal/http"
	"click-rate/internal/ingestors"
	"click-rate/internal/planners"
	"click-rate/internal/ratestats"
	"click-rate/internal/shared/configs"
	"click-rate/internal/shared/filestorages"
	"click-rate/internal/shared/loggers"
	"click-rate/internal/stores"
	"click-rate/internal/streams"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	timelineQueue    *streams.PartitionedQueue[events.TimelineReconstructedEvent]
	timelineConsumer streams.TimelineConsumer
	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "click-rate").
		Logger()

	// Initialize blob store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	timelineStore := stores.NewTimelineStore(fileStorage)
	rateReportStore := stores.NewRateReportStore(fileStorage)

	// Initialize stream queue
	timelineQueue := streams.NewPartitionedQueue[events.TimelineReconstructedEvent]()

	// Initialize analysis service
	reportBuilder := ratestats.NewReportBuilder()
	analysisService := analyzers.NewAnalysisService(reportBuilder, timelineStore, rateReportStore)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	timelineConsumer := streams.NewTimelineConsumer(timelineQueue, analysisService, consumerLogger)

	// Initialize ingestion service
	decoder := decoders.NewTagStreamDecoder(decoders.WithParallelism(config.Decoder.Parallelism))
	timelineProducer := streams.NewTimelineProducer(timelineQueue)
	runDefaults := ingestors.NewRunDefaults(config.Acquisition)
	ingestionService := ingestors.NewRunIngestionService(decoder, timelineStore, timelineProducer, runDefaults)

	windowPlanner := planners.NewWindowPlanner(config.Acquisition.MaxTagsPerWindow)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, analysisService, windowPlanner, runDefaults.WindowLength, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:           config,
		appLogger:        appLogger,
		server:           server,
		timelineQueue:    timelineQueue,
		timelineConsumer: timelineConsumer,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting click-rate service on port %d (log_level=%s, file_storage_root_dir=%s, window_length_ns=%d, decoder_parallelism=%d)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.Acquisition.WindowLengthNs,
			app.config.Decoder.Parallelism)

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.timelineConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server so no new timelines are produced
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Cancel background consumers; runs still buffered are re-analyzable from their stored timelines
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background consumers cancelled")
	}

	// 3) Wait for background consumers to finish, then release the queue
	app.timelineConsumer.Stop()
	app.timelineQueue.Close()
	app.appLogger.Info().Msg("Background consumers stopped")

	return nil
}
