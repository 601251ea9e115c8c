package ingestors

import (
	"context"
	"errors"
	"io"
	"strings"

	"click-rate/internal/decoders"
	"click-rate/internal/models"
	"click-rate/internal/shared/loggers"
	"click-rate/internal/shared/metrics"
	"click-rate/internal/shared/svcerrors"
	"click-rate/internal/shared/ulid"
	"click-rate/internal/shared/validators"
	"click-rate/internal/stores"
	"click-rate/internal/streams"
)

// IngestResult represents the result of a run ingestion.
type IngestResult struct {
	RunID            string
	WindowCount      int
	EventCount       int
	OutOfWindowCount int
}

//go:generate mockgen -source=run_ingestion_service.go -destination=./mocks/run_ingestion_service_mock.go -package=mocks
type RunIngestionService interface {
	// IngestRun decodes a run payload into an absolute timeline, stores it once per run ID and
	// queues it for rate analysis. A run whose counts do not delimit its timestamps is rejected
	// as a whole and nothing is stored.
	IngestRun(ctx context.Context, idempotencyKey string, format string, r io.Reader) (*IngestResult, error)
	GetTimeline(ctx context.Context, runID string) (*models.AbsoluteTimeline, *svcerrors.ServiceError)
}

type runIngestionService struct {
	decoder          decoders.TagStreamDecoder
	timelineStore    stores.TimelineStore
	timelineProducer streams.TimelineProducer
	defaults         RunDefaults
	validate         *validators.Validate
}

func NewRunIngestionService(decoder decoders.TagStreamDecoder, timelineStore stores.TimelineStore, timelineProducer streams.TimelineProducer, defaults RunDefaults) RunIngestionService {
	return &runIngestionService{
		decoder:          decoder,
		timelineStore:    timelineStore,
		timelineProducer: timelineProducer,
		defaults:         defaults,
		validate:         validators.New(),
	}
}

func (s *runIngestionService) IngestRun(ctx context.Context, idempotencyKey string, format string, r io.Reader) (*IngestResult, error) {
	result, svcErr := s.ingestRun(ctx, idempotencyKey, format, r)
	if svcErr != nil {
		metricRunIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}
	metricRunIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return result, nil
}

func (s *runIngestionService) ingestRun(ctx context.Context, idempotencyKey string, format string, r io.Reader) (*IngestResult, *svcerrors.ServiceError) {
	runID, svcErr := s.resolveRunID(idempotencyKey)
	if svcErr != nil {
		return nil, svcErr
	}
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldRunID, runID).Logger()
	logger.Debug().Str("format", format).Msg("started ingesting run")

	req, err := DecodeRunRequest(s.validate, format, r)
	if err != nil {
		return nil, asServiceError(err)
	}
	record, err := req.Record(runID, s.defaults)
	if err != nil {
		return nil, asServiceError(err)
	}
	if declared, ok := record.TotalEvents(); ok {
		logger.Debug().
			Int64("declared_event_count", declared).
			Int("timestamp_count", len(record.Timestamps)).
			Msg("run request decoded")
	}

	timeline, err := s.decoder.DecodeRecord(record)
	if err != nil {
		logger.Warn().Err(err).Msg("run rejected by decoder")
		return nil, asServiceError(err)
	}

	result := &IngestResult{
		RunID:            runID,
		WindowCount:      timeline.WindowCount(),
		EventCount:       len(timeline.Timestamps),
		OutOfWindowCount: decoders.CountOutOfWindow(record.Timestamps, record.WindowLength, record.Unit),
	}
	s.inspectRun(&logger, record, result)

	if err := s.timelineStore.Put(ctx, timeline); err != nil {
		if errors.Is(err, stores.ErrTimelineAlreadyExist) {
			return nil, errRunAlreadyIngested(runID, err)
		}
		return nil, errInternalTimelineStoreFailed(err)
	}

	if err := s.timelineProducer.Produce(ctx, timeline); err != nil {
		// Release the run ID so the client can retry with the same idempotency key.
		if delErr := s.timelineStore.Delete(context.WithoutCancel(ctx), runID); delErr != nil {
			logger.Error().Err(delErr).Msg("failed to release timeline after publish failure")
		}
		return nil, errInternalTimelinePublisherFailed(err)
	}

	metricEventsReconstructedTotal.Add(float64(result.EventCount))
	logger.Info().
		Int(loggers.FieldWindowCount, result.WindowCount).
		Int(loggers.FieldEventCount, result.EventCount).
		Msg("run ingested")
	return result, nil
}

func (s *runIngestionService) GetTimeline(ctx context.Context, runID string) (*models.AbsoluteTimeline, *svcerrors.ServiceError) {
	timeline, err := s.timelineStore.Get(ctx, runID)
	if err != nil {
		if errors.Is(err, stores.ErrTimelineNotFound) {
			return nil, errTimelineNotFound(runID, err)
		}
		return nil, errInternalTimelineStoreFailed(err)
	}
	return timeline, nil
}

func (s *runIngestionService) resolveRunID(idempotencyKey string) (string, *svcerrors.ServiceError) {
	runID := strings.TrimSpace(idempotencyKey)
	if runID == "" {
		return ulid.NewULID(), nil
	}
	if err := s.validate.Var(runID, validators.TagRunID); err != nil {
		return "", errValidationFailed("idempotency key must be 1-64 letters, digits, '-' or '_'", err)
	}
	return runID, nil
}

// inspectRun logs suspicious but accepted input.
func (s *runIngestionService) inspectRun(logger *loggers.Logger, record *models.RawTagRecord, result *IngestResult) {
	if result.OutOfWindowCount > 0 {
		metricOutOfWindowTagsTotal.Add(float64(result.OutOfWindowCount))
		logger.Warn().
			Int("out_of_window_count", result.OutOfWindowCount).
			Str("unit_mode", string(record.Unit.Mode)).
			Msg("in-window timestamps exceed the window length, check the unit mode")
	}
	if s.defaults.MaxTagsPerWindow <= 0 {
		return
	}
	for k, c := range record.Counts {
		if c > int64(s.defaults.MaxTagsPerWindow) {
			logger.Warn().
				Int("window", k).
				Int64("count", c).
				Int("max_tags_per_window", s.defaults.MaxTagsPerWindow).
				Msg("window count exceeds the acquisition buffer size")
			return
		}
	}
}

func asServiceError(err error) *svcerrors.ServiceError {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr
	}
	return errInternalDecoderFailed(err)
}
