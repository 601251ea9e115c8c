package analyzers

import (
	"context"
	"errors"

	"click-rate/internal/events"
	"click-rate/internal/models"
	"click-rate/internal/ratestats"
	"click-rate/internal/shared/loggers"
	"click-rate/internal/shared/svcerrors"
	"click-rate/internal/stores"
)

//go:generate mockgen -source=analysis_service.go -destination=./mocks/analysis_service_mock.go -package=mocks
type AnalysisService interface {
	// Analyze builds and stores the rate report of an announced timeline. Re-analyzing a run
	// overwrites its report.
	Analyze(ctx context.Context, event *events.TimelineReconstructedEvent) *svcerrors.ServiceError
	GetReport(ctx context.Context, runID string) (*models.RateReport, *svcerrors.ServiceError)
}

type analysisService struct {
	reportBuilder   ratestats.ReportBuilder
	timelineStore   stores.TimelineStore
	rateReportStore stores.RateReportStore
}

func NewAnalysisService(reportBuilder ratestats.ReportBuilder, timelineStore stores.TimelineStore, rateReportStore stores.RateReportStore) AnalysisService {
	return &analysisService{
		reportBuilder:   reportBuilder,
		timelineStore:   timelineStore,
		rateReportStore: rateReportStore,
	}
}

func (s *analysisService) Analyze(ctx context.Context, event *events.TimelineReconstructedEvent) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldRunID, event.RunID).Int(loggers.FieldEventCount, event.EventCount).Msg("started analyzing timeline")

	timeline, err := s.timelineStore.Get(ctx, event.RunID)
	if err != nil {
		if errors.Is(err, stores.ErrTimelineNotFound) {
			return errTimelineNotFound(event.RunID, err)
		}
		return errInternalTimelineStoreFailed(err)
	}

	report, err := s.reportBuilder.Build(timeline)
	if err != nil {
		if errors.Is(err, models.ErrInvalidConfiguration) {
			return errInvalidTimeline(err)
		}
		return errInternalReportBuildFailed(err)
	}

	if err := s.rateReportStore.Upsert(ctx, report); err != nil {
		return errInternalRateReportStoreFailed(err)
	}

	outcome := outcomeComplete
	if len(report.Undefined) > 0 {
		outcome = outcomePartial
		for _, name := range report.Undefined {
			metricUndefinedStatisticTotal.WithLabelValues(name).Inc()
		}
		logger.Info().Str(loggers.FieldRunID, report.RunID).Strs("undefined", report.Undefined).Msg("rate report has undefined statistics")
	}
	metricRateReportCreatedTotal.WithLabelValues(outcome).Inc()

	logger.Info().
		Str(loggers.FieldRunID, report.RunID).
		Int(loggers.FieldWindowCount, report.WindowCount).
		Int64(loggers.FieldEventCount, report.TotalEvents).
		Msg("rate report stored")
	return nil
}

func (s *analysisService) GetReport(ctx context.Context, runID string) (*models.RateReport, *svcerrors.ServiceError) {
	report, err := s.rateReportStore.Get(ctx, runID)
	if err != nil {
		if errors.Is(err, stores.ErrRateReportNotFound) {
			return nil, errReportNotFound(runID, err)
		}
		return nil, errInternalRateReportStoreFailed(err)
	}
	return report, nil
}
