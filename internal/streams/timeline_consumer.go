package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"

	"click-rate/internal/analyzers"
	"click-rate/internal/events"
	"click-rate/internal/shared/loggers"
	"click-rate/internal/shared/metrics"
	"click-rate/internal/shared/svcerrors"
	"click-rate/internal/shared/ulid"
)

type TimelineConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type timelineConsumer struct {
	queue           *PartitionedQueue[events.TimelineReconstructedEvent]
	analysisService analyzers.AnalysisService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewTimelineConsumer(queue *PartitionedQueue[events.TimelineReconstructedEvent], analysisService analyzers.AnalysisService, logger loggers.Logger) TimelineConsumer {
	return &timelineConsumer{
		queue:           queue,
		analysisService: analysisService,
		stopCh:          make(chan struct{}),
		logger:          logger,
	}
}

// Start spawns 1 worker goroutine per partition.
func (consumer *timelineConsumer) Start(ctx context.Context) {
	for partitionIndex, ch := range consumer.queue.partitions {
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()
			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to stop (best called during app shutdown).
func (consumer *timelineConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *timelineConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.TimelineReconstructedEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(ctx, partitionIndex, event)
		}
	}
}

func (consumer *timelineConsumer) handle(ctx context.Context, partitionIndex int, event events.TimelineReconstructedEvent) {
	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, strconv.Itoa(partitionIndex)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Str(loggers.FieldRunID, event.RunID).
		Logger().WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			panicErr, ok := r.(error)
			if !ok {
				panicErr = fmt.Errorf("%v", r)
			}
			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricTimelineConsumedTotal.WithLabelValues(streamTimelineReconstructed, svcErr.Code).Inc()
		}
	}()

	if svcErr := consumer.analysisService.Analyze(ctx, &event); svcErr != nil {
		loggers.Ctx(ctx).Error().Err(svcErr).Str(loggers.FieldErrorCode, svcErr.Code).Msg("failed to analyze timeline")
		metricTimelineConsumedTotal.WithLabelValues(streamTimelineReconstructed, svcErr.Code).Inc()
		return
	}
	metricTimelineConsumedTotal.WithLabelValues(streamTimelineReconstructed, metrics.ValueNoError).Inc()
}
