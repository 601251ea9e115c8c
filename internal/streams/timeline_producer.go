package streams

import (
	"context"

	"click-rate/internal/events"
	"click-rate/internal/models"
)

// TimelineProducer announces stored timelines to the analysis consumer.
//
// Events are partitioned by run ID. A run is therefore analyzed by a single worker, and
// re-announcing a run (for example after a retry) never races with its previous analysis.
//
//go:generate mockgen -source=timeline_producer.go -destination=./mocks/timeline_producer_mock.go -package=mocks
type TimelineProducer interface {
	Produce(ctx context.Context, timeline *models.AbsoluteTimeline) error
}

type timelineProducer struct {
	queue *PartitionedQueue[events.TimelineReconstructedEvent]
}

func NewTimelineProducer(queue *PartitionedQueue[events.TimelineReconstructedEvent]) TimelineProducer {
	return &timelineProducer{queue: queue}
}

func (producer *timelineProducer) Produce(ctx context.Context, timeline *models.AbsoluteTimeline) error {
	event := events.TimelineReconstructedEvent{
		RunID:           timeline.RunID,
		WindowCount:     timeline.WindowCount(),
		EventCount:      len(timeline.Timestamps),
		ReconstructedAt: timeline.ReconstructedAt,
	}
	if err := producer.queue.Publish(ctx, event.RunID, event); err != nil {
		return err
	}
	metricTimelinePublishedTotal.WithLabelValues(streamTimelineReconstructed).Inc()
	return nil
}
