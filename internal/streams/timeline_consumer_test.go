package streams

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"click-rate/internal/analyzers/mocks"
	"click-rate/internal/events"
	"click-rate/internal/shared/loggers"
	"click-rate/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogger(t *testing.T) loggers.Logger {
	logger, err := loggers.NewWithWriter("debug", io.Discard)
	require.NoError(t, err)
	return logger
}

func TestTimelineConsumer_AnalyzesEveryEvent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	analysisService := mocks.NewMockAnalysisService(ctrl)
	queue := newPartitionedQueue[events.TimelineReconstructedEvent](4, 16)
	consumer := NewTimelineConsumer(queue, analysisService, newTestLogger(t))

	var mu sync.Mutex
	var seen []string
	var wg sync.WaitGroup
	wg.Add(3)
	analysisService.EXPECT().Analyze(gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(func(ctx context.Context, event *events.TimelineReconstructedEvent) *svcerrors.ServiceError {
			defer wg.Done()
			mu.Lock()
			seen = append(seen, event.RunID)
			mu.Unlock()
			assert.NotNil(t, loggers.Ctx(ctx), "workers attach a logger to the context")
			if event.RunID == "run-2" {
				return svcerrors.NewInternalErrorUndefined(errors.New("boom"))
			}
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	consumer.Start(ctx)

	for _, runID := range []string{"run-1", "run-2", "run-3"} {
		require.NoError(t, queue.Publish(ctx, runID, events.TimelineReconstructedEvent{RunID: runID}))
	}

	waitOrFail(t, &wg)
	consumer.Stop()

	assert.ElementsMatch(t, []string{"run-1", "run-2", "run-3"}, seen)
}

func TestTimelineConsumer_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	analysisService := mocks.NewMockAnalysisService(ctrl)
	queue := newPartitionedQueue[events.TimelineReconstructedEvent](1, 4)
	consumer := NewTimelineConsumer(queue, analysisService, newTestLogger(t))

	var wg sync.WaitGroup
	wg.Add(2)
	gomock.InOrder(
		analysisService.EXPECT().Analyze(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, *events.TimelineReconstructedEvent) *svcerrors.ServiceError {
				defer wg.Done()
				panic("corrupted timeline")
			}),
		analysisService.EXPECT().Analyze(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, *events.TimelineReconstructedEvent) *svcerrors.ServiceError {
				defer wg.Done()
				return nil
			}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	consumer.Start(ctx)

	require.NoError(t, queue.Publish(ctx, "run-1", events.TimelineReconstructedEvent{RunID: "run-1"}))
	require.NoError(t, queue.Publish(ctx, "run-2", events.TimelineReconstructedEvent{RunID: "run-2"}))

	waitOrFail(t, &wg)
	consumer.Stop()
}

func TestTimelineConsumer_StopsWhenQueueClosed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	analysisService := mocks.NewMockAnalysisService(ctrl)
	queue := newPartitionedQueue[events.TimelineReconstructedEvent](2, 1)
	consumer := NewTimelineConsumer(queue, analysisService, newTestLogger(t))

	consumer.Start(context.Background())
	queue.Close()

	done := make(chan struct{})
	go func() {
		consumer.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop")
	}
}

func waitOrFail(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for events to be analyzed")
	}
}
