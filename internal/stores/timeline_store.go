package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"click-rate/internal/models"
	"click-rate/internal/shared/filestorages"
)

var (
	ErrTimelineAlreadyExist = errors.New("timeline already exists")
	ErrTimelineNotFound     = errors.New("timeline not found")
)

// TimelineStore keeps reconstructed timelines keyed by run ID. Put is a "create-if-not-exists"
// operation, similar to S3's conditional PUT, so a run is ingested at most once.
//
// Example scenario:
//   - Request A and Request B both submit run "run-123" simultaneously
//   - Request A's Put succeeds → timeline stored
//   - Request B's Put fails → ErrTimelineAlreadyExist returned (duplicate run detected)
//
//go:generate mockgen -source=timeline_store.go -destination=./mocks/timeline_store_mock.go -package=mocks
type TimelineStore interface {
	Put(ctx context.Context, timeline *models.AbsoluteTimeline) error
	Get(ctx context.Context, runID string) (*models.AbsoluteTimeline, error)
	// Delete releases a run ID whose timeline could not be handed to analysis.
	Delete(ctx context.Context, runID string) error
}

type timelineStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewTimelineStore(fileStorage filestorages.FileStorage) TimelineStore {
	return &timelineStore{fileStorage: fileStorage, dir: "timelines"}
}

func (s *timelineStore) Put(ctx context.Context, timeline *models.AbsoluteTimeline) error {
	jsonData, err := json.Marshal(timeline)
	if err != nil {
		return fmt.Errorf("failed to marshal timeline: %w", err)
	}

	_, err = s.fileStorage.Put(ctx, s.getKey(timeline.RunID), bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrTimelineAlreadyExist
		}
		return fmt.Errorf("failed to put timeline: %w", err)
	}
	return nil
}

func (s *timelineStore) Get(ctx context.Context, runID string) (*models.AbsoluteTimeline, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(runID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrTimelineNotFound
		}
		return nil, fmt.Errorf("failed to get timeline: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read timeline: %w", err)
	}
	var timeline models.AbsoluteTimeline
	if err := json.Unmarshal(data, &timeline); err != nil {
		return nil, fmt.Errorf("failed to unmarshal timeline: %w", err)
	}
	return &timeline, nil
}

func (s *timelineStore) Delete(ctx context.Context, runID string) error {
	err := s.fileStorage.Delete(ctx, s.getKey(runID))
	if err != nil && !errors.Is(err, filestorages.ErrFileNotFound) {
		return fmt.Errorf("failed to delete timeline: %w", err)
	}
	return nil
}

func (s *timelineStore) getKey(runID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, runID)
}
