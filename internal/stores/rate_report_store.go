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

var ErrRateReportNotFound = errors.New("rate report not found")

//go:generate mockgen -source=rate_report_store.go -destination=./mocks/rate_report_store_mock.go -package=mocks
type RateReportStore interface {
	Upsert(ctx context.Context, report *models.RateReport) error
	Get(ctx context.Context, runID string) (*models.RateReport, error)
}

type rateReportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewRateReportStore(fileStorage filestorages.FileStorage) RateReportStore {
	return &rateReportStore{fileStorage: fileStorage, dir: "rate-reports"}
}

func (s *rateReportStore) Upsert(ctx context.Context, report *models.RateReport) error {
	jsonData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal rate report: %w", err)
	}
	_, err = s.fileStorage.Put(ctx, s.getKey(report.RunID), bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put rate report: %w", err)
	}
	return nil
}

func (s *rateReportStore) Get(ctx context.Context, runID string) (*models.RateReport, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(runID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrRateReportNotFound
		}
		return nil, fmt.Errorf("failed to get rate report: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate report: %w", err)
	}
	var report models.RateReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rate report: %w", err)
	}
	return &report, nil
}

func (s *rateReportStore) getKey(runID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, runID)
}
