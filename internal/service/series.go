package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	api "github.com/terrasense/slope-monitor/api/v1alpha1"
	"github.com/terrasense/slope-monitor/internal/datafile"
	"github.com/terrasense/slope-monitor/internal/store"
	"github.com/terrasense/slope-monitor/pkg/metrics"
)

// SeriesService validates and imports the station measurement files.
type SeriesService struct {
	store store.Store
}

func NewSeriesService(store store.Store) *SeriesService {
	return &SeriesService{store: store}
}

// Validate runs the file format checks without touching the database.
func (s *SeriesService) Validate(content []byte) *datafile.Result {
	return datafile.Validate(content)
}

// Import validates the uploaded file and, when valid, replaces the
// stored series for the dataset/type pair. The validation result is
// returned either way so the caller can report the file problems.
func (s *SeriesService) Import(ctx context.Context, datasetID uuid.UUID, seriesType api.SeriesType, content []byte) (*datafile.Result, *api.ImportResponse, error) {
	result := datafile.Validate(content)
	if !result.Valid {
		return result, nil, nil
	}

	identifier, rows, err := s.store.Series().Replace(ctx, datasetID, string(seriesType), result.Data)
	if err != nil {
		return result, nil, fmt.Errorf("failed to store series: %w", err)
	}

	metrics.IncreaseSeriesImportsTotalMetric(string(seriesType))
	zap.S().Named("series").Infow("series imported",
		"dataset_id", datasetID,
		"series_type", seriesType,
		"identifier", identifier,
		"rows", rows,
	)

	return result, &api.ImportResponse{
		Success:      true,
		Identifier:   identifier,
		RowsImported: rows,
	}, nil
}
