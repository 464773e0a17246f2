package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	api "github.com/terrasense/slope-monitor/api/v1alpha1"
	"github.com/terrasense/slope-monitor/internal/store/model"
)

type Series interface {
	Replace(ctx context.Context, datasetID uuid.UUID, seriesType string, points []api.DataPoint) (string, int, error)
	Get(ctx context.Context, datasetID uuid.UUID, seriesType string) ([]api.DataPoint, error)
	Exists(ctx context.Context, datasetID uuid.UUID, seriesType string) (bool, error)
	MissingTypes(ctx context.Context, datasetID uuid.UUID, required []string) ([]string, error)
	InitialMigration() error
}

type SeriesStore struct {
	db *gorm.DB
}

// Make sure we conform to Series interface
var _ Series = (*SeriesStore)(nil)

func NewSeriesStore(db *gorm.DB) *SeriesStore {
	return &SeriesStore{db: db}
}

func (s *SeriesStore) InitialMigration() error {
	return s.db.AutoMigrate(&model.SeriesPoint{})
}

// Replace atomically swaps the stored series for the dataset/type pair
// with the given points. Any previous upload for the same pair is
// discarded, re-import is idempotent.
func (s *SeriesStore) Replace(ctx context.Context, datasetID uuid.UUID, seriesType string, points []api.DataPoint) (string, int, error) {
	identifier := model.SeriesIdentifier(datasetID, seriesType)

	rows := make([]model.SeriesPoint, len(points))
	for i, p := range points {
		rows[i] = model.SeriesPoint{
			Identifier: identifier,
			DatasetID:  datasetID,
			SeriesType: seriesType,
			Index:      p.Index,
			Value:      p.Value,
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("identifier = ?", identifier).Delete(&model.SeriesPoint{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return "", 0, err
	}

	return identifier, len(rows), nil
}

// Get returns the series points ordered by their original row index.
// ErrRecordNotFound is returned when nothing was imported for the pair.
func (s *SeriesStore) Get(ctx context.Context, datasetID uuid.UUID, seriesType string) ([]api.DataPoint, error) {
	identifier := model.SeriesIdentifier(datasetID, seriesType)

	var rows []model.SeriesPoint
	result := s.db.WithContext(ctx).Where("identifier = ?", identifier).Order("idx asc").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(rows) == 0 {
		return nil, ErrRecordNotFound
	}

	points := make([]api.DataPoint, len(rows))
	for i, r := range rows {
		points[i] = api.DataPoint{Index: r.Index, Value: r.Value}
	}
	return points, nil
}

func (s *SeriesStore) Exists(ctx context.Context, datasetID uuid.UUID, seriesType string) (bool, error) {
	identifier := model.SeriesIdentifier(datasetID, seriesType)

	var count int64
	result := s.db.WithContext(ctx).Model(&model.SeriesPoint{}).Where("identifier = ?", identifier).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// MissingTypes reports which of the required series types have no data
// for the dataset, in the order they were requested.
func (s *SeriesStore) MissingTypes(ctx context.Context, datasetID uuid.UUID, required []string) ([]string, error) {
	missing := []string{}
	for _, seriesType := range required {
		exists, err := s.Exists(ctx, datasetID, seriesType)
		if err != nil {
			return nil, err
		}
		if !exists {
			missing = append(missing, seriesType)
		}
	}
	return missing, nil
}
