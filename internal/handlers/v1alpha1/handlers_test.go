package v1alpha1

import (
	"context"

	"github.com/google/uuid"

	api "github.com/terrasense/slope-monitor/api/v1alpha1"
	"github.com/terrasense/slope-monitor/internal/engine"
	"github.com/terrasense/slope-monitor/internal/store"
	"github.com/terrasense/slope-monitor/internal/store/model"
)

// memorySeries is an in-memory Series implementation for handler tests.
type memorySeries struct {
	data map[string][]api.DataPoint
}

func newMemorySeries() *memorySeries {
	return &memorySeries{data: map[string][]api.DataPoint{}}
}

func (s *memorySeries) Replace(_ context.Context, datasetID uuid.UUID, seriesType string, points []api.DataPoint) (string, int, error) {
	identifier := model.SeriesIdentifier(datasetID, seriesType)
	s.data[identifier] = points
	return identifier, len(points), nil
}

func (s *memorySeries) Get(_ context.Context, datasetID uuid.UUID, seriesType string) ([]api.DataPoint, error) {
	points, ok := s.data[model.SeriesIdentifier(datasetID, seriesType)]
	if !ok || len(points) == 0 {
		return nil, store.ErrRecordNotFound
	}
	return points, nil
}

func (s *memorySeries) Exists(_ context.Context, datasetID uuid.UUID, seriesType string) (bool, error) {
	return len(s.data[model.SeriesIdentifier(datasetID, seriesType)]) > 0, nil
}

func (s *memorySeries) MissingTypes(ctx context.Context, datasetID uuid.UUID, required []string) ([]string, error) {
	missing := []string{}
	for _, seriesType := range required {
		exists, _ := s.Exists(ctx, datasetID, seriesType)
		if !exists {
			missing = append(missing, seriesType)
		}
	}
	return missing, nil
}

func (s *memorySeries) InitialMigration() error { return nil }

type memoryStore struct {
	series *memorySeries
}

func newMemoryStore() *memoryStore {
	return &memoryStore{series: newMemorySeries()}
}

func (s *memoryStore) Series() store.Series    { return s.series }
func (s *memoryStore) InitialMigration() error { return nil }
func (s *memoryStore) Close() error            { return nil }

func (s *memoryStore) put(datasetID uuid.UUID, seriesType api.SeriesType, values ...float64) {
	points := make([]api.DataPoint, len(values))
	for i, v := range values {
		points[i] = api.DataPoint{Index: i, Value: v}
	}
	s.series.data[model.SeriesIdentifier(datasetID, string(seriesType))] = points
}

// fixedEngine returns the same canned results for every call.
type fixedEngine struct {
	err error
}

func (e *fixedEngine) BestFitWaterTable(context.Context, engine.BestFitInput) (*engine.BestFitResult, error) {
	if e.err != nil {
		return nil, e.err
	}
	return &engine.BestFitResult{Coefficient: 0.3, Decay: 2.5, Scale: 150}, nil
}

func (e *fixedEngine) WaterTableCurve(_ context.Context, input engine.CurveInput) ([]float64, error) {
	if e.err != nil {
		return nil, e.err
	}
	return make([]float64, len(input.Rainfall)), nil
}

func (e *fixedEngine) SlopeStability(_ context.Context, input engine.StabilityInput) (*engine.StabilityResult, error) {
	if e.err != nil {
		return nil, e.err
	}
	n := len(input.TimeIndex)
	return &engine.StabilityResult{Matrix: [][]float64{
		make([]float64, n),
		make([]float64, n),
		make([]float64, n),
		make([]float64, n),
		{0, 0, 0, 0, 0, 900},
	}}, nil
}

func (e *fixedEngine) BestFitViscosity(ctx context.Context, input engine.ViscosityInput) (*engine.StabilityResult, error) {
	return e.SlopeStability(ctx, input.StabilityInput)
}
