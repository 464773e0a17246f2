package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	api "github.com/terrasense/slope-monitor/api/v1alpha1"
	"github.com/terrasense/slope-monitor/internal/engine"
	"github.com/terrasense/slope-monitor/internal/store"
	"github.com/terrasense/slope-monitor/internal/store/model"
)

// stubSeries keeps series in memory, keyed by series type.
type stubSeries struct {
	data map[string][]api.DataPoint
}

func newStubSeries() *stubSeries {
	return &stubSeries{data: map[string][]api.DataPoint{}}
}

func (s *stubSeries) Replace(_ context.Context, datasetID uuid.UUID, seriesType string, points []api.DataPoint) (string, int, error) {
	s.data[seriesType] = points
	return model.SeriesIdentifier(datasetID, seriesType), len(points), nil
}

func (s *stubSeries) Get(_ context.Context, _ uuid.UUID, seriesType string) ([]api.DataPoint, error) {
	points, ok := s.data[seriesType]
	if !ok || len(points) == 0 {
		return nil, store.ErrRecordNotFound
	}
	return points, nil
}

func (s *stubSeries) Exists(_ context.Context, _ uuid.UUID, seriesType string) (bool, error) {
	return len(s.data[seriesType]) > 0, nil
}

func (s *stubSeries) MissingTypes(ctx context.Context, datasetID uuid.UUID, required []string) ([]string, error) {
	missing := []string{}
	for _, seriesType := range required {
		exists, _ := s.Exists(ctx, datasetID, seriesType)
		if !exists {
			missing = append(missing, seriesType)
		}
	}
	return missing, nil
}

func (s *stubSeries) InitialMigration() error { return nil }

type stubStore struct {
	series *stubSeries
}

func newStubStore() *stubStore {
	return &stubStore{series: newStubSeries()}
}

func (s *stubStore) Series() store.Series    { return s.series }
func (s *stubStore) InitialMigration() error { return nil }
func (s *stubStore) Close() error            { return nil }

func (s *stubStore) put(seriesType api.SeriesType, values ...float64) {
	points := make([]api.DataPoint, len(values))
	for i, v := range values {
		points[i] = api.DataPoint{Index: i, Value: v}
	}
	s.series.data[string(seriesType)] = points
}

// stubEngine returns canned results and records the inputs it was
// invoked with.
type stubEngine struct {
	bestFitInput    *engine.BestFitInput
	bestFitResult   engine.BestFitResult
	bestFitErr      error
	curveInput      *engine.CurveInput
	curveResult     []float64
	curveErr        error
	stabilityInput  *engine.StabilityInput
	viscosityInput  *engine.ViscosityInput
	stabilityResult engine.StabilityResult
	stabilityErr    error
}

func (e *stubEngine) BestFitWaterTable(_ context.Context, input engine.BestFitInput) (*engine.BestFitResult, error) {
	e.bestFitInput = &input
	if e.bestFitErr != nil {
		return nil, e.bestFitErr
	}
	result := e.bestFitResult
	return &result, nil
}

func (e *stubEngine) WaterTableCurve(_ context.Context, input engine.CurveInput) ([]float64, error) {
	e.curveInput = &input
	if e.curveErr != nil {
		return nil, e.curveErr
	}
	return e.curveResult, nil
}

func (e *stubEngine) SlopeStability(_ context.Context, input engine.StabilityInput) (*engine.StabilityResult, error) {
	e.stabilityInput = &input
	if e.stabilityErr != nil {
		return nil, e.stabilityErr
	}
	result := e.stabilityResult
	return &result, nil
}

func (e *stubEngine) BestFitViscosity(_ context.Context, input engine.ViscosityInput) (*engine.StabilityResult, error) {
	e.viscosityInput = &input
	if e.stabilityErr != nil {
		return nil, e.stabilityErr
	}
	result := e.stabilityResult
	return &result, nil
}

var errEngineDown = errors.New("engine unavailable")

func testGeometry() api.Geometry {
	return api.Geometry{L1: 35, L2: 25, H: 4.5, Beta1: 9, Beta2: 15, IPc: 7.99}
}
