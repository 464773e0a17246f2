package engine

import (
	"context"
	"sync"
)

// serializedEngine funnels every call through one mutex. The engine is
// not reentrant, so at most one calculation may be in flight.
type serializedEngine struct {
	mu    sync.Mutex
	inner Engine
}

// Serialized wraps an Engine so concurrent callers take turns.
func Serialized(inner Engine) Engine {
	return &serializedEngine{inner: inner}
}

func (s *serializedEngine) BestFitWaterTable(ctx context.Context, input BestFitInput) (*BestFitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.BestFitWaterTable(ctx, input)
}

func (s *serializedEngine) WaterTableCurve(ctx context.Context, input CurveInput) ([]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.WaterTableCurve(ctx, input)
}

func (s *serializedEngine) SlopeStability(ctx context.Context, input StabilityInput) (*StabilityResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.SlopeStability(ctx, input)
}

func (s *serializedEngine) BestFitViscosity(ctx context.Context, input ViscosityInput) (*StabilityResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.BestFitViscosity(ctx, input)
}
