package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	api "github.com/terrasense/slope-monitor/api/v1alpha1"
	"github.com/terrasense/slope-monitor/internal/engine"
	"github.com/terrasense/slope-monitor/internal/store"
	"github.com/terrasense/slope-monitor/internal/timeseries"
)

const (
	defaultHarmonics = 100
	gravity          = 9.81
	viscosityUnit    = "kN*month/m2"
)

// PrevisionService runs the multi-block slope stability analysis on top
// of the imported series and the calibrated water-table parameters.
type PrevisionService struct {
	store  store.Store
	engine engine.Engine
}

func NewPrevisionService(store store.Store, eng engine.Engine) *PrevisionService {
	return &PrevisionService{store: store, engine: eng}
}

// Prevision recomputes the water table from the model parameters, aligns
// the measured displacement onto the integer time grid and invokes the
// stability analysis. In best-fit-viscosity mode the engine additionally
// calibrates the viscosity coefficient against the measured displacement.
func (s *PrevisionService) Prevision(
	ctx context.Context,
	datasetID uuid.UUID,
	previsionType api.PrevisionType,
	geometry api.Geometry,
	geo api.GeotechnicalParams,
	modelParams api.CalibrationParams,
	settings api.AnalysisSettings,
) (*api.PrevisionResponse, error) {
	rainfall, waterTable, displacement, err := s.loadSeries(ctx, datasetID)
	if err != nil {
		return nil, err
	}

	rainfallValues := values(rainfall)
	n := len(rainfallValues)
	timeIndex := timeGrid(n)

	calculatedWT, err := s.engine.WaterTableCurve(ctx, engine.CurveInput{
		InitialOffset: modelParams.Ho,
		MinimumLevel:  modelParams.Hmin,
		SlopeAngle:    geometry.IPc,
		Scale:         modelParams.Hs,
		Decay:         modelParams.Kt,
		Coefficient:   modelParams.An,
		TimeIndex:     timeIndex,
		Rainfall:      rainfallValues,
	})
	if err != nil {
		return nil, NewErrWaterTableCalculationFailed(err)
	}

	harmonics := settings.NumHarmonics
	if harmonics <= 0 {
		harmonics = defaultHarmonics
	}
	molt := timeseries.DisplacementMultiplier(settings.DisplacementUnit)
	sec := timeseries.SecondsPerStep(settings.TimeUnit)

	// Displacement measurements may sit on a sparser grid than the
	// rainfall; align them before converting to meters.
	dispAligned := timeseries.ToIntegerGrid(indices(displacement), values(displacement), n)
	dispMeters := make([]float64, n)
	for i, v := range dispAligned {
		dispMeters[i] = v * molt
	}

	stability := engine.StabilityInput{
		L1:             geometry.L1,
		L2:             geometry.L2,
		H:              geometry.H,
		Beta1:          geometry.Beta1,
		Beta2:          geometry.Beta2,
		IPc:            geometry.IPc,
		GammaSat:       geo.GammaSat,
		Fi:             geo.Fi,
		C:              geo.C,
		Mu:             geo.Mu,
		GammaW:         geo.GammaW,
		Gravity:        gravity,
		TimeIndex:      timeIndex,
		WaterTable:     calculatedWT,
		Displacement:   dispMeters,
		SecondsPerStep: sec,
		Alpha:          geo.FiInterface,
		OCR:            1,
		Harmonics:      harmonics,
		PhiInterface:   geo.FiInterface,
	}

	var result *engine.StabilityResult
	if previsionType == api.PrevisionTypeBestFitViscosity {
		result, err = s.engine.BestFitViscosity(ctx, engine.ViscosityInput{
			StabilityInput:       stability,
			DisplacementMeasured: dispAligned,
			OutputMultiplier:     1 / molt,
			InputMultiplier:      molt,
		})
	} else {
		result, err = s.engine.SlopeStability(ctx, stability)
	}
	if err != nil {
		return nil, NewErrPrevisionFailed(err)
	}
	if len(result.Matrix) < 5 {
		return nil, NewErrPrevisionFailed(fmt.Errorf("engine returned %d result rows, expected 5", len(result.Matrix)))
	}

	// The engine computes displacement in meters and critical water
	// height above the sliding surface; report displacement back in the
	// caller's unit and the critical level as depth from ground.
	dispOut := make([]float64, len(result.Matrix[0]))
	for i, v := range result.Matrix[0] {
		dispOut[i] = v / molt
	}
	criticalWT := make([]float64, len(result.Matrix[1]))
	for i, v := range result.Matrix[1] {
		criticalWT[i] = v - geometry.H
	}

	response := &api.PrevisionResponse{
		Success: true,
		Results: api.PrevisionResults{
			Time:                   indexed(timeIndex),
			DisplacementCalculated: indexed(dispOut),
			DisplacementMeasured:   displacement,
			Velocity:               indexed(result.Matrix[2]),
			CriticalWaterTable:     indexed(criticalWT),
			SafetyFactor:           indexed(result.Matrix[3]),
			WaterTableCalculated:   indexed(calculatedWT),
			WaterTableMeasured:     waterTable,
		},
	}

	if previsionType == api.PrevisionTypeBestFitViscosity {
		mu := geo.Mu
		if len(result.Matrix[4]) > 5 {
			mu = result.Matrix[4][5]
		}
		response.CalibratedViscosity = &api.CalibratedViscosity{Mu: mu, Unit: viscosityUnit}
	}

	zap.S().Named("prevision").Infow("prevision completed",
		"dataset_id", datasetID,
		"type", previsionType,
		"points", n,
		"harmonics", harmonics,
	)

	return response, nil
}

func (s *PrevisionService) loadSeries(ctx context.Context, datasetID uuid.UUID) (rainfall, waterTable, displacement []api.DataPoint, err error) {
	required := []string{
		string(api.SeriesTypeRainfall),
		string(api.SeriesTypeWaterTable),
		string(api.SeriesTypeDisplacement),
	}
	missing, err := s.store.Series().MissingTypes(ctx, datasetID, required)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to check required series: %w", err)
	}
	if len(missing) > 0 {
		types := make([]api.SeriesType, len(missing))
		for i, m := range missing {
			types[i] = api.SeriesType(m)
		}
		return nil, nil, nil, NewErrDataNotFound(types)
	}

	if rainfall, err = s.store.Series().Get(ctx, datasetID, string(api.SeriesTypeRainfall)); err != nil {
		return nil, nil, nil, seriesReadError(err, api.SeriesTypeRainfall)
	}
	if waterTable, err = s.store.Series().Get(ctx, datasetID, string(api.SeriesTypeWaterTable)); err != nil {
		return nil, nil, nil, seriesReadError(err, api.SeriesTypeWaterTable)
	}
	if displacement, err = s.store.Series().Get(ctx, datasetID, string(api.SeriesTypeDisplacement)); err != nil {
		return nil, nil, nil, seriesReadError(err, api.SeriesTypeDisplacement)
	}

	return rainfall, waterTable, displacement, nil
}
