package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	api "github.com/terrasense/slope-monitor/api/v1alpha1"
	"github.com/terrasense/slope-monitor/internal/engine"
	"github.com/terrasense/slope-monitor/internal/store"
)

// CalibrationService finds (or evaluates) the water-table response
// parameters for a dataset from its imported rainfall and water-table
// series. ktInit and anInit seed the best-fit in automatic mode.
type CalibrationService struct {
	store  store.Store
	engine engine.Engine
	ktInit float64
	anInit float64
}

func NewCalibrationService(store store.Store, eng engine.Engine, ktInit, anInit float64) *CalibrationService {
	return &CalibrationService{store: store, engine: eng, ktInit: ktInit, anInit: anInit}
}

// Calibrate runs the water-table calibration for the dataset. In
// automatic mode the engine best-fits the parameters from the measured
// series; in manual mode the caller-provided parameters are used as-is.
// Either way the calibrated water-table curve is evaluated and returned
// alongside the measured series.
func (s *CalibrationService) Calibrate(ctx context.Context, datasetID uuid.UUID, mode api.CalibrationMode, geometry api.Geometry, manualParams *api.CalibrationParams) (*api.CalibrateResponse, error) {
	rainfall, waterTable, err := s.loadSeries(ctx, datasetID)
	if err != nil {
		return nil, err
	}

	rainfallValues := values(rainfall)
	waterTableValues := values(waterTable)
	timeIndex := timeGrid(len(rainfallValues))

	var calibrated api.CalibrationParams
	switch mode {
	case api.CalibrationModeManual:
		calibrated = *manualParams
	default:
		fit, err := s.engine.BestFitWaterTable(ctx, engine.BestFitInput{
			InitialLevel:       waterTableValues[0],
			InitialOffset:      0,
			MinimumLevel:       minOf(waterTableValues),
			SlopeAngle:         geometry.IPc,
			Rainfall:           rainfallValues,
			WaterTable:         waterTableValues,
			TimeIndex:          timeIndex,
			InitialDecay:       s.ktInit,
			InitialCoefficient: s.anInit,
			InitialScale:       maxOf(rainfallValues),
		})
		if err != nil {
			return nil, NewErrAutomaticCalibrationFailed(err)
		}
		calibrated = api.CalibrationParams{
			Hs:   fit.Scale,
			Kt:   fit.Decay,
			An:   fit.Coefficient,
			Ho:   0,
			Hmin: minOf(waterTableValues),
		}
	}

	curve, err := s.engine.WaterTableCurve(ctx, engine.CurveInput{
		InitialOffset: calibrated.Ho,
		MinimumLevel:  calibrated.Hmin,
		SlopeAngle:    geometry.IPc,
		Scale:         calibrated.Hs,
		Decay:         calibrated.Kt,
		Coefficient:   calibrated.An,
		TimeIndex:     timeIndex,
		Rainfall:      rainfallValues,
	})
	if err != nil {
		if mode == api.CalibrationModeManual {
			return nil, NewErrWaterTableCalculationFailed(err)
		}
		return nil, NewErrAutomaticCalibrationFailed(err)
	}

	zap.S().Named("calibration").Infow("calibration completed",
		"dataset_id", datasetID,
		"mode", mode,
		"hs", calibrated.Hs,
		"kt", calibrated.Kt,
		"an", calibrated.An,
	)

	return &api.CalibrateResponse{
		Success:              true,
		CalibratedParams:     calibrated,
		CalculatedWaterTable: indexed(curve),
		MeasuredWaterTable:   waterTable,
		RainfallData:         rainfall,
	}, nil
}

// loadSeries gates on both required series being present and returns
// them ordered by index. All missing types are reported together.
func (s *CalibrationService) loadSeries(ctx context.Context, datasetID uuid.UUID) ([]api.DataPoint, []api.DataPoint, error) {
	required := []string{string(api.SeriesTypeRainfall), string(api.SeriesTypeWaterTable)}
	missing, err := s.store.Series().MissingTypes(ctx, datasetID, required)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check required series: %w", err)
	}
	if len(missing) > 0 {
		types := make([]api.SeriesType, len(missing))
		for i, m := range missing {
			types[i] = api.SeriesType(m)
		}
		return nil, nil, NewErrDataNotFound(types)
	}

	rainfall, err := s.store.Series().Get(ctx, datasetID, string(api.SeriesTypeRainfall))
	if err != nil {
		return nil, nil, seriesReadError(err, api.SeriesTypeRainfall)
	}
	waterTable, err := s.store.Series().Get(ctx, datasetID, string(api.SeriesTypeWaterTable))
	if err != nil {
		return nil, nil, seriesReadError(err, api.SeriesTypeWaterTable)
	}

	return rainfall, waterTable, nil
}
