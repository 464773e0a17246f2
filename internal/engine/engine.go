// Package engine defines the capability interface to the external slope
// calculation engine and its HTTP binding. The engine itself is a black
// box; this package only shapes its inputs and outputs.
package engine

import "context"

// BestFitInput drives the automatic water-table calibration. Rainfall,
// WaterTable and TimeIndex are parallel arrays on the same grid.
type BestFitInput struct {
	InitialLevel       float64   `json:"h"`
	InitialOffset      float64   `json:"ho"`
	MinimumLevel       float64   `json:"hmin"`
	SlopeAngle         float64   `json:"alpha"`
	Rainfall           []float64 `json:"rainfall"`
	WaterTable         []float64 `json:"water_table"`
	TimeIndex          []float64 `json:"time_index"`
	InitialDecay       float64   `json:"kt_init"`
	InitialCoefficient float64   `json:"an_init"`
	InitialScale       float64   `json:"hs_init"`
}

// BestFitResult carries the optimized calibration parameters.
type BestFitResult struct {
	Coefficient float64 `json:"an"`
	Decay       float64 `json:"kt"`
	Scale       float64 `json:"hs"`
}

// CurveInput evaluates the water-table response for fixed calibration
// parameters.
type CurveInput struct {
	InitialOffset float64   `json:"ho"`
	MinimumLevel  float64   `json:"hmin"`
	SlopeAngle    float64   `json:"alpha"`
	Scale         float64   `json:"hs"`
	Decay         float64   `json:"kt"`
	Coefficient   float64   `json:"an"`
	TimeIndex     []float64 `json:"time_index"`
	Rainfall      []float64 `json:"rainfall"`
}

// StabilityInput drives the multi-block slope stability analysis.
// Displacement is expressed in meters; SecondsPerStep scales one grid
// step to physical time.
type StabilityInput struct {
	L1             float64   `json:"l1"`
	L2             float64   `json:"l2"`
	H              float64   `json:"h"`
	Beta1          float64   `json:"beta1"`
	Beta2          float64   `json:"beta2"`
	IPc            float64   `json:"i_pc"`
	GammaSat       float64   `json:"gamma_sat"`
	Fi             float64   `json:"fi"`
	C              float64   `json:"c"`
	Mu             float64   `json:"mu"`
	GammaW         float64   `json:"gamma_w"`
	Gravity        float64   `json:"g"`
	PileDiameter   float64   `json:"pile_diameter"`
	PileSpacing    float64   `json:"pile_spacing"`
	PileHeight     float64   `json:"pile_height"`
	PilesRow1      float64   `json:"piles_row1"`
	PilesRow2      float64   `json:"piles_row2"`
	TimeIndex      []float64 `json:"time_index"`
	WaterTable     []float64 `json:"water_table"`
	Displacement   []float64 `json:"displacement"`
	SecondsPerStep float64   `json:"seconds_per_step"`
	Alpha          float64   `json:"alpha"`
	PhiLayer       float64   `json:"phi_layer"`
	OCR            float64   `json:"ocr"`
	CLayer         float64   `json:"c_layer"`
	Harmonics      int       `json:"harmonics"`
	DeltaP1        float64   `json:"deltap1"`
	PhiInterface   float64   `json:"phi_interface"`
}

// ViscosityInput extends the stability analysis with the measured
// displacement in user units and the conversion multipliers so the
// engine can best-fit the viscosity coefficient.
type ViscosityInput struct {
	StabilityInput
	DisplacementMeasured []float64 `json:"displacement_measured"`
	OutputMultiplier     float64   `json:"output_multiplier"`
	InputMultiplier      float64   `json:"input_multiplier"`
}

// StabilityResult is the raw 5-row result matrix of the engine:
// row 0 displacement, row 1 critical water height, row 2 velocity,
// row 3 safety factor, row 4 diagnostics.
type StabilityResult struct {
	Matrix [][]float64 `json:"matrix"`
}

// Engine is the capability surface of the external calculation engine.
type Engine interface {
	BestFitWaterTable(ctx context.Context, input BestFitInput) (*BestFitResult, error)
	WaterTableCurve(ctx context.Context, input CurveInput) ([]float64, error)
	SlopeStability(ctx context.Context, input StabilityInput) (*StabilityResult, error)
	BestFitViscosity(ctx context.Context, input ViscosityInput) (*StabilityResult, error)
}
