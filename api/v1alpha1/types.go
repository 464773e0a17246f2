// Package v1alpha1 defines the wire types of the slope-monitor API:
// requests and responses for series import and for the calibration and
// prevision calculations, together with the shared response envelope.
package v1alpha1

// LocalizedMessage is a bilingual (Italian/English) user-facing message.
// Every error and warning crossing the API boundary carries both texts.
type LocalizedMessage struct {
	It string `json:"it"`
	En string `json:"en"`
}

// DataPoint is a single (index, value) sample of a monitoring time series.
type DataPoint struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// SeriesType identifies one of the monitored quantities. The wire tokens
// are the historical Italian names used by the field instrumentation.
type SeriesType string

const (
	SeriesTypeRainfall     SeriesType = "pioggia"
	SeriesTypeWaterTable   SeriesType = "falda"
	SeriesTypeDisplacement SeriesType = "spostamento"
)

type CalibrationMode string

const (
	CalibrationModeAutomatic CalibrationMode = "automatic"
	CalibrationModeManual    CalibrationMode = "manual"
)

type PrevisionType string

const (
	PrevisionTypeStandard         PrevisionType = "standard"
	PrevisionTypeBestFitViscosity PrevisionType = "best_fit_viscosity"
)

// DisplacementUnit is the caller-facing unit of displacement values.
type DisplacementUnit string

const (
	DisplacementUnitMillimeters DisplacementUnit = "mm"
	DisplacementUnitCentimeters DisplacementUnit = "cm"
	DisplacementUnitMeters      DisplacementUnit = "m"
)

// TimeUnit is the duration of one time step of the series grid.
type TimeUnit string

const (
	TimeUnitDays   TimeUnit = "giorni"
	TimeUnitMonths TimeUnit = "mesi"
	TimeUnitYears  TimeUnit = "anni"
)

// ErrorCode classifies non-structural failures in the response envelope.
type ErrorCode string

const (
	ErrorCodeDataNotFound      ErrorCode = "DATA_NOT_FOUND"
	ErrorCodeCalibrationFailed ErrorCode = "CALIBRATION_FAILED"
	ErrorCodePrevisionFailed   ErrorCode = "PREVISION_FAILED"
)

// Geometry describes the slope cross-section. Lengths are in meters,
// angles in degrees.
type Geometry struct {
	L1    float64 `json:"l1"`
	L2    float64 `json:"l2"`
	H     float64 `json:"h"`
	Beta1 float64 `json:"beta1"`
	Beta2 float64 `json:"beta2"`
	IPc   float64 `json:"i_pc"`
}

// GeotechnicalParams describes soil strength, weight and viscosity.
type GeotechnicalParams struct {
	GammaSat    float64 `json:"gamma_sat"`
	GammaW      float64 `json:"gamma_w"`
	Fi          float64 `json:"fi"`
	C           float64 `json:"c"`
	Mu          float64 `json:"mu"`
	FiInterface float64 `json:"fi_interface,omitempty"`
}

// CalibrationParams are the water-table response-function coefficients,
// produced by calibration and consumed by prevision.
type CalibrationParams struct {
	Hs   float64 `json:"hs"`
	Kt   float64 `json:"kt"`
	An   float64 `json:"an"`
	Ho   float64 `json:"ho"`
	Hmin float64 `json:"hmin"`
}

// GeometryInput mirrors Geometry with optional fields so that missing
// request keys can be reported individually.
type GeometryInput struct {
	L1    *float64 `json:"l1" validate:"required"`
	L2    *float64 `json:"l2" validate:"required"`
	H     *float64 `json:"h" validate:"required"`
	Beta1 *float64 `json:"beta1" validate:"required"`
	Beta2 *float64 `json:"beta2" validate:"required"`
	IPc   *float64 `json:"i_pc" validate:"required"`
}

type GeotechnicalParamsInput struct {
	GammaSat    *float64 `json:"gamma_sat" validate:"required"`
	GammaW      *float64 `json:"gamma_w" validate:"required"`
	Fi          *float64 `json:"fi" validate:"required"`
	C           *float64 `json:"c" validate:"required"`
	Mu          *float64 `json:"mu" validate:"required"`
	FiInterface *float64 `json:"fi_interface,omitempty"`
}

type CalibrationParamsInput struct {
	Hs   *float64 `json:"hs" validate:"required"`
	Kt   *float64 `json:"kt" validate:"required"`
	An   *float64 `json:"an" validate:"required"`
	Ho   *float64 `json:"ho" validate:"required"`
	Hmin *float64 `json:"hmin" validate:"required"`
}

// AnalysisSettings tune the prevision run. Zero values fall back to
// 100 harmonics, centimeters and monthly steps.
type AnalysisSettings struct {
	NumHarmonics     int              `json:"num_harmonics,omitempty" validate:"omitempty,gt=0"`
	DisplacementUnit DisplacementUnit `json:"displacement_unit,omitempty" validate:"omitempty,displacement_unit"`
	TimeUnit         TimeUnit         `json:"time_unit,omitempty" validate:"omitempty,time_unit"`
}

// CalibrateRequest is the body of POST /api/v1/calculations/calibrate.
type CalibrateRequest struct {
	DatasetID         string                  `json:"dataset_uuid" validate:"required,dataset_uuid"`
	Mode              CalibrationMode         `json:"mode,omitempty" validate:"omitempty,calibration_mode"`
	Geometry          *GeometryInput          `json:"geometry" validate:"required"`
	CalibrationParams *CalibrationParamsInput `json:"calibration_params,omitempty" validate:"required_if=Mode manual"`
}

// PrevisionRequest is the body of POST /api/v1/calculations/prevision.
type PrevisionRequest struct {
	DatasetID          string                   `json:"dataset_uuid" validate:"required,dataset_uuid"`
	PrevisionType      PrevisionType            `json:"prevision_type,omitempty" validate:"omitempty,prevision_type"`
	Geometry           *GeometryInput           `json:"geometry" validate:"required"`
	GeotechnicalParams *GeotechnicalParamsInput `json:"geotechnical_params" validate:"required"`
	ModelParams        *CalibrationParamsInput  `json:"model_params" validate:"required"`
	AnalysisSettings   *AnalysisSettings        `json:"analysis_settings,omitempty"`
}

// ErrorResponse is the failure envelope shared by all endpoints.
// ErrorCode is empty for structural validation failures.
type ErrorResponse struct {
	Success   bool               `json:"success"`
	Errors    []LocalizedMessage `json:"errors,omitempty"`
	ErrorCode ErrorCode          `json:"error_code,omitempty"`
	Details   string             `json:"details,omitempty"`
}

// ValidationResponse is returned by the series validate endpoint and,
// combined with Success=false, by a rejected import.
type ValidationResponse struct {
	Valid    bool               `json:"valid"`
	Errors   []LocalizedMessage `json:"errors"`
	Warnings []LocalizedMessage `json:"warnings"`
	Data     []DataPoint        `json:"data,omitempty"`
}

// ImportRejectedResponse is the body of a 400 returned when an import
// fails file validation.
type ImportRejectedResponse struct {
	Success bool `json:"success"`
	ValidationResponse
}

type ImportResponse struct {
	Success      bool   `json:"success"`
	Identifier   string `json:"identifier"`
	RowsImported int    `json:"rows_imported"`
}

type CalibrateResponse struct {
	Success              bool              `json:"success"`
	CalibratedParams     CalibrationParams `json:"calibrated_params"`
	CalculatedWaterTable []DataPoint       `json:"calculated_water_table"`
	MeasuredWaterTable   []DataPoint       `json:"measured_water_table"`
	RainfallData         []DataPoint       `json:"rainfall_data"`
}

type PrevisionResults struct {
	Time                   []DataPoint `json:"time"`
	DisplacementCalculated []DataPoint `json:"displacement_calculated"`
	DisplacementMeasured   []DataPoint `json:"displacement_measured"`
	Velocity               []DataPoint `json:"velocity"`
	CriticalWaterTable     []DataPoint `json:"critical_water_table"`
	SafetyFactor           []DataPoint `json:"safety_factor"`
	WaterTableCalculated   []DataPoint `json:"water_table_calculated"`
	WaterTableMeasured     []DataPoint `json:"water_table_measured"`
}

type CalibratedViscosity struct {
	Mu   float64 `json:"mu"`
	Unit string  `json:"unit"`
}

type PrevisionResponse struct {
	Success             bool                 `json:"success"`
	Results             PrevisionResults     `json:"results"`
	CalibratedViscosity *CalibratedViscosity `json:"calibrated_viscosity,omitempty"`
}
