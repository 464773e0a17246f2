package v1alpha1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	api "github.com/terrasense/slope-monitor/api/v1alpha1"
	"github.com/terrasense/slope-monitor/internal/handlers/validator"
	"github.com/terrasense/slope-monitor/internal/service"
)

// CalculationHandler serves the calibrate and prevision endpoints.
type CalculationHandler struct {
	calibration *service.CalibrationService
	prevision   *service.PrevisionService
	validator   *validator.Validator
}

func NewCalculationHandler(calibration *service.CalibrationService, prevision *service.PrevisionService) *CalculationHandler {
	v := validator.NewValidator()
	v.Register(validator.NewCalculationValidationRules()...)
	return &CalculationHandler{
		calibration: calibration,
		prevision:   prevision,
		validator:   v,
	}
}

// Calibrate handles POST /api/v1/calculations/calibrate.
func (h *CalculationHandler) Calibrate(w http.ResponseWriter, r *http.Request) {
	var req api.CalibrateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondErrors(w, http.StatusBadRequest, validator.Localize(err)...)
		return
	}

	datasetID := uuid.MustParse(req.DatasetID)
	mode := req.Mode
	if mode == "" {
		mode = api.CalibrationModeAutomatic
	}

	var manualParams *api.CalibrationParams
	if req.CalibrationParams != nil {
		params := req.CalibrationParams.Value()
		manualParams = &params
	}

	response, err := h.calibration.Calibrate(r.Context(), datasetID, mode, req.Geometry.Value(), manualParams)
	if err != nil {
		h.respondCalculationError(w, err, api.ErrorCodeCalibrationFailed)
		return
	}

	respond(w, http.StatusOK, response)
}

// Prevision handles POST /api/v1/calculations/prevision.
func (h *CalculationHandler) Prevision(w http.ResponseWriter, r *http.Request) {
	var req api.PrevisionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondErrors(w, http.StatusBadRequest, validator.Localize(err)...)
		return
	}

	datasetID := uuid.MustParse(req.DatasetID)
	previsionType := req.PrevisionType
	if previsionType == "" {
		previsionType = api.PrevisionTypeStandard
	}

	settings := api.AnalysisSettings{}
	if req.AnalysisSettings != nil {
		settings = *req.AnalysisSettings
	}

	response, err := h.prevision.Prevision(
		r.Context(),
		datasetID,
		previsionType,
		req.Geometry.Value(),
		req.GeotechnicalParams.Value(),
		req.ModelParams.Value(),
		settings,
	)
	if err != nil {
		h.respondCalculationError(w, err, api.ErrorCodePrevisionFailed)
		return
	}

	respond(w, http.StatusOK, response)
}

// respondCalculationError maps service failures onto the envelope:
// missing data → 404 DATA_NOT_FOUND, engine failures → 500 with the
// endpoint's error code, anything else → 500 without a code.
func (h *CalculationHandler) respondCalculationError(w http.ResponseWriter, err error, engineCode api.ErrorCode) {
	var notFound *service.ErrDataNotFound
	if errors.As(err, &notFound) {
		respond(w, http.StatusNotFound, api.ErrorResponse{
			Success:   false,
			Errors:    notFound.Messages,
			ErrorCode: api.ErrorCodeDataNotFound,
		})
		return
	}

	var failed *service.ErrCalculationFailed
	if errors.As(err, &failed) {
		respond(w, http.StatusInternalServerError, api.ErrorResponse{
			Success:   false,
			Errors:    []api.LocalizedMessage{failed.Message},
			ErrorCode: engineCode,
			Details:   failed.Details,
		})
		return
	}

	zap.S().Named("calculations").Errorf("calculation failed: %v", err)
	respondErrors(w, http.StatusInternalServerError, api.LocalizedMessage{
		It: "Errore interno.",
		En: "Internal error.",
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondErrors(w, http.StatusBadRequest, api.LocalizedMessage{
			It: "Corpo della richiesta non valido.",
			En: "Invalid request body.",
		})
		return false
	}
	return true
}
