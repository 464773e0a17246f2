package v1alpha1

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	api "github.com/terrasense/slope-monitor/api/v1alpha1"
	"github.com/terrasense/slope-monitor/internal/datafile"
	"github.com/terrasense/slope-monitor/internal/service"
)

// SeriesHandler serves the data file validate and import endpoints.
type SeriesHandler struct {
	service *service.SeriesService
}

func NewSeriesHandler(service *service.SeriesService) *SeriesHandler {
	return &SeriesHandler{service: service}
}

// Validate handles POST /api/v1/datasets/{id}/series/{type}/validate.
// The file is checked against the station format; nothing is stored.
func (h *SeriesHandler) Validate(w http.ResponseWriter, r *http.Request) {
	_, _, content, ok := h.parseUpload(w, r)
	if !ok {
		return
	}

	result := h.service.Validate(content)
	respond(w, http.StatusOK, validationResponse(result))
}

// Import handles POST /api/v1/datasets/{id}/series/{type}/import. A file
// that fails validation is rejected with the full problem list; a valid
// one replaces any previously imported series of the same type.
func (h *SeriesHandler) Import(w http.ResponseWriter, r *http.Request) {
	datasetID, seriesType, content, ok := h.parseUpload(w, r)
	if !ok {
		return
	}

	result, imported, err := h.service.Import(r.Context(), datasetID, seriesType, content)
	if err != nil {
		zap.S().Named("series").Errorf("import failed: %v", err)
		respondErrors(w, http.StatusInternalServerError, api.LocalizedMessage{
			It: "Errore interno durante l'importazione.",
			En: "Internal error during import.",
		})
		return
	}

	if !result.Valid {
		respond(w, http.StatusBadRequest, api.ImportRejectedResponse{
			Success:            false,
			ValidationResponse: validationResponse(result),
		})
		return
	}

	respond(w, http.StatusOK, imported)
}

// parseUpload extracts and checks the path parameters and the uploaded
// file. On failure it writes the error response and returns ok=false.
func (h *SeriesHandler) parseUpload(w http.ResponseWriter, r *http.Request) (uuid.UUID, api.SeriesType, []byte, bool) {
	datasetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondErrors(w, http.StatusBadRequest, invalidDatasetUUIDMessage)
		return uuid.Nil, "", nil, false
	}

	seriesType, ok := api.StringToSeriesType(chi.URLParam(r, "type"))
	if !ok {
		respondErrors(w, http.StatusBadRequest, invalidSeriesTypeMessage)
		return uuid.Nil, "", nil, false
	}

	content, ok := readUploadedFile(w, r)
	if !ok {
		return uuid.Nil, "", nil, false
	}

	return datasetID, seriesType, content, true
}

func readUploadedFile(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondNoFile(w)
		return nil, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respondNoFile(w)
		return nil, false
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		zap.S().Named("series").Warnf("failed to read uploaded file: %v", err)
		respondErrors(w, http.StatusBadRequest, api.LocalizedMessage{
			It: "Impossibile leggere il file caricato.",
			En: "Unable to read uploaded file.",
		})
		return nil, false
	}

	return content, true
}

func respondNoFile(w http.ResponseWriter) {
	respond(w, http.StatusBadRequest, api.ImportRejectedResponse{
		Success: false,
		ValidationResponse: api.ValidationResponse{
			Valid:    false,
			Errors:   []api.LocalizedMessage{noFileUploadedMessage},
			Warnings: []api.LocalizedMessage{},
		},
	})
}

func validationResponse(result *datafile.Result) api.ValidationResponse {
	return api.ValidationResponse{
		Valid:    result.Valid,
		Errors:   result.Errors,
		Warnings: result.Warnings,
		Data:     result.Data,
	}
}
