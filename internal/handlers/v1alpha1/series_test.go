package v1alpha1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/terrasense/slope-monitor/api/v1alpha1"
	"github.com/terrasense/slope-monitor/internal/service"
)

func newSeriesRouter(st *memoryStore) *chi.Mux {
	handler := NewSeriesHandler(service.NewSeriesService(st))
	router := chi.NewRouter()
	router.Post("/api/v1/datasets/{id}/series/{type}/validate", handler.Validate)
	router.Post("/api/v1/datasets/{id}/series/{type}/import", handler.Import)
	return router
}

func validSeriesFile() string {
	lines := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		lines = append(lines, fmt.Sprintf("%d\t%d,5", i, i))
	}
	return strings.Join(lines, "\n")
}

func postFile(t *testing.T, router http.Handler, path, field, content string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, "data.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestValidateEndpointValidFile(t *testing.T) {
	router := newSeriesRouter(newMemoryStore())
	path := fmt.Sprintf("/api/v1/datasets/%s/series/pioggia/validate", uuid.New())

	rec := postFile(t, router, path, "file", validSeriesFile())

	require.Equal(t, http.StatusOK, rec.Code)

	var response api.ValidationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Valid)
	assert.Empty(t, response.Errors)
	assert.Len(t, response.Data, 12)
}

func TestValidateEndpointInvalidFile(t *testing.T) {
	router := newSeriesRouter(newMemoryStore())
	path := fmt.Sprintf("/api/v1/datasets/%s/series/falda/validate", uuid.New())

	rec := postFile(t, router, path, "file", "0\t1,0")

	// Validation problems are reported with 200; the result carries them.
	require.Equal(t, http.StatusOK, rec.Code)

	var response api.ValidationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Valid)
	assert.NotEmpty(t, response.Errors)
	assert.Empty(t, response.Data)
}

func TestValidateEndpointMissingFile(t *testing.T) {
	router := newSeriesRouter(newMemoryStore())
	path := fmt.Sprintf("/api/v1/datasets/%s/series/pioggia/validate", uuid.New())

	rec := postFile(t, router, path, "wrong_field", validSeriesFile())

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "No file uploaded. Use the 'file' field.")
	assert.Contains(t, body, "Nessun file caricato. Utilizzare il campo 'file'.")
}

func TestImportEndpointSuccess(t *testing.T) {
	st := newMemoryStore()
	router := newSeriesRouter(st)
	datasetID := uuid.New()
	path := fmt.Sprintf("/api/v1/datasets/%s/series/pioggia/import", datasetID)

	rec := postFile(t, router, path, "file", validSeriesFile())

	require.Equal(t, http.StatusOK, rec.Code)

	var response api.ImportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, 12, response.RowsImported)
	assert.Equal(t,
		fmt.Sprintf("import_%s_pioggia", strings.ReplaceAll(datasetID.String(), "-", "")),
		response.Identifier)

	exists, err := st.Series().Exists(context.Background(), datasetID, "pioggia")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestImportEndpointRejectsInvalidFile(t *testing.T) {
	st := newMemoryStore()
	router := newSeriesRouter(st)
	datasetID := uuid.New()
	path := fmt.Sprintf("/api/v1/datasets/%s/series/falda/import", datasetID)

	rec := postFile(t, router, path, "file", "garbage")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var response api.ImportRejectedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.False(t, response.Valid)
	assert.NotEmpty(t, response.Errors)

	exists, err := st.Series().Exists(context.Background(), datasetID, "falda")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestImportEndpointReplacesPreviousData(t *testing.T) {
	st := newMemoryStore()
	router := newSeriesRouter(st)
	datasetID := uuid.New()
	path := fmt.Sprintf("/api/v1/datasets/%s/series/spostamento/import", datasetID)

	rec := postFile(t, router, path, "file", validSeriesFile())
	require.Equal(t, http.StatusOK, rec.Code)

	lines := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		lines = append(lines, fmt.Sprintf("%d\t%d,0", i, i*100))
	}
	rec = postFile(t, router, path, "file", strings.Join(lines, "\n"))
	require.Equal(t, http.StatusOK, rec.Code)

	points, err := st.Series().Get(context.Background(), datasetID, "spostamento")
	require.NoError(t, err)
	require.Len(t, points, 12)
	assert.Equal(t, 100.0, points[1].Value)
}

func TestSeriesEndpointsRejectInvalidUUID(t *testing.T) {
	router := newSeriesRouter(newMemoryStore())

	rec := postFile(t, router, "/api/v1/datasets/not-a-uuid/series/pioggia/import", "file", validSeriesFile())

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid dataset UUID.")
}

func TestSeriesEndpointsRejectUnknownType(t *testing.T) {
	router := newSeriesRouter(newMemoryStore())
	path := fmt.Sprintf("/api/v1/datasets/%s/series/temperature/import", uuid.New())

	rec := postFile(t, router, path, "file", validSeriesFile())

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid series type.")
}
