// Package v1alpha1 contains the HTTP handlers of the public API.
package v1alpha1

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	api "github.com/terrasense/slope-monitor/api/v1alpha1"
)

// maxUploadBytes bounds the size of an uploaded data file. Station files
// are 12 short rows; anything close to this limit is garbage.
const maxUploadBytes = 1 << 20

func respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.S().Named("http").Errorf("failed to encode response: %v", err)
	}
}

func respondErrors(w http.ResponseWriter, status int, messages ...api.LocalizedMessage) {
	respond(w, status, api.ErrorResponse{
		Success: false,
		Errors:  messages,
	})
}

var invalidDatasetUUIDMessage = api.LocalizedMessage{
	It: "UUID dataset non valido.",
	En: "Invalid dataset UUID.",
}

var invalidSeriesTypeMessage = api.LocalizedMessage{
	It: "Tipo di serie non valido. Usare 'pioggia', 'falda' o 'spostamento'.",
	En: "Invalid series type. Use 'pioggia', 'falda' or 'spostamento'.",
}

var noFileUploadedMessage = api.LocalizedMessage{
	It: "Nessun file caricato. Utilizzare il campo 'file'.",
	En: "No file uploaded. Use the 'file' field.",
}
