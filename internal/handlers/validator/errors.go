package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	api "github.com/terrasense/slope-monitor/api/v1alpha1"
)

// directMessages maps a (field, tag) pair to its bilingual message.
var directMessages = map[[2]string]api.LocalizedMessage{
	{"dataset_uuid", "required"}: {
		It: "Campo 'dataset_uuid' obbligatorio.",
		En: "'dataset_uuid' field is required.",
	},
	{"dataset_uuid", "dataset_uuid"}: {
		It: "UUID dataset non valido.",
		En: "Invalid dataset UUID.",
	},
	{"mode", "calibration_mode"}: {
		It: "Modalità non valida. Usare 'automatic' o 'manual'.",
		En: "Invalid mode. Use 'automatic' or 'manual'.",
	},
	{"prevision_type", "prevision_type"}: {
		It: "Tipo previsione non valido. Usare 'standard' o 'best_fit_viscosity'.",
		En: "Invalid prevision type. Use 'standard' or 'best_fit_viscosity'.",
	},
	{"geometry", "required"}: {
		It: "Campo 'geometry' obbligatorio.",
		En: "'geometry' field is required.",
	},
	{"geotechnical_params", "required"}: {
		It: "Campo 'geotechnical_params' obbligatorio.",
		En: "'geotechnical_params' field is required.",
	},
	{"model_params", "required"}: {
		It: "Campo 'model_params' obbligatorio.",
		En: "'model_params' field is required.",
	},
	{"calibration_params", "required_if"}: {
		It: "Campo 'calibration_params' obbligatorio per modalità manuale.",
		En: "'calibration_params' field is required for manual mode.",
	},
	{"num_harmonics", "gt"}: {
		It: "Il numero di armoniche deve essere positivo.",
		En: "Number of harmonics must be positive.",
	},
	{"displacement_unit", "displacement_unit"}: {
		It: "Unità di spostamento non valida. Usare 'mm', 'cm' o 'm'.",
		En: "Invalid displacement unit. Use 'mm', 'cm' or 'm'.",
	},
	{"time_unit", "time_unit"}: {
		It: "Unità di tempo non valida. Usare 'giorni', 'mesi' o 'anni'.",
		En: "Invalid time unit. Use 'giorni', 'mesi' or 'anni'.",
	},
}

// groupMessages renders the aggregated "missing parameters" message for
// one parameter block.
var groupMessages = map[string][2]string{
	"geometry":            {"Parametri geometria mancanti: %s", "Missing geometry parameters: %s"},
	"calibration_params":  {"Parametri calibrazione mancanti: %s", "Missing calibration parameters: %s"},
	"geotechnical_params": {"Parametri geotecnici mancanti: %s", "Missing geotechnical parameters: %s"},
	"model_params":        {"Parametri modello mancanti: %s", "Missing model parameters: %s"},
}

type localizedEntry struct {
	message *api.LocalizedMessage
	group   string
	fields  []string
}

// Localize turns validator field errors into the bilingual messages of
// the API contract. Missing fields of one parameter block are aggregated
// into a single message listing them all, preserving field order.
func Localize(err error) []api.LocalizedMessage {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []api.LocalizedMessage{{
			It: "Richiesta non valida.",
			En: "Invalid request.",
		}}
	}

	entries := []*localizedEntry{}
	groups := map[string]*localizedEntry{}

	for _, fe := range fieldErrors {
		// Drop the root struct name from the namespace.
		path := strings.SplitN(fe.Namespace(), ".", 2)
		if len(path) < 2 {
			continue
		}
		parts := strings.Split(path[1], ".")

		field := parts[len(parts)-1]
		if msg, ok := directMessages[[2]string{field, fe.Tag()}]; ok {
			m := msg
			entries = append(entries, &localizedEntry{message: &m})
			continue
		}

		// A required error on a field nested in a parameter block joins
		// that block's aggregated message.
		if len(parts) == 2 && fe.Tag() == "required" {
			parent := parts[0]
			if _, ok := groupMessages[parent]; ok {
				entry, ok := groups[parent]
				if !ok {
					entry = &localizedEntry{group: parent}
					groups[parent] = entry
					entries = append(entries, entry)
				}
				entry.fields = append(entry.fields, field)
				continue
			}
		}

		entries = append(entries, &localizedEntry{message: &api.LocalizedMessage{
			It: fmt.Sprintf("Campo '%s' non valido.", field),
			En: fmt.Sprintf("Invalid '%s' field.", field),
		}})
	}

	messages := make([]api.LocalizedMessage, 0, len(entries))
	for _, entry := range entries {
		if entry.message != nil {
			messages = append(messages, *entry.message)
			continue
		}
		formats := groupMessages[entry.group]
		list := strings.Join(entry.fields, ", ")
		messages = append(messages, api.LocalizedMessage{
			It: fmt.Sprintf(formats[0], list),
			En: fmt.Sprintf(formats[1], list),
		})
	}

	return messages
}
