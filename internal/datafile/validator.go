// Package datafile validates the tab-delimited measurement files
// uploaded by the monitoring stations. Files carry exactly one value per
// grid step, indexed 0 to 11, with a comma as the decimal separator.
package datafile

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	api "github.com/terrasense/slope-monitor/api/v1alpha1"
)

// RequiredRows is the number of data rows every uploaded file must have.
const RequiredRows = 12

// Result collects the outcome of validating one uploaded file. Errors
// and warnings carry both Italian and English wording so the API can
// return them to either audience without a translation layer.
type Result struct {
	Valid    bool                   `json:"valid"`
	Errors   []api.LocalizedMessage `json:"errors"`
	Warnings []api.LocalizedMessage `json:"warnings"`
	Data     []api.DataPoint        `json:"data,omitempty"`
}

func newResult() *Result {
	return &Result{
		Valid:    true,
		Errors:   []api.LocalizedMessage{},
		Warnings: []api.LocalizedMessage{},
	}
}

// AddError records a bilingual error and marks the result invalid.
func (r *Result) AddError(it, en string) {
	r.Valid = false
	r.Errors = append(r.Errors, api.LocalizedMessage{It: it, En: en})
}

// AddWarning records a bilingual warning without invalidating the result.
func (r *Result) AddWarning(it, en string) {
	r.Warnings = append(r.Warnings, api.LocalizedMessage{It: it, En: en})
}

// Values returns the parsed values in row order. Only meaningful when
// the result is valid.
func (r *Result) Values() []float64 {
	values := make([]float64, len(r.Data))
	for i, p := range r.Data {
		values[i] = p.Value
	}
	return values
}

// ParseEuropeanFloat parses a float that uses a comma as the decimal
// separator, accepting a plain dot as well.
func ParseEuropeanFloat(value string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
}

// Validate checks an uploaded file against the station file format:
// tab-delimited, no header, a sequential integer index in the first
// field and a comma-decimal value in the second, exactly RequiredRows
// rows. All rows are checked even after an error so the station operator
// gets the full list of problems in one pass.
func Validate(content []byte) *Result {
	result := newResult()

	text, ok := decode(content)
	if !ok {
		result.AddError(
			"Impossibile decodificare il file. Usare codifica UTF-8 o Latin-1.",
			"Unable to decode file. Use UTF-8 or Latin-1 encoding.",
		)
		return result
	}

	text = strings.TrimPrefix(text, "\ufeff")

	lines := splitLines(text)

	if len(lines) != RequiredRows {
		result.AddError(
			fmt.Sprintf("Il file deve contenere esattamente %d righe. Trovate: %d", RequiredRows, len(lines)),
			fmt.Sprintf("File must contain exactly %d rows. Found: %d", RequiredRows, len(lines)),
		)
	}

	parsed := []api.DataPoint{}
	for i, line := range lines {
		parts := strings.Split(line, "\t")

		if len(parts) != 2 {
			result.AddError(
				fmt.Sprintf("Riga %d: formato non valido. Attesi 2 campi separati da tab, trovati %d", i+1, len(parts)),
				fmt.Sprintf("Row %d: invalid format. Expected 2 tab-separated fields, found %d", i+1, len(parts)),
			)
			continue
		}

		rawIndex := strings.TrimSpace(parts[0])
		index, err := strconv.Atoi(rawIndex)
		if err != nil {
			result.AddError(
				fmt.Sprintf("Riga %d: indice non valido '%s'. Deve essere un intero.", i+1, rawIndex),
				fmt.Sprintf("Row %d: invalid index '%s'. Must be an integer.", i+1, rawIndex),
			)
			continue
		}
		if index != i {
			result.AddError(
				fmt.Sprintf("Riga %d: indice non sequenziale. Atteso %d, trovato %d", i+1, i, index),
				fmt.Sprintf("Row %d: non-sequential index. Expected %d, found %d", i+1, i, index),
			)
		}

		rawValue := strings.TrimSpace(parts[1])
		value, err := ParseEuropeanFloat(rawValue)
		if err != nil {
			result.AddError(
				fmt.Sprintf("Riga %d: valore numerico non valido '%s'", i+1, rawValue),
				fmt.Sprintf("Row %d: invalid numeric value '%s'", i+1, rawValue),
			)
			continue
		}

		parsed = append(parsed, api.DataPoint{Index: index, Value: value})
	}

	if result.Valid {
		result.Data = parsed
	}

	return result
}

// decode interprets the raw bytes as UTF-8, falling back to Latin-1 for
// files exported by older station firmware.
func decode(content []byte) (string, bool) {
	if utf8.Valid(content) {
		return string(content), true
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

// splitLines splits the file into non-empty trimmed lines, tolerating
// both Unix and Windows line endings.
func splitLines(text string) []string {
	lines := []string{}
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
