package service

import (
	"fmt"
	"strings"

	api "github.com/terrasense/slope-monitor/api/v1alpha1"
)

// ErrDataNotFound reports that one or more required series have not been
// imported for the dataset. Messages carries one bilingual entry per
// missing series type.
type ErrDataNotFound struct {
	error
	Messages []api.LocalizedMessage
}

func NewErrDataNotFound(missing []api.SeriesType) *ErrDataNotFound {
	messages := make([]api.LocalizedMessage, len(missing))
	names := make([]string, len(missing))
	for i, seriesType := range missing {
		messages[i] = dataNotFoundMessage(seriesType)
		names[i] = string(seriesType)
	}
	return &ErrDataNotFound{
		error:    fmt.Errorf("required series not imported: %s", strings.Join(names, ", ")),
		Messages: messages,
	}
}

// ErrCalculationFailed reports a failed engine invocation. Message is
// the bilingual summary shown to the caller; Details carries the raw
// engine error for diagnostics.
type ErrCalculationFailed struct {
	error
	Message api.LocalizedMessage
	Details string
}

func newErrCalculationFailed(it, en string, cause error) *ErrCalculationFailed {
	return &ErrCalculationFailed{
		error:   fmt.Errorf("%s: %w", en, cause),
		Message: api.LocalizedMessage{It: it, En: en},
		Details: cause.Error(),
	}
}

func NewErrAutomaticCalibrationFailed(cause error) *ErrCalculationFailed {
	return newErrCalculationFailed(
		"Errore durante la calibrazione automatica.",
		"Error during automatic calibration.",
		cause,
	)
}

func NewErrWaterTableCalculationFailed(cause error) *ErrCalculationFailed {
	return newErrCalculationFailed(
		"Errore durante il calcolo della falda.",
		"Error during water table calculation.",
		cause,
	)
}

func NewErrPrevisionFailed(cause error) *ErrCalculationFailed {
	return newErrCalculationFailed(
		"Errore durante il calcolo della previsione.",
		"Error during prevision calculation.",
		cause,
	)
}
