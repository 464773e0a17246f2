package timeseries

import (
	"testing"

	"github.com/stretchr/testify/assert"

	api "github.com/terrasense/slope-monitor/api/v1alpha1"
)

func TestDisplacementMultiplier(t *testing.T) {
	assert.Equal(t, 0.001, DisplacementMultiplier(api.DisplacementUnitMillimeters))
	assert.Equal(t, 0.01, DisplacementMultiplier(api.DisplacementUnitCentimeters))
	assert.Equal(t, 1.0, DisplacementMultiplier(api.DisplacementUnitMeters))
	// Unset and unknown units fall back to centimeters.
	assert.Equal(t, 0.01, DisplacementMultiplier(""))
	assert.Equal(t, 0.01, DisplacementMultiplier("feet"))
}

func TestSecondsPerStep(t *testing.T) {
	assert.Equal(t, 86400.0, SecondsPerStep(api.TimeUnitDays))
	assert.Equal(t, 2592000.0, SecondsPerStep(api.TimeUnitMonths))
	assert.Equal(t, 31104000.0, SecondsPerStep(api.TimeUnitYears))
	// Unset and unknown units fall back to months.
	assert.Equal(t, 2592000.0, SecondsPerStep(""))
	assert.Equal(t, 2592000.0, SecondsPerStep("weeks"))
}
