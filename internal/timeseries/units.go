package timeseries

import api "github.com/terrasense/slope-monitor/api/v1alpha1"

// DisplacementMultiplier converts a displacement expressed in the given
// unit to meters. Unrecognized or empty units fall back to centimeters.
func DisplacementMultiplier(unit api.DisplacementUnit) float64 {
	switch unit {
	case api.DisplacementUnitMillimeters:
		return 0.001
	case api.DisplacementUnitMeters:
		return 1.0
	default:
		return 0.01
	}
}

// SecondsPerStep returns the duration of one grid step in seconds for
// the given time unit. Unrecognized or empty units fall back to months.
func SecondsPerStep(unit api.TimeUnit) float64 {
	switch unit {
	case api.TimeUnitDays:
		return 86400
	case api.TimeUnitYears:
		return 31104000
	default:
		return 2592000
	}
}
