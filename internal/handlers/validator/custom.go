package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	api "github.com/terrasense/slope-monitor/api/v1alpha1"
)

func uuidValidator(fl validator.FieldLevel) bool {
	_, err := uuid.Parse(fl.Field().String())
	return err == nil
}

func calibrationModeValidator(fl validator.FieldLevel) bool {
	switch api.CalibrationMode(fl.Field().String()) {
	case api.CalibrationModeAutomatic, api.CalibrationModeManual:
		return true
	default:
		return false
	}
}

func previsionTypeValidator(fl validator.FieldLevel) bool {
	switch api.PrevisionType(fl.Field().String()) {
	case api.PrevisionTypeStandard, api.PrevisionTypeBestFitViscosity:
		return true
	default:
		return false
	}
}

func displacementUnitValidator(fl validator.FieldLevel) bool {
	switch api.DisplacementUnit(fl.Field().String()) {
	case api.DisplacementUnitMillimeters, api.DisplacementUnitCentimeters, api.DisplacementUnitMeters:
		return true
	default:
		return false
	}
}

func timeUnitValidator(fl validator.FieldLevel) bool {
	switch api.TimeUnit(fl.Field().String()) {
	case api.TimeUnitDays, api.TimeUnitMonths, api.TimeUnitYears:
		return true
	default:
		return false
	}
}
