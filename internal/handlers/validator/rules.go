package validator

import "github.com/go-playground/validator/v10"

func registerFn(tag string, fn func(fl validator.FieldLevel) bool) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		_ = v.RegisterValidation(tag, fn)
	}
}

func NewCalculationValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("dataset_uuid", uuidValidator),
		},
		{
			Rule: registerFn("calibration_mode", calibrationModeValidator),
		},
		{
			Rule: registerFn("prevision_type", previsionTypeValidator),
		},
		{
			Rule: registerFn("displacement_unit", displacementUnitValidator),
		},
		{
			Rule: registerFn("time_unit", timeUnitValidator),
		},
	}
}
