package rate

import "math"

// Validator rejects implausible quotations. The band is configuration: for
// the storefront's USD/TRY pair it is 20-50, wide enough to survive lira
// swings and tight enough to catch a garbage payload.
type Validator struct {
	min float64
	max float64
}

func NewValidator(min, max float64) Validator {
	return Validator{min: min, max: max}
}

// IsValid reports whether value is a finite positive number inside the band.
// Out-of-range input is an ordinary false, never an error.
func (v Validator) IsValid(value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	if value <= 0 {
		return false
	}
	return value >= v.min && value <= v.max
}

func (v Validator) Bounds() (min, max float64) {
	return v.min, v.max
}
