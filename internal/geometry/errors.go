package geometry

import (
	"fmt"
	"math"
)

// InvalidParameterError reports a viewing parameter outside the domain the
// calculator accepts. Values are never clamped here.
type InvalidParameterError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s %g: %s", e.Field, e.Value, e.Reason)
}

// Validate checks p against the calculator's domain. Scenario is not checked
// here; the scenario catalogue owns that.
func Validate(p ViewingParameters) error {
	if err := checkPositive("viewing_distance_ft", p.ViewingDistanceFt); err != nil {
		return err
	}
	if err := checkPositive("eye_height_in", p.EyeHeightIn); err != nil {
		return err
	}
	if err := checkPositive("tv_size_in", p.TVSizeIn); err != nil {
		return err
	}
	return checkFOV(p.FOVDeg)
}

func checkPositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidParameterError{Field: field, Value: v, Reason: "must be finite"}
	}
	if v <= 0 {
		return &InvalidParameterError{Field: field, Value: v, Reason: "must be greater than 0"}
	}
	return nil
}

func checkFOV(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidParameterError{Field: "fov_deg", Value: v, Reason: "must be finite"}
	}
	if v <= 0 || v >= 180 {
		return &InvalidParameterError{Field: "fov_deg", Value: v, Reason: "must be between 0 and 180 exclusive"}
	}
	return nil
}
