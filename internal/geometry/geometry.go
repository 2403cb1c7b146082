// Package geometry turns viewing parameters into TV placement measurements.
//
// All lengths are inches unless a field name says otherwise. The screen is
// approximated as 16:9 with width = 0.87×diagonal and height = 0.49×diagonal.
package geometry

import (
	"math"

	"github.com/banshee-data/tvmount/internal/scenario"
)

// Screen proportions relative to the diagonal.
const (
	WidthPerDiagonal  = 0.87
	HeightPerDiagonal = 0.49
	InchesPerFoot     = 12.0
)

// Field of view presets offered by the control surface.
const (
	FOVMixedUse = 30.0
	FOVTHX      = 40.0
)

// FOVPreset is a named field of view option.
type FOVPreset struct {
	Name string  `json:"name"`
	Deg  float64 `json:"deg"`
}

// FOVPresets lists the supported presets, default first.
var FOVPresets = []FOVPreset{
	{Name: "Mixed Use (30°)", Deg: FOVMixedUse},
	{Name: "THX (40°)", Deg: FOVTHX},
}

// ViewingParameters is the full input to one computation.
type ViewingParameters struct {
	ViewingDistanceFt float64           `json:"viewing_distance_ft"`
	EyeHeightIn       float64           `json:"eye_height_in"`
	TVSizeIn          float64           `json:"tv_size_in"`
	Scenario          scenario.Scenario `json:"scenario"`
	FOVDeg            float64           `json:"fov_deg"`
}

// DistanceIn returns the viewing distance converted to inches.
func (p ViewingParameters) DistanceIn() float64 {
	return p.ViewingDistanceFt * InchesPerFoot
}

// Result is the derived placement for one set of ViewingParameters.
type Result struct {
	TVWidthIn        float64 `json:"tv_width_in"`
	TVHeightIn       float64 `json:"tv_height_in"`
	TVCenterHeightIn float64 `json:"tv_center_height_in"`
	MountingHeightIn float64 `json:"mounting_height_in"`
	OptimalAngleDeg  float64 `json:"optimal_angle_deg"`
	EyeHeightIn      float64 `json:"eye_height_in"`
	EyeDistanceIn    float64 `json:"eye_distance_in"`
}

// TVBottomIn is the height of the lower edge of the panel.
func (r Result) TVBottomIn() float64 { return r.TVCenterHeightIn - r.TVHeightIn/2 }

// TVTopIn is the height of the upper edge of the panel.
func (r Result) TVTopIn() float64 { return r.TVCenterHeightIn + r.TVHeightIn/2 }

// CalculateTVHeight places the screen centre on the line rising at half the
// field of view above eye level, at the viewing distance.
func CalculateTVHeight(p ViewingParameters) (Result, error) {
	if err := Validate(p); err != nil {
		return Result{}, err
	}

	d := p.DistanceIn()
	width := p.TVSizeIn * WidthPerDiagonal
	height := p.TVSizeIn * HeightPerDiagonal
	halfAngle := p.FOVDeg / 2
	center := p.EyeHeightIn + d*math.Tan(radians(halfAngle))

	return Result{
		TVWidthIn:        width,
		TVHeightIn:       height,
		TVCenterHeightIn: center,
		MountingHeightIn: center + height/2,
		OptimalAngleDeg:  halfAngle,
		EyeHeightIn:      p.EyeHeightIn,
		EyeDistanceIn:    d,
	}, nil
}

// IdealTVWidthIn is the screen width that subtends fovDeg at the distance.
func IdealTVWidthIn(distanceFt, fovDeg float64) (float64, error) {
	if err := checkPositive("viewing_distance_ft", distanceFt); err != nil {
		return 0, err
	}
	if err := checkFOV(fovDeg); err != nil {
		return 0, err
	}
	d := distanceFt * InchesPerFoot
	return 2 * d * math.Tan(radians(fovDeg/2)), nil
}

// CalculateIdealTVSize returns the diagonal, in whole inches, whose width
// fills fovDeg at the distance. Halves round to even.
func CalculateIdealTVSize(distanceFt, fovDeg float64) (int, error) {
	w, err := IdealTVWidthIn(distanceFt, fovDeg)
	if err != nil {
		return 0, err
	}
	return int(math.RoundToEven(w / WidthPerDiagonal)), nil
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
