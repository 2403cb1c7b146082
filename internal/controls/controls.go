// Package controls is the input and metrics boundary of the calculator. It
// turns loosely typed control values (query strings, form posts, flags) into
// a ViewingParameters value, applying the defaults and clamps of the control
// surface, and formats a Result for display. Clamping happens here and never
// in the geometry package.
package controls

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/banshee-data/tvmount/internal/config"
	"github.com/banshee-data/tvmount/internal/geometry"
	"github.com/banshee-data/tvmount/internal/scenario"
)

// Query parameter names.
const (
	ParamScenario  = "scenario"
	ParamDistance  = "distance_ft"
	ParamEyeHeight = "eye_height_in"
	ParamFOV       = "fov"
	ParamTVSize    = "tv_size_in"
)

// Selection is a fully resolved set of control values, with the ideal size
// the control surface would suggest for them.
type Selection struct {
	Params      geometry.ViewingParameters `json:"params"`
	IdealSizeIn int                        `json:"ideal_tv_size_in"`
	FOVName     string                     `json:"fov_name"`
}

// FieldError reports a control value that could not be parsed at all.
// Out-of-range numbers are clamped rather than rejected.
type FieldError struct {
	Param string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Param, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// ParseQuery resolves control values from q using cfg for defaults and
// ranges. Missing values take their defaults: distance from config, eye
// height per scenario, FOV preset, and TV size from the ideal size for the
// chosen distance and FOV clamped to the size range.
func ParseQuery(q url.Values, cfg *config.Config) (Selection, error) {
	sc := cfg.GetDefaultScenario()
	if v := strings.TrimSpace(q.Get(ParamScenario)); v != "" {
		s, err := scenario.Parse(v)
		if err != nil {
			return Selection{}, err
		}
		sc = s
	}

	distance, err := floatParam(q, ParamDistance, cfg.GetDefaultDistanceFt())
	if err != nil {
		return Selection{}, err
	}
	// The distance control moves in whole feet.
	distance = cfg.GetDistanceRangeFt().Clamp(math.Round(distance))

	eye, err := floatParam(q, ParamEyeHeight, cfg.GetDefaultEyeHeightIn(sc))
	if err != nil {
		return Selection{}, err
	}
	eye = cfg.GetEyeHeightRangeIn().Clamp(eye)

	fov, err := floatParam(q, ParamFOV, cfg.GetDefaultFOVDeg())
	if err != nil {
		return Selection{}, err
	}
	preset, ok := presetFor(fov)
	if !ok {
		return Selection{}, &FieldError{Param: ParamFOV, Value: q.Get(ParamFOV), Err: fmt.Errorf("must be one of 30, 40")}
	}

	ideal, err := geometry.CalculateIdealTVSize(distance, preset.Deg)
	if err != nil {
		return Selection{}, err
	}
	sizeRange := cfg.GetTVSizeRangeIn()
	size, err := floatParam(q, ParamTVSize, sizeRange.Clamp(float64(ideal)))
	if err != nil {
		return Selection{}, err
	}
	size = sizeRange.Clamp(size)

	return Selection{
		Params: geometry.ViewingParameters{
			ViewingDistanceFt: distance,
			EyeHeightIn:       eye,
			TVSizeIn:          size,
			Scenario:          sc,
			FOVDeg:            preset.Deg,
		},
		IdealSizeIn: ideal,
		FOVName:     preset.Name,
	}, nil
}

// Values encodes p back into query parameters understood by ParseQuery.
func Values(p geometry.ViewingParameters) url.Values {
	q := url.Values{}
	q.Set(ParamScenario, p.Scenario.String())
	q.Set(ParamDistance, strconv.FormatFloat(p.ViewingDistanceFt, 'f', -1, 64))
	q.Set(ParamEyeHeight, strconv.FormatFloat(p.EyeHeightIn, 'f', -1, 64))
	q.Set(ParamFOV, strconv.FormatFloat(p.FOVDeg, 'f', -1, 64))
	q.Set(ParamTVSize, strconv.FormatFloat(p.TVSizeIn, 'f', -1, 64))
	return q
}

func floatParam(q url.Values, name string, def float64) (float64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &FieldError{Param: name, Value: raw, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &FieldError{Param: name, Value: raw, Err: fmt.Errorf("must be finite")}
	}
	return v, nil
}

func presetFor(deg float64) (geometry.FOVPreset, bool) {
	for _, p := range geometry.FOVPresets {
		if p.Deg == deg {
			return p, true
		}
	}
	return geometry.FOVPreset{}, false
}
