package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/banshee-data/tvmount/internal/scenario"
)

func params(distanceFt, eyeIn, sizeIn, fov float64) ViewingParameters {
	return ViewingParameters{
		ViewingDistanceFt: distanceFt,
		EyeHeightIn:       eyeIn,
		TVSizeIn:          sizeIn,
		Scenario:          scenario.LivingRoom,
		FOVDeg:            fov,
	}
}

func TestCalculateTVHeight_WorkedExample(t *testing.T) {
	r, err := CalculateTVHeight(params(10, 42, 74, 30))
	require.NoError(t, err)

	assert.InDelta(t, 74.15, r.TVCenterHeightIn, 0.01)
	assert.InDelta(t, 92.28, r.MountingHeightIn, 0.01)
	assert.Equal(t, 120.0, r.EyeDistanceIn)
	assert.Equal(t, 42.0, r.EyeHeightIn)
	assert.Equal(t, 15.0, r.OptimalAngleDeg)
}

func TestCalculateTVHeight_Invariants(t *testing.T) {
	for _, size := range []float64{32, 43, 55, 65, 74, 75, 85} {
		for _, fov := range []float64{FOVMixedUse, FOVTHX, 1, 179} {
			for _, dist := range []float64{5, 10, 12.5, 20} {
				r, err := CalculateTVHeight(params(dist, 36, size, fov))
				require.NoError(t, err)

				if !scalar.EqualWithinAbs(r.TVWidthIn/size, 0.87, 1e-9) {
					t.Errorf("width ratio for size %v = %v, want 0.87", size, r.TVWidthIn/size)
				}
				if !scalar.EqualWithinAbs(r.TVHeightIn/size, 0.49, 1e-9) {
					t.Errorf("height ratio for size %v = %v, want 0.49", size, r.TVHeightIn/size)
				}
				if r.OptimalAngleDeg != fov/2 {
					t.Errorf("OptimalAngleDeg = %v, want exactly %v", r.OptimalAngleDeg, fov/2)
				}
				if !scalar.EqualWithinAbs(r.MountingHeightIn, r.TVCenterHeightIn+r.TVHeightIn/2, 1e-9) {
					t.Errorf("mounting %v != centre %v + half height %v", r.MountingHeightIn, r.TVCenterHeightIn, r.TVHeightIn/2)
				}
				assert.InDelta(t, r.MountingHeightIn, r.TVTopIn(), 1e-9)
				assert.InDelta(t, r.TVHeightIn, r.TVTopIn()-r.TVBottomIn(), 1e-9)
			}
		}
	}
}

func TestCalculateTVHeight_CenterOnHalfAngleLine(t *testing.T) {
	r, err := CalculateTVHeight(params(15, 40, 65, FOVTHX))
	require.NoError(t, err)

	rise := r.TVCenterHeightIn - r.EyeHeightIn
	angle := math.Atan2(rise, r.EyeDistanceIn) * 180 / math.Pi
	assert.InDelta(t, r.OptimalAngleDeg, angle, 1e-9)
}

func TestCalculateIdealTVSize(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		fov      float64
		want     int
	}{
		{"10ft mixed use", 10, FOVMixedUse, 74},
		{"10ft THX", 10, FOVTHX, 100},
		{"5ft mixed use", 5, FOVMixedUse, 37},
		{"8ft mixed use", 8, FOVMixedUse, 59},
		{"20ft THX", 20, FOVTHX, 201},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateIdealTVSize(tt.distance, tt.fov)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateIdealTVSize_NearInverse(t *testing.T) {
	size, err := CalculateIdealTVSize(10, 30)
	require.NoError(t, err)
	require.Equal(t, 74, size)

	for _, sc := range scenario.All() {
		p := params(10, 30, float64(size), 30)
		p.Scenario = sc
		r, err := CalculateTVHeight(p)
		require.NoError(t, err)
		assert.Equal(t, 15.0, r.OptimalAngleDeg)
		assert.InDelta(t, 64.38, r.TVWidthIn, 0.01)
	}
}

func TestIdealTVWidthIn(t *testing.T) {
	w, err := IdealTVWidthIn(10, 30)
	require.NoError(t, err)
	assert.InDelta(t, 64.31, w, 0.01)
}

func TestCalculateTVHeight_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		p     ViewingParameters
		field string
	}{
		{"zero distance", params(0, 42, 55, 30), "viewing_distance_ft"},
		{"negative distance", params(-3, 42, 55, 30), "viewing_distance_ft"},
		{"zero eye height", params(10, 0, 55, 30), "eye_height_in"},
		{"zero size", params(10, 42, 0, 30), "tv_size_in"},
		{"zero fov", params(10, 42, 55, 0), "fov_deg"},
		{"straight fov", params(10, 42, 55, 180), "fov_deg"},
		{"negative fov", params(10, 42, 55, -30), "fov_deg"},
		{"NaN distance", params(math.NaN(), 42, 55, 30), "viewing_distance_ft"},
		{"Inf eye", params(10, math.Inf(1), 55, 30), "eye_height_in"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := CalculateTVHeight(tt.p)
			require.Error(t, err)
			assert.Equal(t, Result{}, r)

			var ipe *InvalidParameterError
			require.True(t, errors.As(err, &ipe), "error %v is not InvalidParameterError", err)
			assert.Equal(t, tt.field, ipe.Field)
		})
	}
}

func TestCalculateIdealTVSize_RejectsInvalid(t *testing.T) {
	for _, tc := range []struct{ distance, fov float64 }{{0, 30}, {10, 0}, {10, 180}} {
		_, err := CalculateIdealTVSize(tc.distance, tc.fov)
		var ipe *InvalidParameterError
		assert.True(t, errors.As(err, &ipe), "distance=%v fov=%v: got %v", tc.distance, tc.fov, err)
	}
}

func TestInvalidParameterError_Message(t *testing.T) {
	err := &InvalidParameterError{Field: "fov_deg", Value: 180, Reason: "must be between 0 and 180 exclusive"}
	assert.Equal(t, "invalid fov_deg 180: must be between 0 and 180 exclusive", err.Error())
}
