package api

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/tvmount/internal/config"
	"github.com/banshee-data/tvmount/internal/scenario"
	"github.com/banshee-data/tvmount/internal/scene"
	"github.com/banshee-data/tvmount/internal/testutil"
	"github.com/banshee-data/tvmount/internal/version"
)

func newTestHandler() http.Handler {
	return NewServer(config.EmptyConfig()).Handler()
}

func TestSceneEndpoint_Defaults(t *testing.T) {
	w := testutil.Serve(newTestHandler(), http.MethodGet, "/api/scene")
	testutil.AssertStatusCode(t, w.Code, http.StatusOK)
	testutil.AssertContentType(t, w, "application/json")

	var resp SceneResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, scenario.LivingRoom, resp.Selection.Params.Scenario)
	assert.Equal(t, 74, resp.Selection.IdealSizeIn)
	assert.InDelta(t, 74.15, resp.Result.TVCenterHeightIn, 0.01)
	assert.InDelta(t, 92.28, resp.Result.MountingHeightIn, 0.01)
	assert.Len(t, resp.Metrics, 5)
	require.NotEmpty(t, resp.Scene.Primitives)
	_, isMesh := resp.Scene.Primitives[0].(scene.Mesh)
	assert.True(t, isMesh, "first primitive should be the room mesh")
}

func TestSceneEndpoint_Bedroom(t *testing.T) {
	w := testutil.Serve(newTestHandler(), http.MethodGet, "/api/scene?scenario=bedroom&distance_ft=8&fov=40")
	testutil.AssertStatusCode(t, w.Code, http.StatusOK)

	var resp SceneResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, scenario.Bedroom, resp.Selection.Params.Scenario)
	assert.Equal(t, 30.0, resp.Selection.Params.EyeHeightIn)
	assert.Equal(t, 40.0, resp.Selection.Params.FOVDeg)
	assert.Contains(t, resp.Scene.Title, "Bedroom")
}

func TestBadRequests(t *testing.T) {
	h := newTestHandler()
	tests := []struct {
		name string
		path string
	}{
		{"unknown scenario", "/api/scene?scenario=garage"},
		{"unsupported fov", "/api/scene?fov=35"},
		{"unparseable distance", "/api/scene?distance_ft=far"},
		{"nan eye height", "/chart?eye_height_in=NaN"},
		{"bad size on png", "/elevation.png?tv_size_in=big"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.Serve(h, http.MethodGet, tt.path)
			testutil.AssertStatusCode(t, w.Code, http.StatusBadRequest)
			testutil.AssertContentType(t, w, "application/json")

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler()
	for _, path := range []string{"/", "/chart", "/api/scene", "/api/ideal-size", "/explain.png", "/api/version"} {
		w := testutil.Serve(h, http.MethodPost, path)
		testutil.AssertStatusCode(t, w.Code, http.StatusMethodNotAllowed)
	}
}

func TestIndex(t *testing.T) {
	h := newTestHandler()

	w := testutil.Serve(h, http.MethodGet, "/")
	testutil.AssertStatusCode(t, w.Code, http.StatusOK)
	testutil.AssertContentType(t, w, "text/html")

	body := w.Body.String()
	assert.Contains(t, body, "Ideal TV size: 74 inches")
	assert.Contains(t, body, "Living room")
	assert.Contains(t, body, "Mixed Use (30°)")
	assert.Contains(t, body, "/chart?distance_ft=10&amp;eye_height_in=42")
	assert.Contains(t, body, "TV Center Height")

	w = testutil.Serve(h, http.MethodGet, "/missing")
	testutil.AssertStatusCode(t, w.Code, http.StatusNotFound)
}

func TestChart(t *testing.T) {
	w := testutil.Serve(newTestHandler(), http.MethodGet, "/chart?scenario=bedroom")
	testutil.AssertStatusCode(t, w.Code, http.StatusOK)
	testutil.AssertContentType(t, w, "text/html")
	body := w.Body.String()
	assert.Contains(t, body, "echarts")
	assert.Contains(t, body, "3D TV Mounting Setup - Bedroom")
}

func TestPNGEndpoints(t *testing.T) {
	h := newTestHandler()
	for _, path := range []string{"/elevation.png", "/explain.png?fov=40&distance_ft=12"} {
		t.Run(path, func(t *testing.T) {
			w := testutil.Serve(h, http.MethodGet, path)
			testutil.AssertStatusCode(t, w.Code, http.StatusOK)
			testutil.AssertContentType(t, w, "image/png")

			img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
			require.NoError(t, err)
			assert.Positive(t, img.Bounds().Dx())
		})
	}
}

func TestExplain(t *testing.T) {
	w := testutil.Serve(newTestHandler(), http.MethodGet, "/explain?distance_ft=10&fov=30")
	testutil.AssertStatusCode(t, w.Code, http.StatusOK)
	testutil.AssertContentType(t, w, "text/plain")
	assert.Contains(t, w.Body.String(), "Ideal TV size: 74 inches")
}

func TestIdealSize(t *testing.T) {
	h := newTestHandler()
	tests := []struct {
		query string
		want  int
	}{
		{"distance_ft=10&fov=30", 74},
		{"distance_ft=10&fov=40", 100},
		{"distance_ft=5&fov=30", 37},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := testutil.Serve(h, http.MethodGet, "/api/ideal-size?"+tt.query)
			testutil.AssertStatusCode(t, w.Code, http.StatusOK)

			var resp IdealSizeResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.IdealTVSizeIn)
		})
	}

	w := testutil.Serve(h, http.MethodGet, "/api/ideal-size?distance_ft=10&fov=30")
	var resp IdealSizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 64.31, resp.IdealTVWidthIn, 0.01)
}

func TestVersion(t *testing.T) {
	w := testutil.Serve(newTestHandler(), http.MethodGet, "/api/version")
	testutil.AssertStatusCode(t, w.Code, http.StatusOK)

	var info version.Info
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, version.Current(), info)
	assert.True(t, strings.HasPrefix(version.String(), "tvmount "))
}
