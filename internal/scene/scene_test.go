package scene

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/tvmount/internal/geometry"
	"github.com/banshee-data/tvmount/internal/scenario"
)

func livingRoom() geometry.ViewingParameters {
	return geometry.ViewingParameters{
		ViewingDistanceFt: 10,
		EyeHeightIn:       42,
		TVSizeIn:          74,
		Scenario:          scenario.LivingRoom,
		FOVDeg:            30,
	}
}

func bedroom() geometry.ViewingParameters {
	return geometry.ViewingParameters{
		ViewingDistanceFt: 8,
		EyeHeightIn:       30,
		TVSizeIn:          55,
		Scenario:          scenario.Bedroom,
		FOVDeg:            40,
	}
}

func markers(s Scene) []Marker {
	var out []Marker
	for _, p := range s.Primitives {
		if m, ok := p.(Marker); ok {
			out = append(out, m)
		}
	}
	return out
}

func sightline(t *testing.T, s Scene) Polyline {
	t.Helper()
	for _, p := range s.Primitives {
		if l, ok := p.(Polyline); ok && l.Name == "Sightline" {
			return l
		}
	}
	t.Fatal("no sightline in scene")
	return Polyline{}
}

func TestBuildScene_EyeMarkerMatchesResult(t *testing.T) {
	for _, p := range []geometry.ViewingParameters{livingRoom(), bedroom()} {
		t.Run(p.Scenario.String(), func(t *testing.T) {
			s, r, err := BuildScene(p)
			require.NoError(t, err)

			ms := markers(s)
			require.Len(t, ms, 1)
			assert.Equal(t, "Eyes", ms[0].Label)
			assert.Equal(t, r.EyeHeightIn, ms[0].Point.Z)

			line := sightline(t, s)
			require.Len(t, line.Points, 2)
			assert.Equal(t, ms[0].Point, line.Points[0], "sightline must start at the eyes")
			assert.Equal(t, r3.Vec{X: p.DistanceIn(), Y: 0, Z: r.TVCenterHeightIn}, line.Points[1])
			assert.True(t, line.Dashed)
		})
	}
}

func TestBuildScene_EyeX(t *testing.T) {
	s, _, err := BuildScene(livingRoom())
	require.NoError(t, err)
	assert.Equal(t, 18.0, markers(s)[0].Point.X)

	s, _, err = BuildScene(bedroom())
	require.NoError(t, err)
	assert.Equal(t, 10.0, markers(s)[0].Point.X)
}

func TestBuildScene_Idempotent(t *testing.T) {
	for _, p := range []geometry.ViewingParameters{livingRoom(), bedroom()} {
		s1, r1, err := BuildScene(p)
		require.NoError(t, err)
		s2, r2, err := BuildScene(p)
		require.NoError(t, err)

		if r1 != r2 {
			t.Errorf("results differ: %+v vs %+v", r1, r2)
		}
		if diff := cmp.Diff(s1, s2); diff != "" {
			t.Errorf("scene mismatch (-first +second):\n%s", diff)
		}
	}
}

func TestBuildScene_Concurrent(t *testing.T) {
	want, _, err := BuildScene(livingRoom())
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := livingRoom()
			if i%2 == 1 {
				p = bedroom()
			}
			got, _, err := BuildScene(p)
			if err != nil {
				errs <- err.Error()
				return
			}
			if i%2 == 0 {
				if diff := cmp.Diff(want, got); diff != "" {
					errs <- diff
				}
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func TestBuildScene_PrimitivesWithinAxes(t *testing.T) {
	cases := []geometry.ViewingParameters{livingRoom(), bedroom()}

	// Short room with a long bed and a tall placement.
	tight := bedroom()
	tight.ViewingDistanceFt = 5
	tight.EyeHeightIn = 60
	tight.TVSizeIn = 85
	cases = append(cases, tight)

	far := livingRoom()
	far.ViewingDistanceFt = 20
	far.EyeHeightIn = 60
	far.FOVDeg = 40
	cases = append(cases, far)

	for _, p := range cases {
		s, _, err := BuildScene(p)
		require.NoError(t, err)
		for i, prim := range s.Primitives {
			assert.True(t, s.Axes.Contains(prim.Bounds()),
				"primitive %d (%s) bounds %+v outside axes %+v", i, prim.Kind(), prim.Bounds(), s.Axes)
		}
	}
}

func TestBuildScene_Axes(t *testing.T) {
	s, r, err := BuildScene(livingRoom())
	require.NoError(t, err)

	room := RoomWidthIn(86, r.TVWidthIn)
	assert.Equal(t, 106.0, room)
	assert.Equal(t, Range{Min: 0, Max: 130}, s.Axes.X)
	assert.Equal(t, Range{Min: -63, Max: 63}, s.Axes.Y)
	assert.Equal(t, Range{Min: 0, Max: CeilingHeightIn}, s.Axes.Z)
	assert.Equal(t, r3.Vec{X: 1, Y: 1, Z: 0.5}, s.Aspect)
	assert.Equal(t, "3D TV Mounting Setup - Living room (FOV: 30°)", s.Title)
}

func TestBuildScene_Order(t *testing.T) {
	s, _, err := BuildScene(livingRoom())
	require.NoError(t, err)

	var names []string
	for _, p := range s.Primitives {
		switch v := p.(type) {
		case Mesh:
			names = append(names, v.Name)
		case Polyline:
			names = append(names, v.Name)
		case Marker:
			names = append(names, v.Label)
		case TextLabel:
			names = append(names, "label")
		}
	}
	want := []string{
		"Room",
		"Couch seat", "Couch back",
		"Torso", "Head", "Legs", "Arms", "Eyes",
		"TV",
		"Sightline",
		"label", "label", "label", "label", "label", "label", "label",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("primitive order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildScene_Errors(t *testing.T) {
	p := livingRoom()
	p.FOVDeg = 180
	s, r, err := BuildScene(p)
	var ipe *geometry.InvalidParameterError
	require.True(t, errors.As(err, &ipe), "got %v", err)
	assert.Empty(t, s.Primitives)
	assert.Equal(t, geometry.Result{}, r)

	p = livingRoom()
	p.ViewingDistanceFt = 0
	_, _, err = BuildScene(p)
	assert.True(t, errors.As(err, &ipe), "got %v", err)

	p = livingRoom()
	p.Scenario = scenario.Scenario(99)
	s, r, err = BuildScene(p)
	var use *scenario.UnknownScenarioError
	require.True(t, errors.As(err, &use), "got %v", err)
	assert.Empty(t, s.Primitives)
	assert.Equal(t, geometry.Result{}, r)
}

func TestRoom(t *testing.T) {
	prims := Room(120, 106)
	require.Len(t, prims, 1)
	m := prims[0].(Mesh)
	assert.Len(t, m.Vertices, 8)
	assert.Len(t, m.Faces, 12)
	assert.Equal(t, 0.2, m.Opacity)
	b := m.Bounds()
	assert.Equal(t, r3.Vec{X: 0, Y: -53, Z: 0}, b.Min)
	assert.Equal(t, r3.Vec{X: 120, Y: 53, Z: 120}, b.Max)
	for _, f := range m.Faces {
		for _, idx := range f {
			assert.Less(t, idx, len(m.Vertices))
		}
	}
}

func TestRoomWidthIn(t *testing.T) {
	assert.Equal(t, 106.0, RoomWidthIn(86, 64.38))
	assert.InDelta(t, 96.0, RoomWidthIn(76, 73.95), 1e-9)
	assert.Equal(t, 107.0, RoomWidthIn(76, 87))
}

func TestFurniture(t *testing.T) {
	couch, _ := scenario.Lookup(scenario.LivingRoom)
	couchLayout, _ := scenario.LayoutFor(scenario.LivingRoom)
	prims := Furniture(couch, couchLayout)
	require.Len(t, prims, 2)
	seat, back := prims[0].(Mesh), prims[1].(Mesh)
	assert.Equal(t, 0.0, seat.Bounds().Min.Z)
	assert.Equal(t, 18.0, seat.Bounds().Max.Z)
	assert.Equal(t, 18.0, back.Bounds().Min.Z)
	assert.Equal(t, 36.0, back.Bounds().Max.Z)
	assert.Equal(t, r3.Vec{X: 36, Y: 43, Z: 36}, back.Bounds().Max)
	assert.Equal(t, "brown", seat.Color)

	bed, _ := scenario.Lookup(scenario.Bedroom)
	bedLayout, _ := scenario.LayoutFor(scenario.Bedroom)
	prims = Furniture(bed, bedLayout)
	require.Len(t, prims, 2)
	base, head := prims[0].(Mesh), prims[1].(Mesh)
	assert.Equal(t, "Bed", base.Name)
	assert.Equal(t, 24.0, base.Bounds().Max.Z)
	assert.Equal(t, 24.0, head.Bounds().Min.Z)
	assert.Equal(t, 34.0, head.Bounds().Max.Z)
	assert.Equal(t, r3.Vec{X: 0, Y: -38, Z: 0}, base.Bounds().Min)
}

func TestPerson_Poses(t *testing.T) {
	seated, _ := scenario.LayoutFor(scenario.LivingRoom)
	prims := Person(seated, 42)
	require.Len(t, prims, 5)
	torso := prims[0].(Mesh)
	assert.Equal(t, 18.0, torso.Bounds().Min.X)
	assert.Equal(t, 18.0, torso.Bounds().Max.X, "seated torso is vertical")
	assert.Equal(t, 38.0, torso.Bounds().Max.Z)

	supine, _ := scenario.LayoutFor(scenario.Bedroom)
	prims = Person(supine, 30)
	require.Len(t, prims, 5)
	for _, p := range prims[:4] {
		b := p.Bounds()
		assert.Equal(t, 24.0, b.Min.Z)
		assert.Equal(t, 24.0, b.Max.Z, "supine figure is flat")
	}
	legs := prims[2].(Mesh)
	assert.Equal(t, 56.0, legs.Bounds().Max.X)
	eyes := prims[4].(Marker)
	assert.Equal(t, r3.Vec{X: 10, Y: 0, Z: 30}, eyes.Point)
}

func TestTV(t *testing.T) {
	r, err := geometry.CalculateTVHeight(livingRoom())
	require.NoError(t, err)
	prims := TV(r, 120)
	require.Len(t, prims, 1)
	b := prims[0].Bounds()
	assert.Equal(t, 120.0, b.Min.X)
	assert.Equal(t, 120.0, b.Max.X)
	assert.InDelta(t, r.TVWidthIn, b.Max.Y-b.Min.Y, 1e-9)
	assert.InDelta(t, r.TVHeightIn, b.Max.Z-b.Min.Z, 1e-9)
	assert.InDelta(t, r.TVCenterHeightIn, (b.Max.Z+b.Min.Z)/2, 1e-9)
	assert.InDelta(t, r.MountingHeightIn, b.Max.Z, 1e-9)
}

func TestAnnotations(t *testing.T) {
	r, err := geometry.CalculateTVHeight(livingRoom())
	require.NoError(t, err)
	couch, _ := scenario.Lookup(scenario.LivingRoom)

	var texts []string
	for _, p := range Annotations(r, 10, couch) {
		l := p.(TextLabel)
		assert.Equal(t, "top center", l.Anchor)
		texts = append(texts, l.Text)
	}
	want := []string{
		`Eye Height: 42.0"`,
		`TV Center: 74.2"`,
		`Viewing Distance: 10.0 ft`,
		`Couch Height: 36"`,
		`TV Bottom: 56.0"`,
		`TV Width: 64.4"`,
		`TV Top: 92.3"`,
	}
	if diff := cmp.Diff(want, texts); diff != "" {
		t.Errorf("annotation text mismatch (-want +got):\n%s", diff)
	}
}

func TestSceneJSON(t *testing.T) {
	s, _, err := BuildScene(bedroom())
	require.NoError(t, err)

	b, err := json.Marshal(s)
	require.NoError(t, err)

	var raw struct {
		Primitives []struct {
			Type string `json:"type"`
		} `json:"primitives"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(b, &raw))
	require.Len(t, raw.Primitives, len(s.Primitives))
	assert.Equal(t, "mesh", raw.Primitives[0].Type)
	assert.Equal(t, s.Title, raw.Title)

	var back Scene
	require.NoError(t, json.Unmarshal(b, &back))
	if diff := cmp.Diff(s, back); diff != "" {
		t.Errorf("decoded scene mismatch (-want +got):\n%s", diff)
	}

	assert.Error(t, json.Unmarshal([]byte(`{"primitives":[{"type":"sphere","data":{}}]}`), &back))
}
