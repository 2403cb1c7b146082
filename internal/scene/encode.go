package scene

import (
	"encoding/json"
	"fmt"
)

type encodedPrimitive struct {
	Type Kind            `json:"type"`
	Data json.RawMessage `json:"data"`
}

// MarshalJSON tags each primitive with its kind so renderers outside Go can
// dispatch on it.
func (s Scene) MarshalJSON() ([]byte, error) {
	prims := make([]encodedPrimitive, 0, len(s.Primitives))
	for i, p := range s.Primitives {
		data, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("encode primitive %d: %w", i, err)
		}
		prims = append(prims, encodedPrimitive{Type: p.Kind(), Data: data})
	}
	type sceneAlias Scene
	return json.Marshal(struct {
		sceneAlias
		Primitives []encodedPrimitive `json:"primitives"`
	}{sceneAlias: sceneAlias(s), Primitives: prims})
}

// UnmarshalJSON decodes a scene produced by MarshalJSON.
func (s *Scene) UnmarshalJSON(b []byte) error {
	type sceneAlias Scene
	var raw struct {
		sceneAlias
		Primitives []encodedPrimitive `json:"primitives"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := Scene(raw.sceneAlias)
	out.Primitives = make([]Primitive, 0, len(raw.Primitives))
	for i, ep := range raw.Primitives {
		var (
			p   Primitive
			err error
		)
		switch ep.Type {
		case KindMesh:
			var m Mesh
			err = json.Unmarshal(ep.Data, &m)
			p = m
		case KindPolyline:
			var l Polyline
			err = json.Unmarshal(ep.Data, &l)
			p = l
		case KindMarker:
			var m Marker
			err = json.Unmarshal(ep.Data, &m)
			p = m
		case KindTextLabel:
			var t TextLabel
			err = json.Unmarshal(ep.Data, &t)
			p = t
		default:
			return fmt.Errorf("primitive %d: unknown type %q", i, ep.Type)
		}
		if err != nil {
			return fmt.Errorf("decode primitive %d: %w", i, err)
		}
		out.Primitives = append(out.Primitives, p)
	}
	*s = out
	return nil
}
