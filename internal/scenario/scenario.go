// Package scenario is the closed catalogue of room set-ups the calculator
// knows how to draw. Each Scenario resolves to a FurnitureProfile and a
// Layout rule; the scene builders read anchor points only from the Layout.
package scenario

import (
	"fmt"
	"strings"
)

// Scenario identifies a room/seating context.
type Scenario int

const (
	// LivingRoom is a viewer seated upright on a couch.
	LivingRoom Scenario = iota + 1
	// Bedroom is a viewer lying on a bed.
	Bedroom
)

// Scenario name constants, as accepted by Parse and returned by String.
const (
	LivingRoomName = "living_room"
	BedroomName    = "bedroom"
)

var names = map[Scenario]string{
	LivingRoom: LivingRoomName,
	Bedroom:    BedroomName,
}

// All returns every known scenario in display order.
func All() []Scenario {
	return []Scenario{LivingRoom, Bedroom}
}

// String returns the wire name of the scenario ("living_room", "bedroom").
func (s Scenario) String() string {
	if n, ok := names[s]; ok {
		return n
	}
	return fmt.Sprintf("scenario(%d)", int(s))
}

// Title returns a capitalised label for chart titles, e.g. "Living room".
func (s Scenario) Title() string {
	n := strings.ReplaceAll(s.String(), "_", " ")
	if n == "" {
		return n
	}
	return strings.ToUpper(n[:1]) + n[1:]
}

// Valid reports whether s is one of the catalogued scenarios.
func (s Scenario) Valid() bool {
	_, ok := names[s]
	return ok
}

// Parse maps a wire name to a Scenario. Matching is exact.
func Parse(name string) (Scenario, error) {
	for s, n := range names {
		if n == name {
			return s, nil
		}
	}
	return 0, &UnknownScenarioError{Name: name}
}

// UnknownScenarioError is returned for any identifier outside the catalogue.
type UnknownScenarioError struct {
	Name string
}

func (e *UnknownScenarioError) Error() string {
	return fmt.Sprintf("unknown scenario %q (valid: %s, %s)", e.Name, LivingRoomName, BedroomName)
}

// MarshalText encodes the scenario as its wire name.
func (s Scenario) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &UnknownScenarioError{Name: s.String()}
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a wire name; unknown names are rejected.
func (s *Scenario) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
