package scenario

// FurnitureProfile describes the schematic furniture block for a scenario.
// Dimensions are in inches.
type FurnitureProfile struct {
	Name     string  `json:"name"`
	WidthIn  float64 `json:"width_in"`
	HeightIn float64 `json:"height_in"`
	DepthIn  float64 `json:"depth_in"`
	Color    string  `json:"color"`
}

// Pose is the orientation of the person figure.
type Pose int

const (
	// Seated draws an upright figure in the x=const plane.
	Seated Pose = iota
	// Supine draws a figure lying flat along +x.
	Supine
)

// Layout holds the anchor points and schematic constants shared by the
// furniture, person and sightline builders for one scenario.
type Layout struct {
	Pose Pose `json:"pose"`

	// Person anchor (base of torso for Seated, top of head for Supine).
	PersonXIn float64 `json:"person_x_in"`
	PersonYIn float64 `json:"person_y_in"`
	PersonZIn float64 `json:"person_z_in"`

	// EyeXIn is the x at which the eye marker and the sightline start.
	EyeXIn float64 `json:"eye_x_in"`

	// DefaultEyeHeightIn seeds the eye height control for this scenario.
	DefaultEyeHeightIn float64 `json:"default_eye_height_in"`

	// Furniture blocks: a base block from the floor to BaseTopIn and a
	// secondary block (couch back or headboard) from BaseTopIn to UpperTopIn.
	BaseTopIn  float64 `json:"base_top_in"`
	UpperTopIn float64 `json:"upper_top_in"`
}

// Schematic constants.
const (
	CouchSeatHeightIn = 18.0
	HeadboardRiseIn   = 10.0
	// supinePersonXIn is how far the figure's head sits from the bed head.
	supinePersonXIn = 5.0
)

var profiles = map[Scenario]FurnitureProfile{
	LivingRoom: {Name: "Couch", WidthIn: 86, HeightIn: 36, DepthIn: 36, Color: "brown"},
	Bedroom:    {Name: "Bed", WidthIn: 76, HeightIn: 24, DepthIn: 80, Color: "gray"},
}

// Lookup returns the furniture profile for s.
func Lookup(s Scenario) (FurnitureProfile, error) {
	p, ok := profiles[s]
	if !ok {
		return FurnitureProfile{}, &UnknownScenarioError{Name: s.String()}
	}
	return p, nil
}

// LayoutFor returns the layout rule for s, derived from its furniture profile.
func LayoutFor(s Scenario) (Layout, error) {
	p, err := Lookup(s)
	if err != nil {
		return Layout{}, err
	}
	switch s {
	case LivingRoom:
		return Layout{
			Pose:               Seated,
			PersonXIn:          p.DepthIn / 2,
			PersonZIn:          CouchSeatHeightIn,
			EyeXIn:             p.DepthIn / 2,
			DefaultEyeHeightIn: 42,
			BaseTopIn:          CouchSeatHeightIn,
			UpperTopIn:         p.HeightIn,
		}, nil
	default:
		return Layout{
			Pose:               Supine,
			PersonXIn:          supinePersonXIn,
			PersonZIn:          p.HeightIn,
			EyeXIn:             supinePersonXIn + 5,
			DefaultEyeHeightIn: 30,
			BaseTopIn:          p.HeightIn,
			UpperTopIn:         p.HeightIn + HeadboardRiseIn,
		}, nil
	}
}
