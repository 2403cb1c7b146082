package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/tvmount/internal/scenario"
)

// DefaultConfigPath is the path to the canonical defaults file.
const DefaultConfigPath = "config/tvmount.defaults.json"

// Config holds server settings and the control-surface ranges. Every field is
// optional; the Get* methods supply the built-in default for a nil field.
type Config struct {
	// Server
	Listen      *string `json:"listen,omitempty"`
	AssetsHost  *string `json:"assets_host,omitempty"`
	ChartWidth  *string `json:"chart_width,omitempty"`  // CSS length like "900px"
	ChartHeight *string `json:"chart_height,omitempty"` // CSS length like "700px"
	ExportDir   *string `json:"export_dir,omitempty"`

	// Control defaults
	DefaultDistanceFt     *float64 `json:"default_distance_ft,omitempty"`
	DefaultFOVDeg         *float64 `json:"default_fov_deg,omitempty"`
	LivingRoomEyeHeightIn *float64 `json:"living_room_eye_height_in,omitempty"`
	BedroomEyeHeightIn    *float64 `json:"bedroom_eye_height_in,omitempty"`
	DefaultScenario       *string  `json:"default_scenario,omitempty"`

	// Control ranges
	DistanceMinFt  *float64 `json:"distance_min_ft,omitempty"`
	DistanceMaxFt  *float64 `json:"distance_max_ft,omitempty"`
	EyeHeightMinIn *float64 `json:"eye_height_min_in,omitempty"`
	EyeHeightMaxIn *float64 `json:"eye_height_max_in,omitempty"`
	TVSizeMinIn    *float64 `json:"tv_size_min_in,omitempty"`
	TVSizeMaxIn    *float64 `json:"tv_size_max_in,omitempty"`
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }

// EmptyConfig returns a Config with all fields nil.
func EmptyConfig() *Config {
	return &Config{}
}

// DefaultConfig returns a Config with every field populated from the
// built-in defaults.
func DefaultConfig() *Config {
	c := EmptyConfig()
	return &Config{
		Listen:                ptrString(c.GetListen()),
		AssetsHost:            ptrString(c.GetAssetsHost()),
		ChartWidth:            ptrString(c.GetChartWidth()),
		ChartHeight:           ptrString(c.GetChartHeight()),
		ExportDir:             ptrString(c.GetExportDir()),
		DefaultDistanceFt:     ptrFloat64(c.GetDefaultDistanceFt()),
		DefaultFOVDeg:         ptrFloat64(c.GetDefaultFOVDeg()),
		LivingRoomEyeHeightIn: ptrFloat64(c.GetDefaultEyeHeightIn(scenario.LivingRoom)),
		BedroomEyeHeightIn:    ptrFloat64(c.GetDefaultEyeHeightIn(scenario.Bedroom)),
		DefaultScenario:       ptrString(c.GetDefaultScenario().String()),
		DistanceMinFt:         ptrFloat64(c.GetDistanceRangeFt().Min),
		DistanceMaxFt:         ptrFloat64(c.GetDistanceRangeFt().Max),
		EyeHeightMinIn:        ptrFloat64(c.GetEyeHeightRangeIn().Min),
		EyeHeightMaxIn:        ptrFloat64(c.GetEyeHeightRangeIn().Max),
		TVSizeMinIn:           ptrFloat64(c.GetTVSizeRangeIn().Min),
		TVSizeMaxIn:           ptrFloat64(c.GetTVSizeRangeIn().Max),
	}
}

// LoadConfig loads a Config from a JSON file.
// The file must have a .json extension and be under 1MB. Fields omitted from
// the file keep their built-in defaults.
func LoadConfig(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads DefaultConfigPath, searching the current
// directory and its parents. Panics if the file cannot be loaded; intended
// for test setup.
func MustLoadDefaultConfig() *Config {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,       // from cmd/tvmount/
		"../../" + DefaultConfigPath,    // from internal/config/
		"../../../" + DefaultConfigPath, // deeper packages
	}
	for _, path := range candidates {
		if cfg, err := LoadConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	if c.Listen != nil && *c.Listen == "" {
		return fmt.Errorf("listen must not be empty when set")
	}

	if c.DefaultScenario != nil {
		if _, err := scenario.Parse(*c.DefaultScenario); err != nil {
			return fmt.Errorf("default_scenario: %w", err)
		}
	}

	if c.DefaultFOVDeg != nil && !IsFOVPreset(*c.DefaultFOVDeg) {
		return fmt.Errorf("default_fov_deg must be 30 or 40, got %g", *c.DefaultFOVDeg)
	}

	ranges := []struct {
		name string
		r    Range
	}{
		{"distance", c.GetDistanceRangeFt()},
		{"eye_height", c.GetEyeHeightRangeIn()},
		{"tv_size", c.GetTVSizeRangeIn()},
	}
	for _, nr := range ranges {
		if nr.r.Min <= 0 {
			return fmt.Errorf("%s_min must be positive, got %g", nr.name, nr.r.Min)
		}
		if nr.r.Max < nr.r.Min {
			return fmt.Errorf("%s_max (%g) must not be below %s_min (%g)", nr.name, nr.r.Max, nr.name, nr.r.Min)
		}
	}

	if d := c.GetDefaultDistanceFt(); !c.GetDistanceRangeFt().Contains(d) {
		return fmt.Errorf("default_distance_ft %g outside distance range", d)
	}
	for _, s := range scenario.All() {
		if e := c.GetDefaultEyeHeightIn(s); !c.GetEyeHeightRangeIn().Contains(e) {
			return fmt.Errorf("default eye height %g for %s outside eye height range", e, s)
		}
	}

	return nil
}
