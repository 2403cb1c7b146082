package config

import (
	"github.com/banshee-data/tvmount/internal/geometry"
	"github.com/banshee-data/tvmount/internal/scenario"
)

// Range is an inclusive interval used by the control surface.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies in the range.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// IsFOVPreset reports whether deg is one of the supported presets.
func IsFOVPreset(deg float64) bool {
	for _, p := range geometry.FOVPresets {
		if p.Deg == deg {
			return true
		}
	}
	return false
}

// GetListen returns the HTTP listen address or the default.
func (c *Config) GetListen() string {
	if c.Listen == nil {
		return ":8080"
	}
	return *c.Listen
}

// GetAssetsHost returns the ECharts asset prefix or the default CDN.
func (c *Config) GetAssetsHost() string {
	if c.AssetsHost == nil || *c.AssetsHost == "" {
		return "https://go-echarts.github.io/go-echarts-assets/assets/"
	}
	return *c.AssetsHost
}

// GetChartWidth returns the 3D chart width or the default.
func (c *Config) GetChartWidth() string {
	if c.ChartWidth == nil || *c.ChartWidth == "" {
		return "900px"
	}
	return *c.ChartWidth
}

// GetChartHeight returns the 3D chart height or the default.
func (c *Config) GetChartHeight() string {
	if c.ChartHeight == nil || *c.ChartHeight == "" {
		return "700px"
	}
	return *c.ChartHeight
}

// GetExportDir returns the directory -export writes under, or the default.
func (c *Config) GetExportDir() string {
	if c.ExportDir == nil || *c.ExportDir == "" {
		return "exports"
	}
	return *c.ExportDir
}

// GetDefaultDistanceFt returns the initial viewing distance.
func (c *Config) GetDefaultDistanceFt() float64 {
	if c.DefaultDistanceFt == nil {
		return 10
	}
	return *c.DefaultDistanceFt
}

// GetDefaultFOVDeg returns the initial field of view preset.
func (c *Config) GetDefaultFOVDeg() float64 {
	if c.DefaultFOVDeg == nil {
		return geometry.FOVMixedUse
	}
	return *c.DefaultFOVDeg
}

// GetDefaultScenario returns the scenario shown when none is requested.
func (c *Config) GetDefaultScenario() scenario.Scenario {
	if c.DefaultScenario != nil {
		if s, err := scenario.Parse(*c.DefaultScenario); err == nil {
			return s
		}
	}
	return scenario.LivingRoom
}

// GetDefaultEyeHeightIn returns the initial eye height for s: the configured
// override if any, otherwise the scenario layout's default.
func (c *Config) GetDefaultEyeHeightIn(s scenario.Scenario) float64 {
	switch s {
	case scenario.LivingRoom:
		if c.LivingRoomEyeHeightIn != nil {
			return *c.LivingRoomEyeHeightIn
		}
	case scenario.Bedroom:
		if c.BedroomEyeHeightIn != nil {
			return *c.BedroomEyeHeightIn
		}
	}
	if l, err := scenario.LayoutFor(s); err == nil {
		return l.DefaultEyeHeightIn
	}
	return 42
}

// GetDistanceRangeFt returns the viewing distance control range in feet.
func (c *Config) GetDistanceRangeFt() Range {
	return Range{Min: orDefault(c.DistanceMinFt, 5), Max: orDefault(c.DistanceMaxFt, 20)}
}

// GetEyeHeightRangeIn returns the eye height control range in inches.
func (c *Config) GetEyeHeightRangeIn() Range {
	return Range{Min: orDefault(c.EyeHeightMinIn, 20), Max: orDefault(c.EyeHeightMaxIn, 60)}
}

// GetTVSizeRangeIn returns the TV diagonal control range in inches.
func (c *Config) GetTVSizeRangeIn() Range {
	return Range{Min: orDefault(c.TVSizeMinIn, 32), Max: orDefault(c.TVSizeMaxIn, 85)}
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
