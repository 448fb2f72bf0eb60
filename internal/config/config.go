// Package config resolves the meshdiag CLI's tunable analysis thresholds
// from command-line flags, filling in the engine's own defaults wherever a
// flag was left at its zero value.
package config

import "github.com/taigrr/meshdiag/internal/meshdiag"

// Config mirrors meshdiag.Config with the same fields, plus a JSON output
// switch and an overlay switch that belong to the CLI rather than the
// engine.
type Config struct {
	CapacityCap            int
	DuplicateVertexEpsilon float64
	ThinWallFraction       float64
	NeedleAspectThreshold  float64
	TinyAreaFraction       float64

	JSON    bool
	Overlay bool
}

// Flags holds the raw CLI flag values bound by cmd/meshdiag before
// Resolve fills in defaults.
type Flags struct {
	CapacityCap            int
	DuplicateVertexEpsilon float64
	ThinWallFraction       float64
	NeedleAspectThreshold  float64
	TinyAreaFraction       float64
	JSON                   bool
	Overlay                bool
}

// Default returns a Config seeded from the engine's own defaults.
func Default() Config {
	d := meshdiag.Default()
	return Config{
		CapacityCap:            d.CapacityCap,
		DuplicateVertexEpsilon: d.DuplicateVertexEpsilon,
		ThinWallFraction:       d.ThinWallFraction,
		NeedleAspectThreshold:  d.NeedleAspectThreshold,
		TinyAreaFraction:       d.TinyAreaFraction,
	}
}

// Resolve builds a Config from flags, keeping the engine default for any
// flag left at its zero value.
func Resolve(flags Flags) Config {
	c := Default()
	if flags.CapacityCap > 0 {
		c.CapacityCap = flags.CapacityCap
	}
	if flags.DuplicateVertexEpsilon > 0 {
		c.DuplicateVertexEpsilon = flags.DuplicateVertexEpsilon
	}
	if flags.ThinWallFraction > 0 {
		c.ThinWallFraction = flags.ThinWallFraction
	}
	if flags.NeedleAspectThreshold > 0 {
		c.NeedleAspectThreshold = flags.NeedleAspectThreshold
	}
	if flags.TinyAreaFraction > 0 {
		c.TinyAreaFraction = flags.TinyAreaFraction
	}
	c.JSON = flags.JSON
	c.Overlay = flags.Overlay
	return c
}

// EngineConfig projects Config down to the fields meshdiag.AnalyzeWithConfig
// accepts.
func (c Config) EngineConfig() meshdiag.Config {
	return meshdiag.Config{
		CapacityCap:            c.CapacityCap,
		DuplicateVertexEpsilon: c.DuplicateVertexEpsilon,
		ThinWallFraction:       c.ThinWallFraction,
		NeedleAspectThreshold:  c.NeedleAspectThreshold,
		TinyAreaFraction:       c.TinyAreaFraction,
	}
}
