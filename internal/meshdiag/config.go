package meshdiag

// Config holds the analyzer's tunable thresholds. Every field has a
// documented default (per spec §4); Resolve fills in any zero-valued field
// with that default, so callers can override only the thresholds they care
// about and leave the rest at Default().
type Config struct {
	// CapacityCap is the triangle-count short-circuit threshold (§4.1).
	// Above this, Analyze returns a capacity-limited result instead of
	// running the full pipeline.
	CapacityCap int

	// DuplicateVertexEpsilon is the absolute distance ε used by P7; the
	// duplicate-vertex spatial hash cell size is 10·ε.
	DuplicateVertexEpsilon float64

	// ThinWallFraction is the multiplier against the bounding diagonal
	// that produces the thin-wall proximity threshold in P12.
	ThinWallFraction float64

	// NeedleAspectThreshold is the minimum triangle aspect ratio
	// classified as a needle in P6.
	NeedleAspectThreshold float64

	// TinyAreaFraction is the fraction of the median triangle area below
	// which a (non-zero-area) triangle is classified as tiny in P6.
	TinyAreaFraction float64
}

// Default returns the Config matching the thresholds stated in spec §4.
func Default() Config {
	return Config{
		CapacityCap:            5_592_405,
		DuplicateVertexEpsilon: 1e-6,
		ThinWallFraction:       0.005,
		NeedleAspectThreshold:  10,
		TinyAreaFraction:       0.01,
	}
}

// Resolve fills every zero-valued field of c with the corresponding
// Default() value, and returns the result. The caller's non-zero overrides
// are preserved.
func (c Config) Resolve() Config {
	d := Default()
	if c.CapacityCap == 0 {
		c.CapacityCap = d.CapacityCap
	}
	if c.DuplicateVertexEpsilon == 0 {
		c.DuplicateVertexEpsilon = d.DuplicateVertexEpsilon
	}
	if c.ThinWallFraction == 0 {
		c.ThinWallFraction = d.ThinWallFraction
	}
	if c.NeedleAspectThreshold == 0 {
		c.NeedleAspectThreshold = d.NeedleAspectThreshold
	}
	if c.TinyAreaFraction == 0 {
		c.TinyAreaFraction = d.TinyAreaFraction
	}
	return c
}
