package config

import "testing"

func TestDefaultMatchesEngineDefaults(t *testing.T) {
	c := Default()
	if c.CapacityCap != 5_592_405 {
		t.Errorf("CapacityCap = %d, want 5592405", c.CapacityCap)
	}
	if c.ThinWallFraction != 0.005 {
		t.Errorf("ThinWallFraction = %v, want 0.005", c.ThinWallFraction)
	}
}

func TestResolveKeepsNonZeroOverrides(t *testing.T) {
	flags := Flags{ThinWallFraction: 0.1, JSON: true}
	c := Resolve(flags)
	if c.ThinWallFraction != 0.1 {
		t.Errorf("ThinWallFraction = %v, want 0.1 (override)", c.ThinWallFraction)
	}
	if c.CapacityCap != Default().CapacityCap {
		t.Errorf("CapacityCap = %d, want the default %d", c.CapacityCap, Default().CapacityCap)
	}
	if !c.JSON {
		t.Error("expected JSON to carry through from flags")
	}
}

func TestEngineConfigProjection(t *testing.T) {
	c := Resolve(Flags{NeedleAspectThreshold: 20})
	ec := c.EngineConfig()
	if ec.NeedleAspectThreshold != 20 {
		t.Errorf("NeedleAspectThreshold = %v, want 20", ec.NeedleAspectThreshold)
	}
}
