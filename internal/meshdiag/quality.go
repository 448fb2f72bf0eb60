package meshdiag

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// qualityResult holds the output of P6.
type qualityResult struct {
	degenerateCount  int
	tinyCount        int
	needleCount      int
	edgeLengthStats  *DistributionStats
	aspectRatioStats *DistributionStats
}

// triangleQuality computes per-triangle edge lengths, area, and aspect
// ratio, then classifies degenerate/tiny/needle triangles (P6). Requires
// s.faceNormals to already be built.
func (s *state) triangleQuality(cfg Config) qualityResult {
	areas := make([]float64, s.t)
	aspects := make([]float64, s.t)
	var edgeLengths []float64

	for t := range s.t {
		a, b, c := s.triVerts(t)
		v0, v1, v2 := s.vertex(a), s.vertex(b), s.vertex(c)
		e0 := r3.Norm(r3.Sub(v1, v0))
		e1 := r3.Norm(r3.Sub(v2, v1))
		e2 := r3.Norm(r3.Sub(v0, v2))
		edgeLengths = append(edgeLengths, e0, e1, e2)

		area := 0.5 * r3.Norm(s.faceNormals[t])
		areas[t] = area

		maxE := math.Max(e0, math.Max(e1, e2))
		hMin := 0.0
		if maxE > 0 {
			hMin = 2 * area / maxE
		}
		aspect := math.Inf(1)
		if area > 0 && hMin >= 1e-10 {
			aspect = maxE / hMin
		}
		aspects[t] = aspect
	}

	// Degenerate: average edge length over the first min(T, 1000) triangles.
	sampleCount := min(s.t, 1000)
	var sampleLen float64
	var sampleSamples int
	for t := range sampleCount {
		a, b, c := s.triVerts(t)
		v0, v1, v2 := s.vertex(a), s.vertex(b), s.vertex(c)
		sampleLen += r3.Norm(r3.Sub(v1, v0)) + r3.Norm(r3.Sub(v2, v1)) + r3.Norm(r3.Sub(v0, v2))
		sampleSamples += 3
	}
	var avgLen float64
	if sampleSamples > 0 {
		avgLen = sampleLen / float64(sampleSamples)
	}
	expectedArea2 := 0.1875 * avgLen * avgLen

	var medianArea float64
	if len(areas) > 0 {
		medianArea = medianOf(areas)
	}

	var r qualityResult
	for t := range s.t {
		area := areas[t]
		if 4*area*area < 1e-8*expectedArea2 {
			r.degenerateCount++
		}
		if area > 0 && area < cfg.TinyAreaFraction*medianArea {
			r.tinyCount++
		}
		if aspects[t] > cfg.NeedleAspectThreshold {
			r.needleCount++
		}
	}

	r.edgeLengthStats = distStats(edgeLengths)

	var finiteAspects []float64
	for _, a := range aspects {
		if !math.IsInf(a, 1) {
			finiteAspects = append(finiteAspects, a)
		}
	}
	r.aspectRatioStats = distStats(finiteAspects)

	return r
}
