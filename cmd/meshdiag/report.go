package main

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/taigrr/meshdiag/internal/meshdiag"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// renderReport formats a Diagnostics record as a styled, human-readable
// report for the analyze subcommand's plain-text output path.
func renderReport(name string, d *meshdiag.Diagnostics) string {
	var b strings.Builder

	fmt.Fprintln(&b, headingStyle.Render(name))
	fmt.Fprintf(&b, "%d vertices, %d triangles\n", d.VertexCount, d.TriangleCount)
	if d.BoundingBox != nil {
		bb := d.BoundingBox
		fmt.Fprintf(&b, "bounds: [%.4g %.4g %.4g] .. [%.4g %.4g %.4g] (diagonal %.4g)\n",
			bb.Min[0], bb.Min[1], bb.Min[2], bb.Max[0], bb.Max[1], bb.Max[2], bb.Diagonal)
	}
	b.WriteString("\n")

	if d.WindingCheckSkipped {
		fmt.Fprintln(&b, warnStyle.Render(fmt.Sprintf(
			"triangle count exceeds the capacity cap: only vertex/triangle counts and bounds were computed")))
		return boxStyle.Render(b.String())
	}

	fmt.Fprintln(&b, headingStyle.Render("Topology"))
	writeFlag(&b, "watertight", d.IsWatertight)
	writeFlag(&b, "manifold", d.IsManifold)
	fmt.Fprintf(&b, "  edges: %d (boundary %d, non-manifold %d)\n", d.EdgeCount, d.BoundaryEdgeCount, d.NonManifoldEdgeCount)
	fmt.Fprintf(&b, "  connected components: %d, Euler characteristic: %d, isolated vertices: %d\n",
		d.ConnectedComponents, d.EulerCharacteristic, d.IsolatedVertexCount)
	if d.HasNonManifoldVertices {
		fmt.Fprintln(&b, badStyle.Render(fmt.Sprintf("  non-manifold vertices: %d", d.NonManifoldVertexCount)))
	}
	writeFlag(&b, "consistent winding", d.HasConsistentWinding)
	fmt.Fprintf(&b, "  winding-inconsistent edges: %d (%.2f%% consistent)\n", d.WindingInconsistentEdgeCount, d.WindingConsistencyPercent)
	b.WriteString("\n")

	fmt.Fprintln(&b, headingStyle.Render("Geometry"))
	fmt.Fprintf(&b, "  degenerate: %d, tiny: %d, needle: %d\n", d.DegenerateTriangleCount, d.TinyTriangleCount, d.NeedleTriangleCount)
	fmt.Fprintf(&b, "  duplicate vertices: %d\n", d.DuplicateVertexCount)
	fmt.Fprintf(&b, "  self-intersections: %d, T-junctions: %d, coincident faces: %d\n",
		d.SelfIntersectionCount, d.TJunctionCount, d.CoincidentFaceCount)
	fmt.Fprintf(&b, "  thin walls (threshold %.4g x diagonal): %d\n", d.ThinWallThreshold, d.ThinWallCount)
	fmt.Fprintf(&b, "  sharp edges: %d, coplanar edges: %d\n", d.SharpEdgeCount, d.CoplanarEdgeCount)
	b.WriteString("\n")

	fmt.Fprintln(&b, headingStyle.Render("Distributions"))
	writeStats(&b, "edge length", d.EdgeLengthStats)
	writeStats(&b, "aspect ratio", d.AspectRatioStats)
	writeStats(&b, "dihedral angle (deg)", d.DihedralAngleStats)

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func writeFlag(b *strings.Builder, label string, ok bool) {
	if ok {
		fmt.Fprintln(b, okStyle.Render(fmt.Sprintf("  %s: yes", label)))
	} else {
		fmt.Fprintln(b, badStyle.Render(fmt.Sprintf("  %s: no", label)))
	}
}

func writeStats(b *strings.Builder, label string, s *meshdiag.DistributionStats) {
	if s == nil {
		fmt.Fprintf(b, "  %s: n/a\n", label)
		return
	}
	fmt.Fprintf(b, "  %s: min %.4g, median %.4g, mean %.4g, max %.4g, stddev %.4g\n",
		label, s.Min, s.Median, s.Mean, s.Max, s.StdDev)
}
