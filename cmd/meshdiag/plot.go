package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/taigrr/meshdiag/internal/models"
)

// plottableDistribution names the sample sets a mesh yields that are worth
// histogramming; unlike Diagnostics.*Stats (a five-number summary), these
// are the underlying per-triangle/per-edge samples.
type plottableDistribution string

const (
	distEdgeLength  plottableDistribution = "edge-length"
	distAspectRatio plottableDistribution = "aspect-ratio"
	distDihedral    plottableDistribution = "dihedral"
)

func newPlotCmd() *cobra.Command {
	var distName string
	var outPath string

	cmd := &cobra.Command{
		Use:   "plot <model.obj|model.stl|model.glb>",
		Short: "Render a distribution histogram (edge-length, aspect-ratio, or dihedral) to a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			mesh, err := loadMesh(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			dist := plottableDistribution(distName)
			samples, err := sampleDistribution(mesh, dist)
			if err != nil {
				return err
			}
			if len(samples) == 0 {
				return fmt.Errorf("no samples to plot for %q", distName)
			}

			p := plot.New()
			p.Title.Text = fmt.Sprintf("%s distribution: %s", distName, path)

			hist, err := plotter.NewHist(plotter.Values(samples), 32)
			if err != nil {
				return fmt.Errorf("build histogram: %w", err)
			}
			hist.Normalize(1)
			p.Add(hist)

			if err := p.Save(8*vg.Inch, 5*vg.Inch, outPath); err != nil {
				return fmt.Errorf("save plot: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d samples)\n", outPath, len(samples))
			return nil
		},
	}

	cmd.Flags().StringVar(&distName, "dist", string(distEdgeLength), "Distribution to plot: edge-length, aspect-ratio, or dihedral")
	cmd.Flags().StringVar(&outPath, "out", "meshdiag-histogram.png", "Output PNG path")
	return cmd
}

// sampleDistribution recomputes the raw per-element samples backing one of
// Diagnostics' summary statistics fields, since Analyze itself discards
// them once distStats has reduced them.
func sampleDistribution(mesh *models.Mesh, dist plottableDistribution) ([]float64, error) {
	switch dist {
	case distEdgeLength:
		return edgeLengthSamples(mesh), nil
	case distAspectRatio:
		return aspectRatioSamples(mesh), nil
	case distDihedral:
		return dihedralSamples(mesh), nil
	default:
		return nil, fmt.Errorf("unknown distribution %q (want edge-length, aspect-ratio, or dihedral)", dist)
	}
}

func vertexAt(mesh *models.Mesh, i uint32) r3.Vec {
	o := 3 * int(i)
	return r3.Vec{X: float64(mesh.Positions[o]), Y: float64(mesh.Positions[o+1]), Z: float64(mesh.Positions[o+2])}
}

func triVertsAt(mesh *models.Mesh, t int) (a, b, c uint32) {
	o := 3 * t
	return mesh.Indices[o], mesh.Indices[o+1], mesh.Indices[o+2]
}

func edgeLengthSamples(mesh *models.Mesh) []float64 {
	n := mesh.TriangleCount()
	samples := make([]float64, 0, n*3)
	for t := 0; t < n; t++ {
		a, b, c := triVertsAt(mesh, t)
		v0, v1, v2 := vertexAt(mesh, a), vertexAt(mesh, b), vertexAt(mesh, c)
		samples = append(samples,
			r3.Norm(r3.Sub(v1, v0)),
			r3.Norm(r3.Sub(v2, v1)),
			r3.Norm(r3.Sub(v0, v2)),
		)
	}
	return samples
}

func aspectRatioSamples(mesh *models.Mesh) []float64 {
	n := mesh.TriangleCount()
	samples := make([]float64, 0, n)
	for t := 0; t < n; t++ {
		a, b, c := triVertsAt(mesh, t)
		v0, v1, v2 := vertexAt(mesh, a), vertexAt(mesh, b), vertexAt(mesh, c)
		e0 := r3.Norm(r3.Sub(v1, v0))
		e1 := r3.Norm(r3.Sub(v2, v1))
		e2 := r3.Norm(r3.Sub(v0, v2))
		normal := r3.Cross(r3.Sub(v1, v0), r3.Sub(v2, v0))
		area := 0.5 * r3.Norm(normal)
		if area <= 0 {
			continue
		}
		maxE := e0
		if e1 > maxE {
			maxE = e1
		}
		if e2 > maxE {
			maxE = e2
		}
		hMin := 2 * area / maxE
		if hMin < 1e-10 {
			continue
		}
		samples = append(samples, maxE/hMin)
	}
	return samples
}

// dihedralSamples recomputes the per-edge dihedral-angle samples the same
// way the engine's dihedral pass does (180 minus the angle between the two
// face normals, in degrees), since Analyze discards the raw samples once distStats has
// reduced them.
func dihedralSamples(mesh *models.Mesh) []float64 {
	edgeFaces := make(map[[2]uint32][]int)
	n := mesh.TriangleCount()
	normals := make([]r3.Vec, n)
	for t := 0; t < n; t++ {
		a, b, c := triVertsAt(mesh, t)
		v0, v1, v2 := vertexAt(mesh, a), vertexAt(mesh, b), vertexAt(mesh, c)
		normals[t] = r3.Cross(r3.Sub(v1, v0), r3.Sub(v2, v0))
		for _, e := range [3][2]uint32{{a, b}, {b, c}, {c, a}} {
			key := e
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			edgeFaces[key] = append(edgeFaces[key], t)
		}
	}

	var samples []float64
	for _, tris := range edgeFaces {
		if len(tris) != 2 {
			continue
		}
		n1, n2 := normals[tris[0]], normals[tris[1]]
		len1, len2 := r3.Norm(n1), r3.Norm(n2)
		if len1 < 1e-10 || len2 < 1e-10 {
			continue
		}
		cos := r3.Dot(n1, n2) / (len1 * len2)
		cos = math.Max(-1, math.Min(1, cos))
		angle := math.Acos(cos) * 180 / math.Pi
		samples = append(samples, 180-angle)
	}
	return samples
}
