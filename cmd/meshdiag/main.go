// meshdiag inspects a triangle mesh (OBJ, STL, or GLTF/GLB) and reports
// topological and geometric defects: holes, non-manifold edges, pinch
// points, inconsistent winding, degenerate/tiny/needle triangles, duplicate
// vertices, self-intersections, T-junctions, thin walls, and coincident
// faces.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:   "meshdiag",
		Short: "Diagnose topological and geometric defects in a triangle mesh",
		Long: `meshdiag loads a triangle mesh (OBJ, STL, or GLTF/GLB) and runs a battery
of topology and geometry checks against it: watertightness, manifoldness,
winding consistency, triangle quality, duplicate vertices, self-intersections,
T-junctions, thin walls, and coincident faces.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging of load/analyze timings")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newEdgesCmd())
	root.AddCommand(newValenceCmd())
	root.AddCommand(newDihedralCmd())
	root.AddCommand(newPlotCmd())

	if err := fang.Execute(context.Background(), root); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
