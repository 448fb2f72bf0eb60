package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taigrr/meshdiag/internal/config"
	"github.com/taigrr/meshdiag/internal/meshdiag"
)

func newEdgesCmd() *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:   "edges <model.obj|model.stl|model.glb>",
		Short: "Report edge counts and the edge-length distribution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			mesh, err := loadMesh(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			cfg := config.Resolve(flags)
			result, err := meshdiag.AnalyzeWithConfig(mesh.Positions, mesh.Indices, cfg.EngineConfig())
			if err != nil {
				return fmt.Errorf("analyze %s: %w", path, err)
			}
			d := result.Diagnostics

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total edges:          %d\n", d.EdgeCount)
			fmt.Fprintf(out, "Boundary edges:       %d\n", d.BoundaryEdgeCount)
			fmt.Fprintf(out, "Non-manifold edges:   %d\n", d.NonManifoldEdgeCount)
			fmt.Fprintf(out, "Sharp edges:          %d\n", d.SharpEdgeCount)
			fmt.Fprintf(out, "Coplanar edges:       %d\n", d.CoplanarEdgeCount)
			fmt.Fprintln(out)
			if d.EdgeLengthStats == nil {
				fmt.Fprintln(out, "No edges to measure.")
				return nil
			}
			s := d.EdgeLengthStats
			fmt.Fprintf(out, "Min edge length:      %.6g\n", s.Min)
			fmt.Fprintf(out, "Max edge length:      %.6g\n", s.Max)
			fmt.Fprintf(out, "Mean edge length:     %.6g\n", s.Mean)
			fmt.Fprintf(out, "Median edge length:   %.6g\n", s.Median)
			fmt.Fprintf(out, "Stddev edge length:   %.6g\n", s.StdDev)
			return nil
		},
	}

	bindThresholdFlags(cmd, &flags)
	return cmd
}
