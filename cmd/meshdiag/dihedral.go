package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taigrr/meshdiag/internal/config"
	"github.com/taigrr/meshdiag/internal/meshdiag"
)

func newDihedralCmd() *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:   "dihedral <model.obj|model.stl|model.glb>",
		Short: "Report the dihedral-angle distribution and sharp/coplanar edge counts",
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
			fmt.Fprintf(out, "Sharp edges:      %d\n", d.SharpEdgeCount)
			fmt.Fprintf(out, "Coplanar edges:   %d\n", d.CoplanarEdgeCount)
			fmt.Fprintln(out)
			if d.DihedralAngleStats == nil {
				fmt.Fprintln(out, "No interior edges to measure.")
				return nil
			}
			s := d.DihedralAngleStats
			fmt.Fprintf(out, "Min angle (deg):    %.6g\n", s.Min)
			fmt.Fprintf(out, "Max angle (deg):    %.6g\n", s.Max)
			fmt.Fprintf(out, "Mean angle (deg):   %.6g\n", s.Mean)
			fmt.Fprintf(out, "Median angle (deg): %.6g\n", s.Median)
			fmt.Fprintf(out, "Stddev (deg):       %.6g\n", s.StdDev)
			return nil
		},
	}

	bindThresholdFlags(cmd, &flags)
	return cmd
}
