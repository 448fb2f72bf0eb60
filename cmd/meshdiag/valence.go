package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/taigrr/meshdiag/internal/config"
	"github.com/taigrr/meshdiag/internal/meshdiag"
)

func newValenceCmd() *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:   "valence <model.obj|model.stl|model.glb>",
		Short: "Report the vertex valence histogram",
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
			hist := result.Diagnostics.ValenceDistribution
			if len(hist) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No vertices to measure.")
				return nil
			}

			valences := make([]int, 0, len(hist))
			maxCount := 0
			for v, c := range hist {
				valences = append(valences, v)
				if c > maxCount {
					maxCount = c
				}
			}
			sort.Ints(valences)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-10s %-8s %s\n", "Valence", "Count", "Histogram")
			const barWidth = 40
			for _, v := range valences {
				c := hist[v]
				barLen := 0
				if maxCount > 0 {
					barLen = c * barWidth / maxCount
				}
				bar := ""
				for range make([]struct{}, barLen) {
					bar += "#"
				}
				fmt.Fprintf(out, "%-10d %-8d %s\n", v, c, bar)
			}
			return nil
		},
	}

	bindThresholdFlags(cmd, &flags)
	return cmd
}
