package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/taigrr/meshdiag/internal/config"
	"github.com/taigrr/meshdiag/internal/meshdiag"
)

func newAnalyzeCmd() *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:   "analyze <model.obj|model.stl|model.glb>",
		Short: "Run the full diagnostic pipeline over a mesh and print a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			mesh, err := loadMesh(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}

			cfg := config.Resolve(flags)
			start := time.Now()
			result, err := meshdiag.AnalyzeWithConfig(mesh.Positions, mesh.Indices, cfg.EngineConfig())
			if err != nil {
				return fmt.Errorf("analyze %s: %w", path, err)
			}
			slog.Debug("analysis complete", "path", path, "elapsed", time.Since(start))

			if result.Diagnostics.WindingCheckSkipped {
				slog.Warn("capacity cap tripped, most checks were skipped",
					"path", path, "triangles", result.Diagnostics.TriangleCount, "cap", cfg.CapacityCap)
			}

			if cfg.JSON {
				return printJSON(cmd, result, cfg.Overlay)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderReport(path, &result.Diagnostics))
			return nil
		},
	}

	bindThresholdFlags(cmd, &flags)
	cmd.Flags().BoolVar(&flags.JSON, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&flags.Overlay, "overlay", false, "Include overlay geometry in JSON output")
	return cmd
}

func bindThresholdFlags(cmd *cobra.Command, flags *config.Flags) {
	cmd.Flags().IntVar(&flags.CapacityCap, "capacity-cap", 0, "Triangle-count short-circuit threshold (default 5592405)")
	cmd.Flags().Float64Var(&flags.DuplicateVertexEpsilon, "duplicate-epsilon", 0, "Absolute distance for duplicate-vertex detection (default 1e-6)")
	cmd.Flags().Float64Var(&flags.ThinWallFraction, "thin-wall-fraction", 0, "Bounding-diagonal fraction defining the thin-wall threshold (default 0.005)")
	cmd.Flags().Float64Var(&flags.NeedleAspectThreshold, "needle-aspect", 0, "Minimum aspect ratio classified as a needle triangle (default 10)")
	cmd.Flags().Float64Var(&flags.TinyAreaFraction, "tiny-area-fraction", 0, "Median-area fraction below which a triangle is classified as tiny (default 0.01)")
}

func printJSON(cmd *cobra.Command, result *meshdiag.Result, overlay bool) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if overlay {
		return enc.Encode(result)
	}
	return enc.Encode(result.Diagnostics)
}
