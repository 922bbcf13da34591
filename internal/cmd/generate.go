package cmd

import (
	"fmt"
	"time"

	"github.com/hupe1980/kcluster/geom"
	"github.com/hupe1980/kcluster/internal/config"
	"github.com/hupe1980/kcluster/internal/pointio"
	"github.com/hupe1980/kcluster/testutil"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <file>",
	Short: "Write uniformly distributed points to a file",
	Long: `Write --count points drawn uniformly from [-1,1)x[-1,1) to <file>.
A .zst or .lz4 extension selects compression.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	points := uniformPoints(cfg.Points.Count, cfg.Engine.Seed)
	if err := pointio.WriteFile(args[0], points); err != nil {
		return fmt.Errorf("failed to write points: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d points to %s (%s)\n",
		len(points), args[0], pointio.CompressionFromPath(args[0]))
	return nil
}

// uniformPoints draws count points from [-1,1)x[-1,1). seed 0 is time based.
func uniformPoints(count int, seed int64) []geom.Point {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return testutil.NewRNG(seed).UniformPoints(count)
}

func loadPoints(cfg *config.Config) ([]geom.Point, error) {
	if cfg.Points.File != "" {
		return pointio.ReadFile(cfg.Points.File)
	}
	return uniformPoints(cfg.Points.Count, cfg.Engine.Seed), nil
}
