package cmd

import (
	"github.com/hupe1980/kcluster"
	"github.com/hupe1980/kcluster/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var growCmd = &cobra.Command{
	Use:   "grow",
	Short: "Cluster with a growing cluster count",
	Long: `Start with two clusters at the farthest pair of points and add a cluster
at the worst outlier while it lies farther from its centroid than the
separation factor times the mean distance between centroids.`,
	RunE: runGrow,
}

func init() {
	growCmd.Flags().Int("max-clusters", 0, "stop growing at this many clusters (0 = unlimited)")
	growCmd.Flags().Float64("separation-factor", 0, "multiple of the mean centroid separation an outlier must exceed")
	_ = viper.BindPFlag("growth.max_clusters", growCmd.Flags().Lookup("max-clusters"))
	_ = viper.BindPFlag("growth.separation_factor", growCmd.Flags().Lookup("separation-factor"))
	rootCmd.AddCommand(growCmd)
}

func runGrow(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return runEngine(cmd, cfg, kcluster.GrowthByOutlier(),
		kcluster.WithMaxClusters(cfg.Growth.MaxClusters),
		kcluster.WithSeparationFactor(cfg.Growth.SeparationFactor),
	)
}
