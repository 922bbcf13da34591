package cmd

import (
	"github.com/hupe1980/kcluster"
	"github.com/hupe1980/kcluster/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var medoidCmd = &cobra.Command{
	Use:   "medoid",
	Short: "Cluster into a fixed number of clusters by medoid relaxation",
	Long: `Partition the points into K clusters. Each round moves every centroid to
the member with the smallest sum of squared distances to the other members,
until no centroid moves.`,
	RunE: runMedoid,
}

func init() {
	medoidCmd.Flags().Int("k", 0, "number of clusters (2-20)")
	_ = viper.BindPFlag("medoid.k", medoidCmd.Flags().Lookup("k"))
	rootCmd.AddCommand(medoidCmd)
}

func runMedoid(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return runEngine(cmd, cfg, kcluster.MedoidRelaxation(cfg.Medoid.K))
}
