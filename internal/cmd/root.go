// Package cmd implements the kcluster command-line tool.
package cmd

import (
	"strings"

	"github.com/hupe1980/kcluster/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "kcluster",
	Short: "Parallel planar point clustering",
	Long: `kcluster partitions a set of 2D points into clusters.

Points come from a file (one "x y" pair per line, optionally .zst or .lz4
compressed) or are generated uniformly in [-1,1)x[-1,1). The assignment
phase runs sequentially; per-cluster updates run on a worker pool.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.config/kcluster/config.yaml)")
	flags.StringP("points", "p", "", "point file (.txt, .zst or .lz4)")
	flags.IntP("count", "n", 0, "number of generated points when no point file is given")
	flags.Int("workers", 0, "worker pool size (0 = GOMAXPROCS)")
	flags.Int("max-iterations", 0, "iteration cap")
	flags.Int64("seed", 0, "random seed (0 = time based)")
	flags.Float64("rate", 0, "iterations per second (0 = unpaced)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: text, json")
	flags.Int("interval", 0, "progress report interval in milliseconds")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("points.file", flags.Lookup("points"))
	_ = viper.BindPFlag("points.count", flags.Lookup("count"))
	_ = viper.BindPFlag("engine.workers", flags.Lookup("workers"))
	_ = viper.BindPFlag("engine.max_iterations", flags.Lookup("max-iterations"))
	_ = viper.BindPFlag("engine.seed", flags.Lookup("seed"))
	_ = viper.BindPFlag("engine.iteration_rate", flags.Lookup("rate"))
	_ = viper.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", flags.Lookup("log-format"))
	_ = viper.BindPFlag("report.interval_ms", flags.Lookup("interval"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("KCLUSTER")
	// e.g., KCLUSTER_MEDOID_K for medoid.k
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
