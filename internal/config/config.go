// Package config holds the command-line tool's settings, loaded through viper
// from flags, a YAML file and KCLUSTER_* environment variables.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete kcluster CLI configuration
type Config struct {
	Points  PointsConfig  `mapstructure:"points"`
	Engine  EngineConfig  `mapstructure:"engine"`
	Medoid  MedoidConfig  `mapstructure:"medoid"`
	Growth  GrowthConfig  `mapstructure:"growth"`
	Logging LoggingConfig `mapstructure:"logging"`
	Report  ReportConfig  `mapstructure:"report"`
}

// PointsConfig selects the input point set
type PointsConfig struct {
	// File is a point file; .zst and .lz4 are decompressed by extension.
	// When empty, Count uniform points in [-1,1)x[-1,1) are generated.
	File string `mapstructure:"file"`
	// Count is the number of generated points
	Count int `mapstructure:"count"`
}

// EngineConfig maps onto the engine options
type EngineConfig struct {
	// Workers is the pool size (0 = GOMAXPROCS)
	Workers int `mapstructure:"workers"`
	// MaxIterations caps assignment/update rounds
	MaxIterations int `mapstructure:"max_iterations"`
	// Seed fixes seed selection and colors (0 = time based)
	Seed int64 `mapstructure:"seed"`
	// IterationRate paces the loop in iterations per second (0 = unpaced)
	IterationRate float64 `mapstructure:"iteration_rate"`
}

// MedoidConfig controls the fixed-K policy
type MedoidConfig struct {
	// K is the number of clusters, within [2, 20]
	K int `mapstructure:"k"`
}

// GrowthConfig controls the growth policy
type GrowthConfig struct {
	// MaxClusters stops growth at this many clusters (0 = unlimited)
	MaxClusters int `mapstructure:"max_clusters"`
	// SeparationFactor scales the mean centroid separation an outlier must exceed
	SeparationFactor float64 `mapstructure:"separation_factor"`
}

// LoggingConfig controls structured logging
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// Format is text or json
	Format string `mapstructure:"format"`
}

// ReportConfig controls live progress output while a run is in progress
type ReportConfig struct {
	// IntervalMs is how often a snapshot is reported (0 = only the final summary)
	IntervalMs int `mapstructure:"interval_ms"`
	// Members prints every member point in the final summary
	Members bool `mapstructure:"members"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Points: PointsConfig{
			Count: 1000,
		},
		Engine: EngineConfig{
			MaxIterations: 100,
		},
		Medoid: MedoidConfig{
			K: 5,
		},
		Growth: GrowthConfig{
			SeparationFactor: 0.5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Report: ReportConfig{
			IntervalMs: 500,
		},
	}
}

// ReportInterval returns the progress interval as a time.Duration
func (c *ReportConfig) ReportInterval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// SlogLevel parses Level. Unknown values fall back to info.
func (c *LoggingConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("points.file", defaults.Points.File)
	viper.SetDefault("points.count", defaults.Points.Count)

	viper.SetDefault("engine.workers", defaults.Engine.Workers)
	viper.SetDefault("engine.max_iterations", defaults.Engine.MaxIterations)
	viper.SetDefault("engine.seed", defaults.Engine.Seed)
	viper.SetDefault("engine.iteration_rate", defaults.Engine.IterationRate)

	viper.SetDefault("medoid.k", defaults.Medoid.K)

	viper.SetDefault("growth.max_clusters", defaults.Growth.MaxClusters)
	viper.SetDefault("growth.separation_factor", defaults.Growth.SeparationFactor)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.format", defaults.Logging.Format)

	viper.SetDefault("report.interval_ms", defaults.Report.IntervalMs)
	viper.SetDefault("report.members", defaults.Report.Members)
}

// Load reads the configuration from viper and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the directory searched for config.yaml
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "kcluster")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "kcluster")
}
