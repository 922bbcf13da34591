package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "medoid.k")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidLogFormats returns the list of valid log formats
func ValidLogFormats() []string {
	return []string{"text", "json"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validatePoints()...)
	errors = append(errors, c.validateEngine()...)
	errors = append(errors, c.validateMedoid()...)
	errors = append(errors, c.validateGrowth()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateReport()...)

	return errors
}

func (c *Config) validatePoints() []ValidationError {
	if c.Points.File == "" && c.Points.Count <= 0 {
		return []ValidationError{{
			Field:   "points.count",
			Value:   c.Points.Count,
			Message: "must be positive when no point file is given",
		}}
	}
	return nil
}

func (c *Config) validateEngine() []ValidationError {
	var errors []ValidationError

	if c.Engine.Workers < 0 {
		errors = append(errors, ValidationError{
			Field:   "engine.workers",
			Value:   c.Engine.Workers,
			Message: "must be non-negative",
		})
	}
	if c.Engine.MaxIterations <= 0 {
		errors = append(errors, ValidationError{
			Field:   "engine.max_iterations",
			Value:   c.Engine.MaxIterations,
			Message: "must be positive",
		})
	}
	if c.Engine.IterationRate < 0 {
		errors = append(errors, ValidationError{
			Field:   "engine.iteration_rate",
			Value:   c.Engine.IterationRate,
			Message: "must be non-negative",
		})
	}

	return errors
}

func (c *Config) validateMedoid() []ValidationError {
	if c.Medoid.K < 2 || c.Medoid.K > 20 {
		return []ValidationError{{
			Field:   "medoid.k",
			Value:   c.Medoid.K,
			Message: "must be between 2 and 20",
		}}
	}
	return nil
}

func (c *Config) validateGrowth() []ValidationError {
	var errors []ValidationError

	if c.Growth.MaxClusters < 0 || c.Growth.MaxClusters == 1 {
		errors = append(errors, ValidationError{
			Field:   "growth.max_clusters",
			Value:   c.Growth.MaxClusters,
			Message: "must be 0 (unlimited) or at least 2",
		})
	}
	if c.Growth.SeparationFactor <= 0 {
		errors = append(errors, ValidationError{
			Field:   "growth.separation_factor",
			Value:   c.Growth.SeparationFactor,
			Message: "must be positive",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}
	if !slices.Contains(ValidLogFormats(), strings.ToLower(c.Logging.Format)) {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Value:   c.Logging.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogFormats(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateReport() []ValidationError {
	if c.Report.IntervalMs < 0 {
		return []ValidationError{{
			Field:   "report.interval_ms",
			Value:   c.Report.IntervalMs,
			Message: "must be non-negative",
		}}
	}
	return nil
}
