package kcluster

import (
	"fmt"
	"math"

	"github.com/hupe1980/kcluster/geom"
)

const (
	// MinClusters is the smallest K accepted by MedoidRelaxation.
	MinClusters = 2
	// MaxClusters is the largest K accepted by MedoidRelaxation.
	MaxClusters = 20
)

func validateCommon(numPoints int, o *options) error {
	if numPoints <= 0 {
		return &ConfigError{Field: "points", Value: numPoints, Reason: "point count must be positive"}
	}
	if o.maxClusters < 0 {
		return &ConfigError{Field: "max_clusters", Value: o.maxClusters, Reason: "must not be negative"}
	}
	if !(o.separationFactor > 0) || math.IsInf(o.separationFactor, 1) {
		return &ConfigError{Field: "separation_factor", Value: o.separationFactor, Reason: "must be positive and finite"}
	}
	if o.iterationRate < 0 || math.IsNaN(o.iterationRate) {
		return &ConfigError{Field: "iteration_rate", Value: o.iterationRate, Reason: "must not be negative"}
	}
	return nil
}

// validatePoints rejects non-finite coordinates. A NaN member would make every
// medoid cost NaN and every distance comparison false.
func validatePoints(field string, points []geom.Point) error {
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return &ConfigError{Field: field, Value: p, Reason: fmt.Sprintf("%s[%d] has a non-finite coordinate", field, i)}
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validateK(k, numPoints int) error {
	if k < MinClusters || k > MaxClusters {
		return &ConfigError{Field: "k", Value: k, Reason: "must be within [2, 20]"}
	}
	if k > numPoints {
		return &ConfigError{Field: "k", Value: k, Reason: "exceeds point count"}
	}
	return nil
}
