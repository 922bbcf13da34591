package kcluster

import (
	"errors"
	"fmt"

	"github.com/hupe1980/kcluster/internal/pool"
)

var (
	// ErrInvalidConfiguration is returned by New when the point set or policy
	// parameters are unusable. No pool work is scheduled in that case.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrPoolClosed is returned when work is submitted to a closed worker pool.
	ErrPoolClosed = pool.ErrPoolClosed

	// ErrClosed is returned when Run is called on a closed engine.
	ErrClosed = errors.New("engine closed")

	// ErrTaskFailed wraps a failure inside a per-cluster or global task.
	// The run is aborted when it occurs.
	ErrTaskFailed = errors.New("cluster task failed")

	// ErrNonConvergence is returned together with a best-effort Result when
	// the iteration cap is reached before the policy settles.
	ErrNonConvergence = errors.New("clustering did not converge")

	// ErrDegenerateCandidateSet is recorded as Result.StopReason when every
	// cluster is empty and no growth candidate exists.
	ErrDegenerateCandidateSet = errors.New("degenerate candidate set: all clusters empty")

	// ErrClusterLimit is recorded as Result.StopReason when growth stops
	// because the configured cluster limit was reached.
	ErrClusterLimit = errors.New("cluster limit reached")
)

// ConfigError describes a rejected configuration value.
//
// It unwraps to ErrInvalidConfiguration.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s=%v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfiguration }

func taskError(cluster int, err error) error {
	if cluster < 0 {
		return fmt.Errorf("%w: separation: %w", ErrTaskFailed, err)
	}
	return fmt.Errorf("%w: cluster %d: %w", ErrTaskFailed, cluster, err)
}
