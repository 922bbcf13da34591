package kcluster

import (
	"context"

	"github.com/hupe1980/kcluster/internal/pool"
)

// dispatch submits task once per cluster and collects every result through
// the pool's multi-wait. collect runs on the calling goroutine, in completion
// order. All submitted tasks have finished when dispatch returns.
//
// If several tasks fail, the failure of the lowest cluster index is reported
// so the error does not depend on scheduling.
func dispatch[T any](
	ctx context.Context,
	p *pool.Pool,
	clusters []*cluster,
	task func(*cluster) (T, error),
	collect func(i int, v T),
) error {
	futures := make([]*pool.Future[T], 0, len(clusters))
	for _, c := range clusters {
		f, err := pool.Submit(p, func() (T, error) { return task(c) })
		if err != nil {
			waitAll(futures)
			return err
		}
		futures = append(futures, f)
	}

	failedAt := -1
	var failure error

	for i, err := range pool.Completed(ctx, futures) {
		if err != nil {
			waitAll(futures)
			return err
		}
		v, err := futures[i].Wait()
		if err != nil {
			if failure == nil || i < failedAt {
				failedAt, failure = i, err
			}
			continue
		}
		collect(i, v)
	}

	if failure != nil {
		return taskError(failedAt, failure)
	}
	return nil
}

func waitAll[T any](futures []*pool.Future[T]) {
	for _, f := range futures {
		_, _ = f.Wait()
	}
}
