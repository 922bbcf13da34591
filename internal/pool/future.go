package pool

import (
	"context"
	"iter"
	"sync"
)

// Future is the result handle of a submitted task.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error

	mu        sync.Mutex
	listeners []func() // protected by mu, nil after completion
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// complete publishes the result. It must be called exactly once.
func (f *Future[T]) complete(v T, err error) {
	f.val, f.err = v, err

	f.mu.Lock()
	listeners := f.listeners
	f.listeners = nil
	close(f.done)
	f.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// onDone registers fn to run once the future completes. If it already has,
// fn runs immediately on the caller's goroutine.
func (f *Future[T]) onDone(fn func()) {
	f.mu.Lock()
	select {
	case <-f.done:
		f.mu.Unlock()
		fn()
		return
	default:
	}
	f.listeners = append(f.listeners, fn)
	f.mu.Unlock()
}

// Done returns a channel that is closed when the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Ready reports whether the result is available without blocking.
func (f *Future[T]) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the task has run and returns its result.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.val, f.err
}

// Completed yields the indices of futures in the order they complete.
//
// Each step blocks until any still-pending future is ready; no polling is
// involved. If ctx is cancelled first, Completed yields (-1, ctx.Err()) and
// stops. Calling Wait on a yielded future never blocks.
func Completed[T any](ctx context.Context, futures []*Future[T]) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		// Buffered to len(futures) so listeners never block a worker.
		ready := make(chan int, len(futures))
		for i, f := range futures {
			f.onDone(func() { ready <- i })
		}

		for range len(futures) {
			select {
			case i := <-ready:
				if !yield(i, nil) {
					return
				}
			case <-ctx.Done():
				yield(-1, ctx.Err())
				return
			}
		}
	}
}
