// Package pool provides a fixed-size goroutine pool with typed futures.
//
// Workers drain a single shared FIFO queue. Submit never blocks: the queue is
// unbounded, and submission only fails once the pool has been closed.
//
// # Usage
//
//	p := pool.New(4)
//	defer p.Close()
//
//	f, err := pool.Submit(p, func() (int, error) { return 42, nil })
//	if err != nil {
//	    return err
//	}
//	v, err := f.Wait()
//
// # Multi-wait
//
// Completed yields futures in the order they finish, blocking until any of the
// remaining ones is ready:
//
//	for i, err := range pool.Completed(ctx, futures) {
//	    if err != nil {
//	        return err // ctx cancelled
//	    }
//	    v, taskErr := futures[i].Wait() // never blocks here
//	}
package pool
