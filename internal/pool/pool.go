package pool

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

var (
	// ErrPoolClosed is returned by Submit after Close has been called.
	ErrPoolClosed = errors.New("pool: closed")

	// ErrTaskPanicked is the sentinel behind TaskError.
	ErrTaskPanicked = errors.New("pool: task panicked")
)

// TaskError carries a panic recovered from a submitted task.
type TaskError struct {
	Value any
	Stack []byte
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("pool: task panicked: %v", e.Value)
}

func (e *TaskError) Unwrap() error { return ErrTaskPanicked }

// Pool manages a fixed set of worker goroutines that drain a shared FIFO queue.
type Pool struct {
	numWorkers int

	mu    sync.Mutex
	cond  *sync.Cond
	queue []func() // protected by mu

	wg     sync.WaitGroup
	closed atomic.Bool

	submitted atomic.Int64
	completed atomic.Int64
	panicked  atomic.Int64
}

// New creates a pool with numWorkers goroutines.
// If numWorkers <= 0, runtime.GOMAXPROCS(0) is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{numWorkers: numWorkers}
	p.cond = sync.NewCond(&p.mu)

	p.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}

	return p
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.numWorkers
}

// worker pops tasks until the pool is closed and the queue is empty.
func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed.Load() {
			p.cond.Wait()
		}
		if len(p.queue) == 0 {
			// Closed and drained.
			p.mu.Unlock()
			return
		}
		task := p.queue[0]
		p.queue[0] = nil
		p.queue = p.queue[1:]
		p.mu.Unlock()

		task()
	}
}

func (p *Pool) enqueue(task func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed.Load() {
		return ErrPoolClosed
	}

	p.queue = append(p.queue, task)
	p.submitted.Add(1)
	p.cond.Signal()
	return nil
}

// Submit enqueues fn and returns a future for its result.
//
// Submit never blocks. It fails with ErrPoolClosed once Close has been called.
// A panic inside fn is recovered and surfaces from Wait as a *TaskError.
func Submit[T any](p *Pool, fn func() (T, error)) (*Future[T], error) {
	f := newFuture[T]()

	task := func() {
		v, err := runTask(p, fn)
		// Count before publishing so Stats is current once Wait returns.
		p.completed.Add(1)
		f.complete(v, err)
	}

	if err := p.enqueue(task); err != nil {
		return nil, err
	}
	return f, nil
}

func runTask[T any](p *Pool, fn func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			p.panicked.Add(1)
			err = &TaskError{Value: r, Stack: debug.Stack()}
		}
	}()
	return fn()
}

// Close stops accepting work, lets the workers drain the queue and waits for
// them to exit. Tasks already queued still run and their futures resolve.
// Close is idempotent.
func (p *Pool) Close() {
	if !p.closed.CompareAndSwap(false, true) {
		return
	}

	p.mu.Lock()
	p.cond.Broadcast()
	p.mu.Unlock()

	p.wg.Wait()
}

// Stats is a point-in-time view of pool activity.
type Stats struct {
	Workers   int
	Submitted int64
	Completed int64
	Panicked  int64
	Pending   int
}

// Stats returns current pool counters.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	pending := len(p.queue)
	p.mu.Unlock()

	return Stats{
		Workers:   p.numWorkers,
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
		Panicked:  p.panicked.Load(),
		Pending:   pending,
	}
}
