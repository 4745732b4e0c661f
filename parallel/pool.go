package parallel

import (
	"runtime"
	"sync"
)

// Pool manages a fixed set of worker goroutines draining a task queue.
//
//	p := NewPool(4)
//	defer p.Close()
//	for i := range rows { p.Submit(func() { ... }) }
//	p.Wait()
type Pool struct {
	workers int
	tasks   chan func()
	pending sync.WaitGroup // submitted but not yet finished tasks
	wg      sync.WaitGroup // live workers
	once    sync.Once
}

// NewPool starts a pool with the given number of workers.
// workers < 1 means runtime.GOMAXPROCS(0).
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		tasks:   make(chan func(), workers),
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

// worker processes tasks from the queue until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		task()
		p.pending.Done()
	}
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int { return p.workers }

// Submit queues a task. It blocks while the queue is full.
// Submit must not be called after Close.
func (p *Pool) Submit(task func()) {
	p.pending.Add(1)
	p.tasks <- task
}

// Wait blocks until every task submitted so far has finished.
// The pool stays usable afterwards.
func (p *Pool) Wait() {
	p.pending.Wait()
}

// Close stops accepting tasks and waits for the workers to exit.
// Close is idempotent.
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.tasks)
		p.wg.Wait()
	})
}
