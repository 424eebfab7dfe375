package pipeline

import (
	"context"
	"sync"
	"time"
)

// Task is one unit of pipeline work. Its error is reported on the result
// channel; it never stops the pool.
type Task func(ctx context.Context) error

type Result struct {
	ID  string
	Err error
}

type WorkerPool struct {
	workers int
	tasks   chan queued
	wg      sync.WaitGroup
	mu      sync.RWMutex
	rate    <-chan time.Time
	ticker  *time.Ticker
}

type queued struct {
	id   string
	task Task
}

func NewWorkerPool(workers, buffer int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &WorkerPool{
		workers: workers,
		tasks:   make(chan queued, buffer),
	}
}

// SetRateLimit caps task starts across all workers. rps <= 0 removes the cap.
func (p *WorkerPool) SetRateLimit(rps int) {
	if p == nil {
		return
	}
	p.stopTicker()
	if rps <= 0 {
		return
	}
	t := time.NewTicker(time.Second / time.Duration(rps))
	p.mu.Lock()
	p.ticker = t
	p.rate = t.C
	p.mu.Unlock()
}

func (p *WorkerPool) stopTicker() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
		p.rate = nil
	}
}

// Submit queues a task, blocking while the buffer is full. It returns false
// once ctx is done.
func (p *WorkerPool) Submit(ctx context.Context, id string, t Task) bool {
	if p == nil || t == nil {
		return false
	}
	select {
	case <-ctx.Done():
		return false
	case p.tasks <- queued{id: id, task: t}:
		return true
	}
}

// Close stops accepting tasks. Workers drain what is queued, then the result
// channel closes.
func (p *WorkerPool) Close() {
	if p == nil {
		return
	}
	close(p.tasks)
}

func (p *WorkerPool) Run(ctx context.Context) <-chan Result {
	out := make(chan Result, p.workers)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case q, ok := <-p.tasks:
					if !ok {
						return
					}
					if !p.wait(ctx) {
						return
					}
					err := q.task(ctx)
					select {
					case <-ctx.Done():
						return
					case out <- Result{ID: q.id, Err: err}:
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		p.stopTicker()
		close(out)
	}()

	return out
}

func (p *WorkerPool) wait(ctx context.Context) bool {
	p.mu.RLock()
	rate := p.rate
	p.mu.RUnlock()
	if rate == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return false
	case <-rate:
		return true
	}
}
