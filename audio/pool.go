package audio

import (
	"sync"

	"github.com/RyanBlaney/soma-signal/logging"
)

// Job is a unit of work for the pool.
type Job func() error

// Pool runs a fixed batch of jobs on a fixed number of workers. Jobs are
// assigned to workers round-robin by position in the batch; there is no
// work stealing, retry, or cancellation. A job's error is logged, never
// propagated, so one bad item can't abort the batch.
type Pool struct {
	size int

	mu   sync.Mutex
	jobs []Job
}

// NewPool creates a pool with the given number of workers. Sizes below one
// are clamped to one.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{size: size}
}

// Add appends jobs to the batch. Add before Wait; the batch is static.
func (p *Pool) Add(jobs ...Job) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.jobs = append(p.jobs, jobs...)
}

// Wait runs the batch and blocks until every job has finished.
func (p *Pool) Wait() {
	p.mu.Lock()
	jobs := p.jobs
	p.jobs = nil
	p.mu.Unlock()

	var wg sync.WaitGroup
	for w := range p.size {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := w; i < len(jobs); i += p.size {
				if err := jobs[i](); err != nil {
					logging.Error(err, "Pool job failed", logging.Fields{
						"job": i,
					})
				}
			}
		}()
	}
	wg.Wait()
}
