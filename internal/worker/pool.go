package worker

import (
	"context"
	"sync"

	"github.com/xapes/xma-slots/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Name() string
	Process(ctx context.Context) error
}

// Pool runs jobs on a fixed number of goroutines
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	log := logger.FromContext(p.ctx).With("worker_id", id)
	for {
		select {
		case job := <-p.jobQueue:
			if err := job.Process(p.ctx); err != nil {
				log.Error(LogMsgWorkerJobFailed, "job", job.Name(), "error", err)
			}
		case <-p.ctx.Done():
			return
		}
	}
}

// Enqueue hands a job to the pool without blocking. It returns false when the
// queue is full or the pool is stopped; the job is dropped.
func (p *Pool) Enqueue(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		logger.FromContext(p.ctx).Warn(LogMsgWorkerQueueFull, "job", job.Name())
		return false
	}
}

// Stop cancels in-flight jobs and waits for the workers to exit. Queued jobs
// that have not started are discarded.
func (p *Pool) Stop() {
	p.stopOnce.Do(p.cancel)
	p.wg.Wait()
}
