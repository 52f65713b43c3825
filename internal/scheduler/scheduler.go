package scheduler

import (
	"sync"
	"time"

	"github.com/xapes/xma-slots/internal/logger"
	"github.com/xapes/xma-slots/internal/worker"
)

// Enqueuer accepts jobs without blocking; satisfied by *worker.Pool
type Enqueuer interface {
	Enqueue(job worker.Job) bool
}

// Scheduler enqueues jobs onto a worker pool at fixed intervals
type Scheduler struct {
	pool     Enqueuer
	quit     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. When immediate is set
// the job is also enqueued once right away. A non-positive interval disables
// the job.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job, immediate bool) {
	if interval <= 0 {
		logger.Info("Scheduled job disabled", "job", job.Name())
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		if immediate {
			s.pool.Enqueue(job)
		}

		for {
			select {
			case <-ticker.C:
				// A full queue drops the tick; the next one retries
				s.pool.Enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
	logger.Info("Scheduled job", "job", job.Name(), "interval", interval.String())
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
