package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/xapes/xma-slots/internal/domain"
	"github.com/xapes/xma-slots/internal/logger"
)

// Recoverer resolves abandoned collect reservations; satisfied by *collect.Service
type Recoverer interface {
	RecoverAbandoned(ctx context.Context) (*domain.RecoveryReport, error)
}

// RecoveryJob runs one recovery sweep per Process call. Overlapping calls are
// skipped so a slow sweep never runs twice at once.
type RecoveryJob struct {
	svc     Recoverer
	timeout time.Duration
	running atomic.Bool
}

// NewRecoveryJob creates the recovery job. A non-positive timeout uses DefaultRecoveryTimeout.
func NewRecoveryJob(svc Recoverer, timeout time.Duration) *RecoveryJob {
	if timeout <= 0 {
		timeout = DefaultRecoveryTimeout
	}
	return &RecoveryJob{svc: svc, timeout: timeout}
}

// Name implements Job
func (j *RecoveryJob) Name() string { return RecoveryJobName }

// Process implements Job
func (j *RecoveryJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if !j.running.CompareAndSwap(false, true) {
		log.Debug(LogMsgRecoverySkippedBusy)
		return nil
	}
	defer j.running.Store(false)

	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	start := time.Now()
	report, err := j.svc.RecoverAbandoned(ctx)
	if err != nil {
		return err
	}

	if report.Examined > 0 || report.Errors > 0 {
		log.Info(LogMsgRecoverySweepDone,
			"examined", report.Examined,
			"cleared", report.Outcomes[domain.RecoveryCleared],
			"restored", report.Outcomes[domain.RecoveryRestored],
			"skipped", report.Outcomes[domain.RecoverySkipped],
			"lost_race", report.Outcomes[domain.RecoveryLost],
			"errors", report.Errors,
			"duration_ms", time.Since(start).Milliseconds())
	}
	return nil
}
