package worker

import "time"

// RecoveryJobName identifies the collect recovery job in logs
const RecoveryJobName = "collect_recovery"

// DefaultRecoveryTimeout bounds a single recovery sweep
const DefaultRecoveryTimeout = time.Minute

// Log messages
const (
	LogMsgWorkerJobFailed     = "Worker job failed"
	LogMsgWorkerQueueFull     = "Worker queue full, dropping job"
	LogMsgRecoverySweepDone   = "Collect recovery sweep completed"
	LogMsgRecoverySkippedBusy = "Collect recovery already running, skipping tick"
)
