package bootstrap

import "time"

// Worker pool sizing for background jobs
const (
	WorkerQueueSize = 8
)

// ShutdownTimeout bounds graceful shutdown
const ShutdownTimeout = 30 * time.Second

// Log messages for start-up
const (
	LogMsgStarting            = "Starting xma-slots"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgTreasuryLoaded      = "Treasury key loaded"
	LogMsgServicesReady       = "Services initialized"
	LogMsgRecoveryScheduled   = "Collect recovery scheduled"
)

// Error messages for start-up
const (
	ErrMsgInvalidTreasuryKey = "invalid treasury key"
	ErrMsgInvalidMint        = "invalid token mint"
	ErrMsgBuildTransfer      = "failed to create transfer builder"
	ErrMsgBuildLimiter       = "failed to create rate limiter"
	ErrMsgBuildEngine        = "failed to create outcome engine"
	ErrMsgBuildLedger        = "failed to create token network client"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer    = "Shutting down server..."
	LogMsgShuttingDownScheduler = "Stopping scheduler..."
	LogMsgShuttingDownWorkers   = "Stopping worker pool..."
	LogMsgClosingDatabase       = "Closing database pool..."
	LogMsgServerStopped         = "Server stopped"
	LogMsgServerForcedShutdown  = "Server forced to shutdown"
)
