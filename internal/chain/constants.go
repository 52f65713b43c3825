package chain

import "time"

// Commitment levels accepted for settling a transfer
const (
	CommitmentConfirmed = "confirmed"
	CommitmentFinalized = "finalized"
)

// Retry defaults for rate-limited RPC calls
const (
	DefaultMaxRetries      = 2
	DefaultInitialInterval = time.Second
	DefaultMaxInterval     = 4 * time.Second
)

// Log messages
const (
	LogMsgRPCRateLimited     = "RPC rate limited, retrying"
	LogMsgCreatingATA        = "Destination token account missing, prepending create instruction"
	LogMsgTransferBuilt      = "Transfer signed"
	LogMsgTreasuryLowBalance = "Treasury balance below requested transfer"
)
