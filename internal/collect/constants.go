package collect

import "time"

// Defaults
const (
	DefaultRecoveryMinAge = 5 * time.Minute
	DefaultRecoveryBatch  = 100
)

// Metric outcome labels
const (
	OutcomeReserved         = "reserved"
	OutcomeInvalid          = "invalid"
	OutcomeRateLimited      = "rate_limited"
	OutcomeNothingToCollect = "nothing_to_collect"
	OutcomeAlreadyCollected = "already_collected"
	OutcomeTreasury         = "treasury_unavailable"
	OutcomeLedger           = "ledger_unavailable"
	OutcomeTransferFailed   = "transfer_failed"
	OutcomeError            = "error"
)

// Log messages
const (
	LogMsgAmountCorrected      = "Client collect amount differs from ledger, using ledger value"
	LogMsgCollectReserved      = "Collect reserved"
	LogMsgCollectLostRace      = "Collect reservation lost to a concurrent request"
	LogMsgConfirmAmountDiffers = "Client confirm amount differs from reservation"
	LogMsgCollectCleared       = "Collect confirmed and cleared"
	LogMsgCollectAlreadyClear  = "Collect already cleared"
	LogMsgCollectPending       = "Collect transfer not settled yet"
	LogMsgTransferFailed       = "Collect transfer failed, restoring reservation"
	LogMsgRestoreLostRace      = "Reservation already resolved before restore"
	LogMsgRecoveryStarted      = "Recovering abandoned collect reservations"
	LogMsgRecoveryFinished     = "Collect recovery sweep finished"
	LogMsgRecoveryFailed       = "Failed to recover collect reservation"
	LogMsgRecoveryResolved     = "Recovered collect reservation"
)
