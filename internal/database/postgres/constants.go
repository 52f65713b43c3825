package postgres

// Error messages wrapped around driver errors
const (
	ErrMsgFailedToGetPlayer        = "failed to get player"
	ErrMsgFailedToReserveCollect   = "failed to reserve collect"
	ErrMsgFailedToClearCollect     = "failed to clear collect reservation"
	ErrMsgFailedToRestoreCollect   = "failed to restore collect reservation"
	ErrMsgFailedToListPending      = "failed to list pending collects"
	ErrMsgFailedToPurchaseSpins    = "failed to purchase spins"
	ErrMsgFailedToApplySpin        = "failed to apply spin"
	ErrMsgFailedToRecordHistory    = "failed to record game history"
	ErrMsgFailedToGetHistory       = "failed to get game history"
	ErrMsgFailedToQueryLeaderboard = "failed to query leaderboard"
	ErrMsgFailedToQueryTotals      = "failed to query game totals"
)
