package domain

// CollectResult is returned to the client after a successful collect reservation.
type CollectResult struct {
	Transaction  string // base64, treasury-signed
	Signature    string // transfer id the client reports back on confirmation
	ActualAmount int64  // ledger amount, minor units
}

// ConfirmStatus is the outcome of a confirmation attempt.
type ConfirmStatus string

const (
	ConfirmStatusCleared        ConfirmStatus = "cleared"
	ConfirmStatusAlreadyCleared ConfirmStatus = "already_cleared"
	ConfirmStatusPending        ConfirmStatus = "processing"
)

// ConfirmResult is the outcome of ConfirmCollect.
type ConfirmResult struct {
	Status ConfirmStatus
	Amount int64 // minor units cleared; zero unless Status is cleared
}

// Cleared reports whether the reservation is no longer outstanding.
func (r *ConfirmResult) Cleared() bool {
	return r.Status == ConfirmStatusCleared || r.Status == ConfirmStatusAlreadyCleared
}

// RecoveryOutcome classifies what the recovery sweep did with a reservation.
type RecoveryOutcome string

const (
	RecoveryCleared  RecoveryOutcome = "cleared"
	RecoveryRestored RecoveryOutcome = "restored"
	RecoverySkipped  RecoveryOutcome = "skipped"
	RecoveryLost     RecoveryOutcome = "lost_race"
)

// RecoveryReport summarizes a recovery sweep.
type RecoveryReport struct {
	Examined int                     `json:"examined"`
	Outcomes map[RecoveryOutcome]int `json:"outcomes"`
	Errors   int                     `json:"errors"`
}
