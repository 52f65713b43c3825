package metrics

import "github.com/xapes/xma-slots/internal/domain"

// RecordCollect counts a collect request outcome
func RecordCollect(outcome string) {
	CollectsTotal.WithLabelValues(outcome).Inc()
}

// RecordConfirmation counts a confirmation and, when it cleared a
// reservation, the tokens paid out
func RecordConfirmation(status domain.ConfirmStatus, minor int64) {
	ConfirmationsTotal.WithLabelValues(string(status)).Inc()
	if status == domain.ConfirmStatusCleared && minor > 0 {
		TokensPaidOut.Add(domain.DisplayAmount(minor))
	}
}

// RecordRecovery counts a reservation resolved by the recovery sweep
func RecordRecovery(outcome domain.RecoveryOutcome, minor int64) {
	RecoveriesTotal.WithLabelValues(string(outcome)).Inc()
	if outcome == domain.RecoveryCleared && minor > 0 {
		TokensPaidOut.Add(domain.DisplayAmount(minor))
	}
}

// RecordSpin counts a resolved spin with its stake and win in minor units
func RecordSpin(stake, win int64) {
	result := ResultLoss
	if win > 0 {
		result = ResultWin
		TokensWon.Add(domain.DisplayAmount(win))
	}
	SpinsTotal.WithLabelValues(result).Inc()
	TokensWagered.Add(domain.DisplayAmount(stake))
}

// RecordPurchase counts a spin credit purchase outcome
func RecordPurchase(outcome string) {
	PurchasesTotal.WithLabelValues(outcome).Inc()
}
