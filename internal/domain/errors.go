package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Collect errors
	ErrMsgRateLimited       = "rate limited"
	ErrMsgNothingToCollect  = "nothing to collect"
	ErrMsgAlreadyCollected  = "rewards already collected"
	ErrMsgTransferFailed    = "transfer failed"
	ErrMsgTreasuryNoFunds   = "treasury has insufficient funds"
	ErrMsgTreasuryNoAccount = "treasury token account missing"
	ErrMsgLedgerUnavailable = "external ledger unavailable"

	// Spin credit errors
	ErrMsgSpinCreditsOutstanding = "spin credits from a previous purchase are still outstanding"
	ErrMsgNoSpinCredits          = "no spin credits remaining"
	ErrMsgClientSpinsDisabled    = "client-reported spin results are disabled"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Player errors
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	// Collect errors
	ErrRateLimited               = errors.New(ErrMsgRateLimited)
	ErrNothingToCollect          = errors.New(ErrMsgNothingToCollect)
	ErrAlreadyCollected          = errors.New(ErrMsgAlreadyCollected)
	ErrTransferFailed            = errors.New(ErrMsgTransferFailed)
	ErrTreasuryInsufficientFunds = errors.New(ErrMsgTreasuryNoFunds)
	ErrTreasuryAccountMissing    = errors.New(ErrMsgTreasuryNoAccount)
	ErrLedgerUnavailable         = errors.New(ErrMsgLedgerUnavailable)

	// Spin credit errors
	ErrSpinCreditsOutstanding = errors.New(ErrMsgSpinCreditsOutstanding)
	ErrNoSpinCredits          = errors.New(ErrMsgNoSpinCredits)
	ErrClientSpinsDisabled    = errors.New(ErrMsgClientSpinsDisabled)

	// System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)

// TreasuryError reports that the treasury cannot fund a payout right now.
// It unwraps to ErrTreasuryInsufficientFunds or ErrTreasuryAccountMissing.
type TreasuryError struct {
	Cause           error
	TreasuryAccount string
	Balance         int64
	Required        int64
}

func (e *TreasuryError) Error() string {
	if errors.Is(e.Cause, ErrTreasuryAccountMissing) {
		return fmt.Sprintf("%s: %s", e.Cause, e.TreasuryAccount)
	}
	return fmt.Sprintf("%s: account %s holds %d, need %d", e.Cause, e.TreasuryAccount, e.Balance, e.Required)
}

func (e *TreasuryError) Unwrap() error {
	return e.Cause
}

// TransferFailedError carries the external ledger's failure detail for a transfer.
type TransferFailedError struct {
	Signature string
	Detail    string
}

func (e *TransferFailedError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrMsgTransferFailed, e.Signature, e.Detail)
}

func (e *TransferFailedError) Unwrap() error {
	return ErrTransferFailed
}
