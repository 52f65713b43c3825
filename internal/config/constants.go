package config

import "time"

// Accepted CONFIRM_COMMITMENT values
const (
	CommitmentConfirmed = "confirmed"
	CommitmentFinalized = "finalized"
)

// MinRecoveryAge keeps the recovery sweep away from reservations a client may
// still be about to confirm
const MinRecoveryAge = 30 * time.Second

// Example values shipped in .env.example
const (
	ExampleDBPassword  = "change_this_secure_password"
	ExampleAPIKey      = "generate_with_openssl_rand_hex_32"
	ExampleTreasuryKey = "paste_base58_treasury_secret_here"
)
