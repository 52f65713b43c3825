package config

import "strings"

// IsProduction reports whether the service runs in a production environment
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "prod") || strings.EqualFold(c.Environment, "production")
}

// Warnings reports non-fatal problems with the parsed configuration, like
// secrets still set to the example values
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if c.TreasuryPrivateKey == ExampleTreasuryKey {
		warnings = append(warnings, "TREASURY_PRIVATE_KEY appears to be using the example value - collects will fail until a real key is configured")
	}

	if c.ConfirmCommitment == CommitmentConfirmed && c.IsProduction() {
		warnings = append(warnings, "CONFIRM_COMMITMENT=confirmed in production - consider finalized to avoid clearing reservations on forked blocks")
	}

	return warnings
}
