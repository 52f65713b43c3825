package domain

// SpinResult is the outcome of a server-resolved spin
type SpinResult struct {
	WalletAddress  string    `json:"walletAddress"`
	Symbols        [3]int    `json:"symbols"` // symbol index per reel
	SymbolNames    [3]string `json:"symbolNames"`
	ReelStops      [3]int    `json:"reelStops"` // position drawn in the fixed reel order
	Stake          float64   `json:"stake"`
	WonAmount      float64   `json:"wonAmount"`
	IsWin          bool      `json:"isWin"`
	Trigger        string    `json:"trigger"`
	SpinsRemaining int       `json:"spinsRemaining"`
}

// SpinOutcome is what the ledger needs to resolve one spin (minor units)
type SpinOutcome struct {
	Stake          int64
	Win            int64
	SpinsRemaining int
}
