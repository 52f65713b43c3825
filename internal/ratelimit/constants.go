package ratelimit

import "time"

const (
	// DefaultLimit is the number of collects a wallet may request per window
	DefaultLimit = 5
	// DefaultWindow is the sliding window length
	DefaultWindow = time.Minute
	// DefaultMaxKeys bounds the number of wallets tracked at once
	DefaultMaxKeys = 10_000
)
