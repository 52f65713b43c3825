package chain

import (
	"context"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/xapes/xma-slots/internal/logger"
)

// RetryPolicy bounds retries of rate-limited RPC calls.
type RetryPolicy struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryPolicy mirrors the ledger provider's published limits
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:      DefaultMaxRetries,
		InitialInterval: DefaultInitialInterval,
		MaxInterval:     DefaultMaxInterval,
	}
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOffContext {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.InitialInterval
	exp.MaxInterval = p.MaxInterval
	exp.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(exp, p.MaxRetries), ctx)
}

// IsRateLimited reports whether err looks like provider throttling.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "403") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "too many requests")
}

// retry runs op, retrying only while the provider is throttling.
func retry[T any](ctx context.Context, policy RetryPolicy, method string, op func() (T, error)) (T, error) {
	attempt := 0
	return backoff.RetryWithData(func() (T, error) {
		attempt++
		v, err := op()
		if err == nil {
			return v, nil
		}
		if !IsRateLimited(err) {
			return v, backoff.Permanent(err)
		}
		logger.FromContext(ctx).Warn(LogMsgRPCRateLimited, "method", method, "attempt", attempt, "error", err)
		return v, err
	}, policy.backOff(ctx))
}
