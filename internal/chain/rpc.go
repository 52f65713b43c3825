package chain

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/xapes/xma-slots/internal/domain"
)

// RPCLedger reads the external ledger over JSON-RPC.
type RPCLedger struct {
	client     *rpc.Client
	commitment rpc.CommitmentType
	policy     RetryPolicy
}

// NewRPCLedger connects to endpoint. commitment is the level a transfer must
// reach before it counts as settled.
func NewRPCLedger(endpoint, commitment string, policy RetryPolicy) (*RPCLedger, error) {
	c, err := parseCommitment(commitment)
	if err != nil {
		return nil, err
	}
	return &RPCLedger{
		client:     rpc.New(endpoint),
		commitment: c,
		policy:     policy,
	}, nil
}

func parseCommitment(s string) (rpc.CommitmentType, error) {
	switch s {
	case "", CommitmentConfirmed:
		return rpc.CommitmentConfirmed, nil
	case CommitmentFinalized:
		return rpc.CommitmentFinalized, nil
	default:
		return "", fmt.Errorf("unsupported commitment %q", s)
	}
}

// AccountExists reports whether account has been created on the ledger
func (l *RPCLedger) AccountExists(ctx context.Context, account solana.PublicKey) (bool, error) {
	exists, err := retry(ctx, l.policy, "getAccountInfo", func() (bool, error) {
		_, err := l.client.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{
			Commitment: l.commitment,
		})
		if errors.Is(err, rpc.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return false, unavailable("getAccountInfo", err)
	}
	return exists, nil
}

// TokenBalance returns the raw token amount held by a token account
func (l *RPCLedger) TokenBalance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	res, err := retry(ctx, l.policy, "getTokenAccountBalance", func() (*rpc.GetTokenAccountBalanceResult, error) {
		return l.client.GetTokenAccountBalance(ctx, account, l.commitment)
	})
	if err != nil {
		return 0, unavailable("getTokenAccountBalance", err)
	}
	if res == nil || res.Value == nil {
		return 0, nil
	}
	amount, err := strconv.ParseUint(res.Value.Amount, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse token balance %q: %w", res.Value.Amount, err)
	}
	return amount, nil
}

// LatestBlock returns a recent blockhash for building transactions
func (l *RPCLedger) LatestBlock(ctx context.Context) (BlockRef, error) {
	res, err := retry(ctx, l.policy, "getLatestBlockhash", func() (*rpc.GetLatestBlockhashResult, error) {
		return l.client.GetLatestBlockhash(ctx, l.commitment)
	})
	if err != nil {
		return BlockRef{}, unavailable("getLatestBlockhash", err)
	}
	if res == nil || res.Value == nil {
		return BlockRef{}, unavailable("getLatestBlockhash", errors.New("empty response"))
	}
	return BlockRef{
		Blockhash:       res.Value.Blockhash,
		LastValidHeight: res.Value.LastValidBlockHeight,
	}, nil
}

// BlockHeight returns the current block height
func (l *RPCLedger) BlockHeight(ctx context.Context) (uint64, error) {
	h, err := retry(ctx, l.policy, "getBlockHeight", func() (uint64, error) {
		return l.client.GetBlockHeight(ctx, l.commitment)
	})
	if err != nil {
		return 0, unavailable("getBlockHeight", err)
	}
	return h, nil
}

// CheckHealth reports whether the RPC node answers
func (l *RPCLedger) CheckHealth(ctx context.Context) error {
	_, err := l.BlockHeight(ctx)
	return err
}

// TransferStatus looks the transfer up, including transaction history
func (l *RPCLedger) TransferStatus(ctx context.Context, sig solana.Signature) (TransferStatus, error) {
	res, err := retry(ctx, l.policy, "getSignatureStatuses", func() (*rpc.GetSignatureStatusesResult, error) {
		return l.client.GetSignatureStatuses(ctx, true, sig)
	})
	if err != nil {
		return TransferStatus{}, unavailable("getSignatureStatuses", err)
	}
	if res == nil || len(res.Value) == 0 || res.Value[0] == nil {
		return TransferStatus{}, nil
	}

	st := res.Value[0]
	status := TransferStatus{Found: true}
	if st.Err != nil {
		status.Failed = true
		status.Detail = fmt.Sprintf("%v", st.Err)
		return status, nil
	}
	status.Settled = reaches(st.ConfirmationStatus, l.commitment)
	return status, nil
}

func reaches(got rpc.ConfirmationStatusType, want rpc.CommitmentType) bool {
	switch got {
	case rpc.ConfirmationStatusFinalized:
		return true
	case rpc.ConfirmationStatusConfirmed:
		return want == rpc.CommitmentConfirmed
	default:
		return false
	}
}

func unavailable(method string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrLedgerUnavailable, method, err)
}
