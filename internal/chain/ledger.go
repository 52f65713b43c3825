package chain

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// BlockRef is a recent blockhash and the last block height at which a
// transaction referencing it can still be included.
type BlockRef struct {
	Blockhash       solana.Hash
	LastValidHeight uint64
}

// TransferStatus is what the ledger knows about a submitted transfer.
type TransferStatus struct {
	Found   bool   // the ledger has seen the transfer
	Settled bool   // it reached the configured commitment
	Failed  bool   // it executed with an error
	Detail  string // error detail when Failed
}

// Ledger is the read side of the external token ledger.
type Ledger interface {
	AccountExists(ctx context.Context, account solana.PublicKey) (bool, error)
	TokenBalance(ctx context.Context, account solana.PublicKey) (uint64, error)
	LatestBlock(ctx context.Context) (BlockRef, error)
	BlockHeight(ctx context.Context) (uint64, error)
	TransferStatus(ctx context.Context, sig solana.Signature) (TransferStatus, error)
}
