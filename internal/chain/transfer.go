package chain

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/xapes/xma-slots/internal/domain"
	"github.com/xapes/xma-slots/internal/logger"
)

// SignedTransfer is a treasury-signed token transfer ready for submission.
type SignedTransfer struct {
	Transaction     string // base64 wire encoding
	Signature       solana.Signature
	LastValidHeight uint64
	CreatesAccount  bool
}

// Builder constructs signed transfers; satisfied by *TransferBuilder.
type Builder interface {
	BuildTransfer(ctx context.Context, destination solana.PublicKey, amount uint64) (*SignedTransfer, error)
}

// TransferBuilder builds token transfers from the treasury.
type TransferBuilder struct {
	ledger          Ledger
	mint            solana.PublicKey
	treasury        solana.PrivateKey
	treasuryWallet  solana.PublicKey
	treasuryAccount solana.PublicKey
}

// NewTransferBuilder derives the treasury token account for mint.
func NewTransferBuilder(ledger Ledger, mint solana.PublicKey, treasury solana.PrivateKey) (*TransferBuilder, error) {
	wallet := treasury.PublicKey()
	account, _, err := solana.FindAssociatedTokenAddress(wallet, mint)
	if err != nil {
		return nil, fmt.Errorf("derive treasury token account: %w", err)
	}
	return &TransferBuilder{
		ledger:          ledger,
		mint:            mint,
		treasury:        treasury,
		treasuryWallet:  wallet,
		treasuryAccount: account,
	}, nil
}

// TreasuryAccount is the token account transfers are paid from
func (b *TransferBuilder) TreasuryAccount() solana.PublicKey {
	return b.treasuryAccount
}

// BuildTransfer moves amount minor units from the treasury to destination's
// token account, creating that account first when it does not exist. The
// treasury is fee payer and sole signer.
func (b *TransferBuilder) BuildTransfer(ctx context.Context, destination solana.PublicKey, amount uint64) (*SignedTransfer, error) {
	log := logger.FromContext(ctx)

	exists, err := b.ledger.AccountExists(ctx, b.treasuryAccount)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &domain.TreasuryError{
			Cause:           domain.ErrTreasuryAccountMissing,
			TreasuryAccount: b.treasuryAccount.String(),
			Required:        int64(amount),
		}
	}

	balance, err := b.ledger.TokenBalance(ctx, b.treasuryAccount)
	if err != nil {
		return nil, err
	}
	if balance < amount {
		log.Error(LogMsgTreasuryLowBalance,
			"treasury_account", b.treasuryAccount.String(),
			"balance", balance,
			"required", amount)
		return nil, &domain.TreasuryError{
			Cause:           domain.ErrTreasuryInsufficientFunds,
			TreasuryAccount: b.treasuryAccount.String(),
			Balance:         int64(balance),
			Required:        int64(amount),
		}
	}

	destAccount, _, err := solana.FindAssociatedTokenAddress(destination, b.mint)
	if err != nil {
		return nil, fmt.Errorf("%w: derive destination token account: %v", domain.ErrInvalidInput, err)
	}
	destExists, err := b.ledger.AccountExists(ctx, destAccount)
	if err != nil {
		return nil, err
	}

	instructions := make([]solana.Instruction, 0, 2)
	if !destExists {
		log.Info(LogMsgCreatingATA, "destination", destination.String(), "account", destAccount.String())
		instructions = append(instructions,
			associatedtokenaccount.NewCreateInstruction(b.treasuryWallet, destination, b.mint).Build())
	}
	instructions = append(instructions,
		token.NewTransferInstruction(amount, b.treasuryAccount, destAccount, b.treasuryWallet, nil).Build())

	block, err := b.ledger.LatestBlock(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := solana.NewTransaction(instructions, block.Blockhash, solana.TransactionPayer(b.treasuryWallet))
	if err != nil {
		return nil, fmt.Errorf("assemble transfer: %w", err)
	}
	if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(b.treasuryWallet) {
			return &b.treasury
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("sign transfer: %w", err)
	}

	raw, err := tx.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("serialize transfer: %w", err)
	}

	signed := &SignedTransfer{
		Transaction:     base64.StdEncoding.EncodeToString(raw),
		Signature:       tx.Signatures[0],
		LastValidHeight: block.LastValidHeight,
		CreatesAccount:  !destExists,
	}
	log.Debug(LogMsgTransferBuilt,
		"signature", signed.Signature.String(),
		"amount", amount,
		"creates_account", signed.CreatesAccount)
	return signed, nil
}
