package chain

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xapes/xma-slots/internal/domain"
)

type transferFixture struct {
	ledger   *FakeLedger
	builder  *TransferBuilder
	treasury solana.PrivateKey
	mint     solana.PublicKey
	player   solana.PublicKey
}

func newTransferFixture(t *testing.T) *transferFixture {
	t.Helper()
	treasury, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	mintKey, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	playerKey, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	ledger := NewFakeLedger()
	builder, err := NewTransferBuilder(ledger, mintKey.PublicKey(), treasury)
	require.NoError(t, err)

	return &transferFixture{
		ledger:   ledger,
		builder:  builder,
		treasury: treasury,
		mint:     mintKey.PublicKey(),
		player:   playerKey.PublicKey(),
	}
}

func decodeTransfer(t *testing.T, signed *SignedTransfer) *solana.Transaction {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(signed.Transaction)
	require.NoError(t, err)
	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	require.NoError(t, err)
	return tx
}

func programIDs(t *testing.T, tx *solana.Transaction) []solana.PublicKey {
	t.Helper()
	ids := make([]solana.PublicKey, 0, len(tx.Message.Instructions))
	for _, ix := range tx.Message.Instructions {
		ids = append(ids, tx.Message.AccountKeys[ix.ProgramIDIndex])
	}
	return ids
}

func TestBuildTransfer_ExistingDestination(t *testing.T) {
	f := newTransferFixture(t)
	f.ledger.SetAccount(f.builder.TreasuryAccount(), 10_000_000)
	dest, _, err := solana.FindAssociatedTokenAddress(f.player, f.mint)
	require.NoError(t, err)
	f.ledger.SetAccount(dest, 0)

	signed, err := f.builder.BuildTransfer(context.Background(), f.player, 5_000_000)
	require.NoError(t, err)
	assert.False(t, signed.CreatesAccount)
	assert.Equal(t, uint64(1150), signed.LastValidHeight)

	tx := decodeTransfer(t, signed)
	assert.Equal(t, signed.Signature, tx.Signatures[0])
	assert.Len(t, tx.Signatures, 1, "treasury is the sole signer")
	assert.Equal(t, f.treasury.PublicKey(), tx.Message.AccountKeys[0], "treasury pays fees")
	assert.Equal(t, []solana.PublicKey{solana.TokenProgramID}, programIDs(t, tx))
	require.NoError(t, tx.VerifySignatures())
}

func TestBuildTransfer_CreatesMissingDestination(t *testing.T) {
	f := newTransferFixture(t)
	f.ledger.SetAccount(f.builder.TreasuryAccount(), 10_000_000)

	signed, err := f.builder.BuildTransfer(context.Background(), f.player, 5_000_000)
	require.NoError(t, err)
	assert.True(t, signed.CreatesAccount)

	tx := decodeTransfer(t, signed)
	assert.Equal(t,
		[]solana.PublicKey{solana.SPLAssociatedTokenAccountProgramID, solana.TokenProgramID},
		programIDs(t, tx))
}

func TestBuildTransfer_TreasuryErrors(t *testing.T) {
	t.Run("missing treasury account", func(t *testing.T) {
		f := newTransferFixture(t)

		_, err := f.builder.BuildTransfer(context.Background(), f.player, 5_000_000)
		require.ErrorIs(t, err, domain.ErrTreasuryAccountMissing)

		var te *domain.TreasuryError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, f.builder.TreasuryAccount().String(), te.TreasuryAccount)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		f := newTransferFixture(t)
		f.ledger.SetAccount(f.builder.TreasuryAccount(), 1_000_000)

		_, err := f.builder.BuildTransfer(context.Background(), f.player, 5_000_000)
		require.ErrorIs(t, err, domain.ErrTreasuryInsufficientFunds)

		var te *domain.TreasuryError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, int64(1_000_000), te.Balance)
		assert.Equal(t, int64(5_000_000), te.Required)
		assert.Zero(t, f.ledger.CallCount("LatestBlock"), "nothing built after the balance check")
	})

	t.Run("ledger unavailable", func(t *testing.T) {
		f := newTransferFixture(t)
		f.ledger.Err = domain.ErrLedgerUnavailable

		_, err := f.builder.BuildTransfer(context.Background(), f.player, 5_000_000)
		assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
	})
}
