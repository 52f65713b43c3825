package chain

import (
	"context"
	"sync"

	"github.com/gagliardetto/solana-go"
)

// FakeLedger is an in-memory Ledger for tests.
type FakeLedger struct {
	mu        sync.Mutex
	accounts  map[solana.PublicKey]uint64
	statuses  map[solana.Signature]TransferStatus
	height    uint64
	blockhash solana.Hash
	validFor  uint64
	Err       error // returned by every call when set
	Calls     map[string]int
}

// NewFakeLedger starts at block height 1000 with transfers valid for 150 blocks.
func NewFakeLedger() *FakeLedger {
	return &FakeLedger{
		accounts:  make(map[solana.PublicKey]uint64),
		statuses:  make(map[solana.Signature]TransferStatus),
		height:    1000,
		blockhash: solana.HashFromBytes([]byte("fake-ledger-recent-blockhash-000")),
		validFor:  150,
		Calls:     make(map[string]int),
	}
}

// SetAccount creates account with the given token balance
func (f *FakeLedger) SetAccount(account solana.PublicKey, balance uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[account] = balance
}

// SetStatus records what the ledger reports for sig
func (f *FakeLedger) SetStatus(sig solana.Signature, st TransferStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[sig] = st
}

// SetHeight moves the current block height
func (f *FakeLedger) SetHeight(h uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.height = h
}

// CallCount returns how often method was invoked
func (f *FakeLedger) CallCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[method]
}

func (f *FakeLedger) call(method string) error {
	f.Calls[method]++
	return f.Err
}

func (f *FakeLedger) AccountExists(_ context.Context, account solana.PublicKey) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call("AccountExists"); err != nil {
		return false, err
	}
	_, ok := f.accounts[account]
	return ok, nil
}

func (f *FakeLedger) TokenBalance(_ context.Context, account solana.PublicKey) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call("TokenBalance"); err != nil {
		return 0, err
	}
	return f.accounts[account], nil
}

func (f *FakeLedger) LatestBlock(context.Context) (BlockRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call("LatestBlock"); err != nil {
		return BlockRef{}, err
	}
	return BlockRef{Blockhash: f.blockhash, LastValidHeight: f.height + f.validFor}, nil
}

func (f *FakeLedger) BlockHeight(context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call("BlockHeight"); err != nil {
		return 0, err
	}
	return f.height, nil
}

func (f *FakeLedger) TransferStatus(_ context.Context, sig solana.Signature) (TransferStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call("TransferStatus"); err != nil {
		return TransferStatus{}, err
	}
	return f.statuses[sig], nil
}
