package chain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xapes/xma-slots/internal/domain"
)

type rpcRequest struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
}

// rpcStub answers JSON-RPC calls from a table of canned results.
type rpcStub struct {
	mu        sync.Mutex
	results   map[string]string
	throttled map[string]int // remaining 429 responses per method
	calls     map[string]int
}

func newRPCStub(t *testing.T) (*rpcStub, *httptest.Server) {
	stub := &rpcStub{
		results:   make(map[string]string),
		throttled: make(map[string]int),
		calls:     make(map[string]int),
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		stub.mu.Lock()
		stub.calls[req.Method]++
		throttle := stub.throttled[req.Method] > 0
		if throttle {
			stub.throttled[req.Method]--
		}
		result, ok := stub.results[req.Method]
		stub.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch {
		case throttle:
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.ID) + `,"error":{"code":429,"message":"Too many requests"}}`))
		case !ok:
			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.ID) + `,"error":{"code":-32601,"message":"Method not found"}}`))
		default:
			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.ID) + `,"result":` + result + `}`))
		}
	}))
	t.Cleanup(srv.Close)
	return stub, srv
}

func (s *rpcStub) count(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

func newTestRPCLedger(t *testing.T, commitment string) (*RPCLedger, *rpcStub) {
	t.Helper()
	stub, srv := newRPCStub(t)
	l, err := NewRPCLedger(srv.URL, commitment, RetryPolicy{
		MaxRetries:      2,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
	})
	require.NoError(t, err)
	return l, stub
}

func TestNewRPCLedger_RejectsUnknownCommitment(t *testing.T) {
	_, err := NewRPCLedger("http://localhost", "processed", DefaultRetryPolicy())
	assert.Error(t, err)
}

func TestRPCLedger_TransferStatus(t *testing.T) {
	sig := solana.Signature{1, 2, 3}

	tests := []struct {
		name       string
		commitment string
		value      string
		want       TransferStatus
	}{
		{"not found", CommitmentConfirmed, `[null]`, TransferStatus{}},
		{"processed only", CommitmentConfirmed, `[{"slot":1,"confirmations":0,"err":null,"confirmationStatus":"processed"}]`, TransferStatus{Found: true}},
		{"confirmed meets confirmed", CommitmentConfirmed, `[{"slot":1,"confirmations":3,"err":null,"confirmationStatus":"confirmed"}]`, TransferStatus{Found: true, Settled: true}},
		{"confirmed below finalized", CommitmentFinalized, `[{"slot":1,"confirmations":3,"err":null,"confirmationStatus":"confirmed"}]`, TransferStatus{Found: true}},
		{"finalized", CommitmentFinalized, `[{"slot":1,"confirmations":null,"err":null,"confirmationStatus":"finalized"}]`, TransferStatus{Found: true, Settled: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, stub := newTestRPCLedger(t, tt.commitment)
			stub.results["getSignatureStatuses"] = `{"context":{"slot":1},"value":` + tt.value + `}`

			got, err := l.TransferStatus(context.Background(), sig)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("failed transfer", func(t *testing.T) {
		l, stub := newTestRPCLedger(t, CommitmentConfirmed)
		stub.results["getSignatureStatuses"] = `{"context":{"slot":1},"value":[{"slot":1,"confirmations":null,"err":{"InstructionError":[0,{"Custom":1}]},"confirmationStatus":"finalized"}]}`

		got, err := l.TransferStatus(context.Background(), sig)
		require.NoError(t, err)
		assert.True(t, got.Found)
		assert.True(t, got.Failed)
		assert.False(t, got.Settled)
		assert.Contains(t, got.Detail, "InstructionError")
	})
}

func TestRPCLedger_AccountsAndBlocks(t *testing.T) {
	l, stub := newTestRPCLedger(t, CommitmentConfirmed)
	hash := solana.HashFromBytes([]byte("fake-ledger-recent-blockhash-000"))

	stub.results["getAccountInfo"] = `{"context":{"slot":1},"value":null}`
	stub.results["getTokenAccountBalance"] = `{"context":{"slot":1},"value":{"amount":"5000000","decimals":6,"uiAmount":5.0,"uiAmountString":"5"}}`
	stub.results["getLatestBlockhash"] = `{"context":{"slot":1},"value":{"blockhash":"` + hash.String() + `","lastValidBlockHeight":300}}`
	stub.results["getBlockHeight"] = `250`

	ctx := context.Background()
	account := solana.PublicKey{9}

	exists, err := l.AccountExists(ctx, account)
	require.NoError(t, err)
	assert.False(t, exists)

	balance, err := l.TokenBalance(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, uint64(5_000_000), balance)

	block, err := l.LatestBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, hash, block.Blockhash)
	assert.Equal(t, uint64(300), block.LastValidHeight)

	height, err := l.BlockHeight(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(250), height)
}

func TestRPCLedger_RetriesThrottledCalls(t *testing.T) {
	l, stub := newTestRPCLedger(t, CommitmentConfirmed)
	stub.results["getBlockHeight"] = `250`
	stub.throttled["getBlockHeight"] = 2

	height, err := l.BlockHeight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(250), height)
	assert.Equal(t, 3, stub.count("getBlockHeight"))
}

func TestRPCLedger_UnavailableAfterRetries(t *testing.T) {
	l, stub := newTestRPCLedger(t, CommitmentConfirmed)
	stub.results["getBlockHeight"] = `250`
	stub.throttled["getBlockHeight"] = 10

	_, err := l.BlockHeight(context.Background())
	assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
	assert.Equal(t, 3, stub.count("getBlockHeight"))
}

func TestRPCLedger_NonThrottleErrorsNotRetried(t *testing.T) {
	l, stub := newTestRPCLedger(t, CommitmentConfirmed)

	_, err := l.BlockHeight(context.Background())
	assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
	assert.Equal(t, 1, stub.count("getBlockHeight"))
}
