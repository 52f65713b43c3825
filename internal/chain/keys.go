package chain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"

	"github.com/xapes/xma-slots/internal/domain"
)

const privateKeyLength = 64

// ParseTreasuryKey accepts a secret key as a JSON array of 64 byte values or
// as a base58 string, and checks that it belongs to expectedWallet.
func ParseTreasuryKey(raw, expectedWallet string) (solana.PrivateKey, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("treasury private key is empty")
	}

	var key solana.PrivateKey
	if strings.HasPrefix(raw, "[") {
		var values []int
		if err := json.Unmarshal([]byte(raw), &values); err != nil {
			return nil, fmt.Errorf("treasury private key is not a JSON byte array: %w", err)
		}
		if len(values) != privateKeyLength {
			return nil, fmt.Errorf("treasury private key has %d bytes, want %d", len(values), privateKeyLength)
		}
		key = make(solana.PrivateKey, privateKeyLength)
		for i, v := range values {
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("treasury private key byte %d out of range: %d", i, v)
			}
			key[i] = byte(v)
		}
	} else {
		k, err := solana.PrivateKeyFromBase58(raw)
		if err != nil {
			return nil, fmt.Errorf("treasury private key is not base58: %w", err)
		}
		if len(k) != privateKeyLength {
			return nil, fmt.Errorf("treasury private key has %d bytes, want %d", len(k), privateKeyLength)
		}
		key = k
	}

	expected, err := solana.PublicKeyFromBase58(expectedWallet)
	if err != nil {
		return nil, fmt.Errorf("treasury wallet %q is invalid: %w", expectedWallet, err)
	}
	if !key.PublicKey().Equals(expected) {
		return nil, fmt.Errorf("treasury key mismatch: key belongs to %s, expected %s", key.PublicKey(), expected)
	}
	return key, nil
}

// EncodeKeyJSON renders a secret key as the JSON byte array ParseTreasuryKey accepts.
func EncodeKeyJSON(key solana.PrivateKey) (string, error) {
	values := make([]int, len(key))
	for i, b := range key {
		values[i] = int(b)
	}
	out, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ParseWallet parses a base58 wallet address.
func ParseWallet(s string) (solana.PublicKey, error) {
	pk, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: invalid wallet address: %v", domain.ErrInvalidInput, err)
	}
	return pk, nil
}

// ParseSignature parses a base58 transfer signature.
func ParseSignature(s string) (solana.Signature, error) {
	sig, err := solana.SignatureFromBase58(s)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("%w: invalid transfer signature: %v", domain.ErrInvalidInput, err)
	}
	return sig, nil
}
