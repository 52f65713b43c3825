// Command treasury-key creates or converts the treasury secret key in the
// JSON byte-array form TREASURY_PRIVATE_KEY accepts.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gagliardetto/solana-go"

	"github.com/xapes/xma-slots/internal/chain"
)

func main() {
	generate := flag.Bool("generate", false, "Generate a new treasury keypair")
	convert := flag.String("convert", "", "Convert a base58 secret key to the JSON array form")
	flag.Parse()

	var (
		key solana.PrivateKey
		err error
	)
	switch {
	case *generate && *convert != "":
		log.Fatal("Use either -generate or -convert, not both")
	case *generate:
		key, err = solana.NewRandomPrivateKey()
	case *convert != "":
		key, err = parseBase58Key(*convert)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("Failed to load key: %v", err)
	}

	if err := printKey(os.Stdout, key, *generate); err != nil {
		log.Fatalf("Failed to encode key: %v", err)
	}
}

// parseBase58Key decodes a base58 secret key and checks it round-trips
// through the same parser the server uses
func parseBase58Key(raw string) (solana.PrivateKey, error) {
	key, err := solana.PrivateKeyFromBase58(raw)
	if err != nil {
		return nil, err
	}
	if _, err := chain.ParseTreasuryKey(raw, key.PublicKey().String()); err != nil {
		return nil, err
	}
	return key, nil
}

func printKey(w io.Writer, key solana.PrivateKey, isNew bool) error {
	encoded, err := chain.EncodeKeyJSON(key)
	if err != nil {
		return err
	}

	if isNew {
		fmt.Fprintln(w, "✓ New keypair generated")
	} else {
		fmt.Fprintln(w, "✓ Key converted")
	}
	fmt.Fprintf(w, "\nTREASURY_WALLET=%s\n", key.PublicKey())
	fmt.Fprintf(w, "TREASURY_PRIVATE_KEY=%s\n", encoded)
	fmt.Fprintln(w, "\nStore the secret key in your secret manager; it controls the treasury funds.")
	return nil
}
