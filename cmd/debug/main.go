// Command debug prints a wallet's ledger row and recent spins, or lists
// collect reservations older than a given age.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/xapes/xma-slots/internal/config"
	"github.com/xapes/xma-slots/internal/database"
	"github.com/xapes/xma-slots/internal/database/postgres"
	"github.com/xapes/xma-slots/internal/domain"
)

func main() {
	wallet := flag.String("wallet", "", "Wallet address to inspect")
	pendingAge := flag.Duration("pending", 0, "List collect reservations older than this age")
	limit := flag.Int("limit", 20, "Maximum rows to print")
	flag.Parse()

	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), 2, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()
	players := postgres.NewPlayerRepository(dbPool)

	if *wallet != "" {
		p, err := players.GetPlayer(ctx, *wallet)
		if errors.Is(err, domain.ErrPlayerNotFound) {
			fmt.Printf("No ledger row for %s\n", *wallet)
			return
		}
		if err != nil {
			log.Fatalf("Failed to load player: %v", err)
		}
		printPlayer(p)

		history, err := postgres.NewHistoryRepository(dbPool).GetHistory(ctx, *wallet, *limit)
		if err != nil {
			log.Printf("Failed to load history: %v", err)
			return
		}
		fmt.Println("\n--- Recent spins ---")
		for _, h := range history {
			fmt.Printf("%s  symbols=%v stake=%d win=%d\n", h.Timestamp.Format(time.RFC3339), h.ResultSymbols, h.SpinCost, h.WonAmount)
		}
	}

	if *pendingAge > 0 {
		fmt.Println("\n--- Stale collect reservations ---")
		stale, err := players.ListPendingCollects(ctx, time.Now().Add(-*pendingAge), *limit)
		if err != nil {
			log.Fatalf("Failed to list reservations: %v", err)
		}
		for i := range stale {
			printPlayer(&stale[i])
		}
		fmt.Printf("%d reservation(s)\n", len(stale))
	}
}

func printPlayer(p *domain.Player) {
	snap := domain.NewPlayerSnapshot(p.WalletAddress, p)
	fmt.Printf("Wallet: %s  spins=%d won=%.6f wagered=%.6f unclaimed=%.6f credits=%d\n",
		snap.WalletAddress, snap.TotalSpins, snap.TotalWon, snap.TotalWagered, snap.UnclaimedRewards, snap.SpinsRemaining)
	if pc := p.PendingCollect; pc != nil {
		fmt.Printf("  pending: amount=%d signature=%s reserved_at=%s valid_until_height=%d\n",
			pc.Amount, pc.Signature, pc.ReservedAt.Format(time.RFC3339), pc.LastValidHeight)
	}
}
