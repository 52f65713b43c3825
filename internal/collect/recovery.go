package collect

import (
	"context"
	"fmt"

	"github.com/xapes/xma-slots/internal/chain"
	"github.com/xapes/xma-slots/internal/domain"
	"github.com/xapes/xma-slots/internal/logger"
	"github.com/xapes/xma-slots/internal/metrics"
)

// RecoverAbandoned resolves reservations whose client never confirmed.
// Each reservation is checked against the external ledger: settled transfers
// are cleared, failed ones restored, and ones that can no longer land (not
// found and past their last valid block height) restored. Anything else is
// left for a later sweep.
func (s *Service) RecoverAbandoned(ctx context.Context) (*domain.RecoveryReport, error) {
	log := logger.FromContext(ctx)

	cutoff := s.now().Add(-s.cfg.RecoveryMinAge)
	players, err := s.players.ListPendingCollects(ctx, cutoff, s.cfg.RecoveryBatch)
	if err != nil {
		return nil, err
	}

	report := &domain.RecoveryReport{Outcomes: make(map[domain.RecoveryOutcome]int)}
	if len(players) == 0 {
		return report, nil
	}
	log.Info(LogMsgRecoveryStarted, "count", len(players), "cutoff", cutoff)

	h := &heightCache{ledger: s.ledger}
	for i := range players {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		p := &players[i]
		report.Examined++

		outcome, err := s.recoverOne(ctx, p, h)
		if err != nil {
			report.Errors++
			log.Error(LogMsgRecoveryFailed, "wallet", p.WalletAddress, "error", err)
			continue
		}
		report.Outcomes[outcome]++
		metrics.RecordRecovery(outcome, recoveredAmount(outcome, p))
		if outcome != domain.RecoverySkipped {
			log.Info(LogMsgRecoveryResolved,
				"wallet", p.WalletAddress,
				"signature", p.PendingCollect.Signature,
				"amount", p.PendingCollect.Amount,
				"outcome", outcome)
		}
	}

	log.Info(LogMsgRecoveryFinished,
		"examined", report.Examined,
		"outcomes", report.Outcomes,
		"errors", report.Errors)
	return report, nil
}

func (s *Service) recoverOne(ctx context.Context, p *domain.Player, h *heightCache) (domain.RecoveryOutcome, error) {
	pending := p.PendingCollect
	if pending == nil {
		return domain.RecoverySkipped, nil
	}

	sig, err := chain.ParseSignature(pending.Signature)
	if err != nil {
		return "", fmt.Errorf("stored signature: %w", err)
	}

	status, err := s.ledger.TransferStatus(ctx, sig)
	if err != nil {
		return "", err
	}

	switch {
	case status.Settled:
		return s.resolve(ctx, p, false)
	case status.Failed:
		return s.resolve(ctx, p, true)
	case status.Found:
		// Landed but below the required commitment
		return domain.RecoverySkipped, nil
	}

	height, err := h.get(ctx)
	if err != nil {
		return "", err
	}
	if height <= pending.LastValidHeight {
		return domain.RecoverySkipped, nil
	}

	// Expired before the ledger saw it. Check once more in case it landed
	// between the status lookup and the height read.
	status, err = s.ledger.TransferStatus(ctx, sig)
	if err != nil {
		return "", err
	}
	if status.Found {
		return domain.RecoverySkipped, nil
	}
	return s.resolve(ctx, p, true)
}

// resolve clears or restores the reservation. Losing the conditional update
// means a concurrent confirm or sweep resolved it first.
func (s *Service) resolve(ctx context.Context, p *domain.Player, restore bool) (domain.RecoveryOutcome, error) {
	pending := p.PendingCollect
	outcome := domain.RecoveryCleared
	var ok bool
	var err error
	if restore {
		outcome = domain.RecoveryRestored
		ok, err = s.players.RestoreCollect(ctx, p.WalletAddress, pending.Signature, pending.Amount)
	} else {
		ok, err = s.players.ClearCollect(ctx, p.WalletAddress, pending.Signature, pending.Amount)
	}
	if err != nil {
		return "", err
	}
	if !ok {
		return domain.RecoveryLost, nil
	}
	return outcome, nil
}

func recoveredAmount(outcome domain.RecoveryOutcome, p *domain.Player) int64 {
	if outcome != domain.RecoveryCleared || p.PendingCollect == nil {
		return 0
	}
	return p.PendingCollect.Amount
}

// heightCache reads the block height at most once per sweep.
type heightCache struct {
	ledger chain.Ledger
	height uint64
	loaded bool
}

func (h *heightCache) get(ctx context.Context) (uint64, error) {
	if h.loaded {
		return h.height, nil
	}
	height, err := h.ledger.BlockHeight(ctx)
	if err != nil {
		return 0, err
	}
	h.height, h.loaded = height, true
	return height, nil
}
