package collect

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/xapes/xma-slots/internal/chain"
	"github.com/xapes/xma-slots/internal/domain"
	"github.com/xapes/xma-slots/internal/logger"
	"github.com/xapes/xma-slots/internal/metrics"
)

// ConfirmCollect settles the wallet's reservation for transferID against the
// external ledger. Repeated confirmations are harmless.
func (s *Service) ConfirmCollect(ctx context.Context, wallet, transferID string, claimed decimal.Decimal) (*domain.ConfirmResult, error) {
	log := logger.FromContext(ctx)

	if _, err := chain.ParseWallet(wallet); err != nil {
		return nil, err
	}
	sig, err := chain.ParseSignature(transferID)
	if err != nil {
		return nil, err
	}

	player, err := s.players.GetPlayer(ctx, wallet)
	if err != nil {
		return nil, err
	}

	pending := player.PendingCollect
	if !player.HasPendingCollect() {
		log.Info(LogMsgCollectAlreadyClear, "wallet", wallet, "signature", transferID)
		return s.confirmed(domain.ConfirmStatusAlreadyCleared, 0), nil
	}
	if pending.Signature != transferID {
		return nil, fmt.Errorf("%w: transfer does not match the outstanding collect", domain.ErrInvalidInput)
	}
	if claimedMinor, err := domain.ToMinorUnits(claimed); err == nil && domain.AbsDiff(claimedMinor, pending.Amount) > domain.MinorUnitEpsilon {
		log.Warn(LogMsgConfirmAmountDiffers,
			"wallet", wallet,
			"claimed", claimedMinor,
			"reserved", pending.Amount)
	}

	status, err := s.ledger.TransferStatus(ctx, sig)
	if err != nil {
		return nil, err
	}

	switch {
	case status.Failed:
		log.Warn(LogMsgTransferFailed, "wallet", wallet, "signature", transferID, "detail", status.Detail)
		restored, err := s.players.RestoreCollect(ctx, wallet, pending.Signature, pending.Amount)
		if err != nil {
			return nil, err
		}
		if !restored {
			log.Info(LogMsgRestoreLostRace, "wallet", wallet, "signature", transferID)
		}
		metrics.RecordConfirmation(OutcomeTransferFailed, 0)
		return nil, &domain.TransferFailedError{Signature: transferID, Detail: status.Detail}

	case !status.Settled:
		log.Debug(LogMsgCollectPending, "wallet", wallet, "signature", transferID, "found", status.Found)
		return s.confirmed(domain.ConfirmStatusPending, 0), nil
	}

	cleared, err := s.players.ClearCollect(ctx, wallet, pending.Signature, pending.Amount)
	if err != nil {
		return nil, err
	}
	if !cleared {
		log.Info(LogMsgCollectAlreadyClear, "wallet", wallet, "signature", transferID)
		return s.confirmed(domain.ConfirmStatusAlreadyCleared, 0), nil
	}

	log.Info(LogMsgCollectCleared, "wallet", wallet, "signature", transferID, "amount", pending.Amount)
	return s.confirmed(domain.ConfirmStatusCleared, pending.Amount), nil
}

func (s *Service) confirmed(status domain.ConfirmStatus, amount int64) *domain.ConfirmResult {
	metrics.RecordConfirmation(status, amount)
	return &domain.ConfirmResult{Status: status, Amount: amount}
}
