package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/xapes/xma-slots/internal/domain"
	"github.com/xapes/xma-slots/internal/ledger"
	"github.com/xapes/xma-slots/internal/logger"
)

// GameHandler handles spin purchases, spin results and player reads
type GameHandler struct {
	service ledger.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(service ledger.Service) *GameHandler {
	return &GameHandler{service: service}
}

// SaveGameRequest records a spin purchase or a spin result. With
// SpinsPurchased > 0 it is a purchase at SpinCost per spin.
type SaveGameRequest struct {
	WalletAddress  string          `json:"walletAddress" validate:"required,wallet"`
	SpinCost       decimal.Decimal `json:"spinCost" swaggertype:"number"`
	ResultSymbols  []int           `json:"resultSymbols" validate:"omitempty,len=3,dive,min=0,max=7"`
	WonAmount      decimal.Decimal `json:"wonAmount" swaggertype:"number"`
	SpinsPurchased int             `json:"spinsPurchased" validate:"min=0,max=100"`

	// Accepted for older clients; the ledger never takes absolute values
	UpdateUnclaimedRewards *decimal.Decimal `json:"updateUnclaimedRewards,omitempty" swaggertype:"number"`
	UpdateSpinsRemaining   *int             `json:"updateSpinsRemaining,omitempty"`
}

// SaveGameResponse reports the resulting ledger state
type SaveGameResponse struct {
	Success        bool     `json:"success"`
	Message        string   `json:"message"`
	SpinsRemaining int      `json:"spinsRemaining"`
	WonAmount      *float64 `json:"wonAmount,omitempty"`
}

// SpinRequest asks the server to draw a spin
type SpinRequest struct {
	WalletAddress string `json:"walletAddress" validate:"required,wallet"`
}

// HistoryResponse lists a wallet's recent spins
type HistoryResponse struct {
	WalletAddress string               `json:"walletAddress"`
	History       []domain.HistoryView `json:"history"`
}

// HandleSaveGame records a spin purchase or a client-drawn spin
// @Summary Save game state
// @Description Purchases spins (spinsPurchased > 0) or records a spin result. Wins are recomputed from the symbols and the stored spin cost.
// @Tags game
// @Accept json
// @Produce json
// @Param request body SaveGameRequest true "Save game request"
// @Success 200 {object} SaveGameResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /save-game [post]
func (h *GameHandler) HandleSaveGame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req SaveGameRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Save game"); err != nil {
		return
	}
	if req.UpdateUnclaimedRewards != nil || req.UpdateSpinsRemaining != nil {
		log.Info("Ignoring client-supplied absolute ledger values", "wallet", req.WalletAddress)
	}

	if req.SpinsPurchased > 0 {
		snap, err := h.service.PurchaseSpins(ctx, req.WalletAddress, req.SpinsPurchased, req.SpinCost)
		if err != nil {
			respondServiceError(w, r, ErrMsgSaveGameFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, SaveGameResponse{
			Success:        true,
			Message:        MsgSpinsPurchased,
			SpinsRemaining: snap.SpinsRemaining,
		})
		return
	}

	if len(req.ResultSymbols) == 0 {
		respondError(w, http.StatusBadRequest, ErrMsgSymbolsRequired)
		return
	}
	result, err := h.service.RecordSpin(ctx, req.WalletAddress, req.ResultSymbols, req.WonAmount)
	if err != nil {
		respondServiceError(w, r, ErrMsgSaveGameFailed, err)
		return
	}
	won := result.WonAmount
	respondJSON(w, http.StatusOK, SaveGameResponse{
		Success:        true,
		Message:        MsgGameSaved,
		SpinsRemaining: result.SpinsRemaining,
		WonAmount:      &won,
	})
}

// HandleSpin draws a spin on the server and settles it
// @Summary Spin
// @Description Consumes one purchased spin, draws the reels and credits any win.
// @Tags game
// @Accept json
// @Produce json
// @Param request body SpinRequest true "Spin request"
// @Success 200 {object} domain.SpinResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /spin [post]
func (h *GameHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	var req SpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin"); err != nil {
		return
	}

	result, err := h.service.Spin(r.Context(), req.WalletAddress)
	if err != nil {
		respondServiceError(w, r, ErrMsgSpinFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleLoadPlayer returns a wallet's ledger in display units
// @Summary Load player
// @Description Unknown wallets return an empty ledger.
// @Tags game
// @Produce json
// @Param walletAddress query string true "Wallet address"
// @Success 200 {object} domain.PlayerSnapshot
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /load-player [get]
func (h *GameHandler) HandleLoadPlayer(w http.ResponseWriter, r *http.Request) {
	wallet, ok := GetQueryParam(r, w, "walletAddress")
	if !ok {
		return
	}

	snap, err := h.service.LoadPlayer(r.Context(), wallet)
	if err != nil {
		respondServiceError(w, r, ErrMsgLoadPlayerFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// HandleHistory returns a wallet's most recent spins
// @Summary Spin history
// @Tags game
// @Produce json
// @Param walletAddress query string true "Wallet address"
// @Param limit query int false "Maximum entries (default 20, max 100)"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /history [get]
func (h *GameHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	wallet, ok := GetQueryParam(r, w, "walletAddress")
	if !ok {
		return
	}
	limit, ok := GetLimitParam(r, w)
	if !ok {
		return
	}

	entries, err := h.service.GetHistory(r.Context(), wallet, limit)
	if err != nil {
		respondServiceError(w, r, ErrMsgLoadHistoryFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, HistoryResponse{WalletAddress: wallet, History: domain.NewHistoryViews(entries)})
}
