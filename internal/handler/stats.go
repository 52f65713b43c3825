package handler

import (
	"net/http"

	"github.com/xapes/xma-slots/internal/domain"
	"github.com/xapes/xma-slots/internal/stats"
)

// HandleLeaderboard returns ranked players
// @Summary Leaderboard
// @Tags stats
// @Produce json
// @Param sortBy query string false "spins, won or winRate" default(spins)
// @Param limit query int false "Maximum entries (default 100, max 1000)"
// @Success 200 {object} domain.Leaderboard
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /leaderboard [get]
func HandleLeaderboard(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sortBy := GetOptionalQueryParam(r, "sortBy", domain.SortBySpins)
		if !domain.ValidSortKeys[sortBy] {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidSortBy)
			return
		}
		limit, ok := GetLimitParam(r, w)
		if !ok {
			return
		}

		board, err := svc.Leaderboard(r.Context(), sortBy, limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgLoadLeaderboardFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, board)
	}
}

// HandleGameStats returns grand totals across all players
// @Summary Game stats
// @Tags stats
// @Produce json
// @Success 200 {object} domain.GameStats
// @Failure 500 {object} ErrorResponse
// @Router /game-stats [get]
func HandleGameStats(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		totals, err := svc.GameStats(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgLoadGameStatsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, totals)
	}
}
