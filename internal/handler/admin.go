package handler

import (
	"net/http"

	"github.com/xapes/xma-slots/internal/logger"
	"github.com/xapes/xma-slots/internal/stats"
)

// HandleRecoverCollects runs one recovery sweep over abandoned collect reservations (admin only)
// @Summary Recover abandoned collects
// @Description Resolves collect reservations that were never confirmed by checking their transfers on the token network.
// @Tags admin
// @Produce json
// @Success 200 {object} domain.RecoveryReport
// @Failure 500 {object} ErrorResponse
// @Router /admin/recover-collects [post]
// @Security ApiKeyAuth
func HandleRecoverCollects(svc CollectService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		log.Info("Admin requested collect recovery")

		report, err := svc.RecoverAbandoned(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgRecoveryFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, report)
	}
}

// HandleInvalidateStats drops cached leaderboard and totals reads (admin only)
// @Summary Invalidate stats cache
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /admin/stats/invalidate [post]
// @Security ApiKeyAuth
func HandleInvalidateStats(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Invalidate()
		logger.FromContext(r.Context()).Info(MsgStatsInvalidated)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgStatsInvalidated})
	}
}
