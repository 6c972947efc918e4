package handlers

import (
	"net/http"
	"strconv"

	"loanpayback/internal/apperrors"
	"loanpayback/internal/middleware"
	"loanpayback/internal/services"
	helpers "loanpayback/internal/utils/helpers"
)

type StatsHandler struct {
	stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Overview godoc
// @Summary Statistics overview for the current user
// @Tags statistics
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.StatisticsOverview
// @Router /statistics [get]
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, apperrors.New(apperrors.Unauthenticated, "unauthorized"))
		return
	}

	overview, err := h.stats.Overview(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, overview)
}

// UserStatistics godoc
// @Summary Aggregated metrics for the current user
// @Tags statistics
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.UserStatistics
// @Router /statistics/user [get]
func (h *StatsHandler) UserStatistics(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, apperrors.New(apperrors.Unauthenticated, "unauthorized"))
		return
	}

	stats, err := h.stats.UserStatistics(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, stats)
}

// CreditScoreAnalysis godoc
// @Summary Approval rates bucketed by credit score range
// @Tags statistics
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.CreditScoreBucket
// @Router /statistics/credit-score [get]
func (h *StatsHandler) CreditScoreAnalysis(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.stats.CreditScoreAnalysis(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, buckets)
}

// Recent godoc
// @Summary Most recent predictions across sources
// @Tags statistics
// @Security ApiKeyAuth
// @Produce json
// @Param limit query int false "Max items (1-100, default 50)"
// @Success 200 {array} models.RecentPrediction
// @Router /statistics/recent [get]
func (h *StatsHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, err := h.stats.RecentPredictions(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, items)
}
