package handlers

import (
	"net/http"

	"loanpayback/internal/services"
	helpers "loanpayback/internal/utils/helpers"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthHandler struct {
	pool        *pgxpool.Pool
	predictions *services.PredictionService
}

func NewHealthHandler(pool *pgxpool.Pool, predictions *services.PredictionService) *HealthHandler {
	return &HealthHandler{pool: pool, predictions: predictions}
}

// Index godoc
// @Summary Service banner
// @Tags health
// @Produce json
// @Success 200 {object} helpers.Response
// @Router / [get]
func (h *HealthHandler) Index(w http.ResponseWriter, r *http.Request) {
	helpers.JSON(w, http.StatusOK, map[string]string{
		"service": "Loan Payback Prediction API",
		"status":  "running",
		"docs":    "/swagger/index.html",
	})
}

// Health godoc
// @Summary Liveness and readiness report
// @Description Reports store connectivity and scoring model status.
// @Tags health
// @Produce json
// @Success 200 {object} helpers.Response
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	dbStatus := "connected"
	if err := h.pool.Ping(r.Context()); err != nil {
		dbStatus = "unreachable"
	}

	helpers.JSON(w, http.StatusOK, map[string]any{
		"status":        "healthy",
		"database":      dbStatus,
		"model_loaded":  h.predictions.Ready(),
		"feature_count": h.predictions.FeatureCount(),
	})
}
