package handlers

import (
	"net/http"
	"strconv"

	"loanpayback/internal/apperrors"
	"loanpayback/internal/middleware"
	"loanpayback/internal/services"
	helpers "loanpayback/internal/utils/helpers"

	"github.com/gorilla/mux"
)

type HistoryHandler struct {
	predictions *services.PredictionService
}

func NewHistoryHandler(predictions *services.PredictionService) *HistoryHandler {
	return &HistoryHandler{predictions: predictions}
}

// queryLimit reads ?limit= and leaves clamping to the service.
func queryLimit(r *http.Request) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return limit
}

// Predictions godoc
// @Summary Single prediction history
// @Tags history
// @Security ApiKeyAuth
// @Produce json
// @Param limit query int false "Max items (1-100, default 50)"
// @Success 200 {array} models.PredictionHistoryItem
// @Router /history/predictions [get]
func (h *HistoryHandler) Predictions(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, apperrors.New(apperrors.Unauthenticated, "unauthorized"))
		return
	}

	items, err := h.predictions.GetPredictionHistory(r.Context(), user.ID, queryLimit(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, items)
}

// Batches godoc
// @Summary Batch history
// @Tags history
// @Security ApiKeyAuth
// @Produce json
// @Param limit query int false "Max items (1-50, default 20)"
// @Success 200 {array} models.BatchPrediction
// @Router /history/batch [get]
func (h *HistoryHandler) Batches(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, apperrors.New(apperrors.Unauthenticated, "unauthorized"))
		return
	}

	items, err := h.predictions.GetBatchHistory(r.Context(), user.ID, queryLimit(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, items)
}

// BatchDetails godoc
// @Summary One batch with its per-row details
// @Tags history
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Batch ID"
// @Success 200 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Router /history/batch/{id} [get]
func (h *HistoryHandler) BatchDetails(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, apperrors.New(apperrors.Unauthenticated, "unauthorized"))
		return
	}

	batchID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, r, apperrors.New(apperrors.Validation, "invalid batch id"))
		return
	}

	batch, details, err := h.predictions.GetBatchWithDetails(r.Context(), user.ID, batchID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]any{
		"batch":   batch,
		"details": details,
	})
}
