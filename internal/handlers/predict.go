package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"loanpayback/internal/apperrors"
	"loanpayback/internal/logger"
	"loanpayback/internal/middleware"
	"loanpayback/internal/models"
	"loanpayback/internal/services"
	helpers "loanpayback/internal/utils/helpers"

	"go.uber.org/zap"
)

// 20 MB cap on uploaded datasets.
const maxUploadBytes = 20 << 20

type PredictHandler struct {
	predictions *services.PredictionService
	batches     *services.BatchService
}

func NewPredictHandler(predictions *services.PredictionService, batches *services.BatchService) *PredictHandler {
	return &PredictHandler{predictions: predictions, batches: batches}
}

// Predict godoc
// @Summary Score one applicant
// @Description Runs the decision pipeline for one applicant and persists the result.
// @Tags predictions
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.Applicant true "Applicant data"
// @Success 200 {object} models.Decision
// @Failure 400 {object} helpers.Response
// @Failure 500 {object} helpers.Response
// @Router /predict [post]
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, apperrors.New(apperrors.Unauthenticated, "unauthorized"))
		return
	}

	var applicant models.Applicant
	if err := json.NewDecoder(r.Body).Decode(&applicant); err != nil {
		writeError(w, r, apperrors.New(apperrors.Validation, "invalid applicant payload"))
		return
	}

	decision, id, err := h.predictions.DecideAndSave(r.Context(), user.ID, &applicant)
	if err != nil {
		writeError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]any{
		"prediction_id":     id,
		"prediction":        decision.Prediction,
		"probability":       decision.Probability,
		"status":            decision.Status,
		"risk_score":        decision.RiskScore,
		"rejection_reasons": decision.RejectionReasons,
	})
}

// PredictBatch godoc
// @Summary Score an uploaded CSV dataset
// @Description Scores every row, isolating per-row failures, and persists the batch.
// @Tags predictions
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV dataset"
// @Param batch_name formData string false "Display name for the batch"
// @Success 200 {object} models.BatchResult
// @Failure 400 {object} helpers.Response
// @Failure 500 {object} helpers.Response
// @Router /predict/batch [post]
func (h *PredictHandler) PredictBatch(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, apperrors.New(apperrors.Unauthenticated, "unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, r, apperrors.New(apperrors.Validation, "upload too large or malformed"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, apperrors.New(apperrors.Validation, "file is required"))
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		writeError(w, r, apperrors.New(apperrors.Validation, "only CSV files are supported"))
		return
	}

	batchName := r.FormValue("batch_name")
	if batchName == "" {
		batchName = strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	}

	result, err := h.batches.Process(r.Context(), user.ID, &services.BatchUpload{
		FileName:  header.Filename,
		BatchName: batchName,
		SizeKB:    float64(header.Size) / 1024.0,
		Data:      file,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("batch processed",
		zap.Int64("batch_id", result.BatchID),
		zap.Int("total", result.TotalApplications))
	helpers.JSON(w, http.StatusOK, result)
}
