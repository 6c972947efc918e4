package services

import (
	"context"

	"loanpayback/internal/apperrors"
	"loanpayback/internal/logger"
	"loanpayback/internal/metrics"
	"loanpayback/internal/ml"
	"loanpayback/internal/models"

	"go.uber.org/zap"
)

const (
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// PredictionService is the decision pipeline: encode one applicant, score,
// shape the result, persist it.
type PredictionService struct {
	engine *ml.Engine
	repo   PredictionRepo
}

type PredictionRepo interface {
	SavePrediction(ctx context.Context, p *models.SinglePrediction) (int64, error)
	SaveBatch(ctx context.Context, b *models.BatchPrediction) (int64, error)
	SaveBatchDetails(ctx context.Context, batchID int64, details []*models.BatchPredictionDetail) error
	GetUserPredictions(ctx context.Context, userID, limit int) ([]*models.PredictionHistoryItem, error)
	GetUserBatches(ctx context.Context, userID, limit int) ([]*models.BatchPrediction, error)
	GetBatchByID(ctx context.Context, batchID int64) (*models.BatchPrediction, error)
	GetBatchDetails(ctx context.Context, batchID int64) ([]*models.BatchPredictionDetail, error)
}

// NewPredictionService accepts a nil engine: the service stays constructible
// when the artifacts failed to load, and every decision then fails fast with
// ErrScoringUnavailable before any work begins.
func NewPredictionService(engine *ml.Engine, repo PredictionRepo) *PredictionService {
	return &PredictionService{engine: engine, repo: repo}
}

func (s *PredictionService) Ready() bool {
	return s.engine != nil
}

func (s *PredictionService) FeatureCount() int {
	if s.engine == nil {
		return 0
	}
	return s.engine.FeatureCount()
}

// Decide runs the pipeline for one applicant. Probability is the mass of the
// approved class; Status is a pure function of the predicted label.
func (s *PredictionService) Decide(a *models.Applicant) (*models.Decision, error) {
	if s.engine == nil {
		return nil, apperrors.ErrScoringUnavailable
	}

	vector := s.engine.Vector(a)
	class, probs := s.engine.Scorer().Score(vector)

	probability := 0.0
	if len(probs) > 1 {
		probability = probs[1]
	}

	status := StatusRejected
	if class == 1 {
		status = StatusApproved
	}

	return &models.Decision{
		Prediction:  class,
		Probability: probability,
		Status:      status,
	}, nil
}

// DecideAndSave runs the pipeline and persists the immutable decision for
// the requesting user.
func (s *PredictionService) DecideAndSave(ctx context.Context, userID int, a *models.Applicant) (*models.Decision, int64, error) {
	decision, err := s.Decide(a)
	if err != nil {
		return nil, 0, err
	}

	name := a.ApplicantName
	if name == "" {
		name = "Unknown"
	}

	record := &models.SinglePrediction{
		UserID:           userID,
		ApplicantName:    name,
		Applicant:        *a,
		Prediction:       decision.Prediction,
		Probability:      decision.Probability,
		RiskScore:        decision.RiskScore,
		RejectionReasons: decision.RejectionReasons,
	}
	record.Applicant.ApplyDefaults()

	id, err := s.repo.SavePrediction(ctx, record)
	if err != nil {
		return nil, 0, apperrors.Wrap(apperrors.Unavailable, "failed to save prediction", err)
	}

	metrics.PredictionsTotal.WithLabelValues(decision.Status).Inc()
	logger.WithCtx(ctx).Info("prediction saved (service)",
		zap.Int("user_id", userID),
		zap.Int64("prediction_id", id),
		zap.String("status", decision.Status),
	)
	return decision, id, nil
}
