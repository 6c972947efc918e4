package services

import (
	"context"
	"errors"

	"loanpayback/internal/apperrors"
	"loanpayback/internal/models"
	"loanpayback/internal/repository"
)

// History reads. Out-of-range limits fall back to the defaults.

func (s *PredictionService) GetPredictionHistory(ctx context.Context, userID, limit int) ([]*models.PredictionHistoryItem, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}
	items, err := s.repo.GetUserPredictions(ctx, userID, limit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Unavailable, "failed to fetch history", err)
	}
	return items, nil
}

func (s *PredictionService) GetBatchHistory(ctx context.Context, userID, limit int) ([]*models.BatchPrediction, error) {
	if limit < 1 || limit > 50 {
		limit = 20
	}
	batches, err := s.repo.GetUserBatches(ctx, userID, limit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Unavailable, "failed to fetch batch history", err)
	}
	return batches, nil
}

// GetBatchWithDetails enforces ownership: an unknown id is NotFound, a batch
// owned by someone else is Forbidden.
func (s *PredictionService) GetBatchWithDetails(ctx context.Context, userID int, batchID int64) (*models.BatchPrediction, []*models.BatchPredictionDetail, error) {
	batch, err := s.repo.GetBatchByID(ctx, batchID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, nil, apperrors.ErrBatchNotFound
		}
		return nil, nil, apperrors.Wrap(apperrors.Unavailable, "failed to fetch batch", err)
	}

	if batch.UserID != userID {
		return nil, nil, apperrors.ErrNotBatchOwner
	}

	details, err := s.repo.GetBatchDetails(ctx, batchID)
	if err != nil {
		return nil, nil, apperrors.Wrap(apperrors.Unavailable, "failed to fetch batch details", err)
	}
	return batch, details, nil
}
