package services

import (
	"context"
	"errors"

	"loanpayback/internal/apperrors"
	"loanpayback/internal/models"
	"loanpayback/internal/repository"
)

// StatsService rolls persisted predictions and batches up into summaries.
// Pure reads; every rate is guarded against a zero denominator and reports 0.
type StatsService struct {
	repo StatsRepo
}

type StatsRepo interface {
	CountSinglePredictions(ctx context.Context, userID int) (total, approved int, err error)
	CountBatchPredictions(ctx context.Context, userID int) (batches, applications, approved, rejected int, err error)
	GetUserStatistics(ctx context.Context, userID int) (*models.UserStatistics, error)
	GetAllUserStatistics(ctx context.Context) ([]*models.UserStatistics, error)
	GetCreditScoreBuckets(ctx context.Context) ([]*models.CreditScoreBucket, error)
	GetRecentPredictions(ctx context.Context, limit int) ([]*models.RecentPrediction, error)
}

func NewStatsService(repo StatsRepo) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) Overview(ctx context.Context, userID int) (*models.StatisticsOverview, error) {
	singleTotal, singleApproved, err := s.repo.CountSinglePredictions(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Unavailable, "statistics unavailable", err)
	}
	batches, batchApps, batchApproved, batchRejected, err := s.repo.CountBatchPredictions(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Unavailable, "statistics unavailable", err)
	}

	singleRejected := singleTotal - singleApproved
	return &models.StatisticsOverview{
		SinglePredictions: models.SinglePredictionStats{
			Total:        singleTotal,
			Approved:     singleApproved,
			Rejected:     singleRejected,
			ApprovalRate: safeRate(singleApproved, singleTotal),
		},
		BatchPredictions: models.BatchPredictionStats{
			TotalBatches:      batches,
			TotalApplications: batchApps,
			TotalApproved:     batchApproved,
			TotalRejected:     batchRejected,
			ApprovalRate:      safeRate(batchApproved, batchApps),
		},
		Overall: models.OverallStats{
			TotalPredictions: singleTotal + batchApps,
			TotalApproved:    singleApproved + batchApproved,
			TotalRejected:    singleRejected + batchRejected,
		},
	}, nil
}

func (s *StatsService) UserStatistics(ctx context.Context, userID int) (*models.UserStatistics, error) {
	stats, err := s.repo.GetUserStatistics(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, apperrors.New(apperrors.NotFound, "statistics not available")
		}
		return nil, apperrors.Wrap(apperrors.Unavailable, "statistics unavailable", err)
	}
	return stats, nil
}

func (s *StatsService) AllUserStatistics(ctx context.Context) ([]*models.UserStatistics, error) {
	stats, err := s.repo.GetAllUserStatistics(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Unavailable, "statistics unavailable", err)
	}
	return stats, nil
}

func (s *StatsService) CreditScoreAnalysis(ctx context.Context) ([]*models.CreditScoreBucket, error) {
	buckets, err := s.repo.GetCreditScoreBuckets(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Unavailable, "statistics unavailable", err)
	}
	for _, b := range buckets {
		b.ApprovalRate = safeRate(b.Approved, b.Approved+b.Rejected)
	}
	return buckets, nil
}

func (s *StatsService) RecentPredictions(ctx context.Context, limit int) ([]*models.RecentPrediction, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}
	recent, err := s.repo.GetRecentPredictions(ctx, limit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Unavailable, "statistics unavailable", err)
	}
	return recent, nil
}

// safeRate is the percentage part/total rounded to 2 decimals, 0 when total
// is 0.
func safeRate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(part) / float64(total) * 100)
}
