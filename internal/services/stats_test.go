package services

import (
	"context"
	"testing"

	"loanpayback/internal/apperrors"
	"loanpayback/internal/models"
	"loanpayback/internal/repository"
)

type mockStatsRepo struct {
	singleTotal    int
	singleApproved int
	batches        int
	batchApps      int
	batchApproved  int
	batchRejected  int
	buckets        []*models.CreditScoreBucket
	userStats      *models.UserStatistics
	lastLimit      int
}

func (m *mockStatsRepo) CountSinglePredictions(_ context.Context, _ int) (int, int, error) {
	return m.singleTotal, m.singleApproved, nil
}

func (m *mockStatsRepo) CountBatchPredictions(_ context.Context, _ int) (int, int, int, int, error) {
	return m.batches, m.batchApps, m.batchApproved, m.batchRejected, nil
}

func (m *mockStatsRepo) GetUserStatistics(_ context.Context, _ int) (*models.UserStatistics, error) {
	if m.userStats == nil {
		return nil, repository.ErrNoRows
	}
	return m.userStats, nil
}

func (m *mockStatsRepo) GetAllUserStatistics(_ context.Context) ([]*models.UserStatistics, error) {
	return nil, nil
}

func (m *mockStatsRepo) GetCreditScoreBuckets(_ context.Context) ([]*models.CreditScoreBucket, error) {
	return m.buckets, nil
}

func (m *mockStatsRepo) GetRecentPredictions(_ context.Context, limit int) ([]*models.RecentPrediction, error) {
	m.lastLimit = limit
	return nil, nil
}

func TestOverview(t *testing.T) {
	service := NewStatsService(&mockStatsRepo{
		singleTotal:    10,
		singleApproved: 6,
		batches:        2,
		batchApps:      40,
		batchApproved:  25,
		batchRejected:  15,
	})

	overview, err := service.Overview(context.Background(), 1)
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}

	if overview.SinglePredictions.Rejected != 4 {
		t.Fatalf("expected 4 rejected singles, got %d", overview.SinglePredictions.Rejected)
	}
	if overview.SinglePredictions.ApprovalRate != 60 {
		t.Fatalf("expected 60%% single rate, got %v", overview.SinglePredictions.ApprovalRate)
	}
	if overview.BatchPredictions.ApprovalRate != 62.5 {
		t.Fatalf("expected 62.5%% batch rate, got %v", overview.BatchPredictions.ApprovalRate)
	}
	if overview.Overall.TotalPredictions != 50 {
		t.Fatalf("expected 50 overall, got %d", overview.Overall.TotalPredictions)
	}
}

func TestOverview_Empty(t *testing.T) {
	service := NewStatsService(&mockStatsRepo{})

	overview, err := service.Overview(context.Background(), 1)
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}

	// No history reports rate 0, never a division error.
	if overview.SinglePredictions.ApprovalRate != 0 || overview.BatchPredictions.ApprovalRate != 0 {
		t.Fatalf("empty history must report 0 rates, got %+v", overview)
	}
}

func TestCreditScoreAnalysis_Rates(t *testing.T) {
	service := NewStatsService(&mockStatsRepo{
		buckets: []*models.CreditScoreBucket{
			{ScoreRange: "740-799", TotalApplications: 8, Approved: 6, Rejected: 2},
			{ScoreRange: "300-579", TotalApplications: 0, Approved: 0, Rejected: 0},
		},
	})

	buckets, err := service.CreditScoreAnalysis(context.Background())
	if err != nil {
		t.Fatalf("analysis failed: %v", err)
	}
	if buckets[0].ApprovalRate != 75 {
		t.Fatalf("expected 75%%, got %v", buckets[0].ApprovalRate)
	}
	if buckets[1].ApprovalRate != 0 {
		t.Fatalf("empty bucket must report 0, got %v", buckets[1].ApprovalRate)
	}
}

func TestUserStatistics_NotFound(t *testing.T) {
	service := NewStatsService(&mockStatsRepo{})

	_, err := service.UserStatistics(context.Background(), 1)
	if apperrors.KindOf(err) != apperrors.NotFound {
		t.Fatalf("expected NotFound kind, got %v", err)
	}
}

func TestRecentPredictions_LimitClamp(t *testing.T) {
	repo := &mockStatsRepo{}
	service := NewStatsService(repo)

	cases := []struct {
		in   int
		want int
	}{
		{0, 50},
		{101, 50},
		{100, 100},
		{5, 5},
	}
	for _, tc := range cases {
		if _, err := service.RecentPredictions(context.Background(), tc.in); err != nil {
			t.Fatalf("recent fetch failed: %v", err)
		}
		if repo.lastLimit != tc.want {
			t.Fatalf("limit %d: expected clamp to %d, got %d", tc.in, tc.want, repo.lastLimit)
		}
	}
}
