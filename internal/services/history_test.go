package services

import (
	"context"
	"testing"

	"loanpayback/internal/models"
)

// limitRecorder captures the limit the service actually passes down.
type limitRecorder struct {
	*mockPredictionRepo
	lastLimit int
}

func (m *limitRecorder) GetUserPredictions(ctx context.Context, userID, limit int) ([]*models.PredictionHistoryItem, error) {
	m.lastLimit = limit
	return m.mockPredictionRepo.GetUserPredictions(ctx, userID, limit)
}

func (m *limitRecorder) GetUserBatches(ctx context.Context, userID, limit int) ([]*models.BatchPrediction, error) {
	m.lastLimit = limit
	return m.mockPredictionRepo.GetUserBatches(ctx, userID, limit)
}

func TestGetPredictionHistory_LimitClamp(t *testing.T) {
	repo := &limitRecorder{mockPredictionRepo: newMockPredictionRepo()}
	service := NewPredictionService(testEngine(), repo)

	cases := []struct {
		in   int
		want int
	}{
		{0, 50},
		{-5, 50},
		{101, 50},
		{1, 1},
		{100, 100},
		{25, 25},
	}
	for _, tc := range cases {
		if _, err := service.GetPredictionHistory(context.Background(), 1, tc.in); err != nil {
			t.Fatalf("history fetch failed: %v", err)
		}
		if repo.lastLimit != tc.want {
			t.Fatalf("limit %d: expected clamp to %d, got %d", tc.in, tc.want, repo.lastLimit)
		}
	}
}

func TestGetBatchHistory_LimitClamp(t *testing.T) {
	repo := &limitRecorder{mockPredictionRepo: newMockPredictionRepo()}
	service := NewPredictionService(testEngine(), repo)

	cases := []struct {
		in   int
		want int
	}{
		{0, 20},
		{51, 20},
		{50, 50},
		{10, 10},
	}
	for _, tc := range cases {
		if _, err := service.GetBatchHistory(context.Background(), 1, tc.in); err != nil {
			t.Fatalf("batch history fetch failed: %v", err)
		}
		if repo.lastLimit != tc.want {
			t.Fatalf("limit %d: expected clamp to %d, got %d", tc.in, tc.want, repo.lastLimit)
		}
	}
}
