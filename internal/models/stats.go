package models

import "time"

type SinglePredictionStats struct {
	Total        int     `json:"total"`
	Approved     int     `json:"approved"`
	Rejected     int     `json:"rejected"`
	ApprovalRate float64 `json:"approval_rate"`
}

type BatchPredictionStats struct {
	TotalBatches      int     `json:"total_batches"`
	TotalApplications int     `json:"total_applications"`
	TotalApproved     int     `json:"total_approved"`
	TotalRejected     int     `json:"total_rejected"`
	ApprovalRate      float64 `json:"approval_rate"`
}

type OverallStats struct {
	TotalPredictions int `json:"total_predictions"`
	TotalApproved    int `json:"total_approved"`
	TotalRejected    int `json:"total_rejected"`
}

type StatisticsOverview struct {
	SinglePredictions SinglePredictionStats `json:"single_predictions"`
	BatchPredictions  BatchPredictionStats  `json:"batch_predictions"`
	Overall           OverallStats          `json:"overall"`
}

// UserStatistics is the per-user roll-up (single + batch combined).
type UserStatistics struct {
	UserID                     int        `json:"user_id"`
	Username                   string     `json:"username"`
	Email                      string     `json:"email"`
	TotalSinglePredictions     int        `json:"total_single_predictions"`
	TotalBatches               int        `json:"total_batches"`
	TotalApplicationsProcessed int        `json:"total_applications_processed"`
	TotalApproved              int        `json:"total_approved"`
	TotalRejected              int        `json:"total_rejected"`
	CreatedAt                  time.Time  `json:"created_at"`
	LastLogin                  *time.Time `json:"last_login,omitempty"`
}

// CreditScoreBucket aggregates decisions over one credit-score range.
type CreditScoreBucket struct {
	ScoreRange        string  `json:"score_range"`
	TotalApplications int     `json:"total_applications"`
	Approved          int     `json:"approved"`
	Rejected          int     `json:"rejected"`
	ApprovalRate      float64 `json:"approval_rate"`
}

type RecentPrediction struct {
	ApplicantName string    `json:"applicant_name"`
	CreditScore   int       `json:"credit_score"`
	LoanAmount    float64   `json:"loan_amount"`
	Prediction    int       `json:"prediction"`
	Probability   float64   `json:"probability"`
	CreatedAt     time.Time `json:"prediction_date"`
}
