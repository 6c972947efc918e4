package repository

import (
	"context"

	"loanpayback/internal/logger"
	"loanpayback/internal/models"

	"go.uber.org/zap"
)

// Aggregate reads used by the statistics service. Read-only, no mutation.

func (r *PredictionRepository) CountSinglePredictions(ctx context.Context, userID int) (total, approved int, err error) {
	query := `
	SELECT COUNT(*), COUNT(*) FILTER (WHERE prediction = 1)
	FROM single_predictions
	WHERE user_id = $1`
	err = r.db.QueryRow(ctx, query, userID).Scan(&total, &approved)
	if err != nil {
		logger.Log.Error("single prediction counts failed (repo)", zap.Error(err), zap.Int("user_id", userID))
	}
	return total, approved, err
}

func (r *PredictionRepository) CountBatchPredictions(ctx context.Context, userID int) (batches, applications, approved, rejected int, err error) {
	query := `
	SELECT COUNT(*),
	       COALESCE(SUM(total_applications), 0),
	       COALESCE(SUM(approved_applications), 0),
	       COALESCE(SUM(rejected_applications), 0)
	FROM batch_predictions
	WHERE user_id = $1`
	err = r.db.QueryRow(ctx, query, userID).Scan(&batches, &applications, &approved, &rejected)
	if err != nil {
		logger.Log.Error("batch prediction counts failed (repo)", zap.Error(err), zap.Int("user_id", userID))
	}
	return batches, applications, approved, rejected, err
}

const userStatisticsQuery = `
	SELECT u.id, u.username, u.email, u.created_at, u.last_login,
	       COALESCE(sp.total, 0), COALESCE(sp.approved, 0),
	       COALESCE(bp.batches, 0), COALESCE(bp.applications, 0),
	       COALESCE(bp.approved, 0), COALESCE(bp.rejected, 0)
	FROM users u
	LEFT JOIN (
		SELECT user_id, COUNT(*) AS total, COUNT(*) FILTER (WHERE prediction = 1) AS approved
		FROM single_predictions GROUP BY user_id
	) sp ON sp.user_id = u.id
	LEFT JOIN (
		SELECT user_id, COUNT(*) AS batches, SUM(total_applications) AS applications,
		       SUM(approved_applications) AS approved, SUM(rejected_applications) AS rejected
		FROM batch_predictions GROUP BY user_id
	) bp ON bp.user_id = u.id`

func (r *PredictionRepository) GetUserStatistics(ctx context.Context, userID int) (*models.UserStatistics, error) {
	row := r.db.QueryRow(ctx, userStatisticsQuery+` WHERE u.id = $1`, userID)
	return scanUserStatistics(row)
}

func (r *PredictionRepository) GetAllUserStatistics(ctx context.Context) ([]*models.UserStatistics, error) {
	rows, err := r.db.Query(ctx, userStatisticsQuery+` ORDER BY u.created_at DESC`)
	if err != nil {
		logger.Log.Error("all-user statistics query failed (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var stats []*models.UserStatistics
	for rows.Next() {
		s, err := scanUserStatistics(rows)
		if err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func scanUserStatistics(row rowScanner) (*models.UserStatistics, error) {
	var s models.UserStatistics
	var singleTotal, singleApproved int
	var batchApps, batchApproved, batchRejected int
	err := row.Scan(
		&s.UserID, &s.Username, &s.Email, &s.CreatedAt, &s.LastLogin,
		&singleTotal, &singleApproved,
		&s.TotalBatches, &batchApps, &batchApproved, &batchRejected,
	)
	if err != nil {
		return nil, err
	}
	s.TotalSinglePredictions = singleTotal
	s.TotalApplicationsProcessed = singleTotal + batchApps
	s.TotalApproved = singleApproved + batchApproved
	s.TotalRejected = (singleTotal - singleApproved) + batchRejected
	return &s, nil
}

// GetCreditScoreBuckets groups decisions by credit score range across single
// predictions and batch rows that produced a decision.
func (r *PredictionRepository) GetCreditScoreBuckets(ctx context.Context) ([]*models.CreditScoreBucket, error) {
	query := `
	WITH decisions AS (
		SELECT credit_score, prediction FROM single_predictions
		UNION ALL
		SELECT credit_score, prediction FROM batch_prediction_details WHERE prediction IS NOT NULL
	)
	SELECT CASE
	         WHEN credit_score < 580 THEN 'Poor (<580)'
	         WHEN credit_score < 670 THEN 'Fair (580-669)'
	         WHEN credit_score < 740 THEN 'Good (670-739)'
	         WHEN credit_score < 800 THEN 'Very Good (740-799)'
	         ELSE 'Exceptional (800+)'
	       END AS score_range,
	       COUNT(*),
	       COUNT(*) FILTER (WHERE prediction = 1),
	       COUNT(*) FILTER (WHERE prediction = 0)
	FROM decisions
	GROUP BY score_range
	ORDER BY MIN(credit_score)`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Log.Error("credit score analysis query failed (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var buckets []*models.CreditScoreBucket
	for rows.Next() {
		var b models.CreditScoreBucket
		if err := rows.Scan(&b.ScoreRange, &b.TotalApplications, &b.Approved, &b.Rejected); err != nil {
			return nil, err
		}
		buckets = append(buckets, &b)
	}
	return buckets, rows.Err()
}

func (r *PredictionRepository) GetRecentPredictions(ctx context.Context, limit int) ([]*models.RecentPrediction, error) {
	query := `
	SELECT applicant_name, credit_score, loan_amount, prediction, probability, created_at
	FROM single_predictions
	ORDER BY created_at DESC
	LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		logger.Log.Error("recent predictions query failed (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var recent []*models.RecentPrediction
	for rows.Next() {
		var p models.RecentPrediction
		if err := rows.Scan(&p.ApplicantName, &p.CreditScore, &p.LoanAmount, &p.Prediction, &p.Probability, &p.CreatedAt); err != nil {
			return nil, err
		}
		recent = append(recent, &p)
	}
	return recent, rows.Err()
}
