package repository

import (
	"context"
	"strings"

	"loanpayback/internal/logger"
	"loanpayback/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type PredictionRepository struct {
	db *pgxpool.Pool
}

func NewPredictionRepository(db *pgxpool.Pool) *PredictionRepository {
	return &PredictionRepository{db: db}
}

// SavePrediction persists one decision and returns its id. Rows are
// immutable once written.
func (r *PredictionRepository) SavePrediction(ctx context.Context, p *models.SinglePrediction) (int64, error) {
	logger.Log.Debug("saving prediction (repo)", zap.Int("user_id", p.UserID))
	query := `
	INSERT INTO single_predictions (
		user_id, applicant_name, annual_income, debt_to_income_ratio,
		credit_score, loan_amount, interest_rate, gender, marital_status,
		education_level, employment_status, loan_purpose, grade_subgrade,
		prediction, probability, risk_score, rejection_reasons
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	RETURNING id`

	var id int64
	a := p.Applicant
	err := r.db.QueryRow(ctx, query,
		p.UserID,
		p.ApplicantName,
		a.AnnualIncome,
		a.DebtToIncomeRatio,
		a.CreditScore,
		a.LoanAmount,
		a.InterestRate,
		a.Gender,
		a.MaritalStatus,
		a.EducationLevel,
		a.EmploymentStatus,
		a.LoanPurpose,
		a.GradeSubgrade,
		p.Prediction,
		p.Probability,
		p.RiskScore,
		joinReasons(p.RejectionReasons),
	).Scan(&id)
	if err != nil {
		logger.Log.Error("prediction insert failed (repo)", zap.Error(err), zap.Int("user_id", p.UserID))
		return 0, err
	}
	return id, nil
}

func (r *PredictionRepository) GetUserPredictions(ctx context.Context, userID, limit int) ([]*models.PredictionHistoryItem, error) {
	query := `
	SELECT id, applicant_name, annual_income, debt_to_income_ratio, credit_score,
	       loan_amount, interest_rate, prediction, probability, risk_score, created_at
	FROM single_predictions
	WHERE user_id = $1
	ORDER BY created_at DESC
	LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		logger.Log.Error("prediction history query failed (repo)", zap.Error(err), zap.Int("user_id", userID))
		return nil, err
	}
	defer rows.Close()

	var items []*models.PredictionHistoryItem
	for rows.Next() {
		var it models.PredictionHistoryItem
		if err := rows.Scan(
			&it.ID, &it.ApplicantName, &it.AnnualIncome, &it.DebtToIncomeRatio, &it.CreditScore,
			&it.LoanAmount, &it.InterestRate, &it.Prediction, &it.Probability, &it.RiskScore, &it.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// SaveBatch writes the summary row first; the returned id tags the details.
func (r *PredictionRepository) SaveBatch(ctx context.Context, b *models.BatchPrediction) (int64, error) {
	logger.Log.Debug("saving batch summary (repo)", zap.Int("user_id", b.UserID), zap.String("batch_name", b.BatchName))
	query := `
	INSERT INTO batch_predictions (
		user_id, batch_name, file_name, file_size_kb, total_applications,
		approved_applications, rejected_applications, error_count,
		approval_rate, processing_time_seconds
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	RETURNING id, processed_at`

	err := r.db.QueryRow(ctx, query,
		b.UserID,
		b.BatchName,
		b.FileName,
		b.FileSizeKB,
		b.TotalApplications,
		b.ApprovedApplications,
		b.RejectedApplications,
		b.ErrorCount,
		b.ApprovalRate,
		b.ProcessingTimeSeconds,
	).Scan(&b.ID, &b.ProcessedAt)
	if err != nil {
		logger.Log.Error("batch summary insert failed (repo)", zap.Error(err), zap.Int("user_id", b.UserID))
		return 0, err
	}
	return b.ID, nil
}

// SaveBatchDetails bulk-writes the per-row details in one round trip.
func (r *PredictionRepository) SaveBatchDetails(ctx context.Context, batchID int64, details []*models.BatchPredictionDetail) error {
	query := `
	INSERT INTO batch_prediction_details (
		batch_id, row_number, applicant_name, annual_income, debt_to_income_ratio,
		credit_score, loan_amount, interest_rate, gender, marital_status,
		education_level, employment_status, loan_purpose, grade_subgrade,
		prediction, probability, risk_score, error
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)`

	batch := &pgx.Batch{}
	for _, d := range details {
		a := d.Applicant
		batch.Queue(query,
			batchID,
			d.RowNumber,
			d.ApplicantName,
			a.AnnualIncome,
			a.DebtToIncomeRatio,
			a.CreditScore,
			a.LoanAmount,
			a.InterestRate,
			a.Gender,
			a.MaritalStatus,
			a.EducationLevel,
			a.EmploymentStatus,
			a.LoanPurpose,
			a.GradeSubgrade,
			d.Prediction,
			d.Probability,
			d.RiskScore,
			nullIfEmpty(d.Error),
		)
	}

	err := r.db.SendBatch(ctx, batch).Close()
	if err != nil {
		logger.Log.Error("batch details insert failed (repo)", zap.Error(err), zap.Int64("batch_id", batchID))
	}
	return err
}

func (r *PredictionRepository) GetUserBatches(ctx context.Context, userID, limit int) ([]*models.BatchPrediction, error) {
	query := `
	SELECT id, user_id, batch_name, file_name, file_size_kb, total_applications,
	       approved_applications, rejected_applications, error_count,
	       approval_rate, processing_time_seconds, processed_at
	FROM batch_predictions
	WHERE user_id = $1
	ORDER BY processed_at DESC
	LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		logger.Log.Error("batch history query failed (repo)", zap.Error(err), zap.Int("user_id", userID))
		return nil, err
	}
	defer rows.Close()

	var batches []*models.BatchPrediction
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

func (r *PredictionRepository) GetBatchByID(ctx context.Context, batchID int64) (*models.BatchPrediction, error) {
	query := `
	SELECT id, user_id, batch_name, file_name, file_size_kb, total_applications,
	       approved_applications, rejected_applications, error_count,
	       approval_rate, processing_time_seconds, processed_at
	FROM batch_predictions
	WHERE id = $1`

	row := r.db.QueryRow(ctx, query, batchID)
	return scanBatch(row)
}

func (r *PredictionRepository) GetBatchDetails(ctx context.Context, batchID int64) ([]*models.BatchPredictionDetail, error) {
	query := `
	SELECT row_number, applicant_name, annual_income, debt_to_income_ratio,
	       credit_score, loan_amount, interest_rate, gender, marital_status,
	       education_level, employment_status, loan_purpose, grade_subgrade,
	       prediction, probability, risk_score, COALESCE(error, '')
	FROM batch_prediction_details
	WHERE batch_id = $1
	ORDER BY row_number ASC`

	rows, err := r.db.Query(ctx, query, batchID)
	if err != nil {
		logger.Log.Error("batch details query failed (repo)", zap.Error(err), zap.Int64("batch_id", batchID))
		return nil, err
	}
	defer rows.Close()

	var details []*models.BatchPredictionDetail
	for rows.Next() {
		var d models.BatchPredictionDetail
		a := &d.Applicant
		if err := rows.Scan(
			&d.RowNumber, &d.ApplicantName, &a.AnnualIncome, &a.DebtToIncomeRatio,
			&a.CreditScore, &a.LoanAmount, &a.InterestRate, &a.Gender, &a.MaritalStatus,
			&a.EducationLevel, &a.EmploymentStatus, &a.LoanPurpose, &a.GradeSubgrade,
			&d.Prediction, &d.Probability, &d.RiskScore, &d.Error,
		); err != nil {
			return nil, err
		}
		if d.Prediction != nil {
			d.Status = "Rejected"
			if *d.Prediction == 1 {
				d.Status = "Approved"
			}
		}
		details = append(details, &d)
	}
	return details, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBatch(row rowScanner) (*models.BatchPrediction, error) {
	var b models.BatchPrediction
	err := row.Scan(
		&b.ID, &b.UserID, &b.BatchName, &b.FileName, &b.FileSizeKB, &b.TotalApplications,
		&b.ApprovedApplications, &b.RejectedApplications, &b.ErrorCount,
		&b.ApprovalRate, &b.ProcessingTimeSeconds, &b.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func joinReasons(reasons []string) *string {
	if len(reasons) == 0 {
		return nil
	}
	s := strings.Join(reasons, "; ")
	return &s
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
