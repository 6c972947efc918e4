package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"loanpayback/internal/apperrors"
	"loanpayback/internal/logger"
	"loanpayback/internal/metrics"
	"loanpayback/internal/models"

	"go.uber.org/zap"
)

// BatchService processes one uploaded dataset as a unit: every row gets an
// independent pipeline run, failures stay inside their row, and the
// aggregates partition the rows exactly.
type BatchService struct {
	pipeline *PredictionService
	repo     PredictionRepo
}

func NewBatchService(pipeline *PredictionService, repo PredictionRepo) *BatchService {
	return &BatchService{pipeline: pipeline, repo: repo}
}

// BatchUpload carries the parsed multipart upload into the service.
type BatchUpload struct {
	FileName  string
	BatchName string
	SizeKB    float64
	Data      io.Reader
}

// Process reads the CSV, runs the pipeline per row and persists the summary
// followed by the per-row details. A row failure never aborts the pass; the
// whole request fails only before any row work starts (unreadable file,
// empty dataset, scoring unavailable).
func (s *BatchService) Process(ctx context.Context, userID int, upload *BatchUpload) (*models.BatchResult, error) {
	log := logger.WithCtx(ctx)

	if !s.pipeline.Ready() {
		return nil, apperrors.ErrScoringUnavailable
	}

	header, records, err := readCSV(upload.Data)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperrors.ErrEmptyDataset
	}

	log.Info("processing batch (service)",
		zap.Int("user_id", userID),
		zap.Int("rows", len(records)),
		zap.String("file", upload.FileName),
	)

	start := time.Now()

	var (
		details  = make([]*models.BatchPredictionDetail, 0, len(records))
		approved int
		rejected int
		errored  int
	)

	for i, record := range records {
		rowNumber := i + 1
		detail := s.processRow(header, record, rowNumber)
		details = append(details, detail)

		switch {
		case detail.Error != "":
			errored++
			metrics.BatchRowsTotal.WithLabelValues("error").Inc()
		case *detail.Prediction == 1:
			approved++
			metrics.BatchRowsTotal.WithLabelValues("approved").Inc()
		default:
			rejected++
			metrics.BatchRowsTotal.WithLabelValues("rejected").Inc()
		}
	}

	decided := approved + rejected
	approvalRate := 0.0
	if decided > 0 {
		approvalRate = round2(float64(approved) / float64(decided) * 100)
	}

	batchName := upload.BatchName
	if batchName == "" {
		batchName = upload.FileName
	}

	summary := &models.BatchPrediction{
		UserID:                userID,
		BatchName:             batchName,
		FileName:              upload.FileName,
		FileSizeKB:            upload.SizeKB,
		TotalApplications:     len(records),
		ApprovedApplications:  approved,
		RejectedApplications:  rejected,
		ErrorCount:            errored,
		ApprovalRate:          approvalRate,
		ProcessingTimeSeconds: round3(time.Since(start).Seconds()),
	}

	batchID, err := s.repo.SaveBatch(ctx, summary)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Unavailable, "failed to save batch", err)
	}

	// Summary first, details second. A detail failure leaves the summary in
	// place; the response flags the incomplete details instead of rolling
	// back.
	detailsComplete := true
	if err := s.repo.SaveBatchDetails(ctx, batchID, details); err != nil {
		log.Error("batch details persist failed (service)", zap.Error(err), zap.Int64("batch_id", batchID))
		detailsComplete = false
	}

	metrics.BatchesTotal.Inc()
	log.Info("batch processed (service)",
		zap.Int64("batch_id", batchID),
		zap.Int("approved", approved),
		zap.Int("rejected", rejected),
		zap.Int("errors", errored),
	)

	return &models.BatchResult{
		BatchID:               batchID,
		Results:               details,
		TotalApplications:     summary.TotalApplications,
		ApprovedApplications:  approved,
		RejectedApplications:  rejected,
		ErrorCount:            errored,
		ApprovalRate:          approvalRate,
		ProcessingTimeSeconds: summary.ProcessingTimeSeconds,
		FileSizeKB:            upload.SizeKB,
		DetailsComplete:       detailsComplete,
	}, nil
}

// processRow runs one row in isolation. Any failure is captured into the
// detail's Error; it never propagates.
func (s *BatchService) processRow(header map[string]int, record []string, rowNumber int) *models.BatchPredictionDetail {
	name := cell(header, record, "applicant_name")
	if name == "" {
		name = fmt.Sprintf("Applicant %d", rowNumber)
	}

	detail := &models.BatchPredictionDetail{
		RowNumber:     rowNumber,
		ApplicantName: name,
	}

	applicant, err := parseApplicantRow(header, record)
	if err != nil {
		detail.Error = err.Error()
		return detail
	}

	decision, err := s.pipeline.Decide(applicant)
	if err != nil {
		detail.Error = apperrors.Message(err)
		return detail
	}

	applicant.ApplyDefaults()
	detail.Applicant = *applicant
	detail.Prediction = &decision.Prediction
	detail.Probability = &decision.Probability
	detail.Status = decision.Status
	detail.RiskScore = decision.RiskScore
	return detail
}

// readCSV returns the header index and data rows. Unknown columns are
// carried in the index and simply never read; short rows read as empty
// cells.
func readCSV(r io.Reader) (map[string]int, [][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, apperrors.Wrap(apperrors.Validation, "failed to read CSV", err)
	}
	if len(rows) == 0 {
		return nil, nil, apperrors.ErrEmptyDataset
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.TrimSpace(strings.ToLower(name))] = i
	}
	return header, rows[1:], nil
}

func cell(header map[string]int, record []string, column string) string {
	i, ok := header[column]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// parseApplicantRow maps one CSV record onto an applicant. Missing numeric
// cells default to zero; a present but non-numeric cell is a row error,
// distinct from the encoder's unknown-category fallback which never fails.
func parseApplicantRow(header map[string]int, record []string) (*models.Applicant, error) {
	a := &models.Applicant{
		ApplicantName:    cell(header, record, "applicant_name"),
		Gender:           cell(header, record, "gender"),
		MaritalStatus:    cell(header, record, "marital_status"),
		EducationLevel:   cell(header, record, "education_level"),
		EmploymentStatus: cell(header, record, "employment_status"),
		LoanPurpose:      cell(header, record, "loan_purpose"),
		GradeSubgrade:    cell(header, record, "grade_subgrade"),
	}

	var err error
	if a.AnnualIncome, err = parseFloat(cell(header, record, "annual_income")); err != nil {
		return nil, fmt.Errorf("invalid annual_income: %w", err)
	}
	if a.DebtToIncomeRatio, err = parseFloat(cell(header, record, "debt_to_income_ratio")); err != nil {
		return nil, fmt.Errorf("invalid debt_to_income_ratio: %w", err)
	}
	if a.CreditScore, err = parseInt(cell(header, record, "credit_score")); err != nil {
		return nil, fmt.Errorf("invalid credit_score: %w", err)
	}
	if a.LoanAmount, err = parseFloat(cell(header, record, "loan_amount")); err != nil {
		return nil, fmt.Errorf("invalid loan_amount: %w", err)
	}
	if a.InterestRate, err = parseFloat(cell(header, record, "interest_rate")); err != nil {
		return nil, fmt.Errorf("invalid interest_rate: %w", err)
	}
	return a, nil
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
