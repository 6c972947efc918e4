package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"loanpayback/internal/apperrors"
	"loanpayback/internal/ml"
	"loanpayback/internal/models"
	"loanpayback/internal/repository"
)

type mockPredictionRepo struct {
	predictions []*models.SinglePrediction
	batches     []*models.BatchPrediction
	details     map[int64][]*models.BatchPredictionDetail
	failDetails bool
}

func newMockPredictionRepo() *mockPredictionRepo {
	return &mockPredictionRepo{details: make(map[int64][]*models.BatchPredictionDetail)}
}

func (m *mockPredictionRepo) SavePrediction(_ context.Context, p *models.SinglePrediction) (int64, error) {
	p.ID = int64(len(m.predictions) + 1)
	p.CreatedAt = time.Now()
	m.predictions = append(m.predictions, p)
	return p.ID, nil
}

func (m *mockPredictionRepo) SaveBatch(_ context.Context, b *models.BatchPrediction) (int64, error) {
	b.ID = int64(len(m.batches) + 1)
	b.ProcessedAt = time.Now()
	m.batches = append(m.batches, b)
	return b.ID, nil
}

func (m *mockPredictionRepo) SaveBatchDetails(_ context.Context, batchID int64, details []*models.BatchPredictionDetail) error {
	if m.failDetails {
		return errors.New("details write failed")
	}
	m.details[batchID] = details
	return nil
}

func (m *mockPredictionRepo) GetUserPredictions(_ context.Context, userID, limit int) ([]*models.PredictionHistoryItem, error) {
	var out []*models.PredictionHistoryItem
	for _, p := range m.predictions {
		if p.UserID != userID || len(out) == limit {
			continue
		}
		out = append(out, &models.PredictionHistoryItem{
			ID:            p.ID,
			ApplicantName: p.ApplicantName,
			Prediction:    p.Prediction,
			Probability:   p.Probability,
			CreatedAt:     p.CreatedAt,
		})
	}
	return out, nil
}

func (m *mockPredictionRepo) GetUserBatches(_ context.Context, userID, limit int) ([]*models.BatchPrediction, error) {
	var out []*models.BatchPrediction
	for _, b := range m.batches {
		if b.UserID == userID && len(out) < limit {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockPredictionRepo) GetBatchByID(_ context.Context, batchID int64) (*models.BatchPrediction, error) {
	for _, b := range m.batches {
		if b.ID == batchID {
			return b, nil
		}
	}
	return nil, repository.ErrNoRows
}

func (m *mockPredictionRepo) GetBatchDetails(_ context.Context, batchID int64) ([]*models.BatchPredictionDetail, error) {
	return m.details[batchID], nil
}

// thresholdScorer approves when the credit score feature clears the cutoff.
type thresholdScorer struct {
	index  int
	cutoff float64
}

func (s *thresholdScorer) Score(vector []float64) (int, []float64) {
	if s.index < len(vector) && vector[s.index] >= s.cutoff {
		return 1, []float64{0.1, 0.9}
	}
	return 0, []float64{0.8, 0.2}
}

var testFeatures = []string{
	"annual_income", "debt_to_income_ratio", "credit_score", "loan_amount",
	"interest_rate", "gender", "marital_status", "education_level",
	"employment_status", "loan_purpose", "grade_subgrade",
}

func testEngine() *ml.Engine {
	encoder := ml.NewFeatureEncoder(testFeatures, map[string][]string{
		"gender":            {"Female", "Male", "Other"},
		"marital_status":    {"Divorced", "Married", "Single", "Widowed"},
		"education_level":   {"Bachelor's", "High School", "Master's", "Other", "PhD"},
		"employment_status": {"Employed", "Retired", "Self-employed", "Student", "Unemployed"},
		"loan_purpose":      {"Business", "Car", "Debt consolidation", "Education", "Home", "Medical", "Other", "Vacation"},
		"grade_subgrade":    {"A1", "B1", "C1", "D1"},
	})
	// Identity scaler keeps the raw values visible to the stub scorer.
	return ml.NewEngine(encoder, &ml.StandardScaler{}, &thresholdScorer{index: 2, cutoff: 650})
}

func testApplicant(creditScore int) *models.Applicant {
	return &models.Applicant{
		ApplicantName:     "Jordan Blake",
		AnnualIncome:      85000,
		DebtToIncomeRatio: 0.25,
		CreditScore:       creditScore,
		LoanAmount:        20000,
		InterestRate:      9.5,
	}
}

func TestDecide_StatusFollowsPrediction(t *testing.T) {
	service := NewPredictionService(testEngine(), newMockPredictionRepo())

	approved, err := service.Decide(testApplicant(720))
	if err != nil {
		t.Fatalf("decide failed: %v", err)
	}
	if approved.Prediction != 1 || approved.Status != StatusApproved {
		t.Fatalf("expected approval, got %+v", approved)
	}
	if approved.Probability != 0.9 {
		t.Fatalf("probability must be the approved-class mass, got %v", approved.Probability)
	}

	rejected, err := service.Decide(testApplicant(500))
	if err != nil {
		t.Fatalf("decide failed: %v", err)
	}
	if rejected.Prediction != 0 || rejected.Status != StatusRejected {
		t.Fatalf("expected rejection, got %+v", rejected)
	}
}

func TestDecide_NilEngine(t *testing.T) {
	service := NewPredictionService(nil, newMockPredictionRepo())

	_, err := service.Decide(testApplicant(720))
	if !errors.Is(err, apperrors.ErrScoringUnavailable) {
		t.Fatalf("expected ErrScoringUnavailable, got %v", err)
	}
	if service.Ready() {
		t.Fatal("nil engine must not report ready")
	}
}

func TestDecideAndSave(t *testing.T) {
	repo := newMockPredictionRepo()
	service := NewPredictionService(testEngine(), repo)

	applicant := testApplicant(720)
	applicant.ApplicantName = ""

	decision, id, err := service.DecideAndSave(context.Background(), 3, applicant)
	if err != nil {
		t.Fatalf("decide and save failed: %v", err)
	}
	if id == 0 {
		t.Fatal("no prediction id returned")
	}
	if len(repo.predictions) != 1 {
		t.Fatalf("expected one stored prediction, got %d", len(repo.predictions))
	}

	stored := repo.predictions[0]
	if stored.UserID != 3 {
		t.Fatalf("stored under wrong user: %d", stored.UserID)
	}
	if stored.ApplicantName != "Unknown" {
		t.Fatalf("missing name must default to Unknown, got %q", stored.ApplicantName)
	}
	if stored.Prediction != decision.Prediction || stored.Probability != decision.Probability {
		t.Fatal("stored record does not match the returned decision")
	}
	if stored.Applicant.Gender != models.DefaultGender {
		t.Fatal("stored applicant must carry resolved defaults")
	}
}
