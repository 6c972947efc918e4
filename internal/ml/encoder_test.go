package ml

import (
	"testing"

	"loanpayback/internal/models"

	"github.com/stretchr/testify/require"
)

func testVocab() map[string][]string {
	return map[string][]string{
		"gender":            {"Female", "Male", "Other"},
		"marital_status":    {"Divorced", "Married", "Single", "Widowed"},
		"education_level":   {"Bachelor's", "High School", "Master's", "Other", "PhD"},
		"employment_status": {"Employed", "Retired", "Self-employed", "Student", "Unemployed"},
		"loan_purpose":      {"Business", "Car", "Debt consolidation", "Education", "Home", "Medical", "Other", "Vacation"},
		"grade_subgrade":    {"A1", "B1", "C1", "D1"},
	}
}

func TestEncode_Ordering(t *testing.T) {
	// Feature order dictates the vector, not struct field order.
	encoder := NewFeatureEncoder([]string{"credit_score", "annual_income", "gender"}, testVocab())

	vector := encoder.Encode(&models.Applicant{
		AnnualIncome: 50000,
		CreditScore:  700,
		Gender:       "Female",
	})

	require.Equal(t, []float64{700, 50000, 0}, vector)
}

func TestEncode_UnknownCategoryFallsBack(t *testing.T) {
	encoder := NewFeatureEncoder([]string{"gender", "loan_purpose"}, testVocab())

	vector := encoder.Encode(&models.Applicant{
		Gender:      "Nonexistent",
		LoanPurpose: "Yacht",
	})

	// Unknown categories resolve to index 0, never an error.
	require.Equal(t, []float64{0, 0}, vector)
}

func TestEncode_OmittedCategoricalDefaults(t *testing.T) {
	encoder := NewFeatureEncoder([]string{"gender", "marital_status", "grade_subgrade"}, testVocab())

	vector := encoder.Encode(&models.Applicant{CreditScore: 700})

	// Male=1, Single=2, C1=2 in the tables above.
	require.Equal(t, []float64{1, 2, 2}, vector)
}

func TestEncode_InputNotMutated(t *testing.T) {
	encoder := NewFeatureEncoder([]string{"gender"}, testVocab())

	a := &models.Applicant{}
	encoder.Encode(a)
	require.Empty(t, a.Gender, "defaults must be applied to a copy")
}

func TestEncode_UnknownFeatureNameReadsZero(t *testing.T) {
	encoder := NewFeatureEncoder([]string{"annual_income", "mystery_feature"}, testVocab())

	vector := encoder.Encode(&models.Applicant{AnnualIncome: 1000})
	require.Equal(t, []float64{1000, 0}, vector)
}
