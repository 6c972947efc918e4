package ml

import "loanpayback/internal/models"

// Applicant field names as the trained artifacts know them.
const (
	fieldAnnualIncome      = "annual_income"
	fieldDebtToIncomeRatio = "debt_to_income_ratio"
	fieldCreditScore       = "credit_score"
	fieldLoanAmount        = "loan_amount"
	fieldInterestRate      = "interest_rate"
	fieldGender            = "gender"
	fieldMaritalStatus     = "marital_status"
	fieldEducationLevel    = "education_level"
	fieldEmploymentStatus  = "employment_status"
	fieldLoanPurpose       = "loan_purpose"
	fieldGradeSubgrade     = "grade_subgrade"
)

// FeatureEncoder turns one applicant into the scorer's raw feature vector:
// categorical fields map through fixed category tables, and the output is
// ordered exactly as the model was trained, regardless of input field order.
// Both tables are loaded once at startup and never mutated.
type FeatureEncoder struct {
	features []string            // scorer's expected ordering
	vocab    map[string][]string // categorical field -> ordered categories
}

func NewFeatureEncoder(features []string, vocab map[string][]string) *FeatureEncoder {
	return &FeatureEncoder{features: features, vocab: vocab}
}

func (e *FeatureEncoder) FeatureCount() int {
	return len(e.features)
}

// Encode builds the ordered raw vector for one applicant. Omitted categorical
// fields take the default class first; an unrecognized category resolves to
// index 0, the table's default class. That fallback is deliberate and never
// an error.
func (e *FeatureEncoder) Encode(a *models.Applicant) []float64 {
	app := *a
	app.ApplyDefaults()

	raw := map[string]float64{
		fieldAnnualIncome:      app.AnnualIncome,
		fieldDebtToIncomeRatio: app.DebtToIncomeRatio,
		fieldCreditScore:       float64(app.CreditScore),
		fieldLoanAmount:        app.LoanAmount,
		fieldInterestRate:      app.InterestRate,
		fieldGender:            e.categoryIndex(fieldGender, app.Gender),
		fieldMaritalStatus:     e.categoryIndex(fieldMaritalStatus, app.MaritalStatus),
		fieldEducationLevel:    e.categoryIndex(fieldEducationLevel, app.EducationLevel),
		fieldEmploymentStatus:  e.categoryIndex(fieldEmploymentStatus, app.EmploymentStatus),
		fieldLoanPurpose:       e.categoryIndex(fieldLoanPurpose, app.LoanPurpose),
		fieldGradeSubgrade:     e.categoryIndex(fieldGradeSubgrade, app.GradeSubgrade),
	}

	vector := make([]float64, len(e.features))
	for i, name := range e.features {
		vector[i] = raw[name] // unknown feature name stays 0
	}
	return vector
}

func (e *FeatureEncoder) categoryIndex(field, value string) float64 {
	for i, category := range e.vocab[field] {
		if category == value {
			return float64(i)
		}
	}
	return 0
}
