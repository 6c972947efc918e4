package models

// Applicant is one loan application as submitted by a caller. Numeric fields
// are typed, so a non-numeric value fails JSON/CSV decoding up front;
// categorical fields are free-form strings resolved by the feature encoder
// (unknown values fall back to the default class, they never fail).
type Applicant struct {
	ApplicantName     string  `json:"applicant_name,omitempty"`
	AnnualIncome      float64 `json:"annual_income"`
	DebtToIncomeRatio float64 `json:"debt_to_income_ratio"`
	CreditScore       int     `json:"credit_score"`
	LoanAmount        float64 `json:"loan_amount"`
	InterestRate      float64 `json:"interest_rate"`
	Gender            string  `json:"gender,omitempty"`
	MaritalStatus     string  `json:"marital_status,omitempty"`
	EducationLevel    string  `json:"education_level,omitempty"`
	EmploymentStatus  string  `json:"employment_status,omitempty"`
	LoanPurpose       string  `json:"loan_purpose,omitempty"`
	GradeSubgrade     string  `json:"grade_subgrade,omitempty"`
}

// Categorical defaults applied when a field is omitted.
const (
	DefaultGender           = "Male"
	DefaultMaritalStatus    = "Single"
	DefaultEducationLevel   = "High School"
	DefaultEmploymentStatus = "Employed"
	DefaultLoanPurpose      = "Other"
	DefaultGradeSubgrade    = "C1"
)

// ApplyDefaults fills omitted categorical fields with the neutral class.
func (a *Applicant) ApplyDefaults() {
	if a.Gender == "" {
		a.Gender = DefaultGender
	}
	if a.MaritalStatus == "" {
		a.MaritalStatus = DefaultMaritalStatus
	}
	if a.EducationLevel == "" {
		a.EducationLevel = DefaultEducationLevel
	}
	if a.EmploymentStatus == "" {
		a.EmploymentStatus = DefaultEmploymentStatus
	}
	if a.LoanPurpose == "" {
		a.LoanPurpose = DefaultLoanPurpose
	}
	if a.GradeSubgrade == "" {
		a.GradeSubgrade = DefaultGradeSubgrade
	}
}
