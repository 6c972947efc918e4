package models

import "time"

// Decision is the shaped pipeline output for one applicant. Status is a pure
// function of Prediction: "Approved" iff Prediction == 1.
type Decision struct {
	Prediction       int      `json:"prediction"`
	Probability      float64  `json:"probability"`
	Status           string   `json:"status"`
	RiskScore        *float64 `json:"risk_score,omitempty"`
	RejectionReasons []string `json:"rejection_reasons,omitempty"`
}

// SinglePrediction is an immutable persisted decision owned by one user.
type SinglePrediction struct {
	ID               int64      `json:"id"`
	UserID           int        `json:"user_id"`
	ApplicantName    string     `json:"applicant_name"`
	Applicant        Applicant  `json:"-"`
	Prediction       int        `json:"prediction"`
	Probability      float64    `json:"probability"`
	RiskScore        *float64   `json:"risk_score,omitempty"`
	RejectionReasons []string   `json:"rejection_reasons,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// PredictionHistoryItem flattens a persisted prediction for history reads.
type PredictionHistoryItem struct {
	ID                int64     `json:"id"`
	ApplicantName     string    `json:"applicant_name"`
	AnnualIncome      float64   `json:"annual_income"`
	DebtToIncomeRatio float64   `json:"debt_to_income_ratio"`
	CreditScore       int       `json:"credit_score"`
	LoanAmount        float64   `json:"loan_amount"`
	InterestRate      float64   `json:"interest_rate"`
	Prediction        int       `json:"prediction"`
	Probability       float64   `json:"probability"`
	RiskScore         *float64  `json:"risk_score,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
