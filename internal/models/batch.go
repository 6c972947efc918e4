package models

import "time"

// BatchPrediction is the persisted summary of one uploaded dataset.
// Invariant: Approved + Rejected + ErrorCount == TotalApplications.
type BatchPrediction struct {
	ID                    int64     `json:"id"`
	UserID                int       `json:"user_id"`
	BatchName             string    `json:"batch_name"`
	FileName              string    `json:"file_name"`
	FileSizeKB            float64   `json:"file_size_kb"`
	TotalApplications     int       `json:"total_applications"`
	ApprovedApplications  int       `json:"approved_applications"`
	RejectedApplications  int       `json:"rejected_applications"`
	ErrorCount            int       `json:"error_count"`
	ApprovalRate          float64   `json:"approval_rate"`
	ProcessingTimeSeconds float64   `json:"processing_time_seconds"`
	ProcessedAt           time.Time `json:"processed_at"`
}

// BatchPredictionDetail is one row of a batch. RowNumber is the 1-based
// position of the source row and is unique within its batch. Error rows keep
// the row/applicant identity and the failure text; their decision fields are
// nil.
type BatchPredictionDetail struct {
	ID            int64     `json:"id,omitempty"`
	BatchID       int64     `json:"batch_id,omitempty"`
	RowNumber     int       `json:"row_number"`
	ApplicantName string    `json:"applicant_name"`
	Applicant     Applicant `json:"-"`
	Prediction    *int      `json:"prediction,omitempty"`
	Probability   *float64  `json:"probability,omitempty"`
	Status        string    `json:"status,omitempty"`
	RiskScore     *float64  `json:"risk_score,omitempty"`
	Error         string    `json:"error,omitempty"`
}

// BatchResult is the response shape for a processed upload.
type BatchResult struct {
	BatchID               int64                    `json:"batch_id"`
	Results               []*BatchPredictionDetail `json:"results"`
	TotalApplications     int                      `json:"total_applications"`
	ApprovedApplications  int                      `json:"approved_applications"`
	RejectedApplications  int                      `json:"rejected_applications"`
	ErrorCount            int                      `json:"error_count"`
	ApprovalRate          float64                  `json:"approval_rate"`
	ProcessingTimeSeconds float64                  `json:"processing_time_seconds"`
	FileSizeKB            float64                  `json:"file_size_kb"`
	DetailsComplete       bool                     `json:"details_complete"`
}
