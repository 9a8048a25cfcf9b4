package analysiserrors

import "time"

// AnalysisError represents a persisted analysis failure entry
type AnalysisError struct {
	ID          int64     `json:"id"`
	TenantID    string    `json:"tenant_id"`
	StudentID   string    `json:"student_id"`
	Provider    string    `json:"provider,omitempty"`
	Phase       string    `json:"phase,omitempty"` // validate | generate | quota | extract
	Message     string    `json:"message"`
	DetailsJSON string    `json:"details_json,omitempty"` // raw JSON string
	CreatedAt   time.Time `json:"created_at"`
}
