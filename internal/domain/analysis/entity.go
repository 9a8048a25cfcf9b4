package analysis

import "time"

// AnalysisID identifier type
type AnalysisID string

// Analysis represents a stored analysis result kept for auditing and retrieval
type Analysis struct {
	ID         AnalysisID `json:"id"`
	TenantID   string     `json:"tenant_id"`
	StudentID  string     `json:"student_id"`
	GradeLevel int        `json:"grade_level"`
	Result     string     `json:"result"` // JSON document returned to the caller
	RawURL     string     `json:"raw_url,omitempty"` // archived raw reply, set on parse degradation
	CreatedAt  time.Time  `json:"created_at"`
}
