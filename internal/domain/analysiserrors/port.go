package analysiserrors

import "context"

// Repository defines persistence for analysis failures
type Repository interface {
	Save(ctx context.Context, e *AnalysisError) error
	ListByStudent(ctx context.Context, tenant string, studentID string, limit int) ([]*AnalysisError, error)
}
