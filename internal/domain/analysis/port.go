package analysis

import "context"

// Repository port for persisting and querying analyses
type Repository interface {
	Save(ctx context.Context, a *Analysis) error
	Paginate(ctx context.Context, tenant string, page, pageSize int) ([]*Analysis, error)
	LatestByStudent(ctx context.Context, tenant string, studentID string) (*Analysis, error)
}

// ArchiveStore port for keeping raw model replies that failed extraction
type ArchiveStore interface {
	PutText(ctx context.Context, key, body string) (string, error)
}
