package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	domain "github.com/bryanwahyu/penilai-edu/internal/domain/analysis"
)

type AnalysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Save inserts or updates an analysis record
func (r *AnalysisRepository) Save(ctx context.Context, a *domain.Analysis) error {
	const q = `
INSERT INTO assessment_analyses
  (id, tenant_id, student_id, grade_level, result_json, raw_url, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)
ON CONFLICT (id) DO UPDATE SET
  tenant_id=EXCLUDED.tenant_id,
  student_id=EXCLUDED.student_id,
  grade_level=EXCLUDED.grade_level,
  result_json=EXCLUDED.result_json,
  raw_url=EXCLUDED.raw_url;
`
	tenant := stringOrDash(a.TenantID)
	student := stringOrDash(a.StudentID)
	result := a.Result
	if strings.TrimSpace(result) == "" {
		result = "{}"
	}
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, q, a.ID, tenant, student, a.GradeLevel, result, a.RawURL, createdAt)
	return err
}

// Paginate returns a page of analysis records ordered by created_at desc
func (r *AnalysisRepository) Paginate(ctx context.Context, tenant string, page, pageSize int) ([]*domain.Analysis, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	const q = `
SELECT id, tenant_id, student_id, grade_level, result_json, raw_url, created_at
FROM assessment_analyses
WHERE tenant_id=$1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3;
`
	rows, err := r.db.QueryContext(ctx, q, tenant, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Analysis
	for rows.Next() {
		var a domain.Analysis
		var rawURL sql.NullString
		var created time.Time
		if err := rows.Scan(&a.ID, &a.TenantID, &a.StudentID, &a.GradeLevel, &a.Result, &rawURL, &created); err != nil {
			return nil, err
		}
		a.RawURL = rawURL.String
		a.CreatedAt = created
		out = append(out, &a)
	}
	return out, rows.Err()
}

// LatestByStudent returns the most recent analysis for a student, or nil
func (r *AnalysisRepository) LatestByStudent(ctx context.Context, tenant string, studentID string) (*domain.Analysis, error) {
	const q = `
SELECT id, tenant_id, student_id, grade_level, result_json, raw_url, created_at
FROM assessment_analyses
WHERE tenant_id=$1 AND student_id=$2
ORDER BY created_at DESC, id DESC
LIMIT 1;`
	row := r.db.QueryRowContext(ctx, q, tenant, studentID)
	var a domain.Analysis
	var rawURL sql.NullString
	var created time.Time
	if err := row.Scan(&a.ID, &a.TenantID, &a.StudentID, &a.GradeLevel, &a.Result, &rawURL, &created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	a.RawURL = rawURL.String
	a.CreatedAt = created
	return &a, nil
}

func stringOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
