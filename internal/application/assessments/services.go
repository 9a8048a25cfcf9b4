package assessments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/bryanwahyu/penilai-edu/internal/application"
	domai "github.com/bryanwahyu/penilai-edu/internal/domain/ai"
	"github.com/bryanwahyu/penilai-edu/internal/domain/analysis"
	"github.com/bryanwahyu/penilai-edu/internal/domain/analysiserrors"
	"github.com/bryanwahyu/penilai-edu/internal/domain/assessment"
	"github.com/bryanwahyu/penilai-edu/internal/infra/ai/prompt"
)

// Service implements the assessment analysis use-cases. Each call is
// independent: no state is shared between invocations, so concurrent use
// is safe as long as the injected ports are.
type Service struct {
	Generator domai.Generator
	Provider  string // name of the configured engine, stamped on failure entries
	Analyses  analysis.Repository
	Failures  analysiserrors.Repository
	Archive   analysis.ArchiveStore // optional; raw replies skip archiving when nil
	Clock     application.Clock
}

// Analyze runs the full pipeline: validate -> build prompt -> generate ->
// extract -> persist. It never returns an error; every failure inside the
// boundary is folded into the returned document, discriminated by the
// "error" key. The external call is made at most once, and only after the
// record passed validation.
func (s *Service) Analyze(ctx context.Context, tenant string, rec assessment.StudentAssessment) analysis.Document {
	studentID := rec.StudentID
	if studentID == "" {
		studentID = "unknown"
	}

	if err := rec.Validate(); err != nil {
		log.Printf("invalid assessment record for student %s: %v", studentID, err)
		s.recordFailure(ctx, tenant, studentID, "validate", err.Error(), "")
		return analysis.Failed(studentID, err)
	}

	log.Printf("sending analysis request for student %s tenant=%s", studentID, tenant)
	raw, err := s.Generator.Generate(ctx, prompt.Build(rec))
	if err != nil {
		phase := "generate"
		if errors.Is(err, domai.ErrQuotaExceeded) {
			phase = "quota"
			log.Printf("provider quota exhausted for student %s: %v", studentID, err)
		} else {
			log.Printf("generation failed for student %s: %v", studentID, err)
		}
		s.recordFailure(ctx, tenant, studentID, phase, err.Error(), "")
		return analysis.Failed(studentID, err)
	}

	doc := prompt.Extract(raw)

	entry := &analysis.Analysis{
		ID:         analysis.AnalysisID(uuid.New().String()),
		TenantID:   tenant,
		StudentID:  studentID,
		GradeLevel: rec.GradeLevel,
		CreatedAt:  s.Clock.Now(),
	}
	if b, merr := json.Marshal(doc); merr == nil {
		entry.Result = string(b)
	}

	if doc.Degraded() {
		entry.RawURL = s.archiveRaw(ctx, tenant, studentID, string(entry.ID), raw)
		s.recordFailure(ctx, tenant, studentID, "extract", "could not parse JSON response", entry.RawURL)
	}

	// Persistence is supplemental to the analysis itself; the caller still
	// gets the document when the write fails.
	if err := s.Analyses.Save(ctx, entry); err != nil {
		log.Printf("failed to save analysis %s: %v", entry.ID, err)
	}

	return doc
}

// List returns a page of stored analyses, newest first.
func (s *Service) List(ctx context.Context, tenant string, page, pageSize int) ([]*analysis.Analysis, error) {
	return s.Analyses.Paginate(ctx, tenant, page, pageSize)
}

// LatestByStudent returns the most recent analysis for a student, or nil.
func (s *Service) LatestByStudent(ctx context.Context, tenant, studentID string) (*analysis.Analysis, error) {
	return s.Analyses.LatestByStudent(ctx, tenant, studentID)
}

// ListFailures returns recent failure entries for a student.
func (s *Service) ListFailures(ctx context.Context, tenant, studentID string, limit int) ([]*analysiserrors.AnalysisError, error) {
	if s.Failures == nil {
		return nil, nil
	}
	return s.Failures.ListByStudent(ctx, tenant, studentID, limit)
}

func (s *Service) recordFailure(ctx context.Context, tenant, studentID, phase, message, rawURL string) {
	if s.Failures == nil {
		return
	}
	e := &analysiserrors.AnalysisError{
		TenantID:  tenant,
		StudentID: studentID,
		Provider:  s.Provider,
		Phase:     phase,
		Message:   message,
		CreatedAt: s.Clock.Now(),
	}
	if rawURL != "" {
		b, _ := json.Marshal(map[string]string{"raw_url": rawURL})
		e.DetailsJSON = string(b)
	}
	if err := s.Failures.Save(ctx, e); err != nil {
		log.Printf("failed to record analysis failure for student %s: %v", studentID, err)
	}
}

func (s *Service) archiveRaw(ctx context.Context, tenant, studentID, id, raw string) string {
	if s.Archive == nil {
		return ""
	}
	key := fmt.Sprintf("%s/%s/%s.txt", tenant, studentID, id)
	url, err := s.Archive.PutText(ctx, key, raw)
	if err != nil {
		log.Printf("failed to archive raw reply %s: %v", key, err)
		return ""
	}
	return url
}
