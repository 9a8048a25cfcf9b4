package prompt_test

import (
	"strings"
	"testing"

	"github.com/bryanwahyu/penilai-edu/internal/domain/assessment"
	"github.com/bryanwahyu/penilai-edu/internal/infra/ai/prompt"
)

func sampleRecord() assessment.StudentAssessment {
	return assessment.StudentAssessment{
		StudentID:  "S12345",
		GradeLevel: 4,
		Subjects: map[string]assessment.SubjectScore{
			assessment.SubjectEnglish: {
				OverallScore: 75,
				Components: map[string]float64{
					"reading":   80,
					"writing":   70,
					"speaking":  75,
					"listening": 75,
				},
			},
			assessment.SubjectMathematics: {
				OverallScore: 68,
				Components: map[string]float64{
					"arithmetic":      72,
					"geometry":        60,
					"problem_solving": 65,
					"data_analysis":   75,
				},
			},
		},
	}
}

func TestBuild_ContainsAllScores(t *testing.T) {
	p := prompt.Build(sampleRecord())

	want := []string{
		"Student Grade Level: 4",
		"- Overall Score: 75",
		"- Reading: 80",
		"- Writing: 70",
		"- Speaking: 75",
		"- Listening: 75",
		"- Overall Score: 68",
		"- Arithmetic: 72",
		"- Geometry: 60",
		"- Problem Solving: 65",
		"- Data Analysis: 75",
	}
	for _, w := range want {
		if !strings.Contains(p, w) {
			t.Errorf("prompt missing %q", w)
		}
	}
}

func TestBuild_ContainsPersonaAndSchema(t *testing.T) {
	p := prompt.Build(sampleRecord())

	if !strings.Contains(p, "educational assessment expert") {
		t.Error("prompt missing persona instruction")
	}
	if !strings.Contains(p, "Malaysian primary education") {
		t.Error("prompt missing curriculum framing")
	}

	// The literal schema is what coerces the model toward structured output.
	for _, key := range []string{
		"performance_levels",
		"strengths",
		"weaknesses",
		"improvement_recommendations",
		"enrichment_activities",
		"High/Mid/Low",
	} {
		if !strings.Contains(p, key) {
			t.Errorf("prompt schema missing %q", key)
		}
	}
}
