package prompt_test

import (
	"encoding/json"
	"testing"

	"github.com/bryanwahyu/penilai-edu/internal/infra/ai/prompt"
)

const conformingReply = `{
  "performance_levels": {
    "english": {"level": "High", "justification": "consistent comprehension"},
    "mathematics": {"level": "Medium", "justification": "weak geometry"}
  },
  "strengths": [
    {"area": "reading", "description": "well above grade level"}
  ],
  "weaknesses": [
    {"area": "geometry", "description": "struggles with shapes"}
  ],
  "improvement_recommendations": [
    {"target_area": "geometry", "activities": ["shape sorting", "tangrams"]}
  ],
  "enrichment_activities": [
    {"target_strength": "reading", "activities": ["chapter books"]}
  ]
}`

func TestReport_BindsConformingReply(t *testing.T) {
	var rep prompt.Report
	if err := json.Unmarshal([]byte(conformingReply), &rep); err != nil {
		t.Fatalf("conforming reply did not bind: %v", err)
	}

	if got := rep.PerformanceLevels["english"].Level; got != "High" {
		t.Errorf("expected english level High, got %q", got)
	}
	if got := rep.PerformanceLevels["mathematics"].Justification; got != "weak geometry" {
		t.Errorf("unexpected mathematics justification %q", got)
	}
	if len(rep.Strengths) != 1 || rep.Strengths[0].Area != "reading" {
		t.Errorf("unexpected strengths %v", rep.Strengths)
	}
	if len(rep.Weaknesses) != 1 || rep.Weaknesses[0].Area != "geometry" {
		t.Errorf("unexpected weaknesses %v", rep.Weaknesses)
	}
	if len(rep.ImprovementRecommendations) != 1 || len(rep.ImprovementRecommendations[0].Activities) != 2 {
		t.Errorf("unexpected recommendations %v", rep.ImprovementRecommendations)
	}
	if len(rep.EnrichmentActivities) != 1 || rep.EnrichmentActivities[0].TargetStrength != "reading" {
		t.Errorf("unexpected enrichment %v", rep.EnrichmentActivities)
	}
}

func TestReport_SurvivesExtraction(t *testing.T) {
	doc := prompt.Extract("Here is the analysis:\n```json\n" + conformingReply + "\n```")
	if doc.IsError() {
		t.Fatalf("expected success document, got %v", doc)
	}

	reencoded, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	var rep prompt.Report
	if err := json.Unmarshal(reencoded, &rep); err != nil {
		t.Fatalf("extracted document no longer binds to the schema: %v", err)
	}
	if got := rep.PerformanceLevels["english"].Level; got != "High" {
		t.Errorf("expected english level High after extraction, got %q", got)
	}
}
