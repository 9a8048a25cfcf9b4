package prompt

// Report mirrors the schema the prompt asks the model to produce. The
// pipeline itself never unmarshals into it (replies stay loosely typed);
// it exists for callers that want to render a conforming document.
type Report struct {
	PerformanceLevels map[string]struct {
		Level         string `json:"level"`
		Justification string `json:"justification"`
	} `json:"performance_levels"`
	Strengths []struct {
		Area        string `json:"area"`
		Description string `json:"description"`
	} `json:"strengths"`
	Weaknesses []struct {
		Area        string `json:"area"`
		Description string `json:"description"`
	} `json:"weaknesses"`
	ImprovementRecommendations []struct {
		TargetArea string   `json:"target_area"`
		Activities []string `json:"activities"`
	} `json:"improvement_recommendations"`
	EnrichmentActivities []struct {
		TargetStrength string   `json:"target_strength"`
		Activities     []string `json:"activities"`
	} `json:"enrichment_activities"`
}
