package assessment

// Subject names that every record must carry
const (
	SubjectEnglish     = "english"
	SubjectMathematics = "mathematics"
)

// Component names the prompt template is specialized to
const (
	ComponentReading        = "reading"
	ComponentWriting        = "writing"
	ComponentSpeaking       = "speaking"
	ComponentListening      = "listening"
	ComponentArithmetic     = "arithmetic"
	ComponentGeometry       = "geometry"
	ComponentProblemSolving = "problem_solving"
	ComponentDataAnalysis   = "data_analysis"
)

// SubjectScore value object: overall score plus per-component scores
type SubjectScore struct {
	OverallScore float64            `json:"overall_score"`
	Components   map[string]float64 `json:"components"`
}

// Aggregate Root: StudentAssessment
type StudentAssessment struct {
	StudentID  string                  `json:"student_id,omitempty"`
	GradeLevel int                     `json:"grade_level"`
	Subjects   map[string]SubjectScore `json:"subjects"`
}

// Component returns a single component score. Missing keys yield zero;
// callers must validate the record first.
func (a StudentAssessment) Component(subject, name string) float64 {
	return a.Subjects[subject].Components[name]
}
