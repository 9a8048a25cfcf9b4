package prompt

import (
	"fmt"

	"github.com/bryanwahyu/penilai-edu/internal/domain/assessment"
)

// analysisSchema is embedded verbatim in the prompt. There is no schema
// enforcement on the provider side, so the literal example is what coerces
// the model toward structured output; Extract stays defensive regardless.
const analysisSchema = `{
    "performance_levels": {
        "english": {
            "level": "High/Mid/Low",
            "justification": "..."
        },
        "mathematics": {
            "level": "High/Mid/Low",
            "justification": "..."
        }
    },
    "strengths": [
        {
            "area": "...",
            "description": "..."
        }
    ],
    "weaknesses": [
        {
            "area": "...",
            "description": "..."
        }
    ],
    "improvement_recommendations": [
        {
            "target_area": "...",
            "activities": [
                "..."
            ]
        }
    ],
    "enrichment_activities": [
        {
            "target_strength": "...",
            "activities": [
                "..."
            ]
        }
    ]
}`

// Build renders a validated record into the analysis instruction. The
// template is specialized to exactly the two mandatory subjects and their
// four named components; it is not generic over arbitrary subject sets.
func Build(a assessment.StudentAssessment) string {
	eng := a.Subjects[assessment.SubjectEnglish]
	math := a.Subjects[assessment.SubjectMathematics]

	return fmt.Sprintf(`You are an educational assessment expert specialized in Malaysian primary education curriculum.
Analyze the following student assessment data and provide detailed recommendations:

Student Grade Level: %d

English Assessment:
- Overall Score: %g
- Reading: %g
- Writing: %g
- Speaking: %g
- Listening: %g

Mathematics Assessment:
- Overall Score: %g
- Arithmetic: %g
- Geometry: %g
- Problem Solving: %g
- Data Analysis: %g

Please provide:
1. Performance Level Classification (Low/Mid/High) for each subject with justification
2. Key strengths identified across subjects
3. Key weaknesses identified across subjects
4. Specific curriculum recommendations and activities to improve weaknesses
5. Suggested enrichment activities to further develop strengths

Format your response as a structured JSON object with the following format:
%s`,
		a.GradeLevel,
		eng.OverallScore,
		a.Component(assessment.SubjectEnglish, assessment.ComponentReading),
		a.Component(assessment.SubjectEnglish, assessment.ComponentWriting),
		a.Component(assessment.SubjectEnglish, assessment.ComponentSpeaking),
		a.Component(assessment.SubjectEnglish, assessment.ComponentListening),
		math.OverallScore,
		a.Component(assessment.SubjectMathematics, assessment.ComponentArithmetic),
		a.Component(assessment.SubjectMathematics, assessment.ComponentGeometry),
		a.Component(assessment.SubjectMathematics, assessment.ComponentProblemSolving),
		a.Component(assessment.SubjectMathematics, assessment.ComponentDataAnalysis),
		analysisSchema,
	)
}
