package assessment

import "fmt"

// ValidationError reports a malformed assessment record. It names the
// missing field or subject so the caller can fix its payload.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// Validate checks the minimum required shape before an analysis spends an
// API call on the record. A decoded record carries zero values for absent
// keys, so grade level zero and nil maps count as missing. No numeric-range
// or component-name checks happen here.
func (a StudentAssessment) Validate() error {
	if a.GradeLevel == 0 {
		return validationErrorf("missing required field: grade_level")
	}
	if a.Subjects == nil {
		return validationErrorf("missing required field: subjects")
	}
	for _, subject := range []string{SubjectEnglish, SubjectMathematics} {
		s, ok := a.Subjects[subject]
		if !ok {
			return validationErrorf("missing required subject: %s", subject)
		}
		if s.Components == nil {
			return validationErrorf("missing components for subject: %s", subject)
		}
	}
	return nil
}
