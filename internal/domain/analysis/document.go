package analysis

import "fmt"

// Document is the loosely typed analysis payload handed back to callers.
// The model's JSON is trusted verbatim, so no shape is enforced here;
// success and failure variants share the type and are discriminated by
// the presence of an "error" key.
type Document map[string]any

// Failed builds the failure variant for validation or provider errors.
func Failed(studentID string, err error) Document {
	return Document{
		"error":      fmt.Sprintf("analysis failed: %v", err),
		"student_id": studentID,
	}
}

// Unparseable builds the failure variant for a model reply that could not
// be coerced to JSON. sample must already be truncated by the extractor.
func Unparseable(sample string) Document {
	return Document{
		"error":        "could not parse JSON response",
		"raw_response": sample,
	}
}

// IsError reports whether the document is a failure variant.
func (d Document) IsError() bool {
	_, ok := d["error"]
	return ok
}

// Degraded reports whether the document came out of the extractor's
// last-resort path, i.e. it carries a raw-response sample.
func (d Document) Degraded() bool {
	_, ok := d["raw_response"]
	return d.IsError() && ok
}
