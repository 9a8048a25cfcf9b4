package middleware

import (
	"fmt"
	"regexp"
	"strings"
)

// Input validation and sanitization for request parameters. Assessment
// payload shape is validated in the domain layer, not here.

var (
	tenantPattern  = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)
	studentPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)
)

// ValidateTenantID validates tenant ID format
func ValidateTenantID(tenant string) error {
	if tenant == "" {
		return fmt.Errorf("tenant ID cannot be empty")
	}
	if !tenantPattern.MatchString(tenant) {
		return fmt.Errorf("invalid tenant ID format (alphanumeric, dash, underscore only, max 64 chars)")
	}
	return nil
}

// ValidateStudentID validates student ID format (opaque but bounded)
func ValidateStudentID(studentID string) error {
	if studentID == "" {
		return fmt.Errorf("student ID cannot be empty")
	}
	if !studentPattern.MatchString(studentID) {
		return fmt.Errorf("invalid student ID format (alphanumeric, dash, underscore only, max 64 chars)")
	}
	return nil
}

// ValidatePageSize clamps pagination size
func ValidatePageSize(size int) int {
	if size <= 0 {
		return 20 // default
	}
	if size > 100 {
		return 100 // max page size
	}
	return size
}

// ValidatePage clamps page number
func ValidatePage(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Remove control characters
	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}
