package prompt

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/bryanwahyu/penilai-edu/internal/domain/analysis"
)

// rawSampleLimit caps how much of an unparseable reply travels back to the
// caller; the full reply belongs in the archive, not the response body.
const rawSampleLimit = 500

// Extract recovers a JSON object from a free-form model reply. Models often
// wrap valid JSON in explanatory prose or markdown fencing, so after a failed
// whole-text parse it falls back to the first-'{' .. last-'}' slice. The slice
// heuristic can mis-extract when the prose itself contains brace characters;
// that is a known limitation inherited from the prompt contract, not handled
// with a grammar-aware parser.
//
// Extract is total: input that cannot be coerced to JSON yields the failure
// variant instead of an error.
func Extract(raw string) analysis.Document {
	var doc analysis.Document
	if err := json.Unmarshal([]byte(raw), &doc); err == nil {
		return doc
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		doc = nil
		if err := json.Unmarshal([]byte(raw[start:end+1]), &doc); err == nil {
			return doc
		}
	}

	return analysis.Unparseable(truncate(raw, rawSampleLimit))
}

// truncate keeps the first n characters, not bytes, so multi-byte replies
// are never cut mid-rune.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
