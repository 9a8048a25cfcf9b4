package prompt_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bryanwahyu/penilai-edu/internal/infra/ai/prompt"
)

func TestExtract_WholeDocumentRoundTrip(t *testing.T) {
	raw := `{"performance_levels":{"english":{"level":"High","justification":"strong reader"}},"strengths":[{"area":"reading","description":"well above grade"}]}`

	doc := prompt.Extract(raw)
	if doc.IsError() {
		t.Fatalf("expected success document, got %v", doc)
	}

	var want map[string]any
	if err := json.Unmarshal([]byte(raw), &want); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(map[string]any(doc), want) {
		t.Errorf("document altered by extraction:\ngot  %v\nwant %v", doc, want)
	}
}

func TestExtract_BraceBoundedSlice(t *testing.T) {
	doc := prompt.Extract(`Here is the result: {"a": 1} — hope this helps`)

	if doc.IsError() {
		t.Fatalf("expected success document, got %v", doc)
	}
	if got := doc["a"]; got != float64(1) {
		t.Errorf("expected a=1, got %v", got)
	}
}

func TestExtract_MarkdownFencedJSON(t *testing.T) {
	doc := prompt.Extract("```json\n{\"strengths\": []}\n```")

	if doc.IsError() {
		t.Fatalf("expected success document, got %v", doc)
	}
	if _, ok := doc["strengths"]; !ok {
		t.Error("expected strengths key to survive extraction")
	}
}

func TestExtract_TruncatesLongUnparseableText(t *testing.T) {
	raw := strings.Repeat("x", 600)

	doc := prompt.Extract(raw)
	if !doc.Degraded() {
		t.Fatalf("expected degraded document, got %v", doc)
	}

	sample, _ := doc["raw_response"].(string)
	if sample != raw[:500]+"..." {
		t.Errorf("expected first 500 chars plus ellipsis, got %d chars ending %q", len(sample), sample[len(sample)-5:])
	}
}

func TestExtract_TruncatesMultiByteTextByCharacter(t *testing.T) {
	// 600 two-byte runes: a byte-oriented cut would keep only 250 of them
	// and could land mid-rune, corrupting the sample.
	raw := strings.Repeat("é", 600)

	doc := prompt.Extract(raw)
	if !doc.Degraded() {
		t.Fatalf("expected degraded document, got %v", doc)
	}

	sample, _ := doc["raw_response"].(string)
	if !utf8.ValidString(sample) {
		t.Fatal("truncated sample is not valid UTF-8")
	}
	if got := utf8.RuneCountInString(strings.TrimSuffix(sample, "...")); got != 500 {
		t.Errorf("expected first 500 characters, got %d", got)
	}
	if !strings.HasSuffix(sample, "...") {
		t.Error("expected ellipsis suffix on truncated sample")
	}
}

func TestExtract_ShortUnparseableTextKeptWhole(t *testing.T) {
	raw := "the model declined to answer"

	doc := prompt.Extract(raw)
	if !doc.Degraded() {
		t.Fatalf("expected degraded document, got %v", doc)
	}
	if got := doc["raw_response"]; got != raw {
		t.Errorf("expected untruncated sample %q, got %v", raw, got)
	}
	if got, _ := doc["error"].(string); got == "" {
		t.Error("expected non-empty error message")
	}
}

func TestExtract_NoBracePair(t *testing.T) {
	// "}" before "{" must not be sliced
	doc := prompt.Extract(`} backwards braces {`)
	if !doc.Degraded() {
		t.Fatalf("expected degraded document, got %v", doc)
	}
}

func TestExtract_GarbageBetweenBraces(t *testing.T) {
	doc := prompt.Extract(`prose { this is not json } prose`)
	if !doc.Degraded() {
		t.Fatalf("expected degraded document, got %v", doc)
	}
}
