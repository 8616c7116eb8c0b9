package planner

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kaptinlin/jsonrepair"
)

// decodeObject extracts a JSON object from raw model output and decodes it
// into dst. Models wrap answers in code fences or emit slightly broken JSON;
// the text is fenced-stripped and passed through jsonrepair before decoding.
func decodeObject(raw string, dst any) error {
	cleaned := stripFences(raw)
	if cleaned == "" {
		return fmt.Errorf("empty model output")
	}

	if err := json.Unmarshal([]byte(cleaned), dst); err == nil {
		return nil
	}

	repaired, err := jsonrepair.JSONRepair(cleaned)
	if err != nil {
		return fmt.Errorf("unparseable model output: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), dst); err != nil {
		return fmt.Errorf("failed to decode model output: %w", err)
	}
	return nil
}

// stripFences removes a surrounding markdown code fence, if any, and trims
// leading prose before the first brace or bracket.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}
	// Some models preface the object with a sentence of prose.
	objIdx := strings.IndexAny(s, "{[")
	if objIdx > 0 {
		s = s[objIdx:]
	}
	return s
}

// isoLayouts is the ladder of timestamp formats models actually produce.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseISOTime parses an ISO-8601-ish timestamp. It returns nil on any
// failure rather than an error: callers treat an unparseable time as
// "model gave no usable slot" and fall back.
func ParseISOTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t
		}
	}
	return nil
}

// auditString serializes v for the audit log. JSON when possible, %+v
// otherwise; recording must never fail.
func auditString(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}
