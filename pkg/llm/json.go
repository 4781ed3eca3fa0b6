package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeJSON parses a model response that is supposed to be a single JSON
// object into T. Models wrap JSON in prose and code fences often enough that
// the decoder scans for the outermost object instead of trusting the raw
// string. A parse failure is reported as an error and treated by callers
// exactly like a timeout.
func DecodeJSON[T any](raw string) (T, error) {
	var out T

	cleaned := stripFences(raw)
	start := strings.IndexByte(cleaned, '{')
	end := strings.LastIndexByte(cleaned, '}')
	if start < 0 || end <= start {
		return out, fmt.Errorf("no JSON object in llm response")
	}

	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &out); err != nil {
		return out, fmt.Errorf("failed to parse llm JSON response: %w", err)
	}
	return out, nil
}

// stripFences removes a ```json ... ``` (or bare ```) wrapper if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
