package review

import (
	"encoding/json"
	"strings"
)

// ExtractJSONObject parses the text between the first '{' and the last '}'
// (inclusive) as a Result. Surrounding prose is ignored. It reports false
// when either brace is missing, when they are out of order, or when the
// slice is not valid JSON for a Result.
func ExtractJSONObject(text string) (Result, bool) {
	span, ok := jsonSpan(text)
	if !ok {
		return Result{}, false
	}

	var r Result
	if err := json.Unmarshal([]byte(span), &r); err != nil {
		return Result{}, false
	}
	return r, true
}

func jsonSpan(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

// Parse extracts a Result from a model reply, substituting Fallback when
// extraction fails. It never returns an error.
func Parse(text string) Outcome {
	if r, ok := ExtractJSONObject(text); ok {
		return Outcome{Result: r, Raw: text}
	}
	return Outcome{Result: Fallback(), FallbackUsed: true, Raw: text}
}
