package review

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// LineNumbers holds the lines an issue refers to, as the model wrote them.
// Entries are usually integers but may be ranges such as "3-5" or free text.
type LineNumbers []string

// UnmarshalJSON accepts an array of numbers or strings, or a single scalar.
// Numbers keep their literal form; null entries are dropped.
func (l *LineNumbers) UnmarshalJSON(data []byte) error {
	*l = LineNumbers(textList(data))
	return nil
}

// MarshalJSON writes integer entries as numbers and everything else as strings.
func (l LineNumbers) MarshalJSON() ([]byte, error) {
	out := make([]any, len(l))
	for i, entry := range l {
		if n, err := strconv.Atoi(entry); err == nil {
			out[i] = n
		} else {
			out[i] = entry
		}
	}
	return json.Marshal(out)
}

// LineRange is an inclusive span of 1-based lines.
type LineRange struct {
	Start int
	End   int
}

// Ranges returns the entries that name a line ("7") or a span ("3-5").
// Other entries are skipped.
func (l LineNumbers) Ranges() []LineRange {
	var ranges []LineRange
	for _, entry := range l {
		first, last, isSpan := strings.Cut(entry, "-")
		start, err := strconv.Atoi(strings.TrimSpace(first))
		if err != nil || start < 1 {
			continue
		}
		end := start
		if isSpan {
			end, err = strconv.Atoi(strings.TrimSpace(last))
			if err != nil || end < start {
				continue
			}
		}
		ranges = append(ranges, LineRange{Start: start, End: end})
	}
	return ranges
}

// UnmarshalJSON decodes a review without rejecting unexpected types:
// scalars become text, a scalar list becomes a one-element list, a single
// issue object becomes a one-issue list, and other issue values are ignored.
func (r *Result) UnmarshalJSON(data []byte) error {
	var raw struct {
		Summary       json.RawMessage `json:"summary"`
		Issues        json.RawMessage `json:"issues"`
		BestPractices json.RawMessage `json:"best_practices"`
		Suggestions   json.RawMessage `json:"suggestions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = Result{
		Summary:       text(raw.Summary),
		BestPractices: textList(raw.BestPractices),
		Suggestions:   textList(raw.Suggestions),
	}

	issues := bytes.TrimSpace(raw.Issues)
	switch {
	case len(issues) == 0:
	case issues[0] == '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(issues, &elems); err != nil {
			return err
		}
		r.Issues = make([]Issue, 0, len(elems))
		for _, elem := range elems {
			if isNull(elem) {
				continue
			}
			var issue Issue
			if err := issue.UnmarshalJSON(elem); err != nil {
				return err
			}
			r.Issues = append(r.Issues, issue)
		}
	case issues[0] == '{':
		var issue Issue
		if err := issue.UnmarshalJSON(issues); err != nil {
			return err
		}
		r.Issues = []Issue{issue}
	}
	return nil
}

// UnmarshalJSON decodes an issue object with text fields of any type.
// A non-object value is kept as the description.
func (i *Issue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		*i = Issue{Description: text(data)}
		return nil
	}

	var raw struct {
		Severity    json.RawMessage `json:"severity"`
		Category    json.RawMessage `json:"category"`
		Description json.RawMessage `json:"description"`
		Suggestion  json.RawMessage `json:"suggestion"`
		LineNumbers LineNumbers     `json:"line_numbers"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*i = Issue{
		Severity:    text(raw.Severity),
		Category:    text(raw.Category),
		Description: text(raw.Description),
		Suggestion:  text(raw.Suggestion),
		LineNumbers: raw.LineNumbers,
	}
	return nil
}

// text renders a JSON value as display text: strings unquoted, null empty,
// anything else in compact JSON form.
func text(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || isNull(raw) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// textList renders an array element-wise, dropping nulls. A non-empty
// scalar becomes a one-element list.
func textList(raw json.RawMessage) []string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || isNull(raw) {
		return nil
	}
	if raw[0] != '[' {
		if s := text(raw); s != "" {
			return []string{s}
		}
		return nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil
	}
	out := make([]string, 0, len(elems))
	for _, elem := range elems {
		if isNull(elem) {
			continue
		}
		out = append(out, text(elem))
	}
	return out
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
