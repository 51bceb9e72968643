// Package review produces structured code reviews through a language model.
package review

// Severity values the model is asked to use.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Category values the model is asked to use.
const (
	CategoryQuality         = "quality"
	CategorySecurity        = "security"
	CategoryPerformance     = "performance"
	CategoryMaintainability = "maintainability"
)

// Result is the review returned by the model.
// Fields are not validated; unknown severities and categories are kept as-is.
// Decoding is lenient, see UnmarshalJSON.
type Result struct {
	Summary       string   `json:"summary"`
	Issues        []Issue  `json:"issues"`
	BestPractices []string `json:"best_practices"`
	Suggestions   []string `json:"suggestions"`
}

// Issue is a single finding.
type Issue struct {
	Severity    string      `json:"severity"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Suggestion  string      `json:"suggestion"`
	LineNumbers LineNumbers `json:"line_numbers,omitempty"`
}

// Outcome records how a Result was obtained.
type Outcome struct {
	Result Result
	// FallbackUsed is true when the reply could not be parsed and
	// Result is the placeholder from Fallback.
	FallbackUsed bool
	// Raw is the model reply the result was extracted from.
	Raw string
}

// Fallback is the placeholder used when the model reply cannot be parsed.
func Fallback() Result {
	return Result{
		Summary: "코드 분석이 완료되었습니다.",
		Issues: []Issue{
			{
				Severity:    SeverityMedium,
				Category:    CategoryQuality,
				Description: "리뷰 결과를 파싱하는 중 오류가 발생했습니다.",
				Suggestion:  "수동 검토가 필요합니다.",
			},
		},
		BestPractices: []string{},
		Suggestions:   []string{"자동 리뷰 결과를 파싱할 수 없어 수동 검토가 필요합니다."},
	}
}
