package formatter

import "github.com/clapsheep/ollama-codellama/internal/engine/config"

// Labels is the vocabulary of a rendered report. Lookups that miss fall back
// to the raw value, so unrecognized severities and categories pass through.
type Labels struct {
	Title         string
	Summary       string
	Issues        string
	BestPractices string
	Suggestions   string

	Description string
	Suggestion  string
	Lines       string

	BestPracticeMarker string
	SuggestionMarker   string

	SeverityEmoji        map[string]string
	UnknownSeverityEmoji string
	Severity             map[string]string
	Category             map[string]string

	// Console messages of the test generator.
	TestFileGenerated string
	// RequestTime is a format for the elapsed seconds of the model call.
	RequestTime string
}

var severityEmoji = map[string]string{
	"high":   "🔴",
	"medium": "🟡",
	"low":    "🟢",
}

// LabelsKorean is the default vocabulary.
var LabelsKorean = Labels{
	Title:         "코드 리뷰 보고서",
	Summary:       "요약",
	Issues:        "발견된 문제점",
	BestPractices: "발견된 모범 사례",
	Suggestions:   "개선 제안",

	Description: "설명",
	Suggestion:  "제안",
	Lines:       "해당 줄",

	BestPracticeMarker: "✅",
	SuggestionMarker:   "💡",

	SeverityEmoji:        severityEmoji,
	UnknownSeverityEmoji: "⚪",
	Severity: map[string]string{
		"high":   "심각",
		"medium": "중요",
		"low":    "낮음",
	},
	Category: map[string]string{
		"quality":         "코드 품질",
		"security":        "보안",
		"performance":     "성능",
		"maintainability": "유지보수성",
	},

	TestFileGenerated: "테스트 파일이 생성되었습니다",
	RequestTime:       "API 요청 처리 시간: %.2f초",
}

// LabelsEnglish renders the same report in English.
var LabelsEnglish = Labels{
	Title:         "Code Review Report",
	Summary:       "Summary",
	Issues:        "Issues Found",
	BestPractices: "Best Practices Found",
	Suggestions:   "Suggestions",

	Description: "Description",
	Suggestion:  "Suggestion",
	Lines:       "Lines",

	BestPracticeMarker: "✅",
	SuggestionMarker:   "💡",

	SeverityEmoji:        severityEmoji,
	UnknownSeverityEmoji: "⚪",
	Severity: map[string]string{
		"high":   "High",
		"medium": "Medium",
		"low":    "Low",
	},
	Category: map[string]string{
		"quality":         "Code Quality",
		"security":        "Security",
		"performance":     "Performance",
		"maintainability": "Maintainability",
	},

	TestFileGenerated: "Test file generated",
	RequestTime:       "API request processed in %.2fs",
}

// LabelsFor returns the vocabulary for a config.Language* value, Korean by default.
func LabelsFor(language string) Labels {
	if language == config.LanguageEnglish {
		return LabelsEnglish
	}
	return LabelsKorean
}

func (l Labels) emoji(severity string) string {
	if e, ok := l.SeverityEmoji[severity]; ok {
		return e
	}
	return l.UnknownSeverityEmoji
}

func (l Labels) severity(s string) string {
	return lookup(l.Severity, s)
}

func (l Labels) category(c string) string {
	return lookup(l.Category, c)
}

func lookup(m map[string]string, key string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return key
}
