package formatter

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTMLFormatter converts the markdown report into a standalone HTML page.
type HTMLFormatter struct {
	markdown *MarkdownFormatter
	md       goldmark.Markdown
}

// NewHTMLFormatter creates an HTMLFormatter using labels for the report text.
func NewHTMLFormatter(labels Labels) *HTMLFormatter {
	return &HTMLFormatter{
		markdown: NewMarkdownFormatter(labels),
		md:       goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Extension implements Formatter.
func (f *HTMLFormatter) Extension() string { return "html" }

// Format implements Formatter.
func (f *HTMLFormatter) Format(r Report) (string, error) {
	src := f.markdown.Render(r.Result, r.File)

	var body bytes.Buffer
	if err := f.md.Convert([]byte(src), &body); err != nil {
		return "", fmt.Errorf("converting report to HTML: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<title>%s: %s</title>\n", html.EscapeString(f.markdown.Labels.Title), html.EscapeString(r.File))
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.String(), nil
}
