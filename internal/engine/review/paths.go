package review

// ReportPath appends ".review.<ext>" to filePath; "md" gives the markdown
// report location "<file>.review.md".
func ReportPath(filePath, ext string) string {
	return filePath + ".review." + ext
}
