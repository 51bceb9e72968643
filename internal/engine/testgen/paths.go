package testgen

import "strings"

const (
	sourceRoot   = "src/"
	sourceExt    = ".ts"
	testExt      = ".test.ts"
	utilsSegment = "/utils/"
	testsSegment = "/__tests__/utils/"
)

// ImportPath returns the module path used in the example import, i.e. the
// part of sourcePath after the last "src/" with a trailing ".ts" removed.
// A path without "src/" is used whole.
func ImportPath(sourcePath string) string {
	p := sourcePath
	if i := strings.LastIndex(p, sourceRoot); i >= 0 {
		p = p[i+len(sourceRoot):]
	}
	return strings.TrimSuffix(p, sourceExt)
}

// TestPath derives where the generated test is written: the first "/utils/"
// becomes "/__tests__/utils/" and a trailing ".ts" becomes ".test.ts".
func TestPath(sourcePath string) string {
	p := strings.Replace(sourcePath, utilsSegment, testsSegment, 1)
	if strings.HasSuffix(p, sourceExt) {
		p = strings.TrimSuffix(p, sourceExt) + testExt
	}
	return p
}
