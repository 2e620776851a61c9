package fix

import (
	"bytes"

	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff returns a unified diff between original and modified, with
// three lines of context. It returns "" when the contents are equal.
func UnifiedDiff(path string, original, modified []byte) string {
	if bytes.Equal(original, modified) {
		return ""
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(original)),
		B:        difflib.SplitLines(string(modified)),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	}
	text, _ := difflib.GetUnifiedDiffString(diff)
	return text
}
