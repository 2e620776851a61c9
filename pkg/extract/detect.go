package extract

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language names as reported by go-enry.
const (
	langJavaScript = "JavaScript"
	langJSX        = "JSX"
)

// IsJavaScript decides whether a fenced block holds JavaScript.
//
// A non-empty info string decides on its own, through go-enry's alias
// table. Blocks without one are classified from their content: a shebang
// first, then a few unambiguous patterns, then the enry classifier
// restricted to likely fence languages.
func IsJavaScript(info string, content []byte) bool {
	if tag := fenceTag(info); tag != "" {
		lang, ok := enry.GetLanguageByAlias(tag)
		return ok && isJavaScriptLanguage(lang)
	}
	return detect(content)
}

// fenceTag returns the first word of an info string.
func fenceTag(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], "{}.")
}

func isJavaScriptLanguage(lang string) bool {
	return lang == langJavaScript || lang == langJSX
}

// classifierCandidates are the languages most often found in unlabelled
// fences.
var classifierCandidates = []string{
	"JavaScript", "TypeScript", "JSON", "Shell", "Python",
	"Go", "Ruby", "HTML", "CSS", "YAML",
}

func detect(content []byte) bool {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return false
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return isJavaScriptLanguage(lang)
	}

	if looksLikeJSON(trimmed) {
		return false
	}
	if looksLikeJavaScript(string(content)) {
		return true
	}

	lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates)
	return safe && isJavaScriptLanguage(lang)
}

func looksLikeJSON(trimmed []byte) bool {
	return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`":`))
}

func looksLikeJavaScript(s string) bool {
	for _, marker := range []string{"function ", "=>", "var ", "const ", "let ", "console.log", "require("} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
