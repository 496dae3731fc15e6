package upstream

import (
	"strings"
	"unicode/utf8"
)

const maxSnippetLen = 256

// Snippet trims an upstream response body down to something safe to put in
// an error message or a log line.
func Snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if s == "" {
		return "<empty body>"
	}
	if len(s) <= maxSnippetLen {
		return s
	}
	cut := maxSnippetLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
