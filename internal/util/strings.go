package util

import "strings"

const (
	// CommentDelimiter starts a trailing comment in macro script lines.
	CommentDelimiter = "#"
	// TokenSeparator separates tokens on a single input line.
	TokenSeparator = " "
)

// Split returns the substrings of target delimited by literal occurrences of
// separator. The first substring is always kept, even when empty, so
// Split(line, "#")[0] yields the pre-comment text of a fully commented line.
// Later empty substrings (consecutive or trailing separators) are dropped.
func Split(target, separator string) []string {
	var out []string
	start := 0
	for {
		idx := strings.Index(target[start:], separator)
		var sub string
		if idx < 0 {
			sub = target[start:]
		} else {
			sub = target[start : start+idx]
		}
		if start == 0 || len(sub) > 0 {
			out = append(out, sub)
		}
		if idx < 0 {
			return out
		}
		start += idx + len(separator)
	}
}

// ToLower folds text to lowercase before any token comparison.
func ToLower(s string) string {
	return strings.ToLower(s)
}
