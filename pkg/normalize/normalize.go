// Package normalize cleans raw statute text before record construction.
// Clean is pure and idempotent, and it never touches the parenthesized
// digit markers that paragraph explosion depends on.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// hyphenBreakPattern matches a line-wrap hyphen: a hyphen at the end
	// of a line (trailing spaces tolerated, so the join is stable across
	// repeated cleaning) followed by the break and any leading whitespace
	// of the continuation.
	hyphenBreakPattern = regexp.MustCompile(`-[ \t]*\n\s*`)

	// ellipsisPattern matches a spelled-out three-dot ellipsis, dots
	// possibly separated by whitespace.
	ellipsisPattern = regexp.MustCompile(`\s*\.\s*\.\s*\.\s*`)

	// blankRunPattern matches runs of four or more line breaks.
	blankRunPattern = regexp.MustCompile(`\n{4,}`)

	// hspaceRunPattern matches runs of two or more horizontal whitespace
	// characters.
	hspaceRunPattern = regexp.MustCompile(`[ \t]{2,}`)
)

// Clean applies the ordered cleaning steps to raw text: NUL removal,
// Unicode canonical composition, line-wrap de-hyphenation, ellipsis
// collapsing, per-line trailing-whitespace stripping, blank-run and
// horizontal-whitespace collapsing, and a final trim.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\x00", "")
	text = norm.NFC.String(text)
	text = hyphenBreakPattern.ReplaceAllString(text, "")
	text = ellipsisPattern.ReplaceAllString(text, "…")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	text = strings.Join(lines, "\n")

	text = blankRunPattern.ReplaceAllString(text, "\n\n")
	text = hspaceRunPattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
