package corpus

import (
	"regexp"
	"strings"
)

// ParagraphPattern matches a numbered-paragraph marker: an opening
// parenthesis, optional whitespace, digits, optional whitespace, closing
// parenthesis. Known limitation: any bare "(<digits>)" in body text
// matches too, including cross-references like "see paragraph (2)";
// markers are trusted positionally, not semantically.
var ParagraphPattern = regexp.MustCompile(`\(\s*(\d+)\s*\)`)

// ExplodeParagraphs splits every ARTICLE record whose body carries two or
// more numbered-paragraph markers into one PARAGRAPH record per marker.
// Text before the first marker is discarded, runs that trim to nothing
// are dropped, and the original article record is removed once exploded.
// Articles with fewer than two markers, and all non-article records, pass
// through unchanged. Output follows the left-to-right marker order.
func ExplodeParagraphs(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if rec.SectionType != SectionArticle || rec.ParagraphLabel != nil {
			out = append(out, rec)
			continue
		}
		markers := ParagraphPattern.FindAllStringSubmatchIndex(rec.Text, -1)
		if len(markers) < 2 {
			out = append(out, rec)
			continue
		}
		for i, m := range markers {
			end := len(rec.Text)
			if i+1 < len(markers) {
				end = markers[i+1][0]
			}
			body := strings.TrimSpace(rec.Text[m[1]:end])
			if body == "" {
				continue
			}
			label := rec.Text[m[2]:m[3]]
			child := rec
			child.SectionType = SectionParagraph
			child.ParagraphLabel = &label
			child.Text = body
			out = append(out, child)
		}
	}
	return out
}
