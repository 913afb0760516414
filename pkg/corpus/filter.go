package corpus

import "strings"

const (
	// explanatoryTitleMark flags explanatory-annex sections by title.
	explanatoryTitleMark = "explanatory"

	// boilerplatePrefix is the standard phrase an explanatory section
	// uses when it elaborates nothing for a provision.
	boilerplatePrefix = "sufficiently clear"
)

// IsExplanatory reports whether a record is non-normative explanatory
// boilerplate: its title mentions an explanatory annex, or its body is
// nothing but the "sufficiently clear" phrase. This is a lexical
// heuristic; explanations worded differently are retained.
func IsExplanatory(rec Record) bool {
	if strings.Contains(strings.ToLower(rec.Title), explanatoryTitleMark) {
		return true
	}
	body := strings.ToLower(strings.TrimSpace(rec.Text))
	return strings.HasPrefix(body, boilerplatePrefix)
}

// DropExplanatory removes explanatory records, preserving the order of
// the rest.
func DropExplanatory(records []Record) []Record {
	kept := make([]Record, 0, len(records))
	for _, rec := range records {
		if IsExplanatory(rec) {
			continue
		}
		kept = append(kept, rec)
	}
	return kept
}
