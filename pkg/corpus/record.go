// Package corpus builds the flat provision records that make up the
// final statute corpus: one record per article, or per numbered
// paragraph where an article carries paragraph markers.
package corpus

// SectionType distinguishes the two addressable units a record can
// represent.
type SectionType string

const (
	SectionArticle   SectionType = "ARTICLE"
	SectionParagraph SectionType = "PARAGRAPH"
)

// Metadata describes one source document. Code and Source are required;
// the validity bounds are optional and carried through to every record
// unchanged.
type Metadata struct {
	Code      string  `yaml:"code"`
	Name      string  `yaml:"name"`
	Number    string  `yaml:"number"`
	Year      int     `yaml:"year"`
	ValidFrom *string `yaml:"valid_from"`
	ValidTo   *string `yaml:"valid_to"`
	Source    string  `yaml:"source"`
}

// Record is one flat corpus entry. Optional fields are pointers so that
// absent values serialize uniformly as null; the JSON field order below
// is the corpus line format. Text is never empty: empty bodies are
// dropped before a record is emitted.
type Record struct {
	DocCode        string      `json:"doc_code"`
	DocName        string      `json:"doc_name"`
	DocNumber      string      `json:"doc_number"`
	Year           int         `json:"year"`
	SectionType    SectionType `json:"section_type"`
	Title          string      `json:"title"`
	ArticleLabel   string      `json:"article_label"`
	ParagraphLabel *string     `json:"paragraph_label"`
	Book           *string     `json:"book"`
	Chapter        *string     `json:"chapter"`
	Part           *string     `json:"part"`
	ValidFrom      *string     `json:"valid_from"`
	ValidTo        *string     `json:"valid_to"`
	SourceFile     string      `json:"source_file"`
	Text           string      `json:"text"`
}

// optional maps an empty string to nil so absent hierarchy labels come
// out as null rather than "".
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
