package structure

import (
	"regexp"
	"sort"
	"strings"
)

// HierarchyMarker is a book, chapter, or part header with its position
// in the source text. Markers of one type are totally ordered by offset.
type HierarchyMarker struct {
	Type   TokenType
	Label  string
	Title  string
	Offset int
}

// ArticleBlock is the text span of one article: from its header's line
// start to the next article header's line start, or document end.
// Body is the raw span with the header line already stripped; the
// enclosing labels are the numerals of the nearest preceding book,
// chapter, and part headers, empty when no such header exists.
type ArticleBlock struct {
	Label   string
	Start   int
	End     int
	Body    string
	Book    string
	Chapter string
	Part    string
}

// markerIndex holds the markers of one hierarchy level sorted by offset
// and answers nearest-preceding lookups. Lookups are independent of call
// order, so block processing can restart at any offset.
type markerIndex struct {
	markers []HierarchyMarker
}

func (idx markerIndex) nearestBefore(offset int) (HierarchyMarker, bool) {
	i := sort.Search(len(idx.markers), func(j int) bool {
		return idx.markers[j].Offset > offset
	})
	if i == 0 {
		return HierarchyMarker{}, false
	}
	return idx.markers[i-1], true
}

// Detector locates article blocks in raw statute text and annotates each
// with its enclosing hierarchy labels.
type Detector struct {
	tokenizer *Tokenizer
}

// NewDetector creates a Detector backed by the standard tokenizer.
func NewDetector() *Detector {
	return &Detector{tokenizer: NewTokenizer()}
}

// Detect returns the ordered article blocks of the text. Blocks are
// non-overlapping and contiguous: each block ends where the next begins,
// and the last block ends at document end. Text with no article headers
// yields no blocks.
func (d *Detector) Detect(text string) []ArticleBlock {
	tokens := d.tokenizer.Tokenize(text)

	var articles []Token
	books := markerIndex{}
	chapters := markerIndex{}
	parts := markerIndex{}
	for _, tok := range tokens {
		switch tok.Type {
		case TokenArticle:
			articles = append(articles, tok)
		case TokenBook:
			books.markers = append(books.markers, marker(tok))
		case TokenChapter:
			chapters.markers = append(chapters.markers, marker(tok))
		case TokenPart:
			parts.markers = append(parts.markers, marker(tok))
		}
	}

	blocks := make([]ArticleBlock, 0, len(articles))
	for i, tok := range articles {
		end := len(text)
		if i+1 < len(articles) {
			end = articles[i+1].Offset
		}
		block := ArticleBlock{
			Label: tok.Label,
			Start: tok.Offset,
			End:   end,
			Body:  stripHeaderLine(text[tok.Offset:end], tok.Label),
		}
		if m, ok := books.nearestBefore(tok.Offset); ok {
			block.Book = m.Label
		}
		if m, ok := chapters.nearestBefore(tok.Offset); ok {
			block.Chapter = m.Label
		}
		if m, ok := parts.nearestBefore(tok.Offset); ok {
			block.Part = m.Label
		}
		blocks = append(blocks, block)
	}
	return blocks
}

func marker(tok Token) HierarchyMarker {
	return HierarchyMarker{Type: tok.Type, Label: tok.Label, Title: tok.Title, Offset: tok.Offset}
}

// stripHeaderLine removes the first line matching "Article <label>" from
// the span. Only that one occurrence is removed; later lines that happen
// to repeat the header text are left alone.
func stripHeaderLine(span, label string) string {
	headerPattern := regexp.MustCompile(`(?im)^\s*ARTICLE\s+` + regexp.QuoteMeta(label) + `\s*$`)
	if loc := headerPattern.FindStringIndex(span); loc != nil {
		span = span[:loc[0]] + span[loc[1]:]
	}
	return strings.TrimSpace(span)
}
