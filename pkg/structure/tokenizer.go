// Package structure detects the implicit hierarchy of statute text:
// book/chapter/part headers and the article blocks they enclose.
package structure

import (
	"regexp"
	"strings"
)

// TokenType identifies the kind of structural header a token represents.
type TokenType string

const (
	TokenBook    TokenType = "BOOK"
	TokenChapter TokenType = "CHAPTER"
	TokenPart    TokenType = "PART"
	TokenArticle TokenType = "ARTICLE"
)

// Token is one structural header found in the raw text.
// Offset is the byte offset of the header's line start in the source.
// Title is the free text trailing the numeral on the same line; article
// headers carry no title because the marker must be the entire line.
type Token struct {
	Type   TokenType
	Offset int
	Label  string
	Title  string
}

// Tokenizer scans raw statute text and produces a typed stream of
// structural header tokens. The matching patterns live here so the
// assembly logic in Detector never touches regular expressions.
type Tokenizer struct {
	bookPattern    *regexp.Regexp
	chapterPattern *regexp.Regexp
	partPattern    *regexp.Regexp
	articlePattern *regexp.Regexp
}

// NewTokenizer creates a Tokenizer with the standard header patterns.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		bookPattern:    regexp.MustCompile(`(?i)^\s*BOOK\s+([IVXLC]+)\s*(.*)$`),
		chapterPattern: regexp.MustCompile(`(?i)^\s*CHAPTER\s+([IVXLC]+)\s*(.*)$`),
		partPattern:    regexp.MustCompile(`(?i)^\s*PART\s+([0-9IVXLC]+)\s*(.*)$`),
		// The article marker must be the whole line: a numeral with an
		// optional letter suffix, or a pure roman numeral. Anything after
		// the numeral disqualifies the line, so mid-sentence references
		// like "Article 5 applies" are never taken as headers.
		articlePattern: regexp.MustCompile(`(?i)^\s*ARTICLE\s+(\d+[A-Za-z]?|[IVXLCM]+)\s*$`),
	}
}

// Tokenize scans the text line by line and returns all structural header
// tokens in source order. Each line yields at most one token.
func (t *Tokenizer) Tokenize(text string) []Token {
	var tokens []Token
	offset := 0
	for _, line := range strings.Split(text, "\n") {
		if tok, ok := t.matchLine(line, offset); ok {
			tokens = append(tokens, tok)
		}
		offset += len(line) + 1
	}
	return tokens
}

func (t *Tokenizer) matchLine(line string, offset int) (Token, bool) {
	if m := t.articlePattern.FindStringSubmatch(line); m != nil {
		return Token{Type: TokenArticle, Offset: offset, Label: strings.TrimSpace(m[1])}, true
	}
	if m := t.bookPattern.FindStringSubmatch(line); m != nil {
		return headerToken(TokenBook, offset, m), true
	}
	if m := t.chapterPattern.FindStringSubmatch(line); m != nil {
		return headerToken(TokenChapter, offset, m), true
	}
	if m := t.partPattern.FindStringSubmatch(line); m != nil {
		return headerToken(TokenPart, offset, m), true
	}
	return Token{}, false
}

func headerToken(typ TokenType, offset int, m []string) Token {
	return Token{
		Type:   typ,
		Offset: offset,
		Label:  strings.TrimSpace(m[1]),
		Title:  strings.TrimSpace(m[2]),
	}
}
