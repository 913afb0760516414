// Package source is the extraction boundary of the pipeline. The core
// treats extraction as a black box returning a raw string, possibly
// empty or low-quality; everything here exists to produce that string
// from a file on disk.
package source

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Extractor turns a source file into raw text.
type Extractor interface {
	Name() string
	Extract(path string) (string, error)
}

// PlainText reads a file as UTF-8 text, stripping carriage returns.
type PlainText struct{}

func (PlainText) Name() string { return "plaintext" }

func (PlainText) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("reading %s: not valid UTF-8", path)
	}
	return strings.ReplaceAll(string(data), "\r", ""), nil
}

// Latin1Text reads a file as ISO 8859-1 text, stripping carriage
// returns. It serves as the fallback for sources that predate UTF-8.
type Latin1Text struct{}

func (Latin1Text) Name() string { return "latin1" }

func (Latin1Text) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", path, err)
	}
	return strings.ReplaceAll(string(decoded), "\r", ""), nil
}

// minPrimaryLength is the extraction size below which the primary result
// is considered low-quality and the fallback extractor is consulted.
const minPrimaryLength = 500

// Fallback chains two extractors: it keeps the primary result unless the
// primary fails or yields fewer than minPrimaryLength characters, in
// which case the secondary result is used when it is longer.
type Fallback struct {
	Primary   Extractor
	Secondary Extractor
}

func (f Fallback) Name() string {
	return fmt.Sprintf("%s+%s", f.Primary.Name(), f.Secondary.Name())
}

func (f Fallback) Extract(path string) (string, error) {
	text, primaryErr := f.Primary.Extract(path)
	if primaryErr != nil {
		text = ""
	}
	if len(text) >= minPrimaryLength {
		return text, nil
	}
	alt, secondaryErr := f.Secondary.Extract(path)
	if secondaryErr == nil && len(alt) > len(text) {
		return alt, nil
	}
	if primaryErr != nil && secondaryErr != nil {
		return "", fmt.Errorf("extracting %s: %w", path, primaryErr)
	}
	return text, nil
}

// NewDefault returns the standard extractor chain: UTF-8 first, ISO
// 8859-1 as fallback.
func NewDefault() Extractor {
	return Fallback{Primary: PlainText{}, Secondary: Latin1Text{}}
}
