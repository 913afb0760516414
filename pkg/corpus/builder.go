package corpus

import (
	"fmt"

	"github.com/coolbeans/statuta/pkg/normalize"
	"github.com/coolbeans/statuta/pkg/structure"
)

// BuildRecord maps one detected article block onto a flat ARTICLE record,
// cleaning the block body on the way. The second return value is false
// when the cleaned body is empty, in which case no record is emitted.
func BuildRecord(block structure.ArticleBlock, meta Metadata) (Record, bool) {
	body := normalize.Clean(block.Body)
	if body == "" {
		return Record{}, false
	}
	return Record{
		DocCode:      meta.Code,
		DocName:      meta.Name,
		DocNumber:    meta.Number,
		Year:         meta.Year,
		SectionType:  SectionArticle,
		Title:        fmt.Sprintf("Article %s", block.Label),
		ArticleLabel: block.Label,
		Book:         optional(block.Book),
		Chapter:      optional(block.Chapter),
		Part:         optional(block.Part),
		ValidFrom:    meta.ValidFrom,
		ValidTo:      meta.ValidTo,
		SourceFile:   meta.Source,
		Text:         body,
	}, true
}
