package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_EndToEnd(t *testing.T) {
	text := "CHAPTER I GENERAL PROVISIONS\nArticle 1\n(1) first.\n(2) second.\nArticle 2\nSufficiently clear."
	records := NewConverter().Convert(text, Metadata{Code: "X", Source: "x.txt"})

	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, SectionParagraph, first.SectionType)
	assert.Equal(t, "1", first.ArticleLabel)
	require.NotNil(t, first.ParagraphLabel)
	assert.Equal(t, "1", *first.ParagraphLabel)
	require.NotNil(t, first.Chapter)
	assert.Equal(t, "I", *first.Chapter)
	assert.Nil(t, first.Book)
	assert.Equal(t, "first.", first.Text)

	second := records[1]
	require.NotNil(t, second.ParagraphLabel)
	assert.Equal(t, "2", *second.ParagraphLabel)
	assert.Equal(t, "second.", second.Text)

	// Article 2 is explanatory boilerplate and must not appear.
	for _, rec := range records {
		assert.NotEqual(t, "2", rec.ArticleLabel)
	}
}

func TestConvert_DegradesGracefully(t *testing.T) {
	converter := NewConverter()
	meta := Metadata{Code: "X", Source: "x.txt"}

	assert.Empty(t, converter.Convert("", meta))
	assert.Empty(t, converter.Convert("   \n\n ", meta))
	assert.Empty(t, converter.Convert("prose without any structure at all", meta))
}

func TestConvert_UnexplodedArticleSurvives(t *testing.T) {
	text := "Article 1\nA provision with one reference (1) only."
	records := NewConverter().Convert(text, Metadata{Code: "X", Source: "x.txt"})

	require.Len(t, records, 1)
	assert.Equal(t, SectionArticle, records[0].SectionType)
	assert.Nil(t, records[0].ParagraphLabel)
	assert.Equal(t, "A provision with one reference (1) only.", records[0].Text)
}

func TestConvert_HierarchyTitleTextDiscarded(t *testing.T) {
	text := "BOOK I CRIMES AGAINST PERSONS\nArticle 1\nprovision body"
	records := NewConverter().Convert(text, Metadata{Code: "X", Source: "x.txt"})

	require.Len(t, records, 1)
	require.NotNil(t, records[0].Book)
	// Only the numeral label is carried, never the title text.
	assert.Equal(t, "I", *records[0].Book)
}

func TestConvert_EmptyBodiesNeverEmitted(t *testing.T) {
	text := "Article 1\n\nArticle 2\nreal content"
	records := NewConverter().Convert(text, Metadata{Code: "X", Source: "x.txt"})

	require.Len(t, records, 1)
	assert.Equal(t, "2", records[0].ArticleLabel)
	for _, rec := range records {
		assert.NotEmpty(t, rec.Text)
	}
}
