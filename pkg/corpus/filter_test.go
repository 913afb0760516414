package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExplanatory(t *testing.T) {
	tests := []struct {
		name  string
		title string
		text  string
		drop  bool
	}{
		{"explanatory title", "Explanatory Note — Article 5", "detail here", true},
		{"explanatory title lowercase", "explanatory annex", "detail", true},
		{"boilerplate body", "Article 2", "Sufficiently clear.", true},
		{"boilerplate with leading whitespace", "Article 2", "   sufficiently clear", true},
		{"boilerplate mentioned mid-body", "Article 3", "Not sufficiently clear, see paragraph (2)", false},
		{"ordinary provision", "Article 1", "Everyone has rights.", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Record{Title: tt.title, Text: tt.text}
			assert.Equal(t, tt.drop, IsExplanatory(rec))
		})
	}
}

func TestDropExplanatory_PreservesOrderOfKept(t *testing.T) {
	records := []Record{
		{Title: "Article 1", Text: "first"},
		{Title: "Article 2", Text: "Sufficiently clear."},
		{Title: "Article 3", Text: "third"},
	}
	kept := DropExplanatory(records)
	assert.Len(t, kept, 2)
	assert.Equal(t, "first", kept[0].Text)
	assert.Equal(t, "third", kept[1].Text)
}
