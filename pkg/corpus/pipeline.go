package corpus

import "github.com/coolbeans/statuta/pkg/structure"

// Converter runs the full text-to-records pipeline for one document:
// structure detection, record construction, paragraph explosion, and
// explanatory filtering. It holds no per-document state, so one Converter
// may serve many documents, including concurrently.
type Converter struct {
	detector *structure.Detector
}

// NewConverter creates a Converter backed by the standard detector.
func NewConverter() *Converter {
	return &Converter{detector: structure.NewDetector()}
}

// Convert transforms one document's raw text into its ordered corpus
// records. It is total over its input: text with no recognizable
// structure, including empty text, yields an empty slice, never an error.
func (c *Converter) Convert(text string, meta Metadata) []Record {
	blocks := c.detector.Detect(text)
	records := make([]Record, 0, len(blocks))
	for _, block := range blocks {
		if rec, ok := BuildRecord(block, meta); ok {
			records = append(records, rec)
		}
	}
	records = ExplodeParagraphs(records)
	return DropExplanatory(records)
}
