// Package manifest loads the document manifest: the list of source
// documents to convert, each with its corpus metadata.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coolbeans/statuta/pkg/corpus"
)

// Manifest lists the documents of one conversion run.
type Manifest struct {
	Documents []corpus.Metadata `yaml:"documents"`
}

// Load reads and validates a YAML manifest. Every entry must carry a
// code and a source path; the remaining metadata fields are optional.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates manifest bytes.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	for i, doc := range m.Documents {
		if doc.Code == "" {
			return nil, fmt.Errorf("manifest document %d: missing code", i)
		}
		if doc.Source == "" {
			return nil, fmt.Errorf("manifest document %d (%s): missing source", i, doc.Code)
		}
	}
	return &m, nil
}
