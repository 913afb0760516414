package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/coolbeans/statuta/pkg/corpus"
	"github.com/coolbeans/statuta/pkg/jsonl"
	"github.com/coolbeans/statuta/pkg/logger"
	"github.com/coolbeans/statuta/pkg/manifest"
	"github.com/coolbeans/statuta/pkg/source"
	"github.com/coolbeans/statuta/pkg/structure"
)

var version = "0.1.0"

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "statuta",
		Short: "Statute text to provision corpus converter",
		Long: `Statuta converts the raw text of statute documents into a flat,
queryable corpus of legal provisions.

It recovers each document's hierarchy (book/chapter/part, articles,
numbered paragraphs) from textual layout cues alone and emits one JSONL
record per smallest addressable unit, dropping non-normative
explanatory boilerplate.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetVerbose(verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "print pipeline diagnostics to stderr")

	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(inspectCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func convertCmd() *cobra.Command {
	var manifestPath string
	var outputPath string
	var workers int

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert manifest documents into a JSONL corpus",
		Long: `Convert runs the full pipeline over every document in the manifest
and writes the merged corpus as one JSON record per line.

Example:
  statuta convert --manifest statutes.yaml --output corpus.jsonl
  statuta convert --manifest statutes.yaml --output corpus.jsonl --workers 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			man, err := manifest.Load(manifestPath)
			if err != nil {
				return err
			}

			results := convertDocuments(man.Documents, source.NewDefault(), corpus.NewConverter(), workers)

			out, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("creating output: %w", err)
			}
			defer out.Close()

			writer := jsonl.NewWriter(out)
			for i, res := range results {
				doc := man.Documents[i]
				if res.err != nil {
					fmt.Printf("  %s: skipped (%v)\n", doc.Code, res.err)
					continue
				}
				if err := writer.WriteAll(res.records); err != nil {
					return err
				}
				fmt.Printf("  %s: %d records from %s\n", doc.Code, len(res.records), doc.Source)
			}
			fmt.Printf("Wrote %d records to %s\n", writer.Count(), outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "statutes.yaml", "YAML manifest of documents to convert")
	cmd.Flags().StringVar(&outputPath, "output", "corpus.jsonl", "output JSONL corpus path")
	cmd.Flags().IntVar(&workers, "workers", 1, "number of documents converted concurrently")
	return cmd
}

// docResult is the outcome of converting one manifest document.
type docResult struct {
	records []corpus.Record
	err     error
}

// convertDocuments converts every document, up to the given number in
// parallel. Documents are independent, so each runs in its own goroutine
// with a per-document buffer; results keep manifest order, and only the
// caller touches the output writer.
func convertDocuments(docs []corpus.Metadata, extractor source.Extractor, converter *corpus.Converter, workers int) []docResult {
	if workers < 1 {
		workers = 1
	}
	results := make([]docResult, len(docs))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, doc := range docs {
		i, doc := i, doc
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = convertOne(doc, extractor, converter)
		}()
	}
	wg.Wait()
	return results
}

func convertOne(doc corpus.Metadata, extractor source.Extractor, converter *corpus.Converter) docResult {
	if _, err := os.Stat(doc.Source); err != nil {
		return docResult{err: fmt.Errorf("missing source %s", doc.Source)}
	}
	text, err := extractor.Extract(doc.Source)
	if err != nil {
		return docResult{err: err}
	}
	logger.Debugf("%s: extracted %d characters via %s", doc.Code, len(text), extractor.Name())
	records := converter.Convert(text, doc)
	logger.Debugf("%s: %d records after explosion and filtering", doc.Code, len(records))
	return docResult{records: records}
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print structure statistics for one raw text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := source.NewDefault().Extract(args[0])
			if err != nil {
				return err
			}

			tokens := structure.NewTokenizer().Tokenize(text)
			counts := map[structure.TokenType]int{}
			for _, tok := range tokens {
				counts[tok.Type]++
			}

			blocks := structure.NewDetector().Detect(text)

			fmt.Printf("File: %s (%d characters)\n", args[0], len(text))
			fmt.Printf("  Books:    %d\n", counts[structure.TokenBook])
			fmt.Printf("  Chapters: %d\n", counts[structure.TokenChapter])
			fmt.Printf("  Parts:    %d\n", counts[structure.TokenPart])
			fmt.Printf("  Articles: %d\n", len(blocks))
			if len(blocks) > 0 {
				fmt.Printf("  First article: %s (offset %d)\n", blocks[0].Label, blocks[0].Start)
				fmt.Printf("  Last article:  %s (offset %d)\n", blocks[len(blocks)-1].Label, blocks[len(blocks)-1].Start)
			}
			return nil
		},
	}
}
