// Package report renders analysis results.
//
// Writers:
//   - TextWriter: aligned per-digit table for the terminal
//   - JSONWriter: one JSON document per result
//   - YAMLWriter: one YAML document per result
//   - MarkdownWriter: tables, a mermaid pie chart and a verdict alert
//
// All writers implement Writer and are chosen by name with New.
package report

import (
	"fmt"
	"io"

	benford "github.com/maxgfr/benford-law"
)

// Result is one analyzed dataset.
type Result struct {
	// Source names the dataset (a path, "stdin" or "generated").
	Source string `json:"source" yaml:"source"`

	// Skipped counts unparsable tokens dropped while reading.
	Skipped int `json:"skipped,omitempty" yaml:"skipped,omitempty"`

	// Reference is the distribution the dataset was compared with.
	Reference benford.Distribution `json:"reference" yaml:"reference"`

	Report benford.Report `json:"report" yaml:"report"`
}

// Writer outputs analysis results.
type Writer interface {
	Write(result *Result) error
}

// MultiWriter writes every result to all of its writers, stopping at the
// first error.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that fans out to writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs result to each writer in order.
func (m *MultiWriter) Write(result *Result) error {
	for _, w := range m.writers {
		if err := w.Write(result); err != nil {
			return err
		}
	}
	return nil
}

// New returns the writer for format: text, json, yaml or markdown.
func New(format string, output io.Writer) (Writer, error) {
	switch format {
	case "text", "":
		return NewTextWriter(output), nil
	case "json":
		return NewJSONWriter(output, WithPrettyPrint()), nil
	case "yaml":
		return NewYAMLWriter(output), nil
	case "markdown":
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// expected returns the reference probability of digit and whether the
// reference judges it.
func (r *Result) expected(digit string) (float64, bool) {
	p, ok := r.Reference[digit]
	return p, ok
}

// mark returns ✓ or ✗ for a judged digit and "" otherwise.
func (r *Result) mark(digit string) string {
	deviation, ok := r.Report.FirstDigitAccuracies[digit]
	if !ok {
		return ""
	}
	if deviation < r.Report.Threshold {
		return "✓"
	}
	return "✗"
}
