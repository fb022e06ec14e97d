package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// JSONWriter outputs one JSON document per result.
type JSONWriter struct {
	output       io.Writer
	indent       bool
	indentPrefix string
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables indented output.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint is WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter. Output is compact unless an indent
// option is given.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{output: output}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write marshals result followed by a newline.
func (w *JSONWriter) Write(result *Result) error {
	var (
		data []byte
		err  error
	)
	if w.indent {
		data, err = json.MarshalIndent(result, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	data = append(data, '\n')
	_, err = w.output.Write(data)
	return err
}

// YAMLWriter outputs one YAML document per result, separated by "---".
type YAMLWriter struct {
	output  io.Writer
	written bool
}

// NewYAMLWriter creates a YAMLWriter.
func NewYAMLWriter(output io.Writer) *YAMLWriter {
	return &YAMLWriter{output: output}
}

// Write encodes result as a YAML document.
func (w *YAMLWriter) Write(result *Result) error {
	if w.written {
		if _, err := io.WriteString(w.output, "---\n"); err != nil {
			return err
		}
	}

	enc := yaml.NewEncoder(w.output)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	w.written = true
	return nil
}

// Schema returns the JSON schema of the documents JSONWriter emits.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(&Result{})

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
