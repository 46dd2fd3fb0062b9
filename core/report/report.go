package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tablediff/core/reconcile"
)

const (
	// FormatText renders one line per discrepancy.
	FormatText = "text"
	// FormatJSON renders a single JSON document.
	FormatJSON = "json"
)

// Writer renders a comparison result.
type Writer interface {
	Write(result *reconcile.DiffResult) error
}

// Options controls which categories the text report includes.
type Options struct {
	// ShowOnlyRight includes keys present in dataset 2 only.
	ShowOnlyRight bool
}

// New returns the writer for format.
func New(format string, w io.Writer, opts Options) (Writer, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return NewText(w, opts), nil
	case FormatJSON:
		return NewJSON(w, opts), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// TextWriter writes plain discrepancy lines.
type TextWriter struct {
	w    io.Writer
	opts Options
}

// NewText creates a text report writer.
func NewText(w io.Writer, opts Options) *TextWriter {
	return &TextWriter{w: w, opts: opts}
}

// Write emits every discrepancy of result, one per line.
func (t *TextWriter) Write(result *reconcile.DiffResult) error {
	bw := bufio.NewWriter(t.w)

	for _, key := range result.OnlyLeft {
		fmt.Fprintf(bw, "The key %s is only present in dataset 1.\n", key)
	}
	if t.opts.ShowOnlyRight {
		for _, key := range result.OnlyRight {
			fmt.Fprintf(bw, "The key %s is only present in dataset 2.\n", key)
		}
	}
	for _, m := range result.Mismatches {
		fmt.Fprintf(bw, "Values for key %s differ: %s\n", m.Key, describe(m))
	}

	return bw.Flush()
}

// describe lists each differing column as name: "left" vs "right".
func describe(m reconcile.Mismatch) string {
	parts := make([]string, len(m.Columns))
	for i, col := range m.Columns {
		parts[i] = fmt.Sprintf("%s: %s vs %s", col, cell(m.Left, col), cell(m.Right, col))
	}
	return strings.Join(parts, ", ")
}

func cell(values reconcile.ValueTuple, col string) string {
	v, ok := values[col]
	if !ok {
		return "<absent>"
	}
	return strconv.Quote(v)
}

// JSONWriter writes the result as one indented JSON document.
type JSONWriter struct {
	w    io.Writer
	opts Options
}

// NewJSON creates a JSON report writer.
func NewJSON(w io.Writer, opts Options) *JSONWriter {
	return &JSONWriter{w: w, opts: opts}
}

// Write encodes result. Without ShowOnlyRight, only_right is emitted empty
// while the summary keeps its count.
func (j *JSONWriter) Write(result *reconcile.DiffResult) error {
	doc := *result
	if !j.opts.ShowOnlyRight {
		doc.OnlyRight = []reconcile.KeyTuple{}
	}

	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	return enc.Encode(&doc)
}
