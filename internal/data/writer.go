package data

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Writer writes records in the fixed width format.
type Writer struct {
	format Format
	w      *bufio.Writer
}

// NewWriter creates a new writer for the given format.
func NewWriter(w io.Writer, format Format) (*Writer, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	return &Writer{
		format: format,
		w:      bufio.NewWriter(w),
	}, nil
}

// Write appends the record as a single line.
func (w *Writer) Write(record Record) error {
	if len(record.Features) != w.format.Features || len(record.Label) != 1 {
		return fmt.Errorf("record with %d features and %d labels for %+v: %w",
			len(record.Features), len(record.Label), w.format, FormatErr)
	}
	builder := strings.Builder{}
	for i, v := range record.Features {
		s, err := field(v, w.format.Width)
		if err != nil {
			return fmt.Errorf("feature %d: %w", i, err)
		}
		builder.WriteString(s)
	}
	s, err := field(record.Label[0], w.format.LabelWidth)
	if err != nil {
		return fmt.Errorf("label: %w", err)
	}
	builder.WriteString(s)
	builder.WriteString("\n")
	_, err = w.w.WriteString(builder.String())
	return err
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// field renders the value in exactly width characters,
// dropping decimals down from four until it fits.
func field(v float64, width int) (string, error) {
	for precision := 4; precision >= 0; precision-- {
		s := fmt.Sprintf("%+.*f", precision, v)
		if len(s) <= width {
			return fmt.Sprintf("%-*s", width, s), nil
		}
	}
	return "", fmt.Errorf("value %v does not fit in %d characters: %w", v, width, FormatErr)
}
