package data

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reader reads fixed width records line by line.
type Reader struct {
	format  Format
	scanner *bufio.Scanner
	line    int
}

// NewReader creates a new reader for the given format.
func NewReader(r io.Reader, format Format) (*Reader, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	return &Reader{
		format:  format,
		scanner: bufio.NewScanner(r),
	}, nil
}

// Line returns the number of the last line read.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next record, skipping blank lines.
// It returns io.EOF once the input is exhausted.
func (r *Reader) Next() (Record, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimRight(r.scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		return r.parse(line)
	}
	if err := r.scanner.Err(); err != nil {
		return Record{}, fmt.Errorf("could not read line %d: %w", r.line+1, err)
	}
	return Record{}, io.EOF
}

func (r *Reader) parse(line string) (Record, error) {
	offset := r.format.Features * r.format.Width
	if len(line) <= offset {
		return Record{}, fmt.Errorf("line %d has %d characters but needs more than %d: %w",
			r.line, len(line), offset, FormatErr)
	}

	record := Record{
		Features: make([]float64, r.format.Features),
	}
	for i := 0; i < r.format.Features; i++ {
		v, err := r.field(line[i*r.format.Width : (i+1)*r.format.Width])
		if err != nil {
			return Record{}, fmt.Errorf("field %d: %w", i, err)
		}
		record.Features[i] = v
	}

	end := offset + r.format.LabelWidth
	if end > len(line) {
		end = len(line)
	}
	label, err := r.field(line[offset:end])
	if err != nil {
		return Record{}, fmt.Errorf("label: %w", err)
	}
	record.Label = []float64{label}
	return record, nil
}

func (r *Reader) field(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("line %d value '%s': %w", r.line, s, FormatErr)
	}
	return v, nil
}

// ReadAll reads every remaining record.
func (r *Reader) ReadAll() ([]Record, error) {
	records := make([]Record, 0)
	for {
		record, err := r.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}
