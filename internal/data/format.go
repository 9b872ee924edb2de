package data

import (
	"errors"
	"fmt"
)

// FormatErr is returned for records that do not follow the fixed width format.
var FormatErr = errors.New("malformed record")

// Format describes a fixed width record:
// Features fields of Width characters, followed by a label field of LabelWidth characters.
type Format struct {
	Features   int `json:"features"`
	Width      int `json:"width"`
	LabelWidth int `json:"label_width"`
}

// DefaultFormat is three features of seven characters and a label of five.
func DefaultFormat() Format {
	return Format{
		Features:   3,
		Width:      7,
		LabelWidth: 5,
	}
}

// Validate checks that every field has a positive size.
func (f Format) Validate() error {
	if f.Features < 1 || f.Width < 1 || f.LabelWidth < 1 {
		return fmt.Errorf("invalid format %+v: %w", f, FormatErr)
	}
	return nil
}

// Record is a single training sample.
type Record struct {
	Features []float64
	Label    []float64
}
