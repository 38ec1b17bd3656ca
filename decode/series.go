package decode

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/canvaschart"
	"go.yaml.in/yaml/v4"
)

// Columns selects the label and value columns of a CSV file. A negative
// label index leaves the labels empty.
type Columns struct {
	Label int
	Value int
}

var DefaultColumns = Columns{
	Label: 0,
	Value: 1,
}

// ReadFile reads a series from file, choosing the reader from its extension.
func ReadFile(file string, cols Columns) (canvaschart.Series, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var series canvaschart.Series
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".csv":
		series, err = ReadCSV(r, cols)
	case ".json", ".yaml", ".yml":
		series, err = ReadJSON(r)
	default:
		return nil, fmt.Errorf("%s: %w", ext, ErrFormat)
	}
	var de DecodeError
	if errors.As(err, &de) {
		de.File = file
		err = de
	}
	return series, err
}

// ReadCSV reads a series from CSV rows. The first row is skipped when its
// value column is not a number.
func ReadCSV(r io.Reader, cols Columns) (canvaschart.Series, error) {
	var (
		rs     = csv.NewReader(r)
		series canvaschart.Series
		first  = true
	)
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, DecodeError{
					Message:  pe.Err.Error(),
					Position: Position{Line: pe.Line, Column: pe.Column},
				}
			}
			return nil, err
		}
		if cols.Value < 0 || cols.Value >= len(row) || cols.Label >= len(row) {
			line, col := rs.FieldPos(0)
			return nil, DecodeError{
				Message:  "invalid label/value column index",
				Position: Position{Line: line, Column: col},
			}
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row[cols.Value]), 64)
		if err != nil {
			if first {
				first = false
				continue
			}
			line, col := rs.FieldPos(cols.Value)
			return nil, DecodeError{
				Message:  fmt.Sprintf("%q: not a number", row[cols.Value]),
				Position: Position{Line: line, Column: col},
			}
		}
		first = false

		var label string
		if cols.Label >= 0 {
			label = row[cols.Label]
		}
		series = append(series, canvaschart.NewDataPoint(label, value))
	}
	return series, nil
}

type record struct {
	Label string   `yaml:"label"`
	Value *float64 `yaml:"value"`
}

// ReadJSON reads a list of label/value objects, either at the top level or
// under a data key. Unknown keys and records without a value are rejected.
func ReadJSON(r io.Reader) (canvaschart.Series, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var root yaml.Node
	if err := yaml.Unmarshal(buf, &root); err != nil {
		return nil, DecodeError{
			Message: err.Error(),
		}
	}
	if len(root.Content) == 0 {
		return nil, DecodeError{
			Message: "empty document",
		}
	}
	var (
		top  = root.Content[0]
		list []record
	)
	switch top.Kind {
	case yaml.SequenceNode:
		err = decodeStrict(buf, &list)
	case yaml.MappingNode:
		var wrap struct {
			Data *[]record `yaml:"data"`
		}
		if err = decodeStrict(buf, &wrap); err == nil && wrap.Data == nil {
			return nil, DecodeError{
				Message:  "data: key not found",
				Position: Position{Line: top.Line, Column: top.Column},
			}
		}
		if wrap.Data != nil {
			list = *wrap.Data
		}
	default:
		return nil, DecodeError{
			Message:  "expected a list of records",
			Position: Position{Line: top.Line, Column: top.Column},
		}
	}
	if err != nil {
		return nil, DecodeError{
			Message: err.Error(),
		}
	}
	series := make(canvaschart.Series, 0, len(list))
	for i, r := range list {
		if r.Value == nil {
			return nil, DecodeError{
				Message: fmt.Sprintf("record %d: value not found", i),
			}
		}
		series = append(series, canvaschart.NewDataPoint(r.Label, *r.Value))
	}
	return series, nil
}

func decodeStrict(buf []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	return dec.Decode(v)
}
