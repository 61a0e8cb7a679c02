package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/snowplot-go/pkg/snowplot/models"
)

// Options configures CSV reading.
type Options struct {
	// SkipFirstRow drops the first data row after the header.
	SkipFirstRow bool
}

// ReadTable reads a CSV with a header row into a table holding the schema columns.
// Columns not named in the schema are ignored.
func ReadTable(r io.Reader, schema models.Schema, opts Options) (*models.Table, error) {
	if len(schema) == 0 {
		return nil, errors.New("empty schema")
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoRecords
	}
	if err != nil {
		return nil, convertCSVError(err)
	}

	indices, err := columnIndices(header, schema)
	if err != nil {
		return nil, err
	}

	dateCol := schema.DateColumn()
	valueCols := schema.ValueColumns()
	table := &models.Table{
		Schema:  append(models.Schema(nil), schema...),
		Columns: make(map[string][]float64, len(valueCols)),
	}
	for _, name := range valueCols {
		table.Columns[name] = nil
	}

	skip := opts.SkipFirstRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, convertCSVError(err)
		}
		if skip {
			skip = false
			continue
		}

		idx := indices[dateCol]
		stamp := record[idx]
		date, err := ParseStamp(stamp)
		if err != nil {
			line, _ := reader.FieldPos(idx)
			return nil, &ParseError{Line: line, Column: dateCol, Value: stamp, Err: err}
		}
		table.Stamps = append(table.Stamps, strings.TrimSpace(stamp))
		table.Dates = append(table.Dates, date)

		for _, name := range valueCols {
			idx := indices[name]
			v, err := parseValue(record[idx])
			if err != nil {
				line, _ := reader.FieldPos(idx)
				return nil, &ParseError{Line: line, Column: name, Value: record[idx], Err: err}
			}
			table.Columns[name] = append(table.Columns[name], v)
		}
	}

	if table.Len() == 0 {
		return nil, ErrNoRecords
	}
	return table, nil
}

// columnIndices maps each schema column to its header position.
func columnIndices(header []string, schema models.Schema) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		h = strings.TrimSpace(h)
		if _, dup := positions[h]; !dup {
			positions[h] = i
		}
	}

	indices := make(map[string]int, len(schema))
	var missing []string
	for _, name := range schema {
		i, ok := positions[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		indices[name] = i
	}
	if len(missing) > 0 {
		return nil, &SchemaMismatchError{Missing: missing}
	}
	return indices, nil
}

// convertCSVError turns an encoding/csv syntax error into a ParseError.
func convertCSVError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Line: pe.Line, Err: pe.Err}
	}
	return fmt.Errorf("read csv: %w", err)
}
