// Package models defines data structures for snow-algae model output and charts.
package models

import (
	"fmt"
	"time"
)

// DateColumn is the name of the compound date column.
const DateColumn = "ymd"

// Schema is the ordered list of expected CSV column names.
// The first entry is the date column.
type Schema []string

// DefaultSchema returns the column layout written by the snow-algae model.
func DefaultSchema() Schema {
	return Schema{DateColumn, "time", "gp", "cellA", "bioA", "cellV", "bioV", "ocV"}
}

// DateColumn returns the name of the date column, or "" for an empty schema.
func (s Schema) DateColumn() string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// ValueColumns returns the numeric columns, in schema order.
func (s Schema) ValueColumns() []string {
	if len(s) < 2 {
		return nil
	}
	return s[1:]
}

// Table holds one CSV dataset as equal-length columns.
type Table struct {
	// Schema is the column layout the table was loaded with.
	Schema Schema
	// Stamps holds the raw date column values.
	Stamps []string
	// Dates holds the parsed YYYYMMDD prefix of each stamp (UTC midnight).
	Dates []time.Time
	// Columns maps every non-date schema column to its values.
	Columns map[string][]float64
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Dates)
}

// Column returns the values of a numeric column.
func (t *Table) Column(name string) ([]float64, error) {
	values, ok := t.Columns[name]
	if !ok {
		return nil, fmt.Errorf("column %q not in table", name)
	}
	return values, nil
}

// DayOfYear is the day-of-year sequence derived from a table's date column.
type DayOfYear struct {
	// BaseYear is the year of the first timestamp.
	BaseYear int
	// Days holds one entry per table row; January 1 of BaseYear is day 1.
	Days []int
}

// Len returns the number of entries.
func (d DayOfYear) Len() int {
	return len(d.Days)
}
