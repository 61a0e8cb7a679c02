// Package parser reads snow-algae model CSV output into tables.
package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoRecords indicates the CSV holds no data rows after the header and offset.
var ErrNoRecords = errors.New("no data records")

// ParseError represents a field that could not be converted.
type ParseError struct {
	Line   int // 1-based line number in the file, header included
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on line %d column %q (value %q): %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaMismatchError reports schema columns absent from the CSV header.
type SchemaMismatchError struct {
	Missing []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema mismatch: missing columns %s", strings.Join(e.Missing, ", "))
}
