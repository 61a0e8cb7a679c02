package snowplot

import (
	"errors"

	"github.com/ukaji3/snowplot-go/pkg/snowplot/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNoData indicates none of a dataset's model variant files exist.
var ErrNoData = errors.New("no model output found")

// ErrNoRecords indicates an input file holds no data rows.
var ErrNoRecords = parser.ErrNoRecords

// ParseError represents a field that could not be converted to a number or date.
type ParseError = parser.ParseError

// SchemaMismatchError reports schema columns absent from an input file.
type SchemaMismatchError = parser.SchemaMismatchError
