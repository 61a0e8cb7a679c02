package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var errEmptyField = errors.New("empty field")

// parseValue parses a numeric field strictly.
// Empty fields and non-finite spellings other than NaN are rejected.
func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errEmptyField
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(f, 0) {
		return 0, errors.New("infinite value")
	}
	return f, nil
}
