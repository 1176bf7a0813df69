package core

// convert.go turns the textual values carried by demo records into column values.
//
// An absent value converts to zero so that the validation rules, not the
// parser, decide whether zero is acceptable. A present value must parse on
// its own: the empty string is not a number.

import (
	"database/sql"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidNumber is returned when a value cannot be parsed as a number.
var ErrInvalidNumber = errors.New("invalid number format")

// numericRegex validates that a string is a plain decimal number.
// Matches integers, decimals, and scientific notation; rejects NaN and Inf spellings.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ParseDecimal converts a string to a float64, ignoring surrounding whitespace.
// Returns ErrInvalidNumber if s is not a number.
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !numericRegex.MatchString(s) {
		return 0, ErrInvalidNumber
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return f, nil
}

// ParseInteger converts a string to an int64, ignoring surrounding whitespace.
// Returns ErrInvalidNumber if s is not a base-10 integer.
func ParseInteger(s string) (int64, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return i, nil
}

// DecimalOrZero parses v, or returns 0 if v is absent.
func DecimalOrZero(v sql.NullString) (float64, error) {
	if !v.Valid {
		return 0, nil
	}
	return ParseDecimal(v.String)
}

// IntegerOrZero parses v, or returns 0 if v is absent.
func IntegerOrZero(v sql.NullString) (int64, error) {
	if !v.Valid {
		return 0, nil
	}
	return ParseInteger(v.String)
}

// FormatDecimal renders a stored decimal back to its shortest textual form.
func FormatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
