package porttrack

import (
	"errors"
	"fmt"
)

// ErrNoSectionsParsed indicates that every section in the workbook
// failed extraction.
var ErrNoSectionsParsed = errors.New("no sections could be parsed")

// StructureError indicates the input grid does not match the expected
// shape: a missing sheet, a missing header row, or too few rows.
type StructureError struct {
	Cause string
}

func (e *StructureError) Error() string {
	return "invalid file structure: " + e.Cause
}

// NewStructureError creates a StructureError with a human-readable cause.
func NewStructureError(format string, args ...interface{}) *StructureError {
	return &StructureError{Cause: fmt.Sprintf(format, args...)}
}

// ParseError indicates a cell failed format-specific conversion while
// extracting a section.
type ParseError struct {
	Section string
	Column  string
	Value   string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("section %q: cannot parse %q in column %q: %v",
		e.Section, e.Value, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
