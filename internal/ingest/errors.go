package ingest

import "fmt"

// FormatError means a filename or page header could not yield the identity
// fields a show needs (name, date, host location).
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("bad identity format %q: %s", e.Input, e.Reason)
}

// StructureError means a raw table's geometry is inconsistent with the
// two-row split header layout every score sheet uses.
type StructureError struct {
	Reason string
}

func (e *StructureError) Error() string {
	return "bad table structure: " + e.Reason
}

// ParseError means a composite caption cell did not match the fixed
// comp/perf/total/place layout. One malformed cell indicates the geometry
// extraction mangled the whole page, so callers abort the document.
type ParseError struct {
	Column string
	Cell   string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bad caption cell in %s (%q): %v", e.Column, e.Cell, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
