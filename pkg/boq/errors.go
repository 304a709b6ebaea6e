package boq

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInputFormat indicates the input file is not a recognised workbook.
var ErrInputFormat = errors.New("not an Excel workbook")

// ErrParse indicates the workbook could not be decoded.
var ErrParse = errors.New("failed to read workbook")

// ErrExportUnavailable indicates no exporter is available for a format.
var ErrExportUnavailable = errors.New("export format unavailable")

// InputFormatError reports an input rejected by its extension before any parsing.
type InputFormatError struct {
	Path string
	Ext  string
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("%s: only Excel files (.xlsx, .xls) can be processed, got %q", e.Path, e.Ext)
}

func (e *InputFormatError) Unwrap() error {
	return ErrInputFormat
}

// ParseError reports a failure of the sheet reader. Aggregation never runs after it.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to read workbook %s: %v", e.Path, e.Err)
}

// Unwrap returns both the sentinel and the reader's error so that either
// can be matched with errors.Is.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// ExportUnavailableError reports an export format that has no exporter.
type ExportUnavailableError struct {
	Format string
}

func (e *ExportUnavailableError) Error() string {
	return fmt.Sprintf("export format %q is not available", e.Format)
}

func (e *ExportUnavailableError) Unwrap() error {
	return ErrExportUnavailable
}

// NewParseError creates a new ParseError.
func NewParseError(path string, err error) *ParseError {
	return &ParseError{Path: path, Err: err}
}

// NewExportUnavailableError creates a new ExportUnavailableError.
func NewExportUnavailableError(format string) *ExportUnavailableError {
	return &ExportUnavailableError{Format: format}
}
