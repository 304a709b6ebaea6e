package boq

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/boq-go/pkg/boq/models"
	"github.com/ukaji3/boq-go/pkg/boq/parser"
)

// Summarize reads the first sheet of the workbook at path and aggregates it.
//
// Files without a workbook extension are rejected with an InputFormatError
// before they are opened. Reader failures are returned as a ParseError.
func Summarize(path string, opts Options) (*models.Report, error) {
	if parser.DetectFormat(path) == parser.FormatUnknown {
		return nil, &InputFormatError{Path: path, Ext: filepath.Ext(path)}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	sheet, err := parser.ReadFile(path, opts.Password)
	if err != nil {
		return nil, NewParseError(path, err)
	}
	return SummarizeSheet(sheet, opts), nil
}

// SummarizeBytes is Summarize for a workbook already held in memory.
// The name supplies the extension and the book name.
func SummarizeBytes(name string, data []byte, opts Options) (*models.Report, error) {
	if parser.DetectFormat(name) == parser.FormatUnknown {
		return nil, &InputFormatError{Path: name, Ext: filepath.Ext(name)}
	}

	sheet, err := parser.ReadBytes(name, data, opts.Password)
	if err != nil {
		return nil, NewParseError(name, err)
	}
	return SummarizeSheet(sheet, opts), nil
}

// SummarizeSheet aggregates an already extracted sheet.
func SummarizeSheet(sheet *models.Sheet, opts Options) *models.Report {
	report := parser.Aggregate(sheet.Rows, opts.Aggregate)

	usedRange, cells := parser.DataBounds(sheet.Rows)
	report.Source = models.Source{
		BookName:  sheet.BookName,
		SheetName: sheet.SheetName,
		UsedRange: usedRange,
		Rows:      len(sheet.Rows),
		Cells:     cells,
	}
	return report
}
