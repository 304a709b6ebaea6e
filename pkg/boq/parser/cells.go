// Package parser reads survey workbooks and aggregates their rows into stations.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/boq-go/pkg/boq/models"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

var (
	numberPrefix  = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	integerPrefix = regexp.MustCompile(`^[+-]?\d+`)
)

// ExtractRows reads every row of a sheet as unformatted cell text.
// Empty rows are kept so that row indexes match the sheet.
func ExtractRows(f *excelize.File, sheetName string) (models.RawGrid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	grid := make(models.RawGrid, len(rows))
	for rowIdx, row := range rows {
		cells := make([]string, len(row))
		for colIdx, cellValue := range row {
			cells[colIdx] = norm.NFC.String(cellValue)
		}
		grid[rowIdx] = cells
	}
	return grid, nil
}

// CellText returns the trimmed, NFC-normalised text of a cell.
func CellText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// ParseNumberOrZero parses the leading decimal number of s.
// Grouping commas are ignored and trailing text such as units is dropped
// ("12.5m" is 12.5). Anything without a leading number yields 0; a
// malformed cell is never an error.
func ParseNumberOrZero(s string) float64 {
	m := numberPrefix.FindString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseIntOrZero parses the leading integer of s, stopping at the first
// non-digit ("3.7" is 3). Grouping commas are ignored. Anything without a
// leading integer, or out of range, yields 0.
func ParseIntOrZero(s string) int {
	m := integerPrefix.FindString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if m == "" {
		return 0
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return v
}
