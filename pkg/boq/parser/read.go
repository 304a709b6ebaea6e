package parser

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/ukaji3/boq-go/pkg/boq/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoSheets indicates the workbook has no worksheet to read.
var ErrNoSheets = errors.New("workbook contains no sheets")

// xlsCharset is the charset used for legacy workbooks without a code page.
const xlsCharset = "utf-8"

// Format is a recognised workbook file format.
type Format string

const (
	// FormatUnknown is any extension that is not a workbook.
	FormatUnknown Format = ""
	// FormatOOXML covers the Office Open XML workbook extensions.
	FormatOOXML Format = "ooxml"
	// FormatBIFF covers legacy .xls workbooks.
	FormatBIFF Format = "biff"
)

var formatByExt = map[string]Format{
	".xlsx": FormatOOXML,
	".xlsm": FormatOOXML,
	".xltx": FormatOOXML,
	".xltm": FormatOOXML,
	".xls":  FormatBIFF,
}

// DetectFormat returns the workbook format implied by the file extension.
func DetectFormat(path string) Format {
	return formatByExt[strings.ToLower(filepath.Ext(path))]
}

// ReadFile reads the first sheet of the workbook at path.
func ReadFile(path, password string) (*models.Sheet, error) {
	data, err := os.ReadFile(path) //nolint:gosec // reading the user's input file is the point
	if err != nil {
		return nil, err
	}
	return ReadBytes(filepath.Base(path), data, password)
}

// ReadBytes reads the first sheet of an in-memory workbook.
// The name is only used to pick the decoder and label the result.
func ReadBytes(name string, data []byte, password string) (*models.Sheet, error) {
	var (
		sheet *models.Sheet
		err   error
	)
	switch DetectFormat(name) {
	case FormatOOXML:
		sheet, err = readOOXML(data, password)
	case FormatBIFF:
		sheet, err = readBIFF(data)
	default:
		return nil, fmt.Errorf("unsupported workbook extension %q", filepath.Ext(name))
	}
	if err != nil {
		return nil, err
	}
	sheet.BookName = filepath.Base(name)
	return sheet, nil
}

func readOOXML(data []byte, password string) (*models.Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data), excelize.Options{Password: password})
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := ExtractRows(f, sheetList[0])
	if err != nil {
		return nil, err
	}
	return &models.Sheet{SheetName: sheetList[0], Rows: rows}, nil
}

// readBIFF decodes a legacy workbook. The decoder panics on some malformed
// streams, so panics are turned into errors.
func readBIFF(data []byte) (sheet *models.Sheet, err error) {
	defer func() {
		if r := recover(); r != nil {
			sheet, err = nil, fmt.Errorf("malformed xls stream: %v", r)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), xlsCharset)
	if err != nil {
		return nil, err
	}
	if wb.NumSheets() == 0 {
		return nil, ErrNoSheets
	}
	ws := wb.GetSheet(0)
	if ws == nil {
		return nil, ErrNoSheets
	}

	grid := make(models.RawGrid, 0, int(ws.MaxRow)+1)
	for rowIdx := 0; rowIdx <= int(ws.MaxRow); rowIdx++ {
		row := ws.Row(rowIdx)
		if row == nil {
			grid = append(grid, []string{})
			continue
		}
		cells := make([]string, row.LastCol())
		for colIdx := range cells {
			cells[colIdx] = CellText(row.Col(colIdx))
		}
		grid = append(grid, cells)
	}
	return &models.Sheet{SheetName: ws.Name, Rows: grid}, nil
}
