package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/boq-go/pkg/boq/models"
	"github.com/xuri/excelize/v2"
)

// NumberFormat is the display format of every aggregate cell.
const NumberFormat = "#,##0.00"

// excelize border styles.
const (
	borderThin   = 1
	borderMedium = 2
)

const (
	colorText       = "2C3E50"
	colorNumber     = "1A1A1A"
	colorHeaderFill = "DCDCDC"
	colorShadeFill  = "F8F9FA"
	colorHeaderLine = "999999"
	colorDataLine   = "E0E0E0"
)

// XLSXExporter writes the rendered grid to a single-sheet workbook.
type XLSXExporter struct {
	opts Options
}

// NewXLSXExporter creates an XLSXExporter.
func NewXLSXExporter(opts Options) *XLSXExporter {
	return &XLSXExporter{opts: opts}
}

// Export writes the workbook to w.
func (e *XLSXExporter) Export(w io.Writer, _ *models.Report, grid *models.FormattedGrid) error {
	f, err := e.Workbook(grid)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

// Workbook builds the workbook in memory. The caller closes it.
func (e *XLSXExporter) Workbook(grid *models.FormattedGrid) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := e.opts.SheetName
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet %q: %w", sheet, err)
	}

	if err := e.writeGrid(f, sheet, grid); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func (e *XLSXExporter) writeGrid(f *excelize.File, sheet string, grid *models.FormattedGrid) error {
	styles := newStyleCache(f, e.opts.Font)

	for rowIdx, row := range grid.Rows {
		rowNum := rowIdx + 1
		if row.IsBlank() {
			continue
		}
		if row.Height > 0 {
			if err := f.SetRowHeight(sheet, rowNum, row.Height); err != nil {
				return err
			}
		}

		for colIdx, cell := range row.Cells {
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cellName, cell.Value); err != nil {
				return err
			}
			styleID, err := styles.get(cell)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cellName, cellName, styleID); err != nil {
				return err
			}
		}
	}

	for colIdx, col := range grid.Columns {
		colName, err := excelize.ColumnNumberToName(colIdx + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, colName, colName, col.Width); err != nil {
			return err
		}
	}

	if len(grid.Rows) == 0 {
		return nil
	}
	return f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: printAreaRef(sheet, grid.Width(), len(grid.Rows)),
		Scope:    sheet,
	})
}

// printAreaRef formats the absolute reference of the written block,
// e.g. 'Sheet'!$A$1:$E$12.
func printAreaRef(sheet string, cols, rows int) string {
	lastCol, _ := excelize.ColumnNumberToName(cols)
	quoted := strings.ReplaceAll(sheet, "'", "''")
	return fmt.Sprintf("'%s'!$A$1:$%s$%d", quoted, lastCol, rows)
}

type styleKey struct {
	style  models.Style
	align  models.Align
	shaded bool
}

// styleCache registers each distinct cell style once.
type styleCache struct {
	f    *excelize.File
	font string
	ids  map[styleKey]int
}

func newStyleCache(f *excelize.File, font string) *styleCache {
	return &styleCache{f: f, font: font, ids: make(map[styleKey]int)}
}

func (c *styleCache) get(cell models.GridCell) (int, error) {
	key := styleKey{style: cell.Style, align: cell.Align, shaded: cell.Shaded}
	if id, ok := c.ids[key]; ok {
		return id, nil
	}
	id, err := c.f.NewStyle(cellStyle(key, c.font))
	if err != nil {
		return 0, fmt.Errorf("failed to create %s style: %w", cell.Style, err)
	}
	c.ids[key] = id
	return id, nil
}

func cellStyle(key styleKey, font string) *excelize.Style {
	style := &excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: string(key.align),
			Vertical:   "center",
		},
	}

	switch key.style {
	case models.StyleStationTitle:
		style.Font = &excelize.Font{Family: font, Size: 12, Bold: true}
	case models.StyleHeader:
		style.Font = &excelize.Font{Family: font, Size: 11, Bold: true, Color: colorText}
		style.Fill = solidFill(colorHeaderFill)
		style.Border = []excelize.Border{
			{Type: "top", Color: colorHeaderLine, Style: borderThin},
			{Type: "left", Color: colorHeaderLine, Style: borderThin},
			{Type: "bottom", Color: colorHeaderLine, Style: borderMedium},
			{Type: "right", Color: colorHeaderLine, Style: borderThin},
		}
	case models.StyleDataLabel:
		style.Font = &excelize.Font{Family: font, Size: 11, Bold: true, Color: colorText}
		style.Border = thinBorder(colorDataLine)
	case models.StyleDataNumber:
		numFmt := NumberFormat
		style.Font = &excelize.Font{Family: font, Size: 11, Color: colorNumber}
		style.Border = thinBorder(colorDataLine)
		style.CustomNumFmt = &numFmt
	}

	if key.shaded {
		style.Fill = solidFill(colorShadeFill)
	}
	return style
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func thinBorder(color string) []excelize.Border {
	return []excelize.Border{
		{Type: "top", Color: color, Style: borderThin},
		{Type: "left", Color: color, Style: borderThin},
		{Type: "bottom", Color: color, Style: borderThin},
		{Type: "right", Color: color, Style: borderThin},
	}
}
