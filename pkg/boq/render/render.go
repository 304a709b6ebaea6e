// Package render lays a Report out as a styled grid of station tables.
package render

import (
	"github.com/ukaji3/boq-go/pkg/boq/models"
)

// Row heights in points.
const (
	TitleRowHeight  = 25
	HeaderRowHeight = 22
	DataRowHeight   = 20
)

// Column widths in characters.
const (
	LabelColumnWidth  = 25
	NumberColumnWidth = 12
)

// Options configures the fixed texts of the rendered tables.
type Options struct {
	// Headers are the labels of the defect, total quantity, total count,
	// new quantity and new count columns.
	Headers [5]string
}

// DefaultOptions returns the column labels of the survey reports.
func DefaultOptions() Options {
	return Options{
		Headers: [5]string{"손상내용", "전체물량", "전체개소", "신규물량", "신규개소"},
	}
}

// Render lays out one table per station in report order.
//
// Each table is a title row, a header row and one row per defect in
// ascending label order. Defects whose total quantity is zero are left out.
// Tables are separated by a blank row.
func Render(report *models.Report, opts Options) *models.FormattedGrid {
	grid := &models.FormattedGrid{
		Columns: columns(),
	}

	for i, st := range report.Stations {
		if i > 0 {
			grid.Rows = append(grid.Rows, models.GridRow{})
		}
		grid.Rows = append(grid.Rows, titleRow(st), headerRow(opts))
		grid.Rows = append(grid.Rows, dataRows(st)...)
	}
	return grid
}

func columns() []models.Column {
	cols := []models.Column{{Width: LabelColumnWidth}}
	for i := 0; i < 4; i++ {
		cols = append(cols, models.Column{Width: NumberColumnWidth})
	}
	return cols
}

func titleRow(st *models.Station) models.GridRow {
	return models.GridRow{
		Height: TitleRowHeight,
		Cells: []models.GridCell{{
			Value:   st.Name,
			Display: st.Name,
			Style:   models.StyleStationTitle,
			Align:   models.AlignLeft,
		}},
	}
}

func headerRow(opts Options) models.GridRow {
	row := models.GridRow{Height: HeaderRowHeight}
	for i, label := range opts.Headers {
		align := models.AlignRight
		if i == 0 {
			align = models.AlignLeft
		}
		row.Cells = append(row.Cells, models.GridCell{
			Value:   label,
			Display: label,
			Style:   models.StyleHeader,
			Align:   align,
		})
	}
	return row
}

func dataRows(st *models.Station) []models.GridRow {
	var rows []models.GridRow
	for _, label := range st.DefectLabels() {
		agg := st.Defects[label]
		if agg.TotalQuantity == 0 {
			continue
		}

		shaded := len(rows)%2 == 1
		rows = append(rows, models.GridRow{
			Height: DataRowHeight,
			Cells: []models.GridCell{
				{Value: label, Display: label, Style: models.StyleDataLabel, Align: models.AlignLeft, Shaded: shaded},
				numberCell(agg.TotalQuantity, agg.TotalQuantity, shaded),
				numberCell(agg.TotalCount, float64(agg.TotalCount), shaded),
				numberCell(agg.NewQuantity, agg.NewQuantity, shaded),
				numberCell(agg.NewCount, float64(agg.NewCount), shaded),
			},
		})
	}
	return rows
}

// numberCell keeps value as is (float64 quantity or int count) for export.
func numberCell(value interface{}, v float64, shaded bool) models.GridCell {
	return models.GridCell{
		Value:   value,
		Display: FormatNumber(v),
		Style:   models.StyleDataNumber,
		Align:   models.AlignRight,
		Shaded:  shaded,
	}
}
