package models

// Style tags the formatting role of a cell in a FormattedGrid.
// Exporters map each tag to their own concrete styling.
type Style string

const (
	// StyleStationTitle marks the station name above each table.
	StyleStationTitle Style = "station-title"
	// StyleHeader marks the fixed column labels of each table.
	StyleHeader Style = "header"
	// StyleDataLabel marks the defect label cell of a data row.
	StyleDataLabel Style = "data-label"
	// StyleDataNumber marks the aggregate cells of a data row.
	StyleDataNumber Style = "data-number"
)

// Align is the horizontal alignment of a cell.
type Align string

const (
	AlignLeft  Align = "left"
	AlignRight Align = "right"
)

// GridCell is a single styled cell.
type GridCell struct {
	// Value is the underlying value: string, float64 or int.
	Value interface{} `json:"value"`
	// Display is the preview text of Value.
	Display string `json:"display"`
	// Style is the formatting role of the cell.
	Style Style `json:"style"`
	// Align is the horizontal alignment.
	Align Align `json:"align"`
	// Shaded reports whether the cell carries the alternate row fill.
	Shaded bool `json:"shaded,omitempty"`
}

// GridRow is a row of cells. A row without cells separates two stations.
type GridRow struct {
	// Height is the row height in points (0 means the default height).
	Height float64 `json:"height,omitempty"`
	// Cells starts at the first column.
	Cells []GridCell `json:"cells,omitempty"`
}

// IsBlank reports whether the row is a separator.
func (r GridRow) IsBlank() bool {
	return len(r.Cells) == 0
}

// Column describes a fixed output column.
type Column struct {
	// Width is the column width in characters.
	Width float64 `json:"width"`
}

// FormattedGrid is the export-agnostic rendering of a Report.
type FormattedGrid struct {
	// Columns holds the fixed column widths, first column first.
	Columns []Column `json:"columns"`
	// Rows holds the station blocks in report order.
	Rows []GridRow `json:"rows"`
}

// Width returns the number of columns spanned by the widest row.
func (g *FormattedGrid) Width() int {
	w := len(g.Columns)
	for _, row := range g.Rows {
		if len(row.Cells) > w {
			w = len(row.Cells)
		}
	}
	return w
}
