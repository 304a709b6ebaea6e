package parser

// RowKind is the role of a row in the survey sheet.
type RowKind int

const (
	// RowIgnored contributes nothing.
	RowIgnored RowKind = iota
	// RowStation opens a new station.
	RowStation
	// RowData carries one defect line for the current station.
	RowData
)

func (k RowKind) String() string {
	switch k {
	case RowStation:
		return "station"
	case RowData:
		return "data"
	default:
		return "ignored"
	}
}

// ClassifyRow decides the role of a row from the trimmed text of its station,
// defect, quantity and count columns.
//
// The source sheets use merged cells, so a station row may carry stray
// sub-table labels in the defect column. Such a row still opens a station as
// long as the quantity and count columns are empty and the defect column is
// not the sub-table header label itself.
//
// RowData only says the row has a defect label; rows seen before any station
// are dropped by Aggregate.
func ClassifyRow(station, defect, quantity, count, headerLabel string) RowKind {
	if station != "" && (defect == "" || (quantity == "" && count == "" && defect != headerLabel)) {
		return RowStation
	}
	if defect != "" {
		return RowData
	}
	return RowIgnored
}
