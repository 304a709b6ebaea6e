package parser

import (
	"github.com/ukaji3/boq-go/pkg/boq/models"
)

// Columns holds the 0-based positions of the columns read from a survey sheet.
type Columns struct {
	Station  int
	Defect   int
	Quantity int
	Count    int
	Status   int
}

// DefaultColumns returns the survey layout: A, C, G, I and N.
func DefaultColumns() Columns {
	return Columns{
		Station:  0,
		Defect:   2,
		Quantity: 6,
		Count:    8,
		Status:   13,
	}
}

// Labels holds the fixed texts that drive classification and accumulation.
type Labels struct {
	// Header is the sub-table header text of the defect column.
	Header string
	// Maintenance is the status excluded from the totals.
	Maintenance string
	// NewStatuses are the statuses counted as newly occurring.
	NewStatuses []string
}

// DefaultLabels returns the label set of the survey sheets.
func DefaultLabels() Labels {
	return Labels{
		Header:      "손상내용",
		Maintenance: "보수",
		NewStatuses: []string{"신규", "재손상", "재결함"},
	}
}

// IsNew reports whether status is one of the newly occurring statuses.
func (l Labels) IsNew(status string) bool {
	for _, s := range l.NewStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// AggregateParams holds parameters for aggregation.
type AggregateParams struct {
	Columns Columns
	Labels  Labels
}

// DefaultAggregateParams returns default aggregation parameters.
func DefaultAggregateParams() AggregateParams {
	return AggregateParams{
		Columns: DefaultColumns(),
		Labels:  DefaultLabels(),
	}
}

// foldState is threaded through the single pass over the rows.
type foldState struct {
	ordinal  int
	current  *models.Station
	stations []*models.Station
}

// Aggregate groups the rows of grid into stations and sums each defect.
//
// Totals take every row whose status is not the maintenance status. New
// values take only rows whose status is in the new set. Stations are never
// merged, even when two of them share a name.
func Aggregate(grid models.RawGrid, params AggregateParams) *models.Report {
	state := &foldState{}
	for rowIdx, row := range grid {
		state.step(rowIdx, row, params)
	}

	stations := state.stations
	if stations == nil {
		stations = []*models.Station{}
	}
	return &models.Report{Stations: stations}
}

func (s *foldState) step(rowIdx int, row []string, params AggregateParams) {
	cols := params.Columns
	station := CellText(models.RowCell(row, cols.Station))
	defect := CellText(models.RowCell(row, cols.Defect))
	quantity := CellText(models.RowCell(row, cols.Quantity))
	count := CellText(models.RowCell(row, cols.Count))

	switch ClassifyRow(station, defect, quantity, count, params.Labels.Header) {
	case RowStation:
		s.ordinal++
		s.current = models.NewStation(station, rowIdx, s.ordinal)
		s.stations = append(s.stations, s.current)
	case RowData:
		if s.current == nil {
			return
		}
		status := CellText(models.RowCell(row, cols.Status))
		accumulate(s.current.Defect(defect), ParseNumberOrZero(quantity), ParseIntOrZero(count), status, params.Labels)
	}
}

func accumulate(agg *models.Aggregate, quantity float64, count int, status string, labels Labels) {
	if status != labels.Maintenance {
		agg.TotalQuantity += quantity
		agg.TotalCount += count
	}
	if labels.IsNew(status) {
		agg.NewQuantity += quantity
		agg.NewCount += count
	}
}
