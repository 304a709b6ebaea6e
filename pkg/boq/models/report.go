package models

import (
	"fmt"
	"sort"
)

// Aggregate holds the four summed values of one defect at one station.
type Aggregate struct {
	// TotalQuantity sums quantities of every non-maintenance row.
	TotalQuantity float64 `json:"total_quantity"`
	// TotalCount sums counts of every non-maintenance row.
	TotalCount int `json:"total_count"`
	// NewQuantity sums quantities of rows with a newly occurring status.
	NewQuantity float64 `json:"new_quantity"`
	// NewCount sums counts of rows with a newly occurring status.
	NewCount int `json:"new_count"`
}

// Station represents one inspection site and its aggregated defects.
type Station struct {
	// Name is the label found in the station column of the opening row.
	Name string `json:"name"`
	// Row is the 0-based index of the opening row in the input grid.
	Row int `json:"row"`
	// Ordinal is the 1-based position among detected stations.
	Ordinal int `json:"ordinal"`
	// Defects maps defect label to its aggregate.
	Defects map[string]*Aggregate `json:"defects"`
}

// NewStation creates a Station with an empty defect map.
func NewStation(name string, row, ordinal int) *Station {
	return &Station{
		Name:    name,
		Row:     row,
		Ordinal: ordinal,
		Defects: make(map[string]*Aggregate),
	}
}

// Key identifies the station within one report.
// Stations sharing a name are told apart by their ordinal.
func (s *Station) Key() string {
	return fmt.Sprintf("ST_%d_%s", s.Ordinal, s.Name)
}

// Defect returns the aggregate for label, creating a zero one if needed.
func (s *Station) Defect(label string) *Aggregate {
	agg, ok := s.Defects[label]
	if !ok {
		agg = &Aggregate{}
		s.Defects[label] = agg
	}
	return agg
}

// DefectLabels returns the defect labels in ascending order.
func (s *Station) DefectLabels() []string {
	labels := make([]string, 0, len(s.Defects))
	for label := range s.Defects {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Source describes the sheet a report was built from.
type Source struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name,omitempty"`
	// SheetName is the worksheet that was read.
	SheetName string `json:"sheet_name,omitempty"`
	// UsedRange is the bounding range of non-empty cells (e.g. "A1:N120").
	UsedRange string `json:"used_range,omitempty"`
	// Rows is the number of rows read from the sheet.
	Rows int `json:"rows"`
	// Cells is the number of non-empty cells within UsedRange.
	Cells int `json:"cells"`
}

// Report is the ordered collection of stations produced from one sheet.
type Report struct {
	// Source describes the input sheet.
	Source Source `json:"source"`
	// Stations is ordered by ascending Row.
	Stations []*Station `json:"stations"`
}

// DefectCount returns the number of (station, defect) pairs in the report.
func (r *Report) DefectCount() int {
	n := 0
	for _, st := range r.Stations {
		n += len(st.Defects)
	}
	return n
}
