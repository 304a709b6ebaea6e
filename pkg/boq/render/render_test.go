package render

import (
	"reflect"
	"testing"

	"github.com/ukaji3/boq-go/pkg/boq/models"
)

func station(name string, row, ordinal int, defects map[string]models.Aggregate) *models.Station {
	st := models.NewStation(name, row, ordinal)
	for label, agg := range defects {
		a := agg
		st.Defects[label] = &a
	}
	return st
}

func sampleReport() *models.Report {
	return &models.Report{
		Stations: []*models.Station{
			station("Station A", 0, 1, map[string]models.Aggregate{
				"박리": {TotalQuantity: 2, TotalCount: 1},
				"균열": {TotalQuantity: 1234.5, TotalCount: 3, NewQuantity: 12.5, NewCount: 1},
				"누수": {TotalQuantity: 0, TotalCount: 4, NewQuantity: 3, NewCount: 2},
				"망실": {TotalQuantity: 1, TotalCount: 1},
			}),
			station("Station B", 9, 2, map[string]models.Aggregate{
				"균열": {TotalQuantity: 5, TotalCount: 2, NewQuantity: 5, NewCount: 2},
			}),
		},
	}
}

func TestRenderLayout(t *testing.T) {
	grid := Render(sampleReport(), DefaultOptions())

	// A: title, header, 3 data rows; blank; B: title, header, 1 data row.
	if len(grid.Rows) != 9 {
		t.Fatalf("Expected 9 rows, got %d", len(grid.Rows))
	}

	title := grid.Rows[0]
	if len(title.Cells) != 1 || title.Cells[0].Value != "Station A" ||
		title.Cells[0].Style != models.StyleStationTitle || title.Height != TitleRowHeight {
		t.Errorf("Unexpected title row %+v", title)
	}

	header := grid.Rows[1]
	if header.Height != HeaderRowHeight || len(header.Cells) != 5 {
		t.Fatalf("Unexpected header row %+v", header)
	}
	for i, cell := range header.Cells {
		wantAlign := models.AlignRight
		if i == 0 {
			wantAlign = models.AlignLeft
		}
		if cell.Style != models.StyleHeader || cell.Align != wantAlign || cell.Value != DefaultOptions().Headers[i] {
			t.Errorf("header cell %d = %+v", i, cell)
		}
	}

	if !grid.Rows[5].IsBlank() {
		t.Errorf("Expected blank separator at row 5, got %+v", grid.Rows[5])
	}
	if grid.Rows[6].Cells[0].Value != "Station B" {
		t.Errorf("Expected Station B title at row 6, got %+v", grid.Rows[6])
	}
	if grid.Rows[len(grid.Rows)-1].IsBlank() {
		t.Error("Expected no separator after the last station")
	}
}

func TestRenderDataRows(t *testing.T) {
	grid := Render(sampleReport(), DefaultOptions())

	// Sorted by label, 누수 suppressed because its total quantity is zero.
	var labels []string
	for _, row := range grid.Rows[2:5] {
		labels = append(labels, row.Cells[0].Display)
	}
	if !reflect.DeepEqual(labels, []string{"균열", "망실", "박리"}) {
		t.Fatalf("Expected [균열 망실 박리], got %v", labels)
	}

	first := grid.Rows[2]
	if first.Height != DataRowHeight {
		t.Errorf("Expected data row height %d, got %v", DataRowHeight, first.Height)
	}
	wantDisplay := []string{"균열", "1,234.50", "3", "12.50", "1"}
	wantValue := []interface{}{"균열", 1234.5, 3, 12.5, 1}
	for i, cell := range first.Cells {
		if cell.Display != wantDisplay[i] || cell.Value != wantValue[i] {
			t.Errorf("cell %d = (%v, %q), expected (%v, %q)", i, cell.Value, cell.Display, wantValue[i], wantDisplay[i])
		}
		wantStyle, wantAlign := models.StyleDataNumber, models.AlignRight
		if i == 0 {
			wantStyle, wantAlign = models.StyleDataLabel, models.AlignLeft
		}
		if cell.Style != wantStyle || cell.Align != wantAlign {
			t.Errorf("cell %d style = (%s, %s), expected (%s, %s)", i, cell.Style, cell.Align, wantStyle, wantAlign)
		}
	}

	for i, row := range grid.Rows[2:5] {
		wantShaded := i%2 == 1
		for _, cell := range row.Cells {
			if cell.Shaded != wantShaded {
				t.Errorf("data row %d shaded = %v, expected %v", i, cell.Shaded, wantShaded)
			}
		}
	}
}

func TestRenderZeroSuppressionRestartsShading(t *testing.T) {
	report := &models.Report{Stations: []*models.Station{
		station("S", 0, 1, map[string]models.Aggregate{
			"a": {TotalQuantity: 1},
			"b": {TotalQuantity: 0, NewQuantity: 9},
			"c": {TotalQuantity: 1},
		}),
	}}

	grid := Render(report, DefaultOptions())
	if len(grid.Rows) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(grid.Rows))
	}
	if grid.Rows[2].Cells[0].Shaded || !grid.Rows[3].Cells[0].Shaded {
		t.Error("Expected shading to follow the position among emitted rows")
	}
}

func TestRenderEmptyReport(t *testing.T) {
	grid := Render(&models.Report{}, DefaultOptions())
	if len(grid.Rows) != 0 {
		t.Errorf("Expected no rows, got %d", len(grid.Rows))
	}
	if len(grid.Columns) != 5 {
		t.Errorf("Expected 5 columns, got %d", len(grid.Columns))
	}
}

func TestRenderStationWithoutData(t *testing.T) {
	report := &models.Report{Stations: []*models.Station{station("Empty", 0, 1, nil)}}

	grid := Render(report, DefaultOptions())
	if len(grid.Rows) != 2 {
		t.Fatalf("Expected title and header only, got %d rows", len(grid.Rows))
	}
}

func TestRenderColumns(t *testing.T) {
	grid := Render(sampleReport(), DefaultOptions())
	want := []models.Column{{Width: 25}, {Width: 12}, {Width: 12}, {Width: 12}, {Width: 12}}
	if !reflect.DeepEqual(grid.Columns, want) {
		t.Errorf("Columns = %v, expected %v", grid.Columns, want)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	report := sampleReport()
	first := Render(report, DefaultOptions())
	for i := 0; i < 20; i++ {
		if got := Render(report, DefaultOptions()); !reflect.DeepEqual(first, got) {
			t.Fatalf("render %d differs from the first", i)
		}
	}
}

func TestRenderCustomHeaders(t *testing.T) {
	opts := Options{Headers: [5]string{"Defect", "Qty", "Count", "New qty", "New count"}}
	grid := Render(sampleReport(), opts)
	if grid.Rows[1].Cells[3].Value != "New qty" {
		t.Errorf("Expected custom header, got %v", grid.Rows[1].Cells[3].Value)
	}
}
