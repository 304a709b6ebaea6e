package parser

import (
	"testing"

	"github.com/ukaji3/boq-go/pkg/boq/models"
)

func TestDataBounds(t *testing.T) {
	tests := []struct {
		name      string
		grid      models.RawGrid
		wantRange string
		wantCells int
	}{
		{"empty grid", nil, "", 0},
		{"blank cells only", models.RawGrid{{"", " "}, {}}, "", 0},
		{"single cell", models.RawGrid{{"x"}}, "A1:A1", 1},
		{
			"survey block",
			models.RawGrid{
				{},
				{"", "Station A"},
				{"", "", "균열", "", "", "", "", "12.5", "", "", "", "", "", "", "신규"},
			},
			"B2:O3", 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotRange, gotCells := DataBounds(tt.grid)
			if gotRange != tt.wantRange || gotCells != tt.wantCells {
				t.Errorf("DataBounds() = (%q, %d), expected (%q, %d)",
					gotRange, gotCells, tt.wantRange, tt.wantCells)
			}
		})
	}
}
