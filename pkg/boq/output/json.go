package output

import (
	"encoding/json"
	"io"

	"github.com/ukaji3/boq-go/pkg/boq/models"
)

// ToJSON serialises a report.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

// JSONExporter writes the report itself, ignoring the rendered grid.
type JSONExporter struct {
	opts Options
}

// NewJSONExporter creates a JSONExporter.
func NewJSONExporter(opts Options) *JSONExporter {
	return &JSONExporter{opts: opts}
}

// Export writes the JSON document and a trailing newline to w.
func (e *JSONExporter) Export(w io.Writer, report *models.Report, _ *models.FormattedGrid) error {
	data, err := ToJSON(report, e.opts.Pretty)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
