// Package output serialises rendered reports to xlsx, Markdown, HTML and JSON.
package output

import (
	"io"
	"sort"
	"strings"

	"github.com/ukaji3/boq-go/pkg/boq"
	"github.com/ukaji3/boq-go/pkg/boq/models"
)

// Export format names.
const (
	FormatXLSX     = "xlsx"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatJSON     = "json"
)

// DefaultFileName is the name of the exported workbook.
const DefaultFileName = "물량표_결과.xlsx"

// Options configures the exporters.
type Options struct {
	// SheetName is the worksheet name of the exported workbook.
	SheetName string
	// Font is the font family of every exported cell.
	Font string
	// Title heads the Markdown and HTML previews.
	Title string
	// Pretty indents JSON output.
	Pretty bool
}

// DefaultOptions returns default exporter options.
func DefaultOptions() Options {
	return Options{
		SheetName: "물량표",
		Font:      "맑은 고딕",
		Title:     "물량표",
	}
}

// Exporter writes a report in one output format.
// The grid is the rendered form of the report.
type Exporter interface {
	Export(w io.Writer, report *models.Report, grid *models.FormattedGrid) error
}

var registry = map[string]func(Options) Exporter{
	FormatXLSX:     func(o Options) Exporter { return NewXLSXExporter(o) },
	FormatMarkdown: func(o Options) Exporter { return NewMarkdownExporter(o) },
	FormatHTML:     func(o Options) Exporter { return NewHTMLExporter(o) },
	FormatJSON:     func(o Options) Exporter { return NewJSONExporter(o) },
}

// ExporterFor returns the exporter registered for format.
// Unknown formats yield a *boq.ExportUnavailableError.
func ExporterFor(format string, opts Options) (Exporter, error) {
	newExporter, ok := registry[strings.ToLower(format)]
	if !ok {
		return nil, boq.NewExportUnavailableError(format)
	}
	return newExporter(opts), nil
}

// Formats returns the registered format names in ascending order.
func Formats() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
