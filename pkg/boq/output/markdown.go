package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/ukaji3/boq-go/pkg/boq/models"
)

// MarkdownExporter writes the on-screen preview as Markdown:
// one heading and one table per station.
type MarkdownExporter struct {
	opts Options
}

// NewMarkdownExporter creates a MarkdownExporter.
func NewMarkdownExporter(opts Options) *MarkdownExporter {
	return &MarkdownExporter{opts: opts}
}

// Export writes the preview to w.
func (e *MarkdownExporter) Export(w io.Writer, report *models.Report, grid *models.FormattedGrid) error {
	md := markdown.NewMarkdown(w)

	md.H1(escapeMarkdown(e.opts.Title))
	md.PlainText("")
	if src := report.Source; src.BookName != "" {
		md.PlainText(fmt.Sprintf("%s / %s (%d stations)",
			escapeMarkdown(src.BookName), escapeMarkdown(src.SheetName), len(report.Stations)))
		md.PlainText("")
	}

	var table *markdown.TableSet
	flush := func() {
		if table == nil {
			return
		}
		md.Table(*table)
		md.PlainText("")
		table = nil
	}

	for _, row := range grid.Rows {
		if row.IsBlank() {
			flush()
			continue
		}
		switch row.Cells[0].Style {
		case models.StyleStationTitle:
			flush()
			md.H2(escapeMarkdown(row.Cells[0].Display))
			md.PlainText("")
		case models.StyleHeader:
			table = &markdown.TableSet{Header: displays(row), Rows: [][]string{}}
		default:
			if table != nil {
				table.Rows = append(table.Rows, displays(row))
			}
		}
	}
	flush()

	return md.Build()
}

func displays(row models.GridRow) []string {
	out := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		out[i] = escapeMarkdown(cell.Display)
	}
	return out
}

// markdownEscaper backslash-escapes the characters that would turn cell text
// into markup or split a table cell.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"|", `\|`,
	"#", `\#`,
	"&", `\&`,
	"\n", " ",
	"\r", " ",
)

// escapeMarkdown returns s as literal Markdown text.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
