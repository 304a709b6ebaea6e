package output

import (
	"bytes"
	"io"

	gomd "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/ukaji3/boq-go/pkg/boq/models"
)

// HTMLExporter writes the preview as a complete HTML page.
// The page is the Markdown preview run through a Markdown renderer.
type HTMLExporter struct {
	opts Options
}

// NewHTMLExporter creates an HTMLExporter.
func NewHTMLExporter(opts Options) *HTMLExporter {
	return &HTMLExporter{opts: opts}
}

// Export writes the page to w.
func (e *HTMLExporter) Export(w io.Writer, report *models.Report, grid *models.FormattedGrid) error {
	var buf bytes.Buffer
	if err := NewMarkdownExporter(e.opts).Export(&buf, report, grid); err != nil {
		return err
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage | html.SkipHTML,
		Title: e.opts.Title,
	})

	_, err := w.Write(gomd.ToHTML(buf.Bytes(), p, renderer))
	return err
}
