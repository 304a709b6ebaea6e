package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/ukaji3/boq-go/pkg/boq"
	"github.com/ukaji3/boq-go/pkg/boq/output"
	"github.com/ukaji3/boq-go/pkg/boq/parser"
	"github.com/ukaji3/boq-go/pkg/boq/render"
	"github.com/xuri/excelize/v2"
)

// AppName is the directory name used under the XDG config home.
const AppName = "boq"

// Config is the whole configuration file.
type Config struct {
	Columns ColumnsConfig `yaml:"columns"`
	Labels  LabelsConfig  `yaml:"labels"`
	Output  OutputConfig  `yaml:"output"`
}

// ColumnsConfig locates the survey columns by letter.
type ColumnsConfig struct {
	Station  string `yaml:"station"`
	Defect   string `yaml:"defect"`
	Quantity string `yaml:"quantity"`
	Count    string `yaml:"count"`
	Status   string `yaml:"status"`
}

// LabelsConfig holds the fixed texts of the survey sheets and reports.
type LabelsConfig struct {
	// DefectHeader is the sub-table header text of the defect column.
	DefectHeader string `yaml:"defect_header"`
	// Maintenance is the status excluded from totals.
	Maintenance string `yaml:"maintenance"`
	// New lists the newly occurring statuses.
	New []string `yaml:"new"`
	// Headers are the five report column headers.
	Headers []string `yaml:"headers"`
}

// OutputConfig names the exported workbook.
type OutputConfig struct {
	SheetName string `yaml:"sheet_name"`
	FileName  string `yaml:"file_name"`
	Font      string `yaml:"font"`
	// Pretty indents the JSON preview.
	Pretty bool `yaml:"pretty"`
}

// Default returns the configuration matching the standard survey sheets.
func Default() *Config {
	labels := parser.DefaultLabels()
	headers := render.DefaultOptions().Headers
	out := output.DefaultOptions()

	return &Config{
		Columns: ColumnsConfig{
			Station:  "A",
			Defect:   "C",
			Quantity: "G",
			Count:    "I",
			Status:   "N",
		},
		Labels: LabelsConfig{
			DefectHeader: labels.Header,
			Maintenance:  labels.Maintenance,
			New:          append([]string(nil), labels.NewStatuses...),
			Headers:      headers[:],
		},
		Output: OutputConfig{
			SheetName: out.SheetName,
			FileName:  output.DefaultFileName,
			Font:      out.Font,
		},
	}
}

// XDGConfigDir returns the XDG config directory for boq.
// On Linux: ~/.config/boq
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if _, err := c.columns(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Labels.DefectHeader) == "" || strings.TrimSpace(c.Labels.Maintenance) == "" {
		return ErrEmptyLabel
	}
	if len(c.Labels.New) == 0 {
		return ErrNoNewStatuses
	}
	for _, s := range c.Labels.New {
		if strings.TrimSpace(s) == strings.TrimSpace(c.Labels.Maintenance) {
			return ErrOverlappingStatus
		}
	}
	if len(c.Labels.Headers) != 5 {
		return ErrInvalidHeaders
	}
	if strings.TrimSpace(c.Output.SheetName) == "" {
		return ErrEmptySheetName
	}
	if strings.TrimSpace(c.Output.FileName) == "" {
		return ErrEmptyFileName
	}
	return nil
}

// SummarizeOptions converts the configuration into reader options.
// The configuration must be valid.
func (c *Config) SummarizeOptions(password string) (boq.Options, error) {
	cols, err := c.columns()
	if err != nil {
		return boq.Options{}, err
	}

	newStatuses := make([]string, len(c.Labels.New))
	for i, s := range c.Labels.New {
		newStatuses[i] = parser.CellText(s)
	}

	return boq.Options{
		Aggregate: parser.AggregateParams{
			Columns: cols,
			Labels: parser.Labels{
				Header:      parser.CellText(c.Labels.DefectHeader),
				Maintenance: parser.CellText(c.Labels.Maintenance),
				NewStatuses: newStatuses,
			},
		},
		Password: password,
	}, nil
}

// RenderOptions converts the configuration into renderer options.
func (c *Config) RenderOptions() render.Options {
	opts := render.DefaultOptions()
	copy(opts.Headers[:], c.Labels.Headers)
	return opts
}

// OutputOptions converts the configuration into exporter options.
func (c *Config) OutputOptions() output.Options {
	opts := output.DefaultOptions()
	opts.SheetName = c.Output.SheetName
	if c.Output.Font != "" {
		opts.Font = c.Output.Font
	}
	opts.Title = c.Output.SheetName
	opts.Pretty = c.Output.Pretty
	return opts
}

func (c *Config) columns() (parser.Columns, error) {
	letters := []string{c.Columns.Station, c.Columns.Defect, c.Columns.Quantity, c.Columns.Count, c.Columns.Status}
	idx := make([]int, len(letters))
	for i, letter := range letters {
		n, err := excelize.ColumnNameToNumber(strings.TrimSpace(letter))
		if err != nil {
			return parser.Columns{}, fmt.Errorf("%w: %q", ErrInvalidColumn, letter)
		}
		idx[i] = n - 1
	}
	return parser.Columns{
		Station:  idx[0],
		Defect:   idx[1],
		Quantity: idx[2],
		Count:    idx[3],
		Status:   idx[4],
	}, nil
}
