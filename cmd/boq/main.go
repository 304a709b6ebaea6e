// Package main provides the CLI entry point for boq.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/boq-go/internal/config"
	"github.com/ukaji3/boq-go/pkg/boq"
	"github.com/ukaji3/boq-go/pkg/boq/models"
	"github.com/ukaji3/boq-go/pkg/boq/output"
	"github.com/ukaji3/boq-go/pkg/boq/render"
)

const previewNone = "none"

type flags struct {
	outputPath    string
	preview       string
	previewOutput string
	configPath    string
	password      string
	pretty        bool
	verbose       bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	rootCmd := &cobra.Command{
		Use:   "boq [input.xlsx]",
		Short: "Summarise a bill-of-quantities survey sheet per station",
		Long: `boq reads the first sheet of a survey workbook, groups its rows into
stations, sums each defect's quantities and counts, and writes one styled
table per station to a new workbook.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd, args[0], f)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
			}
			return err
		},
	}

	rootCmd.Flags().StringVarP(&f.outputPath, "output", "o", "", "Output workbook path (default: file name from config)")
	rootCmd.Flags().StringVar(&f.preview, "preview", previewNone,
		"Preview format: "+previewNone+", "+strings.Join(previewFormats(), ", "))
	rootCmd.Flags().StringVar(&f.previewOutput, "preview-output", "", "Preview file path (default: stdout)")
	rootCmd.Flags().StringVar(&f.configPath, "config", "", "Configuration file path")
	rootCmd.Flags().StringVar(&f.password, "password", "", "Password of an encrypted workbook")
	rootCmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON preview output")
	rootCmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func previewFormats() []string {
	var names []string
	for _, name := range output.Formats() {
		if name != output.FormatXLSX {
			names = append(names, name)
		}
	}
	return names
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(cmd *cobra.Command, inputPath string, f *flags) error {
	logger := newLogger(cmd.ErrOrStderr(), f.verbose)

	cfg, cfgPath, err := config.Load(f.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfgPath != "" {
		logger.Debug("configuration loaded", "path", cfgPath)
	}

	// Resolve exporters before reading so an unavailable format fails fast.
	outOpts := cfg.OutputOptions()
	if f.pretty {
		outOpts.Pretty = true
	}
	xlsx, err := output.ExporterFor(output.FormatXLSX, outOpts)
	if err != nil {
		return err
	}
	var preview output.Exporter
	if f.preview != "" && f.preview != previewNone {
		if preview, err = output.ExporterFor(f.preview, outOpts); err != nil {
			return err
		}
	}

	opts, err := cfg.SummarizeOptions(f.password)
	if err != nil {
		return err
	}
	report, err := boq.Summarize(inputPath, opts)
	if err != nil {
		return err
	}
	logger.Info("sheet summarised",
		"book", report.Source.BookName,
		"sheet", report.Source.SheetName,
		"range", report.Source.UsedRange,
		"rows", report.Source.Rows,
		"stations", len(report.Stations),
		"defects", report.DefectCount())
	for _, st := range report.Stations {
		logger.Debug("station", "key", st.Key(), "row", st.Row+1, "defects", len(st.Defects))
	}

	grid := render.Render(report, cfg.RenderOptions())

	outputPath := f.outputPath
	if outputPath == "" {
		outputPath = cfg.Output.FileName
	}
	if err := writeFile(outputPath, xlsx, report, grid); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("workbook written", "path", outputPath, "rows", len(grid.Rows))

	if preview == nil {
		return nil
	}
	if f.previewOutput == "" {
		return preview.Export(cmd.OutOrStdout(), report, grid)
	}
	if err := writeFile(f.previewOutput, preview, report, grid); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}
	logger.Info("preview written", "path", f.previewOutput, "format", f.preview)
	return nil
}

// writeFile exports to path. A partially written file is removed on failure.
func writeFile(path string, e output.Exporter, report *models.Report, grid *models.FormattedGrid) error {
	file, err := os.Create(path) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return err
	}
	if err := e.Export(file, report, grid); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}
	return file.Close()
}
