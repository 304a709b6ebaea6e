package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/boq-go/pkg/boq"
	"github.com/ukaji3/boq-go/pkg/boq/models"
	"github.com/xuri/excelize/v2"
)

func writeSurvey(t *testing.T, dir string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for cell, value := range map[string]interface{}{
		"A1": "Station A",
		"C2": "균열", "G2": 1234.5, "I2": 3, "N2": "신규",
		"C3": "누수", "G3": 0, "I3": 2, "N3": "신규",
	} {
		require.NoError(t, f.SetCellValue("Sheet1", cell, value))
	}

	path := filepath.Join(dir, "survey.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func writeConfig(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "boq.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  sheet_name: 물량표\n"), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunWritesWorkbookAndPreview(t *testing.T) {
	dir := t.TempDir()
	input := writeSurvey(t, dir)
	outPath := filepath.Join(dir, "result.xlsx")

	stdout, stderr, err := execute(t, input, "--config", writeConfig(t, dir), "-o", outPath, "--preview", "markdown")
	require.NoError(t, err, stderr)

	assert.Contains(t, stdout, "## Station A")
	assert.Contains(t, stdout, "1,234.50")
	assert.NotContains(t, stdout, "누수")
	assert.Contains(t, stderr, "stations=1")

	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer f.Close()
	value, err := f.GetCellValue("물량표", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Station A", value)
}

func TestRunPreviewToFile(t *testing.T) {
	dir := t.TempDir()
	input := writeSurvey(t, dir)
	previewPath := filepath.Join(dir, "preview.html")

	stdout, stderr, err := execute(t, input,
		"--config", writeConfig(t, dir),
		"-o", filepath.Join(dir, "result.xlsx"),
		"--preview", "html",
		"--preview-output", previewPath)
	require.NoError(t, err, stderr)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(previewPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<table>")
}

func TestRunPrettyJSONPreview(t *testing.T) {
	dir := t.TempDir()
	input := writeSurvey(t, dir)
	args := []string{input, "--config", writeConfig(t, dir), "-o", filepath.Join(dir, "result.xlsx"), "--preview", "json"}

	compact, stderr, err := execute(t, args...)
	require.NoError(t, err, stderr)
	assert.NotContains(t, compact, "\n  \"stations\"")

	pretty, stderr, err := execute(t, append(args, "--pretty")...)
	require.NoError(t, err, stderr)
	assert.Contains(t, pretty, "\n  \"stations\"")
}

type failingExporter struct{}

func (failingExporter) Export(w io.Writer, _ *models.Report, _ *models.FormattedGrid) error {
	if _, err := io.WriteString(w, "partial"); err != nil {
		return err
	}
	return errors.New("disk full")
}

func TestWriteFileRemovesPartialOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.xlsx")

	err := writeFile(path, failingExporter{}, &models.Report{}, &models.FormattedGrid{})
	require.EqualError(t, err, "disk full")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "partial output left on disk")
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)
	csv := filepath.Join(dir, "survey.csv")
	require.NoError(t, os.WriteFile(csv, []byte("a,b"), 0o600))

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unsupported input", []string{csv, "--config", cfg}, boq.ErrInputFormat},
		{"unknown preview", []string{writeSurvey(t, dir), "--config", cfg, "--preview", "pdf"}, boq.ErrExportUnavailable},
		{"missing input", []string{filepath.Join(dir, "missing.xlsx"), "--config", cfg}, boq.ErrFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Contains(t, stderr, "Error:")
		})
	}
}

func TestRunRequiresOneArgument(t *testing.T) {
	_, _, err := execute(t)
	assert.Error(t, err)
}
