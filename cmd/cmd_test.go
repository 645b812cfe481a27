package cmd

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/DekoMao/qms-mao-brasil/internal/config"
)

// fixture writes a workbook and a config file pointing at it.
func fixture(t *testing.T) (dir, cfgPath string) {
	t.Helper()
	dir = t.TempDir()

	f := excelize.NewFile()
	defer f.Close()
	sheet := config.DefaultSheetName
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	require.NoError(t, f.SetSheetRow(sheet, "A9", &[]any{"Doc. Nº", "Supplier", "Status"}))
	require.NoError(t, f.SetSheetRow(sheet, "A10", &[]any{"D1", "Acme", "ONGOING"}))
	require.NoError(t, f.SetSheetRow(sheet, "A11", &[]any{"D2", "Beta", "CLOSED"}))
	workbook := filepath.Join(dir, "tracking.xlsx")
	require.NoError(t, f.SaveAs(workbook))

	cfgPath = filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf("workbook_path: %q\ndefects_output: %q\nsuppliers_output: %q\nlog_level: error\n",
		workbook, filepath.Join(dir, "out", "defects.json"), filepath.Join(dir, "out", "suppliers.json"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	return dir, cfgPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRoot_RunsExtraction(t *testing.T) {
	dir, cfgPath := fixture(t)

	out, err := execute(t, "--config", cfgPath, "--seed", "7")
	require.NoError(t, err)

	assert.Contains(t, out, "Total defects extracted: 2")
	assert.Contains(t, out, "Total unique suppliers:  2")
	assert.Contains(t, out, "SUP001: Acme")
	assert.Contains(t, out, "SUP002: Beta")
	assert.FileExists(t, filepath.Join(dir, "out", "defects.json"))
	assert.FileExists(t, filepath.Join(dir, "out", "suppliers.json"))
}

func TestExtract_OutputFlagsOverrideConfig(t *testing.T) {
	dir, cfgPath := fixture(t)
	defects := filepath.Join(dir, "alt", "d.json")
	suppliers := filepath.Join(dir, "alt", "s.json")

	_, err := execute(t, "extract", "--config", cfgPath, "--defects-out", defects, "--suppliers-out", suppliers)
	require.NoError(t, err)
	assert.FileExists(t, defects)
	assert.FileExists(t, suppliers)
}

func TestColumns(t *testing.T) {
	_, cfgPath := fixture(t)

	out, err := execute(t, "columns", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, `has 3 columns`)
	assert.Contains(t, out, `✓ "Status" -> status (string)`)
	assert.Contains(t, out, `✗ "Open date" -> openDate (date)`)
}

func TestExplicitConfigMustExist(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestWrongSheetIsFatal(t *testing.T) {
	_, cfgPath := fixture(t)

	_, err := execute(t, "columns", "--config", cfgPath, "--sheet", "NEW_FORM")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worksheet not found")
}

func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	dir, cfgPath := fixture(t)

	_, err := execute(t, "columns", "--config", cfgPath, "--sheet", "NEW_FORM")
	require.Error(t, err)

	out, err := execute(t, "--config", cfgPath)
	require.NoError(t, err, "sheet override from the previous run must not persist")
	assert.Contains(t, out, "Total defects extracted: 2")
	assert.FileExists(t, filepath.Join(dir, "out", "defects.json"))
}

func TestVersion(t *testing.T) {
	dir, cfgPath := fixture(t)

	out, err := execute(t, "version", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "QMS Defect Extractor "+Version)
	assert.Contains(t, out, "Config file: "+cfgPath+"\n")
	assert.Contains(t, out, "Workbook:    "+filepath.Join(dir, "tracking.xlsx"))
	assert.Contains(t, out, `Sheet:       "NEW_FORM "`)
	assert.Contains(t, out, "Defects:     "+filepath.Join(dir, "out", "defects.json"))
	assert.NoDirExists(t, filepath.Join(dir, "out"), "version writes nothing")
}

func TestVersion_MissingConfigShowsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Config file: config.yaml (not found, using defaults)")
	assert.Contains(t, out, "Workbook:    "+config.DefaultWorkbookPath)
	assert.Contains(t, out, "Suppliers:   "+config.DefaultSuppliersOutput)
}
