package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultWorkbookPath, cfg.WorkbookPath)
	assert.Equal(t, "NEW_FORM ", cfg.SheetName)
	require.NotNil(t, cfg.HeaderRow)
	assert.Equal(t, 8, *cfg.HeaderRow)
	assert.Equal(t, "Doc. Nº", cfg.KeyColumn)
	assert.Equal(t, "SUP", cfg.SupplierCodePrefix)
	assert.Equal(t, 3, cfg.SupplierCodeWidth)
	assert.Equal(t, 8, cfg.AccessCodeLength)
	assert.Equal(t, uint64(0), cfg.RandomSeed)
	assert.Equal(t, 5, cfg.SampleDefects)
	assert.Equal(t, 10, cfg.SampleSuppliers)
	assert.Equal(t, 50, cfg.PreviewLength)
	assert.Contains(t, cfg.NullMarkers, "#N/A")
	require.NoError(t, cfg.Validate())
}

func TestLoad_OverridesAndDefaults(t *testing.T) {
	path := writeConfig(t, `
workbook_path: /data/tracking.xlsx
sheet_name: "NEW_FORM "
header_row: 0
defects_output: out/defects.json
suppliers_output: out/suppliers.json
random_seed: 1234
null_markers: ["-"]
log_format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/tracking.xlsx", cfg.WorkbookPath)
	assert.Equal(t, "NEW_FORM ", cfg.SheetName, "trailing space survives YAML quoting")
	require.NotNil(t, cfg.HeaderRow)
	assert.Equal(t, 0, *cfg.HeaderRow, "explicit zero is kept")
	assert.Equal(t, uint64(1234), cfg.RandomSeed)
	assert.Equal(t, []string{"-"}, cfg.NullMarkers)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "Doc. Nº", cfg.KeyColumn)

	opts := cfg.ReaderOptions()
	assert.Equal(t, 0, opts.HeaderRow)
	assert.Equal(t, "NEW_FORM ", opts.SheetName)
	assert.Equal(t, []string{"-"}, opts.NullMarkers)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "header_row: [not an int"))
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"negative header row", "header_row: -1", "header_row"},
		{"same outputs", "defects_output: out/a.json\nsuppliers_output: ./out/a.json", "must differ"},
		{"negative access code length", "access_code_length: -2", "access_code_length"},
		{"bad log level", "log_level: loud", "log_level"},
		{"bad log format", "log_format: xml", "log_format"},
		{"negative sample defects", "sample_defects: -1", "sample_defects must be at least 1"},
		{"negative sample suppliers", "sample_suppliers: -3", "sample_suppliers must be at least 1"},
		{"negative preview length", "preview_length: -10", "preview_length must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_ZeroSummarySizesSelectDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "sample_defects: 0\nsample_suppliers: 0\npreview_length: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.SampleDefects)
	assert.Equal(t, 10, cfg.SampleSuppliers)
	assert.Equal(t, 50, cfg.PreviewLength)
}

func TestValidate_SummarySizesMustBePositive(t *testing.T) {
	cfg := Default()
	cfg.SampleDefects = 0

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "sample_defects must be at least 1")
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "workbook_path: from-file.xlsx\nsample_defects: 3\n")
	t.Setenv("QMS_WORKBOOK_PATH", "from-env.xlsx")
	t.Setenv("QMS_NULL_MARKERS", "-,n.a.")
	t.Setenv("QMS_RANDOM_SEED", "99")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.xlsx", cfg.WorkbookPath)
	assert.Equal(t, []string{"-", "n.a."}, cfg.NullMarkers)
	assert.Equal(t, uint64(99), cfg.RandomSeed)
	assert.Equal(t, 3, cfg.SampleDefects)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("QMS_HEADER_ROW", "2")
	t.Setenv("QMS_LOG_LEVEL", "DEBUG")

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.NotNil(t, cfg.HeaderRow)
	assert.Equal(t, 2, *cfg.HeaderRow)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultDefectsOutput, cfg.DefectsOutput)
}

func TestFromEnv_BadValue(t *testing.T) {
	t.Setenv("QMS_ACCESS_CODE_LENGTH", "eight")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "environment")
}

func TestValidate_ReportsYAMLNames(t *testing.T) {
	cfg := Default()
	cfg.WorkbookPath = ""
	cfg.SupplierCodeWidth = 0

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "workbook_path is required")
	assert.Contains(t, err.Error(), "supplier_code_width must be at least 1")
}
