// =============================================================================
// QMS Defect Extractor - Configuration Module
// =============================================================================
//
// This module is responsible for loading the run configuration. Every path
// and constant the extraction uses is a field here, so the pipeline receives
// its inputs explicitly instead of reading package-level constants.
//
// CONFIGURATION SOURCES (later wins):
//   1. Built-in defaults (the weekly tracking workbook and scripts/ outputs)
//   2. The YAML config file (config.yaml), when present
//   3. QMS_* environment variables (e.g. QMS_WORKBOOK_PATH)
//   4. Command-line flags
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/DekoMao/qms-mao-brasil/internal/xlsxreader"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "QMS"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the settings of one extraction run.
type Config struct {
	// =========================================================================
	// INPUT SETTINGS
	// =========================================================================

	// WorkbookPath is the defect-tracking workbook to read.
	WorkbookPath string `yaml:"workbook_path" split_words:"true" validate:"required"`

	// SheetName is the worksheet to read, matched exactly.
	// Default: "NEW_FORM " (the trailing space is part of the name)
	SheetName string `yaml:"sheet_name" split_words:"true" validate:"required"`

	// HeaderRow is the 0-based physical row with the column names.
	// Default: 8 (the 9th row)
	HeaderRow *int `yaml:"header_row" split_words:"true" validate:"required,gte=0"`

	// KeyColumn identifies a defect; rows where it is blank are skipped.
	// Default: "Doc. Nº"
	KeyColumn string `yaml:"key_column" split_words:"true" validate:"required"`

	// NullMarkers are cell texts read as blank.
	// Default: xlsxreader.DefaultNullMarkers
	NullMarkers []string `yaml:"null_markers" split_words:"true"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// DefectsOutput is the defects JSON path.
	DefectsOutput string `yaml:"defects_output" split_words:"true" validate:"required"`

	// SuppliersOutput is the suppliers JSON path.
	SuppliersOutput string `yaml:"suppliers_output" split_words:"true" validate:"required"`

	// =========================================================================
	// SUPPLIER SETTINGS
	// =========================================================================

	// SupplierCodePrefix precedes the supplier rank.
	// Default: "SUP"
	SupplierCodePrefix string `yaml:"supplier_code_prefix" split_words:"true"`

	// SupplierCodeWidth is the zero-padded rank width.
	// Default: 3
	SupplierCodeWidth int `yaml:"supplier_code_width" split_words:"true" validate:"min=1"`

	// AccessCodeLength is the number of characters per access code.
	// Default: 8
	AccessCodeLength int `yaml:"access_code_length" split_words:"true" validate:"min=1"`

	// RandomSeed seeds access code generation. 0 draws a fresh seed per run.
	RandomSeed uint64 `yaml:"random_seed" split_words:"true"`

	// =========================================================================
	// SUMMARY SETTINGS
	// =========================================================================

	// SampleDefects is the number of defects listed in the summary.
	// Default: 5 (0 or unset selects the default)
	SampleDefects int `yaml:"sample_defects" split_words:"true" validate:"min=1"`

	// SampleSuppliers is the number of suppliers listed in the summary.
	// Default: 10 (0 or unset selects the default)
	SampleSuppliers int `yaml:"sample_suppliers" split_words:"true" validate:"min=1"`

	// PreviewLength limits the symptom preview in the summary.
	// Default: 50 (0 or unset selects the default)
	PreviewLength int `yaml:"preview_length" split_words:"true" validate:"min=1"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls diagnostic verbosity.
	// Valid values: "debug", "info", "warn", "error"
	LogLevel string `yaml:"log_level" split_words:"true" validate:"oneof=debug info warn warning error"`

	// LogFormat selects the diagnostic log encoding.
	// Valid values: "text", "json"
	LogFormat string `yaml:"log_format" split_words:"true" validate:"oneof=text json"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Built-in defaults.
const (
	DefaultWorkbookPath    = "./Weekly_BrazilMAOQualityDefectTrackingList_Local_ver04.xlsx"
	DefaultSheetName       = "NEW_FORM "
	DefaultHeaderRow       = 8
	DefaultKeyColumn       = "Doc. Nº"
	DefaultDefectsOutput   = "./scripts/defects_data.json"
	DefaultSuppliersOutput = "./scripts/suppliers_data.json"
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults sets default values for any unset configuration options.
func ApplyDefaults(cfg *Config) {
	if cfg.WorkbookPath == "" {
		cfg.WorkbookPath = DefaultWorkbookPath
	}
	if cfg.SheetName == "" {
		cfg.SheetName = DefaultSheetName
	}
	if cfg.HeaderRow == nil {
		row := DefaultHeaderRow
		cfg.HeaderRow = &row
	}
	if cfg.KeyColumn == "" {
		cfg.KeyColumn = DefaultKeyColumn
	}
	if cfg.NullMarkers == nil {
		cfg.NullMarkers = append([]string(nil), xlsxreader.DefaultNullMarkers...)
	}
	if cfg.DefectsOutput == "" {
		cfg.DefectsOutput = DefaultDefectsOutput
	}
	if cfg.SuppliersOutput == "" {
		cfg.SuppliersOutput = DefaultSuppliersOutput
	}
	if cfg.SupplierCodePrefix == "" {
		cfg.SupplierCodePrefix = "SUP"
	}
	if cfg.SupplierCodeWidth == 0 {
		cfg.SupplierCodeWidth = 3
	}
	if cfg.AccessCodeLength == 0 {
		cfg.AccessCodeLength = 8
	}
	if cfg.SampleDefects == 0 {
		cfg.SampleDefects = 5
	}
	if cfg.SampleSuppliers == 0 {
		cfg.SampleSuppliers = 10
	}
	if cfg.PreviewLength == 0 {
		cfg.PreviewLength = 50
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load reads the configuration file at path, applies environment overrides
// and defaults, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return finish(&cfg)
}

// FromEnv returns the defaults with environment overrides applied. It is
// used when no config file is present.
func FromEnv() (*Config, error) {
	return finish(&Config{})
}

func finish(cfg *Config) (*Config, error) {
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	ApplyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any QMS_* environment variables that are set.
// Unset variables leave the field untouched.
func ApplyEnv(cfg *Config) error {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return fmt.Errorf("failed to read environment overrides: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

var validate = newValidator()

// newValidator reports fields by their YAML key.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks the configuration for values the extraction cannot run with.
func (c *Config) Validate() error {
	var problems []string

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		for _, fe := range fieldErrs {
			problems = append(problems, describe(fe))
		}
	}

	if strings.TrimSpace(c.KeyColumn) == "" && c.KeyColumn != "" {
		problems = append(problems, "key_column must not be blank")
	}
	if c.DefectsOutput != "" && filepath.Clean(c.DefectsOutput) == filepath.Clean(c.SuppliersOutput) {
		problems = append(problems, "defects_output and suppliers_output must differ")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s %q is not one of %s", fe.Field(), fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

// ReaderOptions returns the worksheet reader settings.
func (c *Config) ReaderOptions() xlsxreader.Options {
	row := DefaultHeaderRow
	if c.HeaderRow != nil {
		row = *c.HeaderRow
	}
	return xlsxreader.Options{
		SheetName:   c.SheetName,
		HeaderRow:   row,
		NullMarkers: c.NullMarkers,
	}
}
