// =============================================================================
// QMS Defect Extractor - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Running the root
// command with no subcommand performs the full extraction, so the tool keeps
// working with no arguments at all.
//
// COBRA CLI STRUCTURE:
//   newRootCmd (qms-extract)          runs the extraction
//   ├── newExtractCmd (qms-extract extract)
//   ├── newColumnsCmd (qms-extract columns)
//   └── newVersionCmd (qms-extract version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (e.g., --config, --verbose)
//   2. Loading config.yaml, or the defaults when it is absent
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/DekoMao/qms-mao-brasil/internal/config"
	"github.com/DekoMao/qms-mao-brasil/internal/logging"
	"github.com/DekoMao/qms-mao-brasil/pkg/utils"
)

// =============================================================================
// COMMAND OPTIONS
// =============================================================================

// options holds the flag values of one command tree. Each tree gets its own
// so flags set on one run never leak into the next.
type options struct {
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// verbose forces debug logging when set to true.
	verbose bool

	// workbookPath overrides workbook_path.
	workbookPath string

	// sheetName overrides sheet_name.
	sheetName string

	// defectsOut overrides defects_output.
	defectsOut string

	// suppliersOut overrides suppliers_output.
	suppliersOut string

	// seed overrides random_seed.
	seed uint64
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// newRootCmd builds the command tree. The root command runs the extraction
// when called without any subcommands.
func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "qms-extract",
		Short: "QMS Defect Extractor - Export the defect-tracking workbook to JSON",
		Long: `QMS Defect Extractor reads the weekly Brazil MAO quality defect-tracking
workbook and exports two JSON files for the QMS import:

  - defects_data.json   : one record per defect row, keyed on "Doc. Nº"
  - suppliers_data.json : every distinct supplier with a code and access code

Example Usage:
  qms-extract                              # Extract using config.yaml or defaults
  qms-extract --workbook ./tracking.xlsx   # Read a different workbook
  qms-extract --seed 42                    # Reproducible access codes
  qms-extract columns                      # Check the sheet header first`,

		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: opts.runExtract,
	}

	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&opts.cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&opts.verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)

	rootCmd.PersistentFlags().StringVar(
		&opts.workbookPath,
		"workbook",
		"",
		"Workbook to read (overrides workbook_path)",
	)

	rootCmd.PersistentFlags().StringVar(
		&opts.sheetName,
		"sheet",
		"",
		"Worksheet name, matched exactly (overrides sheet_name)",
	)

	opts.addExtractFlags(rootCmd)

	rootCmd.AddCommand(
		newExtractCmd(opts),
		newColumnsCmd(opts),
		newVersionCmd(opts),
	)
	return rootCmd
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// loadConfig resolves the run configuration for cmd.
//
// RESOLUTION ORDER:
//  1. --config given explicitly: the file must exist
//  2. otherwise config.yaml is used when present, the defaults when not
//  3. QMS_* environment variables override the file
//  4. flags that were set on the command line override file values
func (o *options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config

	switch {
	case cmd.Flags().Changed("config"):
		loaded, err := config.Load(o.cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	case utils.FileExists(o.cfgFile):
		loaded, err := config.Load(o.cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	default:
		loaded, err := config.FromEnv()
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("workbook") {
		cfg.WorkbookPath = o.workbookPath
	}
	if flags.Changed("sheet") {
		cfg.SheetName = o.sheetName
	}
	if flags.Changed("defects-out") {
		cfg.DefectsOutput = o.defectsOut
	}
	if flags.Changed("suppliers-out") {
		cfg.SuppliersOutput = o.suppliersOut
	}
	if flags.Changed("seed") {
		cfg.RandomSeed = o.seed
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging configures slog on the command's error stream.
func setupLogging(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return logging.Setup(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
}
