// =============================================================================
// QMS Defect Extractor - Version Command
// =============================================================================
//
// This file defines the 'version' command, which displays the build version
// and where a run with no flags reads from and writes to.
//
// COMMAND USAGE:
//   qms-extract version [--config path]
//
// OUTPUT:
//   QMS Defect Extractor 1.0.0 (built unknown, go1.24.0)
//   Config file: config.yaml (not found, using defaults)
//   Workbook:    ./Weekly_BrazilMAOQualityDefectTrackingList_Local_ver04.xlsx
//   Sheet:       "NEW_FORM "
//   Defects:     ./scripts/defects_data.json
//   Suppliers:   ./scripts/suppliers_data.json
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/DekoMao/qms-mao-brasil/internal/config"
	"github.com/DekoMao/qms-mao-brasil/pkg/utils"
)

// These variables are set at build time using ldflags:
//   go build -ldflags "-X 'github.com/DekoMao/qms-mao-brasil/cmd.Version=1.0.0'"
var (
	// Version is the application version.
	Version = "1.0.0"

	// BuildDate is the date the application was built.
	BuildDate = "unknown"
)

// newVersionCmd builds the 'version' command.
func newVersionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the version and the effective input and output paths",
		Long: `Display the application version, then the config file in use and the
workbook, sheet and JSON outputs an extraction would use. A config file that
fails to load is reported without failing the command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "QMS Defect Extractor %s (built %s, %s)\n", Version, BuildDate, runtime.Version())

			cfg, source := opts.effectiveConfig(cmd)
			fmt.Fprintf(out, "Config file: %s\n", source)
			fmt.Fprintf(out, "Workbook:    %s\n", cfg.WorkbookPath)
			fmt.Fprintf(out, "Sheet:       %q\n", cfg.SheetName)
			fmt.Fprintf(out, "Defects:     %s\n", cfg.DefectsOutput)
			fmt.Fprintf(out, "Suppliers:   %s\n", cfg.SuppliersOutput)
			return nil
		},
	}
}

// effectiveConfig resolves the configuration the way an extraction would,
// falling back to the built-in defaults when it cannot be loaded.
func (o *options) effectiveConfig(cmd *cobra.Command) (*config.Config, string) {
	source := o.cfgFile
	if !utils.FileExists(o.cfgFile) {
		source += " (not found, using defaults)"
	}

	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return config.Default(), fmt.Sprintf("%s (%v)", o.cfgFile, err)
	}
	return cfg, source
}
