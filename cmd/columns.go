// =============================================================================
// QMS Defect Extractor - Columns Command
// =============================================================================
//
// This file defines the 'columns' command, which checks the configured sheet
// header against the column mapping without writing any output. Use it after
// the workbook layout changes.
//
// COMMAND USAGE:
//   qms-extract columns [--workbook path] [--sheet name]
//
// OUTPUT:
//   Every header found on the sheet, then every mapped column marked ✓ when
//   found and ✗ when missing.
//
// =============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/DekoMao/qms-mao-brasil/internal/extract"
)

// newColumnsCmd builds the 'columns' command.
func newColumnsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "Check the sheet header against the column mapping",
		Long: `Open the configured workbook and sheet, list every header found on the
header row, and show which mapped columns are present. Nothing is written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			setupLogging(cmd, cfg)

			report, err := extract.InspectColumns(cfg)
			if err != nil {
				return err
			}
			report.Print(cmd.OutOrStdout(), cfg.KeyColumn)
			return nil
		},
	}
}
