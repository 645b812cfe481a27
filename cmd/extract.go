// =============================================================================
// QMS Defect Extractor - Extract Command
// =============================================================================
//
// This file defines the 'extract' command, which is also what the root command
// runs. It loads the configuration and runs the extraction pipeline.
//
// COMMAND USAGE:
//   qms-extract [extract] [flags]
//
// FLAGS:
//   --defects-out   : Defects JSON path (overrides defects_output)
//   --suppliers-out : Suppliers JSON path (overrides suppliers_output)
//   --seed          : Access code seed; 0 draws a fresh seed
//
// =============================================================================

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/DekoMao/qms-mao-brasil/internal/extract"
)

// =============================================================================
// EXTRACT COMMAND DEFINITION
// =============================================================================

// newExtractCmd builds the 'extract' command.
func newExtractCmd(opts *options) *cobra.Command {
	c := &cobra.Command{
		Use:   "extract",
		Short: "Extract defects and suppliers to JSON (default command)",
		Long: `Read the configured worksheet, map every row with a "Doc. Nº" into a
defect record, assign supplier codes and access codes, and write both JSON
files. A summary is printed when done.`,
		RunE: opts.runExtract,
	}
	opts.addExtractFlags(c)
	return c
}

// runExtract is the main function for the extraction.
func (o *options) runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := setupLogging(cmd, cfg)

	result, err := extract.New(cfg, logger, cmd.OutOrStdout()).Run()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nCompleted in %v\n", result.Stats.Elapsed.Round(time.Millisecond))
	return nil
}

// addExtractFlags registers the output flags on c.
func (o *options) addExtractFlags(c *cobra.Command) {
	c.Flags().StringVar(&o.defectsOut, "defects-out", "", "Defects JSON path (overrides defects_output)")
	c.Flags().StringVar(&o.suppliersOut, "suppliers-out", "", "Suppliers JSON path (overrides suppliers_output)")
	c.Flags().Uint64Var(&o.seed, "seed", 0, "Access code seed; 0 draws a fresh seed per run")
}
