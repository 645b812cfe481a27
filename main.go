// =============================================================================
// QMS Defect Extractor - Main Entry Point
// =============================================================================
//
// This is the main entry point for the QMS Defect Extractor CLI. It reads the
// weekly Brazil MAO quality defect-tracking workbook and exports defects and
// suppliers as JSON for the QMS import.
//
// USAGE:
//   qms-extract              - Run the extraction with config.yaml or defaults
//   qms-extract columns      - Check the sheet header against the column mapping
//   qms-extract version      - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Extraction logic (not for external import)
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/DekoMao/qms-mao-brasil/cmd"
)

// main delegates to the Cobra CLI.
func main() {
	cmd.Execute()
}
