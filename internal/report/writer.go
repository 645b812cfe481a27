// =============================================================================
// QMS Defect Extractor - Report Writer
// =============================================================================
//
// This module serializes the extraction results and prints the console
// summary.
//
// OUTPUT ARTIFACTS:
//   - defects JSON   : array of DefectRecord, in row order
//   - suppliers JSON : array of supplier Record, in code order
//
// Both are UTF-8, indented with two spaces, with non-ASCII and HTML
// characters written as-is. Each file is opened, written and closed on its
// own; a failure while writing one leaves the other untouched.
//
// =============================================================================

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/DekoMao/qms-mao-brasil/internal/mapping"
	"github.com/DekoMao/qms-mao-brasil/internal/supplier"
	"github.com/DekoMao/qms-mao-brasil/pkg/utils"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options controls serialization and the console summary.
type Options struct {
	// Indent is the JSON indentation unit.
	// Default: "  " (two spaces)
	Indent string

	// SampleDefects is how many defects the summary lists.
	// Default: 5
	SampleDefects int

	// SampleSuppliers is how many suppliers the summary lists.
	// Default: 10
	SampleSuppliers int

	// PreviewLength is the character limit for the symptom preview.
	// Default: 50
	PreviewLength int
}

// DefaultOptions returns the default report options.
func DefaultOptions() Options {
	return Options{
		Indent:          "  ",
		SampleDefects:   5,
		SampleSuppliers: 10,
		PreviewLength:   50,
	}
}

// =============================================================================
// JSON ARTIFACTS
// =============================================================================

// Encode writes v as indented JSON without HTML escaping.
func Encode(w io.Writer, v any, indent string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	return enc.Encode(v)
}

// WriteJSON writes v to path, replacing any previous content.
func WriteJSON(path string, v any, indent string) error {
	return utils.WithFile(path, func(f *os.File) error {
		if err := Encode(f, v, indent); err != nil {
			return fmt.Errorf("failed to encode %s: %w", path, err)
		}
		return nil
	})
}

// WriteDefects writes the defect artifact. A nil slice is written as [].
func WriteDefects(path string, defects []mapping.DefectRecord, opts Options) error {
	if defects == nil {
		defects = []mapping.DefectRecord{}
	}
	return WriteJSON(path, defects, opts.Indent)
}

// WriteSuppliers writes the supplier artifact. A nil slice is written as [].
func WriteSuppliers(path string, suppliers []supplier.Record, opts Options) error {
	if suppliers == nil {
		suppliers = []supplier.Record{}
	}
	return WriteJSON(path, suppliers, opts.Indent)
}
