package report

import (
	"fmt"
	"io"

	"github.com/DekoMao/qms-mao-brasil/internal/mapping"
	"github.com/DekoMao/qms-mao-brasil/internal/supplier"
)

// placeholder stands in for absent values in the console summary.
const placeholder = "N/A"

// PrintSummary writes the human-readable run summary: totals, a sample of
// defects, a sample of suppliers with their access codes, and how many
// suppliers were left out of the sample.
func PrintSummary(w io.Writer, defects []mapping.DefectRecord, suppliers []supplier.Record, opts Options) {
	fmt.Fprintf(w, "Total defects extracted: %d\n", len(defects))
	fmt.Fprintf(w, "Total unique suppliers:  %d\n", len(suppliers))

	fmt.Fprintf(w, "\n--- Sample of the first %d defects ---\n", opts.SampleDefects)
	for _, d := range head(defects, opts.SampleDefects) {
		fmt.Fprintf(w, "  %s: %s - %s... Status: %s\n",
			d.DocNumber,
			d.Supplier.OrElse(placeholder),
			Truncate(d.Symptom.OrElse(placeholder), opts.PreviewLength),
			d.Status.OrElse(placeholder),
		)
	}

	fmt.Fprintln(w, "\n--- Suppliers found ---")
	for _, s := range head(suppliers, opts.SampleSuppliers) {
		fmt.Fprintf(w, "  %s: %s (access code: %s)\n", s.Code, s.Name, s.AccessCode)
	}
	if rest := len(suppliers) - opts.SampleSuppliers; opts.SampleSuppliers >= 0 && rest > 0 {
		fmt.Fprintf(w, "  ... and %d more suppliers\n", rest)
	}
}

// Truncate returns at most n characters of s.
func Truncate(s string, n int) string {
	if n < 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func head[T any](items []T, n int) []T {
	if n < 0 || n >= len(items) {
		return items
	}
	return items[:n]
}
