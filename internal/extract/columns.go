package extract

import (
	"fmt"
	"io"

	"github.com/DekoMao/qms-mao-brasil/internal/config"
	"github.com/DekoMao/qms-mao-brasil/internal/mapping"
	"github.com/DekoMao/qms-mao-brasil/internal/xlsxreader"
)

// ColumnStatus pairs a mapped source column with its availability.
type ColumnStatus struct {
	Header string
	Field  string
	Kind   mapping.FieldKind
	Found  bool
}

// ColumnReport describes how the configured sheet lines up with the
// mapping table.
type ColumnReport struct {
	Sheet    string
	Headers  []string
	KeyFound bool
	Mapped   []ColumnStatus
}

// Missing returns the mapped headers absent from the sheet.
func (r *ColumnReport) Missing() []string {
	var missing []string
	for _, c := range r.Mapped {
		if !c.Found {
			missing = append(missing, c.Header)
		}
	}
	return missing
}

// InspectColumns reads the configured sheet header and checks every mapped
// column against it. No artifact is written.
func InspectColumns(cfg *config.Config) (*ColumnReport, error) {
	table, err := xlsxreader.Open(cfg.WorkbookPath, cfg.ReaderOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}

	rep := &ColumnReport{
		Sheet:    table.Sheet,
		Headers:  table.Headers,
		KeyFound: table.HasColumn(cfg.KeyColumn),
	}
	for _, col := range mapping.Columns() {
		rep.Mapped = append(rep.Mapped, ColumnStatus{
			Header: col.Header,
			Field:  col.Field,
			Kind:   col.Kind,
			Found:  table.HasColumn(col.Header),
		})
	}
	return rep, nil
}

// Print writes the report in the console format of the columns command.
func (r *ColumnReport) Print(w io.Writer, keyColumn string) {
	fmt.Fprintf(w, "Sheet %q has %d columns:\n", r.Sheet, len(r.Headers))
	for i, h := range r.Headers {
		fmt.Fprintf(w, "  %2d. %q\n", i+1, h)
	}

	mark := func(ok bool) string {
		if ok {
			return "✓"
		}
		return "✗"
	}

	fmt.Fprintln(w, "\nMapped columns:")
	fmt.Fprintf(w, "  %s %q -> docNumber (key)\n", mark(r.KeyFound), keyColumn)
	for _, c := range r.Mapped {
		fmt.Fprintf(w, "  %s %q -> %s (%s)\n", mark(c.Found), c.Header, c.Field, c.Kind)
	}

	if missing := r.Missing(); len(missing) > 0 {
		fmt.Fprintf(w, "\n%d mapped columns missing; their fields will be null\n", len(missing))
	}
}
