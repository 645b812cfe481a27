// =============================================================================
// QMS Defect Extractor - Row Mapper
// =============================================================================
//
// This module turns worksheet rows into DefectRecords.
//
// MAPPING PIPELINE (per row, in document order):
//   1. Normalize the key column; rows without a key are skipped entirely
//   2. Apply every FieldMapping of the column table to build the record
//   3. Add the normalized supplier, when present, to the distinct name set
//
// The mapper is single-use per run: it accumulates records and supplier
// names and is not safe for concurrent use.
//
// =============================================================================

package mapping

import (
	"log/slog"

	"github.com/DekoMao/qms-mao-brasil/internal/normalize"
	"github.com/DekoMao/qms-mao-brasil/internal/supplier"
	"github.com/DekoMao/qms-mao-brasil/internal/types"
)

// Row is a source of cells addressed by header name.
type Row interface {
	Get(column string) types.Cell
}

// Result is the outcome of mapping a whole sheet.
type Result struct {
	// Records are the mapped defects in row order.
	Records []DefectRecord

	// Suppliers are the distinct supplier names seen on Records.
	Suppliers *supplier.NameSet

	// RowsRead counts every data row offered to the mapper.
	RowsRead int

	// RowsSkipped counts rows without a key.
	RowsSkipped int
}

// Mapper builds DefectRecords from rows.
type Mapper struct {
	keyColumn string
	columns   []FieldMapping
	logger    *slog.Logger

	result Result
}

// NewMapper returns a mapper keyed on keyColumn using the default column table.
func NewMapper(keyColumn string, logger *slog.Logger) *Mapper {
	if keyColumn == "" {
		keyColumn = KeyColumn
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Mapper{
		keyColumn: keyColumn,
		columns:   Columns(),
		logger:    logger,
		result:    Result{Suppliers: supplier.NewNameSet()},
	}
}

// MapRow builds the record for one row. It reports false, with no other
// effect, when the key column is blank.
func (m *Mapper) MapRow(row Row) (DefectRecord, bool) {
	doc, ok := normalize.String(row.Get(m.keyColumn)).Get()
	if !ok {
		return DefectRecord{}, false
	}

	rec := DefectRecord{DocNumber: doc}
	for _, col := range m.columns {
		col.Apply(&rec, row.Get(col.Header))
	}
	return rec, true
}

// Add maps a row and accumulates the outcome. number is the physical row
// number, used for logging only.
func (m *Mapper) Add(number int, row Row) {
	m.result.RowsRead++

	rec, ok := m.MapRow(row)
	if !ok {
		m.result.RowsSkipped++
		m.logger.Debug("skipping row without key", "row", number, "column", m.keyColumn)
		return
	}

	m.result.Records = append(m.result.Records, rec)
	if name, ok := rec.Supplier.Get(); ok {
		m.result.Suppliers.Add(name)
	}
}

// Result returns everything accumulated so far.
func (m *Mapper) Result() *Result {
	return &m.result
}
