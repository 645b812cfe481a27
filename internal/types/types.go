// =============================================================================
// QMS Defect Extractor - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - xlsxreader (produces Cells)
//   - normalize  (consumes Cells, produces Optionals)
//   - mapping    (stores Optionals on records)
//
// =============================================================================

package types

import (
	"bytes"
	"encoding/json"
	"time"
)

// =============================================================================
// CELL TYPES
// =============================================================================

// CellKind identifies what a worksheet cell holds once it has been read.
type CellKind int

const (
	// CellEmpty is a blank cell, an error cell or a null-like marker.
	CellEmpty CellKind = iota

	// CellText is a string cell.
	CellText

	// CellNumber is a numeric cell without a date number format.
	CellNumber

	// CellDate is a numeric cell formatted as a date, or an ISO date cell.
	CellDate

	// CellBool is a boolean cell.
	CellBool

	// CellTime is a numeric cell formatted as a time of day only.
	CellTime
)

// String returns the kind name used in log output.
func (k CellKind) String() string {
	switch k {
	case CellText:
		return "text"
	case CellNumber:
		return "number"
	case CellDate:
		return "date"
	case CellBool:
		return "bool"
	case CellTime:
		return "time"
	default:
		return "empty"
	}
}

// Cell is a single typed worksheet value.
// Only the member matching Kind is meaningful.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Time   time.Time
	Bool   bool
}

// EmptyCell returns the blank cell.
func EmptyCell() Cell { return Cell{} }

// TextCell returns a text cell.
func TextCell(s string) Cell { return Cell{Kind: CellText, Text: s} }

// NumberCell returns a numeric cell.
func NumberCell(n float64) Cell { return Cell{Kind: CellNumber, Number: n} }

// DateCell returns a date cell.
func DateCell(t time.Time) Cell { return Cell{Kind: CellDate, Time: t} }

// BoolCell returns a boolean cell.
func BoolCell(b bool) Cell { return Cell{Kind: CellBool, Bool: b} }

// TimeCell returns a time-of-day cell. Only the clock part of t is used.
func TimeCell(t time.Time) Cell { return Cell{Kind: CellTime, Time: t} }

// IsEmpty reports whether the cell carries no value.
func (c Cell) IsEmpty() bool { return c.Kind == CellEmpty }

// =============================================================================
// NORMALIZATION OUTCOME
// =============================================================================

// Optional is the outcome of normalizing a cell: either a value or absent.
// Absent values serialize to JSON null.
type Optional[T any] struct {
	value T
	valid bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, valid: true}
}

// None returns an absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.valid
}

// Valid reports whether a value is present.
func (o Optional[T]) Valid() bool {
	return o.valid
}

// OrElse returns the value, or def when absent.
func (o Optional[T]) OrElse(def T) T {
	if !o.valid {
		return def
	}
	return o.value
}

// MarshalJSON implements json.Marshaler.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.valid {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(o.value); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
