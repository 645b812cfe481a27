// =============================================================================
// QMS Defect Extractor - XLSX Worksheet Reader
// =============================================================================
//
// This module loads one worksheet of the defect-tracking workbook into a
// table of typed cells. It is responsible for:
//   - Opening the workbook and selecting the sheet by exact name
//   - Treating a fixed physical row as the header row
//   - Reading every row below the header in physical order
//   - Typing each cell (text, number, date, bool, empty)
//
// SHEET STRUCTURE (Expected):
//
//   | Row 1..8 | free-form title block, ignored                       |
//   | Row 9    | header row: "Doc. Nº", "Open date", "Supplier", ...  |
//   | Row 10+  | one defect per row                                   |
//
// CELL TYPING:
//   Raw values are read without number formatting applied. Numeric cells
//   whose number format is a date format become date cells, converted from
//   the Excel serial number. Error cells and null-like markers become empty.
//
// =============================================================================

package xlsxreader

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/DekoMao/qms-mao-brasil/internal/types"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrSheetNotFound is returned when the configured worksheet does not exist.
	ErrSheetNotFound = errors.New("worksheet not found")

	// ErrHeaderRowMissing is returned when the sheet ends before the header row.
	ErrHeaderRowMissing = errors.New("header row missing")

	// ErrColumnNotFound is returned when a required column is not in the header.
	ErrColumnNotFound = errors.New("column not found")
)

// =============================================================================
// OPTIONS
// =============================================================================

// DefaultNullMarkers are text values treated as blank cells.
var DefaultNullMarkers = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None", "n/a",
	"nan", "null",
}

// Options controls how a worksheet is read.
type Options struct {
	// SheetName is matched exactly, including surrounding spaces.
	SheetName string

	// HeaderRow is the 0-based physical row holding column names.
	HeaderRow int

	// NullMarkers are trimmed text values read as empty cells.
	// A nil slice means DefaultNullMarkers.
	NullMarkers []string
}

// =============================================================================
// TABLE STRUCTURE
// =============================================================================

// Table is a worksheet read below its header row.
type Table struct {
	// SourceFile is the workbook path, empty when read from an open file.
	SourceFile string

	// Sheet is the worksheet name.
	Sheet string

	// Headers are the column names in column order, made unique.
	Headers []string

	// Rows are the data rows in physical order.
	Rows []Row

	index map[string]int
}

// Row is one data row.
type Row struct {
	// Number is the 1-based physical row number in the sheet.
	Number int

	cells []types.Cell
	index map[string]int
}

// HasColumn reports whether the header row contains name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// MissingColumns returns the names that are not in the header row, in order.
func (t *Table) MissingColumns(names []string) []string {
	var missing []string
	for _, name := range names {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Get returns the cell under the named column. Unknown columns and cells past
// the end of the row are empty.
func (r Row) Get(column string) types.Cell {
	i, ok := r.index[column]
	if !ok || i >= len(r.cells) {
		return types.EmptyCell()
	}
	return r.cells[i]
}

// =============================================================================
// READER FUNCTIONS
// =============================================================================

// Open reads the configured worksheet of the workbook at path.
func Open(path string, opts Options) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	table, err := Read(f, opts)
	if err != nil {
		return nil, err
	}
	table.SourceFile = path
	return table, nil
}

// Read loads the configured worksheet from an open workbook.
func Read(f *excelize.File, opts Options) (*Table, error) {
	if idx, err := f.GetSheetIndex(opts.SheetName); err != nil || idx == -1 {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrSheetNotFound, opts.SheetName, quoteAll(f.GetSheetList()))
	}

	rows, err := f.GetRows(opts.SheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if opts.HeaderRow < 0 || opts.HeaderRow >= len(rows) {
		return nil, fmt.Errorf("%w: sheet %q has %d rows, header expected at row %d",
			ErrHeaderRowMissing, opts.SheetName, len(rows), opts.HeaderRow+1)
	}

	headers := uniqueHeaders(rows[opts.HeaderRow])
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[h] = i
	}

	typer, err := newCellTyper(f, opts)
	if err != nil {
		return nil, err
	}

	table := &Table{
		Sheet:   opts.SheetName,
		Headers: headers,
		Rows:    make([]Row, 0, len(rows)-opts.HeaderRow-1),
		index:   index,
	}

	for i := opts.HeaderRow + 1; i < len(rows); i++ {
		raw := rows[i]
		width := len(raw)
		if width > len(headers) {
			width = len(headers)
		}

		cells := make([]types.Cell, width)
		for col := 0; col < width; col++ {
			cell, err := typer.cell(col, i, raw[col])
			if err != nil {
				return nil, fmt.Errorf("error reading row %d: %w", i+1, err)
			}
			cells[col] = cell
		}

		table.Rows = append(table.Rows, Row{Number: i + 1, cells: cells, index: index})
	}

	return table, nil
}

// Require returns ErrColumnNotFound when any of names is not in the header.
func (t *Table) Require(names ...string) error {
	if missing := t.MissingColumns(names); len(missing) > 0 {
		return fmt.Errorf("%w in sheet %q: %s", ErrColumnNotFound, t.Sheet, quoteAll(missing))
	}
	return nil
}

// =============================================================================
// CELL TYPING
// =============================================================================

// cellTyper resolves cell types and date number formats for one sheet.
type cellTyper struct {
	f         *excelize.File
	sheet     string
	date1904  bool
	nulls     map[string]struct{}
	numFmts   map[int]numFmtClass
}

func newCellTyper(f *excelize.File, opts Options) (*cellTyper, error) {
	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook properties: %w", err)
	}

	markers := opts.NullMarkers
	if markers == nil {
		markers = DefaultNullMarkers
	}
	nulls := make(map[string]struct{}, len(markers))
	for _, m := range markers {
		nulls[strings.TrimSpace(m)] = struct{}{}
	}

	return &cellTyper{
		f:         f,
		sheet:     opts.SheetName,
		date1904:  props.Date1904 != nil && *props.Date1904,
		nulls:     nulls,
		numFmts:   make(map[int]numFmtClass),
	}, nil
}

// cell types the raw value at 0-based (col, row).
func (c *cellTyper) cell(col, row int, raw string) (types.Cell, error) {
	if raw == "" {
		return types.EmptyCell(), nil
	}

	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return types.Cell{}, err
	}

	cellType, err := c.f.GetCellType(c.sheet, axis)
	if err != nil {
		return types.Cell{}, err
	}

	switch cellType {
	case excelize.CellTypeError:
		return types.EmptyCell(), nil

	case excelize.CellTypeBool:
		return types.BoolCell(raw == "1" || strings.EqualFold(raw, "true")), nil

	case excelize.CellTypeDate:
		// ISO 8601 date cell (t="d").
		if t, ok := parseISODate(raw); ok {
			return types.DateCell(t), nil
		}
		return c.text(raw), nil

	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.text(raw), nil
		}
		class, err := c.numFmtClass(axis)
		if err != nil {
			return types.Cell{}, err
		}
		if class != fmtNumber {
			t, err := excelize.ExcelDateToTime(n, c.date1904)
			if err == nil {
				if class == fmtTime {
					return types.TimeCell(t), nil
				}
				return types.DateCell(t), nil
			}
		}
		return types.NumberCell(n), nil

	default:
		// Shared strings, inline strings and cached formula results.
		return c.text(raw), nil
	}
}

// text builds a text cell, mapping null-like markers to empty.
func (c *cellTyper) text(raw string) types.Cell {
	if _, ok := c.nulls[strings.TrimSpace(raw)]; ok {
		return types.EmptyCell()
	}
	return types.TextCell(raw)
}

// numFmtClass reports whether the cell's number format renders a date, a
// time of day or a plain number.
func (c *cellTyper) numFmtClass(axis string) (numFmtClass, error) {
	styleID, err := c.f.GetCellStyle(c.sheet, axis)
	if err != nil {
		return fmtNumber, err
	}
	if class, ok := c.numFmts[styleID]; ok {
		return class, nil
	}

	class := fmtNumber
	if styleID != 0 {
		style, err := c.f.GetStyle(styleID)
		if err != nil {
			return fmtNumber, fmt.Errorf("failed to read style %d: %w", styleID, err)
		}
		if style.CustomNumFmt != nil {
			class = classifyFormatCode(*style.CustomNumFmt)
		} else {
			class = classifyBuiltIn(style.NumFmt)
		}
	}

	c.numFmts[styleID] = class
	return class, nil
}
