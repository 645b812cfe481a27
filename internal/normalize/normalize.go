// =============================================================================
// QMS Defect Extractor - Cell Normalizers
// =============================================================================
//
// This module converts typed worksheet cells into cleaned optional scalars.
// Every normalizer is a pure function: a Cell goes in, an Optional comes out.
//
// NORMALIZERS:
//   - String : trimmed text, absent when blank
//   - Date   : YYYY-MM-DD text, with a raw-text fallback
//   - Int    : truncated integer, absent when unparseable
//
// FAILURE POLICY:
//   Normalizers never fail a row. A value that cannot be interpreted becomes
//   absent (Int) or is carried through as trimmed text (Date). The outcome is
//   visible in the returned Optional rather than in an error.
//
// =============================================================================

package normalize

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/DekoMao/qms-mao-brasil/internal/types"
)

// =============================================================================
// FORMATS
// =============================================================================

// DateLayout is the output format for every normalized date.
const DateLayout = "2006-01-02"

// timestampLayout renders date cells read through the String normalizer.
const timestampLayout = "2006-01-02 15:04:05"

// clockLayout renders time-of-day cells.
const clockLayout = "15:04:05"

// DateInputLayouts are tried in order against text dates; the first layout
// that parses wins. D/M/Y precedes M/D/Y, so "03/04/2024" is 3 April.
// Day and month accept one or two digits.
var DateInputLayouts = []string{
	"2006-1-2",
	"2/1/2006",
	"1/2/2006",
	"2006/1/2",
}

// =============================================================================
// STRING
// =============================================================================

// String converts a cell to trimmed text. Blank results are absent.
func String(c types.Cell) types.Optional[string] {
	if c.IsEmpty() {
		return types.None[string]()
	}
	s := strings.TrimSpace(Text(c))
	if s == "" {
		return types.None[string]()
	}
	return types.Some(s)
}

// Text renders any cell as plain text without trimming.
//
//   - numbers use the shortest exact decimal form ("12", "12.5")
//   - dates render as "YYYY-MM-DD HH:MM:SS"
//   - times of day render as "HH:MM:SS"
//   - booleans render as "true"/"false"
func Text(c types.Cell) string {
	switch c.Kind {
	case types.CellText:
		return c.Text
	case types.CellNumber:
		return FormatNumber(c.Number)
	case types.CellDate:
		return c.Time.Format(timestampLayout)
	case types.CellTime:
		return c.Time.Format(clockLayout)
	case types.CellBool:
		return strconv.FormatBool(c.Bool)
	default:
		return ""
	}
}

// FormatNumber renders a float without a trailing ".0".
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// =============================================================================
// DATE
// =============================================================================

// Date converts a cell to a YYYY-MM-DD string.
//
// Date cells are formatted directly. Text is parsed against DateInputLayouts;
// when nothing matches, the trimmed text itself is returned so that one bad
// date never rejects a row. Other kinds fall back to their text form.
func Date(c types.Cell) types.Optional[string] {
	switch c.Kind {
	case types.CellEmpty:
		return types.None[string]()
	case types.CellDate:
		return types.Some(c.Time.Format(DateLayout))
	case types.CellText:
		s := strings.TrimSpace(c.Text)
		if s == "" {
			return types.None[string]()
		}
		if t, ok := ParseDate(s); ok {
			return types.Some(t.Format(DateLayout))
		}
		return types.Some(s)
	default:
		return types.Some(Text(c))
	}
}

// ParseDate tries each layout of DateInputLayouts in order.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range DateInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// =============================================================================
// INTEGER
// =============================================================================

// Int converts a cell to an integer, truncating any fractional part toward
// zero. Dates, unparseable text, NaN, infinities and values outside the int64
// range are absent.
func Int(c types.Cell) types.Optional[int64] {
	switch c.Kind {
	case types.CellNumber:
		return truncate(c.Number)
	case types.CellBool:
		if c.Bool {
			return types.Some[int64](1)
		}
		return types.Some[int64](0)
	case types.CellText:
		s := strings.TrimSpace(c.Text)
		if s == "" {
			return types.None[int64]()
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return types.None[int64]()
		}
		return truncate(f)
	default:
		return types.None[int64]()
	}
}

func truncate(f float64) types.Optional[int64] {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return types.None[int64]()
	}
	t := math.Trunc(f)
	// 2^63 is exactly representable; anything at or above it overflows.
	if t >= math.MaxInt64 || t < math.MinInt64 {
		return types.None[int64]()
	}
	return types.Some(int64(t))
}
