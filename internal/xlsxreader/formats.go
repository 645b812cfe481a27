package xlsxreader

import (
	"fmt"
	"strings"
	"time"
)

// numFmtClass is how a number format renders a numeric cell.
type numFmtClass int

const (
	fmtNumber numFmtClass = iota
	fmtDate
	fmtTime
)

// builtInDateFormats are the built-in number format ids that render a
// calendar date, possibly with a time.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true,
	32: true, 33: true, 34: true, 35: true, 36: true,
	50: true, 51: true, 52: true, 53: true, 54: true,
	55: true, 56: true, 57: true, 58: true,
}

// builtInTimeFormats render a time of day only. 46 ([h]:mm:ss) is an
// elapsed duration and stays numeric.
var builtInTimeFormats = map[int]bool{
	18: true, 19: true, 20: true, 21: true, 45: true, 47: true,
}

// IsBuiltInDateFormat reports whether a built-in number format id is a date.
func IsBuiltInDateFormat(id int) bool {
	return builtInDateFormats[id]
}

// IsBuiltInTimeFormat reports whether a built-in number format id is a time
// of day without a date.
func IsBuiltInTimeFormat(id int) bool {
	return builtInTimeFormats[id]
}

// IsDateFormatCode reports whether a custom number format code renders a
// date. Quoted literals, escaped characters and bracketed sections such as
// colors or locales are ignored. "m" counts as a month only when the code has
// no hour or second token.
func IsDateFormatCode(code string) bool {
	s, _ := formatTokens(code)
	if strings.ContainsAny(s, "dy") {
		return true
	}
	return strings.Contains(s, "m") && !strings.ContainsAny(s, "hs")
}

// IsTimeFormatCode reports whether a custom number format code renders a time
// of day with no date part. Elapsed formats such as [h]:mm are durations, not
// times.
func IsTimeFormatCode(code string) bool {
	s, elapsed := formatTokens(code)
	return !elapsed && !strings.ContainsAny(s, "dy") && strings.ContainsAny(s, "hs")
}

func classifyFormatCode(code string) numFmtClass {
	switch {
	case IsDateFormatCode(code):
		return fmtDate
	case IsTimeFormatCode(code):
		return fmtTime
	default:
		return fmtNumber
	}
}

func classifyBuiltIn(id int) numFmtClass {
	switch {
	case IsBuiltInDateFormat(id):
		return fmtDate
	case IsBuiltInTimeFormat(id):
		return fmtTime
	default:
		return fmtNumber
	}
}

// formatTokens lowercases the token letters of a format code, dropping
// literals. An elapsed section ([h], [mm], [ss]) is kept as an 'h' token and
// reported.
func formatTokens(code string) (string, bool) {
	var b, bracket strings.Builder
	inQuote, inBracket, elapsed := false, false, false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case inQuote:
			if ch == '"' {
				inQuote = false
			}
		case inBracket:
			if ch != ']' {
				bracket.WriteByte(ch)
				continue
			}
			inBracket = false
			if tok := strings.ToLower(bracket.String()); tok != "" && strings.Trim(tok, "hms") == "" {
				b.WriteByte('h')
				elapsed = true
			}
			bracket.Reset()
		case ch == '"':
			inQuote = true
		case ch == '[':
			inBracket = true
		case ch == '\\', ch == '_', ch == '*':
			i++
		default:
			b.WriteByte(ch)
		}
	}
	return strings.ToLower(b.String()), elapsed
}

// isoDateLayouts are accepted for cells stored with t="d".
var isoDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseISODate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// uniqueHeaders names blank headers "Unnamed: i" and suffixes repeated names
// with ".1", ".2", ... in order of appearance.
func uniqueHeaders(row []string) []string {
	headers := make([]string, len(row))
	used := make(map[string]bool, len(row))
	suffix := make(map[string]int, len(row))
	for i, h := range row {
		if strings.TrimSpace(h) == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		name := h
		for used[name] {
			suffix[h]++
			name = fmt.Sprintf("%s.%d", h, suffix[h])
		}
		used[name] = true
		headers[i] = name
	}
	return headers
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}
