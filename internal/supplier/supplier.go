// =============================================================================
// QMS Defect Extractor - Supplier Code Assignment
// =============================================================================
//
// This module turns the distinct supplier names seen on defect rows into
// supplier records:
//   - names are sorted ascending (byte-wise, which is code point order)
//   - codes are assigned by rank: SUP001, SUP002, ... (width grows past 999)
//   - each supplier gets an independent random access code
//
// Access codes come from an injected non-cryptographic random source, so a
// seeded source reproduces the same codes and an unseeded one yields fresh
// codes on every run.
//
// =============================================================================

package supplier

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
)

// =============================================================================
// RECORDS
// =============================================================================

// Record is one exported supplier.
type Record struct {
	Name       string `json:"name"`
	Code       string `json:"code"`
	AccessCode string `json:"accessCode"`
}

// =============================================================================
// NAME SET
// =============================================================================

// NameSet collects distinct supplier names. Matching is exact: case and
// inner whitespace are significant.
type NameSet struct {
	names map[string]struct{}
}

// NewNameSet returns an empty set.
func NewNameSet() *NameSet {
	return &NameSet{names: make(map[string]struct{})}
}

// Add records name. Empty names are ignored.
func (s *NameSet) Add(name string) {
	if name == "" {
		return
	}
	s.names[name] = struct{}{}
}

// Len returns the number of distinct names.
func (s *NameSet) Len() int {
	return len(s.names)
}

// Contains reports whether name was added.
func (s *NameSet) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Sorted returns the names in ascending order.
func (s *NameSet) Sorted() []string {
	names := make([]string, 0, len(s.names))
	for n := range s.names {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// =============================================================================
// ACCESS CODES
// =============================================================================

// AccessCodeAlphabet is the character set of generated access codes.
const AccessCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// IntN is the subset of *rand.Rand used to draw characters.
type IntN interface {
	IntN(n int) int
}

// AccessCodeGenerator draws fixed-length codes uniformly from
// AccessCodeAlphabet. Codes are not checked for uniqueness.
type AccessCodeGenerator struct {
	src    IntN
	length int
}

// NewAccessCodeGenerator returns a generator of codes with length characters.
func NewAccessCodeGenerator(src IntN, length int) *AccessCodeGenerator {
	return &AccessCodeGenerator{src: src, length: length}
}

// NewRandSource returns a PCG source. A zero seed draws a fresh seed so that
// every run yields different codes.
func NewRandSource(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Next returns a new access code.
func (g *AccessCodeGenerator) Next() string {
	var b strings.Builder
	b.Grow(g.length)
	for i := 0; i < g.length; i++ {
		b.WriteByte(AccessCodeAlphabet[g.src.IntN(len(AccessCodeAlphabet))])
	}
	return b.String()
}

// =============================================================================
// CODE ASSIGNMENT
// =============================================================================

// CodeFormat controls supplier code rendering.
type CodeFormat struct {
	// Prefix precedes the rank, e.g. "SUP".
	Prefix string

	// Width is the minimum zero-padded digit count.
	Width int
}

// DefaultCodeFormat renders SUP001, SUP002, ...
func DefaultCodeFormat() CodeFormat {
	return CodeFormat{Prefix: "SUP", Width: 3}
}

// Code renders the code for a 1-based rank.
func (f CodeFormat) Code(rank int) string {
	return fmt.Sprintf("%s%0*d", f.Prefix, f.Width, rank)
}

// Assign builds supplier records from the name set in alphabetical order.
// Codes follow rank; access codes are drawn independently per supplier.
func Assign(names *NameSet, format CodeFormat, codes *AccessCodeGenerator) []Record {
	sorted := names.Sorted()
	records := make([]Record, len(sorted))
	for i, name := range sorted {
		records[i] = Record{
			Name:       name,
			Code:       format.Code(i + 1),
			AccessCode: codes.Next(),
		}
	}
	return records
}
