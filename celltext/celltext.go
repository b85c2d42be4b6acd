// Package celltext normalizes the text content of table cells: unicode
// artifact folding, whitespace collapse, superscript/subscript markers,
// scientific-notation canonicalization, and numeric parsing.
package celltext

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Marker tags wrapping superscript and subscript content in extracted cell
// text. They keep exponents and footnote marks distinguishable from the
// surrounding text.
const (
	SupOpen  = "<sup>"
	SupClose = "</sup>"
	SubOpen  = "<sub>"
	SubClose = "</sub>"
)

// Zero-width characters that survive NFKC and have to go separately.
var zeroWidth = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x200b, Hi: 0x200d, Stride: 1}, // zero-width space/joiners
		{Lo: 0x2060, Hi: 0x2060, Stride: 1}, // word joiner
		{Lo: 0xfeff, Hi: 0xfeff, Stride: 1}, // BOM
	},
}

// NFKC folds no-break/thin spaces into plain spaces and superscript digit
// characters into their ASCII forms, which is exactly what publisher markup
// needs before any numeric interpretation.
var cleaner = transform.Chain(
	norm.NFKC,
	runes.Remove(runes.In(zeroWidth)),
)

// Clean runs the full cell-text pipeline: unicode folding, whitespace
// collapse, scientific-notation canonicalization, and enclosing-parenthesis
// stripping. Clean is idempotent.
func Clean(s string) string {
	if folded, _, err := transform.String(cleaner, s); err == nil {
		s = folded
	}
	s = strings.Join(strings.Fields(s), " ")
	s = NormalizeScientific(s)
	s = stripEnclosing(s)
	return s
}

var markerStripper = strings.NewReplacer(
	SupOpen, "", SupClose, "",
	SubOpen, "", SubClose, "",
)

// StripMarkers returns s without superscript/subscript marker tags.
func StripMarkers(s string) string {
	return markerStripper.Replace(s)
}

// IsPlaceholder reports whether a cell value is a non-value: blank, a lone
// dash, a lone period, or an n/a marker. Placeholder cells are ignored by
// column typing.
func IsPlaceholder(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "-", "–", "—", "−", ".", "n/a", "na":
		return true
	}
	return false
}

// Kind is the type of a single cell value.
type Kind int

const (
	// KindSkip marks blank and placeholder cells, excluded from voting.
	KindSkip Kind = iota
	// KindNumeric marks cells that parse as a number after normalization.
	KindNumeric
	// KindText marks cells with no digits at all.
	KindText
	// KindMixed marks cells mixing digits with other content.
	KindMixed
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "Numeric"
	case KindText:
		return "Text"
	case KindMixed:
		return "Mixed"
	default:
		return "Skip"
	}
}

// CellKind classifies one cell value. Marker tags are transparent: only
// their content participates.
func CellKind(s string) Kind {
	v := strings.TrimSpace(StripMarkers(s))
	if IsPlaceholder(v) {
		return KindSkip
	}
	if _, ok := ParseNumber(v); ok {
		return KindNumeric
	}
	if strings.ContainsFunc(v, unicode.IsDigit) {
		return KindMixed
	}
	return KindText
}

// stripEnclosing removes parentheses that wrap the entire value, repeating
// until stable so Clean stays idempotent on nested wrapping.
func stripEnclosing(s string) string {
	for len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' && wrapsWhole(s) {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// wrapsWhole reports whether the opening parenthesis at position 0 matches
// the closing one at the end, rather than some earlier closer ("(a) vs (b)").
func wrapsWhole(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i < len(s)-1 {
				return false
			}
		}
		if depth < 0 {
			return false
		}
	}
	return depth == 0
}
