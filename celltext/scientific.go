package celltext

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Publishers render minus signs as hyphens, en/em dashes, or U+2212.
var dashVariants = strings.NewReplacer(
	"−", "-",
	"–", "-",
	"—", "-",
)

var (
	// "2.5 × 10-4", "2.5 x 10^4", "2.5*10<sup>-4</sup>" and friends.
	powerForm = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*[×xX*·⋅]\s*10\^?\s*(?:<sup>)?\s*([+\-−–—]?\s*\d+)\s*(?:</sup>)?`)

	// Spaced or capitalized e-notation: "2.5 e -4", "2.5E4".
	eForm = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*[eE]\s*([+\-−–—]?\s*\d+)`)
)

// NormalizeScientific rewrites power-of-ten products and spaced e-notation
// into the canonical "Ne-E" form, canonicalizing dash variants in the
// exponent. Already-canonical input passes through unchanged, so the rewrite
// is idempotent.
func NormalizeScientific(s string) string {
	s = powerForm.ReplaceAllStringFunc(s, func(m string) string {
		sub := powerForm.FindStringSubmatch(m)
		return sub[1] + "e" + canonExponent(sub[2])
	})
	s = eForm.ReplaceAllStringFunc(s, func(m string) string {
		sub := eForm.FindStringSubmatch(m)
		return sub[1] + "e" + canonExponent(sub[2])
	})
	return s
}

func canonExponent(e string) string {
	return strings.Join(strings.Fields(dashVariants.Replace(e)), "")
}

// ParseNumber parses a cell value as a float after canonicalizing unicode
// minus signs. Values with units, commas, or residual markup stay
// non-numeric; so do NaN and infinities, which the interchange format
// cannot carry.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(dashVariants.Replace(s))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
