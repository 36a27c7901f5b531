package grammar

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var superscripts = map[rune]byte{
	'⁰': '0', '¹': '1', '²': '2', '³': '3', '⁴': '4',
	'⁵': '5', '⁶': '6', '⁷': '7', '⁸': '8', '⁹': '9',
	'⁻': '-', '⁺': '+',
}

// normalizeText rewrites superscript runs into "^n" ("m²" → "m^2",
// "s⁻¹" → "s^-1"), applies NFKC (micro sign → Greek mu, full-width digits →
// ASCII, no-break space → space) and trims surrounding whitespace.
func normalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	inRun := false
	for _, r := range s {
		if d, ok := superscripts[r]; ok {
			if !inRun {
				b.WriteByte('^')
				inRun = true
			}
			b.WriteByte(d)
			continue
		}
		inRun = false
		b.WriteRune(r)
	}

	return strings.TrimSpace(norm.NFKC.String(b.String()))
}

// normalizeAlias maps a registry alias into the form normalizeText produces,
// so "µm" registered with the micro sign still matches after NFKC.
func normalizeAlias(a string) string {
	return norm.NFKC.String(a)
}
