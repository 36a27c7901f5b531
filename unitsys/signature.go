package unitsys

import (
	"sort"
	"strconv"
	"strings"
)

// Signature is the reduced, order-independent pairing of base-unit names in
// a numerator against those in a denominator. Two values are interconvertible
// iff their signatures are equal. The empty Signature means dimensionless.
type Signature string

// SignatureOf reduces numerator/denominator base-unit names to a Signature.
// Names present on both sides cancel; the result is sorted by name.
func SignatureOf(numerator, denominator []string) Signature {
	exp := make(map[string]int, len(numerator)+len(denominator))
	for _, n := range numerator {
		exp[n]++
	}
	for _, d := range denominator {
		exp[d]--
	}

	names := make([]string, 0, len(exp))
	for n, e := range exp {
		if e != 0 {
			names = append(names, n)
		}
	}
	sort.Strings(names)

	var sb strings.Builder
	for i, n := range names {
		if i > 0 {
			sb.WriteByte('*')
		}
		sb.WriteString(n)
		sb.WriteByte('^')
		sb.WriteString(strconv.Itoa(exp[n]))
	}

	return Signature(sb.String())
}

// IsDimensionless reports whether s is empty.
func (s Signature) IsDimensionless() bool { return s == "" }

// SortAliases orders aliases by descending byte length, then lexically.
// Grammars match aliases as byte prefixes and must try alternatives in this
// order so that a short alias never shadows a longer one ("m" vs "min").
// The input slice is sorted in place and returned.
func SortAliases(aliases []string) []string {
	sort.SliceStable(aliases, func(i, j int) bool {
		li, lj := len(aliases[i]), len(aliases[j])
		if li != lj {
			return li > lj
		}

		return aliases[i] < aliases[j]
	})

	return aliases
}
