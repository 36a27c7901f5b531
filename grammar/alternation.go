package grammar

import (
	"strings"

	"github.com/katalvlaran/lvunits/unitsys"
)

// entry is one alternative: a surface alias and the canonical name it means.
type entry struct {
	alias string
	name  string
}

// alternation is a longest-first list of literal alternatives bucketed by
// first byte. Within a bucket the global longest-first order is preserved.
type alternation struct {
	byFirst map[byte][]entry
	size    int
}

// newAlternation compiles aliases (already unique) into an alternation;
// resolve maps each alias to its canonical name, and aliases it rejects are
// left out. When fold is set every alias is also registered in its NFKC form.
func newAlternation(aliases []string, resolve func(string) (string, bool), fold bool) *alternation {
	names := make(map[string]string, len(aliases))
	for _, a := range aliases {
		name, ok := resolve(a)
		if !ok || a == "" {
			continue
		}
		names[a] = name
		if fold {
			if n := normalizeAlias(a); n != "" {
				if _, taken := names[n]; !taken {
					names[n] = name
				}
			}
		}
	}

	sorted := make([]string, 0, len(names))
	for a := range names {
		sorted = append(sorted, a)
	}
	unitsys.SortAliases(sorted)

	alt := &alternation{byFirst: make(map[byte][]entry), size: len(sorted)}
	for _, a := range sorted {
		alt.byFirst[a[0]] = append(alt.byFirst[a[0]], entry{alias: a, name: names[a]})
	}

	return alt
}

// candidates returns every alternative that is a prefix of s, longest first.
func (a *alternation) candidates(s string) []entry {
	if s == "" {
		return nil
	}
	var out []entry
	for _, e := range a.byFirst[s[0]] {
		if strings.HasPrefix(s, e.alias) {
			out = append(out, e)
		}
	}

	return out
}

// unitTables holds the unit and prefix alternations of one System.
type unitTables struct {
	units    *alternation
	prefixes *alternation
}

func buildUnitTables(sys *unitsys.System, fold bool) unitTables {
	unitName := func(a string) (string, bool) {
		d, ok := sys.LookupUnit(a)
		if !ok {
			return "", false
		}

		return d.Name(), true
	}
	prefixName := func(a string) (string, bool) {
		d, ok := sys.LookupPrefix(a)
		if !ok {
			return "", false
		}

		return d.Name(), true
	}

	return unitTables{
		units:    newAlternation(sys.UnitAliases(), unitName, fold),
		prefixes: newAlternation(sys.PrefixAliases(), prefixName, fold),
	}
}

// match finds prefix+unit at the start of s. A bare unit alias is tried
// first; prefix+unit only when no unit alias fits. Every match must end at a
// word boundary (the next rune is not a letter). It returns the canonical
// prefix (possibly "") and unit names and the number of bytes consumed.
func (t unitTables) match(s string) (prefix, unit string, n int, ok bool) {
	for _, u := range t.units.candidates(s) {
		if !letterAt(s, len(u.alias)) {
			return "", u.name, len(u.alias), true
		}
	}
	for _, p := range t.prefixes.candidates(s) {
		rest := s[len(p.alias):]
		for _, u := range t.units.candidates(rest) {
			if !letterAt(rest, len(u.alias)) {
				return p.name, u.name, len(p.alias) + len(u.alias), true
			}
		}
	}

	return "", "", 0, false
}
