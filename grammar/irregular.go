package grammar

import (
	"github.com/katalvlaran/lvunits/unitsys"
)

// irregularForm is a two-part quantity such as "6 ft 4 in". The surface
// words are fixed; the units they denote are looked up by canonical name and
// a form is disabled when its System lacks either unit.
type irregularForm struct {
	form          CompositeForm
	major, minor  string   // canonical unit names
	majorWords    []string // longest first
	minorWords    []string // longest first
	minorOptional bool
}

var irregularForms = []irregularForm{
	{
		form:          FeetInches,
		major:         "foot",
		minor:         "inch",
		majorWords:    []string{"feet", "foot", "ft", "'"},
		minorWords:    []string{"inches", "inch", "in", "\""},
		minorOptional: true,
	},
	{
		form:       PoundsOunces,
		major:      "pound",
		minor:      "ounce",
		majorWords: []string{"pounds", "pound", "lbs", "lb", "#"},
		minorWords: []string{"ounces", "ounce", "ozs", "oz"},
	},
	{
		form:       StonePounds,
		major:      "stone",
		minor:      "pound",
		majorWords: []string{"stones", "stone", "st"},
		minorWords: []string{"pounds", "pound", "lbs", "lb"},
	},
}

func compileIrregularForms(sys *unitsys.System) []irregularForm {
	var out []irregularForm
	for _, f := range irregularForms {
		_, okMajor := sys.ByName(f.major)
		_, okMinor := sys.ByName(f.minor)
		if okMajor && okMinor {
			out = append(out, f)
		}
	}

	return out
}

// irregular tries every enabled form against the whole of src.
func (p *textParser) irregular(src string) *Composite {
	for _, f := range p.forms {
		c := &cursor{src: src}
		if n := f.scan(c, p.syntax.separators); n != nil && c.eof() {
			return n
		}
	}

	return nil
}

// scan matches
//
//	scalar ws? major_word [ws,]* scalar ws? minor_word?
func (f irregularForm) scan(c *cursor, sep bool) *Composite {
	majorScalar := c.number(sep)
	if majorScalar == nil {
		return nil
	}
	c.skipSpace()
	if !c.word(f.majorWords) {
		return nil
	}
	for !c.eof() && (isSpace(c.peek(0)) || c.peek(0) == ',') {
		c.pos++
	}
	minorScalar := c.number(sep)
	if minorScalar == nil {
		return nil
	}
	c.skipSpace()
	if !c.word(f.minorWords) && !f.minorOptional {
		return nil
	}

	return &Composite{
		Form:  f.form,
		Major: &Unit{Scalar: majorScalar, Name: f.major},
		Minor: &Unit{Scalar: minorScalar, Name: f.minor},
	}
}

// word consumes the first of words present at pos and ending at a word
// boundary.
func (c *cursor) word(words []string) bool {
	for _, w := range words {
		if len(c.rest()) >= len(w) && c.rest()[:len(w)] == w && !letterAt(c.rest(), len(w)) {
			c.pos += len(w)
			return true
		}
	}

	return false
}
