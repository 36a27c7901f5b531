package grammar

import (
	"strings"
	"sync"

	"github.com/katalvlaran/lvunits/unitsys"
)

// UCUM code tables: code → canonical name. A code is usable only when the
// System defines the canonical name.
var (
	ucumPrefixes = map[string]string{
		"Y": "yotta", "Z": "zetta", "E": "exa", "P": "peta", "T": "tera",
		"G": "giga", "M": "mega", "k": "kilo", "h": "hecto", "da": "deca",
		"d": "deci", "c": "centi", "m": "milli", "u": "micro", "n": "nano",
		"p": "pico", "f": "femto", "a": "atto", "z": "zepto", "y": "yocto",
		"Ki": "kibi", "Mi": "mebi", "Gi": "gibi", "Ti": "tebi",
	}
	ucumRoots = map[string]string{"g": "gram", "m": "meter", "s": "second"}

	// case-insensitive sublanguage
	ucumPrefixesCI = map[string]string{
		"YA": "yotta", "ZA": "zetta", "EX": "exa", "PT": "peta", "TR": "tera",
		"GA": "giga", "MA": "mega", "K": "kilo", "H": "hecto", "DA": "deca",
		"D": "deci", "C": "centi", "M": "milli", "U": "micro", "N": "nano",
		"P": "pico", "F": "femto", "A": "atto", "ZO": "zepto", "YO": "yocto",
		"KIB": "kibi", "MIB": "mebi", "GIB": "gibi", "TIB": "tebi",
	}
	ucumRootsCI = map[string]string{"G": "gram", "M": "meter", "S": "second"}
)

// UCUM parses ASCII UCUM unit codes:
//
//	expr      := (number ' ')? term
//	term      := '/'? component (('.' | '/') component)*
//	component := '(' term ')' | '10*' int | '10^' int | annotation
//	           | prefix? root exponent? annotation? | digits annotation?
type UCUM struct {
	sys *unitsys.System

	once        sync.Once
	sensitive   unitTables
	insensitive unitTables
}

// NewUCUM returns the UCUM grammar over sys. sys should define gram, meter,
// second and the SI prefix names.
func NewUCUM(sys *unitsys.System) *UCUM {
	return &UCUM{sys: sys}
}

// Name returns "ucum".
func (g *UCUM) Name() string { return NameUCUM }

func (g *UCUM) init() {
	g.once.Do(func() {
		g.sensitive = g.codeTables(ucumPrefixes, ucumRoots)
		g.insensitive = g.codeTables(ucumPrefixesCI, ucumRootsCI)
	})
}

func (g *UCUM) codeTables(prefixes, roots map[string]string) unitTables {
	resolve := func(table map[string]string, wantPrefix bool) func(string) (string, bool) {
		return func(code string) (string, bool) {
			name := table[code]
			d, ok := g.sys.ByName(name)
			if !ok || d.IsPrefix() != wantPrefix {
				return "", false
			}

			return name, true
		}
	}

	return unitTables{
		units:    newAlternation(keys(roots), resolve(roots, false), false),
		prefixes: newAlternation(keys(prefixes), resolve(prefixes, true), false),
	}
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}

// Parse parses a UCUM code, optionally preceded by a number and a space.
func (g *UCUM) Parse(text string) (Node, error) {
	if g.sys == nil {
		return nil, ErrNilSystem
	}
	g.init()

	src := strings.TrimSpace(text)
	for i := 0; i < len(src); i++ {
		if src[i] >= 0x80 {
			return nil, parseError(NameUCUM, src, i, ErrNonASCII)
		}
	}
	if src == "" {
		return nil, parseError(NameUCUM, src, 0, ErrEmptyInput)
	}

	c := &cursor{src: src}
	var scalar Node
	if n := c.simpleNumber(false); n != nil && c.skipSpace() > 0 {
		scalar = n
	} else {
		c.pos = 0
	}

	t := g.term(c)
	if t == nil || !c.eof() {
		return nil, parseError(NameUCUM, src, c.pos, nil)
	}
	if scalar == nil {
		return t, nil
	}

	lead := &Unit{Scalar: scalar}
	if in, ok := t.(*Infix); ok {
		return &Infix{
			Operands:  append([]Node{lead}, in.Operands...),
			Operators: append([]Operator{Multiply}, in.Operators...),
		}, nil
	}

	return &Infix{Operands: []Node{lead, t}, Operators: []Operator{Multiply}}, nil
}

func (g *UCUM) term(c *cursor) Node {
	start := c.pos
	var (
		operands  []Node
		operators []Operator
	)
	if c.accept("/") {
		operands = append(operands, &Integer{Text: "1"})
		operators = append(operators, Divide)
	}
	first := g.component(c)
	if first == nil {
		c.pos = start
		return nil
	}
	operands = append(operands, first)

	for !c.eof() {
		before := c.pos
		var op Operator
		switch {
		case c.accept("."):
			op = Multiply
		case c.accept("/"):
			op = Divide
		default:
			return infixOf(operands, operators)
		}
		next := g.component(c)
		if next == nil {
			c.pos = before
			break
		}
		operands = append(operands, next)
		operators = append(operators, op)
	}

	return infixOf(operands, operators)
}

func infixOf(operands []Node, operators []Operator) Node {
	if len(operands) == 1 {
		return operands[0]
	}

	return &Infix{Operands: operands, Operators: operators}
}

func (g *UCUM) component(c *cursor) Node {
	start := c.pos

	if c.accept("(") {
		t := g.term(c)
		if t == nil || !c.accept(")") {
			c.pos = start
			return nil
		}

		return t
	}

	if c.accept("10*") || c.accept("10^") {
		if exp := c.signedInt(false); exp != nil {
			return &TenPower{Exponent: exp}
		}
		c.pos = start
	}

	if ann, ok := c.annotation(); ok {
		return &Unit{Annotation: ann}
	}

	if u := g.simpleUnit(c); u != nil {
		return u
	}

	if d := c.digits(); d != "" {
		u := &Unit{Scalar: &Integer{Text: d}}
		u.Annotation, _ = c.annotation()

		return u
	}

	return nil
}

// simpleUnit scans prefix? root exponent? annotation?, trying the
// case-sensitive codes before the case-insensitive ones.
func (g *UCUM) simpleUnit(c *cursor) *Unit {
	prefix, name, n, ok := g.sensitive.match(c.rest())
	if !ok {
		prefix, name, n, ok = g.insensitive.match(c.rest())
	}
	if !ok {
		return nil
	}
	c.pos += n

	u := &Unit{Prefix: prefix, Name: name}
	if exp := c.signedInt(false); exp != nil {
		u.Power = exp
	}
	u.Annotation, _ = c.annotation()

	return u
}

// annotation scans {text}; the braces are not part of the result.
func (c *cursor) annotation() (string, bool) {
	if c.peek(0) != '{' {
		return "", false
	}
	end := strings.IndexByte(c.rest(), '}')
	if end < 0 {
		return "", false
	}
	text := c.src[c.pos+1 : c.pos+end]
	if strings.ContainsRune(text, '{') {
		return "", false
	}
	c.pos += end + 1

	return text, true
}
