package grammar

import (
	"sync"

	"github.com/katalvlaran/lvunits/unitsys"
)

// Grammar parses text into a Node tree against one unit system.
type Grammar interface {
	Name() string
	Parse(text string) (Node, error)
}

// Grammar names.
const (
	NameStandard = "standard"
	NameMetric   = "metric"
	NameUCUM     = "ucum"
)

// syntax toggles the features that differ between Standard and Metric.
type syntax struct {
	separators bool // ',' and '_' thousands separators
	irregular  bool // feet-inches, pounds-ounces, stone-pounds
	timeOfDay  bool // "h:mm[:ss]"
	xOperator  bool // 'x' as multiplication
}

// textParser is the shared engine behind Standard and Metric.
type textParser struct {
	name   string
	sys    *unitsys.System
	syntax syntax

	once   sync.Once
	tables unitTables
	forms  []irregularForm
}

func (p *textParser) init() {
	p.once.Do(func() {
		p.tables = buildUnitTables(p.sys, true)
		if p.syntax.irregular {
			p.forms = compileIrregularForms(p.sys)
		}
	})
}

// Standard is the human-oriented grammar.
type Standard struct{ textParser }

// NewStandard returns the Standard grammar over sys.
func NewStandard(sys *unitsys.System) *Standard {
	return &Standard{textParser{
		name: NameStandard,
		sys:  sys,
		syntax: syntax{
			separators: true,
			irregular:  true,
			timeOfDay:  true,
			xOperator:  true,
		},
	}}
}

// Name returns "standard".
func (g *Standard) Name() string { return g.name }

// Parse parses text completely or returns a *ParseError.
func (g *Standard) Parse(text string) (Node, error) { return g.parse(text) }

// Metric is the strict grammar used with SI vocabularies: no separators, no
// irregular forms and no time literals.
type Metric struct{ textParser }

// NewMetric returns the Metric grammar over sys.
func NewMetric(sys *unitsys.System) *Metric {
	return &Metric{textParser{name: NameMetric, sys: sys}}
}

// Name returns "metric".
func (g *Metric) Name() string { return g.name }

// Parse parses text completely or returns a *ParseError.
func (g *Metric) Parse(text string) (Node, error) { return g.parse(text) }

func (p *textParser) parse(text string) (Node, error) {
	if p.sys == nil {
		return nil, ErrNilSystem
	}
	p.init()

	src := normalizeText(text)
	if src == "" {
		return nil, parseError(p.name, src, 0, ErrEmptyInput)
	}

	if p.syntax.irregular {
		if n := p.irregular(src); n != nil {
			return n, nil
		}
	}
	if p.syntax.timeOfDay {
		c := &cursor{src: src}
		if t := c.timeOfDay(); t != nil && c.eof() {
			return t, nil
		}
	}

	c := &cursor{src: src}
	n := p.chain(c)
	if n == nil || !c.eof() {
		return nil, parseError(p.name, src, c.pos, nil)
	}

	return n, nil
}

// chain scans unit_atom (operator unit_atom)*. A lone atom is returned as is.
func (p *textParser) chain(c *cursor) Node {
	first := p.atom(c)
	if first == nil {
		return nil
	}
	operands := []Node{first}
	var operators []Operator

	for !c.eof() {
		before := c.pos
		ws := c.skipSpace()

		op, explicit := p.operator(c)
		if !explicit {
			if ws == 0 {
				c.pos = before
				break
			}
			op = Multiply
		} else {
			c.skipSpace()
		}

		next := p.atom(c)
		if next == nil {
			c.pos = before
			break
		}
		operands = append(operands, next)
		operators = append(operators, op)
	}

	if len(operands) == 1 {
		return first
	}

	return &Infix{Operands: operands, Operators: operators}
}

// operator consumes an explicit multiply or divide sign.
func (p *textParser) operator(c *cursor) (Operator, bool) {
	switch {
	case c.accept("/"):
		return Divide, true
	case c.peek(0) == '*' && c.peek(1) != '*':
		c.pos++
		return Multiply, true
	case c.accept("·"), c.accept("×"):
		return Multiply, true
	case p.syntax.xOperator && c.peek(0) == 'x' && (isSpace(c.peek(1)) || isDigit(c.peek(1))):
		c.pos++
		return Multiply, true
	}

	return 0, false
}

// atom scans scalar? ' '? prefix? unit_name power?. The unit name may be
// omitted when a scalar is present.
func (p *textParser) atom(c *cursor) *Unit {
	start := c.pos
	u := &Unit{Scalar: c.number(p.syntax.separators)}
	afterScalar := c.pos
	if u.Scalar != nil {
		c.skipSpace()
	}

	if prefix, name, n, ok := p.tables.match(c.rest()); ok {
		u.Prefix, u.Name = prefix, name
		c.pos += n
	} else {
		if u.Scalar == nil {
			c.pos = start
			return nil
		}
		c.pos = afterScalar
	}

	if pw := c.power(p.syntax.separators); pw != nil {
		u.Power = pw
	}

	return u
}

// power scans ('^' | '**') (rational | decimal | integer).
func (c *cursor) power(sep bool) Node {
	start := c.pos
	if !c.accept("^") && !c.accept("**") {
		return nil
	}
	if r := c.rational(sep); r != nil {
		return r
	}
	if n := c.real(sep); n != nil {
		return n
	}
	c.pos = start

	return nil
}
