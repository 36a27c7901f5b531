package grammar

import (
	"strings"
)

// Node is one vertex of a parse tree. The set of implementations is closed;
// consumers switch over the concrete types.
type Node interface {
	node()
	String() string
}

// Operator joins the operands of an *Infix chain.
type Operator byte

const (
	Multiply Operator = '*'
	Divide   Operator = '/'
)

func (o Operator) String() string { return string(rune(o)) }

// CompositeForm names an irregular two-part quantity.
type CompositeForm uint8

const (
	FeetInches CompositeForm = iota
	PoundsOunces
	StonePounds
)

func (f CompositeForm) String() string {
	switch f {
	case FeetInches:
		return "feet-inches"
	case PoundsOunces:
		return "pounds-ounces"
	case StonePounds:
		return "stone-pounds"
	default:
		return "unknown"
	}
}

// Integer is a whole number as written, including sign and thousands
// separators ("-10,000").
type Integer struct{ Text string }

// Decimal is a fixed-point literal as written ("1.5", "-.25").
type Decimal struct{ Text string }

// Rational is a/b without whitespace.
type Rational struct {
	Numerator   *Integer
	Denominator *Integer
}

// Scientific is mantissa × 10^exponent; Mantissa is *Integer or *Decimal.
type Scientific struct {
	Mantissa Node
	Exponent *Integer
}

// MixedFraction is "a b/c" or "a-b/c". The sign of Whole applies to the sum.
type MixedFraction struct {
	Whole    *Integer
	Fraction *Rational
}

// Complex is a±bi. Real is nil for a pure imaginary literal; both parts are
// *Integer or *Decimal and Imaginary carries its own sign.
type Complex struct {
	Real      Node
	Imaginary Node
}

// TimeOfDay is "h:mm[:ss[.f]]". Seconds is nil, *Integer or *Decimal.
type TimeOfDay struct {
	Hours   *Integer
	Minutes *Integer
	Seconds Node
}

// Unit is one unit atom. Every field is optional except that at least one of
// Scalar, Name or Annotation is set. Prefix and Name are canonical names.
// Power applies to the prefixed unit, or to Scalar when Name is empty.
type Unit struct {
	Scalar     Node
	Prefix     string
	Name       string
	Power      Node
	Annotation string
}

// Infix is a left-associative chain: Operands[0] Operators[0] Operands[1] ...
type Infix struct {
	Operands  []Node
	Operators []Operator
}

// Composite is an irregular form such as "6 ft 4 in"; its value is the sum
// of Major and Minor (the difference when Major's scalar is negative).
type Composite struct {
	Form  CompositeForm
	Major *Unit
	Minor *Unit
}

// TenPower is the UCUM "10*n" / "10^n" factor.
type TenPower struct{ Exponent *Integer }

func (*Integer) node()       {}
func (*Decimal) node()       {}
func (*Rational) node()      {}
func (*Scientific) node()    {}
func (*MixedFraction) node() {}
func (*Complex) node()       {}
func (*TimeOfDay) node()     {}
func (*Unit) node()          {}
func (*Infix) node()         {}
func (*Composite) node()     {}
func (*TenPower) node()      {}

// String renders nodes as S-expressions, e.g. (unit 1 milli meter ^2).

func (n *Integer) String() string { return n.Text }

func (n *Decimal) String() string { return n.Text }

func (n *Rational) String() string {
	return n.Numerator.Text + "/" + n.Denominator.Text
}

func (n *Scientific) String() string {
	return n.Mantissa.String() + "e" + n.Exponent.Text
}

func (n *MixedFraction) String() string {
	return "(mixed " + n.Whole.Text + " " + n.Fraction.String() + ")"
}

func (n *Complex) String() string {
	re := "0"
	if n.Real != nil {
		re = n.Real.String()
	}

	return "(complex " + re + " " + n.Imaginary.String() + ")"
}

func (n *TimeOfDay) String() string {
	s := "(time " + n.Hours.Text + " " + n.Minutes.Text
	if n.Seconds != nil {
		s += " " + n.Seconds.String()
	}

	return s + ")"
}

func (n *Unit) String() string {
	parts := []string{"unit"}
	if n.Scalar != nil {
		parts = append(parts, n.Scalar.String())
	}
	if n.Prefix != "" {
		parts = append(parts, n.Prefix)
	}
	if n.Name != "" {
		parts = append(parts, n.Name)
	}
	if n.Power != nil {
		parts = append(parts, "^"+n.Power.String())
	}
	if n.Annotation != "" {
		parts = append(parts, "{"+n.Annotation+"}")
	}

	return "(" + strings.Join(parts, " ") + ")"
}

func (n *Infix) String() string {
	var b strings.Builder
	b.WriteString("(infix ")
	for i, op := range n.Operands {
		if i > 0 {
			b.WriteString(" " + n.Operators[i-1].String() + " ")
		}
		b.WriteString(op.String())
	}
	b.WriteString(")")

	return b.String()
}

func (n *Composite) String() string {
	return "(" + n.Form.String() + " " + n.Major.String() + " " + n.Minor.String() + ")"
}

func (n *TenPower) String() string { return "(ten " + n.Exponent.Text + ")" }
