package transform

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvunits/grammar"
	"github.com/katalvlaran/lvunits/numeric"
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/unitsys"
)

// maxExponent bounds scientific, ten-power and "^" exponents.
const maxExponent = numeric.MaxPower

// Transformer turns parse trees into Quantities against one System.
type Transformer struct {
	sys *unitsys.System
}

// New returns a Transformer resolving unit names through sys.
func New(sys *unitsys.System) *Transformer {
	return &Transformer{sys: sys}
}

// Transform reduces n bottom-up. Numeric literals become unitless quantities.
func (t *Transformer) Transform(n grammar.Node) (quantity.Quantity, error) {
	if t.sys == nil {
		return quantity.Quantity{}, ErrNilSystem
	}

	switch n := n.(type) {
	case *grammar.Integer, *grammar.Decimal, *grammar.Rational, *grammar.Scientific,
		*grammar.MixedFraction, *grammar.Complex, *grammar.TenPower:
		v, err := Number(n)
		if err != nil {
			return quantity.Quantity{}, err
		}

		return quantity.Unitless(t.sys, v), nil
	case *grammar.TimeOfDay:
		return t.timeOfDay(n)
	case *grammar.Unit:
		return t.unit(n)
	case *grammar.Infix:
		return t.infix(n)
	case *grammar.Composite:
		return t.composite(n)
	default:
		return quantity.Quantity{}, fmt.Errorf("%w: %T", ErrUnknownNode, n)
	}
}

// Number evaluates a numeric literal node.
func Number(n grammar.Node) (numeric.Number, error) {
	switch n := n.(type) {
	case *grammar.Integer:
		return integer(n)
	case *grammar.Decimal:
		return decimal(n.Text)
	case *grammar.Rational:
		num, err := integer(n.Numerator)
		if err != nil {
			return numeric.Zero, err
		}
		den, err := integer(n.Denominator)
		if err != nil {
			return numeric.Zero, err
		}

		return num.Quo(den)
	case *grammar.Scientific:
		return scientific(n)
	case *grammar.MixedFraction:
		return mixed(n)
	case *grammar.Complex:
		re := numeric.Zero
		if n.Real != nil {
			var err error
			if re, err = Number(n.Real); err != nil {
				return numeric.Zero, err
			}
		}
		im, err := Number(n.Imaginary)
		if err != nil {
			return numeric.Zero, err
		}

		return numeric.ComplexOf(complex(re.Float64(), im.Float64())), nil
	case *grammar.TenPower:
		e, err := exponent(n.Exponent)
		if err != nil {
			return numeric.Zero, err
		}

		return numeric.Int(10).PowInt(e)
	default:
		return numeric.Zero, fmt.Errorf("%w: %T is not a number", ErrUnknownNode, n)
	}
}

func stripSeparators(s string) string {
	return strings.NewReplacer(",", "", "_", "").Replace(strings.TrimPrefix(s, "+"))
}

func integer(n *grammar.Integer) (numeric.Number, error) {
	return numeric.ParseExact(stripSeparators(n.Text))
}

func decimal(text string) (numeric.Number, error) {
	f, err := strconv.ParseFloat(stripSeparators(text), 64)
	if err != nil {
		return numeric.Zero, fmt.Errorf("%w: %q", numeric.ErrSyntax, text)
	}

	return numeric.FloatOf(f), nil
}

func exponent(n *grammar.Integer) (int, error) {
	e, err := strconv.Atoi(stripSeparators(n.Text))
	if err != nil || e > maxExponent || e < -maxExponent {
		return 0, fmt.Errorf("%w: %s", ErrExponentRange, n.Text)
	}

	return e, nil
}

// power evaluates a "^" exponent, bounded like the other exponents.
func power(n grammar.Node) (numeric.Number, error) {
	p, err := Number(n)
	if err != nil {
		return numeric.Zero, err
	}
	if r, ok := p.ToRat(); ok && r.Num().CmpAbs(big.NewInt(maxExponent)) > 0 {
		return numeric.Zero, fmt.Errorf("%w: %s", ErrExponentRange, n)
	}

	return p, nil
}

// scientific keeps integer mantissas exact: 1e4 is the integer 10000.
func scientific(n *grammar.Scientific) (numeric.Number, error) {
	if d, ok := n.Mantissa.(*grammar.Decimal); ok {
		return decimal(d.Text + "e" + n.Exponent.Text)
	}
	m, err := Number(n.Mantissa)
	if err != nil {
		return numeric.Zero, err
	}
	e, err := exponent(n.Exponent)
	if err != nil {
		return numeric.Zero, err
	}
	p, err := numeric.Int(10).PowInt(e)
	if err != nil {
		return numeric.Zero, err
	}

	return m.Mul(p), nil
}

// mixed computes sign(whole) × (|whole| + fraction); "-1 1/2" is -3/2.
func mixed(n *grammar.MixedFraction) (numeric.Number, error) {
	whole, err := integer(n.Whole)
	if err != nil {
		return numeric.Zero, err
	}
	frac, err := Number(n.Fraction)
	if err != nil {
		return numeric.Zero, err
	}
	sum := whole.Abs().Add(frac.Abs())
	if strings.HasPrefix(n.Whole.Text, "-") {
		return sum.Neg(), nil
	}

	return sum, nil
}

func (t *Transformer) lookup(name string) (unitsys.Definition, error) {
	d, ok := t.sys.ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q in system %q", unitsys.ErrUnknownUnit, name, t.sys.Name())
	}

	return d, nil
}

// unit builds scalar × (prefix·unit)^power. Without a unit name the power
// applies to the scalar itself.
func (t *Transformer) unit(n *grammar.Unit) (quantity.Quantity, error) {
	scalar := numeric.One
	if n.Scalar != nil {
		var err error
		if scalar, err = Number(n.Scalar); err != nil {
			return quantity.Quantity{}, err
		}
	}

	base := quantity.Unitless(t.sys, numeric.One)
	if n.Name != "" {
		d, err := t.lookup(n.Name)
		if err != nil {
			return quantity.Quantity{}, err
		}
		f := quantity.Of(d)
		if n.Prefix != "" {
			p, err := t.lookup(n.Prefix)
			if err != nil {
				return quantity.Quantity{}, err
			}
			f = quantity.Prefixed(p, d)
		}
		if base, err = quantity.New(t.sys, numeric.One, []quantity.Factor{f}, nil); err != nil {
			return quantity.Quantity{}, err
		}
	} else {
		base = quantity.Unitless(t.sys, scalar)
		scalar = numeric.One
	}

	if n.Power != nil {
		p, err := power(n.Power)
		if err != nil {
			return quantity.Quantity{}, err
		}
		if base, err = base.Pow(p); err != nil {
			return quantity.Quantity{}, err
		}
	}

	return quantity.Unitless(t.sys, scalar).Mul(base)
}

func (t *Transformer) infix(n *grammar.Infix) (quantity.Quantity, error) {
	if len(n.Operands) == 0 || len(n.Operators) != len(n.Operands)-1 {
		return quantity.Quantity{}, fmt.Errorf("%w: malformed infix chain", ErrUnknownNode)
	}
	acc, err := t.Transform(n.Operands[0])
	if err != nil {
		return quantity.Quantity{}, err
	}
	for i, op := range n.Operators {
		next, err := t.Transform(n.Operands[i+1])
		if err != nil {
			return quantity.Quantity{}, err
		}
		switch op {
		case grammar.Multiply:
			acc, err = acc.Mul(next)
		case grammar.Divide:
			acc, err = acc.Div(next)
		default:
			err = fmt.Errorf("%w: operator %q", ErrUnknownNode, op)
		}
		if err != nil {
			return quantity.Quantity{}, err
		}
	}

	return acc, nil
}

// composite sums the two parts in the major unit; a negative major part
// negates the whole ("-6 ft 4 in" is -(6 ft + 4 in)).
func (t *Transformer) composite(n *grammar.Composite) (quantity.Quantity, error) {
	major, err := t.unit(n.Major)
	if err != nil {
		return quantity.Quantity{}, err
	}
	minor, err := t.unit(n.Minor)
	if err != nil {
		return quantity.Quantity{}, err
	}
	if !major.Scalar().IsComplex() && major.Scalar().Sign() < 0 {
		return major.Sub(minor)
	}

	return major.Add(minor)
}

// timeOfDay sums h:mm:ss into hours.
func (t *Transformer) timeOfDay(n *grammar.TimeOfDay) (quantity.Quantity, error) {
	parts := []struct {
		value grammar.Node
		unit  string
	}{
		{n.Hours, "hour"},
		{n.Minutes, "minute"},
		{n.Seconds, "second"},
	}

	var sum quantity.Quantity
	for i, p := range parts {
		if p.value == nil {
			continue
		}
		q, err := t.unit(&grammar.Unit{Scalar: p.value, Name: p.unit})
		if err != nil {
			return quantity.Quantity{}, err
		}
		if i == 0 {
			sum = q
			continue
		}
		if sum, err = sum.Add(q); err != nil {
			return quantity.Quantity{}, err
		}
	}

	return sum, nil
}
