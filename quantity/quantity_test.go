package quantity_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvunits/numeric"
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/unitsys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSystem builds a tiny explicit-only system (no evaluator needed).
func newTestSystem(t testing.TB) *unitsys.System {
	t.Helper()
	b := unitsys.NewBuilder("algebra")
	require.NoError(t, b.Base("meter", "length", unitsys.WithAliases("m")))
	require.NoError(t, b.Base("kilogram", "mass", unitsys.WithAliases("kg")))
	require.NoError(t, b.Base("second", "time", unitsys.WithAliases("s")))
	require.NoError(t, b.Base("radian", "angle", unitsys.WithAliases("rad")))
	require.NoError(t, b.Prefix("kilo", numeric.Int(1000), unitsys.WithAliases("k")))
	require.NoError(t, b.Prefix("centi", numeric.Frac(1, 100), unitsys.WithAliases("c")))
	require.NoError(t, b.Derived("foot",
		unitsys.WithScalar(numeric.Frac(381, 1250)), unitsys.WithNumerator("meter"), unitsys.WithAliases("ft")))
	require.NoError(t, b.Derived("inch",
		unitsys.WithScalar(numeric.Frac(127, 5000)), unitsys.WithNumerator("meter"), unitsys.WithAliases("in")))
	require.NoError(t, b.Derived("minute",
		unitsys.WithScalar(numeric.Int(60)), unitsys.WithNumerator("second"), unitsys.WithAliases("min")))
	require.NoError(t, b.Derived("newton",
		unitsys.WithScalar(numeric.One),
		unitsys.WithNumerator("kilogram", "meter"),
		unitsys.WithDenominator("second", "second"),
		unitsys.WithKind("force"),
		unitsys.WithAliases("N")))
	sys, err := b.Build(nil)
	require.NoError(t, err)

	return sys
}

// q builds scalar × unit (with optional prefix alias) against sys.
func q(t testing.TB, sys *unitsys.System, scalar numeric.Number, prefix, unit string) quantity.Quantity {
	t.Helper()
	u, ok := sys.LookupUnit(unit)
	require.True(t, ok, unit)
	f := quantity.Of(u)
	if prefix != "" {
		p, ok := sys.LookupPrefix(prefix)
		require.True(t, ok, prefix)
		f = quantity.Prefixed(p, u)
	}
	out, err := quantity.New(sys, scalar, []quantity.Factor{f}, nil)
	require.NoError(t, err)

	return out
}

// TestMulCommutativeAssociative checks the algebraic laws up to Equal.
func TestMulCommutativeAssociative(t *testing.T) {
	sys := newTestSystem(t)
	a := q(t, sys, numeric.Int(2), "", "m")
	b := q(t, sys, numeric.Int(3), "", "s")
	c := q(t, sys, numeric.Frac(1, 2), "", "kg")

	ab, err := a.Mul(b)
	require.NoError(t, err)
	ba, err := b.Mul(a)
	require.NoError(t, err)
	assert.True(t, ab.Equal(ba))

	abc1, err := ab.Mul(c)
	require.NoError(t, err)
	bc, err := b.Mul(c)
	require.NoError(t, err)
	abc2, err := a.Mul(bc)
	require.NoError(t, err)
	assert.True(t, abc1.Equal(abc2))
	assert.Equal(t, "3 m*s*kg", abc1.String())
}

// TestDivCancellation verifies a/a is dimensionless 1.
func TestDivCancellation(t *testing.T) {
	sys := newTestSystem(t)
	for _, a := range []quantity.Quantity{
		q(t, sys, numeric.Int(5), "", "m"),
		q(t, sys, numeric.FloatOf(2.5), "k", "kg"),
		q(t, sys, numeric.ComplexOf(1+2i), "", "rad"),
	} {
		r, err := a.Div(a)
		require.NoError(t, err)
		assert.True(t, r.IsUnitless())
		assert.Equal(t, unitsys.KindUnitless, r.Kind())
		assert.True(t, r.Scalar().Equal(numeric.One), r.String())
	}

	_, err := q(t, sys, numeric.One, "", "m").Div(q(t, sys, numeric.Zero, "", "s"))
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)
}

// TestVelocityComposition covers m/s/s left-to-right composition.
func TestVelocityComposition(t *testing.T) {
	sys := newTestSystem(t)
	m := q(t, sys, numeric.Int(-1), "", "m")
	s := q(t, sys, numeric.One, "", "s")

	v, err := m.Div(s)
	require.NoError(t, err)
	acc, err := v.Div(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"meter"}, acc.Numerator())
	assert.Equal(t, []string{"second", "second"}, acc.Denominator())
	assert.Equal(t, "-1 m/s^2", acc.String())

	// kg*m/s^2 shares the newton signature and therefore its kind
	kg := q(t, sys, numeric.One, "", "kg")
	f, err := kg.Mul(acc)
	require.NoError(t, err)
	assert.Equal(t, unitsys.Kind("force"), f.Kind())
	assert.True(t, f.Compatible(q(t, sys, numeric.One, "", "N")))
}

// TestAddRequiresSameKind covers add/sub and the mismatch error.
func TestAddRequiresSameKind(t *testing.T) {
	sys := newTestSystem(t)
	ft := q(t, sys, numeric.Int(6), "", "ft")
	in := q(t, sys, numeric.Int(4), "", "in")

	sum, err := ft.Add(in)
	require.NoError(t, err)
	assert.Equal(t, "ft", sum.Units())
	assert.True(t, sum.Scalar().Equal(numeric.Frac(19, 3)), sum.String())

	diff, err := ft.Sub(in)
	require.NoError(t, err)
	assert.True(t, diff.Scalar().Equal(numeric.Frac(17, 3)))

	_, err = q(t, sys, numeric.One, "", "m").Add(q(t, sys, numeric.One, "", "s"))
	assert.ErrorIs(t, err, quantity.ErrIncompatibleUnits)
}

// TestConvertTo covers exact conversion, idempotence and mismatch.
func TestConvertTo(t *testing.T) {
	sys := newTestSystem(t)
	m := q(t, sys, numeric.One, "", "m")
	ft := q(t, sys, numeric.One, "", "ft")
	in := q(t, sys, numeric.One, "", "in")
	cm := q(t, sys, numeric.One, "c", "m")

	inFeet, err := m.ConvertTo(ft)
	require.NoError(t, err)
	assert.InDelta(t, 3.28084, inFeet.Scalar().Float64(), 0.01)
	assert.True(t, inFeet.Scalar().IsExact())
	assert.Equal(t, "ft", inFeet.Units())

	// convertTo(convertTo(q, u1), u2) == convertTo(q, u2)
	viaInch, err := m.ConvertTo(in)
	require.NoError(t, err)
	twice, err := viaInch.ConvertTo(cm)
	require.NoError(t, err)
	once, err := m.ConvertTo(cm)
	require.NoError(t, err)
	assert.True(t, twice.Scalar().Equal(once.Scalar()))
	assert.True(t, once.Scalar().Equal(numeric.Int(100)))

	_, err = m.ConvertTo(q(t, sys, numeric.One, "", "s"))
	assert.ErrorIs(t, err, quantity.ErrIncompatibleUnits)

	other := newTestSystem(t)
	_, err = m.ConvertTo(q(t, other, numeric.One, "", "m"))
	assert.ErrorIs(t, err, quantity.ErrSystemMismatch)
}

// TestEqualAndCmp compares across units.
func TestEqualAndCmp(t *testing.T) {
	sys := newTestSystem(t)
	assert.True(t, q(t, sys, numeric.Int(1), "k", "m").Equal(q(t, sys, numeric.Int(1000), "", "m")))
	assert.False(t, q(t, sys, numeric.Int(1), "", "m").Equal(q(t, sys, numeric.Int(1), "", "s")))

	c, err := q(t, sys, numeric.One, "", "ft").Cmp(q(t, sys, numeric.Int(11), "", "in"))
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	_, err = q(t, sys, numeric.One, "", "ft").Cmp(q(t, sys, numeric.One, "", "s"))
	assert.ErrorIs(t, err, quantity.ErrIncompatibleUnits)
}

// TestPow covers integer, negative, rational and invalid exponents.
func TestPow(t *testing.T) {
	sys := newTestSystem(t)
	m := q(t, sys, numeric.Int(2), "", "m")

	sq, err := m.Pow(numeric.Int(2))
	require.NoError(t, err)
	assert.Equal(t, "4 m^2", sq.String())

	inv, err := m.Pow(numeric.Int(-1))
	require.NoError(t, err)
	assert.Equal(t, "1/2 1/m", inv.String())

	root, err := sq.Pow(numeric.Frac(1, 2))
	require.NoError(t, err)
	assert.True(t, root.Equal(m))

	half, err := sq.Pow(numeric.FloatOf(0.5))
	require.NoError(t, err)
	assert.True(t, half.Equal(m))

	_, err = m.Pow(numeric.Frac(1, 2))
	assert.ErrorIs(t, err, quantity.ErrInvalidPower)

	_, err = m.Pow(numeric.ComplexOf(1i))
	assert.ErrorIs(t, err, quantity.ErrInvalidPower)

	zero, err := m.Pow(numeric.Zero)
	require.NoError(t, err)
	assert.True(t, zero.IsUnitless())
	assert.True(t, zero.Scalar().Equal(numeric.One))
}

func TestPowLimits(t *testing.T) {
	sys := newTestSystem(t)
	m := q(t, sys, numeric.One, "", "m")
	ms, err := m.Mul(q(t, sys, numeric.One, "", "s"))
	require.NoError(t, err)
	two := quantity.Unitless(sys, numeric.Int(2))

	cases := []struct {
		name string
		base quantity.Quantity
		exp  numeric.Number
	}{
		{"huge positive", m, numeric.Int(99999999999999)},
		{"huge negative", m, numeric.Int(-99999999999999)},
		{"huge unitless", two, numeric.Int(99999999999)},
		{"huge rational", m, numeric.Frac(99999999999999, 2)},
		{"too many factors", ms, numeric.Int(numeric.MaxPower)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.base.Pow(tc.exp)
			assert.ErrorIs(t, err, quantity.ErrInvalidPower)
		})
	}

	wide, err := m.Pow(numeric.Int(quantity.MaxFactors))
	require.NoError(t, err)
	assert.Len(t, wide.Numerator(), quantity.MaxFactors)

	m4, err := m.Pow(numeric.Int(4))
	require.NoError(t, err)
	_, err = m4.Pow(numeric.Frac(numeric.MaxPower, 2))
	assert.ErrorIs(t, err, quantity.ErrInvalidPower)
}

// TestReduce expands derived units into base units.
func TestReduce(t *testing.T) {
	sys := newTestSystem(t)
	n := q(t, sys, numeric.Int(3), "k", "N")
	base, err := n.Reduce()
	require.NoError(t, err)
	assert.Equal(t, "3000 kg*m/s^2", base.String())
	assert.True(t, base.Equal(n))
	assert.Equal(t, n.Signature(), base.Signature())
}

// TestFormat checks the fmt.Formatter hook.
func TestFormat(t *testing.T) {
	sys := newTestSystem(t)
	m := q(t, sys, numeric.One, "", "m")
	ft, err := m.ConvertTo(q(t, sys, numeric.One, "", "ft"))
	require.NoError(t, err)

	assert.Equal(t, "3.28 ft", fmt.Sprintf("%.2f", ft))
	assert.Equal(t, "1 m", fmt.Sprintf("%v", m))
	assert.Equal(t, "   1 m", fmt.Sprintf("%6s", m))
	assert.Equal(t, "1.000000e+00 m", fmt.Sprintf("%e", m))

	u := quantity.Unitless(sys, numeric.Int(7))
	assert.Equal(t, "7", u.String())
	assert.Equal(t, "", u.Units())
}

// TestImmutability ensures operations never alias receiver slices.
func TestImmutability(t *testing.T) {
	sys := newTestSystem(t)
	a := q(t, sys, numeric.One, "", "m")
	b := q(t, sys, numeric.One, "", "s")
	_, err := a.Mul(b)
	require.NoError(t, err)
	_, err = a.Pow(numeric.Int(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"meter"}, a.Numerator())
	assert.Empty(t, a.Denominator())

	nf := a.NumeratorFactors()
	nf[0] = quantity.Factor{}
	assert.Equal(t, "meter", a.NumeratorFactors()[0].Name())
}

// TestNewValidation checks constructor failures.
func TestNewValidation(t *testing.T) {
	_, err := quantity.New(nil, numeric.One, nil, nil)
	assert.ErrorIs(t, err, quantity.ErrNilSystem)

	sys := newTestSystem(t)
	_, err = quantity.New(sys, numeric.One, []quantity.Factor{{}}, nil)
	assert.ErrorIs(t, err, quantity.ErrNilUnit)
}
