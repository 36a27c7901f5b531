package numeric

import (
	"fmt"
	"math"
	"math/big"
	"math/cmplx"
)

// promote returns the widest form of a and b (Exact < Float < Complex).
func promote(a, b Number) Form {
	if a.form > b.form {
		return a.form
	}

	return b.form
}

// Add returns a + b.
func (n Number) Add(m Number) Number {
	switch promote(n, m) {
	case Exact:
		return Number{form: Exact, r: new(big.Rat).Add(n.rat(), m.rat())}
	case Float:
		return FloatOf(n.Float64() + m.Float64())
	default:
		return ComplexOf(n.Complex128() + m.Complex128())
	}
}

// Sub returns n - m.
func (n Number) Sub(m Number) Number {
	return n.Add(m.Neg())
}

// Mul returns n × m.
func (n Number) Mul(m Number) Number {
	switch promote(n, m) {
	case Exact:
		return Number{form: Exact, r: new(big.Rat).Mul(n.rat(), m.rat())}
	case Float:
		return FloatOf(n.Float64() * m.Float64())
	default:
		return ComplexOf(n.Complex128() * m.Complex128())
	}
}

// Quo returns n ÷ m, or ErrDivisionByZero when m is zero in any form.
func (n Number) Quo(m Number) (Number, error) {
	if m.IsZero() {
		return Zero, ErrDivisionByZero
	}
	switch promote(n, m) {
	case Exact:
		return Number{form: Exact, r: new(big.Rat).Quo(n.rat(), m.rat())}, nil
	case Float:
		return FloatOf(n.Float64() / m.Float64()), nil
	default:
		return ComplexOf(n.Complex128() / m.Complex128()), nil
	}
}

// Neg returns -n.
func (n Number) Neg() Number {
	switch n.form {
	case Exact:
		return Number{form: Exact, r: new(big.Rat).Neg(n.rat())}
	case Float:
		return FloatOf(-n.f)
	default:
		return ComplexOf(-n.c)
	}
}

// Abs returns |n|. The modulus of a complex value is a Float.
func (n Number) Abs() Number {
	switch n.form {
	case Exact:
		return Number{form: Exact, r: new(big.Rat).Abs(n.rat())}
	case Float:
		return FloatOf(math.Abs(n.f))
	default:
		return FloatOf(cmplx.Abs(n.c))
	}
}

// MaxPower bounds the exponents PowInt and PowRat accept.
const MaxPower = 4096

// maxPower is MaxPower as a big.Int for CmpAbs.
var maxPower = big.NewInt(MaxPower)

// PowInt returns n raised to the integer power e. Exact values stay exact.
// A negative power of zero yields ErrDivisionByZero; |e| > MaxPower yields
// ErrPowerRange.
func (n Number) PowInt(e int) (Number, error) {
	if e > MaxPower || e < -MaxPower {
		return Zero, fmt.Errorf("%w: %d", ErrPowerRange, e)
	}
	if e < 0 && n.IsZero() {
		return Zero, ErrDivisionByZero
	}
	switch n.form {
	case Exact:
		r := n.rat()
		k := big.NewInt(int64(e))
		if e < 0 {
			k.Neg(k)
		}
		num := new(big.Int).Exp(r.Num(), k, nil)
		den := new(big.Int).Exp(r.Denom(), k, nil)
		if e < 0 {
			num, den = den, num
		}

		return Number{form: Exact, r: new(big.Rat).SetFrac(num, den)}, nil
	case Float:
		return FloatOf(math.Pow(n.f, float64(e))), nil
	default:
		return ComplexOf(cmplx.Pow(n.c, complex(float64(e), 0))), nil
	}
}

// PowRat returns n raised to the rational power p.
//
// Exact bases stay exact when the root is perfect (e.g. (9/4)^(1/2) = 3/2)
// and the root degree is at most MaxPower; otherwise the result falls back to
// Float. A numerator beyond MaxPower yields ErrPowerRange. Even roots of negative real
// values return ErrNotReal; complex bases use the principal value.
func (n Number) PowRat(p *big.Rat) (Number, error) {
	if p.Num().CmpAbs(maxPower) > 0 {
		return Zero, fmt.Errorf("%w: %s", ErrPowerRange, p)
	}
	if p.IsInt() {
		return n.PowInt(int(p.Num().Int64()))
	}
	if n.form == Complex {
		pf, _ := p.Float64()

		return ComplexOf(cmplx.Pow(n.c, complex(pf, 0))), nil
	}

	q := p.Denom()
	evenRoot := q.Bit(0) == 0
	if n.Sign() < 0 && evenRoot {
		return Zero, fmt.Errorf("%w: even root of negative value %s", ErrNotReal, n)
	}
	if n.IsZero() {
		if p.Sign() < 0 {
			return Zero, ErrDivisionByZero
		}

		return n, nil
	}

	// exact path: root the numerator and denominator separately
	if n.form == Exact && q.CmpAbs(maxPower) <= 0 {
		k := int(q.Int64())
		r := n.rat()
		if rn, ok := intRoot(r.Num(), k); ok {
			if rd, ok := intRoot(r.Denom(), k); ok {
				root := FromRat(new(big.Rat).SetFrac(rn, rd))
				pn := p.Num()
				if pn.IsInt64() {
					return root.PowInt(int(pn.Int64()))
				}
			}
		}
	}

	pf, _ := p.Float64()
	base := n.Float64()
	if base < 0 {
		// odd root of a negative value
		return FloatOf(-math.Pow(-base, pf)), nil
	}

	return FloatOf(math.Pow(base, pf)), nil
}

// intRoot returns the exact k-th root of x when one exists.
// Negative x is accepted for odd k.
func intRoot(x *big.Int, k int) (*big.Int, bool) {
	if k <= 0 {
		return nil, false
	}
	neg := x.Sign() < 0
	if neg && k%2 == 0 {
		return nil, false
	}
	ax := new(big.Int).Abs(x)
	if k == 2 {
		r := new(big.Int).Sqrt(ax)
		if new(big.Int).Mul(r, r).Cmp(ax) != 0 {
			return nil, false
		}
		if neg {
			r.Neg(r)
		}

		return r, true
	}

	f, _ := new(big.Float).SetInt(ax).Float64()
	if math.IsInf(f, 0) {
		return nil, false
	}
	guess := int64(math.Round(math.Pow(f, 1/float64(k))))
	kk := big.NewInt(int64(k))
	for c := guess - 1; c <= guess+1; c++ {
		if c < 0 {
			continue
		}
		r := big.NewInt(c)
		if new(big.Int).Exp(r, kk, nil).Cmp(ax) == 0 {
			if neg {
				r.Neg(r)
			}

			return r, true
		}
	}

	return nil, false
}

// Equal reports whether n and m denote the same value. Exact operands are
// compared exactly; otherwise DefaultEpsilon applies (relative).
func (n Number) Equal(m Number) bool {
	switch promote(n, m) {
	case Exact:
		return n.rat().Cmp(m.rat()) == 0
	case Float:
		return nearlyEqual(n.Float64(), m.Float64())
	default:
		a, b := n.Complex128(), m.Complex128()

		return nearlyEqual(real(a), real(b)) && nearlyEqual(imag(a), imag(b))
	}
}

// Cmp returns -1, 0 or +1 ordering n against m. Values within
// DefaultEpsilon compare equal. Complex operands yield ErrNotReal.
func (n Number) Cmp(m Number) (int, error) {
	switch promote(n, m) {
	case Exact:
		return n.rat().Cmp(m.rat()), nil
	case Float:
		a, b := n.Float64(), m.Float64()
		switch {
		case nearlyEqual(a, b):
			return 0, nil
		case a < b:
			return -1, nil
		default:
			return 1, nil
		}
	default:
		return 0, ErrNotReal
	}
}

// nearlyEqual compares with a relative tolerance, falling back to an
// absolute one around zero.
func nearlyEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		return diff <= DefaultEpsilon
	}

	return diff <= DefaultEpsilon*scale
}
