package quantity

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvunits/numeric"
	"github.com/katalvlaran/lvunits/unitsys"
)

func (q Quantity) sameSystem(other Quantity) error {
	if q.sys != other.sys {
		return ErrSystemMismatch
	}

	return nil
}

func (q Quantity) incompatible(other Quantity) error {
	return fmt.Errorf("%w: %q (%s) vs %q (%s)", ErrIncompatibleUnits,
		q.Units(), q.Kind(), other.Units(), other.Kind())
}

// Mul returns q × other. Numerators and denominators are concatenated and
// identical factors cancel.
func (q Quantity) Mul(other Quantity) (Quantity, error) {
	if err := q.sameSystem(other); err != nil {
		return Quantity{}, err
	}

	return New(q.sys, q.scalar.Mul(other.scalar),
		concat(q.num, other.num), concat(q.den, other.den))
}

// Div returns q ÷ other: Mul with other's numerator and denominator swapped.
func (q Quantity) Div(other Quantity) (Quantity, error) {
	if err := q.sameSystem(other); err != nil {
		return Quantity{}, err
	}
	s, err := q.scalar.Quo(other.scalar)
	if err != nil {
		return Quantity{}, err
	}

	return New(q.sys, s, concat(q.num, other.den), concat(q.den, other.num))
}

// Inverse returns 1/q.
func (q Quantity) Inverse() (Quantity, error) {
	return Unitless(q.sys, numeric.One).Div(q)
}

// Neg returns -q.
func (q Quantity) Neg() Quantity {
	return q.withScalar(q.scalar.Neg())
}

// Add returns q + other expressed in q's units. other is converted first;
// differing signatures yield ErrIncompatibleUnits.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	conv, err := other.ConvertTo(q)
	if err != nil {
		return Quantity{}, err
	}

	return q.withScalar(q.scalar.Add(conv.scalar)), nil
}

// Sub returns q - other expressed in q's units.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	conv, err := other.ConvertTo(q)
	if err != nil {
		return Quantity{}, err
	}

	return q.withScalar(q.scalar.Sub(conv.scalar)), nil
}

// ConvertTo re-expresses q in target's units; target's scalar is ignored.
// The factor is (q's unit scalar in base units) ÷ (target's), so exact unit
// definitions give exact conversions.
func (q Quantity) ConvertTo(target Quantity) (Quantity, error) {
	if err := q.sameSystem(target); err != nil {
		return Quantity{}, err
	}
	if q.sig != target.sig {
		return Quantity{}, q.incompatible(target)
	}

	ratio, err := q.factor.Quo(target.factor)
	if err != nil {
		return Quantity{}, err
	}

	out := target
	out.scalar = q.scalar.Mul(ratio)

	return out, nil
}

// Reduce re-expresses q purely in base units.
func (q Quantity) Reduce() (Quantity, error) {
	var baseNum, baseDen []string
	for _, f := range q.num {
		_, n, d, err := f.reduce(q.sys)
		if err != nil {
			return Quantity{}, err
		}
		baseNum = append(baseNum, n...)
		baseDen = append(baseDen, d...)
	}
	for _, f := range q.den {
		_, n, d, err := f.reduce(q.sys)
		if err != nil {
			return Quantity{}, err
		}
		baseNum = append(baseNum, d...)
		baseDen = append(baseDen, n...)
	}

	num, err := q.baseFactors(baseNum)
	if err != nil {
		return Quantity{}, err
	}
	den, err := q.baseFactors(baseDen)
	if err != nil {
		return Quantity{}, err
	}

	return New(q.sys, q.scalar.Mul(q.factor), num, den)
}

func (q Quantity) baseFactors(names []string) ([]Factor, error) {
	out := make([]Factor, 0, len(names))
	for _, n := range names {
		d, ok := q.sys.ByName(n)
		if !ok {
			return nil, fmt.Errorf("%w: base unit %q", unitsys.ErrUnknownUnit, n)
		}
		out = append(out, Of(d))
	}

	return out, nil
}

// Equal reports whether q and other have the same kind and, after
// conversion to q's units, equal scalars.
func (q Quantity) Equal(other Quantity) bool {
	conv, err := other.ConvertTo(q)
	if err != nil {
		return false
	}

	return q.scalar.Equal(conv.scalar)
}

// Cmp orders q against other after converting other into q's units.
func (q Quantity) Cmp(other Quantity) (int, error) {
	conv, err := other.ConvertTo(q)
	if err != nil {
		return 0, err
	}

	return q.scalar.Cmp(conv.scalar)
}

// Pow raises q to the power p.
//
// Integer powers repeat the factors (negative powers invert first).
// A rational power a/b is accepted only if every factor's net count times a
// is divisible by b, e.g. (m^2)^(1/2) = m but (m^3)^(1/2) fails with
// ErrInvalidPower. Complex exponents are rejected, as are exponents whose
// numerator exceeds numeric.MaxPower and results with more than MaxFactors
// unit factors.
func (q Quantity) Pow(p numeric.Number) (Quantity, error) {
	r, ok := p.ToRat()
	if !ok {
		return Quantity{}, fmt.Errorf("%w: exponent %s is not a real rational", ErrInvalidPower, p)
	}
	if r.Num().CmpAbs(big.NewInt(numeric.MaxPower)) > 0 {
		return Quantity{}, fmt.Errorf("%w: exponent %s out of range", ErrInvalidPower, r)
	}

	if r.IsInt() {
		n := int(r.Num().Int64())
		count := n
		if count < 0 {
			count = -count
		}
		if count*(len(q.num)+len(q.den)) > MaxFactors {
			return Quantity{}, fmt.Errorf("%w: %s^%d exceeds %d unit factors", ErrInvalidPower, q.Units(), n, MaxFactors)
		}
		s, err := q.scalar.PowInt(n)
		if err != nil {
			return Quantity{}, err
		}
		if n < 0 {
			return New(q.sys, s, repeat(q.den, -n), repeat(q.num, -n))
		}

		return New(q.sys, s, repeat(q.num, n), repeat(q.den, n))
	}

	num, den, err := rootFactors(q.num, q.den, r)
	if err != nil {
		return Quantity{}, err
	}
	s, err := q.scalar.PowRat(r)
	if err != nil {
		return Quantity{}, err
	}

	return New(q.sys, s, num, den)
}

// rootFactors applies the rational exponent r to every grouped factor.
func rootFactors(num, den []Factor, r *big.Rat) ([]Factor, []Factor, error) {
	a := r.Num()
	b := r.Denom()

	type netFactor struct {
		f   Factor
		exp int64
	}
	var nets []netFactor
	for _, g := range group(num) {
		nets = append(nets, netFactor{g.factor, int64(g.count)})
	}
	for _, g := range group(den) {
		nets = append(nets, netFactor{g.factor, -int64(g.count)})
	}

	var outNum, outDen []Factor
	total := int64(0)
	for _, nf := range nets {
		scaled := new(big.Int).Mul(big.NewInt(nf.exp), a)
		quo, rem := new(big.Int).QuoRem(scaled, b, new(big.Int))
		if rem.Sign() != 0 || !quo.IsInt64() {
			return nil, nil, fmt.Errorf("%w: %s^%d cannot be raised to %s", ErrInvalidPower, nf.f.Symbol(), nf.exp, r)
		}
		e := quo.Int64()
		if total += abs64(e); total > MaxFactors {
			return nil, nil, fmt.Errorf("%w: raising to %s exceeds %d unit factors", ErrInvalidPower, r, MaxFactors)
		}
		one := []Factor{nf.f}
		switch {
		case e > 0:
			outNum = append(outNum, repeat(one, int(e))...)
		case e < 0:
			outDen = append(outDen, repeat(one, int(-e))...)
		}
	}

	return outNum, outDen, nil
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

func concat(a, b []Factor) []Factor {
	out := make([]Factor, 0, len(a)+len(b))
	out = append(out, a...)

	return append(out, b...)
}
