package quantity

import (
	"github.com/katalvlaran/lvunits/numeric"
	"github.com/katalvlaran/lvunits/unitsys"
)

// MaxFactors bounds the number of unit factors Pow may produce.
const MaxFactors = 4096

// Quantity is an immutable scalar with units. The zero value is not usable;
// construct with New or Unitless.
type Quantity struct {
	sys    *unitsys.System
	scalar numeric.Number
	num    []Factor
	den    []Factor

	sig    unitsys.Signature
	factor numeric.Number // product of factor scalars in base units
}

// New builds a Quantity from a scalar and unit factors. Identical factors on
// both sides cancel; every unit is resolved through sys to compute the
// signature.
func New(sys *unitsys.System, scalar numeric.Number, num, den []Factor) (Quantity, error) {
	if sys == nil {
		return Quantity{}, ErrNilSystem
	}
	num, den = cancel(num, den)

	factor := numeric.One
	var baseNum, baseDen []string
	for _, f := range num {
		if f.Unit == nil {
			return Quantity{}, ErrNilUnit
		}
		s, n, d, err := f.reduce(sys)
		if err != nil {
			return Quantity{}, err
		}
		factor = factor.Mul(s)
		baseNum = append(baseNum, n...)
		baseDen = append(baseDen, d...)
	}
	for _, f := range den {
		if f.Unit == nil {
			return Quantity{}, ErrNilUnit
		}
		s, n, d, err := f.reduce(sys)
		if err != nil {
			return Quantity{}, err
		}
		var qerr error
		if factor, qerr = factor.Quo(s); qerr != nil {
			return Quantity{}, qerr
		}
		baseNum = append(baseNum, d...)
		baseDen = append(baseDen, n...)
	}

	return Quantity{
		sys:    sys,
		scalar: scalar,
		num:    num,
		den:    den,
		sig:    unitsys.SignatureOf(baseNum, baseDen),
		factor: factor,
	}, nil
}

// Unitless returns a dimensionless Quantity.
func Unitless(sys *unitsys.System, scalar numeric.Number) Quantity {
	return Quantity{sys: sys, scalar: scalar, factor: numeric.One}
}

// withScalar returns q with a replaced scalar; units and caches are shared
// (they are never mutated).
func (q Quantity) withScalar(s numeric.Number) Quantity {
	q.scalar = s

	return q
}

// System returns the unit system q was built against.
func (q Quantity) System() *unitsys.System { return q.sys }

// Scalar returns the numeric part.
func (q Quantity) Scalar() numeric.Number { return q.scalar }

// Numerator returns the canonical names of the numerator factors
// (e.g. ["kilogram", "meter"]).
func (q Quantity) Numerator() []string { return names(q.num) }

// Denominator returns the canonical names of the denominator factors.
func (q Quantity) Denominator() []string { return names(q.den) }

// NumeratorFactors returns a copy of the numerator factors.
func (q Quantity) NumeratorFactors() []Factor { return append([]Factor(nil), q.num...) }

// DenominatorFactors returns a copy of the denominator factors.
func (q Quantity) DenominatorFactors() []Factor { return append([]Factor(nil), q.den...) }

// Signature returns the reduced base-unit signature.
func (q Quantity) Signature() unitsys.Signature { return q.sig }

// Kind returns the dimension tag registered for q's signature, KindUnitless
// for dimensionless values, "" when the system names no kind for it.
func (q Quantity) Kind() unitsys.Kind {
	if q.sys == nil {
		return unitsys.KindUnitless
	}

	return q.sys.KindOf(q.sig)
}

// IsUnitless reports whether q carries no unit factors at all.
func (q Quantity) IsUnitless() bool { return len(q.num) == 0 && len(q.den) == 0 }

// Compatible reports whether q and other share a system and a signature.
func (q Quantity) Compatible(other Quantity) bool {
	return q.sys == other.sys && q.sig == other.sig
}
