package numeric

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// DefaultEpsilon is the relative tolerance used by Equal and Cmp whenever a
// Float or Complex operand is involved.
const DefaultEpsilon = 1e-12

// Form tags the representation of a Number.
type Form uint8

const (
	// Exact numbers are arbitrary-precision rationals.
	Exact Form = iota
	// Float numbers are float64 values.
	Float
	// Complex numbers are complex128 values.
	Complex
)

// String returns the lower-case form name.
func (f Form) String() string {
	switch f {
	case Exact:
		return "exact"
	case Float:
		return "float"
	case Complex:
		return "complex"
	default:
		return "unknown"
	}
}

// Number is an immutable scalar. The zero value is the exact number 0.
type Number struct {
	form Form
	r    *big.Rat // Exact only; never mutated once stored
	f    float64
	c    complex128
}

var (
	// Zero is the exact number 0.
	Zero = Int(0)
	// One is the exact number 1.
	One = Int(1)
)

// Int returns the exact integer i.
func Int(i int64) Number {
	return Number{form: Exact, r: new(big.Rat).SetInt64(i)}
}

// Frac returns the exact fraction num/den.
// Panics if den == 0 (programmer error; use Quo for runtime division).
func Frac(num, den int64) Number {
	if den == 0 {
		panic("numeric: Frac: zero denominator")
	}

	return Number{form: Exact, r: big.NewRat(num, den)}
}

// FromRat returns an exact Number holding a copy of r. A nil r yields Zero.
func FromRat(r *big.Rat) Number {
	if r == nil {
		return Zero
	}

	return Number{form: Exact, r: new(big.Rat).Set(r)}
}

// FromInt returns an exact Number holding a copy of i.
func FromInt(i *big.Int) Number {
	return Number{form: Exact, r: new(big.Rat).SetInt(i)}
}

// FloatOf returns the floating number f.
func FloatOf(f float64) Number {
	return Number{form: Float, f: f}
}

// ComplexOf returns the complex number c.
func ComplexOf(c complex128) Number {
	return Number{form: Complex, c: c}
}

// ParseExact parses an integer ("42", "-7"), fraction ("3/4") or finite
// decimal ("0.3048") into an exact Number.
func ParseExact(s string) (Number, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return Zero, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	return Number{form: Exact, r: r}, nil
}

// Form reports the representation of n.
func (n Number) Form() Form { return n.form }

// IsExact reports whether n is an exact rational.
func (n Number) IsExact() bool { return n.form == Exact }

// IsComplex reports whether n is a complex value.
func (n Number) IsComplex() bool { return n.form == Complex }

// rat returns the stored rational, treating nil as zero. Callers must not
// mutate the result.
func (n Number) rat() *big.Rat {
	if n.r == nil {
		return new(big.Rat)
	}

	return n.r
}

// Rat returns a copy of the exact value. ok is false for Float and Complex.
func (n Number) Rat() (r *big.Rat, ok bool) {
	if n.form != Exact {
		return nil, false
	}

	return new(big.Rat).Set(n.rat()), true
}

// Float64 returns n as a float64. Complex values yield their real part.
func (n Number) Float64() float64 {
	switch n.form {
	case Exact:
		f, _ := n.rat().Float64()

		return f
	case Float:
		return n.f
	default:
		return real(n.c)
	}
}

// Complex128 returns n as a complex128.
func (n Number) Complex128() complex128 {
	if n.form == Complex {
		return n.c
	}

	return complex(n.Float64(), 0)
}

// IsZero reports whether n equals zero.
func (n Number) IsZero() bool {
	switch n.form {
	case Exact:
		return n.rat().Sign() == 0
	case Float:
		return n.f == 0
	default:
		return n.c == 0
	}
}

// IsInteger reports whether n is a real value without a fractional part.
func (n Number) IsInteger() bool {
	switch n.form {
	case Exact:
		return n.rat().IsInt()
	case Float:
		return !math.IsInf(n.f, 0) && n.f == math.Trunc(n.f)
	default:
		return false
	}
}

// Sign returns -1, 0 or +1 for real values; complex values report the sign
// of their real part.
func (n Number) Sign() int {
	switch n.form {
	case Exact:
		return n.rat().Sign()
	default:
		f := n.Float64()
		switch {
		case f < 0:
			return -1
		case f > 0:
			return 1
		}

		return 0
	}
}

// ToRat converts a real n into a rational. Floats go through their shortest
// decimal representation so 0.5 → 1/2 and 0.1 → 1/10. Complex, NaN and
// infinite values yield ok=false.
func (n Number) ToRat() (r *big.Rat, ok bool) {
	switch n.form {
	case Exact:
		return new(big.Rat).Set(n.rat()), true
	case Float:
		if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
			return nil, false
		}

		return new(big.Rat).SetString(strconv.FormatFloat(n.f, 'g', -1, 64))
	default:
		return nil, false
	}
}

// String renders n so that the Standard grammar can read it back:
// exact integers "10000", fractions "1/2", floats in shortest 'g' form,
// complex values as "-1-3i".
func (n Number) String() string {
	switch n.form {
	case Exact:
		r := n.rat()
		if r.IsInt() {
			return r.Num().String()
		}

		return r.String()
	case Float:
		return formatFloat(n.f)
	default:
		re, im := real(n.c), imag(n.c)
		sign := "+"
		if im < 0 || (im == 0 && math.Signbit(im)) {
			sign = "-"
			im = -im
		}

		return formatFloat(re) + sign + formatFloat(im) + "i"
	}
}

// Text renders n with a strconv float verb ('f', 'e', 'g') and precision.
// Exact integers with verb 'v' keep their exact rendering.
func (n Number) Text(verb byte, prec int) string {
	if verb == 'v' {
		return n.String()
	}
	if n.form == Complex {
		re, im := real(n.c), imag(n.c)
		sign := "+"
		if im < 0 {
			sign = "-"
			im = -im
		}

		return strconv.FormatFloat(re, verb, prec, 64) + sign + strconv.FormatFloat(im, verb, prec, 64) + "i"
	}

	return strconv.FormatFloat(n.Float64(), verb, prec, 64)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
