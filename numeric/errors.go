// SPDX-License-Identifier: MIT

package numeric

import "errors"

var (
	// ErrDivisionByZero is returned by Quo and by negative powers of zero.
	ErrDivisionByZero = errors.New("numeric: division by zero")

	// ErrNotReal is returned when an operation needs a real operand (Cmp,
	// even roots of negative values) but received a complex or negative one.
	ErrNotReal = errors.New("numeric: value is not real")

	// ErrSyntax is returned by ParseExact for malformed literals.
	ErrSyntax = errors.New("numeric: invalid number syntax")

	// ErrPowerRange is returned by PowInt and PowRat when the exponent's
	// magnitude (the numerator, for PowRat) exceeds MaxPower.
	ErrPowerRange = errors.New("numeric: exponent out of range")
)
