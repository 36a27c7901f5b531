// SPDX-License-Identifier: MIT

package quantity

import "errors"

var (
	// ErrIncompatibleUnits indicates operands (or a conversion target) whose
	// signatures differ, e.g. adding meters to seconds.
	ErrIncompatibleUnits = errors.New("quantity: incompatible units")

	// ErrInvalidPower indicates an exponent that would leave a unit factor with
	// a non-integral count, or an exponent that is not a real rational.
	ErrInvalidPower = errors.New("quantity: invalid power")

	// ErrSystemMismatch indicates operands built against different Systems.
	ErrSystemMismatch = errors.New("quantity: operands belong to different unit systems")

	// ErrNilSystem indicates a Quantity constructed without a System.
	ErrNilSystem = errors.New("quantity: nil unit system")

	// ErrNilUnit indicates a Factor without a unit definition.
	ErrNilUnit = errors.New("quantity: factor without unit")
)
