// Package quantity implements the unit algebra: an immutable Quantity value
// (scalar × product of unit factors) with composition, cancellation, kind
// inference, conversion and comparison.
//
// Representation:
//
//	Quantity{scalar, numerator []Factor, denominator []Factor}
//
// A Factor is an optional prefix applied to a unit definition ("kilo"+"gram").
// Identical factors appearing on both sides cancel pairwise, so m/m is
// dimensionless while km/m is not (it reduces to the dimensionless ratio
// 1000 only after conversion).
//
// Kind inference:
//
//	Every factor is reduced to base units through its System; the resulting
//	base-unit multiset forms the Signature. Equal signatures ⇔ same kind ⇔
//	convertible. Add, Sub, ConvertTo, Equal and Cmp reject mismatched
//	signatures with ErrIncompatibleUnits; nothing is coerced silently.
//
// Exactness:
//
//	Scalars are numeric.Number values; when the literal, every prefix and every
//	unit scalar are exact, conversions stay exact (1 ft → 381/1250 m).
//
// All operations return new values and never mutate their receivers, so
// Quantities are safe to share across goroutines.
package quantity
