// Package numeric provides the scalar type carried by every quantity.
//
// A Number is an immutable value in one of three forms:
//
//	Exact   — an arbitrary-precision rational (math/big.Rat). Integers are
//	          rationals with denominator 1.
//	Float   — an IEEE-754 float64, produced by decimal literals and by any
//	          arithmetic that touches a float.
//	Complex — a complex128, produced by complex literals ("1+2i").
//
// Promotion rule (single source of truth):
//
//	Exact ⊕ Exact   → Exact
//	Exact ⊕ Float   → Float
//	any   ⊕ Complex → Complex
//
// Exactness is therefore preserved end-to-end whenever every operand of a
// computation (literals, prefix multipliers, unit scalars) is exact, which is
// what makes "1 m → cm → m" round-trips lossless.
//
// Equality:
//
//	Exact values compare exactly. As soon as a Float or Complex is involved the
//	comparison uses a relative tolerance of DefaultEpsilon.
//
// Every operation returns a new Number; receivers are never mutated, so values
// may be shared freely across goroutines.
package numeric
