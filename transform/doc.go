// Package transform reduces grammar parse trees to quantity values.
//
// A Transformer is a pure function of the tree plus the unit system it was
// built with. It switches exhaustively over the grammar.Node variants:
//
//	*Integer        separators stripped, exact
//	*Decimal        separators stripped, float64
//	*Rational       exact a/b
//	*Scientific     exact when the mantissa is an integer, float64 otherwise
//	*MixedFraction  sign(whole) × (|whole| + b/c), exact
//	*Complex        complex128
//	*TimeOfDay      hours + minutes + seconds, expressed in hours
//	*Unit           scalar × (prefix·unit)^power
//	*Infix          left-to-right Mul / Div
//	*Composite      major + minor (major − minor when major is negative)
//	*TenPower       exact 10^n
//
// Every exponent (scientific, ten-power, "^") is limited to
// ±numeric.MaxPower; larger ones fail with ErrExponentRange.
//
// NewEvaluator adapts a grammar and a Transformer into the unitsys.Evaluator
// that resolves derived-unit definition expressions while a System is built.
package transform
