// Package grammar turns quantity text into a parse tree.
//
// Three grammars are provided, all PEG-style recursive-descent parsers that
// either consume the whole input or fail with a *ParseError naming the
// unconsumed remainder. Callers never receive a partial tree.
//
//	Standard — human-oriented text: "1.5 kg*m/s^2", "10,000 m", "1 1/2 in",
//	           "-1-3i rad", "6 ft 4 in", "6' 4\"", "4 lbs 4 oz", "1:23:45".
//	Metric   — the same numeric grammar without thousands separators,
//	           irregular composite forms or time literals.
//	UCUM     — ASCII-only UCUM codes: "m3.kg-1.s-2", "/s", "10*3.g", "mg{rbc}".
//
// Tree shape:
//
//	Node is a sealed sum type. Numeric literals (*Integer, *Decimal,
//	*Rational, *Scientific, *MixedFraction, *Complex, *TimeOfDay) keep their
//	source text; *Unit is one unit atom with optional scalar, prefix and power;
//	*Infix is a left-associative operator chain; *Composite is an irregular
//	two-part form; *TenPower is the UCUM 10*n factor.
//
// Unit names:
//
//	Unit and prefix aliases come from the unitsys.System passed to the
//	constructor and are matched longest-first. At any position a complete
//	unit alias is tried before prefix+unit, and a match must not be followed
//	by a letter, so "mm" is milli+meter while "min" is minute. *Unit nodes
//	carry canonical names, never surface aliases.
//
// Standard and Metric rewrite superscript exponents ("m²" → "m^2") and apply
// Unicode NFKC normalization before parsing; offsets in *ParseError refer to
// the normalized text.
//
// Alternation tables are built once per grammar value on first Parse; a
// grammar is safe for concurrent use.
package grammar
