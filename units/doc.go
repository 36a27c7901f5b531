// Package units is the entry point of lvunits: it binds a unit system to one
// of the three grammars and turns text into quantities.
//
//	q, err := units.Parse("1.5 kg*m/s^2", units.Standard)
//	lbf, err := units.MustDefault(units.Standard).ConvertTo(q, "lbf")
//
// Variants:
//
//	Standard — the full literal set (separators, rationals, mixed fractions,
//	           scientific and complex numbers), implicit multiplication,
//	           feet-inches / pounds-ounces / stone-pounds and "h:mm:ss".
//	Metric   — the same numbers without separators or irregular forms,
//	           over the SI vocabulary.
//	UCUM     — ASCII unit codes: "kg.m/s2", "10*3.g", "mg{rbc}".
//
// An Engine is immutable once built and safe for concurrent use. The stock
// engines returned by Default are built lazily, once per variant.
package units
