// Package lvunits parses human-written quantities ("1.5 kg*m/s^2",
// "6 ft 4 in", "kg.m/s2") into dimensionally typed values and performs
// unit-safe arithmetic and conversion on them.
//
// The work is split into small packages, leaves first:
//
//	numeric/   — exact rational, float and complex scalars
//	unitsys/   — unit definitions (base, derived, prefix) and the registry
//	quantity/  — the immutable Quantity and its algebra
//	grammar/   — Standard, Metric and UCUM parsers producing a parse tree
//	transform/ — parse tree → Quantity; evaluator for definition expressions
//	systems/   — the stock "standard", "si" and "ucum" unit systems
//	units/     — Engine and package-level Parse, the usual entry point
//	cmd/lvunits — command-line front end
//
// Quick start:
//
//	q, _ := units.Parse("-1 m/s/s", units.Standard)
//	fmt.Println(q, q.Kind()) // -1 m/s^2 acceleration
//
//	e := units.MustDefault(units.Standard)
//	m, _ := e.Parse("1 m")
//	ft, _ := e.ConvertTo(m, "ft")
//	fmt.Printf("%.2f\n", ft) // 3.28 ft
//
// Conversions between exactly defined units stay exact: 1 m is 1250/381 ft.
// A System is read-only once built and every Quantity is immutable, so both
// may be shared across goroutines.
package lvunits
