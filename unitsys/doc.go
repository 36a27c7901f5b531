// Package unitsys defines unit definitions and the unit-system registry that
// every grammar, transformer and quantity resolves symbols against.
//
// Definition model:
//
//	Base     — a fundamental unit (meter, kilogram, second, …). Scalar is 1 and
//	           the unit reduces to itself.
//	Prefix   — a multiplicative modifier (kilo = 10^3, kibi = 2^10). Kind is
//	           always KindPrefix.
//	Derived  — a unit expressed either explicitly (scalar + base numerator /
//	           denominator) or by a definition expression ("12 in") that is
//	           evaluated once, on first resolution, and memoized.
//
// Registry lifecycle:
//
//	b := unitsys.NewBuilder("standard")
//	_ = b.Base("meter", "length", unitsys.WithAliases("m", "meters"))
//	_ = b.Prefix("kilo", numeric.Int(1000), unitsys.WithAliases("k"))
//	_ = b.Derived("foot", unitsys.WithDefinition("0.3048 m"), unitsys.WithAliases("ft"))
//	sys, err := b.Build(evaluator)
//
// Registration fails immediately on alias collisions. Build installs the
// Evaluator, resolves every Derived unit (cycles are reported as
// ErrCyclicDefinition, never as stack exhaustion) and returns a System that is
// read-only from then on, so any number of goroutines may share it.
//
// Alias namespaces:
//
//	Unit aliases and prefix aliases live in separate namespaces because SI
//	legitimately reuses symbols across them ("m" is both meter and milli).
//	Within one namespace an alias maps to exactly one canonical definition.
//
// Longest-alias-first:
//
//	UnitAliases and PrefixAliases are sorted by descending length, then
//	lexically. Grammars compile them into ordered alternations in that order so
//	"min" is tried before "m"; this ordering is a correctness requirement.
//
// Definition documents:
//
//	Extra units can be declared in YAML and applied onto a Builder with
//	ApplyDocument, LoadYAML or LoadFiles (doublestar globs such as
//	"defs/**/*.yaml").
package unitsys
