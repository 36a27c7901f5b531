package unitsys

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvunits/numeric"
)

// Reduction is a definition (or expression) expressed in base units.
type Reduction struct {
	Scalar      numeric.Number
	Numerator   []string
	Denominator []string
	Kind        Kind
}

// Evaluator turns a definition expression into its base-unit Reduction.
// The System passed in is the one under construction; implementations parse
// expr against it and may call Resolve recursively.
type Evaluator func(sys *System, expr string) (Reduction, error)

// System is a named, read-only registry of definitions produced by a Builder.
// All exported methods are safe for concurrent use once Build has returned.
type System struct {
	name string

	units    map[string]Definition // unit alias → definition
	prefixes map[string]Definition // prefix alias → definition
	byName   map[string]Definition // canonical name → definition (units first)
	order    []Definition          // registration order

	unitAliases   []string // longest-first
	prefixAliases []string // longest-first

	kinds map[Signature]Kind

	eval     Evaluator
	visiting map[string]struct{} // derived units under resolution (Build only)
	logger   *slog.Logger
}

// Name returns the system identifier ("standard", "si", "ucum", ...).
func (s *System) Name() string { return s.name }

// Lookup resolves alias against units first, then prefixes.
func (s *System) Lookup(alias string) (Definition, bool) {
	if d, ok := s.units[alias]; ok {
		return d, true
	}
	d, ok := s.prefixes[alias]

	return d, ok
}

// LookupUnit resolves alias against non-prefix definitions only.
func (s *System) LookupUnit(alias string) (Definition, bool) {
	d, ok := s.units[alias]

	return d, ok
}

// LookupPrefix resolves alias against prefix definitions only.
func (s *System) LookupPrefix(alias string) (Definition, bool) {
	d, ok := s.prefixes[alias]

	return d, ok
}

// ByName resolves a canonical name (not an alias).
func (s *System) ByName(name string) (Definition, bool) {
	d, ok := s.byName[name]

	return d, ok
}

// Definitions returns every definition in registration order.
func (s *System) Definitions() []Definition {
	return append([]Definition(nil), s.order...)
}

// Units returns all non-prefix definitions in registration order.
func (s *System) Units() []Definition {
	out := make([]Definition, 0, len(s.order))
	for _, d := range s.order {
		if !d.IsPrefix() {
			out = append(out, d)
		}
	}

	return out
}

// Prefixes returns all prefix definitions in registration order.
func (s *System) Prefixes() []Definition {
	out := make([]Definition, 0)
	for _, d := range s.order {
		if d.IsPrefix() {
			out = append(out, d)
		}
	}

	return out
}

// UnitAliases returns every unit alias, longest first.
func (s *System) UnitAliases() []string { return append([]string(nil), s.unitAliases...) }

// PrefixAliases returns every prefix alias, longest first.
func (s *System) PrefixAliases() []string { return append([]string(nil), s.prefixAliases...) }

// KindOf returns the kind registered for sig: KindUnitless for the empty
// signature, "" when no definition claims it.
func (s *System) KindOf(sig Signature) Kind {
	if sig.IsDimensionless() {
		return KindUnitless
	}

	return s.kinds[sig]
}

// Resolve returns d in base units. Base and Prefix definitions resolve
// trivially; Derived units are evaluated once and memoized. Re-entering a
// unit that is still being resolved yields ErrCyclicDefinition. An
// unresolved Derived that is not registered in s yields ErrUnknownUnit.
func (s *System) Resolve(d Definition) (Reduction, error) {
	dd, ok := d.(*Derived)
	if !ok || dd.resolved {
		return Reduction{
			Scalar:      d.Scalar(),
			Numerator:   d.Numerator(),
			Denominator: d.Denominator(),
			Kind:        d.Kind(),
		}, nil
	}

	if s.byName[dd.name] != dd {
		return Reduction{}, configErrorf(dd.name, ErrUnknownUnit, "not registered in system %q", s.name)
	}
	if s.eval == nil {
		return Reduction{}, configErrorf(dd.name, ErrNoEvaluator, "cannot evaluate %q", dd.expr)
	}
	if _, busy := s.visiting[dd.name]; busy {
		return Reduction{}, configErrorf(dd.name, ErrCyclicDefinition, "definition %q re-enters itself", dd.expr)
	}
	if s.visiting == nil {
		s.visiting = make(map[string]struct{})
	}
	s.visiting[dd.name] = struct{}{}
	defer delete(s.visiting, dd.name)

	red, err := s.eval(s, dd.expr)
	if err != nil {
		return Reduction{}, fmt.Errorf("unitsys: resolve %q: %w", dd.name, err)
	}

	dd.scalar = red.Scalar
	dd.numerator = red.Numerator
	dd.denominator = red.Denominator
	dd.resolved = true
	s.logger.Debug("resolved derived unit",
		"system", s.name,
		"unit", dd.name,
		"definition", dd.expr,
		"scalar", red.Scalar.String())

	return s.Resolve(dd)
}
