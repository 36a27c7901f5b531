// SPDX-License-Identifier: MIT
// Package: lvunits/unitsys
//
// builder.go — the declarative registry builder.
//
// Design:
//   • Registration is append-only and validated immediately (alias collisions
//     fail at the call site, not at Build).
//   • Build runs in four deterministic stages:
//       1) index base-unit kinds,
//       2) canonicalize explicit Derived bases (must name Base units),
//       3) resolve every expression-defined Derived unit (memoized, cycle-safe),
//       4) index explicit derived kinds, then infer the remaining kinds.
//   • After Build the Builder is frozen and the System is read-only.

package unitsys

import (
	"log/slog"

	"github.com/katalvlaran/lvunits/numeric"
)

// Builder accumulates definitions for one System.
type Builder struct {
	name   string
	sys    *System
	built  bool
	logger *slog.Logger
}

// NewBuilder starts an empty registry named name.
func NewBuilder(name string, opts ...BuilderOption) *Builder {
	b := &Builder{name: name, logger: discardLogger()}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	b.sys = &System{
		name:     name,
		units:    make(map[string]Definition),
		prefixes: make(map[string]Definition),
		byName:   make(map[string]Definition),
		kinds:    make(map[Signature]Kind),
		logger:   b.logger,
	}

	return b
}

// Name returns the system identifier being built.
func (b *Builder) Name() string { return b.name }

// Register adds d to the registry. It fails with ErrDuplicateAlias when any
// alias of d is already claimed by a different definition in the same
// namespace (prefix aliases and unit aliases are separate namespaces).
// Registering the very same definition twice is a no-op.
func (b *Builder) Register(d Definition) error {
	if b.built {
		return configErrorf(d.Name(), ErrFrozen, "register after Build")
	}

	table := b.sys.units
	if d.IsPrefix() {
		table = b.sys.prefixes
	}
	for _, a := range d.Aliases() {
		if prev, ok := table[a]; ok && prev.Name() != d.Name() {
			return configErrorf(d.Name(), ErrDuplicateAlias, "alias %q already claimed by %q", a, prev.Name())
		}
	}
	if prev, ok := table[d.Name()]; ok {
		if prev == d {
			return nil
		}

		return configErrorf(d.Name(), ErrDuplicateAlias, "canonical name already registered")
	}

	for _, a := range d.Aliases() {
		table[a] = d
	}
	if _, taken := b.sys.byName[d.Name()]; !taken || !d.IsPrefix() {
		b.sys.byName[d.Name()] = d
	}
	b.sys.order = append(b.sys.order, d)

	return nil
}

// Base constructs and registers a Base unit.
func (b *Builder) Base(name string, kind Kind, opts ...Option) error {
	d, err := NewBase(name, kind, opts...)
	if err != nil {
		return err
	}

	return b.Register(d)
}

// Prefix constructs and registers a Prefix.
func (b *Builder) Prefix(name string, scalar numeric.Number, opts ...Option) error {
	d, err := NewPrefix(name, scalar, opts...)
	if err != nil {
		return err
	}

	return b.Register(d)
}

// Derived constructs and registers a Derived unit.
func (b *Builder) Derived(name string, opts ...Option) error {
	d, err := NewDerived(name, opts...)
	if err != nil {
		return err
	}

	return b.Register(d)
}

// Build freezes the registry, installs eval and resolves every Derived unit.
// eval may be nil when no unit uses a definition expression.
func (b *Builder) Build(eval Evaluator) (*System, error) {
	if b.built {
		return nil, configErrorf(b.name, ErrFrozen, "Build called twice")
	}
	b.built = true

	sys := b.sys
	sys.eval = eval
	sys.unitAliases = SortAliases(keys(sys.units))
	sys.prefixAliases = SortAliases(keys(sys.prefixes))

	// Stage 1: base kinds.
	for _, d := range sys.order {
		if d.IsBase() {
			sig := SignatureOf(d.Numerator(), nil)
			if _, ok := sys.kinds[sig]; !ok {
				sys.kinds[sig] = d.Kind()
			}
		}
	}

	// Stage 2: explicit bases must reference Base units.
	var derived []*Derived
	for _, d := range sys.order {
		dd, ok := d.(*Derived)
		if !ok {
			continue
		}
		derived = append(derived, dd)
		if dd.expr != "" {
			continue
		}
		num, err := b.canonicalBases(dd, dd.numerator)
		if err != nil {
			return nil, err
		}
		den, err := b.canonicalBases(dd, dd.denominator)
		if err != nil {
			return nil, err
		}
		dd.numerator, dd.denominator = num, den
		dd.resolved = true
	}

	// Stage 3: expression-defined units, in registration order.
	for _, dd := range derived {
		if _, err := sys.Resolve(dd); err != nil {
			return nil, err
		}
	}

	// Stage 4: kinds. Explicit kinds claim their signature first.
	for _, dd := range derived {
		if dd.explicitKind == "" {
			continue
		}
		sig := SignatureOf(dd.numerator, dd.denominator)
		if _, ok := sys.kinds[sig]; !ok && !sig.IsDimensionless() {
			sys.kinds[sig] = dd.explicitKind
		}
	}
	for _, dd := range derived {
		if dd.explicitKind == "" {
			dd.kind = sys.KindOf(SignatureOf(dd.numerator, dd.denominator))
		}
	}

	b.logger.Debug("unit system built",
		"system", sys.name,
		"units", len(sys.units),
		"prefixes", len(sys.prefixes),
		"kinds", len(sys.kinds))

	return sys, nil
}

// canonicalBases maps every entry of names (alias or canonical) to the
// canonical name of a Base unit.
func (b *Builder) canonicalBases(owner *Derived, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		d, ok := b.sys.units[n]
		if !ok || !d.IsBase() {
			return nil, configErrorf(owner.name, ErrUnknownUnit, "%q is not a base unit", n)
		}
		out = append(out, d.Name())
	}

	return out, nil
}

func keys(m map[string]Definition) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}
