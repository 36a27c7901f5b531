package unitsys

import (
	"strings"

	"github.com/katalvlaran/lvunits/numeric"
)

// Kind is a dimension tag such as "length" or "force".
type Kind string

const (
	// KindPrefix tags every Prefix definition.
	KindPrefix Kind = "prefix"
	// KindUnitless tags quantities whose signature is empty.
	KindUnitless Kind = "unitless"
)

// Definition describes one unit or prefix of a System.
//
// Numerator and Denominator are expressed in canonical Base-unit names and
// Scalar is the factor relative to that basis. For Derived units defined by an
// expression these values are available once the owning System has resolved
// the unit (System.Resolve, done for every unit by Builder.Build).
type Definition interface {
	Name() string
	Aliases() []string
	DisplayName() string
	Scalar() numeric.Number
	Numerator() []string
	Denominator() []string
	Kind() Kind
	IsPrefix() bool
	IsBase() bool
}

// meta carries the identity shared by every definition variant.
type meta struct {
	name    string
	aliases []string
	display string
}

// newMeta normalizes aliases: blanks are rejected, duplicates dropped, and
// the canonical name is appended when missing.
func newMeta(name string, cfg definitionConfig) (meta, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return meta{}, configErrorf(name, ErrEmptyName, "canonical name is required")
	}

	seen := make(map[string]struct{}, len(cfg.aliases)+1)
	aliases := make([]string, 0, len(cfg.aliases)+1)
	for _, a := range cfg.aliases {
		if strings.TrimSpace(a) == "" {
			return meta{}, configErrorf(name, ErrEmptyName, "blank alias")
		}
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		aliases = append(aliases, a)
	}
	if _, ok := seen[name]; !ok {
		aliases = append(aliases, name)
	}

	display := cfg.display
	if display == "" {
		display = aliases[0]
	}

	return meta{name: name, aliases: aliases, display: display}, nil
}

// Name returns the canonical symbol.
func (m *meta) Name() string { return m.name }

// Aliases returns a copy of the recognized surface strings.
func (m *meta) Aliases() []string { return append([]string(nil), m.aliases...) }

// DisplayName returns the human label.
func (m *meta) DisplayName() string { return m.display }

// Base is a fundamental unit. It reduces to itself with scalar 1.
type Base struct {
	meta
	kind Kind
}

// NewBase constructs a Base unit of the given kind.
// Only WithAliases and WithDisplayName are meaningful; basis or definition
// options yield ErrConflictingDefinition.
func NewBase(name string, kind Kind, opts ...Option) (*Base, error) {
	cfg := gatherOptions(opts)
	m, err := newMeta(name, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.expr != "" || cfg.hasBasis || cfg.scalar != nil {
		return nil, configErrorf(m.name, ErrConflictingDefinition, "base units cannot declare a scalar, basis or definition")
	}
	if kind == "" {
		kind = cfg.kind
	}
	if kind == "" {
		return nil, configErrorf(m.name, ErrIncompleteDefinition, "base units need a kind")
	}

	return &Base{meta: m, kind: kind}, nil
}

// Scalar returns 1.
func (b *Base) Scalar() numeric.Number { return numeric.One }

// Numerator returns the unit itself.
func (b *Base) Numerator() []string { return []string{b.name} }

// Denominator returns nil.
func (b *Base) Denominator() []string { return nil }

// Kind returns the dimension tag.
func (b *Base) Kind() Kind { return b.kind }

// IsPrefix returns false.
func (b *Base) IsPrefix() bool { return false }

// IsBase returns true.
func (b *Base) IsBase() bool { return true }

// Prefix is a multiplicative modifier such as kilo or kibi.
type Prefix struct {
	meta
	scalar numeric.Number
}

// NewPrefix constructs a Prefix with the given multiplier.
func NewPrefix(name string, scalar numeric.Number, opts ...Option) (*Prefix, error) {
	cfg := gatherOptions(opts)
	m, err := newMeta(name, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.expr != "" || cfg.hasBasis || cfg.scalar != nil || (cfg.kind != "" && cfg.kind != KindPrefix) {
		return nil, configErrorf(m.name, ErrConflictingDefinition, "prefixes carry only a multiplier")
	}
	if scalar.IsZero() {
		return nil, configErrorf(m.name, ErrIncompleteDefinition, "prefix multiplier must be non-zero")
	}

	return &Prefix{meta: m, scalar: scalar}, nil
}

// Scalar returns the multiplier.
func (p *Prefix) Scalar() numeric.Number { return p.scalar }

// Numerator returns nil.
func (p *Prefix) Numerator() []string { return nil }

// Denominator returns nil.
func (p *Prefix) Denominator() []string { return nil }

// Kind returns KindPrefix.
func (p *Prefix) Kind() Kind { return KindPrefix }

// IsPrefix returns true.
func (p *Prefix) IsPrefix() bool { return true }

// IsBase returns false.
func (p *Prefix) IsBase() bool { return false }

// Derived is a unit defined in terms of other units.
//
// Explicit form: WithScalar plus WithNumerator/WithDenominator (base-unit
// names), or WithScalar plus WithKind for dimensionless units.
// Expression form: WithDefinition("12 in"), optionally WithKind.
// Mixing both forms is ErrConflictingDefinition.
type Derived struct {
	meta
	expr         string
	explicitKind Kind

	// resolution state, written only while the owning Builder builds
	resolved    bool
	scalar      numeric.Number
	numerator   []string
	denominator []string
	kind        Kind
}

// NewDerived constructs a Derived unit and validates its option set.
func NewDerived(name string, opts ...Option) (*Derived, error) {
	cfg := gatherOptions(opts)
	m, err := newMeta(name, cfg)
	if err != nil {
		return nil, err
	}

	d := &Derived{meta: m, expr: strings.TrimSpace(cfg.expr), explicitKind: cfg.kind}
	if d.expr != "" {
		if cfg.hasBasis || cfg.scalar != nil {
			return nil, configErrorf(m.name, ErrConflictingDefinition, "declares both a definition expression and an explicit scalar/numerator/denominator")
		}

		return d, nil
	}

	if cfg.scalar == nil {
		return nil, configErrorf(m.name, ErrIncompleteDefinition, "needs a definition expression or an explicit scalar")
	}
	if !cfg.hasBasis && cfg.kind == "" {
		return nil, configErrorf(m.name, ErrIncompleteDefinition, "explicit form needs a numerator/denominator or an explicit kind")
	}
	d.scalar = *cfg.scalar
	d.numerator = cfg.numerator
	d.denominator = cfg.denominator

	return d, nil
}

// Expression returns the definition expression, or "" for explicit units.
func (d *Derived) Expression() string { return d.expr }

// Resolved reports whether scalar, basis and kind are available.
func (d *Derived) Resolved() bool { return d.resolved }

// Scalar returns the factor relative to the base-unit basis.
func (d *Derived) Scalar() numeric.Number { return d.scalar }

// Numerator returns a copy of the base-unit numerator.
func (d *Derived) Numerator() []string { return append([]string(nil), d.numerator...) }

// Denominator returns a copy of the base-unit denominator.
func (d *Derived) Denominator() []string { return append([]string(nil), d.denominator...) }

// Kind returns the explicit kind, or the kind inferred from the resolved basis.
func (d *Derived) Kind() Kind {
	if d.explicitKind != "" {
		return d.explicitKind
	}

	return d.kind
}

// IsPrefix returns false.
func (d *Derived) IsPrefix() bool { return false }

// IsBase returns false.
func (d *Derived) IsBase() bool { return false }
