// SPDX-License-Identifier: MIT

package unitsys

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/lvunits/numeric"
)

// Option configures a single definition (Base, Prefix or Derived).
// Options are applied in order; later options override earlier ones.
type Option func(*definitionConfig)

// definitionConfig gathers every knob a definition constructor may read.
// Each constructor validates which fields are legal for its variant.
type definitionConfig struct {
	aliases     []string
	display     string
	kind        Kind
	scalar      *numeric.Number
	numerator   []string
	denominator []string
	hasBasis    bool // numerator or denominator supplied
	expr        string
}

// gatherOptions applies opts onto a zero config.
func gatherOptions(opts []Option) definitionConfig {
	var cfg definitionConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithAliases adds recognized surface strings. The canonical name is always
// an alias even when omitted here.
func WithAliases(aliases ...string) Option {
	return func(c *definitionConfig) {
		c.aliases = append(c.aliases, aliases...)
	}
}

// WithDisplayName sets the human label. Default: the first alias.
func WithDisplayName(name string) Option {
	return func(c *definitionConfig) {
		c.display = name
	}
}

// WithKind sets an explicit kind (dimension tag) on a Derived unit.
func WithKind(kind Kind) Option {
	return func(c *definitionConfig) {
		c.kind = kind
	}
}

// WithScalar sets the explicit scalar of a Derived unit, relative to its
// numerator/denominator basis.
func WithScalar(scalar numeric.Number) Option {
	return func(c *definitionConfig) {
		s := scalar
		c.scalar = &s
	}
}

// WithNumerator sets the explicit base-unit numerator of a Derived unit.
func WithNumerator(units ...string) Option {
	return func(c *definitionConfig) {
		c.numerator = append([]string(nil), units...)
		c.hasBasis = true
	}
}

// WithDenominator sets the explicit base-unit denominator of a Derived unit.
func WithDenominator(units ...string) Option {
	return func(c *definitionConfig) {
		c.denominator = append([]string(nil), units...)
		c.hasBasis = true
	}
}

// WithDefinition sets the definition expression of a Derived unit, e.g.
// "12 in" or "kg*m/s^2". It is evaluated lazily by the System's Evaluator.
func WithDefinition(expr string) Option {
	return func(c *definitionConfig) {
		c.expr = expr
	}
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger routes the builder's debug records to logger.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// discardLogger is the default: builders are silent unless asked otherwise.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
