// SPDX-License-Identifier: MIT
// Package: lvunits/unitsys
//
// errors.go — sentinel errors for definitions and the registry.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrX); never on message text.
//   • Every registry-construction failure also matches ErrConfiguration, so
//     callers can treat the whole class uniformly.
//   • ConfigError carries the offending unit name for diagnostics.

package unitsys

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration classifies every error raised while building a System.
	ErrConfiguration = errors.New("unitsys: configuration error")

	// ErrDuplicateAlias indicates an alias already claimed by a different
	// canonical definition in the same namespace.
	ErrDuplicateAlias = errors.New("unitsys: duplicate alias")

	// ErrConflictingDefinition indicates a Derived unit declaring both a
	// definition expression and an explicit scalar/numerator/denominator, or an
	// option that makes no sense for the definition variant.
	ErrConflictingDefinition = errors.New("unitsys: conflicting definition")

	// ErrIncompleteDefinition indicates a definition without enough data to
	// compute scalar, numerator, denominator and kind.
	ErrIncompleteDefinition = errors.New("unitsys: incomplete definition")

	// ErrEmptyName indicates an empty canonical name or alias.
	ErrEmptyName = errors.New("unitsys: empty name")

	// ErrUnknownUnit indicates an explicit basis referencing a symbol that is
	// not a registered Base unit, or a Derived unit resolved against a System
	// it was never registered in.
	ErrUnknownUnit = errors.New("unitsys: unknown unit")

	// ErrCyclicDefinition indicates a Derived unit whose definition expression
	// re-enters its own resolution.
	ErrCyclicDefinition = errors.New("unitsys: cyclic definition")

	// ErrFrozen indicates registration on a Builder that has already built.
	ErrFrozen = errors.New("unitsys: builder already built")

	// ErrNoEvaluator indicates a definition expression that cannot be
	// evaluated because no Evaluator was installed.
	ErrNoEvaluator = errors.New("unitsys: no evaluator installed")
)

// ConfigError reports a configuration failure for one named unit.
// It matches both ErrConfiguration and its specific sentinel under errors.Is.
type ConfigError struct {
	Unit   string // canonical name of the offending definition
	Err    error  // specific sentinel (ErrDuplicateAlias, ...)
	Detail string // human-readable context
}

// Error implements error.
func (e *ConfigError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %q", e.Err, e.Unit)
	}

	return fmt.Sprintf("%s: %q: %s", e.Err, e.Unit, e.Detail)
}

// Unwrap exposes the class and the specific sentinel.
func (e *ConfigError) Unwrap() []error {
	return []error{ErrConfiguration, e.Err}
}

// configErrorf builds a *ConfigError for unit with a formatted detail.
func configErrorf(unit string, sentinel error, format string, args ...interface{}) error {
	return &ConfigError{Unit: unit, Err: sentinel, Detail: fmt.Sprintf(format, args...)}
}
