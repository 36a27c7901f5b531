package units

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvunits/grammar"
	"github.com/katalvlaran/lvunits/systems"
	"github.com/katalvlaran/lvunits/unitsys"
)

// Variant selects the grammar an Engine parses with.
type Variant int

const (
	// Standard is the general-purpose grammar.
	Standard Variant = iota
	// Metric is the strict SI grammar.
	Metric
	// UCUM is the unit-code grammar.
	UCUM
)

var variantNames = [...]string{
	Standard: grammar.NameStandard,
	Metric:   grammar.NameMetric,
	UCUM:     grammar.NameUCUM,
}

// Variants lists every grammar variant.
func Variants() []Variant { return []Variant{Standard, Metric, UCUM} }

// String returns the grammar name ("standard", "metric", "ucum").
func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}

	return variantNames[v]
}

// ParseVariant maps a grammar name, case-insensitively, to its Variant.
// "si" is accepted for Metric.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case grammar.NameStandard, "":
		return Standard, nil
	case grammar.NameMetric, systems.NameSI:
		return Metric, nil
	case grammar.NameUCUM:
		return UCUM, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// grammarFor builds the parser of v over sys.
func (v Variant) grammarFor(sys *unitsys.System) (grammar.Grammar, error) {
	switch v {
	case Standard:
		return grammar.NewStandard(sys), nil
	case Metric:
		return grammar.NewMetric(sys), nil
	case UCUM:
		return grammar.NewUCUM(sys), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, v)
}

// DefaultSystem names the stock system (package systems) that Default
// builds the engine of v from.
func (v Variant) DefaultSystem() string {
	switch v {
	case Metric:
		return systems.NameSI
	case UCUM:
		return systems.NameUCUM
	default:
		return systems.NameStandard
	}
}
