package systems

import (
	"embed"
	"fmt"
	"path"

	"github.com/katalvlaran/lvunits/transform"
	"github.com/katalvlaran/lvunits/unitsys"
)

// System names.
const (
	NameStandard = "standard"
	NameSI       = "si"
	NameUCUM     = "ucum"
)

//go:embed defs/*.yaml
var defs embed.FS

// files lists the definition documents applied, in order, per system.
var files = map[string][]string{
	NameStandard: {"prefixes.yaml", "si.yaml", "customary.yaml"},
	NameSI:       {"prefixes.yaml", "si.yaml"},
	NameUCUM:     {"prefixes.yaml", "ucum.yaml"},
}

// Builder returns a Builder pre-loaded with the named stock vocabulary.
// Callers may register more units (or LoadFiles) before calling Build.
func Builder(name string, opts ...unitsys.BuilderOption) (*unitsys.Builder, error) {
	docs, ok := files[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
	}

	b := unitsys.NewBuilder(name, opts...)
	for _, doc := range docs {
		if err := load(b, doc); err != nil {
			return nil, err
		}
	}

	return b, nil
}

func load(b *unitsys.Builder, file string) error {
	f, err := defs.Open(path.Join("defs", file))
	if err != nil {
		return fmt.Errorf("systems: %s: %w", file, err)
	}
	defer f.Close()

	if err := b.LoadYAML(f); err != nil {
		return fmt.Errorf("systems: %s: %w", file, err)
	}

	return nil
}

// Build freezes b with the evaluator every stock system uses: definition
// expressions are read with the Standard grammar.
func Build(b *unitsys.Builder) (*unitsys.System, error) {
	return b.Build(transform.NewEvaluator(transform.StandardGrammar))
}

// New builds the named stock system.
func New(name string, opts ...unitsys.BuilderOption) (*unitsys.System, error) {
	b, err := Builder(name, opts...)
	if err != nil {
		return nil, err
	}

	return Build(b)
}

// StandardBuilder returns a Builder holding the SI, binary-prefix and
// imperial/US customary vocabulary.
func StandardBuilder(opts ...unitsys.BuilderOption) (*unitsys.Builder, error) {
	return Builder(NameStandard, opts...)
}

// Standard builds the "standard" system.
func Standard(opts ...unitsys.BuilderOption) (*unitsys.System, error) {
	return New(NameStandard, opts...)
}

// SIBuilder returns a Builder holding SI units and prefixes only.
func SIBuilder(opts ...unitsys.BuilderOption) (*unitsys.Builder, error) {
	return Builder(NameSI, opts...)
}

// SI builds the "si" system.
func SI(opts ...unitsys.BuilderOption) (*unitsys.System, error) {
	return New(NameSI, opts...)
}

// UCUMBuilder returns a Builder holding gram, meter, second and the prefixes
// the UCUM grammar can address.
func UCUMBuilder(opts ...unitsys.BuilderOption) (*unitsys.Builder, error) {
	return Builder(NameUCUM, opts...)
}

// UCUM builds the "ucum" system.
func UCUM(opts ...unitsys.BuilderOption) (*unitsys.System, error) {
	return New(NameUCUM, opts...)
}

// Names lists the stock system names.
func Names() []string {
	return []string{NameStandard, NameSI, NameUCUM}
}
