package unitsys

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/katalvlaran/lvunits/numeric"
	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a batch of definitions.
//
//	system: workshop
//	prefixes:
//	  - name: kilo
//	    aliases: [k]
//	    scalar: "1000"
//	units:
//	  - name: furlong
//	    aliases: [fur, furlongs]
//	    definition: 660 ft
//	    kind: length
type Document struct {
	System   string        `yaml:"system,omitempty"`
	Prefixes []PrefixEntry `yaml:"prefixes,omitempty"`
	Units    []UnitEntry   `yaml:"units,omitempty"`
}

// PrefixEntry declares one prefix. Scalar is an exact literal ("1e3", "1024").
type PrefixEntry struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases,omitempty"`
	Display string   `yaml:"display,omitempty"`
	Scalar  string   `yaml:"scalar"`
}

// UnitEntry declares one unit. Base units set Base and Kind; Derived units set
// either Definition or Scalar plus Numerator/Denominator (or Kind).
type UnitEntry struct {
	Name        string   `yaml:"name"`
	Aliases     []string `yaml:"aliases,omitempty"`
	Display     string   `yaml:"display,omitempty"`
	Kind        Kind     `yaml:"kind,omitempty"`
	Base        bool     `yaml:"base,omitempty"`
	Definition  string   `yaml:"definition,omitempty"`
	Scalar      string   `yaml:"scalar,omitempty"`
	Numerator   []string `yaml:"numerator,omitempty"`
	Denominator []string `yaml:"denominator,omitempty"`
}

// options converts the declarative fields into constructor options.
func (u UnitEntry) options() ([]Option, error) {
	opts := []Option{WithAliases(u.Aliases...)}
	if u.Display != "" {
		opts = append(opts, WithDisplayName(u.Display))
	}
	if u.Base {
		return opts, nil
	}
	if u.Kind != "" {
		opts = append(opts, WithKind(u.Kind))
	}
	if u.Definition != "" {
		opts = append(opts, WithDefinition(u.Definition))
	}
	if u.Scalar != "" {
		s, err := numeric.ParseExact(u.Scalar)
		if err != nil {
			return nil, configErrorf(u.Name, ErrIncompleteDefinition, "scalar: %v", err)
		}
		opts = append(opts, WithScalar(s))
	}
	if len(u.Numerator) > 0 {
		opts = append(opts, WithNumerator(u.Numerator...))
	}
	if len(u.Denominator) > 0 {
		opts = append(opts, WithDenominator(u.Denominator...))
	}

	return opts, nil
}

// ApplyDocument registers every prefix, then every unit of doc, stopping at
// the first failure. A non-empty doc.System must name this builder's system.
func (b *Builder) ApplyDocument(doc Document) error {
	if doc.System != "" && doc.System != b.name {
		return configErrorf(doc.System, ErrConflictingDefinition, "document targets system %q, builder is %q", doc.System, b.name)
	}
	for _, p := range doc.Prefixes {
		s, err := numeric.ParseExact(p.Scalar)
		if err != nil {
			return configErrorf(p.Name, ErrIncompleteDefinition, "scalar: %v", err)
		}
		opts := []Option{WithAliases(p.Aliases...)}
		if p.Display != "" {
			opts = append(opts, WithDisplayName(p.Display))
		}
		if err := b.Prefix(p.Name, s, opts...); err != nil {
			return err
		}
	}

	for _, u := range doc.Units {
		opts, err := u.options()
		if err != nil {
			return err
		}
		if u.Base {
			err = b.Base(u.Name, u.Kind, opts...)
		} else {
			err = b.Derived(u.Name, opts...)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// LoadYAML decodes one Document from r and applies it onto b.
func (b *Builder) LoadYAML(r io.Reader) error {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}

		return fmt.Errorf("unitsys: decode definitions: %w", err)
	}

	return b.ApplyDocument(doc)
}

// LoadFiles applies every YAML file matching pattern (doublestar syntax,
// "**" spans directories) in lexical order and returns the files applied.
func (b *Builder) LoadFiles(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("unitsys: glob %q: %w", pattern, err)
	}
	sort.Strings(matches)

	for _, path := range matches {
		if err := b.loadFile(path); err != nil {
			return nil, err
		}
		b.logger.Debug("loaded definitions", "system", b.name, "file", path)
	}

	return matches, nil
}

func (b *Builder) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unitsys: open definitions: %w", err)
	}
	defer f.Close()

	if err := b.LoadYAML(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
