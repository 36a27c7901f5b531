package units

import (
	"sync"

	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/systems"
)

type lazyEngine struct {
	once   sync.Once
	engine *Engine
	err    error
}

var defaults [len(variantNames)]lazyEngine

// Default returns the stock engine of variant: Standard over the "standard"
// system, Metric over "si", UCUM over "ucum". Each is built on first use and
// shared afterwards.
func Default(variant Variant) (*Engine, error) {
	if variant < 0 || int(variant) >= len(defaults) {
		return nil, ErrUnknownVariant
	}

	d := &defaults[variant]
	d.once.Do(func() {
		sys, err := systems.New(variant.DefaultSystem())
		if err != nil {
			d.err = err

			return
		}
		d.engine, d.err = NewEngine(sys, variant)
	})

	return d.engine, d.err
}

// MustDefault is Default for callers that treat a broken stock system as a
// programming error.
func MustDefault(variant Variant) *Engine {
	e, err := Default(variant)
	if err != nil {
		panic(err)
	}

	return e
}

// Parse parses text with the stock engine of variant.
func Parse(text string, variant Variant) (quantity.Quantity, error) {
	e, err := Default(variant)
	if err != nil {
		return quantity.Quantity{}, err
	}

	return e.Parse(text)
}
