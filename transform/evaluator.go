package transform

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvunits/grammar"
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/unitsys"
)

// GrammarFactory builds the grammar that reads definition expressions.
type GrammarFactory func(sys *unitsys.System) grammar.Grammar

// StandardGrammar is the default GrammarFactory.
func StandardGrammar(sys *unitsys.System) grammar.Grammar {
	return grammar.NewStandard(sys)
}

// NewEvaluator returns a unitsys.Evaluator that parses definition
// expressions ("12 in", "kg*m/s^2") with the grammar produced by factory and
// reduces them to base units. The grammar for the most recent System is
// cached, so building a System compiles its alternation tables once.
func NewEvaluator(factory GrammarFactory) unitsys.Evaluator {
	if factory == nil {
		factory = StandardGrammar
	}

	var (
		mu      sync.Mutex
		lastSys *unitsys.System
		lastG   grammar.Grammar
	)
	grammarFor := func(sys *unitsys.System) grammar.Grammar {
		mu.Lock()
		defer mu.Unlock()
		if sys != lastSys {
			lastSys, lastG = sys, factory(sys)
		}

		return lastG
	}

	return func(sys *unitsys.System, expr string) (unitsys.Reduction, error) {
		// evaluation recurses into Resolve for referenced units, so the
		// lock must not be held while parsing
		g := grammarFor(sys)

		q, err := Parse(g, New(sys), expr)
		if err != nil {
			return unitsys.Reduction{}, fmt.Errorf("transform: definition %q: %w", expr, err)
		}

		return Reduce(q)
	}
}

// Parse runs g over text and transforms the resulting tree with t.
func Parse(g grammar.Grammar, t *Transformer, text string) (quantity.Quantity, error) {
	n, err := g.Parse(text)
	if err != nil {
		return quantity.Quantity{}, err
	}

	return t.Transform(n)
}

// Reduce expresses q in base units as a unitsys.Reduction.
func Reduce(q quantity.Quantity) (unitsys.Reduction, error) {
	base, err := q.Reduce()
	if err != nil {
		return unitsys.Reduction{}, err
	}

	return unitsys.Reduction{
		Scalar:      base.Scalar(),
		Numerator:   base.Numerator(),
		Denominator: base.Denominator(),
		Kind:        q.Kind(),
	}, nil
}
