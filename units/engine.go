package units

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/lvunits/grammar"
	"github.com/katalvlaran/lvunits/numeric"
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/transform"
	"github.com/katalvlaran/lvunits/unitsys"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes the engine's debug records to logger. A nil logger is
// ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Engine parses text with one grammar against one unit system.
type Engine struct {
	sys     *unitsys.System
	variant Variant
	grammar grammar.Grammar
	tr      *transform.Transformer
	logger  *slog.Logger
}

// NewEngine binds sys to the grammar of variant.
func NewEngine(sys *unitsys.System, variant Variant, opts ...Option) (*Engine, error) {
	if sys == nil {
		return nil, ErrNilSystem
	}
	g, err := variant.grammarFor(sys)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		sys:     sys,
		variant: variant,
		grammar: g,
		tr:      transform.New(sys),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	return e, nil
}

// System returns the unit system the engine resolves names in.
func (e *Engine) System() *unitsys.System { return e.sys }

// Variant returns the engine's grammar variant.
func (e *Engine) Variant() Variant { return e.variant }

// Parse turns text into a Quantity. A failure is a *grammar.ParseError
// (errors.Is grammar.ErrParse) or an error from building the value, such as
// unitsys.ErrUnknownUnit or quantity.ErrInvalidPower.
func (e *Engine) Parse(text string) (quantity.Quantity, error) {
	q, err := transform.Parse(e.grammar, e.tr, text)
	if err != nil {
		e.logger.Debug("parse failed", "grammar", e.variant, "input", text, "error", err)

		return quantity.Quantity{}, err
	}
	e.logger.Debug("parsed", "grammar", e.variant, "input", text, "result", q.String())

	return q, nil
}

// Unit parses a unit expression such as "km/h". The expression may carry
// its own scalar ("12 in"), which is kept.
func (e *Engine) Unit(unit string) (quantity.Quantity, error) {
	return e.Parse(unit)
}

// New returns scalar × unit, e.g. New(numeric.Int(6), "ft").
func (e *Engine) New(scalar numeric.Number, unit string) (quantity.Quantity, error) {
	u, err := e.Unit(unit)
	if err != nil {
		return quantity.Quantity{}, err
	}

	return quantity.Unitless(e.sys, scalar).Mul(u)
}

// ConvertTo expresses q in the units of the expression unit. A scalar in
// the expression is ignored: ConvertTo(q, "12 in") and ConvertTo(q, "in")
// give the same result.
func (e *Engine) ConvertTo(q quantity.Quantity, unit string) (quantity.Quantity, error) {
	target, err := e.Unit(unit)
	if err != nil {
		return quantity.Quantity{}, err
	}

	out, err := q.ConvertTo(target)
	if err != nil {
		return quantity.Quantity{}, err
	}
	e.logger.Debug("converted", "from", q.String(), "to", out.String())

	return out, nil
}
