package units_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/katalvlaran/lvunits/grammar"
	"github.com/katalvlaran/lvunits/numeric"
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/systems"
	"github.com/katalvlaran/lvunits/units"
	"github.com/katalvlaran/lvunits/unitsys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standard(t testing.TB) *units.Engine {
	t.Helper()
	e, err := units.Default(units.Standard)
	require.NoError(t, err)

	return e
}

func mustParse(t testing.TB, e *units.Engine, text string) quantity.Quantity {
	t.Helper()
	q, err := e.Parse(text)
	require.NoError(t, err, text)

	return q
}

func TestVariant(t *testing.T) {
	for _, v := range units.Variants() {
		got, err := units.ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	v, err := units.ParseVariant("SI")
	require.NoError(t, err)
	assert.Equal(t, units.Metric, v)

	_, err = units.ParseVariant("imperial")
	assert.ErrorIs(t, err, units.ErrUnknownVariant)
	assert.Equal(t, "Variant(7)", units.Variant(7).String())

	_, err = units.Default(units.Variant(7))
	assert.ErrorIs(t, err, units.ErrUnknownVariant)
}

func TestNewEngineValidation(t *testing.T) {
	_, err := units.NewEngine(nil, units.Standard)
	assert.ErrorIs(t, err, units.ErrNilSystem)

	sys, err := systems.SI()
	require.NoError(t, err)
	_, err = units.NewEngine(sys, units.Variant(-1))
	assert.ErrorIs(t, err, units.ErrUnknownVariant)
}

func TestScenarios(t *testing.T) {
	e := standard(t)

	acc := mustParse(t, e, "-1 m/s/s")
	assert.True(t, acc.Scalar().Equal(numeric.Int(-1)))
	assert.Equal(t, []string{"meter"}, acc.Numerator())
	assert.Equal(t, []string{"second", "second"}, acc.Denominator())
	assert.Equal(t, unitsys.Kind("acceleration"), acc.Kind())

	sci := mustParse(t, e, "1e4 m")
	sep := mustParse(t, e, "10,000 m")
	assert.True(t, sci.Equal(sep))
	assert.True(t, sci.Scalar().Equal(numeric.Int(10000)))
	assert.Equal(t, []string{"meter"}, sci.Numerator())

	ft, err := e.New(numeric.Int(6), "ft")
	require.NoError(t, err)
	in, err := e.New(numeric.Int(4), "in")
	require.NoError(t, err)
	sum, err := ft.Add(in)
	require.NoError(t, err)
	assert.True(t, mustParse(t, e, "6 foot 4").Equal(sum))

	c := mustParse(t, e, "-1-3i rad")
	assert.Equal(t, complex(-1, -3), c.Scalar().Complex128())
	assert.Equal(t, []string{"radian"}, c.Numerator())

	m, err := e.New(numeric.One, "m")
	require.NoError(t, err)
	inFeet, err := e.ConvertTo(m, "ft")
	require.NoError(t, err)
	assert.Equal(t, "ft", inFeet.Units())
	assert.InDelta(t, 3.28084, inFeet.Scalar().Float64(), 0.01)

	q, err := units.Parse("1 m3.kg-1.s-2", units.UCUM)
	require.NoError(t, err)
	assert.Equal(t, []string{"meter", "meter", "meter"}, q.Numerator())
	assert.Equal(t, []string{"kilogram", "second", "second"}, q.Denominator())
	assert.Equal(t, "1 m^3/kg/s^2", q.String())
}

func TestLongestAliasFirst(t *testing.T) {
	e := standard(t)

	mm := mustParse(t, e, "mm")
	assert.Equal(t, []string{"millimeter"}, mm.Numerator())
	assert.Equal(t, []string{"minute"}, mustParse(t, e, "min").Numerator())
	assert.Equal(t, []string{"millisecond"}, mustParse(t, e, "ms").Numerator())
	assert.Equal(t, []string{"kilogram"}, mustParse(t, e, "kg").Numerator())
	assert.Equal(t, []string{"nautical_mile"}, mustParse(t, e, "nmi").Numerator())
	assert.Equal(t, []string{"nanometer"}, mustParse(t, e, "nm").Numerator())
}

func TestAlgebraProperties(t *testing.T) {
	e := standard(t)
	a := mustParse(t, e, "3 kg")
	b := mustParse(t, e, "2 m/s")
	c := mustParse(t, e, "5 s^2")

	ab, err := a.Mul(b)
	require.NoError(t, err)
	ba, err := b.Mul(a)
	require.NoError(t, err)
	assert.True(t, ab.Equal(ba))

	abc, err := ab.Mul(c)
	require.NoError(t, err)
	bc, err := b.Mul(c)
	require.NoError(t, err)
	aBC, err := a.Mul(bc)
	require.NoError(t, err)
	assert.True(t, abc.Equal(aBC))

	for _, q := range []quantity.Quantity{a, b, c, mustParse(t, e, "2.5 kW*h")} {
		one, err := q.Div(q)
		require.NoError(t, err)
		assert.True(t, one.IsUnitless(), one.String())
		assert.True(t, one.Scalar().Equal(numeric.One), one.String())
	}
}

func TestConversionIdempotence(t *testing.T) {
	e := standard(t)
	q := mustParse(t, e, "1 1/2 mi")

	for _, pair := range [][2]string{{"ft", "km"}, {"yd", "in"}, {"nmi", "m"}, {"km", "km"}} {
		via, err := e.ConvertTo(q, pair[0])
		require.NoError(t, err)
		twice, err := e.ConvertTo(via, pair[1])
		require.NoError(t, err)
		once, err := e.ConvertTo(q, pair[1])
		require.NoError(t, err)
		assert.True(t, twice.Equal(once), "%s vs %s", twice, once)
		assert.Equal(t, once.Units(), twice.Units())
	}
}

func TestKindMismatch(t *testing.T) {
	e := standard(t)
	m, err := e.New(numeric.One, "m")
	require.NoError(t, err)
	s, err := e.New(numeric.One, "s")
	require.NoError(t, err)

	_, err = m.Add(s)
	assert.ErrorIs(t, err, quantity.ErrIncompatibleUnits)
	_, err = e.ConvertTo(m, "kg")
	assert.ErrorIs(t, err, quantity.ErrIncompatibleUnits)
}

// For every unit, parse(display(new(1, unit))) == new(1, unit).
func TestRoundTripAllUnits(t *testing.T) {
	e := standard(t)
	for _, u := range e.System().Units() {
		q, err := e.New(numeric.One, u.DisplayName())
		require.NoError(t, err, u.Name())
		back := mustParse(t, e, q.String())
		assert.True(t, back.Equal(q), "%s: %s != %s", u.Name(), back, q)
		assert.Equal(t, q.Numerator(), back.Numerator())
	}
}

func TestMetricEngine(t *testing.T) {
	e, err := units.Default(units.Metric)
	require.NoError(t, err)
	assert.Equal(t, systems.NameSI, e.System().Name())

	q := mustParse(t, e, "9.81 kg*m/s^2")
	assert.Equal(t, unitsys.Kind("force"), q.Kind())

	for _, text := range []string{"10,000 m", "6 ft 4 in", "1:30"} {
		_, err := e.Parse(text)
		assert.ErrorIs(t, err, grammar.ErrParse, text)
	}
}

func TestParseErrors(t *testing.T) {
	e := standard(t)

	_, err := e.Parse("3 furlongs")
	var perr *grammar.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, " furlongs", perr.Remainder)
	assert.Equal(t, 1, perr.Offset)

	_, err = e.Parse("")
	assert.ErrorIs(t, err, grammar.ErrEmptyInput)

	_, err = e.Parse("m^1/2")
	assert.ErrorIs(t, err, quantity.ErrInvalidPower)

	_, err = e.New(numeric.One, "m/")
	assert.ErrorIs(t, err, grammar.ErrParse)
}

func TestEngineLogsAtDebug(t *testing.T) {
	sys, err := systems.SI()
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e, err := units.NewEngine(sys, units.Metric, units.WithLogger(logger))
	require.NoError(t, err)

	_, err = e.Parse("2 km")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "msg=parsed")
	assert.Contains(t, buf.String(), `input="2 km"`)
}

func TestDefaultConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]quantity.Quantity, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q, err := units.Parse("1.5 kg*m/s^2", units.Standard)
			if assert.NoError(t, err) {
				results[i] = q
			}
		}(i)
	}
	wg.Wait()

	for _, q := range results[1:] {
		assert.True(t, q.Equal(results[0]))
	}
	assert.Equal(t, "1.5 kg*m/s^2", results[0].String())
}
