package systems_test

import (
	"testing"

	"github.com/katalvlaran/lvunits/grammar"
	"github.com/katalvlaran/lvunits/numeric"
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/systems"
	"github.com/katalvlaran/lvunits/transform"
	"github.com/katalvlaran/lvunits/unitsys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parser(t testing.TB, sys *unitsys.System) func(string) quantity.Quantity {
	g := grammar.NewStandard(sys)
	tr := transform.New(sys)

	return func(text string) quantity.Quantity {
		t.Helper()
		q, err := transform.Parse(g, tr, text)
		require.NoError(t, err, text)

		return q
	}
}

func TestStockSystemsBuild(t *testing.T) {
	for _, name := range systems.Names() {
		t.Run(name, func(t *testing.T) {
			sys, err := systems.New(name)
			require.NoError(t, err)
			assert.Equal(t, name, sys.Name())
			assert.NotEmpty(t, sys.Units())
			assert.NotEmpty(t, sys.Prefixes())

			for _, u := range sys.Units() {
				d, ok := u.(*unitsys.Derived)
				if ok {
					assert.True(t, d.Resolved(), u.Name())
				}
			}
		})
	}

	_, err := systems.New("cgs")
	assert.ErrorIs(t, err, systems.ErrUnknownSystem)
}

func TestSIHasNoCustomaryUnits(t *testing.T) {
	sys, err := systems.SI()
	require.NoError(t, err)

	_, ok := sys.LookupUnit("ft")
	assert.False(t, ok)
	_, ok = sys.LookupUnit("N")
	assert.True(t, ok)
}

// Every unit's display name must parse back to exactly that unit.
func TestDisplayRoundTrip(t *testing.T) {
	sys, err := systems.Standard()
	require.NoError(t, err)
	parse := parser(t, sys)

	for _, u := range sys.Units() {
		t.Run(u.Name(), func(t *testing.T) {
			want, err := quantity.New(sys, numeric.One, []quantity.Factor{quantity.Of(u)}, nil)
			require.NoError(t, err)

			got := parse(want.String())
			assert.Equal(t, []string{u.Name()}, got.Numerator())
			assert.Empty(t, got.Denominator())
			assert.True(t, got.Equal(want), "%s != %s", got, want)
		})
	}
}

func TestUCUMRoundTrip(t *testing.T) {
	sys, err := systems.UCUM()
	require.NoError(t, err)
	g := grammar.NewUCUM(sys)
	tr := transform.New(sys)

	for _, u := range sys.Units() {
		q, err := transform.Parse(g, tr, "1 "+u.DisplayName())
		require.NoError(t, err, u.Name())
		assert.Equal(t, []string{u.Name()}, q.Numerator())
	}

	_, err = transform.Parse(g, tr, "1 mg/dL")
	assert.ErrorIs(t, err, grammar.ErrParse)

	q, err := transform.Parse(g, tr, "1 km.s-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"kilometer"}, q.Numerator())
	assert.Equal(t, []string{"second"}, q.Denominator())
}

func TestStandardConversions(t *testing.T) {
	sys, err := systems.Standard()
	require.NoError(t, err)
	parse := parser(t, sys)

	convert := func(from, to string) quantity.Quantity {
		t.Helper()
		q, err := parse(from).ConvertTo(parse(to))
		require.NoError(t, err, "%s -> %s", from, to)

		return q
	}

	ft := convert("1 m", "ft")
	assert.Equal(t, "ft", ft.Units())
	assert.InDelta(t, 3.28084, ft.Scalar().Float64(), 0.01)
	assert.True(t, ft.Scalar().Equal(numeric.Frac(1250, 381)))

	assert.True(t, convert("1 mi", "ft").Scalar().Equal(numeric.Int(5280)))
	assert.True(t, convert("1 gal", "L").Scalar().Equal(numeric.Frac(3785411784, 1000000000)))
	assert.True(t, convert("1 kW*h", "J").Scalar().Equal(numeric.Int(3600000)))
	assert.True(t, convert("1 KiB", "B").Scalar().Equal(numeric.Int(1024)))
	assert.True(t, convert("1 B", "b").Scalar().Equal(numeric.Int(8)))
	assert.True(t, convert("1 wk", "h").Scalar().Equal(numeric.Int(168)))
	assert.True(t, convert("1 atm", "kPa").Scalar().Equal(numeric.Frac(101325, 1000)))
	assert.InDelta(t, 180.0, convert("3.141592653589793 rad", "deg").Scalar().Float64(), 1e-9)
	assert.InDelta(t, 1.852, convert("1 kn", "km/h").Scalar().Float64(), 1e-12)

	_, err = parse("1 m").ConvertTo(parse("1 s"))
	assert.ErrorIs(t, err, quantity.ErrIncompatibleUnits)
}

func TestStandardKinds(t *testing.T) {
	sys, err := systems.Standard()
	require.NoError(t, err)
	parse := parser(t, sys)

	cases := map[string]unitsys.Kind{
		"1 N":        "force",
		"1 kg*m/s^2": "force",
		"1 J/s":      "power",
		"1 ft^2":     "area",
		"1 mi/h":     "speed",
		"1 kn":       "speed",
		"1 psi":      "pressure",
		"1 m/m":      unitsys.KindUnitless,
		"1 %":        unitsys.KindUnitless,
		"1 USD":      "currency",
		"1 GiB":      "information",
	}
	for text, want := range cases {
		assert.Equal(t, want, parse(text).Kind(), text)
	}
}

func TestExtendStandardBuilder(t *testing.T) {
	b, err := systems.StandardBuilder()
	require.NoError(t, err)
	require.NoError(t, b.Derived("smoot", unitsys.WithDefinition("67 in"), unitsys.WithAliases("smoots")))
	err = b.Derived("feet", unitsys.WithDefinition("12 in"))
	assert.ErrorIs(t, err, unitsys.ErrDuplicateAlias)

	sys, err := systems.Build(b)
	require.NoError(t, err)
	parse := parser(t, sys)

	q, err := parse("364.4 smoots").ConvertTo(parse("1 m"))
	require.NoError(t, err)
	assert.InDelta(t, 620.1, q.Scalar().Float64(), 0.1)

	assert.ErrorIs(t, b.Derived("furlong", unitsys.WithDefinition("660 ft")), unitsys.ErrFrozen)
}
