package quantity

import (
	"github.com/katalvlaran/lvunits/numeric"
	"github.com/katalvlaran/lvunits/unitsys"
)

// Factor is one unit occurrence: an optional prefix applied to a unit.
type Factor struct {
	Prefix unitsys.Definition // nil when unprefixed
	Unit   unitsys.Definition
}

// Of returns the unprefixed factor for unit.
func Of(unit unitsys.Definition) Factor {
	return Factor{Unit: unit}
}

// Prefixed returns the factor prefix+unit.
func Prefixed(prefix, unit unitsys.Definition) Factor {
	return Factor{Prefix: prefix, Unit: unit}
}

// Name returns the canonical spelled-out name, e.g. "kilogram".
func (f Factor) Name() string {
	if f.Prefix == nil {
		return f.Unit.Name()
	}

	return f.Prefix.Name() + f.Unit.Name()
}

// Symbol returns the display form, e.g. "kg".
func (f Factor) Symbol() string {
	if f.Prefix == nil {
		return f.Unit.DisplayName()
	}

	return f.Prefix.DisplayName() + f.Unit.DisplayName()
}

// key identifies the factor for cancellation and grouping.
func (f Factor) key() string {
	if f.Prefix == nil {
		return "\x00" + f.Unit.Name()
	}

	return f.Prefix.Name() + "\x00" + f.Unit.Name()
}

// reduce returns the factor's scalar and basis in base units.
func (f Factor) reduce(sys *unitsys.System) (numeric.Number, []string, []string, error) {
	red, err := sys.Resolve(f.Unit)
	if err != nil {
		return numeric.Zero, nil, nil, err
	}
	scalar := red.Scalar
	if f.Prefix != nil {
		scalar = f.Prefix.Scalar().Mul(scalar)
	}

	return scalar, red.Numerator, red.Denominator, nil
}

// cancel removes identical factors present on both sides, one pair at a time,
// keeping the relative order of the survivors.
func cancel(num, den []Factor) ([]Factor, []Factor) {
	outNum := append([]Factor(nil), num...)
	outDen := make([]Factor, 0, len(den))
	for _, d := range den {
		matched := -1
		for i, n := range outNum {
			if n.key() == d.key() {
				matched = i
				break
			}
		}
		if matched >= 0 {
			outNum = append(outNum[:matched], outNum[matched+1:]...)
			continue
		}
		outDen = append(outDen, d)
	}

	return outNum, outDen
}

// group collapses repeated factors into (factor, count) pairs in order of
// first appearance.
type grouped struct {
	factor Factor
	count  int
}

func group(fs []Factor) []grouped {
	var out []grouped
	index := make(map[string]int, len(fs))
	for _, f := range fs {
		k := f.key()
		if i, ok := index[k]; ok {
			out[i].count++
			continue
		}
		index[k] = len(out)
		out = append(out, grouped{factor: f, count: 1})
	}

	return out
}

func repeat(fs []Factor, n int) []Factor {
	out := make([]Factor, 0, len(fs)*n)
	for i := 0; i < n; i++ {
		out = append(out, fs...)
	}

	return out
}

func names(fs []Factor) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.Name()
	}

	return out
}
