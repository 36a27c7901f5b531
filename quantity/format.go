package quantity

import (
	"fmt"
	"strconv"
	"strings"
)

// Units renders the unit part using display symbols, grouping repeated
// factors into powers: "kg*m/s^2", "m^3/kg/s^2", "1/s", "" for unitless
// values. Every denominator factor carries its own "/" so the text reads
// back left to right.
func (q Quantity) Units() string {
	num := renderGroup(group(q.num), "*")
	den := renderGroup(group(q.den), "/")
	switch {
	case num == "" && den == "":
		return ""
	case den == "":
		return num
	case num == "":
		return "1/" + den
	default:
		return num + "/" + den
	}
}

func renderGroup(gs []grouped, sep string) string {
	parts := make([]string, 0, len(gs))
	for _, g := range gs {
		s := g.factor.Symbol()
		if g.count > 1 {
			s += "^" + strconv.Itoa(g.count)
		}
		parts = append(parts, s)
	}

	return strings.Join(parts, sep)
}

// String renders "<scalar> <units>", e.g. "1.5 kg*m/s^2". The output is
// accepted by the Standard grammar of the same system.
func (q Quantity) String() string {
	u := q.Units()
	if u == "" {
		return q.scalar.String()
	}

	return q.scalar.String() + " " + u
}

// Format implements fmt.Formatter. %v and %s print String(); the float
// verbs %e %E %f %F %g %G format the scalar (honouring precision) and
// append the units, so fmt.Sprintf("%.2f", q) gives "3.28 ft".
func (q Quantity) Format(f fmt.State, verb rune) {
	var s string
	switch verb {
	case 'v', 's':
		s = q.String()
	case 'e', 'E', 'f', 'F', 'g', 'G':
		prec, ok := f.Precision()
		if !ok {
			prec = -1
			if verb != 'g' && verb != 'G' {
				prec = 6
			}
		}
		fv := byte(verb)
		if fv == 'F' {
			fv = 'f'
		}
		s = q.scalar.Text(fv, prec)
		if u := q.Units(); u != "" {
			s += " " + u
		}
	default:
		s = fmt.Sprintf("%%!%c(quantity=%s)", verb, q.String())
	}

	if w, ok := f.Width(); ok && len(s) < w {
		pad := strings.Repeat(" ", w-len(s))
		if f.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}
	_, _ = fmt.Fprint(f, s)
}
