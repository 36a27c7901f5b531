package grammar

// Numeric literal scanners. Each returns nil and restores the cursor when the
// text at pos is not the literal it recognises.

// number scans
//
//	scalar := mixed_fraction | complex | rational | scientific | decimal | integer
//
// in that order; sep enables ',' and '_' thousands separators.
func (c *cursor) number(sep bool) Node {
	if n := c.mixedFraction(sep); n != nil {
		return n
	}
	if n := c.complexNumber(sep); n != nil {
		return n
	}
	if n := c.rational(sep); n != nil {
		return n
	}

	return c.simpleNumber(sep)
}

// simpleNumber scans scientific | decimal | integer.
func (c *cursor) simpleNumber(sep bool) Node {
	if n := c.scientific(sep); n != nil {
		return n
	}

	return c.real(sep)
}

// groupedInt scans \d{1,3}([,_]\d{3})+.
func (c *cursor) groupedInt() string {
	start := c.pos
	lead := c.digits()
	if len(lead) == 0 || len(lead) > 3 {
		c.pos = start
		return ""
	}
	groups := 0
	for {
		b := c.peek(0)
		if (b != ',' && b != '_') ||
			!isDigit(c.peek(1)) || !isDigit(c.peek(2)) || !isDigit(c.peek(3)) || isDigit(c.peek(4)) {
			break
		}
		c.pos += 4
		groups++
	}
	if groups == 0 {
		c.pos = start
		return ""
	}

	return c.src[start:c.pos]
}

func (c *cursor) unsignedInt(sep bool) string {
	if sep {
		if s := c.groupedInt(); s != "" {
			return s
		}
	}

	return c.digits()
}

func (c *cursor) signedInt(sep bool) *Integer {
	start := c.pos
	c.sign()
	if c.unsignedInt(sep) == "" {
		c.pos = start
		return nil
	}

	return &Integer{Text: c.src[start:c.pos]}
}

// real scans a signed integer or decimal ("12", "-1,000.5", ".25").
func (c *cursor) real(sep bool) Node {
	start := c.pos
	c.sign()
	intPart := c.unsignedInt(sep)
	if c.peek(0) == '.' && isDigit(c.peek(1)) {
		c.pos++
		c.digits()

		return &Decimal{Text: c.src[start:c.pos]}
	}
	if intPart == "" {
		c.pos = start
		return nil
	}

	return &Integer{Text: c.src[start:c.pos]}
}

func (c *cursor) scientific(sep bool) *Scientific {
	start := c.pos
	mantissa := c.real(sep)
	if mantissa == nil {
		return nil
	}
	if b := c.peek(0); b != 'e' && b != 'E' {
		c.pos = start
		return nil
	}
	c.pos++
	expStart := c.pos
	c.sign()
	if c.digits() == "" {
		c.pos = start
		return nil
	}

	return &Scientific{Mantissa: mantissa, Exponent: &Integer{Text: c.src[expStart:c.pos]}}
}

// rational scans a/b with no surrounding whitespace; "1/2.5" is not one.
func (c *cursor) rational(sep bool) *Rational {
	start := c.pos
	num := c.signedInt(sep)
	if num == nil || c.peek(0) != '/' || !isDigit(c.peek(1)) {
		c.pos = start
		return nil
	}
	c.pos++
	den := c.unsignedInt(sep)
	if c.peek(0) == '.' && isDigit(c.peek(1)) {
		c.pos = start
		return nil
	}

	return &Rational{Numerator: num, Denominator: &Integer{Text: den}}
}

// mixedFraction scans "a b/c" or "a-b/c".
func (c *cursor) mixedFraction(sep bool) *MixedFraction {
	start := c.pos
	whole := c.signedInt(sep)
	if whole == nil {
		return nil
	}
	if c.peek(0) == '-' {
		c.pos++
	} else if c.skipSpace() == 0 {
		c.pos = start
		return nil
	}
	if !isDigit(c.peek(0)) {
		c.pos = start
		return nil
	}
	frac := c.rational(sep)
	if frac == nil {
		c.pos = start
		return nil
	}

	return &MixedFraction{Whole: whole, Fraction: frac}
}

// complexNumber scans a±bi or bi; the 'i' must not start a word.
func (c *cursor) complexNumber(sep bool) *Complex {
	start := c.pos
	re := c.real(sep)
	if re == nil {
		return nil
	}
	if c.peek(0) == 'i' && !letterAt(c.src, c.pos+1) {
		c.pos++
		return &Complex{Imaginary: re}
	}
	if b := c.peek(0); b != '+' && b != '-' {
		c.pos = start
		return nil
	}
	im := c.real(sep)
	if im == nil || c.peek(0) != 'i' || letterAt(c.src, c.pos+1) {
		c.pos = start
		return nil
	}
	c.pos++

	return &Complex{Real: re, Imaginary: im}
}

// timeOfDay scans h:mm[:ss[.f]].
func (c *cursor) timeOfDay() *TimeOfDay {
	start := c.pos
	h := c.digits()
	if len(h) == 0 || len(h) > 2 || c.peek(0) != ':' {
		c.pos = start
		return nil
	}
	c.pos++
	m := c.digits()
	if len(m) != 2 {
		c.pos = start
		return nil
	}
	t := &TimeOfDay{Hours: &Integer{Text: h}, Minutes: &Integer{Text: m}}
	if c.peek(0) == ':' && isDigit(c.peek(1)) {
		c.pos++
		secStart := c.pos
		if len(c.digits()) != 2 {
			c.pos = start
			return nil
		}
		if c.peek(0) == '.' && isDigit(c.peek(1)) {
			c.pos++
			c.digits()
			t.Seconds = &Decimal{Text: c.src[secStart:c.pos]}
		} else {
			t.Seconds = &Integer{Text: c.src[secStart:c.pos]}
		}
	}

	return t
}
