package grammar

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// cursor is a byte position over normalized input. Every scanning method
// either advances past what it recognised or leaves pos untouched.
type cursor struct {
	src string
	pos int
}

func (c *cursor) eof() bool { return c.pos >= len(c.src) }

func (c *cursor) rest() string { return c.src[c.pos:] }

// peek returns the byte at pos+off, or 0 past the end.
func (c *cursor) peek(off int) byte {
	if c.pos+off >= len(c.src) {
		return 0
	}

	return c.src[c.pos+off]
}

func (c *cursor) accept(s string) bool {
	if strings.HasPrefix(c.rest(), s) {
		c.pos += len(s)
		return true
	}

	return false
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// skipSpace consumes whitespace and reports how many bytes it skipped.
func (c *cursor) skipSpace() int {
	start := c.pos
	for !c.eof() && isSpace(c.src[c.pos]) {
		c.pos++
	}

	return c.pos - start
}

// digits consumes [0-9]+ and returns them ("" when none).
func (c *cursor) digits() string {
	start := c.pos
	for !c.eof() && isDigit(c.src[c.pos]) {
		c.pos++
	}

	return c.src[start:c.pos]
}

// sign consumes an optional '+' or '-'.
func (c *cursor) sign() string {
	if b := c.peek(0); b == '+' || b == '-' {
		c.pos++
		return string(b)
	}

	return ""
}

// letterAt reports whether a letter starts at byte offset i of s.
func letterAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])

	return unicode.IsLetter(r)
}
