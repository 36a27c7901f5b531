// SPDX-License-Identifier: MIT

package grammar

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is the class of every parse failure; *ParseError unwraps to it.
	ErrParse = errors.New("grammar: parse failure")

	// ErrEmptyInput indicates blank text.
	ErrEmptyInput = errors.New("grammar: empty input")

	// ErrNonASCII indicates a non-ASCII byte in UCUM input.
	ErrNonASCII = errors.New("grammar: non-ASCII character")

	// ErrNilSystem indicates a grammar constructed without a unit system.
	ErrNilSystem = errors.New("grammar: nil unit system")
)

// ParseError reports input a grammar could not consume completely.
// Offset is a byte offset into Input, the normalized text actually parsed.
type ParseError struct {
	Grammar   string
	Input     string
	Offset    int
	Remainder string
	Err       error // optional cause (ErrEmptyInput, ErrNonASCII, ...)
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("grammar: %s: cannot parse %q at offset %d", e.Grammar, e.Input, e.Offset)
	if e.Remainder != "" {
		msg += fmt.Sprintf(" (unmatched %q)", e.Remainder)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes ErrParse and the optional cause to errors.Is.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}

	return []error{ErrParse, e.Err}
}

func parseError(grammar, input string, offset int, cause error) *ParseError {
	return &ParseError{
		Grammar:   grammar,
		Input:     input,
		Offset:    offset,
		Remainder: input[offset:],
		Err:       cause,
	}
}
