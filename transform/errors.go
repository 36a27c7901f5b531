// SPDX-License-Identifier: MIT

package transform

import "errors"

var (
	// ErrUnknownNode indicates a grammar.Node variant the Transformer does not
	// handle.
	ErrUnknownNode = errors.New("transform: unknown parse-tree node")

	// ErrExponentRange indicates a scientific, ten-power or "^" exponent too large
	// to evaluate exactly.
	ErrExponentRange = errors.New("transform: exponent out of range")

	// ErrNilSystem indicates a Transformer without a unit system.
	ErrNilSystem = errors.New("transform: nil unit system")
)
