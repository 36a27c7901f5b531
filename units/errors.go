// SPDX-License-Identifier: MIT

package units

import "errors"

var (
	// ErrUnknownVariant indicates a grammar variant name or value that does
	// not exist.
	ErrUnknownVariant = errors.New("units: unknown grammar variant")

	// ErrNilSystem indicates NewEngine was called without a unit system.
	ErrNilSystem = errors.New("units: nil unit system")
)
