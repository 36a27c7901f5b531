// SPDX-License-Identifier: MIT

package systems

import "errors"

// ErrUnknownSystem indicates a stock system name that does not exist.
var ErrUnknownSystem = errors.New("systems: unknown unit system")
