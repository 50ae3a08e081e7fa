// SPDX-License-Identifier: MIT
package instance

import (
	"errors"

	"github.com/katalvlaran/knapsack/problem"
)

var (
	// ErrMalformedLine indicates a missing or non-numeric field.
	ErrMalformedLine = errors.New("instance: malformed line")

	// ErrOutOfRange indicates a field that does not fit its integer type.
	ErrOutOfRange = errors.New("instance: value out of range")

	// ErrItemCountMismatch indicates that the declared item count differs
	// from the number of item fields that follow.
	ErrItemCountMismatch = errors.New("instance: item count mismatch")
)

// Reference is one parsed solution line.
type Reference struct {
	ID        int
	Size      int
	Price     int
	Selection problem.Selection
}
