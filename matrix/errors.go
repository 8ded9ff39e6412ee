// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All public methods return these sentinels (possibly wrapped with call-site
// context via %w) and tests MUST check them with errors.Is. No method panics
// on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so log lines are easy to grep.
// Detection sites wrap with fmt.Errorf("Dense.<Method>(i,j): %w", ErrX).
//
// ERROR PRIORITY: shape -> index -> numeric policy.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or a forbidden infinity reached Set/Fill.
	// -Inf is accepted only by matrices created WithNegInf.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
