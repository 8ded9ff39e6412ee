package sequence

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates that a position lies outside [1, Len()].
var ErrOutOfRange = errors.New("sequence: position out of range")

// Sequence is a read-only, 1-indexed view over an ordered list of symbols.
// The zero value is the empty sequence.
type Sequence struct {
	symbols []rune // 0-based storage; position p lives at symbols[p-1]
}

// New builds a Sequence from s. The input is copied; later changes to the
// caller's data cannot leak in.
func New(s string) Sequence {
	return Sequence{symbols: []rune(s)}
}

// Len returns the number of symbols.
func (s Sequence) Len() int { return len(s.symbols) }

// String returns the symbols as a string.
func (s Sequence) String() string { return string(s.symbols) }

// At returns the symbol at 1-based position pos.
//
// Errors:
//   - ErrOutOfRange when pos < 1 or pos > Len().
func (s Sequence) At(pos int) (rune, error) {
	if pos < 1 || pos > len(s.symbols) {
		return 0, fmt.Errorf("sequence.At(%d): len=%d: %w", pos, len(s.symbols), ErrOutOfRange)
	}

	return s.symbols[pos-1], nil
}

// Slice returns positions from..to (1-based, inclusive) as a new Sequence.
// from == to+1 selects the empty sequence, so Slice(1, 0) is always valid.
//
// Errors:
//   - ErrOutOfRange when the range does not lie inside [1, Len()].
func (s Sequence) Slice(from, to int) (Sequence, error) {
	if from < 1 || to > len(s.symbols) || from > to+1 {
		return Sequence{}, fmt.Errorf("sequence.Slice(%d,%d): len=%d: %w", from, to, len(s.symbols), ErrOutOfRange)
	}
	out := make([]rune, to-from+1)
	copy(out, s.symbols[from-1:to])

	return Sequence{symbols: out}, nil
}

// Symbols returns a copy of the symbols padded to 1-based positions:
// syms[p] is the symbol at position p and syms[0] is unused.
// DP kernels use it to index target and query with the same (i, j)
// coordinates as their recurrences.
func (s Sequence) Symbols() []rune {
	out := make([]rune, len(s.symbols)+1)
	copy(out[1:], s.symbols)

	return out
}
