// Package sequence defines the immutable symbol sequence consumed by the
// aligners.
//
// Positions are 1-based, as in the alignment literature: position 1 is the
// first symbol and position Len() the last. Storage is 0-based; the +1
// offset lives in this package only. Accessing position 0 or Len()+1 is an
// explicit error (ErrOutOfRange), never a zero rune.
//
// Symbols are runes, so any text can be aligned. No alphabet is enforced.
package sequence
