// Package scoring defines the substitution and gap-penalty parameters of the
// pairwise alignment DP.
//
// A Model is a plain value: construct it once per alignment request and pass
// it by value. Gap penalties are COSTS (non-negative numbers subtracted from
// the score); Match and Mismatch are added as-is.
//
// Defaults:
//   - Match     =  1
//   - Mismatch  = -1
//   - GapOpen   =  2 (cost of a gap position in the linear models; cost of the
//     first position of a gap run in the affine model)
//   - GapExtend =  1 (cost of each further position of an affine gap run)
//
// Errors (sentinel):
//   - ErrInvalidModel if a field is NaN/±Inf or a gap penalty is negative.
//
// Example usage:
//
//	m, err := scoring.New(scoring.WithMismatch(-2), scoring.WithGapOpen(3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.Substitution('A', 'C')) // -2
package scoring

import (
	"errors"
	"fmt"
	"math"

	cerrors "cloudeng.io/errors"
)

// ErrInvalidModel indicates that a Model field violates its contract.
var ErrInvalidModel = errors.New("scoring: invalid model")

// Default parameters (single source of truth for Default()).
const (
	DefaultMatch     = 1.0
	DefaultMismatch  = -1.0
	DefaultGapOpen   = 2.0
	DefaultGapExtend = 1.0
)

// Model holds the scoring parameters.
type Model struct {
	Match     float64 `yaml:"match"`      // score for equal symbols
	Mismatch  float64 `yaml:"mismatch"`   // score for unequal symbols
	GapOpen   float64 `yaml:"gap_open"`   // linear gap cost / affine open cost
	GapExtend float64 `yaml:"gap_extend"` // affine extension cost
}

// Default returns the documented default model.
func Default() Model {
	return Model{
		Match:     DefaultMatch,
		Mismatch:  DefaultMismatch,
		GapOpen:   DefaultGapOpen,
		GapExtend: DefaultGapExtend,
	}
}

// Option represents a functional option for configuring a Model.
type Option func(*Model)

// WithMatch sets the score for equal symbols.
func WithMatch(v float64) Option {
	return func(m *Model) { m.Match = v }
}

// WithMismatch sets the score for unequal symbols.
func WithMismatch(v float64) Option {
	return func(m *Model) { m.Mismatch = v }
}

// WithGapOpen sets the linear gap cost (and the affine gap-open cost).
func WithGapOpen(v float64) Option {
	return func(m *Model) { m.GapOpen = v }
}

// WithGapExtend sets the affine gap-extension cost.
func WithGapExtend(v float64) Option {
	return func(m *Model) { m.GapExtend = v }
}

// New applies opts on top of Default() and validates the result.
func New(opts ...Option) (Model, error) {
	m := Default()
	for _, opt := range opts {
		opt(&m)
	}
	if err := m.Validate(); err != nil {
		return Model{}, err
	}

	return m, nil
}

// Substitution returns Match when a == b and Mismatch otherwise.
func (m Model) Substitution(a, b rune) float64 {
	if a == b {
		return m.Match
	}

	return m.Mismatch
}

// IsLinear reports whether every gap position costs the same. The affine
// score then equals the linear one only when Mismatch >= -2·GapOpen: the
// affine recurrence never puts a query gap directly next to a target gap,
// so a cheaper gap pair cannot replace a mismatch.
func (m Model) IsLinear() bool {
	return m.GapOpen == m.GapExtend
}

// Validate checks every field and reports all violations at once.
// Each reported error wraps ErrInvalidModel.
func (m Model) Validate() error {
	errs := &cerrors.M{}
	for _, f := range []struct {
		name string
		v    float64
		cost bool
	}{
		{"match", m.Match, false},
		{"mismatch", m.Mismatch, false},
		{"gap_open", m.GapOpen, true},
		{"gap_extend", m.GapExtend, true},
	} {
		switch {
		case math.IsNaN(f.v) || math.IsInf(f.v, 0):
			errs.Append(fmt.Errorf("%w: %s=%v is not finite", ErrInvalidModel, f.name, f.v))
		case f.cost && f.v < 0:
			errs.Append(fmt.Errorf("%w: %s=%v must be a non-negative cost", ErrInvalidModel, f.name, f.v))
		}
	}

	return errs.Err()
}
