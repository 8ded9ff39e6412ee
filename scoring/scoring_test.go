package scoring_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/seqalign/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault verifies the documented defaults.
func TestDefault(t *testing.T) {
	m := scoring.Default()
	assert.Equal(t, 1.0, m.Match)
	assert.Equal(t, -1.0, m.Mismatch)
	assert.Equal(t, 2.0, m.GapOpen)
	assert.Equal(t, 1.0, m.GapExtend)
	assert.NoError(t, m.Validate())
	assert.False(t, m.IsLinear())
}

// TestNew_Options applies every option and checks the result.
func TestNew_Options(t *testing.T) {
	m, err := scoring.New(
		scoring.WithMatch(5),
		scoring.WithMismatch(-4),
		scoring.WithGapOpen(10),
		scoring.WithGapExtend(10),
	)
	require.NoError(t, err)
	assert.Equal(t, scoring.Model{Match: 5, Mismatch: -4, GapOpen: 10, GapExtend: 10}, m)
	assert.True(t, m.IsLinear())
}

// TestSubstitution checks the match/mismatch switch.
func TestSubstitution(t *testing.T) {
	m := scoring.Default()
	assert.Equal(t, 1.0, m.Substitution('A', 'A'))
	assert.Equal(t, -1.0, m.Substitution('A', 'C'))
	assert.Equal(t, -1.0, m.Substitution('a', 'A'), "comparison is case-sensitive")
}

// TestValidate_ReportsAllViolations ensures every bad field is reported.
func TestValidate_ReportsAllViolations(t *testing.T) {
	m := scoring.Model{
		Match:     math.NaN(),
		Mismatch:  -1,
		GapOpen:   -2,
		GapExtend: math.Inf(1),
	}
	err := m.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, scoring.ErrInvalidModel)
	assert.Contains(t, err.Error(), "match=NaN")
	assert.Contains(t, err.Error(), "gap_open=-2")
	assert.Contains(t, err.Error(), "gap_extend=+Inf")
	assert.NotContains(t, err.Error(), "mismatch=")
}

// TestNew_Invalid returns the zero Model with the validation error.
func TestNew_Invalid(t *testing.T) {
	m, err := scoring.New(scoring.WithGapExtend(-1))
	assert.ErrorIs(t, err, scoring.ErrInvalidModel)
	assert.Equal(t, scoring.Model{}, m)
}

// TestValidate_ZeroCostsAllowed ensures zero gap penalties are legal.
func TestValidate_ZeroCostsAllowed(t *testing.T) {
	_, err := scoring.New(scoring.WithGapOpen(0), scoring.WithGapExtend(0))
	assert.NoError(t, err)
}
