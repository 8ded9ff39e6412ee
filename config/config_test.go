package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/config"
	"github.com/katalvlaran/seqalign/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault validates and lists every kind in canonical order.
func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, scoring.Default(), cfg.Scoring)
	assert.Equal(t, "-", cfg.GapMarker)
	assert.Equal(t, '-', cfg.GapRune())
	assert.Equal(t, config.FormatText, cfg.Format)

	kinds, err := cfg.Kinds()
	require.NoError(t, err)
	assert.Equal(t, align.Kinds(), kinds)
}

// TestParse_Partial keeps defaults for absent keys.
func TestParse_Partial(t *testing.T) {
	cfg, err := config.Parse([]byte(`
scoring:
  mismatch: -3
  gap_open: 4
algorithms: [affine, global, affine]
format: yaml
`))
	require.NoError(t, err)
	assert.Equal(t, scoring.Model{Match: 1, Mismatch: -3, GapOpen: 4, GapExtend: 1}, cfg.Scoring)
	assert.Equal(t, "-", cfg.GapMarker)
	assert.Equal(t, config.FormatYAML, cfg.Format)

	kinds, err := cfg.Kinds()
	require.NoError(t, err)
	assert.Equal(t, []align.Kind{align.GlobalAffine, align.Global}, kinds, "listed order, duplicates dropped")
}

// TestParse_Invalid reports all violations in one error.
func TestParse_Invalid(t *testing.T) {
	_, err := config.Parse([]byte(`
scoring: {gap_extend: -1}
gap_marker: "ab"
algorithms: [global, semi]
format: html
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, scoring.ErrInvalidModel)
	msg := err.Error()
	assert.Contains(t, msg, "gap_extend=-1")
	assert.Contains(t, msg, `gap_marker "ab"`)
	assert.Contains(t, msg, `"semi"`)
	assert.Contains(t, msg, `"html"`)
}

// TestValidate_EmptyFields rejects an empty gap marker and algorithm list.
func TestValidate_EmptyFields(t *testing.T) {
	cfg := config.Default()
	cfg.GapMarker = ""
	cfg.Algorithms = nil
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gap_marker")
	assert.Contains(t, err.Error(), "algorithms must not be empty")

	cfg = config.Default()
	cfg.GapMarker = "\t"
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
}

// TestParse_Malformed surfaces YAML syntax errors.
func TestParse_Malformed(t *testing.T) {
	_, err := config.Parse([]byte("scoring: [1, 2\n"))
	assert.Error(t, err)

	_, err = config.Parse([]byte("scoring:\n  match: high\n"))
	assert.Error(t, err)
}

// TestLoad reads a file from disk.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dpalign.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gap_marker: \"_\"\nalgorithms: [local]\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, '_', cfg.GapRune())
	assert.Equal(t, []string{"local"}, cfg.Algorithms)
	assert.Len(t, cfg.Options(true), 2)
	assert.Len(t, cfg.Options(false), 1)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("format: pdf\n"), 0o600))
	_, err = config.Load(bad)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), bad)
}
