// Package config holds the run configuration of the dpalign command: the
// scoring model, the gap marker, which aligners to run and the output format.
//
// A configuration is a YAML document:
//
//	scoring:
//	  match: 1
//	  mismatch: -1
//	  gap_open: 2
//	  gap_extend: 1
//	gap_marker: "-"
//	algorithms: [global, local, affine]
//	format: text
//
// Keys that are absent keep their Default() value.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"
	cerrors "cloudeng.io/errors"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/scoring"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config is the complete run configuration.
type Config struct {
	Scoring    scoring.Model `yaml:"scoring"`
	GapMarker  string        `yaml:"gap_marker"`
	Algorithms []string      `yaml:"algorithms"`
	Format     string        `yaml:"format"`
}

// Default returns the default model, '-' as gap marker, all three
// algorithms and text output.
func Default() Config {
	kinds := align.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}

	return Config{
		Scoring:    scoring.Default(),
		GapMarker:  string(align.DefaultGapMarker),
		Algorithms: names,
		Format:     FormatText,
	}
}

// Parse overlays the YAML document in data on Default() and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := cmdutil.ParseYAMLConfig(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads path and behaves like Parse.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := cmdutil.ParseYAMLConfigFile(path, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	errs := &cerrors.M{}
	errs.Append(c.Scoring.Validate())

	if r, size := utf8.DecodeRuneInString(c.GapMarker); size == 0 || size != len(c.GapMarker) || !align.ValidGapMarker(r) {
		errs.Append(fmt.Errorf("%w: gap_marker %q must be a single printable character", ErrInvalidConfig, c.GapMarker))
	}

	if len(c.Algorithms) == 0 {
		errs.Append(fmt.Errorf("%w: algorithms must not be empty", ErrInvalidConfig))
	}
	for _, a := range c.Algorithms {
		if err := flags.OneOf(a).Validate(align.Global.String(), align.Local.String(), align.GlobalAffine.String()); err != nil {
			errs.Append(fmt.Errorf("%w: algorithms: %v", ErrInvalidConfig, err))
		}
	}

	if err := flags.OneOf(c.Format).Validate(FormatText, FormatYAML); err != nil {
		errs.Append(fmt.Errorf("%w: format: %v", ErrInvalidConfig, err))
	}

	return errs.Err()
}

// Kinds maps Algorithms to align kinds, in the listed order with
// duplicates dropped.
func (c Config) Kinds() ([]align.Kind, error) {
	kinds := make([]align.Kind, 0, len(c.Algorithms))
	seen := make(map[align.Kind]bool, len(c.Algorithms))
	for _, a := range c.Algorithms {
		k, err := align.ParseKind(a)
		if err != nil {
			return nil, err
		}
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}

	return kinds, nil
}

// GapRune returns the gap marker as a rune. Call after Validate.
func (c Config) GapRune() rune {
	r, _ := utf8.DecodeRuneInString(c.GapMarker)

	return r
}

// Options converts the configuration into aligner options.
func (c Config) Options(keepMatrices bool) []align.Option {
	opts := []align.Option{align.WithGapMarker(c.GapRune())}
	if keepMatrices {
		opts = append(opts, align.WithMatrices())
	}

	return opts
}
