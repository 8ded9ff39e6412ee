// Command dpalign aligns two sequences with the Needleman-Wunsch,
// Smith-Waterman and Needleman-Wunsch-Gotoh algorithms and prints the
// aligned pairs.
//
// Usage:
//
//	dpalign [flags] [target [query]]
//
// target and query default to ACCAGT and ACAGC. Settings are taken from
// the defaults, then the --config file, then the flags that were given.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	cerrors "cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/config"
	"github.com/katalvlaran/seqalign/sequence"
)

const spec = `name: dpalign
summary: pairwise sequence alignment by dynamic programming
arguments:
  - ...
`

// Default pair when no positional arguments are given.
const (
	defaultTarget = "ACCAGT"
	defaultQuery  = "ACAGC"
)

type dpalignFlags struct {
	Config     string `subcmd:"config,,'YAML configuration file'"`
	Match      string `subcmd:"match,,'score for equal symbols (default 1)'"`
	Mismatch   string `subcmd:"mismatch,,'score for unequal symbols (default -1)'"`
	GapOpen    string `subcmd:"gap-open,,'linear gap cost and affine gap-open cost (default 2)'"`
	GapExtend  string `subcmd:"gap-extend,,'affine gap-extension cost (default 1)'"`
	GapMarker  string `subcmd:"gap-marker,,'character printed for a gap (default -)'"`
	Algorithms string `subcmd:"algorithms,,'comma separated list of global, local, affine (default all)'"`
	Format     string `subcmd:"format,,'output format: text or yaml (default text)'"`
	Debug      bool   `subcmd:"debug,false,'print the filled DP matrices'"`
	cmdutil.LoggingFlags
}

// newCommandSet wires the runner to out.
func newCommandSet(out io.Writer) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(spec)
	r := &runner{out: out}
	cmdSet.Set("dpalign").MustRunnerAndFlags(r.run, subcmd.MustRegisteredFlagSet(&dpalignFlags{}))

	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet(os.Stdout))
}

type runner struct {
	out io.Writer
}

func (r *runner) run(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*dpalignFlags)

	logger, err := fv.LoggingConfig().NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()
	ctx = ctxlog.Context(ctx, logger.Logger)

	cfg, err := resolve(fv)
	if err != nil {
		return err
	}
	target, query, err := sequences(args)
	if err != nil {
		return err
	}
	kinds, err := cfg.Kinds()
	if err != nil {
		return err
	}

	ctxlog.Logger(ctx).Info("aligning",
		"target_len", target.Len(),
		"query_len", query.Len(),
		"algorithms", cfg.Algorithms,
	)

	results := make([]align.Result, 0, len(kinds))
	for _, kind := range kinds {
		res, err := align.Align(ctx, kind, target, query, cfg.Scoring, cfg.Options(fv.Debug)...)
		if err != nil {
			return fmt.Errorf("%s: %w", kind.Algorithm(), err)
		}
		results = append(results, res)
	}

	if cfg.Format == config.FormatYAML {
		return writeYAML(r.out, target, query, results)
	}

	return writeText(r.out, target, query, results, fv.Debug)
}

func sequences(args []string) (target, query sequence.Sequence, err error) {
	if len(args) > 2 {
		return target, query, fmt.Errorf("at most two arguments (target, query) are allowed, got %d", len(args))
	}
	t, q := defaultTarget, defaultQuery
	if len(args) > 0 {
		t = args[0]
	}
	if len(args) > 1 {
		q = args[1]
	}

	return sequence.New(t), sequence.New(q), nil
}

// resolve layers the flags that were given over the config file (or the
// defaults) and validates the result.
func resolve(fv *dpalignFlags) (config.Config, error) {
	cfg := config.Default()
	if fv.Config != "" {
		var err error
		if cfg, err = config.Load(fv.Config); err != nil {
			return config.Config{}, err
		}
	}

	errs := &cerrors.M{}
	for _, f := range []struct {
		name string
		val  string
		dst  *float64
	}{
		{"match", fv.Match, &cfg.Scoring.Match},
		{"mismatch", fv.Mismatch, &cfg.Scoring.Mismatch},
		{"gap-open", fv.GapOpen, &cfg.Scoring.GapOpen},
		{"gap-extend", fv.GapExtend, &cfg.Scoring.GapExtend},
	} {
		if f.val == "" {
			continue
		}
		v, err := strconv.ParseFloat(f.val, 64)
		if err != nil {
			errs.Append(fmt.Errorf("--%s: %w", f.name, err))
			continue
		}
		*f.dst = v
	}
	if err := errs.Err(); err != nil {
		return config.Config{}, err
	}

	if fv.GapMarker != "" {
		cfg.GapMarker = fv.GapMarker
	}
	if fv.Algorithms != "" {
		cfg.Algorithms = cfg.Algorithms[:0:0]
		for _, a := range strings.Split(fv.Algorithms, ",") {
			cfg.Algorithms = append(cfg.Algorithms, strings.TrimSpace(a))
		}
	}
	if fv.Format != "" {
		cfg.Format = fv.Format
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}
