package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/sequence"
)

// writeText prints one block per result:
//
//	# Smith-Waterman
//	Target: ACCAGT
//	Query:  ACAGC
//	Score:  3
//	Window: target 3..5, query 2..4
//	Target: CAG
//	Query:  CAG
//
// With debug set, every retained layer is dumped after the input pair.
func writeText(w io.Writer, target, query sequence.Sequence, results []align.Result, debug bool) error {
	var b strings.Builder
	for _, res := range results {
		fmt.Fprintf(&b, "# %s\n", res.Kind.Algorithm())
		fmt.Fprintf(&b, "Target: %s\n", target)
		fmt.Fprintf(&b, "Query:  %s\n", query)
		if debug {
			for _, l := range res.Matrices {
				fmt.Fprintf(&b, "%s:\n%s", l.Name, l.Matrix)
			}
		}
		fmt.Fprintf(&b, "Score:  %g\n", res.Score)
		if res.Kind == align.Local {
			win := res.Window
			fmt.Fprintf(&b, "Window: target %d..%d, query %d..%d\n", win.TargetStart, win.TargetEnd, win.QueryStart, win.QueryEnd)
		}
		fmt.Fprintf(&b, "Target: %s\n", res.TargetAligned)
		fmt.Fprintf(&b, "Query:  %s\n", res.QueryAligned)
	}
	_, err := io.WriteString(w, b.String())

	return err
}

type yamlReport struct {
	Target  string       `yaml:"target"`
	Query   string       `yaml:"query"`
	Results []yamlResult `yaml:"results"`
}

type yamlResult struct {
	Algorithm     string      `yaml:"algorithm"`
	Kind          string      `yaml:"kind"`
	Score         float64     `yaml:"score"`
	TargetAligned string      `yaml:"target_aligned"`
	QueryAligned  string      `yaml:"query_aligned"`
	Window        yamlWindow  `yaml:"window"`
	Stats         yamlStats   `yaml:"stats"`
	Matrices      []yamlLayer `yaml:"matrices,omitempty"`
}

type yamlWindow struct {
	TargetStart int `yaml:"target_start"`
	TargetEnd   int `yaml:"target_end"`
	QueryStart  int `yaml:"query_start"`
	QueryEnd    int `yaml:"query_end"`
}

type yamlStats struct {
	Columns    int     `yaml:"columns"`
	Matches    int     `yaml:"matches"`
	Mismatches int     `yaml:"mismatches"`
	Gaps       int     `yaml:"gaps"`
	Identity   float64 `yaml:"identity"`
}

type yamlLayer struct {
	Name string      `yaml:"name"`
	Rows [][]float64 `yaml:"rows,flow"`
}

func writeYAML(w io.Writer, target, query sequence.Sequence, results []align.Result) error {
	rep := yamlReport{Target: target.String(), Query: query.String()}
	for _, res := range results {
		st := res.Stats()
		yr := yamlResult{
			Algorithm:     res.Kind.Algorithm(),
			Kind:          res.Kind.String(),
			Score:         res.Score,
			TargetAligned: res.TargetAligned,
			QueryAligned:  res.QueryAligned,
			Window: yamlWindow{
				TargetStart: res.Window.TargetStart,
				TargetEnd:   res.Window.TargetEnd,
				QueryStart:  res.Window.QueryStart,
				QueryEnd:    res.Window.QueryEnd,
			},
			Stats: yamlStats{
				Columns:    st.Columns,
				Matches:    st.Matches,
				Mismatches: st.Mismatches,
				Gaps:       st.Gaps,
				Identity:   st.Identity(),
			},
		}
		for _, l := range res.Matrices {
			layer := yamlLayer{Name: l.Name}
			for i := 0; i < l.Matrix.Rows(); i++ {
				row, err := l.Matrix.Row(i)
				if err != nil {
					return err
				}
				layer.Rows = append(layer.Rows, append([]float64(nil), row...))
			}
			yr.Matrices = append(yr.Matrices, layer)
		}
		rep.Results = append(rep.Results, yr)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}
