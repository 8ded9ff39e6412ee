package align

import (
	"context"

	"github.com/katalvlaran/seqalign/scoring"
	"github.com/katalvlaran/seqalign/sequence"
)

// needlemanWunsch is global alignment, linear gap penalty g = GapOpen.
//
//	M(i,0) = -g·i, M(0,j) = -g·j
//	M(i,j) = max( M(i-1,j-1) + s(t_i,q_j), M(i,j-1) - g, M(i-1,j) - g )
//	score  = M(n,m)
type needlemanWunsch struct {
	opts Options
}

func (a *needlemanWunsch) Kind() Kind { return Global }

func (a *needlemanWunsch) sealed() {}

func (a *needlemanWunsch) Align(ctx context.Context, target, query sequence.Sequence, model scoring.Model) (Result, error) {
	p, err := newProblem(target, query, model)
	if err != nil {
		return Result{}, err
	}
	tab, err := newTable(p.n, p.m)
	if err != nil {
		return Result{}, err
	}

	// Fill: row 0, then rows 1..n left to right.
	p.linearFirstRow(tab.rows[0])
	for i := 1; i <= p.n; i++ {
		if err = rowCheck(ctx, i); err != nil {
			return Result{}, err
		}
		p.linearRow(i, tab.rows[i-1], tab.rows[i])
	}

	res := Result{
		Kind:      Global,
		Score:     tab.rows[p.n][p.m],
		GapMarker: a.opts.GapMarker,
		Window:    p.fullWindow(),
	}
	res.TargetAligned, res.QueryAligned = p.linearTraceback(tab.rows, a.opts.GapMarker)
	if a.opts.KeepMatrices {
		res.Matrices = []Layer{{Name: "M", Matrix: tab.dense}}
	}
	logResult(ctx, p, res)

	return res, nil
}

// linearFirstRow initializes M(0,j). Boundary cells are accumulated one gap
// at a time so that traceback equality tests hold bit-for-bit.
func (p *problem) linearFirstRow(row []float64) {
	g := p.model.GapOpen
	row[0] = 0
	for j := 1; j <= p.m; j++ {
		row[j] = row[j-1] - g
	}
}

// linearRow computes row i of the global recurrence from row i-1 (up).
func (p *problem) linearRow(i int, up, cur []float64) {
	g := p.model.GapOpen
	ti := p.t[i]
	cur[0] = up[0] - g
	for j := 1; j <= p.m; j++ {
		cur[j] = max(
			up[j-1]+p.model.Substitution(ti, p.q[j]), // diagonal
			cur[j-1]-g, // left: consumes query
			up[j]-g,    // up: consumes target
		)
	}
}

// linearTraceback walks from (n,m) to (0,0), re-deriving each step.
// Tie precedence: up (gap in query), then left (gap in target), then diagonal.
func (p *problem) linearTraceback(rows [][]float64, gap rune) (string, string) {
	g := p.model.GapOpen
	tr := newTrace(gap, p.n+p.m)
	i, j := p.n, p.m
	for i > 0 || j > 0 {
		score := rows[i][j]
		switch {
		case i > 0 && (j == 0 || score == rows[i-1][j]-g):
			tr.deletion(p.t[i])
			i--
		case j > 0 && (i == 0 || score == rows[i][j-1]-g):
			tr.insertion(p.q[j])
			j--
		default:
			tr.pair(p.t[i], p.q[j])
			i--
			j--
		}
	}

	return tr.strings()
}

// linearScore runs the global recurrence over two rolling rows.
func (p *problem) linearScore(ctx context.Context) (float64, error) {
	up, cur := make([]float64, p.m+1), make([]float64, p.m+1)
	p.linearFirstRow(up)
	for i := 1; i <= p.n; i++ {
		if err := rowCheck(ctx, i); err != nil {
			return 0, err
		}
		p.linearRow(i, up, cur)
		up, cur = cur, up
	}

	return up[p.m], nil
}
