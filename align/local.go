package align

import (
	"context"

	"github.com/katalvlaran/seqalign/scoring"
	"github.com/katalvlaran/seqalign/sequence"
)

// smithWaterman is local alignment, linear gap penalty g = GapOpen.
// Row 0 and column 0 are 0; each cell is floored at 0:
//
//	M(i,j) = max( M(i-1,j-1) + s(t_i,q_j), M(i,j-1) - g, M(i-1,j) - g, 0 )
type smithWaterman struct {
	opts Options
}

func (a *smithWaterman) Kind() Kind { return Local }

func (a *smithWaterman) sealed() {}

// cell is a scored DP coordinate.
type cell struct {
	i, j  int
	score float64
}

func (a *smithWaterman) Align(ctx context.Context, target, query sequence.Sequence, model scoring.Model) (Result, error) {
	p, err := newProblem(target, query, model)
	if err != nil {
		return Result{}, err
	}
	tab, err := newTable(p.n, p.m)
	if err != nil {
		return Result{}, err
	}

	// Row 0 stays zero. best only moves on a strictly greater score, so the
	// first maximum in row-major order wins.
	var best cell
	for i := 1; i <= p.n; i++ {
		if err = rowCheck(ctx, i); err != nil {
			return Result{}, err
		}
		if c := p.localRow(i, tab.rows[i-1], tab.rows[i]); c.score > best.score {
			best = c
		}
	}

	res := Result{
		Kind:      Local,
		Score:     best.score,
		GapMarker: a.opts.GapMarker,
	}
	var start cell
	res.TargetAligned, res.QueryAligned, start = p.localTraceback(tab.rows, best, a.opts.GapMarker)
	res.Window = Window{
		TargetStart: start.i + 1,
		TargetEnd:   best.i,
		QueryStart:  start.j + 1,
		QueryEnd:    best.j,
	}
	if a.opts.KeepMatrices {
		res.Matrices = []Layer{{Name: "M", Matrix: tab.dense}}
	}
	logResult(ctx, p, res)

	return res, nil
}

// localRow computes row i from row i-1 and returns the row's best cell
// (first maximum, score 0 at column 0 when nothing is positive).
func (p *problem) localRow(i int, up, cur []float64) cell {
	g := p.model.GapOpen
	ti := p.t[i]
	best := cell{i: i}
	cur[0] = 0
	for j := 1; j <= p.m; j++ {
		cur[j] = max(
			up[j-1]+p.model.Substitution(ti, p.q[j]),
			cur[j-1]-g,
			up[j]-g,
			0,
		)
		if cur[j] > best.score {
			best.j, best.score = j, cur[j]
		}
	}

	return best
}

// localTraceback walks from best while the current cell is positive and
// returns the zero cell where it stopped; that cell is not emitted.
// Branch precedence matches linearTraceback.
func (p *problem) localTraceback(rows [][]float64, best cell, gap rune) (string, string, cell) {
	g := p.model.GapOpen
	tr := newTrace(gap, best.i+best.j)
	i, j := best.i, best.j
	for rows[i][j] > 0 {
		score := rows[i][j]
		switch {
		case i > 0 && score == rows[i-1][j]-g:
			tr.deletion(p.t[i])
			i--
		case j > 0 && score == rows[i][j-1]-g:
			tr.insertion(p.q[j])
			j--
		default:
			tr.pair(p.t[i], p.q[j])
			i--
			j--
		}
	}
	t, q := tr.strings()

	return t, q, cell{i: i, j: j}
}

// localScore returns the best local score using two rolling rows.
func (p *problem) localScore(ctx context.Context) (float64, error) {
	up, cur := make([]float64, p.m+1), make([]float64, p.m+1)
	var best float64
	for i := 1; i <= p.n; i++ {
		if err := rowCheck(ctx, i); err != nil {
			return 0, err
		}
		if c := p.localRow(i, up, cur); c.score > best {
			best = c.score
		}
		up, cur = cur, up
	}

	return best, nil
}
