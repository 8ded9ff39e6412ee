package align

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/seqalign/matrix"
	"github.com/katalvlaran/seqalign/scoring"
	"github.com/katalvlaran/seqalign/sequence"
)

// gotoh is global alignment with affine gaps: a run of k gap positions costs
// GapOpen + GapExtend·(k-1). Three layers share the (n+1)×(m+1) shape:
//
//	M(i,j) = max( M, X, Y at (i-1,j-1) ) + s(t_i,q_j)
//	X(i,j) = max( M(i-1,j) - go, X(i-1,j) - ge )   target consumed, query gapped
//	Y(i,j) = max( M(i,j-1) - go, Y(i,j-1) - ge )   query consumed, target gapped
//
// There is no X↔Y term: switching gap direction needs an intervening pair.
type gotoh struct {
	opts Options
}

func (a *gotoh) Kind() Kind { return GlobalAffine }

func (a *gotoh) sealed() {}

// Affine states, in tie-break order.
const (
	stateM = iota
	stateX
	stateY
)

var negInf = math.Inf(-1)

// affineRows is one row of each layer.
type affineRows struct {
	m, x, y []float64
}

// newAffineRows returns rows with every cell unreachable.
func newAffineRows(m int) affineRows {
	r := affineRows{
		m: make([]float64, m+1),
		x: make([]float64, m+1),
		y: make([]float64, m+1),
	}
	for j := 0; j <= m; j++ {
		r.m[j], r.x[j], r.y[j] = negInf, negInf, negInf
	}

	return r
}

// newLayer allocates one full affine layer reset to -Inf. The layer is built
// WithNegInf; a strict Dense rejects the reset.
func newLayer(n, m int) (*table, error) {
	tab, err := newTable(n, m, matrix.WithNegInf())
	if err != nil {
		return nil, err
	}
	if err = tab.dense.Fill(negInf); err != nil {
		return nil, fmt.Errorf("align: reset affine layer: %w", err)
	}

	return tab, nil
}

func (a *gotoh) Align(ctx context.Context, target, query sequence.Sequence, model scoring.Model) (Result, error) {
	p, err := newProblem(target, query, model)
	if err != nil {
		return Result{}, err
	}
	var layers [3]*table
	for k := range layers {
		if layers[k], err = newLayer(p.n, p.m); err != nil {
			return Result{}, err
		}
	}
	if err = layers[stateM].dense.Set(0, 0, 0); err != nil {
		return Result{}, fmt.Errorf("align: seed origin: %w", err)
	}
	row := func(i int) affineRows {
		return affineRows{m: layers[stateM].rows[i], x: layers[stateX].rows[i], y: layers[stateY].rows[i]}
	}

	p.affineFirstRow(row(0))
	for i := 1; i <= p.n; i++ {
		if err = rowCheck(ctx, i); err != nil {
			return Result{}, err
		}
		p.affineRow(i, row(i-1), row(i))
	}

	last := row(p.n)
	state, score := affineTerminal(last, p.m)
	res := Result{
		Kind:      GlobalAffine,
		Score:     score,
		GapMarker: a.opts.GapMarker,
		Window:    p.fullWindow(),
	}
	res.TargetAligned, res.QueryAligned = p.affineTraceback(
		layers[stateM].rows, layers[stateX].rows, layers[stateY].rows, state, a.opts.GapMarker)
	if a.opts.KeepMatrices {
		res.Matrices = []Layer{
			{Name: "M", Matrix: layers[stateM].dense},
			{Name: "X", Matrix: layers[stateX].dense},
			{Name: "Y", Matrix: layers[stateY].dense},
		}
	}
	logResult(ctx, p, res)

	return res, nil
}

// affineFirstRow runs the single Y run along row 0. The row must arrive
// all -Inf except M(0,0)=0.
func (p *problem) affineFirstRow(r affineRows) {
	for j := 1; j <= p.m; j++ {
		r.y[j] = max(r.m[j-1]-p.model.GapOpen, r.y[j-1]-p.model.GapExtend)
	}
}

// affineRow computes row i of all three layers from row i-1.
func (p *problem) affineRow(i int, up, cur affineRows) {
	gOpen, gExt := p.model.GapOpen, p.model.GapExtend
	ti := p.t[i]

	// Column 0 can only be reached by one X run down the column.
	cur.m[0] = negInf
	cur.x[0] = max(up.m[0]-gOpen, up.x[0]-gExt)
	cur.y[0] = negInf
	for j := 1; j <= p.m; j++ {
		s := p.model.Substitution(ti, p.q[j])
		cur.m[j] = max(up.m[j-1]+s, up.x[j-1]+s, up.y[j-1]+s)
		cur.x[j] = max(up.m[j]-gOpen, up.x[j]-gExt)
		cur.y[j] = max(cur.m[j-1]-gOpen, cur.y[j-1]-gExt)
	}
}

// affineTerminal picks the best layer at column j of the last row.
// Ties resolve M, then X, then Y.
func affineTerminal(last affineRows, j int) (int, float64) {
	state, score := stateM, last.m[j]
	if last.x[j] > score {
		state, score = stateX, last.x[j]
	}
	if last.y[j] > score {
		state, score = stateY, last.y[j]
	}

	return state, score
}

// affineTraceback runs the three-state machine from (n,m) to (0,0).
// Within each state the source layers are tried in M, X, Y order; the last
// candidate is the fallback.
func (p *problem) affineTraceback(m, x, y [][]float64, state int, gap rune) (string, string) {
	gOpen := p.model.GapOpen
	tr := newTrace(gap, p.n+p.m)
	i, j := p.n, p.m
	for i > 0 || j > 0 {
		// Column 0 is a pure X run and row 0 a pure Y run.
		switch {
		case j == 0:
			state = stateX
		case i == 0:
			state = stateY
		}

		switch state {
		case stateM:
			s := p.model.Substitution(p.t[i], p.q[j])
			cur := m[i][j]
			switch {
			case cur == m[i-1][j-1]+s:
				state = stateM
			case cur == x[i-1][j-1]+s:
				state = stateX
			default:
				state = stateY
			}
			tr.pair(p.t[i], p.q[j])
			i--
			j--
		case stateX:
			if x[i][j] == m[i-1][j]-gOpen {
				state = stateM
			}
			tr.deletion(p.t[i])
			i--
		default:
			if y[i][j] == m[i][j-1]-gOpen {
				state = stateM
			}
			tr.insertion(p.q[j])
			j--
		}
	}

	return tr.strings()
}

// affineScore computes max(M,X,Y) at (n,m) with two rolling rows per layer.
func (p *problem) affineScore(ctx context.Context) (float64, error) {
	up, cur := newAffineRows(p.m), newAffineRows(p.m)
	up.m[0] = 0
	p.affineFirstRow(up)
	for i := 1; i <= p.n; i++ {
		if err := rowCheck(ctx, i); err != nil {
			return 0, err
		}
		p.affineRow(i, up, cur)
		up, cur = cur, up
	}
	_, score := affineTerminal(up, p.m)

	return score, nil
}
