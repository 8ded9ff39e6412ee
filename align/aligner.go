package align

import (
	"context"
	"fmt"

	"cloudeng.io/logging/ctxlog"

	"github.com/katalvlaran/seqalign/matrix"
	"github.com/katalvlaran/seqalign/scoring"
	"github.com/katalvlaran/seqalign/sequence"
)

// Aligner is the common contract of the three DP variants.
// The set of implementations is closed: only this package can satisfy the
// interface, and New is the only constructor.
type Aligner interface {
	// Kind reports which variant this is.
	Kind() Kind

	// Align fills the DP tables for target × query under model and traces
	// back one optimal alignment.
	Align(ctx context.Context, target, query sequence.Sequence, model scoring.Model) (Result, error)

	sealed()
}

// New returns the Aligner for kind.
//
// Errors:
//   - ErrUnknownKind if kind is outside {Global, Local, GlobalAffine}.
func New(kind Kind, opts ...Option) (Aligner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch kind {
	case Global:
		return &needlemanWunsch{opts: cfg}, nil
	case Local:
		return &smithWaterman{opts: cfg}, nil
	case GlobalAffine:
		return &gotoh{opts: cfg}, nil
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
}

// Align is shorthand for New(kind, opts...) followed by Aligner.Align.
//
// Example:
//
//	res, err := align.Align(ctx, align.Local,
//	    sequence.New("ACCAGT"), sequence.New("ACAGC"), scoring.Default())
func Align(ctx context.Context, kind Kind, target, query sequence.Sequence, model scoring.Model, opts ...Option) (Result, error) {
	if err := model.Validate(); err != nil {
		return Result{}, err
	}
	a, err := New(kind, opts...)
	if err != nil {
		return Result{}, err
	}

	return a.Align(ctx, target, query, model)
}

// Score computes only the optimal score, keeping two rolling rows per layer
// instead of full tables. Memory is O(len(query)); no alignment is recovered.
// The value always equals Align(...).Score for the same inputs.
func Score(ctx context.Context, kind Kind, target, query sequence.Sequence, model scoring.Model) (float64, error) {
	p, err := newProblem(target, query, model)
	if err != nil {
		return 0, err
	}
	switch kind {
	case Global:
		return p.linearScore(ctx)
	case Local:
		return p.localScore(ctx)
	case GlobalAffine:
		return p.affineScore(ctx)
	}

	return 0, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
}

// problem bundles the validated inputs of one run.
// t and q are 1-based: t[i] is target position i, q[j] query position j,
// matching the (i, j) coordinates of every recurrence in this package.
type problem struct {
	t, q  []rune
	n, m  int // target and query lengths
	model scoring.Model
}

func newProblem(target, query sequence.Sequence, model scoring.Model) (*problem, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}

	return &problem{
		t:     target.Symbols(),
		q:     query.Symbols(),
		n:     target.Len(),
		m:     query.Len(),
		model: model,
	}, nil
}

// fullWindow spans both sequences end to end.
func (p *problem) fullWindow() Window {
	return Window{TargetStart: 1, TargetEnd: p.n, QueryStart: 1, QueryEnd: p.m}
}

// rowCheck reports cancellation once per DP row.
func rowCheck(ctx context.Context, i int) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("align: row %d: %w", i, err)
	}

	return nil
}

// table is a (n+1)×(m+1) Dense plus its row views; rows[i][j] is cell (i, j).
type table struct {
	dense *matrix.Dense
	rows  [][]float64
}

func newTable(n, m int, opts ...matrix.Option) (*table, error) {
	d, err := matrix.NewDense(n+1, m+1, opts...)
	if err != nil {
		return nil, fmt.Errorf("align: allocate %dx%d table: %w", n+1, m+1, err)
	}
	rows := make([][]float64, n+1)
	for i := range rows {
		if rows[i], err = d.Row(i); err != nil {
			return nil, err
		}
	}

	return &table{dense: d, rows: rows}, nil
}

// trace collects aligned columns during traceback. Columns arrive from the
// end of the alignment towards its start; strings() reverses them.
type trace struct {
	target, query []rune
	gap           rune
}

func newTrace(gap rune, capacity int) *trace {
	return &trace{
		target: make([]rune, 0, capacity),
		query:  make([]rune, 0, capacity),
		gap:    gap,
	}
}

// pair emits a match/mismatch column.
func (tr *trace) pair(a, b rune) {
	tr.target = append(tr.target, a)
	tr.query = append(tr.query, b)
}

// deletion emits a column that consumes target symbol a (gap in query).
func (tr *trace) deletion(a rune) {
	tr.target = append(tr.target, a)
	tr.query = append(tr.query, tr.gap)
}

// insertion emits a column that consumes query symbol b (gap in target).
func (tr *trace) insertion(b rune) {
	tr.target = append(tr.target, tr.gap)
	tr.query = append(tr.query, b)
}

func (tr *trace) strings() (target, query string) {
	reverse(tr.target)
	reverse(tr.query)

	return string(tr.target), string(tr.query)
}

func reverse(rs []rune) {
	for l, r := 0, len(rs)-1; l < r; l, r = l+1, r-1 {
		rs[l], rs[r] = rs[r], rs[l]
	}
}

// logResult writes a debug record through the context logger.
func logResult(ctx context.Context, p *problem, res Result) {
	ctxlog.Logger(ctx).Debug("alignment complete",
		"kind", res.Kind.String(),
		"target_len", p.n,
		"query_len", p.m,
		"score", res.Score,
		"columns", len([]rune(res.TargetAligned)),
	)
}
