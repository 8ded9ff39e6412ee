package align_test

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/scoring"
	"github.com/katalvlaran/seqalign/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dna = "ACGT"

func randomSeq(rng *rand.Rand, maxLen int) string {
	n := rng.Intn(maxLen + 1)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(dna[rng.Intn(len(dna))])
	}

	return sb.String()
}

// randomModel draws small integer parameters so float sums stay exact.
func randomModel(rng *rand.Rand) scoring.Model {
	return scoring.Model{
		Match:     float64(1 + rng.Intn(3)),
		Mismatch:  -float64(rng.Intn(4)),
		GapOpen:   float64(rng.Intn(5)),
		GapExtend: float64(rng.Intn(3)),
	}
}

// rescore recomputes the score of an alignment column by column.
// Linear kinds charge GapOpen per gap column; the affine kind charges
// GapOpen for the first column of a run and GapExtend for the rest.
func rescore(kind align.Kind, res align.Result, model scoring.Model) float64 {
	t, q := []rune(res.TargetAligned), []rune(res.QueryAligned)
	gap := res.GapMarker
	var total float64
	prev := 0 // 0 pair, 1 gap in query, 2 gap in target
	for k := range t {
		cur := 0
		switch {
		case q[k] == gap:
			cur = 1
		case t[k] == gap:
			cur = 2
		}
		switch {
		case cur == 0:
			total += model.Substitution(t[k], q[k])
		case kind == align.GlobalAffine && cur == prev:
			total -= model.GapExtend
		default:
			total -= model.GapOpen
		}
		prev = cur
	}

	return total
}

func strip(s string, gap rune) string {
	return strings.ReplaceAll(s, string(gap), "")
}

// TestProperties checks structural invariants on random inputs.
func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(20240601))
	ctx := context.Background()
	for iter := 0; iter < 300; iter++ {
		ts, qs := randomSeq(rng, 12), randomSeq(rng, 12)
		target, query := sequence.New(ts), sequence.New(qs)
		model := randomModel(rng)

		for _, kind := range align.Kinds() {
			res, err := align.Align(ctx, kind, target, query, model)
			require.NoError(t, err)
			label := kind.String() + " " + ts + "/" + qs

			tr, qr := []rune(res.TargetAligned), []rune(res.QueryAligned)
			require.Equal(t, len(tr), len(qr), label)
			for k := range tr {
				assert.False(t, tr[k] == res.GapMarker && qr[k] == res.GapMarker, "%s: gap/gap column", label)
			}

			tSpan, err := res.Window.TargetSpan(target)
			require.NoError(t, err, label)
			qSpan, err := res.Window.QuerySpan(query)
			require.NoError(t, err, label)
			assert.Equal(t, tSpan.String(), strip(res.TargetAligned, res.GapMarker), label)
			assert.Equal(t, qSpan.String(), strip(res.QueryAligned, res.GapMarker), label)
			if kind != align.Local {
				assert.Equal(t, ts, tSpan.String(), label)
				assert.Equal(t, qs, qSpan.String(), label)
			}

			assert.Equal(t, res.Score, rescore(kind, res, model), "%s: traceback must realize the score", label)

			score, err := align.Score(ctx, kind, target, query, model)
			require.NoError(t, err)
			assert.Equal(t, res.Score, score, label)
		}
	}
}

// TestLocal_Bounds checks that the local score dominates zero and the global score.
func TestLocal_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ctx := context.Background()
	for iter := 0; iter < 100; iter++ {
		target, query := sequence.New(randomSeq(rng, 15)), sequence.New(randomSeq(rng, 15))
		model := randomModel(rng)
		local, err := align.Score(ctx, align.Local, target, query, model)
		require.NoError(t, err)
		global, err := align.Score(ctx, align.Global, target, query, model)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, local, 0.0)
		assert.GreaterOrEqual(t, local, global)
	}
}
