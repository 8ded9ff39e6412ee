// Package align computes optimal pairwise alignments of two symbol sequences
// by dynamic programming.
//
// Three variants form a closed set selected by Kind:
//
//   - Global      : Needleman–Wunsch, linear gap cost g = GapOpen.
//   - Local       : Smith–Waterman, linear gap cost, cells floored at 0.
//   - GlobalAffine: Needleman–Wunsch–Gotoh, a gap run of length k costs
//     GapOpen + GapExtend·(k-1); three layers M, X (target consumed,
//     query gapped) and Y (query consumed, target gapped).
//
// Coordinates are 1-based: cell (i, j) scores target[1..i] against
// query[1..j]; row and column 0 stand for the empty prefix.
//
// Traceback is deterministic. When several branches reproduce a cell, the
// linear variants prefer "up" (gap in query), then "left" (gap in target),
// then the diagonal. The affine state machine tries sources in M, X, Y order
// and resolves a tie between terminal layers the same way. Local traceback
// stops on the first zero cell without emitting it; the window of the
// alignment is reported in Result.Window.
//
// Complexity:
//   - Align: O(n·m) time, O(n·m) memory per layer.
//   - Score: O(n·m) time, O(m) memory (two rolling rows per layer).
//
// Every fill checks its context once per row. Debug records go to the
// logger installed with cloudeng.io/logging/ctxlog.
//
// Example:
//
//	res, err := align.Align(ctx, align.Global,
//	    sequence.New("ACCAGT"), sequence.New("ACAGC"), scoring.Default())
//	// res.Score == 1
//	// res.TargetAligned == "ACCAGT"
//	// res.QueryAligned  == "AC-AGC"
package align
