// Package seqalign computes optimal pairwise alignments of symbol sequences:
// global, local and affine-gap global, all by dynamic programming.
//
// What is inside:
//
//	sequence/  : immutable rune sequences with 1-based, bounds-checked access
//	scoring/   : match/mismatch scores and gap costs, validated
//	matrix/    : dense float64 score tables with a -Inf policy for DP layers
//	align/     : Needleman–Wunsch, Smith–Waterman, Needleman–Wunsch–Gotoh,
//	             full-table alignment and rolling-row score-only mode
//	config/    : YAML run configuration for the command line tool
//	cmd/dpalign: the command line tool
//
// Quick example:
//
//	target:  ACCAGT         global  ACCAGT   local  CAG
//	query:   ACAGC    ──▶           AC-AGC          CAG
//
// Tie-breaking is fixed, so the same inputs always produce the same
// alignment.
//
//	go install github.com/katalvlaran/seqalign/cmd/dpalign@latest
package seqalign
