// SPDX-License-Identifier: MIT

// Package matrix provides the dense score table used by the dynamic
// programming aligners.
//
// A Dense is a row-major (rows × cols) grid of float64 cells with
// bounds-checked accessors that return sentinel errors instead of panicking.
// Rows are indexed by target position and columns by query position, both
// starting at 0 for the empty prefix.
//
// Numeric policy:
//   - NaN and +Inf are rejected by Set and Fill.
//   - -Inf is rejected unless the matrix was created WithNegInf, which the
//     affine-gap aligner uses to mark unreachable states.
//
// Row(i) hands out a no-copy view of a row so that DP kernels can run their
// recurrences on plain slices.
package matrix
