// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of Dense.
//
// Notes:
//   - NaN and +Inf never make sense in a DP score table and are always
//     rejected by Set and Fill.
//   - -Inf is the "unreachable state" sentinel of the affine-gap layers; it is
//     a narrow, opt-in exception (WithNegInf).
package matrix

// DefaultAllowNegInf permits -Inf values as an "unreachable" sentinel.
const DefaultAllowNegInf = false

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	allowNegInf bool // DefaultAllowNegInf
}

// WithNegInf permits -Inf entries (the DP "unreachable" sentinel).
// NaN and +Inf are still rejected.
func WithNegInf() Option {
	return func(o *Options) { o.allowNegInf = true }
}

// gatherOptions resolves user options on top of the documented defaults.
// Apply order is left-to-right; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{allowNegInf: DefaultAllowNegInf}
	for _, set := range user {
		set(&o)
	}

	return o
}
