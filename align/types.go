package align

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/seqalign/matrix"
	"github.com/katalvlaran/seqalign/sequence"
)

// Sentinel errors returned by the aligners.
var (
	// ErrUnknownKind indicates a Kind outside the closed set {Global, Local, GlobalAffine}.
	ErrUnknownKind = errors.New("align: unknown alignment kind")

	// ErrBadGapMarker indicates a gap marker that is NUL or not printable.
	ErrBadGapMarker = errors.New("align: gap marker must be a printable rune")
)

// Kind selects one of the three DP variants.
type Kind int

const (
	// Global is Needleman–Wunsch with a linear gap penalty.
	Global Kind = iota

	// Local is Smith–Waterman with a linear gap penalty.
	Local

	// GlobalAffine is Needleman–Wunsch–Gotoh with an affine gap penalty.
	GlobalAffine
)

// kindNames holds the short names, indexed by Kind.
var kindNames = [...]string{
	Global:       "global",
	Local:        "local",
	GlobalAffine: "affine",
}

// kindAlgorithms holds the classical algorithm names, indexed by Kind.
var kindAlgorithms = [...]string{
	Global:       "Needleman-Wunsch",
	Local:        "Smith-Waterman",
	GlobalAffine: "Needleman-Wunsch-Gotoh",
}

// Kinds returns every Kind in canonical order: Global, Local, GlobalAffine.
func Kinds() []Kind {
	return []Kind{Global, Local, GlobalAffine}
}

// valid reports whether k belongs to the closed set.
func (k Kind) valid() bool {
	return k >= Global && k <= GlobalAffine
}

// String returns the short name ("global", "local", "affine").
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Algorithm returns the classical algorithm name, e.g. "Smith-Waterman".
func (k Kind) Algorithm() string {
	if !k.valid() {
		return k.String()
	}

	return kindAlgorithms[k]
}

// ParseKind maps a short name (case-insensitive) back to its Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// DefaultGapMarker is the rune emitted for a gap position.
const DefaultGapMarker = '-'

// Options configures an Aligner.
//
// Fields:
//   - GapMarker   : rune emitted in the aligned strings for a gap.
//   - KeepMatrices: if true, Result.Matrices carries the filled DP tables.
type Options struct {
	GapMarker    rune
	KeepMatrices bool
}

// Option represents a functional option for configuring an Aligner.
type Option func(*Options)

// DefaultOptions returns Options initialized with the defaults:
// GapMarker '-', KeepMatrices false.
func DefaultOptions() Options {
	return Options{
		GapMarker:    DefaultGapMarker,
		KeepMatrices: false,
	}
}

// ValidGapMarker reports whether r can be used as a gap marker.
func ValidGapMarker(r rune) bool {
	return r != 0 && unicode.IsPrint(r)
}

// WithGapMarker sets the gap marker rune.
// Panics with ErrBadGapMarker for NUL or non-printable runes; callers holding
// user input should check ValidGapMarker first.
func WithGapMarker(r rune) Option {
	if !ValidGapMarker(r) {
		panic(ErrBadGapMarker.Error())
	}

	return func(o *Options) { o.GapMarker = r }
}

// WithMatrices retains the filled DP tables in Result.Matrices.
func WithMatrices() Option {
	return func(o *Options) { o.KeepMatrices = true }
}

// Layer is one named DP table: "M" for the linear variants; "M", "X" and
// "Y" for the affine variant. Rows follow target positions, columns query
// positions; row/column 0 is the empty prefix.
type Layer struct {
	Name   string
	Matrix *matrix.Dense
}

// Window locates the aligned region with 1-based inclusive coordinates.
// An empty region is encoded as Start == End+1 (e.g. 1..0), the same
// convention sequence.Slice accepts.
type Window struct {
	TargetStart, TargetEnd int
	QueryStart, QueryEnd   int
}

// TargetSpan returns the part of target covered by the window.
func (w Window) TargetSpan(target sequence.Sequence) (sequence.Sequence, error) {
	return target.Slice(w.TargetStart, w.TargetEnd)
}

// QuerySpan returns the part of query covered by the window.
func (w Window) QuerySpan(query sequence.Sequence) (sequence.Sequence, error) {
	return query.Slice(w.QueryStart, w.QueryEnd)
}

// Result is the outcome of one alignment.
//
// TargetAligned and QueryAligned always have the same number of runes.
// Removing GapMarker from TargetAligned yields the window's target span
// (the whole target for Global and GlobalAffine); likewise for the query.
type Result struct {
	Kind          Kind
	Score         float64
	TargetAligned string
	QueryAligned  string
	GapMarker     rune
	Window        Window
	Matrices      []Layer // only with WithMatrices()
}

// Stats summarises the columns of an alignment.
type Stats struct {
	Columns    int
	Matches    int
	Mismatches int
	Gaps       int
}

// Identity returns Matches/Columns, or 0 for an empty alignment.
func (s Stats) Identity() float64 {
	if s.Columns == 0 {
		return 0
	}

	return float64(s.Matches) / float64(s.Columns)
}

// Stats counts match, mismatch and gap columns. Only columns present in
// both aligned rows are counted.
func (r Result) Stats() Stats {
	var st Stats
	t, q := []rune(r.TargetAligned), []rune(r.QueryAligned)
	for k := range min(len(t), len(q)) {
		st.Columns++
		switch {
		case t[k] == r.GapMarker || q[k] == r.GapMarker:
			st.Gaps++
		case t[k] == q[k]:
			st.Matches++
		default:
			st.Mismatches++
		}
	}

	return st
}

// String renders the two aligned rows, one per line.
func (r Result) String() string {
	return r.TargetAligned + "\n" + r.QueryAligned
}
