package ranges

import (
	"cmp"
	"iter"
	"slices"
	"strings"

	"github.com/vbfox/range-ranger/util"
)

// Range is a set of values held as continuous segments with holes between
// them: the canonical output shape of Simplify wrapped in a value type.
//
// A Range is immutable; Add and Union return new values. Its segments are
// always in canonical form: non-empty, sorted and pairwise StrictlyBefore.
type Range[Idx cmp.Ordered] struct {
	segments []ContinuousRange[Idx]
}

// NewRange builds a Range covering all the given segments. The input is
// copied and canonicalized, so segments may arrive unsorted, overlapping,
// degenerate or empty.
func NewRange[Idx cmp.Ordered](segments ...ContinuousRange[Idx]) Range[Idx] {
	owned := slices.Clone(segments)
	return Range[Idx]{segments: Simplify(owned)}
}

// Len is the number of continuous segments.
func (r Range[Idx]) Len() int { return len(r.segments) }

// IsEmpty reports whether the range covers no value.
func (r Range[Idx]) IsEmpty() bool { return len(r.segments) == 0 }

// IsFull reports whether the range covers the full Idx domain.
func (r Range[Idx]) IsFull() bool {
	return len(r.segments) == 1 && r.segments[0].IsFull()
}

// Segments iterates the continuous segments in ascending order.
func (r Range[Idx]) Segments() iter.Seq[ContinuousRange[Idx]] {
	return func(yield func(ContinuousRange[Idx]) bool) {
		for _, seg := range r.segments {
			if !yield(seg) {
				return
			}
		}
	}
}

// SegmentSlice returns a copy of the segments in ascending order.
func (r Range[Idx]) SegmentSlice() []ContinuousRange[Idx] {
	return slices.Clone(r.segments)
}

// Contains reports whether value is a member of any segment.
func (r Range[Idx]) Contains(value Idx) bool {
	for _, seg := range r.segments {
		if seg.Contains(value) {
			return true
		}
	}
	return false
}

// ContainsRange reports whether some single segment contains the whole of
// cr. The segments are canonical (no two touch), so a continuous range can
// never straddle two of them.
func (r Range[Idx]) ContainsRange(cr ContinuousRange[Idx]) bool {
	for _, seg := range r.segments {
		if seg.ContainsRange(cr) {
			return true
		}
	}
	return false
}

// Add returns a new Range additionally covering cr.
func (r Range[Idx]) Add(cr ContinuousRange[Idx]) Range[Idx] {
	merged := make([]ContinuousRange[Idx], 0, len(r.segments)+1)
	merged = append(merged, r.segments...)
	merged = append(merged, cr)
	return Range[Idx]{segments: Simplify(merged)}
}

// Union returns a new Range covering both operands.
func (r Range[Idx]) Union(other Range[Idx]) Range[Idx] {
	all := slices.Collect(util.ConcatIter(r.Segments(), other.Segments()))
	return Range[Idx]{segments: Simplify(all)}
}

// String renders the segments between braces: "{}", "{[1..2]}",
// "{[1..2], (5..)}".
func (r Range[Idx]) String() string {
	rendered := slices.Collect(util.MapIter(r.Segments(), ContinuousRange[Idx].String))
	return "{" + strings.Join(rendered, ", ") + "}"
}

// RangeBuilder incrementally assembles a Range from continuous pieces.
// The zero value is ready to use. Not safe for concurrent use.
type RangeBuilder[Idx cmp.Ordered] struct {
	segments []ContinuousRange[Idx]
}

// NewRangeBuilder returns an empty builder.
func NewRangeBuilder[Idx cmp.Ordered]() *RangeBuilder[Idx] {
	return &RangeBuilder[Idx]{}
}

// Add records a continuous range to be covered by the built Range.
func (b *RangeBuilder[Idx]) Add(cr ContinuousRange[Idx]) *RangeBuilder[Idx] {
	b.segments = append(b.segments, cr)
	return b
}

// AddRange records every segment of an existing Range.
func (b *RangeBuilder[Idx]) AddRange(r Range[Idx]) *RangeBuilder[Idx] {
	b.segments = append(b.segments, r.segments...)
	return b
}

// Build canonicalizes everything added so far. The builder stays usable and
// keeps its contents.
func (b *RangeBuilder[Idx]) Build() Range[Idx] {
	return NewRange(b.segments...)
}
