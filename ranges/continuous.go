package ranges

import (
	"cmp"
	"fmt"
	"strings"
)

// rangeKind discriminates the eleven shapes of a ContinuousRange.
// The zero value is kindEmpty so the zero ContinuousRange is the empty range.
type rangeKind uint8

const (
	kindEmpty rangeKind = iota
	kindSingle
	kindInclusive
	kindExclusive
	kindStartExclusive
	kindEndExclusive
	kindFrom
	kindFromExclusive
	kindTo
	kindToExclusive
	kindFull
)

// ContinuousRange is a continuous (no holes) range of values of type Idx.
//
// It can be empty, contain a single value, run between two endpoints (each
// inclusive or exclusive), extend from or to a single endpoint, or cover the
// full Idx domain. For a version that can hold multiple segments with holes
// between them, see Range.
//
// The zero value is the empty range. Values are compared, copied and passed
// by value; two ranges with the same shape and endpoints are == when Idx is
// comparable.
type ContinuousRange[Idx cmp.Ordered] struct {
	kind       rangeKind
	start, end Idx
}

// Empty returns the range containing no value: [].
func Empty[Idx cmp.Ordered]() ContinuousRange[Idx] {
	return ContinuousRange[Idx]{}
}

// Single returns the range containing exactly value.
func Single[Idx cmp.Ordered](value Idx) ContinuousRange[Idx] {
	return ContinuousRange[Idx]{kind: kindSingle, start: value, end: value}
}

// Inclusive returns [start..end].
//
// Degenerate inputs normalize: start == end gives Single, start > end gives
// Empty.
func Inclusive[Idx cmp.Ordered](start, end Idx) ContinuousRange[Idx] {
	switch {
	case start == end:
		return Single(start)
	case start > end:
		return Empty[Idx]()
	default:
		return ContinuousRange[Idx]{kind: kindInclusive, start: start, end: end}
	}
}

// Exclusive returns (start..end), or Empty when start >= end.
func Exclusive[Idx cmp.Ordered](start, end Idx) ContinuousRange[Idx] {
	if start >= end {
		return Empty[Idx]()
	}
	return ContinuousRange[Idx]{kind: kindExclusive, start: start, end: end}
}

// StartExclusive returns (start..end], or Empty when start >= end.
func StartExclusive[Idx cmp.Ordered](start, end Idx) ContinuousRange[Idx] {
	if start >= end {
		return Empty[Idx]()
	}
	return ContinuousRange[Idx]{kind: kindStartExclusive, start: start, end: end}
}

// EndExclusive returns [start..end), or Empty when start >= end.
func EndExclusive[Idx cmp.Ordered](start, end Idx) ContinuousRange[Idx] {
	if start >= end {
		return Empty[Idx]()
	}
	return ContinuousRange[Idx]{kind: kindEndExclusive, start: start, end: end}
}

// From returns [start..).
func From[Idx cmp.Ordered](start Idx) ContinuousRange[Idx] {
	return ContinuousRange[Idx]{kind: kindFrom, start: start}
}

// FromExclusive returns (start..).
func FromExclusive[Idx cmp.Ordered](start Idx) ContinuousRange[Idx] {
	return ContinuousRange[Idx]{kind: kindFromExclusive, start: start}
}

// To returns (..end].
func To[Idx cmp.Ordered](end Idx) ContinuousRange[Idx] {
	return ContinuousRange[Idx]{kind: kindTo, end: end}
}

// ToExclusive returns (..end).
func ToExclusive[Idx cmp.Ordered](end Idx) ContinuousRange[Idx] {
	return ContinuousRange[Idx]{kind: kindToExclusive, end: end}
}

// Full returns the range containing every value: (..).
func Full[Idx cmp.Ordered]() ContinuousRange[Idx] {
	return ContinuousRange[Idx]{kind: kindFull}
}

// FromBounds builds a range from an explicit bound pair, normalizing
// degenerate combinations the same way the shape constructors do.
func FromBounds[Idx cmp.Ordered](start, end Bound[Idx]) ContinuousRange[Idx] {
	switch start.kind {
	case BoundIncluded:
		switch end.kind {
		case BoundIncluded:
			return Inclusive(start.value, end.value)
		case BoundExcluded:
			return EndExclusive(start.value, end.value)
		default:
			return From(start.value)
		}
	case BoundExcluded:
		switch end.kind {
		case BoundIncluded:
			return StartExclusive(start.value, end.value)
		case BoundExcluded:
			return Exclusive(start.value, end.value)
		default:
			return FromExclusive(start.value)
		}
	default:
		switch end.kind {
		case BoundIncluded:
			return To(end.value)
		case BoundExcluded:
			return ToExclusive(end.value)
		default:
			return Full[Idx]()
		}
	}
}

// StartBound returns the start of the range as a Bound; ok is false for the
// empty range, which has no representable bounds.
func (r ContinuousRange[Idx]) StartBound() (_ Bound[Idx], ok bool) {
	switch r.kind {
	case kindEmpty:
		return Bound[Idx]{}, false
	case kindSingle, kindInclusive, kindEndExclusive, kindFrom:
		return Included(r.start), true
	case kindExclusive, kindStartExclusive, kindFromExclusive:
		return Excluded(r.start), true
	default: // To, ToExclusive, Full
		return Unbounded[Idx](), true
	}
}

// EndBound returns the end of the range as a Bound; ok is false for the
// empty range.
func (r ContinuousRange[Idx]) EndBound() (_ Bound[Idx], ok bool) {
	switch r.kind {
	case kindEmpty:
		return Bound[Idx]{}, false
	case kindSingle, kindInclusive, kindStartExclusive, kindTo:
		return Included(r.end), true
	case kindExclusive, kindEndExclusive, kindToExclusive:
		return Excluded(r.end), true
	default: // From, FromExclusive, Full
		return Unbounded[Idx](), true
	}
}

// RangeBounds returns both bounds at once; ok is false for the empty range.
func (r ContinuousRange[Idx]) RangeBounds() (start, end Bound[Idx], ok bool) {
	start, ok = r.StartBound()
	if !ok {
		return Bound[Idx]{}, Bound[Idx]{}, false
	}
	end, _ = r.EndBound()
	return start, end, true
}

// Contains reports whether value is a member of the range.
func (r ContinuousRange[Idx]) Contains(value Idx) bool {
	switch r.kind {
	case kindEmpty:
		return false
	case kindSingle:
		return value == r.start
	case kindInclusive:
		return value >= r.start && value <= r.end
	case kindExclusive:
		return value > r.start && value < r.end
	case kindStartExclusive:
		return value > r.start && value <= r.end
	case kindEndExclusive:
		return value >= r.start && value < r.end
	case kindFrom:
		return value >= r.start
	case kindFromExclusive:
		return value > r.start
	case kindTo:
		return value <= r.end
	case kindToExclusive:
		return value < r.end
	default:
		return true
	}
}

// IsEmpty reports whether the range contains no value. Two-endpoint shapes
// with inverted endpoints count as empty even though construction through
// the package constructors never produces them.
func (r ContinuousRange[Idx]) IsEmpty() bool {
	switch r.kind {
	case kindEmpty:
		return true
	case kindInclusive:
		return r.start > r.end
	case kindExclusive, kindStartExclusive, kindEndExclusive:
		return r.start >= r.end
	default:
		// single values and unbounded shapes always hold something
		return false
	}
}

// IsFull reports whether the range is the full Idx domain.
func (r ContinuousRange[Idx]) IsFull() bool {
	return r.kind == kindFull
}

// Simplify re-applies the constructor normalization rules, collapsing
// degenerate two-endpoint shapes to Single or Empty. Useful for values
// produced by generic manipulation rather than the constructors.
func (r ContinuousRange[Idx]) Simplify() ContinuousRange[Idx] {
	switch r.kind {
	case kindInclusive:
		if r.start == r.end {
			return Single(r.start)
		}
		if r.start > r.end {
			return Empty[Idx]()
		}
	case kindExclusive, kindStartExclusive, kindEndExclusive:
		if r.start >= r.end {
			return Empty[Idx]()
		}
	}
	return r
}

// Compare classifies how r relates to other.
//
// Empty compared to Empty is Equal; Empty compared to anything else has no
// relation and reports ok=false, as does any comparison whose element
// ordering is undefined.
//
// Panics if the four underlying bound comparisons all succeed yet no
// classification matches, which can only happen when Idx's ordering is not a
// valid order.
func (r ContinuousRange[Idx]) Compare(other ContinuousRange[Idx]) (_ RangesRelation, ok bool) {
	// Empty ranges have no bounds, so they cannot go through the bound
	// comparisons below.
	if r.IsEmpty() {
		if other.IsEmpty() {
			return Equal, true
		}
		return 0, false
	} else if other.IsEmpty() {
		return 0, false
	}

	selfStart, selfEnd, _ := r.RangeBounds()
	otherStart, otherEnd, _ := other.RangeBounds()

	endStart, ok := compareBounds(selfEnd, sideEnd, otherStart, sideStart)
	if !ok {
		return 0, false
	}
	if endStart == orderingLess {
		return StrictlyBefore, true
	}
	if endStart == orderingMeets {
		return Meets, true
	}

	startEnd, ok := compareBounds(selfStart, sideStart, otherEnd, sideEnd)
	if !ok {
		return 0, false
	}
	if startEnd == orderingGreater {
		return StrictlyAfter, true
	}
	if startEnd == orderingIsMet {
		return IsMet, true
	}

	startStart, ok := compareBounds(selfStart, sideStart, otherStart, sideStart)
	if !ok {
		return 0, false
	}
	endEnd, ok := compareBounds(selfEnd, sideEnd, otherEnd, sideEnd)
	if !ok {
		return 0, false
	}

	switch {
	case startStart == orderingLess &&
		(endStart == orderingGreater || endStart == orderingEqual) &&
		endEnd == orderingLess:
		return Overlaps, true
	case startStart == orderingGreater &&
		(startEnd == orderingLess || startEnd == orderingEqual) &&
		endEnd == orderingGreater:
		return IsOverlapped, true
	case startStart == orderingEqual && endEnd == orderingLess:
		return Starts, true
	case startStart == orderingEqual && endEnd == orderingGreater:
		return IsStarted, true
	case startStart == orderingGreater && endEnd == orderingEqual:
		return Finishes, true
	case startStart == orderingLess && endEnd == orderingEqual:
		return IsFinished, true
	case startStart == orderingLess && endEnd == orderingGreater:
		return StrictlyContains, true
	case startStart == orderingGreater && endEnd == orderingLess:
		return IsStrictlyContained, true
	case startStart == orderingEqual && endEnd == orderingEqual:
		return Equal, true
	}

	// Unreachable for any valid ordering on Idx.
	panic(fmt.Sprintf(
		"ranges: ordering contract broken, no relation between %v and %v\n"+
			"self.end vs other.start   = %v\n"+
			"self.start vs other.end   = %v\n"+
			"self.start vs other.start = %v\n"+
			"self.end vs other.end     = %v",
		r, other, endStart, startEnd, startStart, endEnd))
}

// unionKnowingRelation is Union for callers that already hold the relation
// between the two ranges.
func (r ContinuousRange[Idx]) unionKnowingRelation(other ContinuousRange[Idx], rel RangesRelation) (ContinuousRange[Idx], bool) {
	switch rel {
	case StrictlyBefore, StrictlyAfter:
		return Empty[Idx](), false
	case Meets, Overlaps:
		start, ok := r.StartBound()
		if !ok {
			panic("ranges: union of range without start bound")
		}
		end, ok := other.EndBound()
		if !ok {
			panic("ranges: union of range without end bound")
		}
		return FromBounds(start, end), true
	case IsMet, IsOverlapped:
		end, ok := r.EndBound()
		if !ok {
			panic("ranges: union of range without end bound")
		}
		start, ok := other.StartBound()
		if !ok {
			panic("ranges: union of range without start bound")
		}
		return FromBounds(start, end), true
	case Starts, IsStrictlyContained, Finishes:
		return other, true
	default: // IsStarted, StrictlyContains, IsFinished, Equal
		return r, true
	}
}

// Union returns the single continuous range covering both operands.
//
// Full absorbs and Empty is the identity. When the operands are strictly
// disjoint with a gap between them (or incomparable) no continuous range can
// cover exactly both, and ok is false.
func (r ContinuousRange[Idx]) Union(other ContinuousRange[Idx]) (ContinuousRange[Idx], bool) {
	switch {
	case r.IsFull() || other.IsFull():
		return Full[Idx](), true
	case r.IsEmpty():
		return other, true
	case other.IsEmpty():
		return r, true
	}
	rel, ok := r.Compare(other)
	if !ok {
		return Empty[Idx](), false
	}
	return r.unionKnowingRelation(other, rel)
}

// Intersection returns the range of values present in both operands. It is
// always defined: disjoint or incomparable operands intersect in Empty.
func (r ContinuousRange[Idx]) Intersection(other ContinuousRange[Idx]) ContinuousRange[Idx] {
	switch {
	case r.IsEmpty() || other.IsEmpty():
		return Empty[Idx]()
	case r.IsFull():
		return other
	case other.IsFull():
		return r
	}
	rel, ok := r.Compare(other)
	if !ok {
		return Empty[Idx]()
	}
	switch rel {
	case StrictlyBefore, StrictlyAfter:
		return Empty[Idx]()
	case Meets:
		end, ok := r.EndBound()
		return Single(expectBound(end, ok, "ranges: Meets relation without end bound"))
	case IsMet:
		start, ok := r.StartBound()
		return Single(expectBound(start, ok, "ranges: IsMet relation without start bound"))
	case Overlaps:
		_, end, _ := r.RangeBounds()
		start, _, _ := other.RangeBounds()
		return FromBounds(start, end)
	case IsOverlapped:
		start, _, _ := r.RangeBounds()
		_, end, _ := other.RangeBounds()
		return FromBounds(start, end)
	case Starts, IsStrictlyContained, Finishes, Equal:
		return r
	default: // IsStarted, StrictlyContains, IsFinished
		return other
	}
}

// Difference returns the values of r not present in other.
//
// When other sits strictly inside r the result would be two disjoint pieces,
// which a single continuous range cannot represent; ok is false for exactly
// that case (and for incomparable operands). Subtracting from the empty
// range returns other unchanged.
func (r ContinuousRange[Idx]) Difference(other ContinuousRange[Idx]) (ContinuousRange[Idx], bool) {
	if r.kind == kindEmpty {
		return other, true
	}
	if other.kind == kindEmpty {
		return r, true
	}
	rel, ok := r.Compare(other)
	if !ok {
		return Empty[Idx](), false
	}
	switch rel {
	case StrictlyBefore, StrictlyAfter:
		return r, true
	case Equal, IsStrictlyContained, Starts, Finishes:
		return Empty[Idx](), true
	case StrictlyContains:
		return Empty[Idx](), false
	case Meets:
		start, end, _ := r.RangeBounds()
		return FromBounds(start, end.Reverse()), true
	case IsMet:
		start, end, _ := r.RangeBounds()
		return FromBounds(start.Reverse(), end), true
	case Overlaps:
		start, _ := r.StartBound()
		cut, _ := other.StartBound()
		return FromBounds(start, cut.Reverse()), true
	case IsOverlapped:
		end, _ := r.EndBound()
		cut, _ := other.EndBound()
		return FromBounds(cut.Reverse(), end), true
	case IsStarted:
		end, _ := r.EndBound()
		cut, _ := other.EndBound()
		return FromBounds(cut.Reverse(), end), true
	default: // IsFinished
		start, _ := r.StartBound()
		cut, _ := other.StartBound()
		return FromBounds(start, cut.Reverse()), true
	}
}

// Intersects reports whether the two ranges share at least one point. Two
// empty ranges compare Equal but share no point, so they do not intersect.
func (r ContinuousRange[Idx]) Intersects(other ContinuousRange[Idx]) bool {
	if r.IsEmpty() && other.IsEmpty() {
		return false
	}
	rel, ok := r.Compare(other)
	return ok && rel.Intersects()
}

// ContainsRange reports whether every point of other is in r.
func (r ContinuousRange[Idx]) ContainsRange(other ContinuousRange[Idx]) bool {
	rel, ok := r.Compare(other)
	return ok && rel.Contains()
}

// DisjointFromRange reports whether r and other share no point. Ranges with
// no established relation (either side empty, or incomparable) count as
// disjoint.
func (r ContinuousRange[Idx]) DisjointFromRange(other ContinuousRange[Idx]) bool {
	rel, ok := r.Compare(other)
	return !ok || rel.Disjoint()
}

// String renders the range in the bracket notation used throughout the
// package docs: [] for empty, a bare value for Single, (..) for Full, and
// [s..e] / (s..e) / (s..e] / [s..e) / [s..) / (s..) / (..e] / (..e) for the
// bounded shapes.
func (r ContinuousRange[Idx]) String() string {
	var sb strings.Builder
	switch r.kind {
	case kindEmpty:
		return "[]"
	case kindSingle:
		return fmt.Sprint(r.start)
	case kindFull:
		return "(..)"
	case kindInclusive:
		fmt.Fprintf(&sb, "[%v..%v]", r.start, r.end)
	case kindExclusive:
		fmt.Fprintf(&sb, "(%v..%v)", r.start, r.end)
	case kindStartExclusive:
		fmt.Fprintf(&sb, "(%v..%v]", r.start, r.end)
	case kindEndExclusive:
		fmt.Fprintf(&sb, "[%v..%v)", r.start, r.end)
	case kindFrom:
		fmt.Fprintf(&sb, "[%v..)", r.start)
	case kindFromExclusive:
		fmt.Fprintf(&sb, "(%v..)", r.start)
	case kindTo:
		fmt.Fprintf(&sb, "(..%v]", r.end)
	case kindToExclusive:
		fmt.Fprintf(&sb, "(..%v)", r.end)
	}
	return sb.String()
}
