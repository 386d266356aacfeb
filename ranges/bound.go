// Package ranges implements a continuous interval type over any ordered
// element, classification of how two intervals relate (after Allen's interval
// algebra) and canonicalization of interval collections.
//
// Elements only need cmp.Ordered. Partial orders are honored: when none of
// <, > or == hold between two elements (float NaN), every comparison built on
// them reports "not ok" instead of inventing an ordering.
package ranges

import "cmp"

// BoundKind says whether the boundary value belongs to the range.
type BoundKind uint8

const (
	// BoundIncluded is a boundary whose value is a member of the range.
	BoundIncluded BoundKind = iota
	// BoundExcluded is a boundary whose value is not a member of the range.
	BoundExcluded
	// BoundUnbounded extends to infinity on its side and carries no value.
	BoundUnbounded
)

// Bound is one endpoint of a ContinuousRange.
//
// Whether a bound sorts before or after another one depends on which side of
// a range it sits on, so comparisons also take a side tag (see compareBounds).
type Bound[Idx cmp.Ordered] struct {
	kind  BoundKind
	value Idx
}

// Included returns a bound whose value belongs to the range.
func Included[Idx cmp.Ordered](value Idx) Bound[Idx] {
	return Bound[Idx]{kind: BoundIncluded, value: value}
}

// Excluded returns a bound whose value does not belong to the range.
func Excluded[Idx cmp.Ordered](value Idx) Bound[Idx] {
	return Bound[Idx]{kind: BoundExcluded, value: value}
}

// Unbounded returns a bound extending to infinity.
func Unbounded[Idx cmp.Ordered]() Bound[Idx] {
	return Bound[Idx]{kind: BoundUnbounded}
}

// Kind reports which of the three bound kinds this is.
func (b Bound[Idx]) Kind() BoundKind { return b.kind }

// Value returns the boundary value; ok is false for an unbounded bound.
func (b Bound[Idx]) Value() (value Idx, ok bool) {
	if b.kind == BoundUnbounded {
		var zero Idx
		return zero, false
	}
	return b.value, true
}

// Reverse swaps an included bound for an excluded one and vice versa,
// keeping unbounded bounds as-is. Used to cut a range at the boundary of
// another during Difference.
func (b Bound[Idx]) Reverse() Bound[Idx] {
	switch b.kind {
	case BoundIncluded:
		return Bound[Idx]{kind: BoundExcluded, value: b.value}
	case BoundExcluded:
		return Bound[Idx]{kind: BoundIncluded, value: b.value}
	default:
		return b
	}
}

// boundSide tags a bound with the side of the range it belongs to.
type boundSide uint8

const (
	sideStart boundSide = iota
	sideEnd
)

// boundOrdering is the five-way result of comparing two side-tagged bounds.
// Meets and IsMet refine Less and Greater for bounds that touch at the same
// value without coinciding.
type boundOrdering int8

const (
	orderingMeets   boundOrdering = -2
	orderingLess    boundOrdering = -1
	orderingEqual   boundOrdering = 0
	orderingGreater boundOrdering = 1
	orderingIsMet   boundOrdering = 2
)

func (o boundOrdering) String() string {
	switch o {
	case orderingMeets:
		return "Meets"
	case orderingLess:
		return "Less"
	case orderingEqual:
		return "Equal"
	case orderingGreater:
		return "Greater"
	case orderingIsMet:
		return "IsMet"
	default:
		return "Invalid"
	}
}

// partialCompare is cmp.Compare with the partial-order escape hatch: ok is
// false when a and b admit no ordering (either is a NaN float).
func partialCompare[Idx cmp.Ordered](a, b Idx) (int, bool) {
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	case a == b:
		return 0, true
	}
	return 0, false
}

func fromPartial(c int, ok bool) (boundOrdering, bool) {
	return boundOrdering(c), ok
}

// compareBounds orders two bounds relative to the range sides they sit on.
//
// An inclusive start sorts before an exclusive start at the same value (it
// admits the value, the exclusive one does not), and symmetrically for ends.
// A start and an end touching at the same value yield Meets/IsMet rather than
// Equal, distinguishing "abut" from "coincide". Unbounded starts behave as
// -infinity and unbounded ends as +infinity.
//
// ok is false iff the element comparison itself is undefined.
func compareBounds[Idx cmp.Ordered](this Bound[Idx], thisSide boundSide, other Bound[Idx], otherSide boundSide) (boundOrdering, bool) {
	switch this.kind {
	case BoundIncluded:
		switch other.kind {
		case BoundIncluded:
			return fromPartial(partialCompare(this.value, other.value))
		case BoundExcluded:
			c, ok := partialCompare(this.value, other.value)
			if !ok {
				return 0, false
			}
			if c != 0 {
				return boundOrdering(c), true
			}
			switch {
			case thisSide == sideStart && otherSide == sideStart:
				return orderingLess, true
			case thisSide == sideEnd && otherSide == sideEnd:
				return orderingGreater, true
			case thisSide == sideStart && otherSide == sideEnd:
				return orderingIsMet, true
			default: // (End, Start)
				return orderingMeets, true
			}
		default: // Unbounded
			if otherSide == sideStart {
				return orderingGreater, true // other is -Inf
			}
			return orderingLess, true // other is +Inf
		}

	case BoundExcluded:
		switch other.kind {
		case BoundIncluded:
			c, ok := partialCompare(this.value, other.value)
			if !ok {
				return 0, false
			}
			if c != 0 {
				return boundOrdering(c), true
			}
			switch {
			case thisSide == sideStart && otherSide == sideStart:
				return orderingGreater, true
			case thisSide == sideEnd && otherSide == sideEnd:
				return orderingLess, true
			case thisSide == sideStart && otherSide == sideEnd:
				return orderingIsMet, true
			default: // (End, Start)
				return orderingMeets, true
			}
		case BoundExcluded:
			c, ok := partialCompare(this.value, other.value)
			if !ok {
				return 0, false
			}
			if c != 0 {
				return boundOrdering(c), true
			}
			switch {
			case thisSide == otherSide:
				return orderingEqual, true
			case thisSide == sideStart: // (Start, End)
				return orderingGreater, true
			default: // (End, Start)
				return orderingLess, true
			}
		default: // Unbounded
			if otherSide == sideStart {
				return orderingGreater, true // other is -Inf
			}
			return orderingLess, true // other is +Inf
		}

	default: // Unbounded
		if other.kind != BoundUnbounded {
			if thisSide == sideStart {
				return orderingLess, true // this is -Inf
			}
			return orderingGreater, true // this is +Inf
		}
		switch {
		case thisSide == otherSide:
			return orderingEqual, true
		case thisSide == sideStart: // -Inf vs +Inf
			return orderingLess, true
		default:
			return orderingGreater, true
		}
	}
}

// expectBound extracts the finite value of a bound that an already-computed
// relation guarantees to exist. Reaching the panic means a caller broke that
// guarantee, not a recoverable condition.
func expectBound[Idx cmp.Ordered](b Bound[Idx], ok bool, msg string) Idx {
	if !ok || b.kind == BoundUnbounded {
		panic(msg)
	}
	return b.value
}
