package ranges_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vbfox/range-ranger/ranges"
)

func TestConstructorsNormalize(t *testing.T) {
	assert.Equal(t, ranges.Single(4), ranges.Inclusive(4, 4))
	assert.Equal(t, ranges.Empty[int](), ranges.Inclusive(5, 4))
	assert.Equal(t, ranges.Empty[int](), ranges.Exclusive(4, 4))
	assert.Equal(t, ranges.Empty[int](), ranges.Exclusive(5, 4))
	assert.Equal(t, ranges.Empty[int](), ranges.StartExclusive(4, 4))
	assert.Equal(t, ranges.Empty[int](), ranges.EndExclusive(4, 4))

	// proper inputs stay what they are
	assert.NotEqual(t, ranges.Inclusive(1, 2), ranges.Exclusive(1, 2))
	assert.False(t, ranges.Exclusive(1, 2).IsEmpty())
}

func TestZeroValueIsEmpty(t *testing.T) {
	var zero ranges.ContinuousRange[int]
	assert.True(t, zero.IsEmpty())
	assert.Equal(t, ranges.Empty[int](), zero)
}

func TestString(t *testing.T) {
	testCases := []struct {
		expected string
		r        ranges.ContinuousRange[int]
	}{
		{"[]", ranges.Empty[int]()},
		{"42", ranges.Single(42)},
		{"(..)", ranges.Full[int]()},
		{"[1..8]", ranges.Inclusive(1, 8)},
		{"(1..8)", ranges.Exclusive(1, 8)},
		{"(1..8]", ranges.StartExclusive(1, 8)},
		{"[1..8)", ranges.EndExclusive(1, 8)},
		{"[1..)", ranges.From(1)},
		{"(1..)", ranges.FromExclusive(1)},
		{"(..8]", ranges.To(8)},
		{"(..8)", ranges.ToExclusive(8)},
	}
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.r.String())
		})
	}
}

func TestContains(t *testing.T) {
	testCases := []struct {
		r       ranges.ContinuousRange[int]
		in, out []int
	}{
		{ranges.Empty[int](), nil, []int{0, 1}},
		{ranges.Single(3), []int{3}, []int{2, 4}},
		{ranges.Inclusive(1, 5), []int{1, 3, 5}, []int{0, 6}},
		{ranges.Exclusive(1, 5), []int{2, 4}, []int{1, 5}},
		{ranges.StartExclusive(1, 5), []int{2, 5}, []int{1, 6}},
		{ranges.EndExclusive(1, 5), []int{1, 4}, []int{0, 5}},
		{ranges.From(3), []int{3, 100}, []int{2}},
		{ranges.FromExclusive(3), []int{4, 100}, []int{3}},
		{ranges.To(3), []int{-100, 3}, []int{4}},
		{ranges.ToExclusive(3), []int{-100, 2}, []int{3}},
		{ranges.Full[int](), []int{-100, 0, 100}, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.r.String(), func(t *testing.T) {
			for _, v := range tc.in {
				assert.True(t, tc.r.Contains(v), "%v should contain %d", tc.r, v)
			}
			for _, v := range tc.out {
				assert.False(t, tc.r.Contains(v), "%v should not contain %d", tc.r, v)
			}
		})
	}
}

func TestBoundsAccessors(t *testing.T) {
	_, _, ok := ranges.Empty[int]().RangeBounds()
	assert.False(t, ok, "the empty range has no representable bounds")
	_, ok = ranges.Empty[int]().StartBound()
	assert.False(t, ok)
	_, ok = ranges.Empty[int]().EndBound()
	assert.False(t, ok)

	start, end, ok := ranges.StartExclusive(1, 8).RangeBounds()
	require.True(t, ok)
	assert.Equal(t, ranges.Excluded(1), start)
	assert.Equal(t, ranges.Included(8), end)

	start, end, ok = ranges.Full[int]().RangeBounds()
	require.True(t, ok)
	assert.Equal(t, ranges.Unbounded[int](), start)
	assert.Equal(t, ranges.Unbounded[int](), end)

	start, end, ok = ranges.Single(7).RangeBounds()
	require.True(t, ok)
	assert.Equal(t, ranges.Included(7), start)
	assert.Equal(t, ranges.Included(7), end)
}

func TestFromBoundsRoundTrips(t *testing.T) {
	all := []ranges.ContinuousRange[int]{
		ranges.Single(3),
		ranges.Inclusive(1, 8),
		ranges.Exclusive(1, 8),
		ranges.StartExclusive(1, 8),
		ranges.EndExclusive(1, 8),
		ranges.From(1),
		ranges.FromExclusive(1),
		ranges.To(8),
		ranges.ToExclusive(8),
		ranges.Full[int](),
	}
	for _, r := range all {
		start, end, ok := r.RangeBounds()
		require.True(t, ok)
		assert.Equal(t, r, ranges.FromBounds(start, end))
	}

	// degenerate pairs normalize like the shape constructors
	assert.Equal(t, ranges.Single(3), ranges.FromBounds(ranges.Included(3), ranges.Included(3)))
	assert.Equal(t, ranges.Empty[int](), ranges.FromBounds(ranges.Excluded(3), ranges.Excluded(3)))
}

func TestCompare(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     ranges.ContinuousRange[int]
		expected ranges.RangesRelation
	}{
		{"gap between bounded ranges", ranges.Inclusive(0, 2), ranges.Inclusive(5, 8), ranges.StrictlyBefore},
		{"exclusive end abuts inclusive start", ranges.EndExclusive(0, 5), ranges.From(5), ranges.Meets},
		{"inclusive end abuts exclusive start", ranges.Inclusive(0, 5), ranges.StartExclusive(5, 9), ranges.Meets},
		{"two inclusive ends at the same value overlap", ranges.Inclusive(0, 5), ranges.Inclusive(5, 9), ranges.Overlaps},
		{"partial overlap", ranges.Inclusive(0, 6), ranges.Inclusive(4, 9), ranges.Overlaps},
		{"shared start, shorter first", ranges.Inclusive(0, 4), ranges.Inclusive(0, 9), ranges.Starts},
		{"shared start, longer first", ranges.Inclusive(0, 9), ranges.Inclusive(0, 4), ranges.IsStarted},
		{"shared end, later first", ranges.Inclusive(5, 9), ranges.Inclusive(0, 9), ranges.Finishes},
		{"shared end, earlier first", ranges.Inclusive(0, 9), ranges.Inclusive(5, 9), ranges.IsFinished},
		{"strict containment", ranges.Inclusive(0, 9), ranges.Inclusive(3, 5), ranges.StrictlyContains},
		{"inside a larger range", ranges.Inclusive(3, 5), ranges.Inclusive(0, 9), ranges.IsStrictlyContained},
		{"same bounds", ranges.Inclusive(0, 9), ranges.Inclusive(0, 9), ranges.Equal},
		{"full strictly contains any bounded range", ranges.Full[int](), ranges.Inclusive(3, 5), ranges.StrictlyContains},
		{"unbounded start finishes a full range", ranges.From(3), ranges.Full[int](), ranges.Finishes},
		{"unbounded ranges overlapping", ranges.To(5), ranges.From(0), ranges.Overlaps},
		{"to and from meeting at the cut", ranges.ToExclusive(5), ranges.From(5), ranges.Meets},
		{"single inside inclusive", ranges.Single(3), ranges.Inclusive(0, 9), ranges.IsStrictlyContained},
		{"single starts its inclusive range", ranges.Single(0), ranges.Inclusive(0, 9), ranges.Starts},
		{"exclusive inside its inclusive twin", ranges.Exclusive(0, 9), ranges.Inclusive(0, 9), ranges.IsStrictlyContained},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.a.Compare(tc.b)
			require.True(t, ok)
			assert.Equal(t, tc.expected, got, "expected %v, got %v", tc.expected, got)

			inverse, ok := tc.b.Compare(tc.a)
			require.True(t, ok)
			assert.Equal(t, tc.expected.Inverse(), inverse)
		})
	}
}

func TestCompareEmpty(t *testing.T) {
	rel, ok := ranges.Empty[int]().Compare(ranges.Empty[int]())
	require.True(t, ok)
	assert.Equal(t, ranges.Equal, rel)

	_, ok = ranges.Empty[int]().Compare(ranges.Single(1))
	assert.False(t, ok, "empty has no relation to a non-empty range")
	_, ok = ranges.Single(1).Compare(ranges.Empty[int]())
	assert.False(t, ok)
}

func TestCompareIncomparable(t *testing.T) {
	nan := math.NaN()
	_, ok := ranges.Single(nan).Compare(ranges.Single(1.0))
	assert.False(t, ok)
	_, ok = ranges.Inclusive(0.0, 1.0).Compare(ranges.From(nan))
	assert.False(t, ok)
}

func TestUnion(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     ranges.ContinuousRange[int]
		expected ranges.ContinuousRange[int]
	}{
		{"full absorbs", ranges.Full[int](), ranges.Inclusive(0, 5), ranges.Full[int]()},
		{"empty is identity", ranges.Empty[int](), ranges.Inclusive(0, 5), ranges.Inclusive(0, 5)},
		{"meets joins across the cut", ranges.EndExclusive(0, 5), ranges.From(5), ranges.From(0)},
		{"overlap joins outer bounds", ranges.Inclusive(0, 6), ranges.Inclusive(4, 9), ranges.Inclusive(0, 9)},
		{"is-overlapped joins outer bounds", ranges.Inclusive(4, 9), ranges.Inclusive(0, 6), ranges.Inclusive(0, 9)},
		{"containment keeps the larger", ranges.Inclusive(0, 9), ranges.Exclusive(2, 3), ranges.Inclusive(0, 9)},
		{"starts keeps the larger", ranges.Inclusive(0, 4), ranges.Inclusive(0, 9), ranges.Inclusive(0, 9)},
		{"finishes keeps the larger", ranges.Inclusive(5, 9), ranges.Inclusive(0, 9), ranges.Inclusive(0, 9)},
		{"equal keeps itself", ranges.Inclusive(0, 9), ranges.Inclusive(0, 9), ranges.Inclusive(0, 9)},
		{"touching singles collapse", ranges.Single(1), ranges.Single(1), ranges.Single(1)},
		{"unbounded joins to full", ranges.To(5), ranges.From(0), ranges.Full[int]()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.a.Union(tc.b)
			require.True(t, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestUnionOfDisjointRangesIsNotRepresentable(t *testing.T) {
	_, ok := ranges.Inclusive(0, 2).Union(ranges.Inclusive(5, 8))
	assert.False(t, ok)
	_, ok = ranges.Inclusive(5, 8).Union(ranges.Inclusive(0, 2))
	assert.False(t, ok)
	// exclusive cuts leave a hole at the shared value
	_, ok = ranges.ToExclusive(5).Union(ranges.FromExclusive(5))
	assert.False(t, ok)
}

func TestIntersection(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     ranges.ContinuousRange[int]
		expected ranges.ContinuousRange[int]
	}{
		{"empty annihilates", ranges.Empty[int](), ranges.Inclusive(0, 5), ranges.Empty[int]()},
		{"full is identity", ranges.Full[int](), ranges.Inclusive(0, 5), ranges.Inclusive(0, 5)},
		{"disjoint gives empty", ranges.Inclusive(0, 2), ranges.Inclusive(5, 8), ranges.Empty[int]()},
		{"meets gives the shared point", ranges.Inclusive(0, 5), ranges.StartExclusive(5, 9), ranges.Single(5)},
		{"is met gives the shared point", ranges.StartExclusive(5, 9), ranges.Inclusive(0, 5), ranges.Single(5)},
		{"overlap gives the inner part", ranges.Inclusive(0, 6), ranges.Inclusive(4, 9), ranges.Inclusive(4, 6)},
		{"is-overlapped gives the inner part", ranges.Inclusive(4, 9), ranges.Inclusive(0, 6), ranges.Inclusive(4, 6)},
		{"containment keeps the smaller", ranges.Inclusive(0, 9), ranges.Exclusive(2, 3), ranges.Exclusive(2, 3)},
		{"starts keeps the smaller", ranges.Inclusive(0, 4), ranges.Inclusive(0, 9), ranges.Inclusive(0, 4)},
		{"equal keeps itself", ranges.Inclusive(0, 9), ranges.Inclusive(0, 9), ranges.Inclusive(0, 9)},
		{"mixed bound kinds keep the tightest", ranges.EndExclusive(0, 6), ranges.StartExclusive(2, 9), ranges.Exclusive(2, 6)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Intersection(tc.b))
		})
	}
}

func TestDifference(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     ranges.ContinuousRange[int]
		expected ranges.ContinuousRange[int]
	}{
		{"empty receiver returns the other operand", ranges.Empty[int](), ranges.Inclusive(0, 5), ranges.Inclusive(0, 5)},
		{"empty subtrahend is identity", ranges.Inclusive(0, 5), ranges.Empty[int](), ranges.Inclusive(0, 5)},
		{"disjoint keeps the receiver", ranges.Inclusive(0, 2), ranges.Inclusive(5, 8), ranges.Inclusive(0, 2)},
		{"equal leaves nothing", ranges.Inclusive(0, 9), ranges.Inclusive(0, 9), ranges.Empty[int]()},
		{"contained leaves nothing", ranges.Inclusive(3, 5), ranges.Inclusive(0, 9), ranges.Empty[int]()},
		{"starts leaves nothing", ranges.Inclusive(0, 4), ranges.Inclusive(0, 9), ranges.Empty[int]()},
		{"finishes leaves nothing", ranges.Inclusive(5, 9), ranges.Inclusive(0, 9), ranges.Empty[int]()},
		{"meets cuts the shared point", ranges.Inclusive(0, 5), ranges.StartExclusive(5, 9), ranges.EndExclusive(0, 5)},
		{"is met reclaims the touch point", ranges.StartExclusive(5, 9), ranges.Inclusive(0, 5), ranges.Inclusive(5, 9)},
		{"overlap keeps the left piece", ranges.Inclusive(0, 6), ranges.Inclusive(4, 9), ranges.EndExclusive(0, 4)},
		{"is-overlapped keeps the right piece", ranges.Inclusive(4, 9), ranges.Inclusive(0, 6), ranges.StartExclusive(6, 9)},
		{"is-started keeps the tail", ranges.Inclusive(0, 9), ranges.Inclusive(0, 4), ranges.StartExclusive(4, 9)},
		{"is-finished keeps the head", ranges.Inclusive(0, 9), ranges.Inclusive(5, 9), ranges.EndExclusive(0, 5)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.a.Difference(tc.b)
			require.True(t, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestDifferenceOfInteriorRangeIsNotRepresentable(t *testing.T) {
	// subtracting a strictly interior range would leave two pieces
	_, ok := ranges.Inclusive(0, 9).Difference(ranges.Inclusive(3, 5))
	assert.False(t, ok)
	_, ok = ranges.Full[int]().Difference(ranges.Single(0))
	assert.False(t, ok)

	// but the mirrored operation is fine
	got, ok := ranges.Inclusive(3, 5).Difference(ranges.Inclusive(0, 9))
	require.True(t, ok)
	assert.Equal(t, ranges.Empty[int](), got)
}

func TestDerivedQueries(t *testing.T) {
	a, b := ranges.Inclusive(0, 5), ranges.Inclusive(5, 9)
	assert.True(t, a.Intersects(b))
	assert.True(t, b.Intersects(a))
	assert.False(t, a.Intersects(ranges.Inclusive(6, 9)))

	assert.True(t, ranges.Inclusive(0, 9).ContainsRange(ranges.Exclusive(0, 9)))
	assert.False(t, ranges.Exclusive(0, 9).ContainsRange(ranges.Inclusive(0, 9)))

	assert.True(t, a.DisjointFromRange(ranges.Inclusive(6, 9)))
	assert.False(t, a.DisjointFromRange(b))

	// empty ranges establish no relation
	empty := ranges.Empty[int]()
	assert.False(t, empty.Intersects(empty), "two empty ranges share no point")
	assert.False(t, empty.Intersects(a))
	assert.False(t, empty.ContainsRange(a))
	assert.True(t, empty.DisjointFromRange(a))
	assert.True(t, empty.ContainsRange(empty), "empty vs empty compares Equal")
}

func TestSimplifyMethod(t *testing.T) {
	assert.Equal(t, ranges.Single(3), ranges.Inclusive(3, 3).Simplify())
	assert.Equal(t, ranges.Full[int](), ranges.Full[int]().Simplify())
	assert.Equal(t, ranges.Inclusive(0, 5), ranges.Inclusive(0, 5).Simplify())
}
