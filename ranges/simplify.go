package ranges

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/vbfox/range-ranger/internal/log"
	"github.com/vbfox/range-ranger/util"
)

// Simplify rewrites rs into canonical form and returns the canonical prefix
// of the same backing array. The result:
//
//   - contains no empty range,
//   - contains no two ranges that overlap or touch,
//   - is sorted so every range is StrictlyBefore the next one,
//   - has every degenerate shape collapsed (see ContinuousRange.Simplify).
//
// The caller must own rs exclusively for the duration of the call; its
// contents past the returned length are unspecified afterwards.
//
// Panics when a pair of surviving ranges is incomparable (the element
// ordering is partial where a total order was needed) or the sorted order is
// observed to be broken, per the invariant-violation contract of the package.
func Simplify[Idx cmp.Ordered](rs []ContinuousRange[Idx]) []ContinuousRange[Idx] {
	if len(rs) == 0 {
		return rs
	}
	logger := log.DefaultLogger.With("section", "ranges.simplify")

	// Phase 1: normalize every element, remembering which collapsed to
	// empty. A single Full absorbs everything else.
	var emptyAt []int
	for i := range rs {
		simplified := rs[i].Simplify()
		switch simplified.kind {
		case kindEmpty:
			emptyAt = append(emptyAt, i)
		case kindFull:
			logger.Debug("full range absorbs the whole input", "index", i)
			rs[0] = Full[Idx]()
			return rs[:1]
		default:
			rs[i] = simplified
		}
	}

	// Phase 2: swap-remove the recorded empties. Highest index first: a
	// swap moves the tail element into the removed slot, so removing an
	// earlier index first would re-home a later recorded index and delete
	// the wrong element.
	for i := range util.Reverse(emptyAt) {
		last := len(rs) - 1
		rs[i] = rs[last]
		rs = rs[:last]
	}
	if len(emptyAt) > 0 {
		logger.Debug("removed empty ranges", "count", len(emptyAt))
	}
	if len(rs) == 0 {
		return rs
	}

	// Phase 3: sort by start bound. No empties remain, so a failed
	// comparison means the element ordering is partial and the caller's
	// contract is broken.
	slices.SortStableFunc(rs, func(a, b ContinuousRange[Idx]) int {
		rel, ok := a.Compare(b)
		if !ok {
			panic(fmt.Sprintf("ranges: cannot sort, no ordering between %v and %v", a, b))
		}
		return rel.StartOrdering()
	})

	// Phase 4: single merge pass over the sorted ranges. write points at
	// the last canonical slot, read scans ahead.
	write, read := 0, 1
	for read < len(rs) {
		rel, ok := rs[write].Compare(rs[read])
		if !ok {
			panic(fmt.Sprintf("ranges: cannot merge, no ordering between %v and %v", rs[write], rs[read]))
		}
		switch rel {
		case StrictlyBefore:
			// disjoint with a gap, keep both
			write++
			rs[write], rs[read] = rs[read], rs[write]
			read++
		case StrictlyAfter:
			panic(fmt.Sprintf("ranges: order broken after sort: %v after %v", rs[write], rs[read]))
		case Meets, IsMet, Overlaps, IsOverlapped:
			merged, ok := rs[write].unionKnowingRelation(rs[read], rel)
			if !ok {
				panic(fmt.Sprintf("ranges: union unexpectedly failed for %v %v %v", rs[write], rel, rs[read]))
			}
			rs[write] = merged
			read++
		case Starts, IsStrictlyContained, Finishes:
			// the read element covers the write element
			rs[write], rs[read] = rs[read], rs[write]
			read++
		default: // IsStarted, StrictlyContains, IsFinished, Equal
			read++
		}
	}
	logger.Debug("simplified", "kept", write+1)
	return rs[:write+1]
}
