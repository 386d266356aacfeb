package ranges

// RangesRelation is how two ContinuousRange instances relate to each other,
// after Allen's interval algebra ("Maintaining Knowledge about Temporal
// Intervals", Allen, CACM 26(11), 1983).
//
// It is produced by ContinuousRange.Compare and consumed immediately to pick
// a set operation; it is never stored.
type RangesRelation uint8

const (
	// StrictlyBefore: the first range is entirely before the second, with a
	// gap between them.
	//
	//	[ A ]
	//	      [ B ]
	StrictlyBefore RangesRelation = iota

	// StrictlyAfter: the first range is entirely after the second, with a
	// gap between them.
	//
	//	      [ A ]
	//	[ B ]
	StrictlyAfter

	// Meets: the first range ends exactly where the second starts; the two
	// share that single point and nothing else.
	//
	//	[ A ]
	//	    [ B ]
	Meets

	// IsMet: the first range starts exactly where the second ends.
	//
	//	    [ A ]
	//	[ B ]
	IsMet

	// Overlaps: the first range starts before the second and ends inside it.
	//
	//	[ A ]
	//	  [ B ]
	Overlaps

	// IsOverlapped: the first range starts inside the second and ends after it.
	//
	//	  [ A ]
	//	[ B ]
	IsOverlapped

	// Starts: both ranges start together and the first ends first.
	//
	//	[ A ]
	//	[   B   ]
	Starts

	// IsStarted: both ranges start together and the first ends last.
	//
	//	[   A   ]
	//	[ B ]
	IsStarted

	// StrictlyContains: the second range is strictly inside the first.
	//
	//	[   A   ]
	//	  [ B ]
	StrictlyContains

	// IsStrictlyContained: the first range is strictly inside the second.
	//
	//	  [ A ]
	//	[   B   ]
	IsStrictlyContained

	// Finishes: both ranges end together and the first starts last.
	//
	//	    [ A ]
	//	[   B   ]
	Finishes

	// IsFinished: both ranges end together and the first starts first.
	//
	//	[   A   ]
	//	    [ B ]
	IsFinished

	// Equal: both ranges have the same bounds.
	Equal
)

func (r RangesRelation) String() string {
	switch r {
	case StrictlyBefore:
		return "StrictlyBefore"
	case StrictlyAfter:
		return "StrictlyAfter"
	case Meets:
		return "Meets"
	case IsMet:
		return "IsMet"
	case Overlaps:
		return "Overlaps"
	case IsOverlapped:
		return "IsOverlapped"
	case Starts:
		return "Starts"
	case IsStarted:
		return "IsStarted"
	case StrictlyContains:
		return "StrictlyContains"
	case IsStrictlyContained:
		return "IsStrictlyContained"
	case Finishes:
		return "Finishes"
	case IsFinished:
		return "IsFinished"
	case Equal:
		return "Equal"
	default:
		return "Invalid"
	}
}

// Intersects reports whether the two ranges share at least one point; every
// relation except StrictlyBefore and StrictlyAfter does.
func (r RangesRelation) Intersects() bool {
	return r != StrictlyBefore && r != StrictlyAfter
}

// Disjoint reports whether the two ranges share no point.
func (r RangesRelation) Disjoint() bool {
	return !r.Intersects()
}

// Contains reports whether the first range contains every point of the
// second.
func (r RangesRelation) Contains() bool {
	switch r {
	case Equal, StrictlyContains, IsFinished, IsStarted:
		return true
	default:
		return false
	}
}

// StartOrdering is the ordering of the two start bounds implied by the
// relation, in the cmp.Compare convention (-1, 0 or +1). It lets callers
// sort ranges without redoing raw bound comparisons.
func (r RangesRelation) StartOrdering() int {
	switch r {
	case StrictlyBefore, Meets, Overlaps, StrictlyContains, IsFinished:
		return -1
	case Starts, IsStarted, Equal:
		return 0
	default: // StrictlyAfter, IsMet, IsOverlapped, IsStrictlyContained, Finishes
		return 1
	}
}

// EndOrdering is the ordering of the two end bounds implied by the relation,
// in the cmp.Compare convention.
func (r RangesRelation) EndOrdering() int {
	switch r {
	case StrictlyBefore, Meets, Overlaps, Starts, IsStrictlyContained:
		return -1
	case Finishes, IsFinished, Equal:
		return 0
	default: // StrictlyAfter, IsMet, IsOverlapped, IsStarted, StrictlyContains
		return 1
	}
}

// Inverse is the relation seen from the other range's point of view:
// b.Compare(a) returns the inverse of a.Compare(b).
func (r RangesRelation) Inverse() RangesRelation {
	switch r {
	case StrictlyBefore:
		return StrictlyAfter
	case StrictlyAfter:
		return StrictlyBefore
	case Meets:
		return IsMet
	case IsMet:
		return Meets
	case Overlaps:
		return IsOverlapped
	case IsOverlapped:
		return Overlaps
	case Starts:
		return IsStarted
	case IsStarted:
		return Starts
	case StrictlyContains:
		return IsStrictlyContained
	case IsStrictlyContained:
		return StrictlyContains
	case Finishes:
		return IsFinished
	case IsFinished:
		return Finishes
	default:
		return Equal
	}
}
