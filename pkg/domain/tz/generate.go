package tz

import (
	"iter"
)

// Range clamps and rounds a requested range to the base values Generate
// visits. end is capped at MaxValue, an inverted range collapses onto end,
// and both bounds are rounded down to a multiple of ten. lo <= hi always.
func Range(start, end uint64) (lo, hi uint64) {
	hi = min(end, MaxValue)
	lo = min(start, hi)
	return lo - lo%10, hi - hi%10
}

// Count returns the number of IDs Generate(start, end) returns. It is at
// least one.
func Count(start, end uint64) int {
	lo, hi := Range(start, end)
	return int(hi/10 - lo/10 + 1)
}

// Generate returns every valid ID whose first eight digits fall in the
// requested range, in ascending order.
//
// Generate never fails. Out-of-range and inverted inputs are clamped by
// Range rather than rejected, so the result always holds at least one ID:
// Generate(300, 3) returns just 000000000 and
// Generate(MaxValue+10, MaxValue+200) returns just 999999998.
// Callers that want strict bounds must check them before calling.
func Generate(start, end uint64) []ID {
	ids := make([]ID, 0, Count(start, end))
	for id := range All(start, end) {
		ids = append(ids, id)
	}
	return ids
}

// All is the streaming form of Generate. It yields the same IDs in the same
// order without materialising them.
func All(start, end uint64) iter.Seq[ID] {
	lo, hi := Range(start, end)
	return func(yield func(ID) bool) {
		for base := lo; base <= hi; base += 10 {
			if !yield(Complete(fromUint(base))) {
				return
			}
		}
	}
}
