package bsearch

import (
	"fmt"
	"iter"
	"slices"
)

// Result is the ordered set of indices produced by a search. Indices are
// strictly increasing and form one contiguous run. The zero value is an empty
// result.
type Result struct {
	indices []int
}

// newResult materializes the inclusive range [first, last].
func newResult(first, last int) Result {
	indices := make([]int, 0, last-first+1)

	for i := first; i <= last; i++ {
		indices = append(indices, i)
	}

	return Result{indices: indices}
}

// Indices returns the matching indices in increasing order. The returned
// slice is a copy. An empty result returns an empty, non-nil slice.
func (r Result) Indices() []int {
	if len(r.indices) == 0 {
		return []int{}
	}

	return slices.Clone(r.indices)
}

// All iterates over the matching indices in increasing order.
func (r Result) All() iter.Seq[int] {
	return slices.Values(r.indices)
}

// Len returns the number of matches.
func (r Result) Len() int {
	return len(r.indices)
}

// Empty reports whether nothing matched.
func (r Result) Empty() bool {
	return len(r.indices) == 0
}

// Bounds returns the first and last matching index. ok is false for an empty
// result.
func (r Result) Bounds() (first, last int, ok bool) {
	if r.Empty() {
		return 0, 0, false
	}

	return r.indices[0], r.indices[len(r.indices)-1], true
}

// Contains reports whether index i is one of the matches.
func (r Result) Contains(i int) bool {
	first, last, ok := r.Bounds()

	return ok && i >= first && i <= last
}

// String implements fmt.Stringer.
func (r Result) String() string {
	return fmt.Sprint(r.Indices())
}
