// Package bsearch finds every position of a value in a sorted.Container.
//
// [Search] runs a direction-aware binary search to find any occurrence of the
// query. Only when one exists does it run two further binary searches over the
// whole container, one for the leftmost and one for the rightmost equal
// element, and return every index in between. All three searches are
// O(log n) regardless of how many duplicates there are; building the result
// is O(k) for k matches.
//
//	c := sorted.Ascend([]int{1, 2, 3, 2, 2, 3, 3, 4, 4, 5})
//	bsearch.Search(3, c).Indices() // [4 5 6]
//
//	d := sorted.Descend([]int{1, 2, 3, 2, 2, 3, 3, 4, 4, 5})
//	bsearch.Search(3, d).Indices() // [3 4 5]
//
// Nothing in this package fails. A query that is not present produces an
// empty [Result].
package bsearch
