// Package sorted provides an immutable, order-tagged view over a collection of
// values.
//
// A [Container] is built once from arbitrary input, sorted according to its
// direction, and never changes afterwards. The direction is a type parameter,
// so an ascending and a descending container over the same element type are
// distinct types and cannot be mixed up:
//
//	asc := sorted.Ascend([]int{3, 2, 4, 1})  // [1 2 3 4]
//	desc := sorted.Descend([]int{3, 2, 4, 1}) // [4 3 2 1]
//
// Index 0 is always the first element under the container's own direction.
// Search routines such as [github.com/amp-labs/amp-bsearch/bsearch.Search]
// compare through the container so they report positions in that order.
//
// # Thread Safety
//
// Construction is a one-time, single-owner operation. Once New returns, the
// container may be read from any number of goroutines without locking.
package sorted
