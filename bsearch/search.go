package bsearch

import (
	"github.com/amp-labs/amp-bsearch/sorted"
)

// Search returns every index of c whose element equals query under the
// container's direction, in increasing order. The result is empty when the
// query is not present.
func Search[T any, D sorted.Direction[T]](query T, c *sorted.Container[T, D]) Result {
	if _, found := probe(query, c); !found {
		recordSearch(c.Direction(), 0)

		return Result{}
	}

	first := findBoundary(query, c, true)
	last := findBoundary(query, c, false)

	res := newResult(first, last)
	recordSearch(c.Direction(), res.Len())

	return res
}

// Contains reports whether query occurs in c. It only runs the probe search.
func Contains[T any, D sorted.Direction[T]](query T, c *sorted.Container[T, D]) bool {
	_, found := probe(query, c)

	return found
}

// Count returns the number of elements of c equal to query.
func Count[T any, D sorted.Direction[T]](query T, c *sorted.Container[T, D]) int {
	if _, found := probe(query, c); !found {
		return 0
	}

	return findBoundary(query, c, false) - findBoundary(query, c, true) + 1
}

// probe finds any index whose element equals query. It compares the query
// against the element, so "before" means the query orders before c.At(mid).
func probe[T any, D sorted.Direction[T]](query T, c *sorted.Container[T, D]) (int, bool) {
	left, right := 0, c.Len()

	for left < right {
		mid := left + (right-left)/2

		switch order := c.Compare(query, c.At(mid)); {
		case order < 0:
			right = mid
		case order > 0:
			left = mid + 1
		default:
			return mid, true
		}
	}

	return 0, false
}

// findBoundary returns the index of the first (or last) element equal to
// query, searching the full container. It must only be called once query is
// known to be present; otherwise the returned index is meaningless.
func findBoundary[T any, D sorted.Direction[T]](query T, c *sorted.Container[T, D], first bool) int {
	left, right := 0, c.Len()
	boundary := 0

	for left < right {
		mid := left + (right-left)/2

		switch order := c.Compare(c.At(mid), query); {
		case order == 0 && first:
			boundary = mid
			right = mid
		case order == 0:
			boundary = mid
			left = mid + 1
		case order < 0:
			left = mid + 1
		default:
			right = mid
		}
	}

	return boundary
}
