package sortable

import (
	"github.com/amp-labs/amp-bsearch/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare derives a three-way comparison from the Equals and LessThan methods
// of a Sortable type. It satisfies compare.Comparator[T].
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.Equals(b):
		return 0
	case a.LessThan(b):
		return -1
	default:
		return 1
	}
}

// Comparator returns Compare as a compare.Comparator, for callers that need
// to pass the ordering around as a value.
func Comparator[T Sortable[T]]() compare.Comparator[T] {
	return Compare[T]
}
