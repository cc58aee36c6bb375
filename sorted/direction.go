package sorted

import "cmp"

// Direction is the ordering a Container is sorted by. Implementations are
// zero-size types: the direction lives in the container's type, not in its
// data.
//
// Compare must describe a total order over T. It returns a negative number
// when a comes first, zero when a and b are equal, and a positive number when
// b comes first.
type Direction[T any] interface {
	Compare(a, b T) int
	Name() string
}

// Ascending orders values from smallest to largest by their natural order.
type Ascending[T cmp.Ordered] struct{}

// Descending orders values from largest to smallest by their natural order.
type Descending[T cmp.Ordered] struct{}

var (
	_ Direction[int]    = Ascending[int]{}
	_ Direction[string] = Descending[string]{}
)

func (Ascending[T]) Compare(a, b T) int {
	return cmp.Compare(a, b)
}

func (Ascending[T]) Name() string {
	return "ascending"
}

func (Descending[T]) Compare(a, b T) int {
	return cmp.Compare(b, a)
}

func (Descending[T]) Name() string {
	return "descending"
}
