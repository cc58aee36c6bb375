package sortable

// Ascending orders Sortable values from smallest to largest. It is a zero-size
// marker that can be used as the direction of a sorted.Container.
type Ascending[T Sortable[T]] struct{}

// Compare orders a and b by LessThan.
func (Ascending[T]) Compare(a, b T) int {
	return Compare(a, b)
}

// Name returns "ascending".
func (Ascending[T]) Name() string {
	return "ascending"
}

// Descending orders Sortable values from largest to smallest.
type Descending[T Sortable[T]] struct{}

// Compare orders a and b opposite to LessThan.
func (Descending[T]) Compare(a, b T) int {
	return Compare(b, a)
}

// Name returns "descending".
func (Descending[T]) Name() string {
	return "descending"
}
