package sorted

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/amp-labs/amp-bsearch/compare"
)

// Container is an immutable sequence of values sorted by the direction D.
// The zero value is an empty container.
type Container[T any, D Direction[T]] struct {
	data []T
}

// New builds a container from data, sorting it in place by D. The container
// takes ownership of data: the caller must not modify the slice afterwards.
// New never fails; a nil or empty slice yields an empty container.
func New[T any, D Direction[T]](data []T) *Container[T, D] {
	var dir D

	slices.SortFunc(data, dir.Compare)

	return &Container[T, D]{data: data}
}

// Ascend builds a container sorted from smallest to largest.
func Ascend[T cmp.Ordered](data []T) *Container[T, Ascending[T]] {
	return New[T, Ascending[T]](data)
}

// Descend builds a container sorted from largest to smallest.
func Descend[T cmp.Ordered](data []T) *Container[T, Descending[T]] {
	return New[T, Descending[T]](data)
}

// Len returns the number of elements.
func (c *Container[T, D]) Len() int {
	if c == nil {
		return 0
	}

	return len(c.data)
}

// At returns the element at position i. It panics if i is out of range,
// just like indexing a slice.
func (c *Container[T, D]) At(i int) T { //nolint:ireturn
	return c.data[i]
}

// View returns the sorted elements. The returned slice is a copy, so
// modifying it does not affect the container.
func (c *Container[T, D]) View() []T {
	if c == nil {
		return nil
	}

	return slices.Clone(c.data)
}

// All iterates over the elements in container order without copying them.
func (c *Container[T, D]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if c == nil {
			return
		}

		for i, v := range c.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Compare compares a and b under the container's direction.
func (c *Container[T, D]) Compare(a, b T) int {
	var dir D

	return dir.Compare(a, b)
}

// Comparator returns the container's ordering as a compare.Comparator.
func (c *Container[T, D]) Comparator() compare.Comparator[T] {
	var dir D

	return dir.Compare
}

// Direction returns the name of the container's direction.
func (c *Container[T, D]) Direction() string {
	var dir D

	return dir.Name()
}

// String implements fmt.Stringer.
func (c *Container[T, D]) String() string {
	return fmt.Sprintf("%s%v", c.Direction(), c.View())
}
