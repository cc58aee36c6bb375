package sortable

import "cmp"

// Float is a sortable wrapper type for the built-in float64 type.
//
// NaN is treated as equal to itself and less than every other value, the same
// as cmp.Compare, so that a collection containing NaN still has a total order.
type Float float64

var _ Sortable[Float] = (*Float)(nil)

// Equals returns true if both values compare equal (NaN equals NaN).
func (f Float) Equals(other Float) bool {
	return cmp.Compare(float64(f), float64(other)) == 0
}

// LessThan returns true if this Float orders before the other Float.
func (f Float) LessThan(other Float) bool {
	return cmp.Less(float64(f), float64(other))
}
