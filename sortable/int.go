package sortable

// Int is a sortable wrapper type for the built-in int type.
//
//	c := sorted.New[sortable.Int, sortable.Ascending[sortable.Int]](
//	    []sortable.Int{5, 3, 7, 3})
//	// c.View() == [3, 3, 5, 7]
//
// To convert back to a regular int, use a type conversion: int(v).
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}
