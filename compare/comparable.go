// Package compare provides utilities for comparing values, both for equality
// and for three-way ordering.
package compare

import "cmp"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Comparator is a three-way comparison. It returns a negative number when a
// orders before b, zero when they are equal, and a positive number when a
// orders after b. A Comparator must describe a total order.
type Comparator[T any] func(a, b T) int

// Natural returns the natural ordering of an ordered type (see cmp.Compare).
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse returns a comparator that orders values opposite to c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Less reports whether a orders strictly before b under c.
func (c Comparator[T]) Less(a, b T) bool {
	return c(a, b) < 0
}

// Same reports whether a and b are equal under c.
func (c Comparator[T]) Same(a, b T) bool {
	return c(a, b) == 0
}
