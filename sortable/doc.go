// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use in ordered containers.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Byte], [Float], [String]
// and [NaturalString]. The Sortable interface extends
// [github.com/amp-labs/amp-bsearch/compare.Comparable] by adding a LessThan
// method, providing both equality comparison and ordering.
//
// [Ascending] and [Descending] turn any Sortable type into a direction for
// [github.com/amp-labs/amp-bsearch/sorted.Container]:
//
//	c := sorted.New[sortable.String, sortable.Descending[sortable.String]](
//	    []sortable.String{"b", "d", "c", "a"})
//	// c.View() == ["d", "c", "b", "a"]
//
//	res := bsearch.Search(sortable.String("c"), c)
//	// res.Indices() == [1]
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// Equals and LessThan must agree on a total order: for any a and b exactly one
// of a.LessThan(b), b.LessThan(a) and a.Equals(b) holds. Searches over a type
// that breaks this rule return unspecified results.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently thread-safe.
package sortable
