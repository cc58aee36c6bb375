package sortable

import "strings"

// NaturalString is a string that sorts in natural (human) order, so that
// embedded numbers compare by value: "file2" sorts before "file10".
//
//	data := []sortable.NaturalString{"img12", "img10", "img2", "img1"}
//	c := sorted.New[sortable.NaturalString, sortable.Ascending[sortable.NaturalString]](data)
//	// c.View() == ["img1", "img2", "img10", "img12"]
//
// Digit runs of any length compare by numeric value. Strings that are equal
// by value but differ in leading zeros ("a01" and "a1") fall back to byte
// order, so the ordering is total.
type NaturalString string

var _ Sortable[NaturalString] = (*NaturalString)(nil)

// Equals returns true if both strings are byte-for-byte identical.
func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

// LessThan returns true if this string orders before the other in natural order.
func (s NaturalString) LessThan(other NaturalString) bool {
	if c := compareNatural(string(s), string(other)); c != 0 {
		return c < 0
	}

	return string(s) < string(other)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// digitRun returns the run of digits starting at s[i] and the index after it.
func digitRun(s string, i int) (string, int) {
	j := i
	for j < len(s) && isDigit(s[j]) {
		j++
	}

	return s[i:j], j
}

// compareDigits compares two digit runs by numeric value without parsing
// them, so runs longer than any integer type still compare correctly.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")

	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}

		return 1
	}

	return strings.Compare(a, b)
}

// compareNatural splits both strings into digit runs and single bytes and
// compares them token by token. A digit run against a non-digit byte compares
// by bytes; since digits are contiguous in ASCII, that result does not depend
// on which digit the run starts with.
func compareNatural(a, b string) int {
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			var runA, runB string

			runA, i = digitRun(a, i)
			runB, j = digitRun(b, j)

			if c := compareDigits(runA, runB); c != 0 {
				return c
			}

			continue
		}

		if a[i] != b[j] {
			if a[i] < b[j] {
				return -1
			}

			return 1
		}

		i++
		j++
	}

	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	default:
		return 0
	}
}
