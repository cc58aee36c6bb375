package compare

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNatural(t *testing.T) {
	t.Parallel()

	c := Natural[int]()

	assert.Negative(t, c(1, 2))
	assert.Zero(t, c(2, 2))
	assert.Positive(t, c(3, 2))

	s := Natural[string]()

	assert.Negative(t, s("a", "b"))
	assert.Zero(t, s("zoo", "zoo"))
	assert.Positive(t, s("zoo", "google"))
}

func TestReverse(t *testing.T) {
	t.Parallel()

	c := Reverse(Natural[int]())

	assert.Positive(t, c(1, 2))
	assert.Zero(t, c(2, 2))
	assert.Negative(t, c(3, 2))

	// Reversing twice gives back the original order.
	assert.Negative(t, Reverse(c)(1, 2))
}

func TestComparator_LessAndSame(t *testing.T) {
	t.Parallel()

	c := Natural[int]()

	assert.True(t, c.Less(1, 2))
	assert.False(t, c.Less(2, 2))
	assert.True(t, c.Same(2, 2))
	assert.False(t, c.Same(2, 3))
}

func TestComparator_Sort(t *testing.T) {
	t.Parallel()

	data := []int{3, 2, 4, 1}

	slices.SortFunc(data, Reverse(Natural[int]()))
	assert.Equal(t, []int{4, 3, 2, 1}, data)

	slices.SortFunc(data, Natural[int]())
	assert.Equal(t, []int{1, 2, 3, 4}, data)
}

type caseInsensitive string

func (s caseInsensitive) Equals(other caseInsensitive) bool {
	return strings.EqualFold(string(s), string(other))
}

func TestEquals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        caseInsensitive
		b        caseInsensitive
		expected bool
	}{
		{name: "identical", a: "hello", b: "hello", expected: true},
		{name: "different case", a: "Hello", b: "hELLO", expected: true},
		{name: "different", a: "hello", b: "world", expected: false},
		{name: "empty", a: "", b: "", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Equals(tt.a, tt.b))
		})
	}
}
