package sorted

import (
	"sync"
	"testing"

	"github.com/amp-labs/amp-bsearch/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SortsByDirection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []int
		asc  []int
		desc []int
	}{
		{name: "empty", data: []int{}, asc: []int{}, desc: []int{}},
		{name: "single", data: []int{1}, asc: []int{1}, desc: []int{1}},
		{name: "unsorted", data: []int{3, 2, 4, 1}, asc: []int{1, 2, 3, 4}, desc: []int{4, 3, 2, 1}},
		{
			name: "duplicates",
			data: []int{1, 2, 3, 2, 2, 3, 3, 4, 4, 5},
			asc:  []int{1, 2, 2, 2, 3, 3, 3, 4, 4, 5},
			desc: []int{5, 4, 4, 3, 3, 3, 2, 2, 2, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			asc := Ascend(append([]int{}, tt.data...))
			assert.Equal(t, tt.asc, asc.View())
			assert.Equal(t, len(tt.data), asc.Len())
			assert.Equal(t, "ascending", asc.Direction())

			desc := Descend(append([]int{}, tt.data...))
			assert.Equal(t, tt.desc, desc.View())
			assert.Equal(t, len(tt.data), desc.Len())
			assert.Equal(t, "descending", desc.Direction())
		})
	}
}

func TestNew_NilInput(t *testing.T) {
	t.Parallel()

	c := Ascend[string](nil)

	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.View())

	for range c.All() {
		t.Fatal("empty container should not yield")
	}
}

func TestNew_SortableDirection(t *testing.T) {
	t.Parallel()

	c := New[sortable.String, sortable.Descending[sortable.String]](
		[]sortable.String{"b", "d", "c", "a", "zoo", "google"})

	assert.Equal(t, []sortable.String{"zoo", "google", "d", "c", "b", "a"}, c.View())
	assert.Equal(t, "descending", c.Direction())
}

func TestView_IsACopy(t *testing.T) {
	t.Parallel()

	c := Ascend([]int{3, 1, 2})

	view := c.View()
	view[0] = 100

	assert.Equal(t, 1, c.At(0))
	assert.Equal(t, []int{1, 2, 3}, c.View())
}

func TestAt(t *testing.T) {
	t.Parallel()

	c := Descend([]string{"a", "c", "b"})

	assert.Equal(t, "c", c.At(0))
	assert.Equal(t, "b", c.At(1))
	assert.Equal(t, "a", c.At(2))
	assert.Panics(t, func() { c.At(3) })
}

func TestAll(t *testing.T) {
	t.Parallel()

	c := Ascend([]int{30, 10, 20})

	var (
		indices []int
		values  []int
	)

	for i, v := range c.All() {
		indices = append(indices, i)
		values = append(values, v)
	}

	assert.Equal(t, []int{0, 1, 2}, indices)
	assert.Equal(t, []int{10, 20, 30}, values)

	// Early break stops iteration.
	count := 0

	for range c.All() {
		count++

		break
	}

	assert.Equal(t, 1, count)
}

func TestCompare(t *testing.T) {
	t.Parallel()

	asc := Ascend([]int{})
	desc := Descend([]int{})

	assert.Negative(t, asc.Compare(1, 2))
	assert.Positive(t, desc.Compare(1, 2))
	assert.Zero(t, desc.Compare(2, 2))
	assert.True(t, desc.Comparator().Less(2, 1))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "descending[3 2 1]", Descend([]int{1, 2, 3}).String())
}

func TestConcurrentReaders(t *testing.T) {
	t.Parallel()

	data := make([]int, 1000)
	for i := range data {
		data[i] = (i * 7919) % 1000
	}

	c := Ascend(data)

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			prev := -1
			for _, v := range c.All() {
				assert.GreaterOrEqual(t, v, prev)
				prev = v
			}
		}()
	}

	wg.Wait()

	require.Equal(t, 1000, c.Len())
	assert.Equal(t, 0, c.At(0))
	assert.Equal(t, 999, c.At(999))
}
