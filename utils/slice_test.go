package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	got := Filter([]int{1, 2, 3, 4, 5}, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4}, got)

	assert.Empty(t, Filter(nil, func(v int) bool { return true }))
}

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, func(v int) int { return v * v })
	assert.Equal(t, []int{1, 4, 9}, got)
}

func TestFind(t *testing.T) {
	items := []string{"a", "b", "c"}

	found := Find(items, func(s *string) bool { return *s == "b" })
	assert.NotNil(t, found)
	assert.Equal(t, "b", *found)

	// The pointer aliases the slice element.
	*found = "B"
	assert.Equal(t, "B", items[1])

	assert.Nil(t, Find(items, func(s *string) bool { return *s == "z" }))
}

func TestGroupBy(t *testing.T) {
	groups := GroupBy([]int{1, 2, 3, 4, 5}, func(v int) string {
		if v%2 == 0 {
			return "even"
		}
		return "odd"
	})
	assert.Equal(t, []int{2, 4}, groups["even"])
	assert.Equal(t, []int{1, 3, 5}, groups["odd"])
}

func TestPtr(t *testing.T) {
	p := Ptr(42)
	assert.Equal(t, 42, *p)
}
