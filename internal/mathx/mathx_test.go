package mathx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsDiff(t *testing.T) {
	assert.Equal(t, 3, AbsDiff(5, 2))
	assert.Equal(t, 3, AbsDiff(2, 5))
	assert.Equal(t, 0, AbsDiff(-4, -4))
	assert.Equal(t, 7, AbsDiff(-3, 4))
}

func TestPermutations(t *testing.T) {
	assert.Equal(t, [][]int{{}}, Permutations([]int{}))
	assert.Equal(t, [][]int{{1}}, Permutations([]int{1}))

	perms := Permutations([]int{1, 2, 3})
	assert.Len(t, perms, 6)
	seen := map[[3]int]bool{}
	for _, p := range perms {
		assert.ElementsMatch(t, []int{1, 2, 3}, p)
		seen[[3]int{p[0], p[1], p[2]}] = true
	}
	assert.Len(t, seen, 6)
}

func TestPermutationsDoesNotMutateInput(t *testing.T) {
	in := []int{1, 2, 3, 4}
	Permutations(in)
	assert.Equal(t, []int{1, 2, 3, 4}, in)
}
