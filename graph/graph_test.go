package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// undirected reference graph used across the tests
func lettersGraph() Graph[string] {
	return Graph[string]{
		"A": {"B", "C"},
		"B": {"A", "D", "E"},
		"C": {"A", "F"},
		"D": {"B"},
		"E": {"B", "F"},
		"F": {"C", "E", "G"},
		"G": {"F"},
	}
}

func TestBFS(t *testing.T) {
	g := lettersGraph()

	order, err := g.BFS("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G"}, order)

	order, err = g.BFS("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "B", "A", "E", "C", "F", "G"}, order)
}

func TestDFS(t *testing.T) {
	g := lettersGraph()

	order, err := g.DFS("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "E", "F", "C", "G"}, order)
}

func TestDFSIterativeMatchesRecursive(t *testing.T) {
	g := lettersGraph()
	for _, start := range []string{"A", "B", "D", "G"} {
		recursive, err := g.DFS(start)
		require.NoError(t, err)
		iterative, err := g.DFSIterative(start)
		require.NoError(t, err)
		assert.Equal(t, recursive, iterative, "start %s", start)
	}
}

func TestUnknownStart(t *testing.T) {
	g := lettersGraph()
	_, err := g.BFS("Z")
	assert.ErrorIs(t, err, ErrUnknownNode)
	_, err = g.DFS("Z")
	assert.ErrorIs(t, err, ErrUnknownNode)
	_, err = g.DFSIterative("Z")
	assert.ErrorIs(t, err, ErrUnknownNode)
	_, _, err = g.ShortestPath("A", "Z")
	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestDisconnectedComponents(t *testing.T) {
	g := Graph[string]{
		"A": {"B"},
		"B": {"A", "C"},
		"C": {"B"},
		"X": {"Y"},
		"Y": {"X"},
	}
	order, err := g.BFS("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)

	order, err = g.BFS("X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, order)

	_, found, err := g.ShortestPath("A", "X")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestShortestPath(t *testing.T) {
	g := lettersGraph()

	path, found, err := g.ShortestPath("A", "G")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"A", "C", "F", "G"}, path)

	path, found, err = g.ShortestPath("D", "D")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"D"}, path)
}

func TestIntNodes(t *testing.T) {
	g := Graph[int]{
		1: {2, 3},
		2: {1, 4},
		3: {1},
		4: {2},
	}
	order, err := g.BFS(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, order)
}
