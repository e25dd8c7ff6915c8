// Package graph implements breadth-first and depth-first traversal over an
// adjacency-list graph. The order of each neighbor slice is significant: it
// fixes the order in which traversals visit nodes.
package graph

import "errors"

var ErrUnknownNode = errors.New("node not in graph")

// Graph maps each node to its neighbors. Directed edges; list a node under
// both endpoints for an undirected graph.
type Graph[N comparable] map[N][]N

// BFS returns the nodes reachable from start in breadth-first visit order.
func (g Graph[N]) BFS(start N) ([]N, error) {
	if _, ok := g[start]; !ok {
		return nil, ErrUnknownNode
	}
	visited := map[N]bool{start: true}
	queue := []N{start}
	order := make([]N, 0, len(g))

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		order = append(order, current)
		for _, neighbor := range g[current] {
			if !visited[neighbor] {
				visited[neighbor] = true
				queue = append(queue, neighbor)
			}
		}
	}
	return order, nil
}

// DFS returns the nodes reachable from start in recursive depth-first order.
func (g Graph[N]) DFS(start N) ([]N, error) {
	if _, ok := g[start]; !ok {
		return nil, ErrUnknownNode
	}
	visited := map[N]bool{}
	var order []N
	var walk func(node N)
	walk = func(node N) {
		visited[node] = true
		order = append(order, node)
		for _, neighbor := range g[node] {
			if !visited[neighbor] {
				walk(neighbor)
			}
		}
	}
	walk(start)
	return order, nil
}

// DFSIterative is DFS with an explicit stack. Neighbors are pushed in
// reverse so the visit order matches the recursive variant.
func (g Graph[N]) DFSIterative(start N) ([]N, error) {
	if _, ok := g[start]; !ok {
		return nil, ErrUnknownNode
	}
	visited := map[N]bool{}
	stack := []N{start}
	var order []N

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[node] {
			continue
		}
		visited[node] = true
		order = append(order, node)

		neighbors := g[node]
		for i := len(neighbors) - 1; i >= 0; i-- {
			if !visited[neighbors[i]] {
				stack = append(stack, neighbors[i])
			}
		}
	}
	return order, nil
}

// ShortestPath returns a fewest-hops path from src to dst, found by BFS over
// a parent map. The second return is false when dst is unreachable.
func (g Graph[N]) ShortestPath(src, dst N) ([]N, bool, error) {
	if _, ok := g[src]; !ok {
		return nil, false, ErrUnknownNode
	}
	if _, ok := g[dst]; !ok {
		return nil, false, ErrUnknownNode
	}

	parent := map[N]N{}
	visited := map[N]bool{src: true}
	queue := []N{src}
	found := src == dst

	for len(queue) > 0 && !found {
		current := queue[0]
		queue = queue[1:]
		for _, neighbor := range g[current] {
			if visited[neighbor] {
				continue
			}
			visited[neighbor] = true
			parent[neighbor] = current
			if neighbor == dst {
				found = true
				break
			}
			queue = append(queue, neighbor)
		}
	}
	if !found {
		return nil, false, nil
	}

	// walk parents backwards from dst, then reverse
	path := []N{dst}
	for node := dst; node != src; {
		node = parent[node]
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true, nil
}
