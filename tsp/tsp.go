// Package tsp solves the travelling salesman problem by brute force, trying
// every permutation of cities. Factorial time; fine for the handful of
// cities the demos use, hopeless beyond ten or so.
package tsp

import (
	"errors"
	"math"

	"searchlab/internal/mathx"
)

var (
	ErrTooFewCities = errors.New("need at least two cities")
	ErrBadMatrix    = errors.New("distance matrix must be square")
)

// Point is a city position for the Euclidean constructor.
type Point struct {
	X, Y float64
}

// Matrix holds pairwise distances; Matrix[i][j] is the cost of travelling
// from city i to city j.
type Matrix [][]float64

// FromPoints builds a symmetric Euclidean distance matrix.
func FromPoints(points []Point) Matrix {
	m := make(Matrix, len(points))
	for i := range points {
		m[i] = make([]float64, len(points))
		for j := range points {
			if i == j {
				continue
			}
			m[i][j] = math.Hypot(points[i].X-points[j].X, points[i].Y-points[j].Y)
		}
	}
	return m
}

// Tour is a closed route: Order starts and ends at city 0.
type Tour struct {
	Order []int
	Cost  float64
}

// Solve finds the cheapest closed tour through every city, starting and
// ending at city 0. All permutations of the remaining cities are tried.
func Solve(m Matrix) (Tour, error) {
	n := len(m)
	if n < 2 {
		return Tour{}, ErrTooFewCities
	}
	for _, row := range m {
		if len(row) != n {
			return Tour{}, ErrBadMatrix
		}
	}

	rest := make([]int, 0, n-1)
	for city := 1; city < n; city++ {
		rest = append(rest, city)
	}

	best := Tour{Cost: math.Inf(1)}
	for _, perm := range mathx.Permutations(rest) {
		cost := m[0][perm[0]]
		for i := 0; i < len(perm)-1; i++ {
			cost += m[perm[i]][perm[i+1]]
		}
		cost += m[perm[len(perm)-1]][0]

		if cost < best.Cost {
			order := make([]int, 0, n+1)
			order = append(order, 0)
			order = append(order, perm...)
			order = append(order, 0)
			best = Tour{Order: order, Cost: cost}
		}
	}
	return best, nil
}
