// Package queens enumerates N-queens placements by column-wise backtracking.
package queens

import (
	"errors"
	"strings"

	"searchlab/internal/mathx"
)

var ErrBadSize = errors.New("board size must be >= 1")

// Solution places one queen per column; Solution[col] is its row.
type Solution []int

// safe reports whether a queen at (row, col) attacks none of the queens
// already placed in columns [0, col).
func safe(rows []int, row, col int) bool {
	for c := 0; c < col; c++ {
		if rows[c] == row {
			return false
		}
		if mathx.AbsDiff(rows[c], row) == mathx.AbsDiff(c, col) {
			return false
		}
	}
	return true
}

// Solve returns every solution for an n x n board. Solutions come out in
// lexicographic order of row choices; n=2 and n=3 legitimately yield none.
func Solve(n int) ([]Solution, error) {
	if n < 1 {
		return nil, ErrBadSize
	}
	var solutions []Solution
	rows := make([]int, n)

	var place func(col int)
	place = func(col int) {
		if col == n {
			solutions = append(solutions, append(Solution(nil), rows...))
			return
		}
		for row := 0; row < n; row++ {
			if safe(rows, row, col) {
				rows[col] = row
				place(col + 1)
			}
		}
	}
	place(0)
	return solutions, nil
}

// Render draws a solution as a grid of "Q" and "." cells, one row per line.
func Render(s Solution) string {
	n := len(s)
	var b strings.Builder
	for row := 0; row < n; row++ {
		cells := make([]string, n)
		for col := 0; col < n; col++ {
			if s[col] == row {
				cells[col] = "Q"
			} else {
				cells[col] = "."
			}
		}
		b.WriteString(strings.Join(cells, " "))
		if row != n-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
