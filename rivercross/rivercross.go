// Package rivercross solves the missionaries and cannibals river-crossing
// problem with breadth-first search.
package rivercross

import (
	"errors"
	"fmt"
)

var ErrBadConfig = errors.New("need at least one pair and a boat for two or more")

// State tracks the left bank; the right bank is derived from the totals.
// BoatLeft is true while the boat is moored on the left bank.
type State struct {
	MLeft, CLeft int
	BoatLeft     bool
}

// Step is one boat crossing: the load it carried and the state it produced.
type Step struct {
	Missionaries, Cannibals int
	ToRight                 bool
	State                   State
}

func (s Step) String() string {
	direction := "Right to Left"
	if s.ToRight {
		direction = "Left to Right"
	}
	return fmt.Sprintf("Move %dM, %dC from %s", s.Missionaries, s.Cannibals, direction)
}

// valid reports whether missionaries are safe on both banks.
func valid(s State, pairs int) bool {
	if s.MLeft < 0 || s.MLeft > pairs || s.CLeft < 0 || s.CLeft > pairs {
		return false
	}
	mRight := pairs - s.MLeft
	cRight := pairs - s.CLeft
	if s.MLeft > 0 && s.MLeft < s.CLeft {
		return false
	}
	if mRight > 0 && mRight < cRight {
		return false
	}
	return true
}

// successors enumerates boat loads (m, c) with 1 <= m+c <= boatCap, applied
// in the direction the boat currently faces.
func successors(s State, pairs, boatCap int) []Step {
	var out []Step
	for m := 0; m <= boatCap; m++ {
		for c := 0; c <= boatCap; c++ {
			if m+c < 1 || m+c > boatCap {
				continue
			}
			var next State
			if s.BoatLeft {
				if s.MLeft < m || s.CLeft < c {
					continue
				}
				next = State{MLeft: s.MLeft - m, CLeft: s.CLeft - c, BoatLeft: false}
			} else {
				if pairs-s.MLeft < m || pairs-s.CLeft < c {
					continue
				}
				next = State{MLeft: s.MLeft + m, CLeft: s.CLeft + c, BoatLeft: true}
			}
			if !valid(next, pairs) {
				continue
			}
			out = append(out, Step{Missionaries: m, Cannibals: c, ToRight: s.BoatLeft, State: next})
		}
	}
	return out
}

// Solve moves pairs missionaries and pairs cannibals from the left bank to
// the right with a boat holding up to boatCap people. It returns the
// shortest crossing sequence, or false when the configuration has no
// solution (e.g. four or more pairs with a two-person boat).
func Solve(pairs, boatCap int) ([]Step, bool, error) {
	if pairs < 1 || boatCap < 2 {
		return nil, false, ErrBadConfig
	}

	start := State{MLeft: pairs, CLeft: pairs, BoatLeft: true}
	goal := State{MLeft: 0, CLeft: 0, BoatLeft: false}

	type lineage struct {
		prev State
		step Step
	}
	parent := map[State]lineage{}
	visited := map[State]bool{start: true}
	queue := []State{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == goal {
			var steps []Step
			for s := current; s != start; {
				from := parent[s]
				steps = append(steps, from.step)
				s = from.prev
			}
			for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
				steps[i], steps[j] = steps[j], steps[i]
			}
			return steps, true, nil
		}

		for _, step := range successors(current, pairs, boatCap) {
			if visited[step.State] {
				continue
			}
			visited[step.State] = true
			parent[step.State] = lineage{prev: current, step: step}
			queue = append(queue, step.State)
		}
	}
	return nil, false, nil
}
