// Package waterjug solves the two-jug measuring problem with breadth-first
// search over fill states.
package waterjug

import (
	"errors"
	"fmt"
)

var ErrBadJug = errors.New("capacities must be positive and target within the larger jug")

// State holds the litres currently in each jug.
type State struct {
	A, B int
}

func (s State) String() string { return fmt.Sprintf("(%d, %d)", s.A, s.B) }

// Action is one of the six moves available at any state.
type Action int

const (
	FillA Action = iota
	FillB
	EmptyA
	EmptyB
	PourAtoB
	PourBtoA
)

var actionNames = map[Action]string{
	FillA:    "Fill Jug A",
	FillB:    "Fill Jug B",
	EmptyA:   "Empty Jug A",
	EmptyB:   "Empty Jug B",
	PourAtoB: "Pour Jug A into Jug B",
	PourBtoA: "Pour Jug B into Jug A",
}

func (a Action) String() string { return actionNames[a] }

// Step records an action and the state it produced.
type Step struct {
	Action Action
	State  State
}

// successors lists the result of each action, in fixed action order.
func successors(s State, capA, capB int) []Step {
	pourAB := min(s.A, capB-s.B)
	pourBA := min(s.B, capA-s.A)
	return []Step{
		{FillA, State{capA, s.B}},
		{FillB, State{s.A, capB}},
		{EmptyA, State{0, s.B}},
		{EmptyB, State{s.A, 0}},
		{PourAtoB, State{s.A - pourAB, s.B + pourAB}},
		{PourBtoA, State{s.A + pourBA, s.B - pourBA}},
	}
}

// Solve searches for the shortest action sequence from two empty jugs to a
// state where either jug holds exactly target litres. The second return is
// false when no sequence exists (target not a multiple of gcd of the
// capacities).
func Solve(capA, capB, target int) ([]Step, bool, error) {
	if capA <= 0 || capB <= 0 || target < 0 || target > max(capA, capB) {
		return nil, false, ErrBadJug
	}

	start := State{0, 0}
	if target == 0 {
		return []Step{}, true, nil
	}

	type lineage struct {
		prev   State
		action Action
	}
	parent := map[State]lineage{}
	visited := map[State]bool{start: true}
	queue := []State{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.A == target || current.B == target {
			// walk parents back to the start, then reverse
			var steps []Step
			for s := current; s != start; {
				from := parent[s]
				steps = append(steps, Step{Action: from.action, State: s})
				s = from.prev
			}
			for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
				steps[i], steps[j] = steps[j], steps[i]
			}
			return steps, true, nil
		}

		for _, step := range successors(current, capA, capB) {
			if visited[step.State] {
				continue
			}
			visited[step.State] = true
			parent[step.State] = lineage{prev: current, action: step.Action}
			queue = append(queue, step.State)
		}
	}
	return nil, false, nil
}
