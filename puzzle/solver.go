package puzzle

import (
	"container/heap"
	"errors"
)

var ErrExpansionLimit = errors.New("expansion limit reached before a solution")

// node wraps a state with its lineage. Nodes form a tree held together by
// parent pointers; the whole tree stays alive until Solve returns.
type node struct {
	state  State
	move   Move // move that produced state from parent; meaningless at the root
	depth  int
	score  int // depth + Manhattan(state, goal)
	seq    int // insertion order, breaks score ties deterministically
	index  int
	parent *node
}

// frontier is a min-heap on score, then insertion order.
type frontier []*node

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].score == f[j].score {
		return f[i].seq < f[j].seq
	}
	return f[i].score < f[j].score
}
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i]; f[i].index = i; f[j].index = j }
func (f *frontier) Push(x any)   { n := x.(*node); n.index = len(*f); *f = append(*f, n) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	item.index = -1
	*f = old[:n-1]
	return item
}

// Result is the outcome of a search. An unreachable goal is reported with
// Found false, not an error.
type Result struct {
	Moves    []Move
	Expanded int
	Found    bool
}

// Options tunes a search.
type Options struct {
	MaxExpanded int // 0 = no limit
}

// Option mutates Options.
type Option func(*Options)

// WithMaxExpanded caps how many states Solve may expand before giving up
// with ErrExpansionLimit.
func WithMaxExpanded(n int) Option {
	return func(o *Options) { o.MaxExpanded = n }
}

// Solve runs A* from start to goal and returns the move sequence. The
// heuristic is Manhattan distance, so returned paths are shortest.
//
// A state goes into the visited set when it is popped, not when it is first
// enqueued, and no pending frontier duplicate is ever improved in place.
// With a consistent heuristic that still yields optimal paths here, but it is
// a simplification, not a general A* guarantee.
func Solve(start, goal State, opts ...Option) (Result, error) {
	if !start.Valid() || !goal.Valid() {
		return Result{}, ErrMalformedState
	}
	var options Options
	for _, opt := range opts {
		opt(&options)
	}

	open := &frontier{}
	heap.Init(open)
	seq := 0
	root := &node{state: start, score: Manhattan(start, goal), seq: seq}
	seq++
	heap.Push(open, root)

	visited := map[State]bool{}
	expanded := 0

	for open.Len() > 0 {
		current := heap.Pop(open).(*node)

		if current.state == goal {
			return Result{Moves: reconstruct(current), Expanded: expanded, Found: true}, nil
		}
		if visited[current.state] {
			// stale frontier duplicate
			continue
		}
		visited[current.state] = true
		expanded++
		if options.MaxExpanded > 0 && expanded > options.MaxExpanded {
			return Result{Expanded: expanded}, ErrExpansionLimit
		}

		for _, succ := range current.state.Successors() {
			if visited[succ.State] {
				continue
			}
			child := &node{
				state:  succ.State,
				move:   succ.Move,
				depth:  current.depth + 1,
				seq:    seq,
				parent: current,
			}
			child.score = child.depth + Manhattan(succ.State, goal)
			seq++
			heap.Push(open, child)
		}
	}
	return Result{Expanded: expanded}, nil
}

// reconstruct walks parent links back to the root and returns the moves in
// start-to-goal order. The root contributes no move, so the path length
// equals the goal node's depth.
func reconstruct(goalNode *node) []Move {
	moves := make([]Move, goalNode.depth)
	for n := goalNode; n.parent != nil; n = n.parent {
		moves[n.depth-1] = n.move
	}
	return moves
}
