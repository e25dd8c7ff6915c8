// Package puzzle solves the sliding 8-puzzle with A* search over a 3x3 board.
package puzzle

import (
	"errors"
	"fmt"
	"strings"

	"lukechampine.com/frand"

	"searchlab/internal/mathx"
)

const (
	gridSize = 3
	boardLen = gridSize * gridSize // 9

	// Blank is the tile value of the empty cell.
	Blank = 0
)

var (
	ErrMalformedState = errors.New("state is not a permutation of 0-8")
	ErrInvalidSteps   = errors.New("steps must be >= 0")
)

// State is a row-major 3x3 board. Value equality is board equality, so a
// State can be used directly as a map key.
type State [boardLen]int

// Goal is the standard solved board: 1..8 with the blank last.
func Goal() State { return State{1, 2, 3, 4, 5, 6, 7, 8, Blank} }

// NewState builds a State from a 9-element slice, rejecting anything that is
// not a permutation of 0-8.
func NewState(tiles []int) (State, error) {
	if len(tiles) != boardLen {
		return State{}, ErrMalformedState
	}
	var s State
	copy(s[:], tiles)
	if !s.Valid() {
		return State{}, ErrMalformedState
	}
	return s, nil
}

// Valid reports whether the state holds each of 0-8 exactly once.
func (s State) Valid() bool {
	var seen [boardLen]bool
	for _, v := range s {
		if v < 0 || v >= boardLen || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// String serializes the state row by row, blank drawn as "_".
func (s State) String() string {
	var b strings.Builder
	for i, v := range s {
		if v == Blank {
			b.WriteString("_")
		} else {
			b.WriteString(fmt.Sprintf("%d", v))
		}
		if i%gridSize == gridSize-1 && i != boardLen-1 {
			b.WriteString("|")
		} else if i != boardLen-1 {
			b.WriteString(",")
		}
	}
	return b.String()
}

func (s State) blankIndex() int {
	for i, v := range s {
		if v == Blank {
			return i
		}
	}
	return -1
}

// Move is a direction the blank slides in.
type Move int

const (
	Up Move = iota
	Down
	Left
	Right
)

var moveNames = map[Move]string{
	Up:    "Up",
	Down:  "Down",
	Left:  "Left",
	Right: "Right",
}

func (m Move) String() string {
	if name, ok := moveNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	switch m {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (m Move) delta() (dr, dc int) {
	switch m {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// Successor pairs a move with the state it produces.
type Successor struct {
	Move  Move
	State State
}

// Apply slides the blank in direction m. It reports false when the move would
// leave the board; the receiver is returned unchanged in that case.
func (s State) Apply(m Move) (State, bool) {
	zero := s.blankIndex()
	dr, dc := m.delta()
	row := zero/gridSize + dr
	col := zero%gridSize + dc
	if row < 0 || row >= gridSize || col < 0 || col >= gridSize {
		return s, false
	}
	target := row*gridSize + col
	next := s
	next[zero], next[target] = next[target], next[zero]
	return next, true
}

// Successors generates the applicable moves in the fixed order Up, Down,
// Left, Right. The order matters: it decides which of several equal-score
// frontier entries was inserted first.
func (s State) Successors() []Successor {
	out := make([]Successor, 0, 4)
	for _, m := range [...]Move{Up, Down, Left, Right} {
		if next, ok := s.Apply(m); ok {
			out = append(out, Successor{Move: m, State: next})
		}
	}
	return out
}

// Manhattan sums, over tiles 1-8, the absolute row and column distance
// between each tile's position in s and in goal. It is admissible and
// consistent for unit-cost slides.
func Manhattan(s, goal State) int {
	var goalPos [boardLen]int
	for i, v := range goal {
		goalPos[v] = i
	}
	sum := 0
	for i, v := range s {
		if v == Blank {
			continue
		}
		t := goalPos[v]
		sum += mathx.AbsDiff(i/gridSize, t/gridSize)
		sum += mathx.AbsDiff(i%gridSize, t%gridSize)
	}
	return sum
}

// Shuffle random-walks the given number of valid moves away from the solved
// board. Every state it returns is reachable, unlike a raw permutation draw.
func Shuffle(steps int) (State, error) {
	if steps < 0 {
		return State{}, ErrInvalidSteps
	}
	state := Goal()
	for i := 0; i < steps; i++ {
		neighbors := state.Successors()
		state = neighbors[frand.Intn(len(neighbors))].State
	}
	return state, nil
}
