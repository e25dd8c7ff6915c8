package cryptarith

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMoreMoney(t *testing.T) {
	sol, found, err := Solve("SEND + MORE = MONEY")
	require.NoError(t, err)
	require.True(t, found)

	// the classic puzzle has a unique solution
	assert.Equal(t, []int{9567, 1085}, sol.Operands)
	assert.Equal(t, 10652, sol.Sum)
	assert.Equal(t, 9, sol.Assignment['S'])
	assert.Equal(t, 1, sol.Assignment['M'])
	assert.Equal(t, 0, sol.Assignment['O'])
}

func TestTwoTwoFour(t *testing.T) {
	sol, found, err := Solve("TWO + TWO = FOUR")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, sol.Operands[0]+sol.Operands[1], sol.Sum)
	assert.Equal(t, sol.Operands[0], sol.Operands[1])

	seen := map[int]bool{}
	for _, d := range sol.Assignment {
		assert.False(t, seen[d], "digit %d reused", d)
		seen[d] = true
	}
	assert.NotZero(t, sol.Assignment['T'])
	assert.NotZero(t, sol.Assignment['F'])
}

func TestSingleLetters(t *testing.T) {
	sol, found, err := Solve("A + B = C")
	require.NoError(t, err)
	require.True(t, found)
	// deterministic order: first hit is A=1, B=2, C=3
	assert.Equal(t, map[byte]int{'A': 1, 'B': 2, 'C': 3}, sol.Assignment)
}

func TestNoSolution(t *testing.T) {
	// 2x = x has no positive solution, and the leading A may not be zero
	_, found, err := Solve("AB + AB = AB")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLowercaseAndSpacing(t *testing.T) {
	sol, found, err := Solve("send+more=money")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 10652, sol.Sum)
}

func TestBadPuzzles(t *testing.T) {
	for name, puzzle := range map[string]string{
		"no equals":     "SEND + MORE",
		"two equals":    "A = B = C",
		"empty result":  "A + B =",
		"empty operand": "A + + B = C",
		"digits":        "A1 + B = C",
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := Solve(puzzle)
			assert.ErrorIs(t, err, ErrBadPuzzle)
		})
	}
}

func TestTooManyLetters(t *testing.T) {
	_, _, err := Solve("ABCDEF + GHIJK = LMNOP")
	assert.ErrorIs(t, err, ErrTooManyLetters)
}
