// Package cryptarith solves cryptarithmetic puzzles such as
// "SEND + MORE = MONEY": assign a distinct digit to every letter so the
// addition holds, with no multi-digit word starting in zero.
package cryptarith

import (
	"errors"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

var (
	ErrBadPuzzle      = errors.New("puzzle must look like WORD + WORD = WORD")
	ErrTooManyLetters = errors.New("more than ten distinct letters")
)

// Solution maps each letter to its digit, along with the numeric reading of
// the equation.
type Solution struct {
	Assignment map[byte]int
	Operands   []int
	Sum        int
}

type parsed struct {
	operands []string
	result   string
	letters  []byte // sorted
	leading  map[byte]bool
}

func parse(puzzle string) (parsed, error) {
	cleaned := strings.ToUpper(strings.ReplaceAll(puzzle, " ", ""))
	if strings.Count(cleaned, "=") != 1 {
		return parsed{}, ErrBadPuzzle
	}
	left, result := splitTwo(cleaned, "=")
	operands := strings.Split(left, "+")
	if result == "" {
		return parsed{}, ErrBadPuzzle
	}

	letterSet := map[byte]bool{}
	leading := map[byte]bool{}
	for _, word := range append(slices.Clone(operands), result) {
		if word == "" {
			return parsed{}, ErrBadPuzzle
		}
		for i := 0; i < len(word); i++ {
			if word[i] < 'A' || word[i] > 'Z' {
				return parsed{}, ErrBadPuzzle
			}
			letterSet[word[i]] = true
		}
		if len(word) > 1 {
			leading[word[0]] = true
		}
	}
	if len(letterSet) > 10 {
		return parsed{}, ErrTooManyLetters
	}

	letters := maps.Keys(letterSet)
	slices.Sort(letters)
	return parsed{operands: operands, result: result, letters: letters, leading: leading}, nil
}

func splitTwo(s, sep string) (string, string) {
	parts := strings.SplitN(s, sep, 2)
	return parts[0], parts[1]
}

func wordValue(word string, digit map[byte]int) int {
	value := 0
	for i := 0; i < len(word); i++ {
		value = value*10 + digit[word[i]]
	}
	return value
}

// Solve returns the first satisfying assignment in deterministic order
// (letters alphabetical, digits ascending), or false when none exists.
func Solve(puzzle string) (Solution, bool, error) {
	p, err := parse(puzzle)
	if err != nil {
		return Solution{}, false, err
	}

	digit := map[byte]int{}
	var used [10]bool

	check := func() bool {
		sum := 0
		for _, word := range p.operands {
			sum += wordValue(word, digit)
		}
		return sum == wordValue(p.result, digit)
	}

	var assign func(i int) bool
	assign = func(i int) bool {
		if i == len(p.letters) {
			return check()
		}
		letter := p.letters[i]
		for d := 0; d <= 9; d++ {
			if used[d] {
				continue
			}
			if d == 0 && p.leading[letter] {
				continue
			}
			digit[letter] = d
			used[d] = true
			if assign(i + 1) {
				return true
			}
			used[d] = false
			delete(digit, letter)
		}
		return false
	}

	if !assign(0) {
		return Solution{}, false, nil
	}

	operands := make([]int, len(p.operands))
	for i, word := range p.operands {
		operands[i] = wordValue(word, digit)
	}
	return Solution{
		Assignment: digit,
		Operands:   operands,
		Sum:        wordValue(p.result, digit),
	}, true, nil
}
