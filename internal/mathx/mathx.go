// Package mathx holds small generic helpers shared by the problem packages.
package mathx

import "golang.org/x/exp/constraints"

// AbsDiff returns |x - y| without converting through floats.
func AbsDiff[T constraints.Signed](x, y T) T {
	if x > y {
		return x - y
	}
	return y - x
}

// Permutations returns every ordering of items. The input slice is not
// modified; each returned slice is an independent copy. Permutations of the
// empty slice is a single empty permutation.
func Permutations[T any](items []T) [][]T {
	out := make([][]T, 0)
	buf := make([]T, len(items))
	copy(buf, items)

	var recurse func(k int)
	recurse = func(k int) {
		if k == len(buf) {
			perm := make([]T, len(buf))
			copy(perm, buf)
			out = append(out, perm)
			return
		}
		for i := k; i < len(buf); i++ {
			buf[k], buf[i] = buf[i], buf[k]
			recurse(k + 1)
			buf[k], buf[i] = buf[i], buf[k]
		}
	}
	recurse(0)
	return out
}
