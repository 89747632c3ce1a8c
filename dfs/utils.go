package dfs

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/smpls/core"
)

// IndexOf returns the index of val in s, or -1.
func IndexOf(s []core.StateID, val core.StateID) int {
	for i, v := range s {
		if v == val {
			return i
		}
	}

	return -1
}

// Compare orders two handle sequences lexicographically; a proper prefix sorts first.
func Compare(a, b []core.StateID) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}

	return len(a) - len(b)
}

// JoinSig joins handles with commas into a signature string.
func JoinSig(c []core.StateID) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.Itoa(int(v))
	}

	return strings.Join(parts, ",")
}

// MinimalRotation returns the lexicographically smallest rotation of s.
// Complexity: O(n²), fine for the short cycles of an automaton.
func MinimalRotation(s []core.StateID) []core.StateID {
	n := len(s)
	best := append([]core.StateID(nil), s...)
	cand := make([]core.StateID, n)
	for k := 1; k < n; k++ {
		copy(cand, s[k:])
		copy(cand[n-k:], s[:k])
		if Compare(cand, best) < 0 {
			copy(best, cand)
		}
	}

	return best
}
