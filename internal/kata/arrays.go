package kata

import (
	"fmt"
	"slices"
)

// FindLargest returns the largest number in list.
func FindLargest(list []int) (int, error) {
	if len(list) == 0 {
		return 0, ErrEmptyInput
	}

	largest := list[0]
	for _, n := range list[1:] {
		if n > largest {
			largest = n
		}
	}
	return largest, nil
}

// NonConstructibleChange returns the smallest amount of change that cannot
// be made from coins. The input slice is left untouched.
func NonConstructibleChange(coins []int) (int, error) {
	sorted := slices.Clone(coins)
	slices.Sort(sorted)

	change := 0
	for _, c := range sorted {
		if c < 1 {
			return 0, fmt.Errorf("coin %d: %w", c, ErrNonPositiveCoin)
		}
		if c > change+1 {
			break
		}
		change += c
	}
	return change + 1, nil
}

// SortedSquares squares an ascending slice and returns the squares in
// ascending order.
func SortedSquares(sorted []int) ([]int, error) {
	if len(sorted) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]int, len(sorted))
	lo, hi := 0, len(sorted)-1
	for i := len(sorted) - 1; i >= 0; i-- {
		a, b := abs(sorted[lo]), abs(sorted[hi])
		if a > b {
			out[i] = a * a
			lo++
		} else {
			out[i] = b * b
			hi--
		}
	}
	return out, nil
}

// TwoNumberSum returns two distinct entries of nums that add up to target,
// as [n, target-n] where n is the later of the two, or nil if none do.
func TwoNumberSum(nums []int, target int) []int {
	seen := make(map[int]struct{}, len(nums))
	for _, n := range nums {
		if _, ok := seen[target-n]; ok {
			return []int{n, target - n}
		}
		seen[n] = struct{}{}
	}
	return nil
}

// IsValidSubsequence reports whether sequence appears in array in order,
// not necessarily contiguously.
func IsValidSubsequence(array, sequence []int) (bool, error) {
	if len(array) == 0 || len(sequence) == 0 {
		return false, ErrEmptyInput
	}

	i := 0
	for _, v := range array {
		if i == len(sequence) {
			break
		}
		if v == sequence[i] {
			i++
		}
	}
	return i == len(sequence), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
