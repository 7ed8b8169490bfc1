// Package sum adds unsigned integers with overflow checking.
package sum

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

var (
	// ErrOverflow is returned when a sum does not fit in a uint64.
	ErrOverflow = errors.New("sum overflows uint64")
	// ErrNoNumbers is returned when there is nothing to add.
	ErrNoNumbers = errors.New("no numbers to add")
)

// Add returns a + b.
func Add(a, b uint64) (uint64, error) {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}
	return s, nil
}

// All folds Add over numbers from left to right.
func All(numbers []uint64) (uint64, error) {
	if len(numbers) == 0 {
		return 0, ErrNoNumbers
	}

	total := numbers[0]
	for _, n := range numbers[1:] {
		var err error
		if total, err = Add(total, n); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// ParseArgs parses decimal unsigned integers.
func ParseArgs(args []string) ([]uint64, error) {
	numbers := make([]uint64, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing argument %q: %w", arg, err)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// FormatList renders numbers as "[1, 2, 3]".
func FormatList(numbers []uint64) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.FormatUint(n, 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
