// Package kata holds small algorithm exercises.
package kata

import (
	"strconv"
	"strings"
)

// IsPalindrome reports whether s reads the same backwards, ignoring spaces.
func IsPalindrome(s string) bool {
	runes := []rune(strings.ReplaceAll(s, " ", ""))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

// FizzBuzz returns "fizz" for multiples of 3, "buzz" for multiples of 5,
// "fizzbuzz" for multiples of both and the number itself otherwise.
func FizzBuzz(n int) string {
	switch {
	case n%15 == 0:
		return "fizzbuzz"
	case n%3 == 0:
		return "fizz"
	case n%5 == 0:
		return "buzz"
	default:
		return strconv.Itoa(n)
	}
}
