package kata

import "errors"

var (
	// ErrEmptyInput is returned when a kata needs at least one element.
	ErrEmptyInput = errors.New("input must contain at least one element")
	// ErrNonPositiveCoin is returned for coins worth less than 1.
	ErrNonPositiveCoin = errors.New("coin values must be positive")
	// ErrNoCompetitions is returned when a tournament has no matches.
	ErrNoCompetitions = errors.New("tournament needs at least one competition")
	// ErrResultsMismatch is returned when results and competitions differ in length.
	ErrResultsMismatch = errors.New("results must match competitions one to one")
	// ErrInvalidResult is returned for a result other than 0 or 1.
	ErrInvalidResult = errors.New("result must be 0 (away won) or 1 (home won)")
)
