package survival

import "errors"

// Soft failures of player actions. None of them change state.
var (
	ErrNoResource   = errors.New("no resource in reach")
	ErrOutOfRange   = errors.New("resource out of range")
	ErrNeedsAxe     = errors.New("an axe is required")
	ErrInsufficient = errors.New("not enough materials")
	ErrAlreadyOwned = errors.New("already owned")
)
