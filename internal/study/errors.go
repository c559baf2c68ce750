package study

import "errors"

// Sentinel errors for the study package.
// Use errors.Is to check: errors.Is(err, study.ErrEmptyDeck)
var (
	ErrEmptyDeck       = errors.New("study: deck has no cards")
	ErrNoDecksSelected = errors.New("study: no decks selected")
)
