package storage

import "errors"

var (
	// ErrNotPersisted is returned when a write targets a deck without a store
	// id, including the merged study deck.
	ErrNotPersisted = errors.New("storage: deck is not persisted")
	// ErrDeckNotFound is returned when updating a deck id that is not stored.
	ErrDeckNotFound = errors.New("storage: deck not found")
	// ErrInvalidIndex is returned for a negative progress index.
	ErrInvalidIndex = errors.New("storage: progress index must not be negative")
)
