package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_deck_store.go -package=mocks github.com/conorfennell/learncards/internal/storage DeckStore
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_progress_store.go -package=mocks github.com/conorfennell/learncards/internal/storage ProgressStore

import (
	"context"
	"time"

	"github.com/conorfennell/learncards/internal/domain"
)

// DeckStore is durable keyed storage for decks.
type DeckStore interface {
	// Init prepares the store. It is idempotent.
	Init(ctx context.Context) error
	// AddDeck stores a new deck and returns the id assigned to it.
	AddDeck(ctx context.Context, name string, cards []domain.Flashcard, createdAt, updatedAt time.Time) (int64, error)
	// GetAllDecks returns every deck ordered by id.
	GetAllDecks(ctx context.Context) ([]domain.Deck, error)
	// GetDeck returns the deck with the given id, or nil if there is none.
	GetDeck(ctx context.Context, id int64) (*domain.Deck, error)
	// UpdateDeck replaces the name, cards and update time of a stored deck.
	UpdateDeck(ctx context.Context, deck domain.Deck) error
	// DeleteDeck removes a deck and its cards. Progress is left untouched.
	DeleteDeck(ctx context.Context, id int64) error
}

// ProgressStore keeps one study cursor per deck.
type ProgressStore interface {
	// SetProgress records index as the current card of a deck, stamped now.
	SetProgress(ctx context.Context, deckID int64, index int) error
	// GetProgress returns the stored index, or 0 for a deck never studied.
	GetProgress(ctx context.Context, deckID int64) (int, error)
	// ResetProgress forgets the cursor of a deck.
	ResetProgress(ctx context.Context, deckID int64) error
	// GetAllProgress returns every stored cursor.
	GetAllProgress(ctx context.Context) ([]domain.DeckProgress, error)
}

// Compile-time interface checks.
var (
	_ DeckStore     = (*DeckRepo)(nil)
	_ ProgressStore = (*ProgressRepo)(nil)
)
