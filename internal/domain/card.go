package domain

import "time"

// Flashcard represents a single question-answer pair.
// ID is zero until the card has been written to the deck store.
type Flashcard struct {
	ID       int64  `json:"id,omitempty"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Deck is a named, ordered collection of flashcards.
// The order of Cards is the canonical study order.
type Deck struct {
	ID        DeckID      `json:"id"`
	Name      string      `json:"name"`
	Cards     []Flashcard `json:"cards"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// DeckProgress is the study cursor of one deck.
type DeckProgress struct {
	DeckID       int64     `json:"deckId"`
	CurrentIndex int       `json:"currentIndex"`
	LastStudied  time.Time `json:"lastStudied"`
}
