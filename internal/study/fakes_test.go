package study

import (
	"context"
	"time"

	"github.com/conorfennell/learncards/internal/domain"
)

// memoryProgress is an in-memory ProgressStore with a settable clock.
type memoryProgress struct {
	entries map[int64]domain.DeckProgress
	writes  []int
	now     time.Time
}

func newMemoryProgress() *memoryProgress {
	return &memoryProgress{
		entries: make(map[int64]domain.DeckProgress),
		now:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memoryProgress) SetProgress(_ context.Context, deckID int64, index int) error {
	m.now = m.now.Add(time.Second)
	m.entries[deckID] = domain.DeckProgress{DeckID: deckID, CurrentIndex: index, LastStudied: m.now}
	m.writes = append(m.writes, index)
	return nil
}

func (m *memoryProgress) GetProgress(_ context.Context, deckID int64) (int, error) {
	return m.entries[deckID].CurrentIndex, nil
}

func (m *memoryProgress) ResetProgress(_ context.Context, deckID int64) error {
	delete(m.entries, deckID)
	return nil
}

func (m *memoryProgress) GetAllProgress(context.Context) ([]domain.DeckProgress, error) {
	var out []domain.DeckProgress
	for _, p := range m.entries {
		out = append(out, p)
	}
	return out, nil
}

func makeDeck(id int64, name string, questions ...string) domain.Deck {
	d := domain.Deck{ID: domain.Persisted(id), Name: name}
	for _, q := range questions {
		d.Cards = append(d.Cards, domain.Flashcard{Question: q, Answer: q + "-answer"})
	}
	return d
}

func questionsOf(cards []domain.Flashcard) []string {
	var out []string
	for _, c := range cards {
		out = append(out, c.Question)
	}
	return out
}
