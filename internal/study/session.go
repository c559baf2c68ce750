package study

import (
	"context"
	"math/rand"
	"sync"

	"github.com/conorfennell/learncards/internal/domain"
	"github.com/conorfennell/learncards/internal/storage"
)

// Options configures a new Session.
type Options struct {
	// Shuffle permutes the working set when the session starts.
	Shuffle bool
	// Rand is the source used for every permutation. Nil means a clock-seeded source.
	Rand *rand.Rand
}

// Session is the card-stack state machine for one study run.
//
// It owns a working copy of the cards (possibly shuffled, possibly merged
// from several decks), the current index and the flip state of the current
// card. For a persisted deck every index change is written to the progress
// store before it takes effect; merged and unsaved decks are never persisted.
// A Session is safe for concurrent use.
type Session struct {
	mu sync.Mutex

	progress storage.ProgressStore
	rng      *rand.Rand

	id        domain.DeckID
	name      string
	canonical []domain.Flashcard
	cards     []domain.Flashcard

	index    int
	flipped  bool
	shuffled bool
}

// Snapshot is a read-only view of a session, suitable for rendering.
type Snapshot struct {
	DeckID   domain.DeckID    `json:"deckId"`
	DeckName string           `json:"deckName"`
	Card     domain.Flashcard `json:"card"`
	Index    int              `json:"index"`
	Total    int              `json:"total"`
	Flipped  bool             `json:"flipped"`
	Shuffled bool             `json:"shuffled"`
	Progress float64          `json:"progress"`
}

// NewSession starts studying deck.
//
// A persisted deck resumes at its stored index, wrapped into range if the
// deck has shrunk since. Other decks start at the first card.
func NewSession(ctx context.Context, progress storage.ProgressStore, deck domain.Deck, opts Options) (*Session, error) {
	if len(deck.Cards) == 0 {
		return nil, ErrEmptyDeck
	}

	rng := opts.Rand
	if rng == nil {
		rng = NewRand(0)
	}

	s := &Session{
		progress:  progress,
		rng:       rng,
		id:        deck.ID,
		name:      deck.Name,
		canonical: append([]domain.Flashcard(nil), deck.Cards...),
	}
	s.cards = s.canonical

	if id, ok := deck.ID.Value(); ok && progress != nil {
		index, err := progress.GetProgress(ctx, id)
		if err != nil {
			return nil, err
		}
		s.index = wrapIndex(index, len(s.cards))
	}

	if opts.Shuffle {
		s.shuffled = true
		s.cards = Shuffle(s.canonical, s.rng)
	}

	return s, nil
}

// Advance moves to the next card, wrapping from the last card to the first,
// and shows its question side.
//
// For a persisted deck the new index is stored first; if that fails the
// session is left unchanged and the store error is returned.
func (s *Session) Advance(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.advanceLocked(ctx)
}

// Release handles the end of a drag on the current card. A release that
// crosses the threshold advances exactly one card; anything else is a no-op.
func (s *Session) Release(ctx context.Context, g Gesture, t Threshold) (bool, error) {
	if !t.Qualifies(g) {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.advanceLocked(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Session) advanceLocked(ctx context.Context) (int, error) {
	next := (s.index + 1) % len(s.cards)

	if id, ok := s.id.Value(); ok && s.progress != nil {
		if err := s.progress.SetProgress(ctx, id, next); err != nil {
			return s.index, err
		}
	}

	s.index = next
	s.flipped = false
	return s.index, nil
}

// Touch stores the current index of a persisted deck again, which marks the
// deck as the most recently studied one. Other decks are left alone.
func (s *Session) Touch(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.id.Value(); ok && s.progress != nil {
		return s.progress.SetProgress(ctx, id, s.index)
	}
	return nil
}

// Flip turns the current card over and returns the new flip state.
func (s *Session) Flip() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flipped = !s.flipped
	return s.flipped
}

// SetShuffled switches between a fresh permutation of the deck and its
// canonical order.
//
// The current index is kept as is, so the learner may land on a different
// card at the same position. The flip state is cleared.
func (s *Session) SetShuffled(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if on {
		s.cards = Shuffle(s.canonical, s.rng)
	} else {
		s.cards = s.canonical
	}
	s.shuffled = on
	s.flipped = false
}

// Current returns the card on top of the stack.
func (s *Session) Current() domain.Flashcard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cards[s.index]
}

// Index returns the zero-based position of the current card.
func (s *Session) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Len returns the number of cards in the working set.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cards)
}

func (s *Session) Flipped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flipped
}

func (s *Session) Shuffled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shuffled
}

// Deck returns the identity and name of the deck being studied.
func (s *Session) Deck() (domain.DeckID, string) {
	return s.id, s.name
}

// Cards returns a copy of the working set in presentation order.
func (s *Session) Cards() []domain.Flashcard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Flashcard(nil), s.cards...)
}

// Interactive reports whether the card at position i accepts drags and taps.
// Only the current card does.
func (s *Session) Interactive(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return i == s.index
}

// Progress returns the completed fraction, counting the current card.
func (s *Session) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fraction(s.index, len(s.cards))
}

// Position returns the one-based card number and the total, as in "card N of M".
func (s *Session) Position() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index + 1, len(s.cards)
}

// Snapshot captures the current state in one consistent read.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		DeckID:   s.id,
		DeckName: s.name,
		Card:     s.cards[s.index],
		Index:    s.index,
		Total:    len(s.cards),
		Flipped:  s.flipped,
		Shuffled: s.shuffled,
		Progress: fraction(s.index, len(s.cards)),
	}
}

func fraction(index, total int) float64 {
	return float64(index+1) / float64(total)
}

func wrapIndex(index, n int) int {
	if index < 0 {
		return 0
	}
	return index % n
}
