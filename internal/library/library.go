// Package library holds the use cases behind the web UI and the CLI:
// importing, listing, deleting and studying decks.
package library

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/conorfennell/learncards/internal/domain"
	"github.com/conorfennell/learncards/internal/knol"
	"github.com/conorfennell/learncards/internal/parser"
	"github.com/conorfennell/learncards/internal/storage"
	"github.com/conorfennell/learncards/internal/study"
)

const (
	previewCards = 3
	previewRunes = 50
)

// Library ties the deck and progress stores to the study engine.
type Library struct {
	decks    storage.DeckStore
	progress storage.ProgressStore
	validate *validator.Validate
	now      func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Library. A nil rng is replaced by a clock-seeded source.
func New(decks storage.DeckStore, progress storage.ProgressStore, rng *rand.Rand) *Library {
	if rng == nil {
		rng = study.NewRand(0)
	}
	return &Library{
		decks:    decks,
		progress: progress,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
		rng:      rng,
	}
}

// ImportRequest describes an uploaded deck.
type ImportRequest struct {
	Name     string `validate:"required,max=200"`
	Filename string
}

// DeckSummary is a deck as shown in the deck list.
type DeckSummary struct {
	Deck domain.Deck
	ID   int64
	// Index is the stored cursor, 0 when the deck was never advanced.
	Index int
	// ProgressLabel reads "N / M" once the learner has moved past the first card.
	ProgressLabel string
	Preview       []string
	// More counts the cards not shown in Preview.
	More int
}

// Import parses r as CSV and stores the cards as a new deck.
func (l *Library) Import(ctx context.Context, req ImportRequest, r io.Reader) (int64, error) {
	if r == nil {
		return 0, ErrNoFile
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := l.validateRequest(req); err != nil {
		return 0, err
	}

	cards, err := parser.Parse(r)
	if err != nil {
		return 0, WrapError(err, "failed to read deck file")
	}
	if len(cards) == 0 {
		return 0, ErrNoCards
	}

	now := l.now()
	id, err := l.decks.AddDeck(ctx, req.Name, cards, now, now)
	if err != nil {
		return 0, WrapError(err, "failed to save deck")
	}

	slog.Info("Deck imported", "id", id, "name", req.Name, "file", req.Filename, "cards", len(cards))
	return id, nil
}

func (l *Library) validateRequest(req ImportRequest) error {
	err := l.validate.Struct(req)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	msg := "is invalid"
	switch fe.Tag() {
	case "required":
		msg = "please enter a deck name"
	case "max":
		msg = fmt.Sprintf("must be at most %s characters", fe.Param())
	}
	return &ValidationError{Field: strings.ToLower(fe.Field()), Message: msg}
}

// DeleteDeck removes a deck together with its study progress.
func (l *Library) DeleteDeck(ctx context.Context, id int64) error {
	if err := l.decks.DeleteDeck(ctx, id); err != nil {
		return WrapError(err, "failed to delete deck")
	}
	if err := l.progress.ResetProgress(ctx, id); err != nil {
		return WrapError(err, "failed to reset progress")
	}
	slog.Info("Deck deleted", "id", id)
	return nil
}

// ResetProgress sends a deck back to its first card.
func (l *Library) ResetProgress(ctx context.Context, id int64) error {
	return WrapError(l.progress.ResetProgress(ctx, id), "failed to reset progress")
}

// Decks lists every deck with its progress and a short preview.
func (l *Library) Decks(ctx context.Context) ([]DeckSummary, error) {
	decks, err := l.decks.GetAllDecks(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list decks")
	}
	progress, err := l.progress.GetAllProgress(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to load progress")
	}

	indexes := make(map[int64]int, len(progress))
	for _, p := range progress {
		indexes[p.DeckID] = p.CurrentIndex
	}

	summaries := make([]DeckSummary, 0, len(decks))
	for _, d := range decks {
		id, _ := d.ID.Value()
		summaries = append(summaries, summarize(d, id, indexes[id]))
	}
	return summaries, nil
}

func summarize(d domain.Deck, id int64, index int) DeckSummary {
	s := DeckSummary{Deck: d, ID: id, Index: index}
	if index > 0 && len(d.Cards) > 0 {
		s.ProgressLabel = fmt.Sprintf("%d / %d", index%len(d.Cards)+1, len(d.Cards))
	}
	for i, c := range d.Cards {
		if i == previewCards {
			s.More = len(d.Cards) - previewCards
			break
		}
		s.Preview = append(s.Preview, truncate(c.Question, previewRunes))
	}
	return s
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

// Progress returns every stored cursor, most recently studied first.
func (l *Library) Progress(ctx context.Context) ([]domain.DeckProgress, error) {
	progress, err := l.progress.GetAllProgress(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to load progress")
	}
	return study.SortByLastStudied(progress), nil
}

// RecentDeck returns the deck studied last, or nil when there is none.
func (l *Library) RecentDeck(ctx context.Context) (*domain.Deck, error) {
	progress, err := l.progress.GetAllProgress(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to load progress")
	}
	if len(progress) == 0 {
		return nil, nil
	}
	decks, err := l.decks.GetAllDecks(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list decks")
	}

	deck, ok := study.MostRecent(progress, decks)
	if !ok {
		return nil, nil
	}
	return &deck, nil
}

// StudyDeck starts a session on a stored deck, resuming where the learner left off.
func (l *Library) StudyDeck(ctx context.Context, id int64, shuffle bool) (*study.Session, error) {
	deck, err := l.decks.GetDeck(ctx, id)
	if err != nil {
		return nil, WrapError(err, "failed to load deck")
	}
	if deck == nil {
		return nil, ErrNotFound
	}

	s, err := study.NewSession(ctx, l.progress, *deck, study.Options{Shuffle: shuffle, Rand: l.sessionRand()})
	if err != nil {
		return nil, WrapError(err, "failed to start session")
	}
	// Opening a deck counts as studying it.
	if err := s.Touch(ctx); err != nil {
		return nil, WrapError(err, "failed to save progress")
	}
	slog.Debug("Session started", "deck", id, "cards", s.Len(), "index", s.Index())
	return s, nil
}

// StudyCustom merges the selected decks, in selection order, into one
// transient deck and starts a session on it. Its progress is never stored.
func (l *Library) StudyCustom(ctx context.Context, ids []int64, shuffle bool) (*study.Session, error) {
	if len(ids) == 0 {
		return nil, study.ErrNoDecksSelected
	}
	decks, err := l.decks.GetAllDecks(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list decks")
	}

	merged, err := study.Merge(ids, decks, false, nil)
	if err != nil {
		return nil, err
	}

	// Shuffling in the session keeps the selection order as the canonical one.
	s, err := study.NewSession(ctx, l.progress, merged, study.Options{Shuffle: shuffle, Rand: l.sessionRand()})
	if err != nil {
		return nil, err
	}
	slog.Debug("Custom session started", "decks", ids, "name", merged.Name, "cards", s.Len())
	return s, nil
}

// UpsertDeck stores cards under name. The first deck carrying that name is
// replaced when its content differs; otherwise a new deck is added. The
// returned flag reports whether anything was written.
func (l *Library) UpsertDeck(ctx context.Context, name string, cards []domain.Flashcard) (int64, bool, error) {
	if len(cards) == 0 {
		return 0, false, ErrNoCards
	}
	decks, err := l.decks.GetAllDecks(ctx)
	if err != nil {
		return 0, false, WrapError(err, "failed to list decks")
	}

	now := l.now()
	for _, d := range decks {
		if d.Name != name {
			continue
		}
		id, _ := d.ID.Value()
		if knol.Fingerprint(d.Cards) == knol.Fingerprint(cards) {
			return id, false, nil
		}
		d.Cards = cards
		d.UpdatedAt = now
		if err := l.decks.UpdateDeck(ctx, d); err != nil {
			return 0, false, WrapError(err, "failed to update deck")
		}
		slog.Info("Deck updated", "id", id, "name", name, "cards", len(cards))
		return id, true, nil
	}

	id, err := l.decks.AddDeck(ctx, name, cards, now, now)
	if err != nil {
		return 0, false, WrapError(err, "failed to save deck")
	}
	slog.Info("Deck added", "id", id, "name", name, "cards", len(cards))
	return id, true, nil
}

// sessionRand derives an independent source for one session; *rand.Rand is
// not safe for concurrent use.
func (l *Library) sessionRand() *rand.Rand {
	l.mu.Lock()
	defer l.mu.Unlock()
	return rand.New(rand.NewSource(l.rng.Int63()))
}
