package study

import (
	"math/rand"
	"strings"
	"time"

	"github.com/conorfennell/learncards/internal/domain"
)

// MergedNameSeparator joins the names of merged decks.
const MergedNameSeparator = " + "

// Merge builds the transient deck for a custom study run.
//
// Cards are concatenated in the order the ids were selected, keeping each
// deck's own order. Ids that are not in decks, and repeats, are skipped. The
// result carries the Merged identity and is never meant to be stored. With
// shuffle set the concatenation is permuted once using rng.
func Merge(ids []int64, decks []domain.Deck, shuffle bool, rng *rand.Rand) (domain.Deck, error) {
	byID := make(map[int64]domain.Deck, len(decks))
	for _, d := range decks {
		if id, ok := d.ID.Value(); ok {
			byID[id] = d
		}
	}

	var (
		names []string
		cards []domain.Flashcard
		seen  = make(map[int64]bool, len(ids))
	)
	for _, id := range ids {
		d, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		names = append(names, d.Name)
		cards = append(cards, d.Cards...)
	}
	if len(names) == 0 {
		return domain.Deck{}, ErrNoDecksSelected
	}

	if shuffle {
		if rng == nil {
			rng = NewRand(0)
		}
		cards = Shuffle(cards, rng)
	}

	now := time.Now()
	return domain.Deck{
		ID:        domain.Merged(),
		Name:      strings.Join(names, MergedNameSeparator),
		Cards:     cards,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
