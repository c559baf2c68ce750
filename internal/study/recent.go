package study

import (
	"slices"

	"github.com/conorfennell/learncards/internal/domain"
)

// SortByLastStudied returns the entries ordered newest first. The input is not modified.
func SortByLastStudied(progress []domain.DeckProgress) []domain.DeckProgress {
	out := slices.Clone(progress)
	slices.SortStableFunc(out, func(a, b domain.DeckProgress) int {
		return b.LastStudied.Compare(a.LastStudied)
	})
	return out
}

// MostRecent returns the deck studied last.
//
// Only the newest progress entry is considered: when its deck has been
// deleted there is no recent deck, and older entries are not consulted.
func MostRecent(progress []domain.DeckProgress, decks []domain.Deck) (domain.Deck, bool) {
	if len(progress) == 0 {
		return domain.Deck{}, false
	}

	newest := progress[0]
	for _, p := range progress[1:] {
		if p.LastStudied.After(newest.LastStudied) {
			newest = p
		}
	}

	for _, d := range decks {
		if id, ok := d.ID.Value(); ok && id == newest.DeckID {
			return d, true
		}
	}
	return domain.Deck{}, false
}
