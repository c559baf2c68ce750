package study

import (
	"errors"
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/conorfennell/learncards/internal/domain"
)

func TestMergeFollowsSelectionOrder(t *testing.T) {
	a := makeDeck(1, "A", "a1")
	b := makeDeck(2, "B", "b1", "b2")

	merged, err := Merge([]int64{2, 1}, []domain.Deck{a, b}, false, nil)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	if got, want := questionsOf(merged.Cards), []string{"b1", "b2", "a1"}; !reflect.DeepEqual(got, want) {
		t.Errorf("cards = %v, want %v", got, want)
	}
	if merged.Name != "B + A" {
		t.Errorf("Name = %q, want %q", merged.Name, "B + A")
	}
	if !merged.ID.IsMerged() || merged.ID.IsPersisted() {
		t.Errorf("ID = %v, want merged", merged.ID)
	}
}

func TestMergeSkipsUnknownAndRepeatedIDs(t *testing.T) {
	decks := []domain.Deck{makeDeck(1, "A", "a1"), makeDeck(2, "B", "b1")}

	merged, err := Merge([]int64{1, 99, 1, 2}, decks, false, nil)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if got, want := questionsOf(merged.Cards), []string{"a1", "b1"}; !reflect.DeepEqual(got, want) {
		t.Errorf("cards = %v, want %v", got, want)
	}
	if merged.Name != "A + B" {
		t.Errorf("Name = %q", merged.Name)
	}
}

func TestMergeNothingSelected(t *testing.T) {
	decks := []domain.Deck{makeDeck(1, "A", "a1")}

	tests := []struct {
		name string
		ids  []int64
	}{
		{"empty selection", nil},
		{"only unknown ids", []int64{5, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Merge(tt.ids, decks, false, nil)
			if !errors.Is(err, ErrNoDecksSelected) {
				t.Errorf("err = %v, want ErrNoDecksSelected", err)
			}
		})
	}
}

func TestMergeShuffled(t *testing.T) {
	decks := []domain.Deck{makeDeck(1, "A", "a1", "a2", "a3"), makeDeck(2, "B", "b1", "b2", "b3")}

	merged, err := Merge([]int64{1, 2}, decks, true, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	got := questionsOf(merged.Cards)
	sort.Strings(got)
	if want := []string{"a1", "a2", "a3", "b1", "b2", "b3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("shuffled merge is not a permutation: %v", got)
	}
	if got := questionsOf(decks[0].Cards); !reflect.DeepEqual(got, []string{"a1", "a2", "a3"}) {
		t.Errorf("source deck modified: %v", got)
	}
}
