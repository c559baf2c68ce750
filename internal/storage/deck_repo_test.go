package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conorfennell/learncards/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func cards(pairs ...string) []domain.Flashcard {
	var out []domain.Flashcard
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.Flashcard{Question: pairs[i], Answer: pairs[i+1]})
	}
	return out
}

func TestDB_InitIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Init(ctx))
	require.NoError(t, db.Init(ctx))

	repo := NewDeckRepo(db)
	require.NoError(t, repo.Init(ctx))
}

func TestDeckRepo_ImplicitInit(t *testing.T) {
	db := openTestDB(t)
	repo := NewDeckRepo(db)

	// No explicit Init: every operation prepares the schema itself.
	decks, err := repo.GetAllDecks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, decks)
}

func TestDeckRepo_AddAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewDeckRepo(openTestDB(t))

	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	id, err := repo.AddDeck(ctx, "Spanish", cards("hola", "hello", "gato", "cat"), created, created)
	require.NoError(t, err)
	assert.Positive(t, id)

	deck, err := repo.GetDeck(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, deck)

	stored, ok := deck.ID.Value()
	assert.True(t, ok)
	assert.Equal(t, id, stored)
	assert.Equal(t, "Spanish", deck.Name)
	assert.True(t, deck.CreatedAt.Equal(created))
	assert.True(t, deck.UpdatedAt.Equal(created))
	require.Len(t, deck.Cards, 2)
	assert.Equal(t, "hola", deck.Cards[0].Question)
	assert.Equal(t, "cat", deck.Cards[1].Answer)
	assert.Positive(t, deck.Cards[0].ID)
}

func TestDeckRepo_GetMissing(t *testing.T) {
	repo := NewDeckRepo(openTestDB(t))

	deck, err := repo.GetDeck(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, deck)
}

func TestDeckRepo_IDsAreMonotonic(t *testing.T) {
	ctx := context.Background()
	repo := NewDeckRepo(openTestDB(t))
	now := time.Now()

	first, err := repo.AddDeck(ctx, "one", cards("q", "a"), now, now)
	require.NoError(t, err)
	require.NoError(t, repo.DeleteDeck(ctx, first))

	second, err := repo.AddDeck(ctx, "two", cards("q", "a"), now, now)
	require.NoError(t, err)
	assert.Greater(t, second, first, "deleted ids must not be reused")
}

func TestDeckRepo_GetAllDecksKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewDeckRepo(openTestDB(t))
	now := time.Now()

	_, err := repo.AddDeck(ctx, "B", cards("b1", "x", "b2", "y"), now, now)
	require.NoError(t, err)
	_, err = repo.AddDeck(ctx, "A", cards("a1", "z"), now, now)
	require.NoError(t, err)
	_, err = repo.AddDeck(ctx, "B", cards("dup", "name"), now, now)
	require.NoError(t, err, "names are not unique")

	decks, err := repo.GetAllDecks(ctx)
	require.NoError(t, err)
	require.Len(t, decks, 3)

	assert.Equal(t, "B", decks[0].Name)
	assert.Equal(t, []string{"b1", "b2"}, questions(decks[0].Cards))
	assert.Equal(t, []string{"a1"}, questions(decks[1].Cards))
	assert.Equal(t, []string{"dup"}, questions(decks[2].Cards))
}

func TestDeckRepo_UpdateDeck(t *testing.T) {
	ctx := context.Background()
	repo := NewDeckRepo(openTestDB(t))
	now := time.Now()

	id, err := repo.AddDeck(ctx, "old", cards("q1", "a1"), now, now)
	require.NoError(t, err)

	later := now.Add(time.Hour)
	err = repo.UpdateDeck(ctx, domain.Deck{
		ID:        domain.Persisted(id),
		Name:      "new",
		Cards:     cards("q2", "a2", "q3", "a3"),
		UpdatedAt: later,
	})
	require.NoError(t, err)

	deck, err := repo.GetDeck(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, deck)
	assert.Equal(t, "new", deck.Name)
	assert.Equal(t, []string{"q2", "q3"}, questions(deck.Cards))
	assert.Equal(t, later.UnixMilli(), deck.UpdatedAt.UnixMilli())
	assert.Equal(t, now.UnixMilli(), deck.CreatedAt.UnixMilli(), "created_at is not rewritten")
}

func TestDeckRepo_UpdateRejectsTransientDecks(t *testing.T) {
	ctx := context.Background()
	repo := NewDeckRepo(openTestDB(t))

	err := repo.UpdateDeck(ctx, domain.Deck{ID: domain.Merged(), Name: "A + B"})
	assert.ErrorIs(t, err, ErrNotPersisted)

	err = repo.UpdateDeck(ctx, domain.Deck{Name: "fresh"})
	assert.ErrorIs(t, err, ErrNotPersisted)

	err = repo.UpdateDeck(ctx, domain.Deck{ID: domain.Persisted(99), Name: "ghost"})
	assert.ErrorIs(t, err, ErrDeckNotFound)
}

func TestDeckRepo_DeleteDeck(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewDeckRepo(db)
	progress := NewProgressRepo(db)
	now := time.Now()

	id, err := repo.AddDeck(ctx, "gone", cards("q", "a"), now, now)
	require.NoError(t, err)
	require.NoError(t, progress.SetProgress(ctx, id, 0))

	require.NoError(t, repo.DeleteDeck(ctx, id))
	require.NoError(t, repo.DeleteDeck(ctx, id), "deleting twice is not an error")

	deck, err := repo.GetDeck(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, deck)

	all, err := progress.GetAllProgress(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "progress survives deck deletion until reset")
}

func TestDeckRepo_ClosedDatabase(t *testing.T) {
	db := openTestDB(t)
	repo := NewDeckRepo(db)
	require.NoError(t, db.Init(context.Background()))
	require.NoError(t, db.Close())

	_, err := repo.GetAllDecks(context.Background())
	assert.Error(t, err)
}

func questions(cs []domain.Flashcard) []string {
	var out []string
	for _, c := range cs {
		out = append(out, c.Question)
	}
	return out
}
