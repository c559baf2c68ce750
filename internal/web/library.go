package web

import (
	"context"
	"io"

	"github.com/conorfennell/learncards/internal/domain"
	"github.com/conorfennell/learncards/internal/library"
	"github.com/conorfennell/learncards/internal/study"
)

// Library is the set of use cases the web UI drives.
type Library interface {
	Import(ctx context.Context, req library.ImportRequest, r io.Reader) (int64, error)
	DeleteDeck(ctx context.Context, id int64) error
	ResetProgress(ctx context.Context, id int64) error
	Decks(ctx context.Context) ([]library.DeckSummary, error)
	Progress(ctx context.Context) ([]domain.DeckProgress, error)
	RecentDeck(ctx context.Context) (*domain.Deck, error)
	StudyDeck(ctx context.Context, id int64, shuffle bool) (*study.Session, error)
	StudyCustom(ctx context.Context, ids []int64, shuffle bool) (*study.Session, error)
	UpsertDeck(ctx context.Context, name string, cards []domain.Flashcard) (int64, bool, error)
}

var _ Library = (*library.Library)(nil)
