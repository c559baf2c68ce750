package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/conorfennell/learncards/internal/domain"
)

// ProgressRepo is the SQLite ProgressStore.
type ProgressRepo struct {
	db  *DB
	now func() time.Time
}

// NewProgressRepo creates a new ProgressRepo stamping records with the wall clock.
func NewProgressRepo(db *DB) *ProgressRepo {
	return &ProgressRepo{db: db, now: time.Now}
}

// SetProgress upserts the cursor of a deck.
func (r *ProgressRepo) SetProgress(ctx context.Context, deckID int64, index int) error {
	if deckID <= 0 {
		return fmt.Errorf("failed to set progress for deck %d: %w", deckID, ErrNotPersisted)
	}
	if index < 0 {
		return fmt.Errorf("failed to set progress for deck %d: %w", deckID, ErrInvalidIndex)
	}
	if err := r.db.Init(ctx); err != nil {
		return err
	}

	_, err := r.db.conn.ExecContext(ctx, `
		INSERT INTO progress (deck_id, current_index, last_studied)
		VALUES (?, ?, ?)
		ON CONFLICT(deck_id) DO UPDATE SET
			current_index = excluded.current_index,
			last_studied = excluded.last_studied
	`, deckID, index, toMillis(r.now()))
	if err != nil {
		return fmt.Errorf("failed to set progress for deck %d: %w", deckID, err)
	}
	return nil
}

// GetProgress returns the stored index for a deck, or 0 if there is none.
func (r *ProgressRepo) GetProgress(ctx context.Context, deckID int64) (int, error) {
	if err := r.db.Init(ctx); err != nil {
		return 0, err
	}

	var index int
	err := r.db.conn.QueryRowContext(ctx, `
		SELECT current_index FROM progress WHERE deck_id = ?
	`, deckID).Scan(&index)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil // Never studied
		}
		return 0, fmt.Errorf("failed to get progress for deck %d: %w", deckID, err)
	}
	return index, nil
}

// ResetProgress deletes the cursor of a deck.
func (r *ProgressRepo) ResetProgress(ctx context.Context, deckID int64) error {
	if err := r.db.Init(ctx); err != nil {
		return err
	}

	if _, err := r.db.conn.ExecContext(ctx, `DELETE FROM progress WHERE deck_id = ?`, deckID); err != nil {
		return fmt.Errorf("failed to reset progress for deck %d: %w", deckID, err)
	}
	return nil
}

// GetAllProgress returns every cursor, most recently studied first.
func (r *ProgressRepo) GetAllProgress(ctx context.Context) ([]domain.DeckProgress, error) {
	if err := r.db.Init(ctx); err != nil {
		return nil, err
	}

	rows, err := r.db.conn.QueryContext(ctx, `
		SELECT deck_id, current_index, last_studied
		FROM progress ORDER BY last_studied DESC, deck_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get all progress: %w", err)
	}
	defer rows.Close()

	var all []domain.DeckProgress
	for rows.Next() {
		var p domain.DeckProgress
		var lastStudied int64
		if err := rows.Scan(&p.DeckID, &p.CurrentIndex, &lastStudied); err != nil {
			return nil, fmt.Errorf("failed to scan progress row: %w", err)
		}
		p.LastStudied = fromMillis(lastStudied)
		all = append(all, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate progress: %w", err)
	}
	return all, nil
}
