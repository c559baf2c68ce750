package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/conorfennell/learncards/internal/domain"
)

// DeckRepo is the SQLite DeckStore.
type DeckRepo struct {
	db *DB
}

// NewDeckRepo creates a new DeckRepo.
func NewDeckRepo(db *DB) *DeckRepo {
	return &DeckRepo{db: db}
}

// Init applies the schema if needed.
func (r *DeckRepo) Init(ctx context.Context) error {
	return r.db.Init(ctx)
}

// AddDeck inserts a deck and its cards in one transaction and returns the new deck id.
func (r *DeckRepo) AddDeck(ctx context.Context, name string, cards []domain.Flashcard, createdAt, updatedAt time.Time) (int64, error) {
	if err := r.db.Init(ctx); err != nil {
		return 0, err
	}

	var id int64
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO decks (name, created_at, updated_at)
			VALUES (?, ?, ?)
		`, name, toMillis(createdAt), toMillis(updatedAt))
		if err != nil {
			return fmt.Errorf("failed to insert deck %q: %w", name, err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert ID for deck %q: %w", name, err)
		}
		return insertCards(ctx, tx, id, cards)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetAllDecks retrieves all stored decks with their cards, ordered by id.
func (r *DeckRepo) GetAllDecks(ctx context.Context) ([]domain.Deck, error) {
	if err := r.db.Init(ctx); err != nil {
		return nil, err
	}

	rows, err := r.db.conn.QueryContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM decks ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get all decks: %w", err)
	}

	var decks []domain.Deck
	index := make(map[int64]int)
	for rows.Next() {
		deck, id, err := scanDeck(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		index[id] = len(decks)
		decks = append(decks, deck)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to iterate decks: %w", err)
	}
	rows.Close()

	cardRows, err := r.db.conn.QueryContext(ctx, `
		SELECT deck_id, id, question, answer
		FROM cards ORDER BY deck_id, position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get cards: %w", err)
	}
	defer cardRows.Close()

	for cardRows.Next() {
		var deckID int64
		var card domain.Flashcard
		if err := cardRows.Scan(&deckID, &card.ID, &card.Question, &card.Answer); err != nil {
			return nil, fmt.Errorf("failed to scan card row: %w", err)
		}
		if i, ok := index[deckID]; ok {
			decks[i].Cards = append(decks[i].Cards, card)
		}
	}
	if err := cardRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cards: %w", err)
	}

	return decks, nil
}

// GetDeck retrieves a deck by id. It returns nil, nil when the deck does not exist.
func (r *DeckRepo) GetDeck(ctx context.Context, id int64) (*domain.Deck, error) {
	if err := r.db.Init(ctx); err != nil {
		return nil, err
	}

	row := r.db.conn.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM decks WHERE id = ?
	`, id)
	deck, _, err := scanDeck(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Deck not found
		}
		return nil, err
	}

	rows, err := r.db.conn.QueryContext(ctx, `
		SELECT id, question, answer
		FROM cards WHERE deck_id = ? ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get cards for deck %d: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var card domain.Flashcard
		if err := rows.Scan(&card.ID, &card.Question, &card.Answer); err != nil {
			return nil, fmt.Errorf("failed to scan card row for deck %d: %w", id, err)
		}
		deck.Cards = append(deck.Cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cards for deck %d: %w", id, err)
	}

	return &deck, nil
}

// UpdateDeck overwrites the name, cards and updated_at of an existing deck.
// Card ids are reassigned.
func (r *DeckRepo) UpdateDeck(ctx context.Context, deck domain.Deck) error {
	id, ok := deck.ID.Value()
	if !ok {
		return fmt.Errorf("failed to update deck %q: %w", deck.Name, ErrNotPersisted)
	}
	if err := r.db.Init(ctx); err != nil {
		return err
	}

	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE decks
			SET name = ?, updated_at = ?
			WHERE id = ?
		`, deck.Name, toMillis(deck.UpdatedAt), id)
		if err != nil {
			return fmt.Errorf("failed to update deck %d: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to update deck %d: %w", id, err)
		}
		if n == 0 {
			return fmt.Errorf("failed to update deck %d: %w", id, ErrDeckNotFound)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM cards WHERE deck_id = ?`, id); err != nil {
			return fmt.Errorf("failed to clear cards for deck %d: %w", id, err)
		}
		return insertCards(ctx, tx, id, deck.Cards)
	})
}

// DeleteDeck removes a deck and its cards. Missing ids are not an error.
func (r *DeckRepo) DeleteDeck(ctx context.Context, id int64) error {
	if err := r.db.Init(ctx); err != nil {
		return err
	}

	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM cards WHERE deck_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete cards for deck %d: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete deck %d: %w", id, err)
		}
		return nil
	})
}

func insertCards(ctx context.Context, tx *sql.Tx, deckID int64, cards []domain.Flashcard) error {
	if len(cards) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cards (deck_id, position, question, answer)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare card insert: %w", err)
	}
	defer stmt.Close()

	for i, card := range cards {
		if _, err := stmt.ExecContext(ctx, deckID, i, card.Question, card.Answer); err != nil {
			return fmt.Errorf("failed to insert card %d of deck %d: %w", i, deckID, err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeck(row rowScanner) (domain.Deck, int64, error) {
	var (
		id                   int64
		deck                 domain.Deck
		createdAt, updatedAt int64
	)
	if err := row.Scan(&id, &deck.Name, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Deck{}, 0, err
		}
		return domain.Deck{}, 0, fmt.Errorf("failed to scan deck row: %w", err)
	}
	deck.ID = domain.Persisted(id)
	deck.CreatedAt = fromMillis(createdAt)
	deck.UpdatedAt = fromMillis(updatedAt)
	return deck, id, nil
}
