package storage

// schema is applied statement by statement; every statement is idempotent.
// Timestamps are stored as Unix milliseconds.
var schema = []string{
	// The 'decks' table holds deck identity and metadata. Ids are never reused.
	`CREATE TABLE IF NOT EXISTS decks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_decks_name ON decks(name);`,
	`CREATE INDEX IF NOT EXISTS idx_decks_created_at ON decks(created_at);`,

	// The 'cards' table stores the ordered cards of each deck.
	`CREATE TABLE IF NOT EXISTS cards (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		deck_id INTEGER NOT NULL,
		position INTEGER NOT NULL,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		FOREIGN KEY (deck_id) REFERENCES decks(id) ON DELETE CASCADE,
		UNIQUE (deck_id, position)
	);`,

	// The 'progress' table has no foreign key to 'decks': a cursor
	// outlives its deck until someone resets it.
	`CREATE TABLE IF NOT EXISTS progress (
		deck_id INTEGER PRIMARY KEY,
		current_index INTEGER NOT NULL CHECK (current_index >= 0),
		last_studied INTEGER NOT NULL
	);`,
}
