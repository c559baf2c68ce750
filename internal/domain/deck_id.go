package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// MergedDeckValue is the wire value of the transient deck built from several decks.
const MergedDeckValue int64 = -1

type deckIDKind uint8

const (
	unpersisted deckIDKind = iota
	persisted
	merged
)

// DeckID identifies a deck. It is exactly one of Unpersisted, Persisted(id)
// or Merged; the zero value is Unpersisted.
type DeckID struct {
	kind deckIDKind
	id   int64
}

// Compile-time interface checks.
var (
	_ fmt.Stringer     = DeckID{}
	_ json.Marshaler   = DeckID{}
	_ json.Unmarshaler = (*DeckID)(nil)
)

// Unpersisted is the identity of a deck that has not been written yet.
func Unpersisted() DeckID { return DeckID{} }

// Merged is the identity of the transient aggregation deck. It is never stored.
func Merged() DeckID { return DeckID{kind: merged, id: MergedDeckValue} }

// Persisted returns the identity of a stored deck. Store ids are positive;
// any other value yields Unpersisted.
func Persisted(id int64) DeckID {
	if id <= 0 {
		return DeckID{}
	}
	return DeckID{kind: persisted, id: id}
}

// DeckIDFrom maps a wire integer back to a DeckID: -1 is Merged, positive
// values are Persisted and everything else is Unpersisted.
func DeckIDFrom(v int64) DeckID {
	if v == MergedDeckValue {
		return Merged()
	}
	return Persisted(v)
}

// Value returns the store id and whether the deck is persisted.
func (d DeckID) Value() (int64, bool) {
	return d.id, d.kind == persisted
}

func (d DeckID) IsPersisted() bool { return d.kind == persisted }
func (d DeckID) IsMerged() bool    { return d.kind == merged }

// Int64 returns the wire form: 0, the store id, or -1.
func (d DeckID) Int64() int64 {
	return d.id
}

func (d DeckID) String() string {
	switch d.kind {
	case persisted:
		return strconv.FormatInt(d.id, 10)
	case merged:
		return "merged"
	default:
		return "unpersisted"
	}
}

// MarshalJSON encodes the wire integer, or null for an unpersisted deck.
func (d DeckID) MarshalJSON() ([]byte, error) {
	if d.kind == unpersisted {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(d.id, 10)), nil
}

// UnmarshalJSON accepts null or an integer.
func (d *DeckID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Unpersisted()
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("domain: invalid deck id: %s", data)
	}
	*d = DeckIDFrom(v)
	return nil
}
