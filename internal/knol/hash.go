package knol

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"hash"
	"strings"

	"github.com/conorfennell/learncards/internal/domain"
)

// normalize trims whitespace and normalizes line endings. Case is kept:
// "Paris" and "paris" are different answers on a flashcard.
func normalize(part string) string {
	return strings.TrimSpace(strings.ReplaceAll(part, "\r\n", "\n"))
}

// writeField writes a length-prefixed field, so no field content can be
// mistaken for a boundary.
func writeField(h hash.Hash, field string) {
	var n [binary.MaxVarintLen64]byte
	h.Write(n[:binary.PutUvarint(n[:], uint64(len(field)))])
	h.Write([]byte(field))
}

// Fingerprint hashes an ordered card list. Two decks share a fingerprint
// only when they hold the same cards in the same order. Card ids are ignored.
func Fingerprint(cards []domain.Flashcard) string {
	h := sha256.New()
	var n [binary.MaxVarintLen64]byte
	h.Write(n[:binary.PutUvarint(n[:], uint64(len(cards)))])
	for _, card := range cards {
		writeField(h, normalize(card.Question))
		writeField(h, normalize(card.Answer))
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
