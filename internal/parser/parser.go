package parser

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/conorfennell/learncards/internal/domain"
)

const (
	separator = ','
	quote     = '"'
)

// ParseFile reads a CSV file from the given path and extracts all cards.
func ParseFile(path string) ([]domain.Flashcard, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

// ParseString extracts all cards from CSV text.
func ParseString(text string) []domain.Flashcard {
	// A strings.Reader never fails.
	cards, _ := Parse(strings.NewReader(text))
	return cards
}

// Parse reads question,answer rows from r.
//
// Blank lines are skipped, rows with fewer than two fields are dropped and
// fields past the second are ignored. Rows have no length limit. Malformed
// quoting is never an error; only read errors from r are returned.
func Parse(r io.Reader) ([]domain.Flashcard, error) {
	reader := bufio.NewReader(r)

	var cards []domain.Flashcard
	for {
		raw, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}

		if line := strings.TrimSpace(raw); line != "" {
			if card, ok := parseRow(line); ok {
				cards = append(cards, card)
			}
		}

		if err == io.EOF {
			return cards, nil
		}
	}
}

func parseRow(line string) (domain.Flashcard, bool) {
	fields := SplitLine(line)
	if len(fields) < 2 {
		return domain.Flashcard{}, false
	}
	return domain.Flashcard{
		Question: strings.TrimSpace(fields[0]),
		Answer:   strings.TrimSpace(fields[1]),
	}, true
}

// SplitLine splits a single row into its fields.
//
// Commas inside double quotes are literal, a doubled quote inside a quoted
// field is an escaped quote, and any other quote toggles the quoted state.
// Every field is trimmed and then loses one surrounding pair of quotes if it
// still has one.
func SplitLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == quote:
			if inQuotes && i+1 < len(line) && line[i+1] == quote {
				current.WriteByte(quote)
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == separator && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	fields = append(fields, current.String())

	for i, field := range fields {
		fields[i] = unwrap(strings.TrimSpace(field))
	}
	return fields
}

// unwrap strips one matching pair of outer quotes. A field made of a single
// quote character becomes empty.
func unwrap(field string) string {
	if !strings.HasPrefix(field, `"`) || !strings.HasSuffix(field, `"`) {
		return field
	}
	if len(field) < 2 {
		return ""
	}
	return field[1 : len(field)-1]
}
