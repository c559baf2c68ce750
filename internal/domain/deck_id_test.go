package domain

import (
	"encoding/json"
	"testing"
)

func TestDeckIDKinds(t *testing.T) {
	tests := []struct {
		name      string
		id        DeckID
		persisted bool
		merged    bool
		wire      int64
		str       string
	}{
		{"zero value", DeckID{}, false, false, 0, "unpersisted"},
		{"unpersisted", Unpersisted(), false, false, 0, "unpersisted"},
		{"persisted", Persisted(7), true, false, 7, "7"},
		{"merged", Merged(), false, true, -1, "merged"},
		{"persisted rejects zero", Persisted(0), false, false, 0, "unpersisted"},
		{"persisted rejects sentinel", Persisted(-1), false, false, 0, "unpersisted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.IsPersisted(); got != tt.persisted {
				t.Errorf("IsPersisted() = %v, want %v", got, tt.persisted)
			}
			if got := tt.id.IsMerged(); got != tt.merged {
				t.Errorf("IsMerged() = %v, want %v", got, tt.merged)
			}
			if got := tt.id.Int64(); got != tt.wire {
				t.Errorf("Int64() = %d, want %d", got, tt.wire)
			}
			if got := tt.id.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestDeckIDFrom(t *testing.T) {
	if !DeckIDFrom(-1).IsMerged() {
		t.Error("DeckIDFrom(-1) should be merged")
	}
	if id, ok := DeckIDFrom(12).Value(); !ok || id != 12 {
		t.Errorf("DeckIDFrom(12).Value() = %d, %v", id, ok)
	}
	if DeckIDFrom(0).IsPersisted() {
		t.Error("DeckIDFrom(0) should be unpersisted")
	}
}

func TestDeckIDJSON(t *testing.T) {
	deck := Deck{ID: Merged(), Name: "A + B"}
	data, err := json.Marshal(deck)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	var back Deck
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if !back.ID.IsMerged() {
		t.Errorf("round trip lost merged identity, got %v", back.ID)
	}

	var id DeckID
	if err := json.Unmarshal([]byte("null"), &id); err != nil {
		t.Fatalf("json.Unmarshal(null): %v", err)
	}
	if id.IsPersisted() || id.IsMerged() {
		t.Errorf("null should decode as unpersisted, got %v", id)
	}
	if err := json.Unmarshal([]byte(`"x"`), &id); err == nil {
		t.Error("expected error for string deck id")
	}
}
