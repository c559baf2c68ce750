package web

import (
	"net/http"
	"time"

	"github.com/conorfennell/learncards/internal/domain"
)

type apiDeck struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Cards     int       `json:"cards"`
	Index     int       `json:"index"`
	Progress  string    `json:"progress,omitempty"`
	Preview   []string  `json:"preview"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type apiError struct {
	Error string `json:"error"`
}

func (s *Server) handleAPIHealth(w http.ResponseWriter, r *http.Request) {
	if s.opts.Health != nil {
		if err := s.opts.Health(r.Context()); err != nil {
			loggerFrom(r.Context()).Error("Health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAPIDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := s.lib.Decks(r.Context())
	if err != nil {
		loggerFrom(r.Context()).Error("Error getting decks", "error", err)
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "failed to list decks"})
		return
	}

	out := make([]apiDeck, 0, len(decks))
	for _, d := range decks {
		out = append(out, apiDeck{
			ID:        d.ID,
			Name:      d.Deck.Name,
			Cards:     len(d.Deck.Cards),
			Index:     d.Index,
			Progress:  d.ProgressLabel,
			Preview:   d.Preview,
			CreatedAt: d.Deck.CreatedAt,
			UpdatedAt: d.Deck.UpdatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAPIProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := s.lib.Progress(r.Context())
	if err != nil {
		loggerFrom(r.Context()).Error("Error getting progress", "error", err)
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "failed to load progress"})
		return
	}
	if progress == nil {
		progress = []domain.DeckProgress{}
	}
	writeJSON(w, http.StatusOK, progress)
}

func (s *Server) handleAPIStudy(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessions.get(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, apiError{Error: "no active session"})
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}
