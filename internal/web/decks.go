package web

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/conorfennell/learncards/internal/library"
)

const maxUploadBytes = 10 << 20

func deckID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// handlePostDeck imports an uploaded CSV file as a new deck.
func (s *Server) handlePostDeck(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		s.renderManage(w, r, http.StatusBadRequest, manageNotice{Error: "Upload could not be read"})
		return
	}

	req := library.ImportRequest{Name: r.FormValue("name")}
	var body io.Reader
	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		body = file
		req.Filename = header.Filename
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		s.renderManage(w, r, http.StatusBadRequest, manageNotice{Error: "Upload could not be read"})
		return
	}

	id, err := s.lib.Import(r.Context(), req, body)
	if err != nil {
		if library.IsInputError(err) {
			s.renderManage(w, r, http.StatusBadRequest, manageNotice{Error: userMessage(err)})
			return
		}
		s.serverError(w, r, "Error importing deck", err)
		return
	}

	loggerFrom(r.Context()).Info("Deck uploaded", "id", id, "file", req.Filename)
	s.renderManage(w, r, http.StatusOK, manageNotice{Success: "Upload successful"})
}

// handleDeleteDeck deletes a deck and re-renders the deck list.
func (s *Server) handleDeleteDeck(w http.ResponseWriter, r *http.Request) {
	id, err := deckID(r)
	if err != nil {
		http.Error(w, "Invalid deck ID", http.StatusBadRequest)
		return
	}
	if err := s.lib.DeleteDeck(r.Context(), id); err != nil {
		s.serverError(w, r, "Error deleting deck", err)
		return
	}
	s.sessions.dropDeck(id)
	s.renderDeckList(w, r)
}

// handleResetDeck sends a deck back to its first card.
func (s *Server) handleResetDeck(w http.ResponseWriter, r *http.Request) {
	id, err := deckID(r)
	if err != nil {
		http.Error(w, "Invalid deck ID", http.StatusBadRequest)
		return
	}
	if err := s.lib.ResetProgress(r.Context(), id); err != nil {
		s.serverError(w, r, "Error resetting progress", err)
		return
	}
	s.sessions.dropDeck(id)

	if isFragment(r) {
		s.renderDeckList(w, r)
		return
	}
	http.Redirect(w, r, "/manage", http.StatusSeeOther)
}
