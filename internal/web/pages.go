package web

import (
	"errors"
	"net/http"

	"github.com/conorfennell/learncards/internal/library"
	"github.com/conorfennell/learncards/internal/study"
)

// stackDepth is the number of cards drawn under the current one.
const stackDepth = 3

type homeView struct {
	Decks   []library.DeckSummary
	Recent  *library.DeckSummary
	Shuffle bool
	Error   string
}

type manageNotice struct {
	Error   string
	Success string
}

type manageView struct {
	Decks []library.DeckSummary
	manageNotice
}

type stackCard struct {
	Question    string
	Answer      string
	Depth       int
	Interactive bool
}

type studyView struct {
	study.Snapshot
	Position int
	Stack    []stackCard
	Ratio    float64
	Speed    float64
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderHome(w, r, http.StatusOK, "")
}

func (s *Server) renderHome(w http.ResponseWriter, r *http.Request, status int, message string) {
	ctx := r.Context()
	decks, err := s.lib.Decks(ctx)
	if err != nil {
		s.serverError(w, r, "Error getting decks", err)
		return
	}
	recent, err := s.lib.RecentDeck(ctx)
	if err != nil {
		s.serverError(w, r, "Error getting recent deck", err)
		return
	}

	view := homeView{Decks: decks, Shuffle: s.opts.Shuffle, Error: message}
	if recent != nil {
		id, _ := recent.ID.Value()
		for i := range decks {
			if decks[i].ID == id {
				view.Recent = &decks[i]
				break
			}
		}
	}
	s.render(w, r, status, "home", view)
}

func (s *Server) handleManage(w http.ResponseWriter, r *http.Request) {
	s.renderManage(w, r, http.StatusOK, manageNotice{})
}

func (s *Server) renderManage(w http.ResponseWriter, r *http.Request, status int, notice manageNotice) {
	decks, err := s.lib.Decks(r.Context())
	if err != nil {
		s.serverError(w, r, "Error getting decks", err)
		return
	}
	s.render(w, r, status, "manage", manageView{Decks: decks, manageNotice: notice})
}

func (s *Server) renderDeckList(w http.ResponseWriter, r *http.Request) {
	decks, err := s.lib.Decks(r.Context())
	if err != nil {
		s.serverError(w, r, "Error getting decks", err)
		return
	}
	s.render(w, r, http.StatusOK, "deck_list", manageView{Decks: decks})
}

// handleStudy renders the card stack of the current session.
func (s *Server) handleStudy(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessions.get(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.render(w, r, http.StatusOK, "study", s.studyView(sess))
}

func (s *Server) studyView(sess *study.Session) studyView {
	snap := sess.Snapshot()
	cards := sess.Cards()

	view := studyView{
		Snapshot: snap,
		Position: snap.Index + 1,
		Ratio:    s.opts.SwipeRatio,
		Speed:    s.opts.SwipeSpeed,
	}
	for depth := 0; depth < stackDepth && depth < len(cards); depth++ {
		i := (snap.Index + depth) % len(cards)
		view.Stack = append(view.Stack, stackCard{
			Question:    cards[i].Question,
			Answer:      cards[i].Answer,
			Depth:       depth,
			Interactive: sess.Interactive(i) && depth == 0,
		})
	}
	return view
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	loggerFrom(r.Context()).Error(msg, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// userMessage turns an input error into text for the page.
func userMessage(err error) string {
	var ve *library.ValidationError
	switch {
	case errors.As(err, &ve):
		return "Deck " + ve.Field + ": " + ve.Message
	case errors.Is(err, library.ErrNoFile):
		return "Please choose a file"
	case errors.Is(err, library.ErrNoCards):
		return "No valid cards found in CSV file"
	case errors.Is(err, study.ErrNoDecksSelected):
		return "Please select at least one deck"
	case errors.Is(err, study.ErrEmptyDeck):
		return "This deck has no cards"
	case errors.Is(err, library.ErrNotFound):
		return "Deck not found"
	}
	return "Something went wrong"
}

func isUserError(err error) bool {
	return library.IsInputError(err) ||
		errors.Is(err, study.ErrNoDecksSelected) ||
		errors.Is(err, study.ErrEmptyDeck)
}
