package web

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/conorfennell/learncards/internal/library"
	"github.com/conorfennell/learncards/internal/study"
)

func formBool(r *http.Request, key string) bool {
	v := r.FormValue(key)
	if v == "on" {
		return true
	}
	b, _ := strconv.ParseBool(v)
	return b
}

func formFloat(r *http.Request, key string) (float64, error) {
	v := r.FormValue(key)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s is not a finite number", key)
	}
	return f, nil
}

func (s *Server) handleStudyDeck(w http.ResponseWriter, r *http.Request) {
	id, err := deckID(r)
	if err != nil {
		http.Error(w, "Invalid deck ID", http.StatusBadRequest)
		return
	}

	sess, err := s.lib.StudyDeck(r.Context(), id, formBool(r, "shuffle"))
	if err != nil {
		if errors.Is(err, library.ErrNotFound) {
			http.Error(w, userMessage(err), http.StatusNotFound)
			return
		}
		if isUserError(err) {
			s.renderHome(w, r, http.StatusBadRequest, userMessage(err))
			return
		}
		s.serverError(w, r, "Error starting session", err)
		return
	}
	s.startSession(w, r, sess)
}

// handleStudyCustom merges the checked decks, in the order they were
// checked, into one session.
func (s *Server) handleStudyCustom(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	var ids []int64
	for _, v := range r.Form["deck"] {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(w, "Invalid deck ID", http.StatusBadRequest)
			return
		}
		ids = append(ids, id)
	}

	sess, err := s.lib.StudyCustom(r.Context(), ids, formBool(r, "shuffle"))
	if err != nil {
		if isUserError(err) {
			s.renderHome(w, r, http.StatusBadRequest, userMessage(err))
			return
		}
		s.serverError(w, r, "Error starting custom session", err)
		return
	}
	s.startSession(w, r, sess)
}

func (s *Server) startSession(w http.ResponseWriter, r *http.Request, sess *study.Session) {
	s.sessions.start(w, r, sess)
	id, name := sess.Deck()
	loggerFrom(r.Context()).Info("Study session started", "deck", id.String(), "name", name, "cards", sess.Len())

	if isFragment(r) {
		w.Header().Set("HX-Redirect", "/study")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/study", http.StatusSeeOther)
}

// withSession runs fn against the caller's session and answers with the
// updated stack.
func (s *Server) withSession(w http.ResponseWriter, r *http.Request, fn func(*study.Session) error) {
	sess, ok := s.sessions.get(r)
	if !ok {
		if isFragment(r) {
			w.Header().Set("HX-Redirect", "/")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := fn(sess); err != nil {
		s.serverError(w, r, "Error updating session", err)
		return
	}

	if isFragment(r) {
		s.render(w, r, http.StatusOK, "stack", s.studyView(sess))
		return
	}
	http.Redirect(w, r, "/study", http.StatusSeeOther)
}

func (s *Server) handleFlip(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *study.Session) error {
		sess.Flip()
		return nil
	})
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *study.Session) error {
		_, err := sess.Advance(r.Context())
		return err
	})
}

// handleRelease receives the end of a drag. The distance threshold scales
// with the width the card was rendered at, which must be positive.
func (s *Server) handleRelease(w http.ResponseWriter, r *http.Request) {
	distance, err1 := formFloat(r, "distance")
	velocity, err2 := formFloat(r, "velocity")
	width, err3 := formFloat(r, "width")
	if err := errors.Join(err1, err2, err3); err != nil || width <= 0 {
		http.Error(w, "Invalid gesture", http.StatusBadRequest)
		return
	}

	threshold := study.NewThreshold(width, s.opts.SwipeRatio, s.opts.SwipeSpeed)
	s.withSession(w, r, func(sess *study.Session) error {
		moved, err := sess.Release(r.Context(), study.Gesture{Distance: distance, Velocity: velocity}, threshold)
		if moved {
			loggerFrom(r.Context()).Debug("Swipe advanced card", "distance", distance, "velocity", velocity)
		}
		return err
	})
}

func (s *Server) handleShuffle(w http.ResponseWriter, r *http.Request) {
	on := formBool(r, "on")
	s.withSession(w, r, func(sess *study.Session) error {
		sess.SetShuffled(on)
		return nil
	})
}
