package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/conorfennell/learncards/internal/study"
)

const (
	sessionCookie = "learncards_session"
	maxSessions   = 256
)

type sessionEntry struct {
	session  *study.Session
	lastUsed time.Time
}

// sessionStore keeps the study sessions of all browsers, keyed by a random
// token stored in a cookie. When full, the least recently used one is dropped.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	limit    int
	now      func() time.Time
}

func newSessionStore(limit int) *sessionStore {
	if limit <= 0 {
		limit = maxSessions
	}
	return &sessionStore{
		sessions: make(map[string]*sessionEntry),
		limit:    limit,
		now:      time.Now,
	}
}

// start stores s under the token of the request, minting a new token when the
// request has none, and sets the cookie on w.
func (st *sessionStore) start(w http.ResponseWriter, r *http.Request, s *study.Session) string {
	token := ""
	if c, err := r.Cookie(sessionCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			token = c.Value
		}
	}
	if token == "" {
		token = uuid.NewString()
	}

	st.mu.Lock()
	if _, ok := st.sessions[token]; !ok && len(st.sessions) >= st.limit {
		st.evictLocked()
	}
	st.sessions[token] = &sessionEntry{session: s, lastUsed: st.now()}
	st.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return token
}

// get returns the session of the request, if any.
func (st *sessionStore) get(r *http.Request) (*study.Session, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil, false
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	e, ok := st.sessions[c.Value]
	if !ok {
		return nil, false
	}
	e.lastUsed = st.now()
	return e.session, true
}

// dropDeck ends every session studying the given stored deck.
func (st *sessionStore) dropDeck(id int64) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for token, e := range st.sessions {
		deckID, _ := e.session.Deck()
		if v, ok := deckID.Value(); ok && v == id {
			delete(st.sessions, token)
		}
	}
}

func (st *sessionStore) len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *sessionStore) evictLocked() {
	var (
		oldest string
		at     time.Time
	)
	for token, e := range st.sessions {
		if oldest == "" || e.lastUsed.Before(at) {
			oldest, at = token, e.lastUsed
		}
	}
	delete(st.sessions, oldest)
}
