package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conorfennell/learncards/internal/domain"
	"github.com/conorfennell/learncards/internal/study"
)

func newSession(t *testing.T, id int64) *study.Session {
	t.Helper()
	deck := domain.Deck{ID: domain.Persisted(id), Cards: []domain.Flashcard{{Question: "q", Answer: "a"}}}
	s, err := study.NewSession(context.Background(), nil, deck, study.Options{})
	require.NoError(t, err)
	return s
}

func requestWith(token string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		r.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	}
	return r
}

func TestSessionStore_StartAndGet(t *testing.T) {
	st := newSessionStore(4)
	s := newSession(t, 1)

	w := httptest.NewRecorder()
	token := st.start(w, requestWith(""), s)
	require.NotEmpty(t, token)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, token, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	got, ok := st.get(requestWith(token))
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = st.get(requestWith("unknown"))
	assert.False(t, ok)
	_, ok = st.get(requestWith(""))
	assert.False(t, ok)
}

func TestSessionStore_ReusesValidToken(t *testing.T) {
	st := newSessionStore(4)
	first := st.start(httptest.NewRecorder(), requestWith(""), newSession(t, 1))

	second := st.start(httptest.NewRecorder(), requestWith(first), newSession(t, 2))
	assert.Equal(t, first, second)
	assert.Equal(t, 1, st.len())

	forged := st.start(httptest.NewRecorder(), requestWith("not-a-uuid"), newSession(t, 3))
	assert.NotEqual(t, "not-a-uuid", forged)
}

func TestSessionStore_EvictsLeastRecentlyUsed(t *testing.T) {
	st := newSessionStore(2)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	st.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	a := st.start(httptest.NewRecorder(), requestWith(""), newSession(t, 1))
	b := st.start(httptest.NewRecorder(), requestWith(""), newSession(t, 2))
	_, _ = st.get(requestWith(a)) // a is now fresher than b

	c := st.start(httptest.NewRecorder(), requestWith(""), newSession(t, 3))

	assert.Equal(t, 2, st.len())
	_, ok := st.get(requestWith(b))
	assert.False(t, ok, "b was least recently used")
	_, ok = st.get(requestWith(a))
	assert.True(t, ok)
	_, ok = st.get(requestWith(c))
	assert.True(t, ok)
}

func TestSessionStore_DropDeck(t *testing.T) {
	st := newSessionStore(4)
	a := st.start(httptest.NewRecorder(), requestWith(""), newSession(t, 1))
	b := st.start(httptest.NewRecorder(), requestWith(""), newSession(t, 2))

	st.dropDeck(1)

	_, ok := st.get(requestWith(a))
	assert.False(t, ok)
	_, ok = st.get(requestWith(b))
	assert.True(t, ok)
}

func TestLoggerFromDefault(t *testing.T) {
	assert.NotNil(t, loggerFrom(context.Background()))
}
