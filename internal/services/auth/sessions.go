package auth

import (
	"sync"
	"time"
)

// sessionStore is the in-memory token table. Sessions do not survive a restart.
type sessionStore struct {
	mu     sync.RWMutex
	byTok  map[string]*Session
	maxAge time.Duration
}

func newSessionStore(maxAge time.Duration) *sessionStore {
	return &sessionStore{byTok: make(map[string]*Session), maxAge: maxAge}
}

func (st *sessionStore) put(s *Session) {
	st.mu.Lock()
	st.byTok[s.Token] = s
	st.mu.Unlock()
}

// lookup returns the live session for token. An expired entry is dropped.
func (st *sessionStore) lookup(token string, now time.Time) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.byTok[token]
	st.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if now.After(s.ExpiresAt) {
		st.remove(token)
		return nil, false
	}
	return s, true
}

func (st *sessionStore) remove(token string) {
	st.mu.Lock()
	delete(st.byTok, token)
	st.mu.Unlock()
}

func (st *sessionStore) sweep(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	n := 0
	for tok, s := range st.byTok {
		if now.After(s.ExpiresAt) {
			delete(st.byTok, tok)
			n++
		}
	}
	return n
}

func (st *sessionStore) count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.byTok)
}
