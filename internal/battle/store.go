package battle

import "sync"

// Store is the authoritative registry of live sessions. Each session is
// indexed under both participant identities; both keys always resolve to the
// same *Session, and removal clears both under one lock acquisition so no
// dangling entry can survive for one side.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a new pending session for the pair. It fails with
// ErrAlreadyInBattle if either participant is already in a live session,
// leaving that session untouched.
func (st *Store) Create(challenger, opponent string) (*Session, error) {
	if challenger == opponent {
		return nil, ErrSelfChallenge
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[challenger]; ok {
		return nil, ErrAlreadyInBattle
	}
	if _, ok := st.sessions[opponent]; ok {
		return nil, ErrAlreadyInBattle
	}
	s := newSession(challenger, opponent)
	st.sessions[challenger] = s
	st.sessions[opponent] = s
	return s, nil
}

// Get looks up the live session for either participant.
func (st *Store) Get(participantID string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[participantID]
	return s, ok
}

// Remove clears both index entries for the session. Entries that already
// point at a different session are left alone.
func (st *Store) Remove(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.sessions[s.ChallengerID] == s {
		delete(st.sessions, s.ChallengerID)
	}
	if st.sessions[s.OpponentID] == s {
		delete(st.sessions, s.OpponentID)
	}
}

// Len reports the number of distinct live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	seen := make(map[*Session]bool)
	for _, s := range st.sessions {
		seen[s] = true
	}
	return len(seen)
}
