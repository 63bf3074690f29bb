package match

import (
	types "github.com/unisync/unisync-backend/internal/domain"
)

// Session is the swipe cursor for one requesting user: which candidates were
// already decided on, which were connected with, and where the cursor sits.
// Persisted connections live in the record store, not here; discarding a
// session forgets the cursor but never undoes a recorded connection.
type Session struct {
	viewed  map[int]bool
	matches []types.User
	cursor  int
}

func NewSession() *Session {
	return &Session{viewed: map[int]bool{}}
}

// Available drops already-decided users from the filtered candidate list,
// preserving order.
func (s *Session) Available(candidates []types.User) []types.User {
	out := make([]types.User, 0, len(candidates))
	for _, u := range candidates {
		if !s.viewed[u.ID] {
			out = append(out, u)
		}
	}
	return out
}

// Current returns the candidate under the cursor, or nil when the list is
// exhausted. A cursor past the end wraps to 0 first.
func (s *Session) Current(candidates []types.User) *types.User {
	avail := s.Available(candidates)
	if len(avail) == 0 {
		return nil
	}
	if s.cursor >= len(avail) {
		s.cursor = 0
	}
	return &avail[s.cursor]
}

// Pass marks a candidate decided without connecting.
func (s *Session) Pass(userID int) {
	s.viewed[userID] = true
	s.cursor++
}

// Connect marks a candidate decided and remembers the match. The caller is
// responsible for persisting the Connection row.
func (s *Session) Connect(u types.User) {
	if !s.viewed[u.ID] {
		s.matches = append(s.matches, u)
	}
	s.viewed[u.ID] = true
	s.cursor++
}

// Reset clears the viewed set and restarts the cursor. Matches made so far
// stay listed; recorded Connections are untouched.
func (s *Session) Reset() {
	s.viewed = map[int]bool{}
	s.cursor = 0
}

func (s *Session) Matches() []types.User {
	return s.matches
}

func (s *Session) ViewedCount() int {
	return len(s.viewed)
}
