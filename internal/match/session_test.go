package match

import (
	"testing"

	types "github.com/unisync/unisync-backend/internal/domain"
)

func TestSessionPassAdvances(t *testing.T) {
	t.Parallel()
	candidates := sampleUsers()
	s := NewSession()

	first := s.Current(candidates)
	if first == nil || first.ID != 1 {
		t.Fatalf("first candidate: got=%v want id 1", first)
	}

	s.Pass(first.ID)
	second := s.Current(candidates)
	if second == nil || second.ID != 2 {
		t.Fatalf("after pass: got=%v want id 2", second)
	}
	if got := len(s.Available(candidates)); got != 3 {
		t.Fatalf("available after one pass: got=%d want=3", got)
	}
}

func TestSessionConnectRecordsMatch(t *testing.T) {
	t.Parallel()
	candidates := sampleUsers()
	s := NewSession()

	u := s.Current(candidates)
	s.Connect(*u)

	matches := s.Matches()
	if len(matches) != 1 || matches[0].ID != u.ID {
		t.Fatalf("matches after connect: got=%v want [%d]", ids(matches), u.ID)
	}
	for _, a := range s.Available(candidates) {
		if a.ID == u.ID {
			t.Fatalf("connected user %d still available", u.ID)
		}
	}
}

func TestSessionExhaustionAndReset(t *testing.T) {
	t.Parallel()
	candidates := sampleUsers()[:3]
	s := NewSession()

	for _, u := range candidates {
		s.Pass(u.ID)
	}
	if cur := s.Current(candidates); cur != nil {
		t.Fatalf("expected exhausted session, got candidate %d", cur.ID)
	}

	s.Reset()
	if got := len(s.Available(candidates)); got != len(candidates) {
		t.Fatalf("available after reset: got=%d want=%d", got, len(candidates))
	}
	if cur := s.Current(candidates); cur == nil || cur.ID != candidates[0].ID {
		t.Fatalf("cursor after reset: got=%v want id %d", cur, candidates[0].ID)
	}
}

func TestSessionResetKeepsMatches(t *testing.T) {
	t.Parallel()
	candidates := sampleUsers()
	s := NewSession()

	s.Connect(candidates[0])
	s.Pass(candidates[1].ID)
	s.Pass(candidates[2].ID)

	s.Reset()
	if got := s.Matches(); len(got) != 1 || got[0].ID != candidates[0].ID {
		t.Fatalf("matches after reset: got=%v want [%d]", ids(got), candidates[0].ID)
	}
}

func TestSessionCursorWraps(t *testing.T) {
	t.Parallel()
	candidates := []types.User{{ID: 1}, {ID: 2}}
	s := NewSession()

	s.Pass(1)
	// Cursor now points past the single remaining candidate; Current must
	// wrap instead of reporting exhaustion.
	if cur := s.Current(candidates); cur == nil || cur.ID != 2 {
		t.Fatalf("wrapped cursor: got=%v want id 2", cur)
	}
}
