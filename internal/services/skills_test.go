package services

import (
	"context"
	"testing"

	types "github.com/unisync/unisync-backend/internal/domain"
)

func TestSkillBoardSplitsAndSkipsSentinels(t *testing.T) {
	t.Parallel()
	stores := newTestStores(t)
	seedUser(t, stores.users, types.User{
		Name: "Alice Chen", Email: "alice@campus.edu", Major: "CS",
		CanTeach: "Python, Guitar", WantsToLearn: "Spanish",
	})
	seedUser(t, stores.users, types.User{
		Name: "Bob Singh", Email: "bob@campus.edu", Major: "EE",
		CanTeach: types.CanTeachNone, WantsToLearn: "Python",
	})
	seedUser(t, stores.users, types.User{
		Name: "Cara Lopez", Email: "cara@campus.edu", Major: "Biology",
		CanTeach: types.CanTeachNone, WantsToLearn: types.WantsToLearnUnset,
	})

	svc := NewSkillsService(testLogger(t), stores.users)
	board, err := svc.Board(context.Background())
	if err != nil {
		t.Fatalf("Board: %v", err)
	}

	if len(board.Teachers) != 1 {
		t.Fatalf("teachers: got=%d want=1", len(board.Teachers))
	}
	if board.Teachers[0].UserName != "Alice Chen" || len(board.Teachers[0].Skills) != 2 {
		t.Errorf("teacher entry: got=%+v", board.Teachers[0])
	}

	if len(board.Learners) != 2 {
		t.Fatalf("learners: got=%d want=2", len(board.Learners))
	}
	if board.Learners[1].UserName != "Bob Singh" || board.Learners[1].Skills[0] != "Python" {
		t.Errorf("learner entry: got=%+v", board.Learners[1])
	}
}

func TestSkillBoardEmptyStore(t *testing.T) {
	t.Parallel()
	stores := newTestStores(t)
	svc := NewSkillsService(testLogger(t), stores.users)

	board, err := svc.Board(context.Background())
	if err != nil {
		t.Fatalf("Board: %v", err)
	}
	if len(board.Teachers) != 0 || len(board.Learners) != 0 {
		t.Fatalf("empty store board: got=%+v", board)
	}
}
