package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	types "github.com/unisync/unisync-backend/internal/domain"
)

// scriptedClient returns a fixed answer, or an error, and remembers the last
// prompt it was handed.
type scriptedClient struct {
	answer     string
	err        error
	lastPrompt string
}

func (c *scriptedClient) GenerateText(ctx context.Context, system, user string) (string, error) {
	c.lastPrompt = user
	if c.err != nil {
		return "", c.err
	}
	return c.answer, nil
}

func newAssistantService(t *testing.T, stores testStores, client *scriptedClient) AssistantService {
	t.Helper()
	if client == nil {
		return NewAssistantService(testLogger(t), nil, stores.users, stores.listings)
	}
	return NewAssistantService(testLogger(t), client, stores.users, stores.listings)
}

func TestAskBuildsPromptFromData(t *testing.T) {
	t.Parallel()
	stores := newTestStores(t)
	seedUser(t, stores.users, types.User{
		Name: "Alice Chen", Email: "alice@campus.edu",
		Skills: "Python", CanTeach: "Python", WantsToLearn: "Guitar",
	})
	client := &scriptedClient{answer: "I found these perfect matches for you!"}
	svc := newAssistantService(t, stores, client)

	answer, err := svc.Ask(authedCtx(1), "find me a python tutor")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if answer != client.answer {
		t.Fatalf("answer: got=%q", answer)
	}
	if !strings.Contains(client.lastPrompt, "Alice Chen: Skills=Python") {
		t.Errorf("prompt missing user line: %q", client.lastPrompt)
	}
	if !strings.Contains(client.lastPrompt, `"find me a python tutor"`) {
		t.Errorf("prompt missing query: %q", client.lastPrompt)
	}
}

func TestAskCapsPromptContext(t *testing.T) {
	t.Parallel()
	stores := newTestStores(t)
	for i := 0; i < 15; i++ {
		seedUser(t, stores.users, types.User{
			Name:  fmt.Sprintf("Student %02d", i),
			Email: fmt.Sprintf("s%02d@campus.edu", i),
		})
	}
	client := &scriptedClient{answer: "ok"}
	svc := newAssistantService(t, stores, client)

	if _, err := svc.Ask(authedCtx(1), "anything"); err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if strings.Contains(client.lastPrompt, "Student 10") {
		t.Errorf("prompt includes more than %d users", assistantContextLimit)
	}
	if !strings.Contains(client.lastPrompt, "Student 09") {
		t.Errorf("prompt dropped users it should keep")
	}
}

func TestAskFallsBackOnError(t *testing.T) {
	t.Parallel()
	stores := newTestStores(t)
	client := &scriptedClient{err: fmt.Errorf("model unavailable")}
	svc := newAssistantService(t, stores, client)

	answer, err := svc.Ask(authedCtx(1), "find furniture")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if !strings.Contains(answer, "I'd help you find matches!") {
		t.Fatalf("fallback answer: got=%q", answer)
	}
	if !strings.Contains(answer, `"find furniture"`) {
		t.Errorf("fallback should echo the query: %q", answer)
	}
}

func TestAskWithoutClientUsesFallback(t *testing.T) {
	t.Parallel()
	stores := newTestStores(t)
	svc := newAssistantService(t, stores, nil)

	answer, err := svc.Ask(authedCtx(1), "hello")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if !strings.Contains(answer, "I'd help you find matches!") {
		t.Fatalf("fallback answer: got=%q", answer)
	}
}

func TestAskRejectsEmptyQuery(t *testing.T) {
	t.Parallel()
	stores := newTestStores(t)
	svc := newAssistantService(t, stores, nil)

	if _, err := svc.Ask(authedCtx(1), "   "); err == nil {
		t.Fatal("expected blank query to be rejected")
	}
}

func TestHistoryIsPerSession(t *testing.T) {
	t.Parallel()
	stores := newTestStores(t)
	svc := newAssistantService(t, stores, nil)

	ctxA := authedCtx(1)
	ctxB := authedCtx(2)

	if _, err := svc.Ask(ctxA, "first question"); err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if _, err := svc.Ask(ctxA, "second question"); err != nil {
		t.Fatalf("Ask: %v", err)
	}

	histA, err := svc.History(ctxA)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(histA) != 4 {
		t.Fatalf("history length: got=%d want=4", len(histA))
	}
	if histA[0].Role != "user" || histA[0].Content != "first question" {
		t.Errorf("first turn: got=%+v", histA[0])
	}
	if histA[1].Role != "assistant" {
		t.Errorf("second turn role: got=%q", histA[1].Role)
	}

	histB, err := svc.History(ctxB)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(histB) != 0 {
		t.Fatalf("other session history: got=%d want=0", len(histB))
	}
}
