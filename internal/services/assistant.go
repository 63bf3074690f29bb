package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/unisync/unisync-backend/internal/data/csvstore"
	"github.com/unisync/unisync-backend/internal/platform/ctxutil"
	"github.com/unisync/unisync-backend/internal/platform/llm"
	"github.com/unisync/unisync-backend/internal/platform/logger"
)

// assistantContextLimit caps how many users and listings get inlined into
// the prompt.
const assistantContextLimit = 10

const assistantSystemPrompt = "You are Uni-Sync AI, a campus assistant helping students find study partners, skill exchanges, and dorm resources."

// AssistantMessage is one turn in a session's chat history.
type AssistantMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type AssistantService interface {
	Ask(ctx context.Context, query string) (string, error)
	History(ctx context.Context) ([]AssistantMessage, error)
}

type assistantService struct {
	log          *logger.Logger
	client       llm.Client
	userStore    csvstore.UserStore
	listingStore csvstore.ListingStore

	mu      sync.Mutex
	history map[uuid.UUID][]AssistantMessage
}

// NewAssistantService accepts a nil client; queries then return the canned
// demo answer instead of failing.
func NewAssistantService(
	log *logger.Logger,
	client llm.Client,
	userStore csvstore.UserStore,
	listingStore csvstore.ListingStore,
) AssistantService {
	return &assistantService{
		log:          log.With("service", "AssistantService"),
		client:       client,
		userStore:    userStore,
		listingStore: listingStore,
		history:      make(map[uuid.UUID][]AssistantMessage),
	}
}

func (as *assistantService) Ask(ctx context.Context, query string) (string, error) {
	rd, err := ctxutil.GetRequestData(ctx)
	if err != nil {
		return "", fmt.Errorf("Missing request data: %w", err)
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("A question is required")
	}

	answer := as.answer(ctx, query)

	as.mu.Lock()
	as.history[rd.SessionID] = append(as.history[rd.SessionID],
		AssistantMessage{Role: "user", Content: query, Timestamp: time.Now()},
		AssistantMessage{Role: "assistant", Content: answer, Timestamp: time.Now()},
	)
	as.mu.Unlock()

	return answer, nil
}

func (as *assistantService) History(ctx context.Context) ([]AssistantMessage, error) {
	rd, err := ctxutil.GetRequestData(ctx)
	if err != nil {
		return nil, fmt.Errorf("Missing request data: %w", err)
	}
	as.mu.Lock()
	defer as.mu.Unlock()
	msgs := as.history[rd.SessionID]
	out := make([]AssistantMessage, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (as *assistantService) answer(ctx context.Context, query string) string {
	if as.client == nil {
		return demoAnswer(query)
	}
	prompt, err := as.buildPrompt(ctx, query)
	if err != nil {
		as.log.Warn("Could not build assistant prompt, using fallback", "error", err)
		return demoAnswer(query)
	}
	answer, err := as.client.GenerateText(ctx, assistantSystemPrompt, prompt)
	if err != nil {
		as.log.Warn("Assistant generation failed, using fallback", "error", err)
		return demoAnswer(query)
	}
	return answer
}

func (as *assistantService) buildPrompt(ctx context.Context, query string) (string, error) {
	users, err := as.userStore.List(ctx)
	if err != nil {
		return "", err
	}
	listings, err := as.listingStore.List(ctx)
	if err != nil {
		return "", err
	}
	if len(users) > assistantContextLimit {
		users = users[:assistantContextLimit]
	}
	if len(listings) > assistantContextLimit {
		listings = listings[:assistantContextLimit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are Uni-Sync AI, a campus assistant. A student asks: %q\n\n", query)

	b.WriteString("Available students:\n")
	for _, u := range users {
		fmt.Fprintf(&b, "%s: Skills=%s, Teach=%s, Learn=%s\n", u.Name, u.Skills, u.CanTeach, u.WantsToLearn)
	}

	b.WriteString("\nAvailable resources:\n")
	for _, l := range listings {
		fmt.Fprintf(&b, "%s: %s (%s, Status: %s)\n", l.Title, l.Description, l.Type, l.Status)
	}

	b.WriteString(`
Your task:
1. Understand what they need (study buddy, skill exchange, accommodation, etc.)
2. Match them with relevant people/resources
3. Give specific recommendations with reasons
4. Be friendly and encouraging

Format your response:
- Start with "I found these perfect matches for you!"
- Use bullet points
- Mention names and why they match
- Suggest next steps (how to connect)

Keep it under 200 words.
`)
	return b.String(), nil
}

func demoAnswer(query string) string {
	return fmt.Sprintf(`I'd help you find matches! Based on %q, I recommend:

- Alex Chen - Python expert who can teach you in 30 mins
- Sam Patel - Has free furniture and wants to learn Python
- Study Desk - Available for free in Dorm B

Click "Find Peers" or "Dorm Deals" to explore more!`, query)
}
