package coach

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hyperengineering/stride/internal/types"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// stubChat is a ChatService test double returning a canned response.
type stubChat struct {
	resp        *openai.ChatCompletion
	err         error
	calls       int
	hadDeadline bool
}

func (s *stubChat) New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error) {
	s.calls++
	_, s.hadDeadline = ctx.Deadline()
	return s.resp, s.err
}

func chatResponse(content string) *openai.ChatCompletion {
	return &openai.ChatCompletion{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func newTestClient(chat ChatService) *Client {
	return &Client{
		chat:        chat,
		model:       "test-model",
		temperature: 0.7,
		maxTokens:   1000,
		timeout:     5 * time.Second,
		configured:  true,
	}
}

func TestGenerateDailyPlan_MissingCredential(t *testing.T) {
	chat := &stubChat{}
	c := newTestClient(chat)
	c.configured = false

	plan := c.GenerateDailyPlan(context.Background(), PlanInput{UserID: "u1"})

	if chat.calls != 0 {
		t.Error("unconfigured client must not call the provider")
	}
	if !plan.Degraded || len(plan.Tasks) != 5 {
		t.Errorf("got degraded=%v tasks=%d, want fallback plan", plan.Degraded, len(plan.Tasks))
	}
}

func TestGenerateDailyPlan_ProviderError(t *testing.T) {
	chat := &stubChat{err: errors.New("status 503")}
	c := newTestClient(chat)

	plan := c.GenerateDailyPlan(context.Background(), PlanInput{UserID: "u1"})

	if chat.calls != 1 {
		t.Errorf("provider called %d times, want 1", chat.calls)
	}
	if !plan.Degraded {
		t.Error("provider failure must serve the fallback plan")
	}
}

func TestGenerateDailyPlan_EmptyChoices(t *testing.T) {
	c := newTestClient(&stubChat{resp: &openai.ChatCompletion{}})

	if plan := c.GenerateDailyPlan(context.Background(), PlanInput{}); !plan.Degraded {
		t.Error("empty choices must serve the fallback plan")
	}
}

func TestGenerateDailyPlan_MalformedJSON(t *testing.T) {
	c := newTestClient(&stubChat{resp: chatResponse("Here you go! { broken")})

	if plan := c.GenerateDailyPlan(context.Background(), PlanInput{}); !plan.Degraded {
		t.Error("malformed output must serve the fallback plan")
	}
}

func TestGenerateDailyPlan_MissingTasksField(t *testing.T) {
	c := newTestClient(&stubChat{resp: chatResponse(`{"dailyQuote": "q", "focusArea": "f"}`)})

	if plan := c.GenerateDailyPlan(context.Background(), PlanInput{}); !plan.Degraded {
		t.Error("schema-violating output must serve the fallback plan")
	}
}

func TestGenerateDailyPlan_Success(t *testing.T) {
	content := `{
		"tasks": [
			{"title": "Review goals", "description": "d", "category": "Planning", "timeEstimate": 10, "priority": "high", "relatedGoalId": "goal-1"},
			{"title": "Meditate", "description": "d", "category": "Mindfulness", "timeEstimate": 5, "priority": "sky-high", "relatedGoalId": "goal-from-another-user"}
		],
		"dailyQuote": "Onward.",
		"focusArea": "Deep work."
	}`
	chat := &stubChat{resp: chatResponse(content)}
	c := newTestClient(chat)

	input := PlanInput{
		UserID: "u1",
		Goals:  []types.Goal{{ID: "goal-1"}},
	}
	plan := c.GenerateDailyPlan(context.Background(), input)

	if plan.Degraded {
		t.Fatal("successful generation must not be degraded")
	}
	if !chat.hadDeadline {
		t.Error("provider call must carry a deadline")
	}
	if len(plan.Tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(plan.Tasks))
	}
	if plan.Tasks[0].RelatedGoalID == nil || *plan.Tasks[0].RelatedGoalID != "goal-1" {
		t.Error("owned goal reference lost")
	}
	if plan.Tasks[1].RelatedGoalID != nil {
		t.Error("foreign goal reference must be sanitized away")
	}
	if plan.Tasks[1].Priority != "medium" {
		t.Errorf("priority = %q, want medium after sanitize", plan.Tasks[1].Priority)
	}
	if plan.DailyQuote != "Onward." || plan.FocusArea != "Deep work." {
		t.Errorf("quote/focus = %q/%q", plan.DailyQuote, plan.FocusArea)
	}
}
