// Package coach produces a day's personalized task plan from a user's recent
// journals and goals via an external chat-completion model, degrading to a
// fixed fallback plan on any failure.
package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hyperengineering/stride/internal/types"
)

// JournalWindowDays is the outer recency window. Entries older than this are
// excluded from the prompt entirely.
const JournalWindowDays = 30

// RecentWindowDays bounds the high-weight tier of journal entries.
const RecentWindowDays = 7

// Generator defines the interface contract for daily plan generation.
// Implementations must be total: every failure (missing credential, network
// error, malformed model output) degrades to the fallback plan, never an
// error the caller has to handle.
type Generator interface {
	GenerateDailyPlan(ctx context.Context, input PlanInput) *DayPlan
}

// PlanInput carries everything the generator may use to personalize a plan.
// Journals should cover the outer window (JournalWindowDays), newest first;
// the generator partitions them into recency tiers itself.
type PlanInput struct {
	UserID   string
	Journals []types.JournalEntry
	Goals    []types.Goal
}

// PlannedTask is one task as proposed by the model, before persistence.
// Field names follow the JSON shape requested in the prompt.
type PlannedTask struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	TimeEstimate  int     `json:"timeEstimate"`
	Priority      string  `json:"priority"`
	RelatedGoalID *string `json:"relatedGoalId,omitempty"`
}

// DayPlan is a complete generation result: the task batch plus the day's
// quote and focus area. Degraded marks plans served from the fallback.
type DayPlan struct {
	Tasks      []PlannedTask `json:"tasks"`
	DailyQuote string        `json:"dailyQuote"`
	FocusArea  string        `json:"focusArea"`
	Degraded   bool          `json:"-"`
}

// decodePlan parses the model's textual response into a DayPlan. The model
// is an untrusted, schema-violating source: the error return names the
// reason, and the caller substitutes the fallback. It never panics.
func decodePlan(content string) (*DayPlan, error) {
	var plan DayPlan
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &plan); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}
	if plan.Tasks == nil {
		return nil, fmt.Errorf("response is missing the tasks array")
	}
	return &plan, nil
}

// sanitize drops goal references the user does not own and normalizes
// priorities to the allowed vocabulary. The related-goal invariant is also
// backed by a foreign key, but a foreign reference must never abort
// persistence of an otherwise good plan.
func (p *DayPlan) sanitize(goals []types.Goal) {
	owned := make(map[string]bool, len(goals))
	for _, g := range goals {
		owned[g.ID] = true
	}

	for i := range p.Tasks {
		t := &p.Tasks[i]
		if t.RelatedGoalID != nil && !owned[*t.RelatedGoalID] {
			t.RelatedGoalID = nil
		}
		switch types.TaskPriority(t.Priority) {
		case types.PriorityLow, types.PriorityMedium, types.PriorityHigh:
		default:
			t.Priority = string(types.PriorityMedium)
		}
	}
}
