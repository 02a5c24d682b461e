package coach

import (
	"strings"
	"testing"

	"github.com/hyperengineering/stride/internal/types"
)

func strPtr(s string) *string { return &s }

func TestDecodePlan(t *testing.T) {
	t.Run("valid response", func(t *testing.T) {
		content := `{
			"tasks": [
				{"title": "Stretch", "description": "Loosen up", "category": "Wellness", "timeEstimate": 10, "priority": "low"}
			],
			"dailyQuote": "Keep going.",
			"focusArea": "Recovery day."
		}`

		plan, err := decodePlan(content)
		if err != nil {
			t.Fatalf("decodePlan() error = %v", err)
		}
		if len(plan.Tasks) != 1 {
			t.Fatalf("got %d tasks, want 1", len(plan.Tasks))
		}
		if plan.Tasks[0].Title != "Stretch" {
			t.Errorf("Title = %q, want %q", plan.Tasks[0].Title, "Stretch")
		}
		if plan.DailyQuote != "Keep going." {
			t.Errorf("DailyQuote = %q", plan.DailyQuote)
		}
		if plan.Degraded {
			t.Error("decoded plan must not be marked degraded")
		}
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		if _, err := decodePlan("\n  {\"tasks\": [], \"dailyQuote\": \"q\", \"focusArea\": \"f\"}  \n"); err != nil {
			t.Errorf("decodePlan() error = %v", err)
		}
	})

	t.Run("not JSON", func(t *testing.T) {
		_, err := decodePlan("Sure! Here are your tasks for today:")
		if err == nil {
			t.Fatal("expected error for non-JSON content")
		}
		if !strings.Contains(err.Error(), "not valid JSON") {
			t.Errorf("error = %v, want JSON parse failure", err)
		}
	})

	t.Run("missing tasks field", func(t *testing.T) {
		_, err := decodePlan(`{"dailyQuote": "q", "focusArea": "f"}`)
		if err == nil {
			t.Fatal("expected error when tasks is absent")
		}
	})

	t.Run("explicit null tasks", func(t *testing.T) {
		if _, err := decodePlan(`{"tasks": null, "dailyQuote": "q", "focusArea": "f"}`); err == nil {
			t.Fatal("expected error when tasks is null")
		}
	})
}

func TestDayPlanSanitize(t *testing.T) {
	goals := []types.Goal{{ID: "goal-1"}, {ID: "goal-2"}}

	plan := &DayPlan{
		Tasks: []PlannedTask{
			{Title: "a", Priority: "high", RelatedGoalID: strPtr("goal-1")},
			{Title: "b", Priority: "urgent", RelatedGoalID: strPtr("goal-999")},
			{Title: "c", Priority: "", RelatedGoalID: nil},
		},
	}

	plan.sanitize(goals)

	if plan.Tasks[0].RelatedGoalID == nil || *plan.Tasks[0].RelatedGoalID != "goal-1" {
		t.Error("owned goal reference must survive sanitize")
	}
	if plan.Tasks[0].Priority != "high" {
		t.Errorf("valid priority rewritten to %q", plan.Tasks[0].Priority)
	}
	if plan.Tasks[1].RelatedGoalID != nil {
		t.Error("foreign goal reference must be dropped")
	}
	if plan.Tasks[1].Priority != "medium" {
		t.Errorf("unknown priority = %q, want medium", plan.Tasks[1].Priority)
	}
	if plan.Tasks[2].Priority != "medium" {
		t.Errorf("empty priority = %q, want medium", plan.Tasks[2].Priority)
	}
}

func TestFallbackPlan(t *testing.T) {
	plan := FallbackPlan()

	if len(plan.Tasks) != 5 {
		t.Fatalf("got %d fallback tasks, want 5", len(plan.Tasks))
	}
	if !plan.Degraded {
		t.Error("fallback plan must be marked degraded")
	}
	if plan.DailyQuote == "" || plan.FocusArea == "" {
		t.Error("fallback quote and focus area must be non-empty")
	}

	for i, task := range plan.Tasks {
		if task.Title == "" || task.Description == "" || task.Category == "" {
			t.Errorf("task %d has empty fields: %+v", i, task)
		}
		if task.TimeEstimate < 5 || task.TimeEstimate > 45 {
			t.Errorf("task %d time estimate %d outside 5-45", i, task.TimeEstimate)
		}
		switch types.TaskPriority(task.Priority) {
		case types.PriorityLow, types.PriorityMedium, types.PriorityHigh:
		default:
			t.Errorf("task %d has invalid priority %q", i, task.Priority)
		}
	}

	// Callers mutate the returned plan, so each call must allocate fresh.
	plan.Tasks[0].Title = "mutated"
	if FallbackPlan().Tasks[0].Title == "mutated" {
		t.Error("FallbackPlan must return an independent copy per call")
	}
}
