// Package dashboard composes the store, the task generator, and the stats
// calculator to answer "what should the user see today".
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hyperengineering/stride/internal/coach"
	"github.com/hyperengineering/stride/internal/stats"
	"github.com/hyperengineering/stride/internal/store"
	"github.com/hyperengineering/stride/internal/types"
)

// Service orchestrates daily view assembly and task generation.
type Service struct {
	store store.Store
	coach coach.Generator
	stats *stats.Calculator
	now   func() time.Time
}

// NewService creates a dashboard Service.
func NewService(s store.Store, g coach.Generator, c *stats.Calculator) *Service {
	return &Service{
		store: s,
		coach: g,
		stats: c,
		now:   time.Now,
	}
}

// View is the complete payload for a single "today" view.
type View struct {
	Tasks   []types.Task
	Goals   []types.Goal
	Content *types.DashboardContent
	Stats   types.Stats
}

// RegenerateResult is the payload of an explicit regeneration.
type RegenerateResult struct {
	Tasks   []types.Task
	Content *types.DashboardContent
	Message string
}

// Today assembles the current day's view. On the first visit of a day (no
// content and no tasks yet) it generates and persists a fresh plan; if that
// persistence fails mid-flow, the request falls through to whatever state
// exists rather than failing. Stats are always computed live.
func (s *Service) Today(ctx context.Context, userID string) (*View, error) {
	today := s.todayDate()

	tasks, err := s.store.ListTasks(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("list today's tasks: %w", err)
	}

	goals, err := s.store.ListGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	content, err := s.store.GetDashboardContent(ctx, userID, today)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("get dashboard content: %w", err)
	}

	if content == nil && len(tasks) == 0 {
		content, tasks = s.generateDay(ctx, userID, today, goals)
	}

	return &View{
		Tasks:   tasks,
		Goals:   goals,
		Content: content,
		Stats:   s.computeStats(ctx, userID, goals),
	}, nil
}

// Regenerate discards today's task batch, generates a new one, and updates
// the day's content in place.
func (s *Service) Regenerate(ctx context.Context, userID string) (*RegenerateResult, error) {
	today := s.todayDate()

	plan, err := s.plan(ctx, userID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.store.ReplaceDayTasks(ctx, userID, today, plannedTasks(plan, userID, today))
	if err != nil {
		return nil, fmt.Errorf("replace day tasks: %w", err)
	}

	content, err := s.store.UpsertDashboardContent(ctx, types.NewDashboardContent{
		UserID:     userID,
		Date:       today,
		DailyQuote: plan.DailyQuote,
		FocusArea:  plan.FocusArea,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert dashboard content: %w", err)
	}

	return &RegenerateResult{
		Tasks:   tasks,
		Content: content,
		Message: fmt.Sprintf("Generated %d new tasks for today", len(tasks)),
	}, nil
}

// generateDay runs the lazy first-visit generation. The generator itself is
// total, so failures here are persistence failures; they are logged and the
// caller keeps serving the pre-generation state.
func (s *Service) generateDay(ctx context.Context, userID, today string, goals []types.Goal) (*types.DashboardContent, []types.Task) {
	plan, err := s.plan(ctx, userID)
	if err != nil {
		slog.Error("daily generation skipped", "user_id", userID, "error", err)
		return nil, []types.Task{}
	}

	content, err := s.store.UpsertDashboardContent(ctx, types.NewDashboardContent{
		UserID:     userID,
		Date:       today,
		DailyQuote: plan.DailyQuote,
		FocusArea:  plan.FocusArea,
	})
	if err != nil {
		slog.Error("persisting dashboard content failed", "user_id", userID, "error", err)
		return nil, []types.Task{}
	}

	tasks, err := s.store.ReplaceDayTasks(ctx, userID, today, plannedTasks(plan, userID, today))
	if err != nil {
		slog.Error("persisting generated tasks failed", "user_id", userID, "error", err)
		return content, []types.Task{}
	}

	return content, tasks
}

// plan fetches the generator inputs and produces a day plan.
func (s *Service) plan(ctx context.Context, userID string) (*coach.DayPlan, error) {
	goals, err := s.store.ListGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	since := s.now().UTC().AddDate(0, 0, -coach.JournalWindowDays).Format(types.DateFormat)
	journals, err := s.store.ListJournalsSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("list recent journals: %w", err)
	}

	plan := s.coach.GenerateDailyPlan(ctx, coach.PlanInput{
		UserID:   userID,
		Journals: journals,
		Goals:    goals,
	})
	if plan.Degraded {
		slog.Info("serving degraded plan", "user_id", userID)
	}
	return plan, nil
}

// computeStats fetches full history and derives the weekly snapshot.
// Storage failures here are absorbed: the dashboard must render even when
// stats cannot be computed.
func (s *Service) computeStats(ctx context.Context, userID string, goals []types.Goal) types.Stats {
	allTasks, err := s.store.ListTasks(ctx, userID, "")
	if err != nil {
		slog.Error("stats task history unavailable", "user_id", userID, "error", err)
		return types.Stats{}
	}

	allJournals, err := s.store.ListJournals(ctx, userID)
	if err != nil {
		slog.Error("stats journal history unavailable", "user_id", userID, "error", err)
		return types.Stats{}
	}

	return s.stats.Compute(allTasks, allJournals, goals)
}

func (s *Service) todayDate() string {
	return s.now().UTC().Format(types.DateFormat)
}

// plannedTasks converts a generated plan into store insert payloads tagged
// with the user and date.
func plannedTasks(plan *coach.DayPlan, userID, date string) []types.NewTask {
	tasks := make([]types.NewTask, 0, len(plan.Tasks))
	for _, pt := range plan.Tasks {
		tasks = append(tasks, types.NewTask{
			UserID:        userID,
			Date:          date,
			Title:         pt.Title,
			Description:   pt.Description,
			Category:      pt.Category,
			TimeEstimate:  pt.TimeEstimate,
			Priority:      types.TaskPriority(pt.Priority),
			RelatedGoalID: pt.RelatedGoalID,
		})
	}
	return tasks
}
