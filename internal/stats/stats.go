// Package stats derives the weekly dashboard snapshot from a user's full
// task, journal, and goal history. It filters by date itself; callers pass
// unfiltered history.
package stats

import (
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/hyperengineering/stride/internal/types"
)

// windowDays is the trailing window for completion rate and entry counts.
const windowDays = 7

// Calculator computes weekly snapshots relative to its clock.
type Calculator struct {
	now func() time.Time
}

// NewCalculator returns a Calculator using the wall clock.
func NewCalculator() *Calculator {
	return &Calculator{now: time.Now}
}

// Compute derives the snapshot. It must never fail a dashboard request:
// any panic during computation is absorbed and a zeroed snapshot returned.
func (c *Calculator) Compute(tasks []types.Task, journals []types.JournalEntry, goals []types.Goal) (snap types.Stats) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("stats computation failed, returning zeroed snapshot", "panic", r)
			snap = types.Stats{}
		}
	}()

	today := c.now().UTC()
	todayStr := today.Format(types.DateFormat)
	windowStart := today.AddDate(0, 0, -windowDays).Format(types.DateFormat)

	// Dates are YYYY-MM-DD strings; lexical comparison is calendar
	// comparison.
	var totalTasks, completedTasks int
	for _, t := range tasks {
		if t.Date < windowStart || t.Date > todayStr {
			continue
		}
		totalTasks++
		if t.Completed {
			completedTasks++
		}
	}

	var journalEntries int
	for _, j := range journals {
		if j.Date >= windowStart && j.Date <= todayStr {
			journalEntries++
		}
	}

	completionRate := 0
	if totalTasks > 0 {
		completionRate = int(math.Round(float64(completedTasks) / float64(totalTasks) * 100))
	}

	return types.Stats{
		TasksCompleted: completedTasks,
		TotalTasks:     totalTasks,
		JournalEntries: journalEntries,
		CompletionRate: completionRate,
		GoalProgress:   averageGoalProgress(goals),
		Streak:         streak(journals, today),
	}
}

// averageGoalProgress averages currentValue/targetValue over goals that have
// both a non-zero target and a non-zero current value, as a rounded
// percentage. No qualifying goals means 0.
func averageGoalProgress(goals []types.Goal) int {
	var sum float64
	var count int
	for _, g := range goals {
		if g.TargetValue == nil || *g.TargetValue == 0 || g.CurrentValue == 0 {
			continue
		}
		sum += float64(g.CurrentValue) / float64(*g.TargetValue)
		count++
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(sum / float64(count) * 100))
}

// streak counts consecutive journaled calendar days walking backward from
// today. Entries are de-duplicated by date first (first entry per date
// wins), then the entry at index i must be dated exactly i days before
// today; the first mismatch ends the streak, so any single-day gap breaks
// it and a missing entry for today means zero.
func streak(journals []types.JournalEntry, today time.Time) int {
	seen := make(map[string]bool, len(journals))
	dates := make([]string, 0, len(journals))
	for _, j := range journals {
		if !seen[j.Date] {
			seen[j.Date] = true
			dates = append(dates, j.Date)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	count := 0
	for i, date := range dates {
		d, err := time.Parse(types.DateFormat, date)
		if err != nil {
			break
		}
		if int(midnight.Sub(d).Hours()/24) != i {
			break
		}
		count++
	}
	return count
}
