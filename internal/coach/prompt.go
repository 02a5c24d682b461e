package coach

import (
	"fmt"
	"strings"
	"time"

	"github.com/hyperengineering/stride/internal/types"
)

// systemPrompt establishes the assistant persona and the hard requirement
// that output be valid JSON in the requested shape.
const systemPrompt = "You are a personal development coach AI that helps users achieve continuous improvement through daily tasks, reflection, and goal-oriented activities. Always respond with valid JSON in the exact format requested."

const (
	recentContentLimit  = 200
	earlierContentLimit = 80
)

// buildPrompt renders the structured user prompt. Journal entries are
// partitioned by recency relative to today: entries within RecentWindowDays
// carry high weight, entries out to JournalWindowDays carry medium weight
// and are truncated harder, and anything older was excluded upstream.
func buildPrompt(journals []types.JournalEntry, goals []types.Goal, today time.Time) string {
	var recent, earlier []types.JournalEntry
	for _, j := range journals {
		age := daysBetween(today, j.Date)
		switch {
		case age < 0 || age > JournalWindowDays:
			// Future-dated or stale entries contribute nothing.
		case age <= RecentWindowDays:
			recent = append(recent, j)
		default:
			earlier = append(earlier, j)
		}
	}

	var b strings.Builder
	b.WriteString("Based on the user's recent journal entries and goals, generate 5-7 personalized daily tasks that will help them grow and make progress. Also provide a motivational quote and focus area for today.\n")

	b.WriteString("\nJournal entries from the last 7 days (weight these heavily):\n")
	b.WriteString(journalSummary(recent, recentContentLimit))

	b.WriteString("\nOlder journal entries, 8-30 days back (background context only):\n")
	b.WriteString(journalSummary(earlier, earlierContentLimit))

	b.WriteString("\nCurrent Goals:\n")
	b.WriteString(goalSummary(goals))

	b.WriteString(`
Please respond with valid JSON in this exact format:
{
  "tasks": [
    {
      "title": "Task title (concise and actionable)",
      "description": "Detailed description of what to do and why",
      "category": "Category (Productivity, Wellness, Learning, Planning, Mindfulness, etc.)",
      "timeEstimate": 15,
      "priority": "medium",
      "relatedGoalId": null
    }
  ],
  "dailyQuote": "An inspiring and relevant motivational quote",
  "focusArea": "A brief description of what the user should focus on today based on their journals and goals"
}

Requirements:
- Generate 5-7 tasks total
- Time estimates should be between 5-45 minutes
- Mix of different categories (productivity, wellness, learning, etc.)
- Tasks should be specific and actionable
- Weight the last 7 days of journals and the active goals far higher than the older entries
- Priority can be "low", "medium", or "high"
- Only set relatedGoalId if a task directly relates to completing a specific goal, using the goal id given in brackets
- Daily quote should be motivational and relevant to personal growth
- Focus area should be 1-2 sentences about the day's theme or priority

Make the tasks personal and relevant based on the journal entries and goals provided.
`)

	return b.String()
}

func journalSummary(journals []types.JournalEntry, contentLimit int) string {
	if len(journals) == 0 {
		return "No journal entries available.\n"
	}

	var b strings.Builder
	for _, j := range journals {
		title := j.Title
		if title == "" {
			title = "Untitled"
		}
		content := j.Content
		if content == "" {
			content = "No content"
		}
		fmt.Fprintf(&b, "%s: %s - %s\n", j.Date, title, truncate(content, contentLimit))
	}
	return b.String()
}

func goalSummary(goals []types.Goal) string {
	if len(goals) == 0 {
		return "No active goals set.\n"
	}

	var b strings.Builder
	for _, g := range goals {
		desc := g.Description
		if desc == "" {
			desc = "No description"
		}
		cadence := string(g.Duration)
		if cadence == "" {
			cadence = "ongoing"
		}
		fmt.Fprintf(&b, "%q [%s] - %s (%s, %d%% complete)\n", g.Title, g.ID, desc, cadence, g.Progress())
	}
	return b.String()
}

// truncate cuts s to at most limit runes, appending an ellipsis when cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// daysBetween returns the number of whole calendar days from date (a
// YYYY-MM-DD string) to today. Negative for future dates, and a large
// positive value for unparseable dates so they fall out of every tier.
func daysBetween(today time.Time, date string) int {
	d, err := time.Parse(types.DateFormat, date)
	if err != nil {
		return JournalWindowDays + 1
	}
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(midnight.Sub(d).Hours() / 24)
}
