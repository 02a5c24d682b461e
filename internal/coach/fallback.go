package coach

// FallbackPlan returns the fixed plan served whenever generation cannot
// complete: five generic self-improvement tasks spanning the category
// vocabulary, a fixed quote, and a fixed focus area. It is never empty, and
// callers may mutate the returned value freely.
func FallbackPlan() *DayPlan {
	return &DayPlan{
		Tasks: []PlannedTask{
			{
				Title:        "Write down 3 things you're grateful for",
				Description:  "Practice gratitude by reflecting on positive aspects of your day and life",
				Category:     "Mindfulness",
				TimeEstimate: 5,
				Priority:     "medium",
			},
			{
				Title:        "Review and organize digital workspace",
				Description:  "Clean up desktop files, organize folders, and update task management tools",
				Category:     "Productivity",
				TimeEstimate: 25,
				Priority:     "medium",
			},
			{
				Title:        "Read for 15 minutes",
				Description:  "Continue reading your current book or explore a new article on a topic of interest",
				Category:     "Learning",
				TimeEstimate: 15,
				Priority:     "medium",
			},
			{
				Title:        "Take a 10-minute walk",
				Description:  "Get some fresh air and light exercise to boost energy and mood",
				Category:     "Wellness",
				TimeEstimate: 10,
				Priority:     "low",
			},
			{
				Title:        "Plan tomorrow's priorities",
				Description:  "Review schedule and identify top 3 priorities for tomorrow",
				Category:     "Planning",
				TimeEstimate: 10,
				Priority:     "high",
			},
		},
		DailyQuote: "The way to get started is to quit talking and begin doing. - Walt Disney",
		FocusArea:  "Focus on taking small, consistent actions that align with your personal growth goals.",
		Degraded:   true,
	}
}
