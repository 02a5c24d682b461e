package types

import (
	"math"
	"time"
)

// DateFormat is the canonical calendar-date layout used throughout the
// service. Dates are stored and compared as strings; for this layout,
// lexical order equals calendar order.
const DateFormat = "2006-01-02"

// User represents a registered account. All other entities are owned by a
// user via UserID.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// JournalEntry is a user's reflection for one calendar day. Entries are
// unique per (user, date); saving twice for the same date updates in place.
type JournalEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content,omitempty"`
	Mood      string    `json:"mood,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// GoalDuration is a goal's declared cadence. It is display and prompt
// context only; it never drives automatic progress computation.
type GoalDuration string

const (
	DurationDaily   GoalDuration = "daily"
	DurationWeekly  GoalDuration = "weekly"
	DurationMonthly GoalDuration = "monthly"
	DurationYearly  GoalDuration = "yearly"
	DurationOngoing GoalDuration = "ongoing"
)

// GoalDurations lists the accepted duration values.
var GoalDurations = []string{
	string(DurationDaily),
	string(DurationWeekly),
	string(DurationMonthly),
	string(DurationYearly),
	string(DurationOngoing),
}

// Goal is a user-defined target with numeric progress. TargetValue is a
// pointer: "no target set" is distinct from "target is zero", and both mean
// progress is undefined.
type Goal struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	TargetValue  *int         `json:"target_value"`
	CurrentValue int          `json:"current_value"`
	Unit         string       `json:"unit,omitempty"`
	Duration     GoalDuration `json:"duration,omitempty"`
	Completed    bool         `json:"completed"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Progress returns the goal's completion percentage clamped to [0, 100].
// A goal with no target, or a zero target, reports 0.
func (g Goal) Progress() int {
	if g.TargetValue == nil || *g.TargetValue == 0 {
		return 0
	}
	pct := int(math.Round(float64(g.CurrentValue) / float64(*g.TargetValue) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// TaskPriority is the urgency label attached to a generated task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// TaskPriorities lists the accepted priority values.
var TaskPriorities = []string{
	string(PriorityLow),
	string(PriorityMedium),
	string(PriorityHigh),
}

// Task is one day's actionable item. A day's task set is created in a single
// batch by the generator; individual tasks are toggled complete by the user.
// RelatedGoalID, when set, references a goal owned by the same user.
type Task struct {
	ID            string       `json:"id"`
	UserID        string       `json:"user_id"`
	Date          string       `json:"date"`
	Title         string       `json:"title"`
	Description   string       `json:"description,omitempty"`
	Category      string       `json:"category,omitempty"`
	TimeEstimate  int          `json:"time_estimate"`
	Priority      TaskPriority `json:"priority"`
	Completed     bool         `json:"completed"`
	RelatedGoalID *string      `json:"related_goal_id"`
	GeneratedAt   time.Time    `json:"generated_at"`
}

// DashboardContent is the per-day generated quote and focus area, unique per
// (user, date) and updated in place on regeneration.
type DashboardContent struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Date       string    `json:"date"`
	DailyQuote string    `json:"daily_quote"`
	FocusArea  string    `json:"focus_area"`
	CreatedAt  time.Time `json:"created_at"`
}

// Stats is the weekly snapshot derived live for every dashboard request.
type Stats struct {
	TasksCompleted int `json:"tasks_completed"`
	TotalTasks     int `json:"total_tasks"`
	JournalEntries int `json:"journal_entries"`
	CompletionRate int `json:"completion_rate"`
	GoalProgress   int `json:"goal_progress"`
	Streak         int `json:"streak"`
}

// --- Insert payloads ---

// NewUser is the payload for creating a user.
type NewUser struct {
	Email        string
	Name         string
	PasswordHash string
}

// NewJournalEntry is the payload for the upsert-by-date journal write.
type NewJournalEntry struct {
	UserID  string
	Date    string
	Title   string
	Content string
	Mood    string
}

// NewGoal is the payload for creating a goal.
type NewGoal struct {
	UserID      string
	Title       string
	Description string
	TargetValue *int
	Unit        string
	Duration    GoalDuration
}

// NewTask is the payload for one task within a generated day batch.
type NewTask struct {
	UserID        string
	Date          string
	Title         string
	Description   string
	Category      string
	TimeEstimate  int
	Priority      TaskPriority
	RelatedGoalID *string
}

// NewDashboardContent is the payload for the per-day content upsert.
type NewDashboardContent struct {
	UserID     string
	Date       string
	DailyQuote string
	FocusArea  string
}

// --- Partial updates ---

// GoalUpdate carries the fields of a goal edit. Nil fields are left
// untouched.
type GoalUpdate struct {
	Title        *string       `json:"title"`
	Description  *string       `json:"description"`
	TargetValue  *int          `json:"target_value"`
	CurrentValue *int          `json:"current_value"`
	Unit         *string       `json:"unit"`
	Duration     *GoalDuration `json:"duration"`
	Completed    *bool         `json:"completed"`
}

// TaskUpdate carries the fields of a task edit. Nil fields are left
// untouched.
type TaskUpdate struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Priority    *TaskPriority `json:"priority"`
	Completed   *bool         `json:"completed"`
}

// --- Request / response bodies ---

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// JournalRequest is the body of POST /api/journals.
type JournalRequest struct {
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Mood    string `json:"mood"`
}

// GoalRequest is the body of POST /api/goals.
type GoalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TargetValue *int   `json:"target_value"`
	Unit        string `json:"unit"`
	Duration    string `json:"duration"`
}

// DashboardResponse is the payload of GET /api/dashboard.
type DashboardResponse struct {
	Tasks            []Task            `json:"tasks"`
	Goals            []Goal            `json:"goals"`
	DashboardContent *DashboardContent `json:"dashboard_content"`
	Stats            Stats             `json:"stats"`
}

// GenerateResponse is the payload of POST /api/generate-tasks.
type GenerateResponse struct {
	Tasks            []Task            `json:"tasks"`
	DashboardContent *DashboardContent `json:"dashboard_content"`
	Message          string            `json:"message"`
}

// HealthResponse is the payload of GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Model   string `json:"model"`
}
