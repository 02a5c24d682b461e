package store

import (
	"context"

	"github.com/hyperengineering/stride/internal/types"
)

// Store defines the interface contract for all persistence operations.
// Every read and write is scoped by user ID; a row belonging to another user
// behaves exactly like a missing row.
type Store interface {
	// Users
	CreateUser(ctx context.Context, user types.NewUser) (*types.User, error)
	GetUser(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)

	// Journals. UpsertJournal keys on (user, date): a second save for the
	// same date updates the existing row and keeps its ID.
	UpsertJournal(ctx context.Context, entry types.NewJournalEntry) (*types.JournalEntry, error)
	ListJournals(ctx context.Context, userID string) ([]types.JournalEntry, error)
	GetJournalByDate(ctx context.Context, userID, date string) (*types.JournalEntry, error)
	ListJournalsSince(ctx context.Context, userID, since string) ([]types.JournalEntry, error)

	// Goals
	CreateGoal(ctx context.Context, goal types.NewGoal) (*types.Goal, error)
	ListGoals(ctx context.Context, userID string) ([]types.Goal, error)
	GetGoal(ctx context.Context, userID, id string) (*types.Goal, error)
	UpdateGoal(ctx context.Context, userID, id string, upd types.GoalUpdate) (*types.Goal, error)
	DeleteGoal(ctx context.Context, userID, id string) error

	// Tasks. ListTasks with an empty date returns the user's full history.
	// ReplaceDayTasks atomically swaps one day's batch for a new one.
	ListTasks(ctx context.Context, userID, date string) ([]types.Task, error)
	UpdateTask(ctx context.Context, userID, id string, upd types.TaskUpdate) (*types.Task, error)
	ReplaceDayTasks(ctx context.Context, userID, date string, tasks []types.NewTask) ([]types.Task, error)

	// Dashboard content, unique per (user, date). Upsert keeps the existing
	// row ID when the day's content is regenerated.
	GetDashboardContent(ctx context.Context, userID, date string) (*types.DashboardContent, error)
	UpsertDashboardContent(ctx context.Context, content types.NewDashboardContent) (*types.DashboardContent, error)

	Close() error
}
