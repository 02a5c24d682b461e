package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hyperengineering/stride/internal/types"
)

// ListTasks returns a user's tasks for one date, or the full history when
// date is empty. Ordered by generation time within a day.
func (s *SQLiteStore) ListTasks(ctx context.Context, userID, date string) ([]types.Task, error) {
	query := `
		SELECT id, user_id, date, title, description, category, time_estimate, priority, completed, related_goal_id, generated_at
		FROM tasks WHERE user_id = ?`
	args := []any{userID}
	if date != "" {
		query += ` AND date = ?`
		args = append(args, date)
	}
	query += ` ORDER BY date DESC, generated_at, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []types.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// UpdateTask applies a partial edit and returns the stored result.
func (s *SQLiteStore) UpdateTask(ctx context.Context, userID, id string, upd types.TaskUpdate) (*types.Task, error) {
	t, err := s.getTask(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Description != nil {
		t.Description = *upd.Description
	}
	if upd.Priority != nil {
		t.Priority = *upd.Priority
	}
	if upd.Completed != nil {
		t.Completed = *upd.Completed
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, description = ?, priority = ?, completed = ?
		WHERE user_id = ? AND id = ?
	`, t.Title, t.Description, string(t.Priority), boolToInt(t.Completed), userID, id)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// ReplaceDayTasks swaps one day's batch for a new one in a single
// transaction, so concurrent generations for the same day settle on exactly
// one batch instead of interleaving.
func (s *SQLiteStore) ReplaceDayTasks(ctx context.Context, userID, date string, tasks []types.NewTask) ([]types.Task, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE user_id = ? AND date = ?`, userID, date); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := make([]types.Task, 0, len(tasks))
	for _, nt := range tasks {
		t := types.Task{
			ID:            newID(),
			UserID:        userID,
			Date:          date,
			Title:         nt.Title,
			Description:   nt.Description,
			Category:      nt.Category,
			TimeEstimate:  nt.TimeEstimate,
			Priority:      nt.Priority,
			RelatedGoalID: nt.RelatedGoalID,
			GeneratedAt:   now,
		}
		if t.Priority == "" {
			t.Priority = types.PriorityMedium
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO tasks (id, user_id, date, title, description, category, time_estimate, priority, completed, related_goal_id, generated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)
		`, t.ID, t.UserID, t.Date, t.Title, t.Description, t.Category, t.TimeEstimate, string(t.Priority), nullableString(t.RelatedGoalID), t.GeneratedAt.Format(time.RFC3339))
		if err != nil {
			return nil, err
		}
		created = append(created, t)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *SQLiteStore) getTask(ctx context.Context, userID, id string) (*types.Task, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, date, title, description, category, time_estimate, priority, completed, related_goal_id, generated_at
		FROM tasks WHERE user_id = ? AND id = ?
	`, userID, id)

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func scanTask(scanner interface{ Scan(...any) error }) (*types.Task, error) {
	var t types.Task
	var priority string
	var completed int
	var relatedGoalID sql.NullString
	var generatedAt string

	err := scanner.Scan(&t.ID, &t.UserID, &t.Date, &t.Title, &t.Description, &t.Category, &t.TimeEstimate, &priority, &completed, &relatedGoalID, &generatedAt)
	if err != nil {
		return nil, err
	}

	t.Priority = types.TaskPriority(priority)
	t.Completed = completed != 0
	if relatedGoalID.Valid {
		v := relatedGoalID.String
		t.RelatedGoalID = &v
	}
	t.GeneratedAt = parseTime(generatedAt)
	return &t, nil
}

func nullableString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}
