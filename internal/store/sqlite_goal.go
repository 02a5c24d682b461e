package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hyperengineering/stride/internal/types"
)

// CreateGoal inserts a new goal with CurrentValue zero.
func (s *SQLiteStore) CreateGoal(ctx context.Context, goal types.NewGoal) (*types.Goal, error) {
	g := types.Goal{
		ID:          newID(),
		UserID:      goal.UserID,
		Title:       goal.Title,
		Description: goal.Description,
		TargetValue: goal.TargetValue,
		Unit:        goal.Unit,
		Duration:    goal.Duration,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO goals (id, user_id, title, description, target_value, current_value, unit, duration, completed, created_at)
		VALUES (?, ?, ?, ?, ?, 0, ?, ?, 0, ?)
	`, g.ID, g.UserID, g.Title, g.Description, nullableInt(g.TargetValue), g.Unit, string(g.Duration), g.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	return &g, nil
}

// ListGoals returns all of a user's goals, newest first.
func (s *SQLiteStore) ListGoals(ctx context.Context, userID string) ([]types.Goal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, title, description, target_value, current_value, unit, duration, completed, created_at
		FROM goals WHERE user_id = ?
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := []types.Goal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *g)
	}
	return goals, rows.Err()
}

// GetGoal returns one goal scoped by owner.
func (s *SQLiteStore) GetGoal(ctx context.Context, userID, id string) (*types.Goal, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, description, target_value, current_value, unit, duration, completed, created_at
		FROM goals WHERE user_id = ? AND id = ?
	`, userID, id)

	g, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// UpdateGoal applies a partial edit and returns the stored result.
func (s *SQLiteStore) UpdateGoal(ctx context.Context, userID, id string, upd types.GoalUpdate) (*types.Goal, error) {
	g, err := s.GetGoal(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		g.Title = *upd.Title
	}
	if upd.Description != nil {
		g.Description = *upd.Description
	}
	if upd.TargetValue != nil {
		g.TargetValue = upd.TargetValue
	}
	if upd.CurrentValue != nil {
		g.CurrentValue = *upd.CurrentValue
	}
	if upd.Unit != nil {
		g.Unit = *upd.Unit
	}
	if upd.Duration != nil {
		g.Duration = *upd.Duration
	}
	if upd.Completed != nil {
		g.Completed = *upd.Completed
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE goals
		SET title = ?, description = ?, target_value = ?, current_value = ?, unit = ?, duration = ?, completed = ?
		WHERE user_id = ? AND id = ?
	`, g.Title, g.Description, nullableInt(g.TargetValue), g.CurrentValue, g.Unit, string(g.Duration), boolToInt(g.Completed), userID, id)
	if err != nil {
		return nil, err
	}

	return g, nil
}

// DeleteGoal removes a goal. Referencing tasks are detached by the schema's
// ON DELETE SET NULL, not deleted.
func (s *SQLiteStore) DeleteGoal(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM goals WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanGoal(scanner interface{ Scan(...any) error }) (*types.Goal, error) {
	var g types.Goal
	var target sql.NullInt64
	var duration string
	var completed int
	var createdAt string

	err := scanner.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &target, &g.CurrentValue, &g.Unit, &duration, &completed, &createdAt)
	if err != nil {
		return nil, err
	}

	if target.Valid {
		v := int(target.Int64)
		g.TargetValue = &v
	}
	g.Duration = types.GoalDuration(duration)
	g.Completed = completed != 0
	g.CreatedAt = parseTime(createdAt)
	return &g, nil
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
