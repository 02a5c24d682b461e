package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hyperengineering/stride/internal/types"
)

// GetDashboardContent returns the quote/focus row for one day.
func (s *SQLiteStore) GetDashboardContent(ctx context.Context, userID, date string) (*types.DashboardContent, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, date, daily_quote, focus_area, created_at
		FROM dashboard_content WHERE user_id = ? AND date = ?
	`, userID, date)

	var c types.DashboardContent
	var createdAt string
	err := row.Scan(&c.ID, &c.UserID, &c.Date, &c.DailyQuote, &c.FocusArea, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	c.CreatedAt = parseTime(createdAt)
	return &c, nil
}

// UpsertDashboardContent writes the day's content as a single conditional
// insert keyed on UNIQUE(user_id, date). Regeneration updates the existing
// row in place, keeping its ID.
func (s *SQLiteStore) UpsertDashboardContent(ctx context.Context, content types.NewDashboardContent) (*types.DashboardContent, error) {
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO dashboard_content (id, user_id, date, daily_quote, focus_area, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, date) DO UPDATE SET
			daily_quote = excluded.daily_quote,
			focus_area  = excluded.focus_area
	`, newID(), content.UserID, content.Date, content.DailyQuote, content.FocusArea, now.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	return s.GetDashboardContent(ctx, content.UserID, content.Date)
}
