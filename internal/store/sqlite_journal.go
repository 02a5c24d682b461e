package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hyperengineering/stride/internal/types"
)

// UpsertJournal writes the day's entry in a single conditional insert.
// The UNIQUE(user_id, date) index resolves concurrent saves for the same day
// to one row; the loser's write becomes an in-place update.
func (s *SQLiteStore) UpsertJournal(ctx context.Context, entry types.NewJournalEntry) (*types.JournalEntry, error) {
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO journals (id, user_id, date, title, content, mood, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, date) DO UPDATE SET
			title   = excluded.title,
			content = excluded.content,
			mood    = excluded.mood
	`, newID(), entry.UserID, entry.Date, entry.Title, entry.Content, entry.Mood, now.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	return s.GetJournalByDate(ctx, entry.UserID, entry.Date)
}

// ListJournals returns all of a user's entries, newest date first.
func (s *SQLiteStore) ListJournals(ctx context.Context, userID string) ([]types.JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, date, title, content, mood, created_at
		FROM journals WHERE user_id = ?
		ORDER BY date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJournals(rows)
}

// GetJournalByDate returns the user's entry for one calendar day.
func (s *SQLiteStore) GetJournalByDate(ctx context.Context, userID, date string) (*types.JournalEntry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, date, title, content, mood, created_at
		FROM journals WHERE user_id = ? AND date = ?
	`, userID, date)

	entry, err := scanJournal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ListJournalsSince returns entries dated on or after since, newest first.
// Dates are YYYY-MM-DD strings, so the comparison is lexical.
func (s *SQLiteStore) ListJournalsSince(ctx context.Context, userID, since string) ([]types.JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, date, title, content, mood, created_at
		FROM journals WHERE user_id = ? AND date >= ?
		ORDER BY date DESC
	`, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJournals(rows)
}

func scanJournal(scanner interface{ Scan(...any) error }) (*types.JournalEntry, error) {
	var e types.JournalEntry
	var createdAt string

	err := scanner.Scan(&e.ID, &e.UserID, &e.Date, &e.Title, &e.Content, &e.Mood, &createdAt)
	if err != nil {
		return nil, err
	}

	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

func collectJournals(rows *sql.Rows) ([]types.JournalEntry, error) {
	entries := []types.JournalEntry{}
	for rows.Next() {
		e, err := scanJournal(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}
